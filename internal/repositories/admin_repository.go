package repositories

import (
	"errors"

	"gowallet/internal/models"

	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository handles operator identities for the management surface.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
	GetByUsernameOrEmail(username, email string) (*models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		return ErrDatabaseOperation
	}
	return nil
}

func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &admin, nil
}

func (r *adminRepository) GetByUsernameOrEmail(username, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ? OR email = ?", username, email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, ErrDatabaseOperation
	}
	return &admin, nil
}
