package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gowallet/internal/models"
	"gowallet/internal/repositories/cache"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrAccountNumberTaken   = errors.New("account number already taken")
	ErrInvalidCompanyRecord = errors.New("invalid company record")
)

// CompanyRepository handles the company directory. Account-number
// lookups sit on the payment hot path and are cached; every write
// invalidates the cached entry.
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetByAccountNumber(accountNumber string) (*models.Company, error)
	List() ([]*models.Company, error)
	Update(company *models.Company) error
	Delete(id uint) error
}

type companyRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewCompanyRepository(db *gorm.DB, cache *cache.CacheService) CompanyRepository {
	return &companyRepository{db: db, cache: cache}
}

func (r *companyRepository) Create(company *models.Company) error {
	var count int64
	r.db.Model(&models.Company{}).Where("account_number = ?", company.AccountNumber).Count(&count)
	if count > 0 {
		return ErrAccountNumberTaken
	}
	if err := r.db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountNumberTaken
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

func (r *companyRepository) GetByAccountNumber(accountNumber string) (*models.Company, error) {
	if company, err := r.cache.GetCompany(context.Background(), accountNumber); err == nil {
		return company, nil
	}

	var company models.Company
	if err := r.db.Where("account_number = ?", accountNumber).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by account number: %w", err)
	}

	if err := r.cache.CacheCompany(context.Background(), &company); err != nil {
		log.Printf("failed to cache company %s: %v", company.AccountNumber, err)
	}
	return &company, nil
}

func (r *companyRepository) List() ([]*models.Company, error) {
	var companies []*models.Company
	if err := r.db.Order("name").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (r *companyRepository) Update(company *models.Company) error {
	// The row may carry a new account number; the cache entry keyed by
	// the old one must not survive the write.
	var previous models.Company
	if err := r.db.Select("account_number").First(&previous, company.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return fmt.Errorf("failed to load company for update: %w", err)
	}

	if err := r.db.Save(company).Error; err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	if previous.AccountNumber != company.AccountNumber {
		if err := r.cache.InvalidateCompanyAccount(context.Background(), previous.AccountNumber); err != nil {
			log.Printf("failed to invalidate company cache %s: %v", previous.AccountNumber, err)
		}
	}
	if err := r.cache.InvalidateCompany(context.Background(), company); err != nil {
		log.Printf("failed to invalidate company cache %s: %v", company.AccountNumber, err)
	}
	return nil
}

func (r *companyRepository) Delete(id uint) error {
	company, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(&models.Company{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if err := r.cache.InvalidateCompany(context.Background(), company); err != nil {
		log.Printf("failed to invalidate company cache %s: %v", company.AccountNumber, err)
	}
	return nil
}
