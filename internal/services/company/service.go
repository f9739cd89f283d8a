// Package company manages the payment-recipient directory consumed by
// the payment core and administered through the management surface.
package company

import (
	"errors"

	"gowallet/internal/models"
	"gowallet/internal/repositories"
	"gowallet/internal/services/qr"
)

var (
	ErrNotFound           = errors.New("company not found")
	ErrAccountNumberTaken = errors.New("a company with this account number already exists")
	ErrMissingFields      = errors.New("name and account number are required")
)

// CreateInput carries the administrator-supplied company fields. The QR
// artifact is generated here, not supplied.
type CreateInput struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	AccountNumber string `json:"account_number"`
	Comments      string `json:"comments"`
	Logo          string `json:"-"`
}

// UpdateInput carries editable fields. The account number may change;
// the QR artifact is regenerated when it does.
type UpdateInput struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	AccountNumber string `json:"account_number"`
	Comments      string `json:"comments"`
}

type Service interface {
	Create(input CreateInput) (*models.Company, error)
	Update(id uint, input UpdateInput) (*models.Company, error)
	Delete(id uint) error
	List() ([]*models.Company, error)
	GetByID(id uint) (*models.Company, error)

	// GetByAccountNumber is the read-only directory boundary the
	// payment executor depends on.
	GetByAccountNumber(accountNumber string) (*models.Company, error)
}

type service struct {
	repo repositories.CompanyRepository
	qr   qr.Service
}

func NewService(repo repositories.CompanyRepository, qrService qr.Service) Service {
	return &service{
		repo: repo,
		qr:   qrService,
	}
}

func (s *service) Create(input CreateInput) (*models.Company, error) {
	if input.Name == "" || input.AccountNumber == "" {
		return nil, ErrMissingFields
	}

	qrPath, err := s.qr.Generate(input.AccountNumber)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:          input.Name,
		Address:       input.Address,
		AccountNumber: input.AccountNumber,
		Comments:      input.Comments,
		QRCode:        qrPath,
		Logo:          input.Logo,
	}
	if err := s.repo.Create(company); err != nil {
		if errors.Is(err, repositories.ErrAccountNumberTaken) {
			return nil, ErrAccountNumberTaken
		}
		return nil, err
	}
	return company, nil
}

func (s *service) Update(id uint, input UpdateInput) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.AccountNumber != "" && input.AccountNumber != company.AccountNumber {
		if existing, _ := s.repo.GetByAccountNumber(input.AccountNumber); existing != nil {
			return nil, ErrAccountNumberTaken
		}
		qrPath, err := s.qr.Generate(input.AccountNumber)
		if err != nil {
			return nil, err
		}
		company.AccountNumber = input.AccountNumber
		company.QRCode = qrPath
	}
	if input.Name != "" {
		company.Name = input.Name
	}
	company.Address = input.Address
	company.Comments = input.Comments

	if err := s.repo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *service) Delete(id uint) error {
	err := s.repo.Delete(id)
	if errors.Is(err, repositories.ErrCompanyNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *service) List() ([]*models.Company, error) {
	return s.repo.List()
}

func (s *service) GetByID(id uint) (*models.Company, error) {
	company, err := s.repo.GetByID(id)
	if errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, ErrNotFound
	}
	return company, err
}

func (s *service) GetByAccountNumber(accountNumber string) (*models.Company, error) {
	company, err := s.repo.GetByAccountNumber(accountNumber)
	if errors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, ErrNotFound
	}
	return company, err
}
