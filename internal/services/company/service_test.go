package company

import (
	"errors"
	"testing"

	"gowallet/internal/models"
	"gowallet/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(company *models.Company) error {
	args := m.Called(company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(id uint) (*models.Company, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) GetByAccountNumber(accountNumber string) (*models.Company, error) {
	args := m.Called(accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) List() ([]*models.Company, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(company *models.Company) error {
	args := m.Called(company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// stubQR records generated account numbers without touching the filesystem.
type stubQR struct {
	generated []string
	fail      bool
}

func (s *stubQR) Generate(accountNumber string) (string, error) {
	if s.fail {
		return "", errors.New("qr generation failed")
	}
	s.generated = append(s.generated, accountNumber)
	return "static/qrcodes/" + accountNumber + ".png", nil
}

func (s *stubQR) DeepLink(accountNumber string) string {
	return "gowallet://company/" + accountNumber
}

func TestCreate_GeneratesQRAndPersists(t *testing.T) {
	repo := new(MockCompanyRepository)
	qr := &stubQR{}
	svc := NewService(repo, qr)

	repo.On("Create", mock.AnythingOfType("*models.Company")).Return(nil)

	company, err := svc.Create(CreateInput{
		Name:          "Acme Utilities",
		Address:       "12 Main St",
		AccountNumber: "5899438",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Utilities", company.Name)
	assert.Equal(t, "static/qrcodes/5899438.png", company.QRCode)
	assert.Equal(t, []string{"5899438"}, qr.generated)
	repo.AssertExpectations(t)
}

func TestCreate_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input CreateInput
	}{
		{"no name", CreateInput{AccountNumber: "5899438"}},
		{"no account number", CreateInput{Name: "Acme Utilities"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCompanyRepository)
			svc := NewService(repo, &stubQR{})

			company, err := svc.Create(tt.input)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Nil(t, company)
			repo.AssertNotCalled(t, "Create", mock.Anything)
		})
	}
}

func TestCreate_DuplicateAccountNumber(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewService(repo, &stubQR{})

	repo.On("Create", mock.AnythingOfType("*models.Company")).
		Return(repositories.ErrAccountNumberTaken)

	company, err := svc.Create(CreateInput{
		Name:          "Acme Utilities",
		AccountNumber: "5899438",
	})
	assert.ErrorIs(t, err, ErrAccountNumberTaken)
	assert.Nil(t, company)
}

func TestUpdate_RegeneratesQROnAccountNumberChange(t *testing.T) {
	repo := new(MockCompanyRepository)
	qr := &stubQR{}
	svc := NewService(repo, qr)

	existing := &models.Company{
		Name:          "Acme Utilities",
		AccountNumber: "5899438",
		QRCode:        "static/qrcodes/5899438.png",
	}
	existing.ID = 5
	repo.On("GetByID", uint(5)).Return(existing, nil)
	repo.On("GetByAccountNumber", "7700123").Return(nil, repositories.ErrCompanyNotFound)
	repo.On("Update", mock.AnythingOfType("*models.Company")).Return(nil)

	updated, err := svc.Update(5, UpdateInput{
		Name:          "Acme Utilities",
		AccountNumber: "7700123",
	})
	require.NoError(t, err)

	assert.Equal(t, "7700123", updated.AccountNumber)
	assert.Equal(t, "static/qrcodes/7700123.png", updated.QRCode)
	assert.Equal(t, []string{"7700123"}, qr.generated)
}

func TestUpdate_RejectsTakenAccountNumber(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewService(repo, &stubQR{})

	existing := &models.Company{Name: "Acme Utilities", AccountNumber: "5899438"}
	existing.ID = 5
	other := &models.Company{Name: "Beta Services", AccountNumber: "7700123"}
	other.ID = 6

	repo.On("GetByID", uint(5)).Return(existing, nil)
	repo.On("GetByAccountNumber", "7700123").Return(other, nil)

	updated, err := svc.Update(5, UpdateInput{AccountNumber: "7700123"})
	assert.ErrorIs(t, err, ErrAccountNumberTaken)
	assert.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestGetByAccountNumber_NotFound(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewService(repo, &stubQR{})

	repo.On("GetByAccountNumber", "0000000").Return(nil, repositories.ErrCompanyNotFound)

	company, err := svc.GetByAccountNumber("0000000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, company)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(MockCompanyRepository)
	svc := NewService(repo, &stubQR{})

	repo.On("Delete", uint(9)).Return(repositories.ErrCompanyNotFound)

	assert.ErrorIs(t, svc.Delete(9), ErrNotFound)
}
