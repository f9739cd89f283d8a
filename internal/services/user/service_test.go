package user

import (
	"strings"
	"testing"

	"gowallet/internal/models"
	"gowallet/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByPhone(phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func TestRegister(t *testing.T) {
	t.Run("stores hashed password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		repo.On("GetByPhone", "+15550001111").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.Register("Alice", "+15550001111", "correct horse")
		require.NoError(t, err)

		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "+15550001111", user.Phone)
		assert.NotEqual(t, "correct horse", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
	})

	t.Run("missing fields", func(t *testing.T) {
		tests := []struct {
			name                  string
			userName, phone, pass string
		}{
			{"no name", "", "+15550001111", "correct horse"},
			{"no phone", "Alice", "", "correct horse"},
			{"no password", "Alice", "+15550001111", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockUserRepository)
				svc := NewService(repo)

				user, err := svc.Register(tt.userName, tt.phone, tt.pass)
				assert.ErrorIs(t, err, ErrMissingFields)
				assert.Nil(t, user)
				repo.AssertNotCalled(t, "Create", mock.Anything)
			})
		}
	})

	t.Run("short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		user, err := svc.Register("Alice", "+15550001111", "short")
		assert.ErrorIs(t, err, ErrWeakPassword)
		assert.Nil(t, user)
	})

	t.Run("hash failure keeps its cause", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		repo.On("GetByPhone", "+15550001111").Return(nil, repositories.ErrUserNotFound)

		// bcrypt rejects inputs longer than 72 bytes.
		user, err := svc.Register("Alice", "+15550001111", strings.Repeat("x", 80))
		assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
		assert.Nil(t, user)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		existing := &models.User{Name: "Bob", Phone: "+15550001111"}
		repo.On("GetByPhone", "+15550001111").Return(existing, nil)

		user, err := svc.Register("Alice", "+15550001111", "correct horse")
		assert.ErrorIs(t, err, ErrPhoneTaken)
		assert.Nil(t, user)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("lost race on unique phone index", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo)

		repo.On("GetByPhone", "+15550001111").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrPhoneTaken)

		user, err := svc.Register("Alice", "+15550001111", "correct horse")
		assert.ErrorIs(t, err, ErrPhoneTaken)
		assert.Nil(t, user)
	})
}
