package user

import (
	"errors"
	"fmt"

	"gowallet/internal/models"
	"gowallet/internal/repositories"
	"gowallet/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields = errors.New("name, phone and password are required")
	ErrPhoneTaken    = errors.New("phone number already registered")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
)

type Service interface {
	Register(name, phone, password string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) Register(name, phone, password string) (*models.User, error) {
	if name == "" || phone == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !validation.ValidPassword(password) {
		return nil, ErrWeakPassword
	}

	if existing, _ := s.repo.GetByPhone(phone); existing != nil {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrPhoneTaken) {
			return nil, ErrPhoneTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetByPhone(phone string) (*models.User, error) {
	return s.repo.GetByPhone(phone)
}
