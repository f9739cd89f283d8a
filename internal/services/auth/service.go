// Package auth verifies credentials and issues bearer tokens for both
// wallet users and administrators.
package auth

import (
	"errors"
	"log"

	"gowallet/internal/models"
	"gowallet/internal/repositories"
	"gowallet/internal/utils"
	"gowallet/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin with this username or email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain a special character")
)

type Service interface {
	// LoginUser verifies a wallet user's phone/password pair and
	// returns the user with a signed bearer token.
	LoginUser(phone, password string) (*models.User, string, error)

	// RegisterAdmin creates an operator identity for the management surface.
	RegisterAdmin(username, email, password string) (*models.Admin, error)

	// LoginAdmin verifies an administrator and returns a signed token
	// carrying the admin role.
	LoginAdmin(email, password string) (*models.Admin, string, error)

	// ResolveUser maps token claims back to a stored user. Tokens for
	// deleted users fail here.
	ResolveUser(claims *models.UserClaims) (*models.User, error)
}

type service struct {
	users  repositories.UserRepository
	admins repositories.AdminRepository
}

func NewService(users repositories.UserRepository, admins repositories.AdminRepository) Service {
	return &service{
		users:  users,
		admins: admins,
	}
}

func (s *service) LoginUser(phone, password string) (*models.User, string, error) {
	user, err := s.users.GetByPhone(phone)
	if err != nil {
		log.Printf("login failed: no user for phone %s", phone)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("login failed: bad password for user %d", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(&models.UserClaims{
		UserID: user.ID,
		Phone:  user.Phone,
		Role:   models.RoleUser,
	})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *service) RegisterAdmin(username, email, password string) (*models.Admin, error) {
	if !validation.ValidPassword(password) || !validation.HasSpecialChar(password) {
		return nil, ErrWeakPassword
	}

	if existing, _ := s.admins.GetByUsernameOrEmail(username, email); existing != nil {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.admins.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *service) LoginAdmin(email, password string) (*models.Admin, string, error) {
	admin, err := s.admins.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(&models.UserClaims{
		UserID: admin.ID,
		Role:   models.RoleAdmin,
	})
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

func (s *service) ResolveUser(claims *models.UserClaims) (*models.User, error) {
	return s.users.GetByID(claims.UserID)
}
