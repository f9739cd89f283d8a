// Package handlers contains the fiber HTTP handlers. They translate
// between the wire format and the service layer and hold no business
// logic of their own.
package handlers

import (
	"errors"

	"gowallet/internal/services/auth"
	"gowallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginUserRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginUser authenticates a wallet holder by phone and password.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req loginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if req.Phone == "" || req.Password == "" {
		return response.BadRequest(c, "Missing phone or password")
	}

	user, token, err := h.authService.LoginUser(req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Error(c, fiber.StatusUnauthorized, "Invalid phone or password")
		}
		return response.ServerError(c, "Login failed")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"user_id": user.ID,
		"phone":   user.Phone,
		"token":   token,
	})
}

type registerAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterAdmin creates an operator account for the management surface.
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var req registerAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "All fields are required")
	}

	admin, err := h.authService.RegisterAdmin(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAdminExists):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, auth.ErrWeakPassword):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Registration failed")
		}
	}

	return response.Created(c, "Registration successful", fiber.Map{
		"admin_id": admin.ID,
		"username": admin.Username,
	})
}

type loginAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginAdmin authenticates an operator and issues an admin token.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var req loginAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "All fields are required")
	}

	admin, token, err := h.authService.LoginAdmin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return response.ServerError(c, "Login failed")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"admin_id": admin.ID,
		"token":    token,
	})
}
