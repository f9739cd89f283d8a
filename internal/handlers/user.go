package handlers

import (
	"errors"

	"gowallet/internal/services/user"
	"gowallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

type registerUserRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterUser creates a wallet-holder account from the mobile client.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var req registerUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	newUser, err := h.userService.Register(req.Name, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			return response.BadRequest(c, "All fields are required")
		case errors.Is(err, user.ErrPhoneTaken):
			return response.BadRequest(c, "Phone number already registered")
		case errors.Is(err, user.ErrWeakPassword):
			return response.BadRequest(c, err.Error())
		default:
			return response.ServerError(c, "Registration failed")
		}
	}

	return response.Created(c, "User registered successfully", fiber.Map{
		"user_id": newUser.ID,
	})
}
