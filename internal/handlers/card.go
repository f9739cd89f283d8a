package handlers

import (
	"errors"

	"gowallet/internal/models"
	"gowallet/internal/services/card"
	"gowallet/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCard issues a virtual card. This is the boundary consumed by
// the external registration collaborator: it addresses the owner by
// phone number and is not gated by a user token.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var input card.CreateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	created, err := h.cardService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, card.ErrMissingFields):
			return response.BadRequest(c, "Missing required fields")
		case errors.Is(err, card.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.ServerError(c, "Failed to add card")
		}
	}

	return response.Created(c, "Card added successfully", fiber.Map{
		"card_info": card.CardInfo{
			MaskedNumber: created.MaskedNumber,
			Balance:      created.Balance,
		},
	})
}

// ListUserCards returns the authenticated user's cards. The phone in
// the path must match the token's identity.
func (h *CardHandler) ListUserCards(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)

	if claims.Phone != c.Params("phone") {
		return response.Error(c, fiber.StatusForbidden, "Unauthorized access")
	}

	cards, err := h.cardService.ListForUser(claims.UserID)
	if err != nil {
		return response.ServerError(c, "Failed to fetch cards")
	}

	cardsData := make([]fiber.Map, 0, len(cards))
	for _, cardRecord := range cards {
		cardsData = append(cardsData, fiber.Map{
			"id":              cardRecord.ID,
			"masked_number":   cardRecord.MaskedNumber,
			"expiry_month":    cardRecord.ExpiryMonth,
			"expiry_year":     cardRecord.ExpiryYear,
			"cardholder_name": cardRecord.CardholderName,
		})
	}

	return c.JSON(fiber.Map{"cards": cardsData})
}

// GetCard returns card details plus its recent transactions.
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	cardID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	detail, err := h.cardService.Get(uint(cardID))
	if err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return response.NotFound(c, "Card not found")
		}
		return response.ServerError(c, "Failed to fetch card")
	}

	return c.JSON(fiber.Map{
		"id":                  detail.Card.ID,
		"masked_number":       detail.Card.MaskedNumber,
		"cardholder_name":     detail.Card.CardholderName,
		"expiry_month":        detail.Card.ExpiryMonth,
		"expiry_year":         detail.Card.ExpiryYear,
		"balance":             detail.Card.Balance,
		"recent_transactions": detail.RecentTransactions,
	})
}

// DeleteCard removes one of the authenticated user's own cards.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*models.UserClaims)
	cardID, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid card ID")
	}

	if err := h.cardService.Delete(uint(cardID), claims.UserID); err != nil {
		if errors.Is(err, card.ErrCardNotFound) {
			return response.NotFound(c, "Card not found or access denied")
		}
		return response.ServerError(c, "Failed to delete card")
	}

	return response.Success(c, "Card successfully deleted", nil)
}
