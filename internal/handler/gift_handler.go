package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/service/gift"
)

type GiftHandler struct {
	giftService gift.Service
}

func NewGiftHandler(giftService gift.Service) *GiftHandler {
	return &GiftHandler{giftService: giftService}
}

func (h *GiftHandler) Mark(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	wishID, err := parseWishID(c)
	if err != nil {
		return err
	}

	claim, err := h.giftService.Mark(c.Context(), wishID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWishNotFound) {
			return middleware.NotFound("Wish not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(claim)
}

func (h *GiftHandler) Unmark(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	wishID, err := parseWishID(c)
	if err != nil {
		return err
	}

	if err := h.giftService.Unmark(c.Context(), wishID, userID); err != nil {
		if errors.Is(err, domain.ErrWishNotFound) {
			return middleware.NotFound("Wish not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *GiftHandler) ListGifters(c *fiber.Ctx) error {
	wishID, err := parseWishID(c)
	if err != nil {
		return err
	}

	gifters, err := h.giftService.ListGifters(c.Context(), wishID)
	if err != nil {
		if errors.Is(err, domain.ErrWishNotFound) {
			return middleware.NotFound("Wish not found")
		}
		return err
	}
	if gifters == nil {
		gifters = []domain.Gifter{}
	}

	return c.Status(fiber.StatusOK).JSON(gifters)
}
