package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type verifyRequest struct {
	InitData string `json:"init_data"`
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.InitData == "" {
		return middleware.BadRequest("init_data is required")
	}

	user, token, err := h.authService.Verify(c.Context(), req.InitData)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidInitData) {
			return middleware.Unauthorized("Invalid init data")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":         user,
		"access_token": token,
	})
}
