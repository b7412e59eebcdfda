package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/service/notification"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return middleware.BadRequest("Invalid limit")
		}
		limit = parsed
	}

	notifications, err := h.notificationService.List(c.Context(), userID, limit)
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	return c.Status(fiber.StatusOK).JSON(notifications)
}
