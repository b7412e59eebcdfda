package handler

import (
	"encoding/json"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/service/telegram"
)

type BotHandler struct {
	bot    *telegram.Bot
	logger *logrus.Logger
}

func NewBotHandler(bot *telegram.Bot, logger *logrus.Logger) *BotHandler {
	return &BotHandler{
		bot:    bot,
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// SendMessage relays a message to a Telegram chat on behalf of the
// authenticated frontend. Unlike notification side effects this delivery
// is the whole point of the call, so upstream failures surface as 502.
func (h *BotHandler) SendMessage(c *fiber.Ctx) error {
	if h.bot == nil {
		return middleware.BadGateway("Telegram bot is not configured")
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.ChatID == 0 || req.Text == "" {
		return middleware.BadRequest("chat_id and text are required")
	}

	if err := h.bot.Send(c.Context(), req.ChatID, req.Text); err != nil {
		h.logger.WithError(err).WithField("chat_id", req.ChatID).Error("failed to relay message")
		return middleware.BadGateway("Failed to deliver message")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
}

// Webhook receives Telegram update payloads. It always answers 200 so
// Telegram does not retry updates we chose to ignore.
func (h *BotHandler) Webhook(c *fiber.Ctx) error {
	if h.bot == nil {
		return c.SendStatus(fiber.StatusOK)
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		h.logger.WithError(err).Warn("failed to parse webhook update")
		return c.SendStatus(fiber.StatusOK)
	}

	h.bot.HandleUpdate(update)

	return c.SendStatus(fiber.StatusOK)
}
