// Package telegram is the outbound-message and webhook collaborator. All
// sends triggered as side effects of core operations are best-effort: a
// delivery failure is logged and never propagated to the caller.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	api         *tgbotapi.BotAPI
	logger      *logrus.Logger
	frontendURL string
}

func NewBot(token, frontendURL string, logger *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Infof("Authorized on bot account %s", api.Self.UserName)

	return &Bot{
		api:         api,
		logger:      logger,
		frontendURL: frontendURL,
	}, nil
}

// Send delivers plain text to the chat. Telegram chat ids equal user ids
// for private chats, so the destination is simply the recipient user id.
func (b *Bot) Send(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// The v5 library predates web-app buttons, so the markup is built from
// local types matching the Bot API wire format. ReplyMarkup is marshaled
// as-is into the reply_markup request parameter.
type webAppInfo struct {
	URL string `json:"url"`
}

type webAppButton struct {
	Text   string     `json:"text"`
	WebApp webAppInfo `json:"web_app"`
}

type webAppKeyboard struct {
	InlineKeyboard [][]webAppButton `json:"inline_keyboard"`
}

// SendWebApp delivers text with a single inline button opening url as a
// Telegram web app.
func (b *Bot) SendWebApp(ctx context.Context, chatID int64, text, buttonText, url string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = webAppKeyboard{
		InlineKeyboard: [][]webAppButton{{
			{
				Text:   buttonText,
				WebApp: webAppInfo{URL: url},
			},
		}},
	}

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send web app message: %w", err)
	}
	return nil
}

// HandleUpdate processes a webhook update. Only the /start command is
// handled; everything else is ignored.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	switch update.Message.Command() {
	case "start":
		chatID := update.Message.Chat.ID
		text := "\U0001F44B Welcome to the Wishlist mini app!\n\nTap the button below to open it."
		if err := b.SendWebApp(context.Background(), chatID, text, "\U0001F4F1 Open Wishlist", b.frontendURL); err != nil {
			b.logger.WithError(err).WithField("chat_id", chatID).Error("failed to reply to /start")
		}
	}
}
