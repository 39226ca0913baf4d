package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type commandHandler func(ctx context.Context, message *tgbotapi.Message) error

// commandRoutes defines all available bot commands and their handlers.
func (r *RealTelegramBotAdapter) commandRoutes() map[string]commandHandler {
	return map[string]commandHandler{
		"canteens": r.handleCanteensCommand,
	}
}

// handleCanteensCommand opens the action picker that starts the navigation flow.
func (r *RealTelegramBotAdapter) handleCanteensCommand(_ context.Context, message *tgbotapi.Message) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, "Choose the action: ")
	msg.ReplyMarkup = actionKeyboard()
	msg.DisableNotification = true
	_, err := r.bot.Send(msg)
	return err
}
