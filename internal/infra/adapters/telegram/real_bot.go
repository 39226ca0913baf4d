package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-canteen-bot/internal/application"
	"telegram-canteen-bot/internal/config"
	"telegram-canteen-bot/internal/infra/logging"
	"telegram-canteen-bot/internal/infra/metrics"
)

// botAPI is the slice of tgbotapi.BotAPI the adapter uses; tests plug in a fake.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

var _ botAPI = (*tgbotapi.BotAPI)(nil)

// RealTelegramBotAdapter uses tgbotapi to poll updates and delegates to BotFacade.
type RealTelegramBotAdapter struct {
	bot    botAPI
	cfg    *config.Config
	facade *application.BotFacade
	log    *zerolog.Logger
	now    func() time.Time
}

func NewRealTelegramBotAdapter(cfg *config.Config, facade *application.BotFacade, logger *zerolog.Logger) (*RealTelegramBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return nil, err
	}

	return &RealTelegramBotAdapter{
		bot:    bot,
		cfg:    cfg,
		facade: facade,
		log:    logger,
		now:    time.Now,
	}, nil
}

// StartPolling registers the command help and consumes the long-poll update
// stream until ctx is cancelled. Updates are handled one at a time; a handler
// finishes before the next update is read, so no state is shared across
// in-flight handlers.
func (r *RealTelegramBotAdapter) StartPolling(ctx context.Context) error {
	if err := r.setMenuCommands(); err != nil {
		r.log.Warn().Err(err).Msg("failed to set bot commands")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case up, ok := <-updates:
			if !ok {
				return nil
			}
			uctx := logging.WithTraceID(ctx, uuid.NewString())
			if err := r.handleUpdate(uctx, up); err != nil {
				logging.With(uctx, r.log).Error().Err(err).Msg("update handling failed")
			}
		}
	}
}

func (r *RealTelegramBotAdapter) setMenuCommands() error {
	cmds := tgbotapi.NewSetMyCommands(tgbotapi.BotCommand{
		Command:     "canteens",
		Description: fmt.Sprintf("%s canteen commands.", r.cfg.Canteen.Area),
	})
	_, err := r.bot.Request(cmds)
	return err
}

func (r *RealTelegramBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	// ----- Inline button callbacks -----
	if update.CallbackQuery != nil {
		err := r.handleQuery(ctx, update.CallbackQuery)
		metrics.IncUpdate("callback", err == nil)
		return err
	}

	// ----- Regular messages -----
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	ctx = logging.WithChatID(ctx, msg.Chat.ID)

	if !msg.IsCommand() {
		metrics.IncUpdate("message", true)
		return nil
	}

	var err error
	if fn, ok := r.commandRoutes()[msg.Command()]; ok {
		err = fn(ctx, msg)
	} else {
		err = r.SendMessage(ctx, msg.Chat.ID, "Command not found")
	}
	metrics.IncUpdate("command", err == nil)
	return err
}

// SendMessage sends a plain text message to a chat.
func (r *RealTelegramBotAdapter) SendMessage(_ context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := r.bot.Send(msg)
	return err
}

// editMessage replaces the text (and optionally the keyboard) of an existing
// message. Navigation happens by editing the same message in place, so the
// whole flow lives in a single chat bubble.
func (r *RealTelegramBotAdapter) editMessage(chatID int64, messageID int, text, parseMode string, markup *tgbotapi.InlineKeyboardMarkup) error {
	var c tgbotapi.Chattable
	if markup != nil {
		m := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *markup)
		m.ParseMode = parseMode
		c = m
	} else {
		m := tgbotapi.NewEditMessageText(chatID, messageID, text)
		m.ParseMode = parseMode
		c = m
	}
	_, err := r.bot.Send(c)
	return err
}

func (r *RealTelegramBotAdapter) deleteMessage(chatID int64, messageID int) error {
	_, err := r.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}
