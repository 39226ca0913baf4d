package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-canteen-bot/internal/infra/logging"
	"telegram-canteen-bot/internal/infra/metrics"
)

// callback carries everything a button press needs: navigation state is
// round-tripped through Data, the screen content through Text. There is no
// server-side session.
type callback struct {
	ChatID    int64
	MessageID int
	Data      string
	Text      string // current plain text of the message the button sits under
}

type cbHandler func(ctx context.Context, cb callback) error

type prefixCB struct {
	Prefix string
	Fn     cbHandler
}

// Exact-match callbacks
func (r *RealTelegramBotAdapter) cbRoutes() map[string]cbHandler {
	return map[string]cbHandler{
		"option_link":          r.linkCBRoute,
		"option_menu":          r.menuCanteensCBRoute,
		"option_opening-hours": r.openingHoursCanteensCBRoute,
	}
}

// Prefix-match callbacks
func (r *RealTelegramBotAdapter) cbPrefixRoutes() []prefixCB {
	return []prefixCB{
		{Prefix: "opening_hours_", Fn: r.openingHoursCBRoute},
		{Prefix: "menu_canteen_", Fn: r.menuDateCBRoute},
		{Prefix: "menu_date_", Fn: r.menuDisplayCBRoute},
		{Prefix: "send_", Fn: r.sendCBRoute},
		// Cancel deletes the message no matter which screen the suffix names.
		{Prefix: "cancel", Fn: r.deleteCBRoute},
	}
}

// routeCallback resolves callback data to a handler and a route name for
// metrics. Unrecognized tokens (including "option_cancel") fall through to
// message deletion.
func (r *RealTelegramBotAdapter) routeCallback(data string) (string, cbHandler) {
	if fn, ok := r.cbRoutes()[data]; ok {
		return data, fn
	}
	for _, pr := range r.cbPrefixRoutes() {
		if strings.HasPrefix(data, pr.Prefix) {
			return pr.Prefix, pr.Fn
		}
	}
	return "unknown", r.deleteCBRoute
}

func (r *RealTelegramBotAdapter) handleQuery(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query == nil || query.From == nil {
		return errors.New("invalid callback query")
	}

	// Stop the telegram spinner when we return.
	defer func() { _, _ = r.bot.Request(tgbotapi.NewCallback(query.ID, "")) }()

	if query.Message == nil || query.Message.Chat == nil {
		return nil
	}
	cb := callback{
		ChatID:    query.Message.Chat.ID,
		MessageID: query.Message.MessageID,
		Data:      strings.TrimSpace(query.Data),
		Text:      query.Message.Text,
	}
	ctx = logging.WithChatID(ctx, cb.ChatID)

	route, fn := r.routeCallback(cb.Data)
	metrics.IncCallbackRoute(route)
	return fn(ctx, cb)
}

// linkCBRoute shows the canteen website with the Cancel/Send footer.
func (r *RealTelegramBotAdapter) linkCBRoute(_ context.Context, cb callback) error {
	markup := cancelSendKeyboard("link")
	return r.editMessage(cb.ChatID, cb.MessageID, r.facade.HandleLink(), "", &markup)
}

func (r *RealTelegramBotAdapter) menuCanteensCBRoute(ctx context.Context, cb callback) error {
	return r.showCanteenPicker(ctx, cb, "Menu", "menu_canteen")
}

func (r *RealTelegramBotAdapter) openingHoursCanteensCBRoute(ctx context.Context, cb callback) error {
	return r.showCanteenPicker(ctx, cb, "Opening Hours", "opening_hours")
}

func (r *RealTelegramBotAdapter) showCanteenPicker(ctx context.Context, cb callback, title, callbackPrefix string) error {
	rests, err := r.facade.ListCanteens(ctx)
	if err != nil {
		return err
	}
	markup := canteenKeyboard(callbackPrefix, rests)
	text := fmt.Sprintf("<b>%s</b>\nChoose the canteen:", title)
	return r.editMessage(cb.ChatID, cb.MessageID, text, tgbotapi.ModeHTML, &markup)
}

// openingHoursCBRoute displays the weekly hours of the chosen canteen.
func (r *RealTelegramBotAdapter) openingHoursCBRoute(ctx context.Context, cb callback) error {
	id := strings.TrimPrefix(cb.Data, "opening_hours_")
	text, err := r.facade.HandleOpeningHours(ctx, id)
	if err != nil {
		return err
	}
	markup := cancelSendKeyboard("opening_hours")
	return r.editMessage(cb.ChatID, cb.MessageID, text, tgbotapi.ModeHTML, &markup)
}

// menuDateCBRoute displays the seven-day date picker for the chosen canteen.
func (r *RealTelegramBotAdapter) menuDateCBRoute(_ context.Context, cb callback) error {
	id := strings.TrimPrefix(cb.Data, "menu_canteen_")
	markup := dateKeyboard(id, r.now())
	return r.editMessage(cb.ChatID, cb.MessageID, "<b>Menu date</b>\nChoose the date:", tgbotapi.ModeHTML, &markup)
}

// menuDisplayCBRoute displays the menu of the chosen canteen and date.
func (r *RealTelegramBotAdapter) menuDisplayCBRoute(ctx context.Context, cb callback) error {
	payload := strings.TrimPrefix(cb.Data, "menu_date_")
	date, id, ok := strings.Cut(payload, "|")
	if !ok {
		// Malformed state token: drop the message rather than guess.
		return r.deleteCBRoute(ctx, cb)
	}
	text, err := r.facade.HandleMenu(ctx, id, date)
	if err != nil {
		return err
	}
	markup := cancelSendKeyboard("menu")
	return r.editMessage(cb.ChatID, cb.MessageID, text, tgbotapi.ModeHTML, &markup)
}

// sendCBRoute freezes the current screen: the keyboard is dropped and the text
// re-rendered in its final form. The plain text lost its entities on the round
// trip, so the bold-header/code-body shape is restored here.
func (r *RealTelegramBotAdapter) sendCBRoute(_ context.Context, cb callback) error {
	op := strings.TrimPrefix(cb.Data, "send_")
	var text string
	switch op {
	case "opening_hours", "menu":
		header, body, _ := strings.Cut(cb.Text, "\n")
		text = fmt.Sprintf("<b>%s</b>\n<code>%s</code>", header, body)
	case "link":
		text = cb.Text
	default:
		text = "Command not found"
	}
	return r.editMessage(cb.ChatID, cb.MessageID, text, tgbotapi.ModeHTML, nil)
}

func (r *RealTelegramBotAdapter) deleteCBRoute(_ context.Context, cb callback) error {
	return r.deleteMessage(cb.ChatID, cb.MessageID)
}
