package telegram

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"telegram-canteen-bot/internal/application"
	"telegram-canteen-bot/internal/config"
	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/usecase"
)

// ---- fake bot API ----

type fakeBotAPI struct {
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
}

func (f *fakeBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeBotAPI) GetUpdatesChan(_ tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	ch := make(chan tgbotapi.Update)
	close(ch)
	return ch
}

func (f *fakeBotAPI) deletions() []tgbotapi.DeleteMessageConfig {
	var out []tgbotapi.DeleteMessageConfig
	for _, c := range f.requested {
		if d, ok := c.(tgbotapi.DeleteMessageConfig); ok {
			out = append(out, d)
		}
	}
	return out
}

// ---- stub canteen API behind the facade ----

type stubCanteenAPI struct{}

func (stubCanteenAPI) ListRestaurants(_ context.Context) (map[string]model.Restaurant, error) {
	return map[string]model.Restaurant{
		"52": {ID: "52", Name: "Alvari", OpeningHours: []string{"10:30-14:00"}},
		"7":  {ID: "7", Name: "Täffä", OpeningHours: []string{"11:00-14:00"}},
	}, nil
}

func (stubCanteenAPI) GetMenu(_ context.Context, _, _ string) ([]model.MenuItem, error) {
	return []model.MenuItem{{Title: "Pea soup"}}, nil
}

func newTestAdapter(fake *fakeBotAPI) *RealTelegramBotAdapter {
	api := stubCanteenAPI{}
	facade := application.NewBotFacade(usecase.NewRestaurantUseCase(api), usecase.NewMenuUseCase(api))
	logger := zerolog.Nop()
	return &RealTelegramBotAdapter{
		bot:    fake,
		cfg:    &config.Config{},
		facade: facade,
		log:    &logger,
		now:    func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func query(data, text string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cbq-1",
		From: &tgbotapi.User{ID: 7},
		Message: &tgbotapi.Message{
			MessageID: 42,
			Chat:      &tgbotapi.Chat{ID: 7},
			Text:      text,
		},
		Data: data,
	}
}

func TestHandleQuery_CancelPrefixAlwaysDeletes(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"cancel", "cancel_menu", "cancel_opening_hours", "cancelanything"} {
		fake := &fakeBotAPI{}
		r := newTestAdapter(fake)

		if err := r.handleQuery(context.Background(), query(data, "whatever")); err != nil {
			t.Fatalf("%q: handleQuery returned error: %v", data, err)
		}
		dels := fake.deletions()
		if len(dels) != 1 {
			t.Fatalf("%q: expected one deletion, got %d", data, len(dels))
		}
		if dels[0].ChatID != 7 || dels[0].MessageID != 42 {
			t.Fatalf("%q: deletion targeted wrong message: %+v", data, dels[0])
		}
	}
}

func TestHandleQuery_UnknownTokenDeletes(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"bogus", "option_cancel", "option_unexpected", ""} {
		fake := &fakeBotAPI{}
		r := newTestAdapter(fake)

		if err := r.handleQuery(context.Background(), query(data, "whatever")); err != nil {
			t.Fatalf("%q: handleQuery returned error: %v", data, err)
		}
		if len(fake.deletions()) != 1 {
			t.Fatalf("%q: expected message deletion", data)
		}
	}
}

func TestHandleQuery_AnswersCallbackToStopSpinner(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("option_menu", "")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	var answered bool
	for _, c := range fake.requested {
		if cb, ok := c.(tgbotapi.CallbackConfig); ok && cb.CallbackQueryID == "cbq-1" {
			answered = true
		}
	}
	if !answered {
		t.Fatalf("callback query was not answered")
	}
}

func TestOptionMenu_ShowsCanteenPicker(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("option_menu", "")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("expected one edit, got %d", len(fake.sent))
	}
	edit, ok := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("expected EditMessageTextConfig, got %T", fake.sent[0])
	}
	if edit.Text != "<b>Menu</b>\nChoose the canteen:" {
		t.Fatalf("unexpected text %q", edit.Text)
	}
	if edit.ParseMode != tgbotapi.ModeHTML {
		t.Fatalf("expected HTML parse mode, got %q", edit.ParseMode)
	}
	rows := edit.ReplyMarkup.InlineKeyboard
	// two canteens -> one paired row + cancel row
	if len(rows) != 2 || len(rows[0]) != 2 {
		t.Fatalf("unexpected keyboard shape: %+v", rows)
	}
}

func TestOptionLink_ShowsSiteURL(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("option_link", "")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	edit := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != application.CanteenSiteURL {
		t.Fatalf("unexpected text %q", edit.Text)
	}
	if edit.ParseMode != "" {
		t.Fatalf("link screen should be plain text, got parse mode %q", edit.ParseMode)
	}
	row := edit.ReplyMarkup.InlineKeyboard[0]
	if *row[0].CallbackData != "cancel_link" || *row[1].CallbackData != "send_link" {
		t.Fatalf("expected cancel/send footer, got %+v", row)
	}
}

func TestMenuCanteen_ShowsDatePicker(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("menu_canteen_52", "")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	edit := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != "<b>Menu date</b>\nChoose the date:" {
		t.Fatalf("unexpected text %q", edit.Text)
	}
	rows := edit.ReplyMarkup.InlineKeyboard
	if len(rows) != 8 {
		t.Fatalf("expected 7 date rows plus cancel, got %d", len(rows))
	}
	if got := *rows[0][0].CallbackData; got != "menu_date_2024-05-15|52" {
		t.Fatalf("unexpected callback data %q", got)
	}
}

func TestMenuDate_DisplaysMenu(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("menu_date_2024-05-15|52", "")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	edit := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != "<b>Alvari (2024-05-15)</b>\n<code>1. Pea soup\n</code>" {
		t.Fatalf("unexpected text %q", edit.Text)
	}
	row := edit.ReplyMarkup.InlineKeyboard[0]
	if *row[0].CallbackData != "cancel_menu" || *row[1].CallbackData != "send_menu" {
		t.Fatalf("expected cancel/send footer, got %+v", row)
	}
}

func TestMenuDate_MalformedPayloadDeletes(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("menu_date_2024-05-15", "")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	if len(fake.deletions()) != 1 {
		t.Fatalf("expected message deletion for malformed payload")
	}
}

func TestSend_ReformatsContentScreens(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	text := "Alvari (2024-05-15)\n1. Pea soup"
	if err := r.handleQuery(context.Background(), query("send_menu", text)); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	edit := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != "<b>Alvari (2024-05-15)</b>\n<code>1. Pea soup</code>" {
		t.Fatalf("unexpected text %q", edit.Text)
	}
	if edit.ReplyMarkup != nil {
		t.Fatalf("expected keyboard to be dropped")
	}
}

func TestSend_LinkKeepsText(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("send_link", "https://kanttiinit.fi")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	edit := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != "https://kanttiinit.fi" {
		t.Fatalf("unexpected text %q", edit.Text)
	}
}

func TestSend_UnknownOperationFallsBack(t *testing.T) {
	t.Parallel()

	fake := &fakeBotAPI{}
	r := newTestAdapter(fake)

	if err := r.handleQuery(context.Background(), query("send_surprise", "anything")); err != nil {
		t.Fatalf("handleQuery returned error: %v", err)
	}
	edit := fake.sent[0].(tgbotapi.EditMessageTextConfig)
	if edit.Text != "Command not found" {
		t.Fatalf("unexpected text %q", edit.Text)
	}
}
