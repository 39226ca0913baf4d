package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-canteen-bot/internal/domain/model"
)

// actions shown by /canteens, one button per row.
var actions = []string{"Link", "Menu", "Opening Hours", "Cancel"}

func actionKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(actions))
	for _, a := range actions {
		data := "option_" + strings.ToLower(strings.ReplaceAll(a, " ", "-"))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a, data)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// canteenKeyboard lays the canteens out in two columns. An odd count stretches
// the final canteen across a full-width row. A Cancel row closes the keyboard.
func canteenKeyboard(callbackPrefix string, rests []model.Restaurant) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rests)/2+2)
	for i := 0; i+1 < len(rests); i += 2 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(rests[i].Name, callbackPrefix+"_"+rests[i].ID),
			tgbotapi.NewInlineKeyboardButtonData(rests[i+1].Name, callbackPrefix+"_"+rests[i+1].ID),
		))
	}
	if len(rests)%2 == 1 {
		last := rests[len(rests)-1]
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(last.Name, callbackPrefix+"_"+last.ID)))
	}
	rows = append(rows, cancelRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cancelRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Cancel", "cancel"))
}

// cancelSendKeyboard is the footer under a content screen: Cancel deletes the
// message, Send freezes it in its final form.
func cancelSendKeyboard(callbackSuffix string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Cancel", "cancel_"+callbackSuffix),
		tgbotapi.NewInlineKeyboardButtonData("Send", "send_"+callbackSuffix),
	))
}

// dateKeyboard offers today plus the next six days, one per row. The ISO date
// and the restaurant id travel together in the callback data.
func dateKeyboard(restaurantID string, today time.Time) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 8)
	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i)
		data := fmt.Sprintf("menu_date_%s|%s", d.Format("2006-01-02"), restaurantID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d.Format("02.01.06 (Mon)"), data)))
	}
	rows = append(rows, cancelRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
