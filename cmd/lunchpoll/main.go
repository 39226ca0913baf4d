// File: cmd/lunchpoll/main.go
//
// One-shot lunch poll sender: builds tomorrow's lunch-time poll and posts it
// to the configured chat (optionally into a forum thread). Exits 0 on success,
// 1 with the error body printed on failure.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"telegram-canteen-bot/internal/domain/model"
	"telegram-canteen-bot/internal/usecase"
)

type envConfig struct {
	Token    string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"true"`
	ThreadID int    `envconfig:"TELEGRAM_THREAD_ID"`
}

// pollParams builds the sendPoll request body. is_anonymous is written
// unconditionally: Params.AddBool drops false values, and Telegram defaults an
// absent is_anonymous to true, which would hide who voted.
func pollParams(poll model.LunchPoll, chatID int64, threadID int) (tgbotapi.Params, error) {
	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", chatID)
	params.AddNonZero("message_thread_id", threadID)
	params["question"] = poll.Question
	if err := params.AddInterface("options", poll.Options); err != nil {
		return nil, err
	}
	params.AddBool("allows_multiple_answers", poll.AllowsMultipleAnswers)
	params["is_anonymous"] = strconv.FormatBool(poll.IsAnonymous)
	return params, nil
}

func main() {
	// Best effort: a missing .env is fine.
	_ = godotenv.Load()

	var cfg envConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	poll := usecase.NewPollUseCase(nil).BuildLunchPoll()

	// Construct the client without the usual getMe probe so the whole run is
	// a single sendPoll POST.
	bot := &tgbotapi.BotAPI{
		Token:  cfg.Token,
		Client: &http.Client{Timeout: 30 * time.Second},
		Buffer: 100,
	}
	bot.SetAPIEndpoint(tgbotapi.APIEndpoint)

	params, err := pollParams(poll, cfg.ChatID, cfg.ThreadID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode options: %v\n", err)
		os.Exit(1)
	}

	resp, err := bot.MakeRequest("sendPoll", params)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error sending poll")
		if resp != nil {
			fmt.Fprintf(os.Stderr, "%d: %s\n", resp.ErrorCode, resp.Description)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
