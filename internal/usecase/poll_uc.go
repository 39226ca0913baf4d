package usecase

import (
	"fmt"
	"time"

	"telegram-canteen-bot/internal/domain/model"
)

// lunchOptions is the fixed option list of the lunch-time poll.
var lunchOptions = []string{"11-12h", "12-13h", "13-14h", "14-15h", "later/other"}

// PollUseCase builds the daily lunch-time poll. The clock is injected so
// "tomorrow" is deterministic under test.
type PollUseCase struct {
	now func() time.Time
}

// NewPollUseCase constructs a PollUseCase. A nil clock defaults to time.Now.
func NewPollUseCase(now func() time.Time) *PollUseCase {
	if now == nil {
		now = time.Now
	}
	return &PollUseCase{now: now}
}

// BuildLunchPoll returns the poll for tomorrow's lunch: non-anonymous,
// multiple answers allowed, question like "Lunch Monday (02.01.2006)".
func (uc *PollUseCase) BuildLunchPoll() model.LunchPoll {
	tomorrow := uc.now().AddDate(0, 0, 1)
	opts := make([]string, len(lunchOptions))
	copy(opts, lunchOptions)
	return model.LunchPoll{
		Question:              fmt.Sprintf("Lunch %s", tomorrow.Format("Monday (02.01.2006)")),
		Options:               opts,
		IsAnonymous:           false,
		AllowsMultipleAnswers: true,
	}
}
