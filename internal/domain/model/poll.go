// File: internal/domain/model/poll.go
package model

// LunchPoll describes a single fire-and-forget Telegram poll.
type LunchPoll struct {
	Question              string
	Options               []string
	IsAnonymous           bool
	AllowsMultipleAnswers bool
}
