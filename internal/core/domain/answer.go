package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Answer is the outcome of a confirmation prompt.
type Answer string

const (
	// AnswerYes proceeds with the gated action.
	AnswerYes Answer = "yes"
	// AnswerNo skips the gated action. A "no" is remembered for the rest of
	// the run so repeated prompts do not block again.
	AnswerNo Answer = "no"
	// AnswerQuit aborts the whole run with a non-zero exit status.
	AnswerQuit Answer = "quit"
)

// ParseAnswer interprets a forced or typed answer. Accepted inputs are
// y/yes, n/no and q/quit in any case.
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return AnswerYes, nil
	case "n", "no":
		return AnswerNo, nil
	case "q", "quit":
		return AnswerQuit, nil
	default:
		return "", zerr.With(ErrInvalidAnswer, "answer", s)
	}
}
