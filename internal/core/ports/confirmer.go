package ports

import (
	"context"

	"github.com/zephyr-ci/zephyr/internal/core/domain"
)

// Confirmer gates destructive or expensive actions behind a yes/no/quit
// question. Implementations auto-answer in CI, honor forced answers from
// the environment, and remember a "no" for the remainder of the run.
//
//go:generate mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Confirm asks the given question and returns the resolved answer.
	// It returns domain.ErrNoTerminal when an interactive answer is needed
	// but no terminal is attached.
	Confirm(ctx context.Context, question string) (domain.Answer, error)
}
