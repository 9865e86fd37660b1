// Package term implements confirmation prompts on the controlling terminal.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/zephyr-ci/zephyr/internal/adapters/detector"
	"github.com/zephyr-ci/zephyr/internal/core/domain"
	"github.com/zephyr-ci/zephyr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Confirmer = (*Confirmer)(nil)

// Confirmer resolves yes/no/quit questions. Resolution order: CI
// auto-confirms, a forced answer from the environment is honored next, and
// only then is the operator prompted on the terminal. A "no" given once is
// remembered in-process and answers every later question of the run without
// prompting again.
type Confirmer struct {
	settings domain.Settings
	logger   ports.Logger
	in       io.Reader
	out      io.Writer
	attached func() bool

	mu         sync.Mutex
	rememberNo bool
}

// NewConfirmer creates a Confirmer reading from stdin and prompting on stderr.
func NewConfirmer(settings domain.Settings, logger ports.Logger) *Confirmer {
	return &Confirmer{
		settings: settings,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stderr,
		attached: detector.StdinIsTerminal,
	}
}

// WithStreams overrides the prompt streams. Used for testing.
func (c *Confirmer) WithStreams(in io.Reader, out io.Writer) *Confirmer {
	c.in = in
	c.out = out
	return c
}

// WithTerminalCheck overrides terminal detection. Used for testing.
func (c *Confirmer) WithTerminalCheck(attached func() bool) *Confirmer {
	c.attached = attached
	return c
}

// Confirm asks the given question and returns the resolved answer.
func (c *Confirmer) Confirm(ctx context.Context, question string) (domain.Answer, error) {
	// CI always proceeds, regardless of forced-answer settings.
	if c.settings.CI {
		c.logger.Info(fmt.Sprintf("auto-confirmed in CI: %s", question))
		return domain.AnswerYes, nil
	}

	if c.settings.ForcedAnswer != "" {
		answer, err := domain.ParseAnswer(c.settings.ForcedAnswer)
		if err != nil {
			return "", err
		}
		c.logger.Info(fmt.Sprintf("forced answer %q for: %s", answer, question))
		return answer, nil
	}

	c.mu.Lock()
	rememberedNo := c.rememberNo
	c.mu.Unlock()
	if rememberedNo {
		return domain.AnswerNo, nil
	}

	if !c.attached() {
		return "", domain.ErrNoTerminal
	}

	answer, err := c.prompt(ctx, question)
	if err != nil {
		return "", err
	}

	if answer == domain.AnswerNo {
		c.mu.Lock()
		c.rememberNo = true
		c.mu.Unlock()
	}
	return answer, nil
}

func (c *Confirmer) prompt(ctx context.Context, question string) (domain.Answer, error) {
	scanner := bufio.NewScanner(c.in)

	for {
		if err := ctx.Err(); err != nil {
			return "", zerr.Wrap(err, domain.ErrQuitSelected.Error())
		}

		fmt.Fprintf(c.out, "\n%s [y/n/q]: ", question)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", zerr.Wrap(err, "failed to read answer")
			}
			// Input exhausted without a usable answer.
			return "", domain.ErrNoTerminal
		}

		answer, err := domain.ParseAnswer(scanner.Text())
		if err != nil {
			fmt.Fprintf(c.out, "Wrong answer %q. Should be one of y/n/q. Try again.\n", scanner.Text())
			continue
		}
		return answer, nil
	}
}
