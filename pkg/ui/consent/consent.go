// Package consent prompts the user to affirm subject consent before a
// wrapped tool is allowed to run.
package consent

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/osintkit/attest/pkg/ui/themes"
)

var (
	// ErrNotInteractive is returned when stdin is not a terminal.
	ErrNotInteractive = errors.New("not running interactively")

	// ErrDeclined is returned when the user does not affirm consent.
	ErrDeclined = errors.New("consent not confirmed")
)

const (
	promptTitle = "I confirm that I have explicit consent from the search subject."
	promptDesc  = "Declining aborts without running the tool."
)

// Prompter asks for an affirmative consent confirmation.
type Prompter struct {
	t          *themes.Theme
	isTerminal func() bool
}

func NewPrompter(t *themes.Theme, opts ...PrompterOpt) *Prompter {
	p := &Prompter{
		t: t,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

type PrompterOpt func(*Prompter)

// WithTerminalCheck overrides interactivity detection, primarily for tests.
func WithTerminalCheck(f func() bool) PrompterOpt {
	return func(p *Prompter) {
		p.isTerminal = f
	}
}

// Confirm displays the consent prompt and reports the user's decision.
// It never defaults to an affirmative answer.
func (p *Prompter) Confirm(ctx context.Context) error {
	if !p.isTerminal() {
		return ErrNotInteractive
	}

	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(promptTitle).
				Description(promptDesc).
				Affirmative("Confirm").
				Negative("Decline").
				Value(&confirmed),
		),
	).
		WithShowHelp(false).
		WithTheme(themes.HuhTheme(p.t))

	err := form.RunWithContext(ctx)
	if err != nil {
		return err //nolint:wrapcheck // Already descriptive.
	}

	if !confirmed {
		return ErrDeclined
	}

	return nil
}
