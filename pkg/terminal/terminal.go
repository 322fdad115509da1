package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fadedpez/tucojack/internal/types"
	"github.com/fadedpez/tucojack/pkg/render"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/pterm/pterm"
)

// Title is shown above the table
const Title = "Blackjack"

// Menu choices
const (
	ActionHit   = "Hit"
	ActionStand = "Stand"
	ActionQuit  = "Quit"
)

// Prompter asks the player to pick one of options
type Prompter interface {
	Choose(prompt string, options []string) (string, error)
}

// SelectPrompter prompts with pterm's interactive select
type SelectPrompter struct{}

// Choose shows the menu and blocks until an option is picked
func (SelectPrompter) Choose(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		Show(prompt)
}

// UI drives a blackjack session from the terminal
type UI struct {
	session  *blackjack.Session
	prompter Prompter
	out      io.Writer
}

// New creates a terminal UI. A nil prompter uses SelectPrompter and a nil
// writer uses stdout.
func New(session *blackjack.Session, prompter Prompter, out io.Writer) *UI {
	if prompter == nil {
		prompter = SelectPrompter{}
	}
	if out == nil {
		out = os.Stdout
	}
	return &UI{
		session:  session,
		prompter: prompter,
		out:      out,
	}
}

// Run plays rounds until the player quits, the prompter stops returning
// choices (io.EOF ends the game cleanly) or ctx is cancelled
func (u *UI) Run(ctx context.Context) error {
	fmt.Fprintln(u.out, pterm.DefaultHeader.WithFullWidth().Sprint(Title))

	for ctx.Err() == nil {
		if u.session.State() != blackjack.StateRoundActive {
			if err := u.session.NewRound(); err != nil {
				return err
			}
		}

		u.showTable()

		choice, err := u.prompter.Choose("Your move", []string{ActionHit, ActionStand, ActionQuit})
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read choice: %w", err)
		}

		var result *blackjack.RoundResult
		switch choice {
		case ActionHit:
			result, err = u.session.Hit(ctx)
		case ActionStand:
			result, err = u.session.Stand(ctx)
		case ActionQuit:
			fmt.Fprintln(u.out, pterm.Info.Sprint(render.StatsLine(u.session.Stats())))
			return nil
		default:
			u.showError(types.NewGameError(types.ErrInvalidAction, fmt.Sprintf("Unknown action %q", choice)))
			continue
		}

		if result != nil {
			u.showResult(result)
		}
		if err != nil {
			u.showError(err)
		}
	}

	return nil
}

func (u *UI) showTable() {
	fmt.Fprintln(u.out, render.Table(u.session.Snapshot(), false))
}

func (u *UI) showResult(result *blackjack.RoundResult) {
	body := render.Table(result.Table, true) + "\n\n" + result.Message
	fmt.Fprintln(u.out, pterm.DefaultBox.WithTitle("Game Over").Sprint(body))

	if result.SaveErr != nil {
		fmt.Fprintln(u.out, pterm.Warning.Sprint(userMessage(result.SaveErr)))
	}
}

func (u *UI) showError(err error) {
	fmt.Fprintln(u.out, pterm.Error.Sprint(userMessage(err)))
}

func userMessage(err error) string {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		return gameErr.Message
	}
	return err.Error()
}
