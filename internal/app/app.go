package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/dirprompt/internal/logging/events"
	"github.com/atomicstack/dirprompt/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Config describes user-provided application options.
type Config struct {
	BasePath      string
	AllowDotFiles bool
	PageSize      int
	Message       string
	ShowFooter    bool
	Width         int
	Height        int
}

// Options returns the prompt options for cfg.
func (c Config) Options() ui.Options {
	return ui.Options{
		BasePath:      c.BasePath,
		AllowDotFiles: c.AllowDotFiles,
		PageSize:      c.PageSize,
		Message:       c.Message,
		ShowFooter:    c.ShowFooter,
		Width:         c.Width,
		Height:        c.Height,
	}
}

// Run bootstraps the prompt and returns the selected path relative to the
// base path. The prompt is drawn on stderr so stdout carries only the result.
func Run(cfg Config) (string, error) {
	model, err := ui.NewModel(cfg.Options(), nil)
	if err != nil {
		return "", err
	}
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return "", fmt.Errorf("open terminal: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}
	result, err := runProgram(model, opts...)
	events.App.Finish(result, err)
	return result, err
}

func runProgram(model *ui.Model, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", ui.ErrAborted
		}
		return "", err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Result()
	}
	return model.Result()
}

// RunWith drives a prompt over explicit streams. It is used by tests and by
// callers that embed the prompt.
func RunWith(cfg Config, in io.Reader, out io.Writer) (string, error) {
	model, err := ui.NewModel(cfg.Options(), nil)
	if err != nil {
		return "", err
	}
	return runProgram(model, tea.WithInput(in), tea.WithOutput(out), tea.WithoutSignals())
}
