// Package format holds helpers for non-interactive terminal output.
package format

import (
	"context"
	"errors"
	"fmt"
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/charmbracelet/taste/internal/ui/styles"
)

// Spinner wraps a bubbles spinner for use outside the main TUI. It runs
// its own small program on stderr so stdout stays clean for output.
type Spinner struct {
	done chan struct{}
	prog *tea.Program
}

type model struct {
	cancel  context.CancelFunc
	spinner spinner.Model
	label   string
}

func (m model) Init() tea.Cmd { return m.spinner.Tick }

func (m model) View() tea.View {
	return tea.NewView(m.spinner.View() + m.label)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// NewSpinner creates a new [Spinner] with the given label.
func NewSpinner(ctx context.Context, cancel context.CancelFunc, label string) *Spinner {
	sty := styles.DefaultStyles()
	m := model{
		cancel: cancel,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(sty.Base.Foreground(sty.Primary)),
		),
		label: " " + label,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	return &Spinner{
		prog: p,
		done: make(chan struct{}, 1),
	}
}

// Start runs the spinner until [Spinner.Stop] is called.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		_, err := s.prog.Run()
		// Make sure we clear the line on exit.
		fmt.Fprint(os.Stderr, ansi.EraseEntireLine)
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tea.ErrInterrupted) {
			fmt.Fprintf(os.Stderr, "error running spinner: %v\n", err)
		}
	}()
}

// Stop stops the spinner and waits for its program to finish.
func (s *Spinner) Stop() {
	s.prog.Quit()
	<-s.done
}
