package shell

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// TUIShell runs the session as a Bubble Tea terminal UI.
// Falls back to PlainShell if the TUI program fails to start.
type TUIShell struct {
	out    io.Writer
	prompt string
}

// Run starts the Bubble Tea program over the dispatcher.
// If the TUI fails to initialize, it falls back to the plain line loop.
func (s *TUIShell) Run(ctx context.Context, d Dispatcher) error {
	model := NewModel(d, s.prompt)
	p := tea.NewProgram(model, tea.WithOutput(s.out), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		plain := &PlainShell{in: os.Stdin, out: s.out, prompt: s.prompt}
		return plain.Run(ctx, d)
	}
	return nil
}
