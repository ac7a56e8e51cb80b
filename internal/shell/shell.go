// Package shell runs the interactive assistant session. It offers two front
// ends over the same command dispatcher: a plain line-oriented loop for
// pipes and scripts, and a Bubble Tea TUI with a styled transcript when
// stdout is a terminal.
package shell

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Dispatcher is the command boundary the shell drives. Implemented by
// command.Dispatcher.
type Dispatcher interface {
	Dispatch(line string) (string, error)
}

// Shell reads command lines from the user until an exit command or EOF.
type Shell interface {
	Run(ctx context.Context, d Dispatcher) error
}

// Options configures shell creation.
type Options struct {
	Input      io.Reader // Command source (default: os.Stdin).
	Output     io.Writer // Response destination (default: os.Stdout).
	Prompt     string    // Prompt string shown before each command.
	ForcePlain bool      // Force the plain loop even if stdout is a TTY.
}

// New returns a TUI shell when stdout is a TTY, or a plain line-oriented
// shell otherwise. ForcePlain overrides TTY detection.
func New(opts Options) Shell {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Output) {
		return &PlainShell{in: opts.Input, out: opts.Output, prompt: opts.Prompt}
	}

	return &TUIShell{out: opts.Output, prompt: opts.Prompt}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
