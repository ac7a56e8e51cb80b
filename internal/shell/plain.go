package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rolobook/rolo/internal/command"
)

// PlainShell is a line-oriented REPL over plain reader/writer pairs.
type PlainShell struct {
	in     io.Reader
	out    io.Writer
	prompt string
}

// Run reads command lines until an exit command, EOF, or context
// cancellation, printing one response per command.
func (s *PlainShell) Run(ctx context.Context, d Dispatcher) error {
	_, _ = fmt.Fprintln(s.out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("shell: reading input: %w", err)
			}
			// EOF ends the session quietly.
			_, _ = fmt.Fprintln(s.out)
			return nil
		}

		out, err := d.Dispatch(scanner.Text())
		if out != "" {
			_, _ = fmt.Fprintln(s.out, out)
		}
		if errors.Is(err, command.ErrExit) {
			return nil
		}
	}
}
