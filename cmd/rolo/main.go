package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/rolobook/rolo/internal/book"
	"github.com/rolobook/rolo/internal/command"
	"github.com/rolobook/rolo/internal/config"
	"github.com/rolobook/rolo/internal/field"
	"github.com/rolobook/rolo/internal/shell"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolo.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Start the interactive assistant."`
	Exec    ExecCmd          `cmd:"" help:"Run a single command line and exit."`
}

// ShellCmd starts the interactive assistant session.
type ShellCmd struct {
	NoTUI  bool `help:"Force plain text output even if stdout is a TTY." default:"false"`
	Window int  `help:"Upcoming-birthday window in days (overrides config)." default:"0"`
}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	// Apply CLI flag overrides.
	if s.NoTUI {
		cfg.Shell.NoTUI = true
	}
	if s.Window > 0 {
		cfg.Book.UpcomingWindowDays = s.Window
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	d := newDispatcher(cfg)
	sh := shell.New(shell.Options{
		Prompt:     cfg.Shell.Prompt,
		ForcePlain: cfg.Shell.NoTUI,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return sh.Run(ctx, d)
}

// ExecCmd runs one command line against a fresh book and exits. Useful for
// scripting and smoke tests; the book is in-memory only, so every exec
// starts empty.
type ExecCmd struct {
	Args []string `arg:"" optional:"" help:"Command line to run (e.g. add John 1234567890)."`
}

// dispatcher abstracts command execution for testing.
type dispatcher interface {
	Execute(line string) (string, error)
	Respond(out string, err error) string
}

// Run executes the exec command.
func (e *ExecCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("exec: %w", err)
	}

	return e.run(os.Stdout, newDispatcher(cfg))
}

// run executes the line with the given dispatcher, enabling testable wiring.
// The human-readable response always goes to w; the raw error is returned so
// the exit code reflects command failure.
func (e *ExecCmd) run(w io.Writer, d dispatcher) error {
	line := strings.Join(e.Args, " ")
	out, err := d.Execute(line)
	if msg := d.Respond(out, err); msg != "" {
		_, _ = fmt.Fprintln(w, msg)
	}
	if errors.Is(err, command.ErrExit) {
		return nil
	}
	return err
}

// newDispatcher builds the command dispatcher over a fresh in-memory book.
func newDispatcher(cfg *config.Config) *command.Dispatcher {
	return command.New(book.New(),
		command.WithUpcomingWindow(cfg.Book.UpcomingWindowDays),
	)
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolo/config.yaml"),
		".rolo/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitCommand = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch {
	case errors.Is(err, field.ErrInvalidFormat),
		errors.Is(err, book.ErrNotFound),
		errors.Is(err, book.ErrPhoneNotFound),
		errors.Is(err, command.ErrMissingArguments),
		errors.Is(err, command.ErrUnknownCommand):
		return exitCommand
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
