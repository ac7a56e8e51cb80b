// Package command parses command lines and dispatches them against the
// contact book. The dispatcher is the error boundary: every error kind
// (invalid format, unknown contact, missing arguments, unknown command) is
// converted to a one-line human-readable response and never escapes.
package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rolobook/rolo/internal/book"
	"github.com/rolobook/rolo/internal/field"
)

// Sentinel errors for dispatch-level conditions.
var (
	ErrMissingArguments = errors.New("command: missing arguments")
	ErrUnknownCommand   = errors.New("command: unknown command")
	ErrExit             = errors.New("command: exit requested")
)

// Handler executes one command against the book and returns the response text.
type Handler func(args []string, b *book.Book) (string, error)

// spec describes a registered command for dispatch and help output.
type spec struct {
	name    string
	usage   string
	summary string
	minArgs int
	handler Handler
}

// Dispatcher routes parsed command lines to registered handlers.
// It is not safe for concurrent use; registration happens at startup.
type Dispatcher struct {
	book     *book.Book
	window   int
	commands map[string]spec
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithUpcomingWindow sets the day window used by the birthdays command.
func WithUpcomingWindow(days int) Option {
	return func(d *Dispatcher) { d.window = days }
}

// New creates a Dispatcher over b with the built-in command set registered.
func New(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:     b,
		window:   book.DefaultUpcomingWindow,
		commands: make(map[string]spec),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registerBuiltins()
	return d
}

// register adds a command. Panics on duplicate names (programmer error).
func (d *Dispatcher) register(s spec) {
	if _, ok := d.commands[s.name]; ok {
		panic("command: duplicate registration of " + s.name)
	}
	d.commands[s.name] = s
}

// Parse splits a raw input line into a lower-cased verb and its arguments.
func Parse(line string) (verb string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute parses and runs one command line, returning the handler response
// and its raw error. Callers that need error kinds (exit codes, tests) use
// this; interactive callers use Dispatch.
func (d *Dispatcher) Execute(line string) (string, error) {
	verb, args := Parse(line)
	if verb == "" {
		return "", nil
	}

	cmd, ok := d.commands[verb]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, verb)
	}
	if len(args) < cmd.minArgs {
		return "", fmt.Errorf("%w: usage: %s", ErrMissingArguments, cmd.usage)
	}

	return cmd.handler(args, d.book)
}

// Dispatch executes one command line, returning the response text. This is
// the error boundary: every domain and dispatch error is converted to a
// message here; the only non-nil error returned is ErrExit when the user
// asked to leave.
func (d *Dispatcher) Dispatch(line string) (string, error) {
	out, err := d.Execute(line)
	if errors.Is(err, ErrExit) {
		return out, ErrExit
	}
	return d.respond(out, err), nil
}

// Respond converts a raw Execute error into the line shown to the user.
func (d *Dispatcher) Respond(out string, err error) string {
	return d.respond(out, err)
}

// respond converts a handler result into the line shown to the user.
func (d *Dispatcher) respond(out string, err error) string {
	if err == nil {
		return out
	}
	switch {
	case errors.Is(err, ErrExit):
		return out
	case errors.Is(err, field.ErrInvalidFormat):
		return trimPrefix(err, "field: invalid format: ")
	case errors.Is(err, book.ErrNotFound):
		return "Contact not found."
	case errors.Is(err, book.ErrPhoneNotFound):
		return "Phone number not found."
	case errors.Is(err, ErrMissingArguments):
		return trimPrefix(err, "command: missing arguments: ")
	case errors.Is(err, ErrUnknownCommand):
		return "Invalid command. Type help for the command list."
	}
	return err.Error()
}

// trimPrefix strips the sentinel's package prefix so the user sees only the
// descriptive tail ("phone number must be 10 digits, ...").
func trimPrefix(err error, prefix string) string {
	msg := strings.TrimPrefix(err.Error(), prefix)
	return upperFirst(msg)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Commands returns the registered command usages and summaries, sorted by
// name, for help output.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		cmd := d.commands[name]
		lines[i] = fmt.Sprintf("%-38s %s", cmd.usage, cmd.summary)
	}
	return lines
}
