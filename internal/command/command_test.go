package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/rolobook/rolo/internal/book"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantVerb string
		wantArgs []string
	}{
		{name: "verb only", line: "hello", wantVerb: "hello"},
		{name: "verb with args", line: "add John 1234567890", wantVerb: "add", wantArgs: []string{"John", "1234567890"}},
		{name: "lowercases verb", line: "ADD John 1234567890", wantVerb: "add", wantArgs: []string{"John", "1234567890"}},
		{name: "collapses whitespace", line: "  add   John  ", wantVerb: "add", wantArgs: []string{"John"}},
		{name: "empty line", line: "", wantVerb: ""},
		{name: "whitespace only", line: "   ", wantVerb: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verb, args := Parse(tt.line)
			if verb != tt.wantVerb {
				t.Errorf("verb = %q, want %q", verb, tt.wantVerb)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	d := New(book.New())
	out, err := d.Dispatch("frobnicate")
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !strings.Contains(out, "Invalid command") {
		t.Errorf("Dispatch(unknown) = %q, want invalid-command message", out)
	}
}

func TestDispatch_MissingArguments(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "add without phone", line: "add John"},
		{name: "add without args", line: "add"},
		{name: "change with two args", line: "change John 1234567890"},
		{name: "show-birthday without name", line: "show-birthday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(book.New())
			out, err := d.Dispatch(tt.line)
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if !strings.Contains(out, "Usage:") {
				t.Errorf("Dispatch(%q) = %q, want usage message", tt.line, out)
			}
		})
	}
}

func TestDispatch_EmptyLine(t *testing.T) {
	d := New(book.New())
	out, err := d.Dispatch("   ")
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if out != "" {
		t.Errorf("Dispatch(blank) = %q, want empty response", out)
	}
}

func TestDispatch_ExitCommands(t *testing.T) {
	for _, verb := range []string{"close", "exit", "EXIT"} {
		t.Run(verb, func(t *testing.T) {
			d := New(book.New())
			out, err := d.Dispatch(verb)
			if !errors.Is(err, ErrExit) {
				t.Fatalf("Dispatch(%q) error = %v, want ErrExit", verb, err)
			}
			if out != "Good bye!" {
				t.Errorf("Dispatch(%q) = %q, want farewell", verb, out)
			}
		})
	}
}

func TestDispatch_ErrorsNeverEscape(t *testing.T) {
	// Every failing command turns into a message, not an error.
	lines := []string{
		"add John 123",
		"change Nobody 1234567890 0987654321",
		"add-birthday John 31.02.2020",
		"delete Nobody",
		"phone Nobody",
	}
	d := New(book.New())
	for _, line := range lines {
		out, err := d.Dispatch(line)
		if err != nil {
			t.Errorf("Dispatch(%q) error = %v, want nil", line, err)
		}
		if out == "" {
			t.Errorf("Dispatch(%q) produced no message", line)
		}
	}
}

func TestCommands_SortedHelp(t *testing.T) {
	d := New(book.New())
	lines := d.Commands()
	if len(lines) == 0 {
		t.Fatal("Commands() should not be empty")
	}
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			t.Errorf("Commands() not sorted at %d: %q > %q", i, lines[i-1], lines[i])
		}
	}
	joined := strings.Join(lines, "\n")
	for _, verb := range []string{"add", "birthdays", "remove-phone", "help"} {
		if !strings.Contains(joined, verb) {
			t.Errorf("Commands() missing %q", verb)
		}
	}
}
