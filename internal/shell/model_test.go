package shell

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func typeLine(tm *teatest.TestModel, line string) {
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestNewModel_StartsWithBanner(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")

	if len(m.Transcript()) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(m.Transcript()))
	}
	if !strings.Contains(m.Transcript()[0], "Welcome to the assistant bot!") {
		t.Errorf("transcript[0] = %q, want welcome banner", m.Transcript()[0])
	}
	if m.done {
		t.Error("new model should not be done")
	}
}

func TestModel_SubmitAppendsExchange(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")

	m.input.SetValue("hello")
	newModel, _ := m.submit()
	updated := newModel.(Model)

	transcript := strings.Join(updated.Transcript(), "\n")
	if !strings.Contains(transcript, "hello") {
		t.Errorf("transcript missing echoed command:\n%s", transcript)
	}
	if !strings.Contains(transcript, "How can I help you?") {
		t.Errorf("transcript missing response:\n%s", transcript)
	}
	if updated.input.Value() != "" {
		t.Errorf("input after submit = %q, want empty", updated.input.Value())
	}
}

func TestModel_SubmitBlankLineIsIgnored(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")

	m.input.SetValue("   ")
	newModel, _ := m.submit()
	updated := newModel.(Model)

	if len(updated.Transcript()) != 1 {
		t.Errorf("transcript length = %d, want banner only", len(updated.Transcript()))
	}
}

func TestModel_ExitCommandQuits(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")

	m.input.SetValue("exit")
	newModel, cmd := m.submit()
	updated := newModel.(Model)

	if !updated.done {
		t.Error("model should be done after exit command")
	}
	if cmd == nil {
		t.Error("exit should produce a quit command")
	}
	if !strings.Contains(strings.Join(updated.Transcript(), "\n"), "Good bye!") {
		t.Error("transcript missing farewell")
	}
}

func TestModel_WindowSizeSizesViewport(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated := newModel.(Model)

	if updated.viewport.Width != 78 {
		t.Errorf("viewport width = %d, want 78", updated.viewport.Width)
	}
	wantHeight := 24 - borderChrome - inputHeight - helpBarHeight
	if updated.viewport.Height != wantHeight {
		t.Errorf("viewport height = %d, want %d", updated.viewport.Height, wantHeight)
	}
}

func TestModel_TinyWindowKeepsOneLine(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	updated := newModel.(Model)

	if updated.viewport.Height != 1 {
		t.Errorf("viewport height = %d, want 1", updated.viewport.Height)
	}
}

// TestModel_Teatest_FullSession drives a complete session through the Bubble
// Tea runtime: add a contact, query it, and leave.
func TestModel_Teatest_FullSession(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	typeLine(tm, "add John 1234567890")
	typeLine(tm, "phone John")
	typeLine(tm, "exit")

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	transcript := strings.Join(final.Transcript(), "\n")
	for _, want := range []string{"Contact added.", "John: 1234567890", "Good bye!"} {
		if !strings.Contains(transcript, want) {
			t.Errorf("transcript missing %q:\n%s", want, transcript)
		}
	}
	if !final.done {
		t.Error("final model should be done")
	}
}

// TestModel_Teatest_QuitKey verifies Esc leaves the session without an exit
// command.
func TestModel_Teatest_QuitKey(t *testing.T) {
	m := NewModel(newDispatcher(), "> ")
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	if !final.done {
		t.Error("final model should be done after Esc")
	}
}
