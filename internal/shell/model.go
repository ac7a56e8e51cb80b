package shell

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolobook/rolo/internal/command"
)

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the Bubble Tea model for the interactive session: a transcript
// viewport over a single-line command input.
type Model struct {
	dispatcher Dispatcher
	prompt     string

	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	keys       shellKeys
	transcript []string

	width  int
	height int
	done   bool
}

// NewModel creates a Model wired to the given dispatcher.
func NewModel(d Dispatcher, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle().Render(prompt)
	ti.Focus()

	m := Model{
		dispatcher: d,
		prompt:     prompt,
		input:      ti,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		keys:       ShellKeyMap(),
	}
	m.transcript = append(m.transcript, BannerStyle().Render("Welcome to the assistant bot!"))
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len(m.prompt) - borderChrome
		m.viewport.Width = max(msg.Width-borderChrome, 0)
		m.viewport.Height = m.contentHeight()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and appends the exchange to the
// transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, PromptStyle().Render(m.prompt+line))
	out, err := m.dispatcher.Dispatch(line)
	if out != "" {
		m.transcript = append(m.transcript, ResponseStyle().Render(out))
	}
	m.refreshViewport()

	if errors.Is(err, command.ErrExit) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// refreshViewport re-renders the transcript and keeps the latest exchange
// visible.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// contentHeight returns the usable height for the transcript,
// accounting for border chrome, the input line, and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - inputHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the transcript, the input line, and the help bar.
func (m Model) View() string {
	if m.done {
		return strings.Join(m.transcript, "\n") + "\n"
	}

	var b strings.Builder
	b.WriteString(TranscriptBorder().Width(max(m.width-borderChrome, 0)).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Transcript returns the rendered transcript lines, for tests.
func (m Model) Transcript() []string {
	return m.transcript
}
