// Package tui implements the interactive assistant session: a Bubble Tea
// program when attached to a terminal, and a plain line-oriented loop for
// pipes and scripts. The command semantics live behind the Executor
// interface, keeping this package free of address book knowledge.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Executor runs one command line and reports whether the session should end.
type Executor interface {
	Execute(line string) (reply string, quit bool)
}

// exchange is one submitted command and its reply in the transcript.
type exchange struct {
	input string
	reply string
}

// Model is the Bubble Tea model for the assistant session.
type Model struct {
	executor Executor
	banner   string
	input    textinput.Model
	history  []exchange
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel creates a session model with the given welcome banner and prompt.
func NewModel(executor Executor, banner, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()

	return Model{
		executor: executor,
		banner:   banner,
		input:    ti,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line through the executor.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	reply, quit := m.executor.Execute(line)
	if reply != "" {
		m.history = append(m.history, exchange{input: line, reply: reply})
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the banner, transcript, input line, and help bar.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render(m.banner))
	b.WriteString("\n\n")

	for _, ex := range m.history {
		b.WriteString(echoStyle.Render("> " + ex.input))
		b.WriteString("\n")
		b.WriteString(replyStyle.Render(ex.reply))
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
