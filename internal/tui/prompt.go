package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Prompt asks for one line of free-form input, such as a custom tweak
// value.
type Prompt struct {
	title     string
	input     textinput.Model
	done      bool
	cancelled bool
}

// NewPrompt creates a prompt with the given title and initial value.
func NewPrompt(title, initial string) Prompt {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 32
	return Prompt{title: title, input: ti}
}

// Value returns the entered text with surrounding whitespace removed.
func (p Prompt) Value() string { return strings.TrimSpace(p.input.Value()) }

// Cancelled reports whether the user aborted the prompt.
func (p Prompt) Cancelled() bool { return p.cancelled }

// Init implements tea.Model
func (p Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (p Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			p.done = true
			return p, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model
func (p Prompt) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)

	return titleStyle.Render(p.title) + "\n\n" +
		p.input.View() + "\n" +
		helpStyle.Render("enter: accept  esc: cancel")
}
