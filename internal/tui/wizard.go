package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bmm/internal/fomod"
)

// row addresses one plugin line in the flattened step layout.
type row struct {
	group  int
	plugin int
}

// Wizard is the interactive FOMOD installer view. It renders one install
// step at a time and feeds the answers back into the installer.
type Wizard struct {
	ins  *fomod.Installer
	keys *KeyMap

	step     *fomod.Step
	rows     []row
	cursor   int
	selected map[string]map[string]bool
	stepNum  int

	errMsg    string
	showHelp  bool
	done      bool
	cancelled bool
}

// NewWizard creates a wizard positioned at the installer's current step.
// The installer must already be started.
func NewWizard(ins *fomod.Installer, keys *KeyMap) Wizard {
	w := Wizard{ins: ins, keys: keys, stepNum: 1}
	w.loadStep(ins.Current())
	return w
}

// Done reports whether every step was answered.
func (w Wizard) Done() bool { return w.done }

// Cancelled reports whether the user aborted the install.
func (w Wizard) Cancelled() bool { return w.cancelled }

// Init implements tea.Model
func (w Wizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (w Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.handleKeyPress(msg)
	}
	return w, nil
}

func (w Wizard) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if w.showHelp {
		w.showHelp = false
		return w, nil
	}

	switch {
	case w.keys.IsQuit(msg):
		w.cancelled = true
		return w, tea.Quit

	case w.keys.IsHelp(msg):
		w.showHelp = true

	case w.keys.IsUp(msg):
		w.errMsg = ""
		if len(w.rows) > 0 {
			w.cursor--
			if w.cursor < 0 {
				w.cursor = len(w.rows) - 1
			}
		}

	case w.keys.IsDown(msg):
		w.errMsg = ""
		if len(w.rows) > 0 {
			w.cursor++
			if w.cursor >= len(w.rows) {
				w.cursor = 0
			}
		}

	case w.keys.IsHome(msg):
		w.cursor = 0

	case w.keys.IsEnd(msg):
		if len(w.rows) > 0 {
			w.cursor = len(w.rows) - 1
		}

	case w.keys.IsToggle(msg):
		w.toggle()

	case w.keys.IsConfirm(msg):
		return w.confirm()

	case w.keys.IsBack(msg):
		return w.back()
	}

	return w, nil
}

// toggle flips the highlighted plugin, honoring the group's selection
// policy. Required plugins stay on and NotUsable plugins stay off.
func (w *Wizard) toggle() {
	if len(w.rows) == 0 {
		return
	}
	r := w.rows[w.cursor]
	group := w.step.Groups[r.group]
	plugin := group.Plugins[r.plugin]
	picked := w.selected[group.ID]

	if group.Type == fomod.SelectAll || plugin.Type == fomod.TypeRequired {
		return
	}
	if picked[plugin.ID] {
		if group.Type == fomod.SelectExactlyOne {
			return
		}
		delete(picked, plugin.ID)
		return
	}
	if plugin.Type == fomod.TypeNotUsable {
		w.errMsg = fmt.Sprintf("%s cannot be used with the current selections", plugin.Name)
		return
	}
	if group.Type == fomod.SelectExactlyOne || group.Type == fomod.SelectAtMostOne {
		for _, p := range group.Plugins {
			if p.Type != fomod.TypeRequired {
				delete(picked, p.ID)
			}
		}
	}
	picked[plugin.ID] = true
}

func (w Wizard) confirm() (tea.Model, tea.Cmd) {
	next, err := w.ins.Next(w.answer())
	if err != nil {
		w.errMsg = err.Error()
		return w, nil
	}
	if next == nil {
		w.done = true
		return w, tea.Quit
	}
	w.stepNum++
	w.loadStep(next)
	return w, nil
}

func (w Wizard) back() (tea.Model, tea.Cmd) {
	prev, err := w.ins.Back()
	if err != nil {
		w.errMsg = "already at the first step"
		return w, nil
	}
	w.stepNum--
	w.loadStep(prev)
	return w, nil
}

// loadStep resets the view state for a freshly built step and applies the
// default selections a user would expect: required and recommended plugins
// on, and a first usable choice in groups that demand exactly one.
func (w *Wizard) loadStep(step *fomod.Step) {
	w.step = step
	w.cursor = 0
	w.errMsg = ""
	w.rows = nil
	w.selected = make(map[string]map[string]bool)
	if step == nil {
		return
	}
	for gi, g := range step.Groups {
		picked := make(map[string]bool)
		for pi, p := range g.Plugins {
			w.rows = append(w.rows, row{group: gi, plugin: pi})
			if g.Type == fomod.SelectAll || p.Type == fomod.TypeRequired {
				picked[p.ID] = true
			}
		}
		if len(picked) == 0 {
			for _, p := range g.Plugins {
				if p.Type == fomod.TypeRecommended {
					picked[p.ID] = true
					if g.Type == fomod.SelectExactlyOne || g.Type == fomod.SelectAtMostOne {
						break
					}
				}
			}
		}
		if len(picked) == 0 && g.Type == fomod.SelectExactlyOne {
			for _, p := range g.Plugins {
				if p.Type != fomod.TypeNotUsable {
					picked[p.ID] = true
					break
				}
			}
		}
		w.selected[g.ID] = picked
	}
}

// answer converts the current selections into the installer's answer shape.
func (w Wizard) answer() fomod.Answer {
	answer := make(fomod.Answer)
	for _, g := range w.step.Groups {
		for _, p := range g.Plugins {
			if w.selected[g.ID][p.ID] {
				answer[g.ID] = append(answer[g.ID], p.ID)
			}
		}
	}
	return answer
}

// groupHint describes what the selection policy expects from the user.
func groupHint(groupType string) string {
	switch groupType {
	case fomod.SelectExactlyOne:
		return "pick one"
	case fomod.SelectAtMostOne:
		return "pick at most one"
	case fomod.SelectAtLeastOne:
		return "pick at least one"
	case fomod.SelectAll:
		return "all required"
	default:
		return "pick any"
	}
}

// View implements tea.Model
func (w Wizard) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69")).
		MarginBottom(1)

	groupStyle := lipgloss.NewStyle().
		Bold(true).
		PaddingLeft(1).
		MarginTop(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	itemStyle := lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("205")).
		Bold(true)

	disabledStyle := lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(lipgloss.Color("241"))

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		PaddingLeft(4)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		MarginTop(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)

	if w.showHelp {
		return titleStyle.Render("Help") + "\n" + w.keys.FullHelp()
	}

	var b strings.Builder
	title := fmt.Sprintf("Install %s", w.ins.Name())
	if w.step != nil && w.step.Name != "" {
		title += fmt.Sprintf(" · step %d: %s", w.stepNum, w.step.Name)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if w.step == nil {
		b.WriteString(itemStyle.Render("Nothing left to choose."))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: finish  q: cancel"))
		return b.String()
	}

	ri := 0
	for _, g := range w.step.Groups {
		header := g.Name + " " + hintStyle.Render("("+groupHint(g.Type)+")")
		b.WriteString(groupStyle.Render(header))
		b.WriteString("\n")
		for _, p := range g.Plugins {
			mark := "[ ]"
			if g.Type == fomod.SelectExactlyOne || g.Type == fomod.SelectAtMostOne {
				mark = "( )"
			}
			if w.selected[g.ID][p.ID] {
				if mark == "( )" {
					mark = "(*)"
				} else {
					mark = "[x]"
				}
			}
			line := fmt.Sprintf("%s %s", mark, p.Name)
			style := itemStyle
			if p.Type == fomod.TypeNotUsable {
				style = disabledStyle
				line += " (unavailable)"
			}
			highlighted := ri == w.cursor
			if highlighted {
				line = "▸ " + line
				style = selectedStyle
				if p.Type == fomod.TypeNotUsable {
					style = selectedStyle.Foreground(lipgloss.Color("241"))
				}
			} else {
				line = "  " + line
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
			if highlighted && p.Description != "" {
				b.WriteString(detailStyle.Render(p.Description))
				b.WriteString("\n")
			}
			ri++
		}
	}

	if w.errMsg != "" {
		b.WriteString(errorStyle.Render("✗ " + w.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(w.keys.NavigationHelp() + "  ?: help"))
	return b.String()
}
