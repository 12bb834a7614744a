// Package tui contains the interactive terminal front ends: the FOMOD
// install wizard and a small free-form value prompt.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bmm/internal/domain"
	"bmm/internal/fomod"
)

// RunWizard starts the installer and walks the user through its steps,
// returning the resulting install plan. It returns domain.ErrCancelled when
// the user quits before the last step.
func RunWizard(ins *fomod.Installer, keyMode string) ([]fomod.PlanEntry, error) {
	step, err := ins.Start()
	if err != nil {
		return nil, err
	}
	if step == nil {
		return ins.Plan()
	}

	model := NewWizard(ins, NewKeyMap(keyMode))
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("running install wizard: %w", err)
	}
	w, ok := final.(Wizard)
	if !ok || !w.Done() {
		return nil, domain.ErrCancelled
	}
	return ins.Plan()
}

// RunPrompt asks the user for a single line of input, pre-filled with
// initial. It returns domain.ErrCancelled when the user aborts.
func RunPrompt(title, initial string) (string, error) {
	model := NewPrompt(title, initial)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	p, ok := final.(Prompt)
	if !ok || p.Cancelled() {
		return "", domain.ErrCancelled
	}
	return p.Value(), nil
}
