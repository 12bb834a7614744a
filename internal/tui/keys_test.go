package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewKeyMap_DefaultsToVim(t *testing.T) {
	assert.Equal(t, "vim", NewKeyMap("").Mode())
	assert.Equal(t, "standard", NewKeyMap("standard").Mode())
}

func TestKeyMap_VimBindings(t *testing.T) {
	k := NewKeyMap("vim")

	assert.True(t, k.IsUp(key("k")))
	assert.True(t, k.IsDown(key("j")))
	assert.True(t, k.IsBack(key("h")))
	assert.True(t, k.IsHome(key("g")))
	assert.True(t, k.IsEnd(key("G")))
}

func TestKeyMap_StandardIgnoresVimKeys(t *testing.T) {
	k := NewKeyMap("standard")

	assert.False(t, k.IsUp(key("k")))
	assert.False(t, k.IsDown(key("j")))
	assert.False(t, k.IsBack(key("h")))

	assert.True(t, k.IsUp(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, k.IsDown(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, k.IsBack(tea.KeyMsg{Type: tea.KeyLeft}))
}

func TestKeyMap_SharedBindings(t *testing.T) {
	for _, mode := range []string{"vim", "standard"} {
		k := NewKeyMap(mode)

		assert.True(t, k.IsToggle(key("space")), mode)
		assert.True(t, k.IsConfirm(key("enter")), mode)
		assert.True(t, k.IsQuit(key("q")), mode)
		assert.True(t, k.IsQuit(tea.KeyMsg{Type: tea.KeyCtrlC}), mode)
		assert.True(t, k.IsHelp(key("?")), mode)
		assert.True(t, k.IsBack(tea.KeyMsg{Type: tea.KeyBackspace}), mode)
	}
}

func TestKeyMap_Help(t *testing.T) {
	assert.Contains(t, NewKeyMap("vim").NavigationHelp(), "j/k")
	assert.Contains(t, NewKeyMap("standard").NavigationHelp(), "↑/↓")
	assert.Contains(t, NewKeyMap("vim").FullHelp(), "Previous step")
}
