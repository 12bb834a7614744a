package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameCmd_Structure(t *testing.T) {
	assert.Equal(t, "game", gameCmd.Use)
	assert.NotEmpty(t, gameCmd.Short)
}

func TestGameSubcommands_Structure(t *testing.T) {
	assert.Equal(t, "add <game-id> <install-path>", gameAddCmd.Use)
	assert.Equal(t, "set-default <game-id>", gameSetDefaultCmd.Use)
	assert.Equal(t, "show-default", gameShowDefaultCmd.Use)
	assert.Equal(t, "detect", gameDetectCmd.Use)
	assert.Equal(t, "list", gameListCmd.Use)
	assert.Equal(t, "remove <game-id>", gameRemoveCmd.Use)
}

// runCommand executes a RunE with a fresh cobra command and captured output.
func runCommand(runE func(*cobra.Command, []string) error, args ...string) (string, error) {
	cmd := &cobra.Command{Use: "test"}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := runE(cmd, args)
	return buf.String(), err
}

func TestGameAdd_UnknownProfile(t *testing.T) {
	setTestDirs(t)

	_, err := runCommand(runGameAdd, "morrowind", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown game")
}

func TestGameAdd_BadLinkMethod(t *testing.T) {
	setTestDirs(t)
	old := gameAddLinkMethod
	t.Cleanup(func() { gameAddLinkMethod = old })
	gameAddLinkMethod = "teleport"

	_, err := runCommand(runGameAdd, "oblivion", t.TempDir())
	require.Error(t, err)
}

func TestGameAddAndSetDefault(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(runGameAdd, "oblivion", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Added: Oblivion (oblivion)")

	out, err = runCommand(runGameSetDefault, "oblivion")
	require.NoError(t, err)
	assert.Contains(t, out, "Default game set to: Oblivion (oblivion)")

	out, err = runCommand(runGameShowDefault)
	require.NoError(t, err)
	assert.Contains(t, out, "Default game: Oblivion (oblivion)")
}

func TestGameSetDefault_NotConfigured(t *testing.T) {
	setTestDirs(t)

	_, err := runCommand(runGameSetDefault, "skyrimse")
	require.Error(t, err)
}

func TestGameShowDefault_NoneSet(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(runGameShowDefault)
	require.NoError(t, err)
	assert.Contains(t, out, "No default game set")
}

func TestGameRemove(t *testing.T) {
	setTestDirs(t)

	_, err := runCommand(runGameAdd, "skyrimse", t.TempDir())
	require.NoError(t, err)

	out, err := runCommand(runGameRemove, "skyrimse")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed: skyrimse")

	_, err = runCommand(runGameRemove, "skyrimse")
	require.Error(t, err)
}

func TestGameList_NoneConfigured(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(runGameList)
	require.NoError(t, err)
	assert.Contains(t, out, "No games configured.")
	assert.Contains(t, out, "oblivion")
	assert.Contains(t, out, "skyrimse")
	assert.Contains(t, out, "fallout4")
}
