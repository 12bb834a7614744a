package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestDirs points the global config and data dirs at temp dirs and
// restores them afterwards.
func setTestDirs(t *testing.T) {
	t.Helper()

	tmpDir := t.TempDir()
	oldConfig, oldData, oldGame := configDir, dataDir, gameID
	configDir = filepath.Join(tmpDir, "config")
	dataDir = filepath.Join(tmpDir, "data")
	gameID = ""
	t.Cleanup(func() {
		configDir, dataDir, gameID = oldConfig, oldData, oldGame
	})
}

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "bmm", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"game", "profile", "tweaks", "install", "uninstall", "list", "update", "auth"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestColorEnabled_NoColorFlag(t *testing.T) {
	old := noColor
	t.Cleanup(func() { noColor = old })

	noColor = true
	assert.False(t, colorEnabled())
	assert.Equal(t, "hi", colorGreen("hi"))
	assert.Equal(t, "hi", colorRed("hi"))
	assert.Equal(t, "hi", colorYellow("hi"))
}

func TestColorEnabled_NoColorEnv(t *testing.T) {
	old := noColor
	t.Cleanup(func() { noColor = old })
	noColor = false

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled())

	t.Setenv("NO_COLOR", "")
	assert.True(t, colorEnabled())
	assert.Equal(t, ansiGreen+"hi"+ansiReset, colorGreen("hi"))
}

func TestGetServiceConfig_Defaults(t *testing.T) {
	oldConfig, oldData := configDir, dataDir
	t.Cleanup(func() { configDir, dataDir = oldConfig, oldData })
	configDir, dataDir = "", ""

	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := getServiceConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "bmm"), cfg.ConfigDir)
	assert.Equal(t, filepath.Join(home, ".local", "share", "bmm"), cfg.DataDir)
	assert.Equal(t, filepath.Join(cfg.DataDir, "cache"), cfg.CacheDir)
}

func TestGetServiceConfig_Overrides(t *testing.T) {
	setTestDirs(t)

	cfg, err := getServiceConfig()
	require.NoError(t, err)
	assert.Equal(t, configDir, cfg.ConfigDir)
	assert.Equal(t, dataDir, cfg.DataDir)
}

func TestGetServiceConfig_ConfigFilePath(t *testing.T) {
	setTestDirs(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_game: oblivion\n"), 0o644))
	configDir = path

	cfg, err := getServiceConfig()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir)
}

func TestGetServiceConfig_ConfigFileMissing(t *testing.T) {
	setTestDirs(t)
	configDir = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := getServiceConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --config")
}

func TestRequireGame_NoneConfigured(t *testing.T) {
	setTestDirs(t)

	service, err := initService()
	require.NoError(t, err)
	defer service.Close()

	_, err = requireGame(service)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no game specified")
}

func TestRequireGame_UnknownFlag(t *testing.T) {
	setTestDirs(t)
	gameID = "morrowind"

	service, err := initService()
	require.NoError(t, err)
	defer service.Close()

	_, err = requireGame(service)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game not configured")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "long st...", truncate("long string here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
