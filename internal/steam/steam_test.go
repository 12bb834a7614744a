package steam_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmm/internal/games"
	"bmm/internal/profile"
	"bmm/internal/steam"
)

// fakeSteamRoot builds a Steam root with one library containing the given
// installs and returns its path.
func fakeSteamRoot(t *testing.T, installs map[string]string) string {
	t.Helper()

	root := t.TempDir()
	steamapps := filepath.Join(root, "steamapps")
	require.NoError(t, os.MkdirAll(filepath.Join(steamapps, "common"), 0o755))

	for appID, installDir := range installs {
		acf := fmt.Sprintf("\"AppState\"\n{\n\t\"appid\"\t\"%s\"\n\t\"installdir\"\t\"%s\"\n}\n", appID, installDir)
		path := filepath.Join(steamapps, fmt.Sprintf("appmanifest_%s.acf", appID))
		require.NoError(t, os.WriteFile(path, []byte(acf), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(steamapps, "common", installDir, "Data"), 0o755))
	}
	return root
}

func registryWithBuiltins(t *testing.T) *profile.Registry {
	t.Helper()
	reg := profile.NewRegistry()
	require.NoError(t, games.RegisterAll(reg))
	return reg
}

func TestDetectGames(t *testing.T) {
	root := fakeSteamRoot(t, map[string]string{
		"489830": "Skyrim Special Edition",
		"377160": "Fallout 4",
	})
	// Only Skyrim gets its detect file; Fallout 4 should be skipped.
	exe := filepath.Join(root, "steamapps", "common", "Skyrim Special Edition", "SkyrimSE.exe")
	require.NoError(t, os.WriteFile(exe, []byte("MZ"), 0o755))
	t.Setenv("STEAM_ROOT", root)
	t.Setenv("HOME", t.TempDir())

	found, err := steam.DetectGames(registryWithBuiltins(t), t.TempDir())
	require.NoError(t, err)
	require.Len(t, found, 1)

	got := found[0]
	assert.Equal(t, "489830", got.SteamAppID)
	assert.Equal(t, "skyrimse", got.Game)
	assert.Equal(t, filepath.Join(root, "steamapps", "common", "Skyrim Special Edition"), got.InstallPath)
	assert.Equal(t, filepath.Join(got.InstallPath, "Data"), got.DataPath)
}

func TestDetectGames_UnknownAppSkipped(t *testing.T) {
	root := fakeSteamRoot(t, map[string]string{"440": "Team Fortress 2"})
	t.Setenv("STEAM_ROOT", root)
	t.Setenv("HOME", t.TempDir())

	found, err := steam.DetectGames(registryWithBuiltins(t), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestDetectGames_NoSteam(t *testing.T) {
	t.Setenv("STEAM_ROOT", "")
	t.Setenv("HOME", t.TempDir())

	found, err := steam.DetectGames(registryWithBuiltins(t), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoadKnownGames_Override(t *testing.T) {
	configDir := t.TempDir()
	override := "\"489830\":\n  game: skyrimse-custom\n  name: Custom\n  data_path: Data\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "steam-games.yaml"), []byte(override), 0o644))

	knownGames, err := steam.LoadKnownGames(configDir)
	require.NoError(t, err)

	assert.Equal(t, "skyrimse-custom", knownGames["489830"].Game)
	// Entries not overridden keep the embedded defaults.
	assert.Equal(t, "fallout4", knownGames["377160"].Game)
	assert.Equal(t, "oblivion", knownGames["22330"].Game)
}

func TestLibraryPaths_NoVDFFallsBackToRoot(t *testing.T) {
	root := t.TempDir()
	paths, err := steam.LibraryPaths(root)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, paths)
}
