package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmm/internal/fomod"
)

func TestInstallCmd_Structure(t *testing.T) {
	assert.Equal(t, "install <archive-or-dir>", installCmd.Use)
	assert.NotEmpty(t, installCmd.Long)
	assert.Equal(t, "uninstall <name>", uninstallCmd.Use)
}

func TestPackageNameFromPath(t *testing.T) {
	assert.Equal(t, "LushOverhaul-2-1", packageNameFromPath("/downloads/LushOverhaul-2-1.zip"))
	assert.Equal(t, "plain-mod", packageNameFromPath("plain-mod"))
}

func TestDefaultAnswer(t *testing.T) {
	step := &fomod.Step{
		Groups: []fomod.Group{
			{
				ID:   "g1",
				Type: fomod.SelectExactlyOne,
				Plugins: []fomod.Plugin{
					{ID: "p1", Type: fomod.TypeOptional},
					{ID: "p2", Type: fomod.TypeRecommended},
				},
			},
			{
				ID:   "g2",
				Type: fomod.SelectAll,
				Plugins: []fomod.Plugin{
					{ID: "p3", Type: fomod.TypeOptional},
					{ID: "p4", Type: fomod.TypeOptional},
				},
			},
			{
				ID:   "g3",
				Type: fomod.SelectAny,
				Plugins: []fomod.Plugin{
					{ID: "p5", Type: fomod.TypeOptional},
				},
			},
			{
				ID:   "g4",
				Type: fomod.SelectExactlyOne,
				Plugins: []fomod.Plugin{
					{ID: "p6", Type: fomod.TypeNotUsable},
					{ID: "p7", Type: fomod.TypeOptional},
				},
			},
		},
	}

	answer := defaultAnswer(step)
	assert.Equal(t, []string{"p2"}, answer["g1"])
	assert.ElementsMatch(t, []string{"p3", "p4"}, answer["g2"])
	assert.NotContains(t, answer, "g3")
	assert.Equal(t, []string{"p7"}, answer["g4"])
}

func writeModZip(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "SimpleMod-1-0.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

// installedGame configures a game whose install and data dirs live in a
// temp dir, so deploys have somewhere real to land.
func installedGame(t *testing.T, id string) string {
	t.Helper()

	installPath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(installPath, "Data"), 0o755))
	gameID = id
	_, err := runCommand(runGameAdd, id, installPath)
	require.NoError(t, err)
	return installPath
}

func TestInstallAndUninstall_PlainPackage(t *testing.T) {
	setTestDirs(t)
	old := installDefaults
	t.Cleanup(func() { installDefaults = old; installName = ""; installVersion = "" })
	installDefaults = true
	installName = ""
	installVersion = "1.0"

	installPath := installedGame(t, "skyrimse")
	archive := writeModZip(t, map[string]string{
		"SimpleMod.esp":       "plugin",
		"textures/simple.dds": "texture",
		"meshes/simple.nif":   "mesh",
	})

	_, err := runCommand(runInstall, archive)
	require.NoError(t, err)

	gameData := filepath.Join(installPath, "Data")
	assert.FileExists(t, filepath.Join(gameData, "SimpleMod.esp"))
	assert.FileExists(t, filepath.Join(gameData, "textures", "simple.dds"))

	_, err = runCommand(runUninstall, "SimpleMod-1-0")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(gameData, "SimpleMod.esp"))
}

func TestInstall_FomodDefaults(t *testing.T) {
	setTestDirs(t)
	old := installDefaults
	t.Cleanup(func() { installDefaults = old })
	installDefaults = true

	installPath := installedGame(t, "oblivion")
	archive := writeModZip(t, map[string]string{
		"fomod/info.xml": `<fomod><Name>Simple Mod</Name><Version>1.2</Version></fomod>`,
		"fomod/ModuleConfig.xml": `<config>
  <moduleName>Simple Mod</moduleName>
  <requiredInstallFiles>
    <file source="SimpleMod.esp" />
  </requiredInstallFiles>
</config>`,
		"SimpleMod.esp": "plugin",
	})

	out, err := runCommand(runInstall, archive)
	require.NoError(t, err)
	_ = out

	assert.FileExists(t, filepath.Join(installPath, "Data", "SimpleMod.esp"))

	_, err = runCommand(runUninstall, "Simple Mod")
	require.NoError(t, err)
}

func TestInstall_MissingArchive(t *testing.T) {
	setTestDirs(t)
	installedGame(t, "oblivion")

	_, err := runCommand(runInstall, filepath.Join(t.TempDir(), "nope.zip"))
	require.Error(t, err)
}

func TestInstall_UnsupportedFormat(t *testing.T) {
	setTestDirs(t)
	installedGame(t, "oblivion")

	path := filepath.Join(t.TempDir(), "mod.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := runCommand(runInstall, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported archive format")
}
