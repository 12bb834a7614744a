package core_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"bmm/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestZip(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(dir, "test.zip")
	f, err := os.Create(zipPath)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return zipPath
}

func TestExtractor_Extract_Zip(t *testing.T) {
	destDir := t.TempDir()
	zipPath := createTestZip(t, t.TempDir(), map[string]string{
		"LushOverhaul.esp":         "TES4",
		"fomod/ModuleConfig.xml":   "<config/>",
		"textures/rocks/cliff.dds": "DDS",
	})

	require.NoError(t, core.NewExtractor().Extract(zipPath, destDir))

	content, err := os.ReadFile(filepath.Join(destDir, "LushOverhaul.esp"))
	require.NoError(t, err)
	assert.Equal(t, "TES4", string(content))

	_, err = os.Stat(filepath.Join(destDir, "textures", "rocks", "cliff.dds"))
	assert.NoError(t, err)
}

func TestExtractor_Extract_ZipSlipRejected(t *testing.T) {
	destDir := t.TempDir()
	zipPath := createTestZip(t, t.TempDir(), map[string]string{
		"../evil.esp": "nope",
	})

	err := core.NewExtractor().Extract(zipPath, destDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path traversal")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(destDir), "evil.esp"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractor_DetectFormat(t *testing.T) {
	e := core.NewExtractor()

	assert.Equal(t, "zip", e.DetectFormat("mod.ZIP"))
	assert.Equal(t, "7z", e.DetectFormat("mod.7z"))
	assert.Equal(t, "rar", e.DetectFormat("mod.rar"))
	assert.Equal(t, "", e.DetectFormat("mod.tar.gz"))

	assert.True(t, e.CanExtract("mod.zip"))
	assert.False(t, e.CanExtract("mod.exe"))
}

func TestExtractor_Extract_Unsupported(t *testing.T) {
	err := core.NewExtractor().Extract("mod.tar.gz", t.TempDir())
	assert.Error(t, err)
}
