package linker_test

import (
	"os"
	"path/filepath"
	"testing"

	"bmm/internal/domain"
	"bmm/internal/linker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	return path
}

func TestNew_SelectsMethod(t *testing.T) {
	assert.Equal(t, domain.LinkSymlink, linker.New(domain.LinkSymlink).Method())
	assert.Equal(t, domain.LinkHardlink, linker.New(domain.LinkHardlink).Method())
	assert.Equal(t, domain.LinkCopy, linker.New(domain.LinkCopy).Method())
}

func TestSymlinkLinker_DeployAndUndeploy(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "src.esp")
	dst := filepath.Join(dir, "Data", "src.esp")

	l := linker.NewSymlink()
	require.NoError(t, l.Deploy(src, dst))

	info, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)

	deployed, err := l.IsDeployed(dst)
	require.NoError(t, err)
	assert.True(t, deployed)

	require.NoError(t, l.Undeploy(dst))
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))

	// The cached source stays.
	_, err = os.Stat(src)
	assert.NoError(t, err)
}

func TestSymlinkLinker_UndeployRefusesRegularFile(t *testing.T) {
	dir := t.TempDir()
	regular := writeSource(t, dir, "Skyrim.esm")

	err := linker.NewSymlink().Undeploy(regular)
	require.Error(t, err)

	// The file is untouched.
	_, statErr := os.Stat(regular)
	assert.NoError(t, statErr)
}

func TestSymlinkLinker_DeployReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "src.esp")
	dst := filepath.Join(dir, "dst.esp")
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))

	require.NoError(t, linker.NewSymlink().Deploy(src, dst))
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)
}

func TestHardlinkLinker_Deploy(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "src.esp")
	dst := filepath.Join(dir, "Data", "dst.esp")

	l := linker.NewHardlink()
	require.NoError(t, l.Deploy(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)

	deployed, err := l.IsDeployed(dst)
	require.NoError(t, err)
	assert.True(t, deployed)

	require.NoError(t, l.Undeploy(dst))
	deployed, err = l.IsDeployed(dst)
	require.NoError(t, err)
	assert.False(t, deployed)
}

func TestCopyLinker_Deploy(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "src.esp")
	dst := filepath.Join(dir, "Data", "dst.esp")

	l := linker.NewCopy()
	require.NoError(t, l.Deploy(src, dst))

	info, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)
}

func TestLinker_DeployMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.esp")

	err := linker.NewHardlink().Deploy(filepath.Join(dir, "missing.esp"), dst)
	assert.ErrorIs(t, err, domain.ErrLinkFailed)

	err = linker.NewCopy().Deploy(filepath.Join(dir, "missing.esp"), dst)
	assert.Error(t, err)
}

func TestLinker_UndeployMissingIsNoop(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.esp")

	assert.NoError(t, linker.NewSymlink().Undeploy(missing))
	assert.NoError(t, linker.NewHardlink().Undeploy(missing))
	assert.NoError(t, linker.NewCopy().Undeploy(missing))
}
