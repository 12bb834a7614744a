package db_test

import (
	"testing"
	"time"

	"bmm/internal/domain"
	"bmm/internal/storage/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestNew_RunsMigrations(t *testing.T) {
	database := openDB(t)

	var count int
	for _, table := range []string{"installed_packages", "package_files", "tweak_selections", "auth_tokens"} {
		assert.NoError(t, database.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count), table)
	}
}

func TestPackages_SaveAndGet(t *testing.T) {
	database := openDB(t)

	pkg := &domain.InstalledPackage{
		ID:         uuid.NewString(),
		Game:       "skyrimse",
		Name:       "Lush Overhaul",
		Version:    "2.1",
		NexusModID: 12345,
		LinkMethod: domain.LinkHardlink,
	}
	require.NoError(t, database.SavePackage(pkg))

	pkgs, err := database.GetPackages("skyrimse")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, pkg.ID, pkgs[0].ID)
	assert.Equal(t, "Lush Overhaul", pkgs[0].Name)
	assert.Equal(t, 12345, pkgs[0].NexusModID)
	assert.Equal(t, domain.LinkHardlink, pkgs[0].LinkMethod)
	assert.WithinDuration(t, time.Now(), pkgs[0].InstalledAt, time.Minute)

	got, err := database.GetPackageByName("skyrimse", "Lush Overhaul")
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)

	// Other games see nothing.
	pkgs, err = database.GetPackages("oblivion")
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestPackages_SaveUpdatesVersion(t *testing.T) {
	database := openDB(t)

	pkg := &domain.InstalledPackage{ID: uuid.NewString(), Game: "fallout4", Name: "Pkg", Version: "1.0"}
	require.NoError(t, database.SavePackage(pkg))

	pkg.Version = "2.0"
	require.NoError(t, database.SavePackage(pkg))

	got, err := database.GetPackageByName("fallout4", "Pkg")
	require.NoError(t, err)
	assert.Equal(t, "2.0", got.Version)
}

func TestPackages_GetMissing(t *testing.T) {
	database := openDB(t)

	_, err := database.GetPackageByName("skyrimse", "absent")
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)

	assert.ErrorIs(t, database.DeletePackage("no-such-id"), domain.ErrPackageNotFound)
}

func TestPackageFiles_CascadeOnDelete(t *testing.T) {
	database := openDB(t)

	pkg := &domain.InstalledPackage{ID: uuid.NewString(), Game: "skyrimse", Name: "Pkg", Version: "1.0"}
	require.NoError(t, database.SavePackage(pkg))

	files := []domain.PackageFile{
		{Path: "textures/rock.dds", Source: "textures-4k/rock.dds", Size: 2048},
		{Path: "LushOverhaul.esp", Source: "LushOverhaul.esp", Size: 100},
	}
	require.NoError(t, database.SavePackageFiles(pkg.ID, files))

	got, err := database.GetPackageFiles(pkg.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "LushOverhaul.esp", got[0].Path) // sorted by path

	require.NoError(t, database.DeletePackage(pkg.ID))
	got, err = database.GetPackageFiles(pkg.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPackageFiles_SaveReplaces(t *testing.T) {
	database := openDB(t)

	pkg := &domain.InstalledPackage{ID: uuid.NewString(), Game: "skyrimse", Name: "Pkg", Version: "1.0"}
	require.NoError(t, database.SavePackage(pkg))

	require.NoError(t, database.SavePackageFiles(pkg.ID, []domain.PackageFile{{Path: "a.esp", Source: "a.esp"}}))
	require.NoError(t, database.SavePackageFiles(pkg.ID, []domain.PackageFile{{Path: "b.esp", Source: "b.esp"}}))

	got, err := database.GetPackageFiles(pkg.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b.esp", got[0].Path)
}

func TestTweakSelections(t *testing.T) {
	database := openDB(t)

	sel := &domain.TweakSelection{Game: "oblivion", TweakKey: "arrow-litter-count", Option: "48", Value: 48}
	require.NoError(t, database.SaveTweakSelection(sel))

	// Choosing again replaces the previous selection.
	sel.Option = ""
	sel.Value = 96
	require.NoError(t, database.SaveTweakSelection(sel))

	selections, err := database.GetTweakSelections("oblivion")
	require.NoError(t, err)
	require.Len(t, selections, 1)
	assert.Equal(t, float64(96), selections["arrow-litter-count"].Value)
	assert.Empty(t, selections["arrow-litter-count"].Option)

	require.NoError(t, database.DeleteTweakSelection("oblivion", "arrow-litter-count"))
	selections, err = database.GetTweakSelections("oblivion")
	require.NoError(t, err)
	assert.Empty(t, selections)
}

func TestTokens(t *testing.T) {
	database := openDB(t)

	token, err := database.GetToken("nexus")
	require.NoError(t, err)
	assert.Nil(t, token)

	require.NoError(t, database.SaveToken("nexus", "key-1"))
	require.NoError(t, database.SaveToken("nexus", "key-2"))

	token, err = database.GetToken("nexus")
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "key-2", token.APIKey)

	require.NoError(t, database.DeleteToken("nexus"))
	token, err = database.GetToken("nexus")
	require.NoError(t, err)
	assert.Nil(t, token)
}
