package domain

import "time"

// InstalledPackage is a mod package that has been installed for a game.
type InstalledPackage struct {
	ID          string // uuid assigned at install time
	Game        string // game profile ID
	Name        string
	Version     string
	NexusModID  int        // 0 for packages not from Nexus
	LinkMethod  LinkMethod // how the files were deployed
	InstalledAt time.Time
}

// PackageFile is one deployed file belonging to an installed package. Path
// is relative to the game data directory.
type PackageFile struct {
	Path   string
	Source string // path inside the package archive it came from
	Size   int64
}

// Update is an available newer version of an installed package.
type Update struct {
	Package    InstalledPackage
	NewVersion string
}

// TweakSelection records a chosen option for one of a game profile's tweaks.
type TweakSelection struct {
	Game     string
	TweakKey string
	Option   string  // option label, empty for a custom value
	Value    float64 // effective value written to the ini
}
