package domain

// LinkMethod determines how package files are deployed into the game data
// directory.
type LinkMethod int

const (
	LinkSymlink  LinkMethod = iota // default, space efficient
	LinkHardlink                   // transparent to the game
	LinkCopy                       // maximum compatibility
)

func (m LinkMethod) String() string {
	switch m {
	case LinkSymlink:
		return "symlink"
	case LinkHardlink:
		return "hardlink"
	case LinkCopy:
		return "copy"
	default:
		return "unknown"
	}
}

// ParseLinkMethod converts a string to LinkMethod, defaulting to symlink.
func ParseLinkMethod(s string) LinkMethod {
	switch s {
	case "hardlink":
		return LinkHardlink
	case "copy":
		return LinkCopy
	default:
		return LinkSymlink
	}
}

// Game is a configured game install: the mutable, per-machine counterpart of
// a game profile.
type Game struct {
	ID                 string     // game profile ID, e.g. "skyrimse"
	Name               string     // display name
	InstallPath        string     // game installation directory
	DataPath           string     // directory packages are deployed into
	Version            string     // game executable version, if known
	LinkMethod         LinkMethod // how to deploy package files
	LinkMethodExplicit bool       // true when LinkMethod was set in config
	IsDefault          bool       // default game for commands without --game
}
