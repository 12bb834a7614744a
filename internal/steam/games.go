package steam

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/steam-games.yaml
var defaultGamesFS embed.FS

const defaultGamesPath = "data/steam-games.yaml"

// KnownGame maps a Steam App ID to one of our game profiles.
type KnownGame struct {
	Game     string // game profile ID, e.g. "skyrimse"
	Name     string // Steam display name
	DataPath string // relative path from game install to the data directory
}

// knownGamesYAML is the on-disk format: Steam App ID -> entry.
type knownGamesYAML map[string]struct {
	Game     string `yaml:"game"`
	Name     string `yaml:"name"`
	DataPath string `yaml:"data_path"`
}

// LoadKnownGames returns the Steam App ID -> KnownGame map: the embedded
// default list merged with configDir/steam-games.yaml if present, so games
// can be added or overridden without rebuilding.
func LoadKnownGames(configDir string) (map[string]KnownGame, error) {
	data, err := defaultGamesFS.ReadFile(defaultGamesPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded steam-games: %w", err)
	}
	out, err := parseKnownGames(data)
	if err != nil {
		return nil, fmt.Errorf("embedded steam-games: %w", err)
	}

	overridePath := filepath.Join(configDir, "steam-games.yaml")
	overrideData, err := os.ReadFile(overridePath)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("reading %s: %w", overridePath, err)
	}
	override, err := parseKnownGames(overrideData)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", overridePath, err)
	}
	for appID, g := range override {
		out[appID] = g
	}
	return out, nil
}

func parseKnownGames(data []byte) (map[string]KnownGame, error) {
	var y knownGamesYAML
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("parsing steam-games: %w", err)
	}
	out := make(map[string]KnownGame, len(y))
	for appID, e := range y {
		out[appID] = KnownGame{Game: e.Game, Name: e.Name, DataPath: e.DataPath}
	}
	return out, nil
}
