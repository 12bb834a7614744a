package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bmm/internal/domain"

	"gopkg.in/yaml.v3"
)

// GameConfig is the YAML representation of a configured game install.
type GameConfig struct {
	Name        string `yaml:"name"`
	InstallPath string `yaml:"install_path"`
	DataPath    string `yaml:"data_path"`
	Version     string `yaml:"version,omitempty"`
	LinkMethod  string `yaml:"link_method,omitempty"`
	Default     bool   `yaml:"default,omitempty"`
}

// GamesFile is the top-level games.yaml structure.
type GamesFile struct {
	Games map[string]GameConfig `yaml:"games"`
}

// LoadGames reads all configured game installs from the config directory.
func LoadGames(configDir string) (map[string]*domain.Game, error) {
	gamesPath := filepath.Join(configDir, "games.yaml")
	data, err := os.ReadFile(gamesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]*domain.Game), nil
		}
		return nil, fmt.Errorf("reading games.yaml: %w", err)
	}

	var gamesFile GamesFile
	if err := yaml.Unmarshal(data, &gamesFile); err != nil {
		return nil, fmt.Errorf("parsing games.yaml: %w", err)
	}

	games := make(map[string]*domain.Game)
	for id, cfg := range gamesFile.Games {
		dataPath := cfg.DataPath
		if dataPath == "" {
			dataPath = filepath.Join(cfg.InstallPath, "Data")
		}
		games[id] = &domain.Game{
			ID:                 id,
			Name:               cfg.Name,
			InstallPath:        cfg.InstallPath,
			DataPath:           dataPath,
			Version:            cfg.Version,
			LinkMethod:         domain.ParseLinkMethod(cfg.LinkMethod),
			LinkMethodExplicit: cfg.LinkMethod != "",
			IsDefault:          cfg.Default,
		}
	}
	return games, nil
}

// SaveGame adds or updates a game in games.yaml. When the game is marked as
// default, the flag is cleared on every other entry.
func SaveGame(configDir string, game *domain.Game) error {
	games, err := LoadGames(configDir)
	if err != nil {
		return err
	}
	if game.IsDefault {
		for _, g := range games {
			g.IsDefault = false
		}
	}
	games[game.ID] = game
	return saveGames(configDir, games)
}

func saveGames(configDir string, games map[string]*domain.Game) error {
	gamesFile := GamesFile{Games: make(map[string]GameConfig)}
	for id, game := range games {
		cfg := GameConfig{
			Name:        game.Name,
			InstallPath: game.InstallPath,
			DataPath:    game.DataPath,
			Version:     game.Version,
			Default:     game.IsDefault,
		}
		if game.LinkMethodExplicit {
			cfg.LinkMethod = game.LinkMethod.String()
		}
		gamesFile.Games[id] = cfg
	}

	data, err := yaml.Marshal(&gamesFile)
	if err != nil {
		return fmt.Errorf("marshaling games: %w", err)
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	gamesPath := filepath.Join(configDir, "games.yaml")
	if err := os.WriteFile(gamesPath, data, 0644); err != nil {
		return fmt.Errorf("writing games.yaml: %w", err)
	}
	return nil
}

// DeleteGame removes a game from games.yaml.
func DeleteGame(configDir string, gameID string) error {
	games, err := LoadGames(configDir)
	if err != nil {
		return err
	}
	if _, exists := games[gameID]; !exists {
		return domain.ErrGameNotFound
	}
	delete(games, gameID)
	return saveGames(configDir, games)
}

// DefaultGame returns the configured default game, preferring the explicit
// per-game flag, then the config.yaml default_game setting, then a sole
// configured game.
func DefaultGame(games map[string]*domain.Game, cfg *Config) (*domain.Game, error) {
	for _, g := range games {
		if g.IsDefault {
			return g, nil
		}
	}
	if cfg != nil && cfg.DefaultGame != "" {
		if g, ok := games[cfg.DefaultGame]; ok {
			return g, nil
		}
		return nil, fmt.Errorf("default game %q: %w", cfg.DefaultGame, domain.ErrGameNotFound)
	}
	if len(games) == 1 {
		for _, g := range games {
			return g, nil
		}
	}
	return nil, domain.ErrGameNotFound
}
