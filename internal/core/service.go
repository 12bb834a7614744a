// Package core orchestrates game configuration, package installs and
// updates on top of the storage and profile layers.
package core

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"bmm/internal/domain"
	"bmm/internal/games"
	"bmm/internal/nexus"
	"bmm/internal/profile"
	"bmm/internal/steam"
	"bmm/internal/storage/cache"
	"bmm/internal/storage/config"
	"bmm/internal/storage/db"
)

// nexusService is the auth_tokens key for the NexusMods API key.
const nexusService = "nexus"

// ServiceConfig holds the directories the service works in.
type ServiceConfig struct {
	ConfigDir string // configuration files
	DataDir   string // database and persistent data
	CacheDir  string // extracted package cache
}

// Service is the main orchestrator for all operations.
type Service struct {
	config   *config.Config
	db       *db.DB
	cache    *cache.Cache
	registry *profile.Registry
	games    map[string]*domain.Game

	nexusClient *nexus.Client

	configDir string
	dataDir   string
	cacheDir  string
}

// NewService loads configuration, opens the database and registers the
// builtin game profiles. Profiles load lazily, so a broken profile only
// surfaces when its game is used.
func NewService(cfg ServiceConfig) (*Service, error) {
	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	database, err := db.New(filepath.Join(cfg.DataDir, "bmm.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	installed, err := config.LoadGames(cfg.ConfigDir)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("loading games: %w", err)
	}

	registry := profile.NewRegistry()
	if err := games.RegisterAll(registry); err != nil {
		database.Close()
		return nil, fmt.Errorf("registering game profiles: %w", err)
	}

	cachePath := cfg.CacheDir
	if appConfig.CachePath != "" {
		cachePath = appConfig.CachePath
	}

	return &Service{
		config:    appConfig,
		db:        database,
		cache:     cache.New(cachePath),
		registry:  registry,
		games:     installed,
		configDir: cfg.ConfigDir,
		dataDir:   cfg.DataDir,
		cacheDir:  cachePath,
	}, nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Config returns the loaded application config.
func (s *Service) Config() *config.Config { return s.config }

// DB exposes the underlying database.
func (s *Service) DB() *db.DB { return s.db }

// Cache exposes the package cache.
func (s *Service) Cache() *cache.Cache { return s.cache }

// Registry exposes the game profile registry.
func (s *Service) Registry() *profile.Registry { return s.registry }

// Profile returns the immutable profile for a game.
func (s *Service) Profile(gameID string) (*profile.Profile, error) {
	return s.registry.Get(gameID)
}

// ProfileTable returns one subsystem table from a game's profile.
func (s *Service) ProfileTable(gameID, table string) (profile.Table, error) {
	return s.registry.Table(gameID, table)
}

// ProfileIDs returns the IDs of all registered game profiles, sorted.
func (s *Service) ProfileIDs() []string {
	return s.registry.IDs()
}

// Games returns all configured game installs, sorted by ID.
func (s *Service) Games() []*domain.Game {
	out := make([]*domain.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Game returns one configured game install.
func (s *Service) Game(gameID string) (*domain.Game, error) {
	game, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", gameID, domain.ErrGameNotFound)
	}
	return game, nil
}

// DefaultGame resolves the game to use when none was given explicitly.
func (s *Service) DefaultGame() (*domain.Game, error) {
	return config.DefaultGame(s.games, s.config)
}

// AddGame validates a game install against its profile and persists it.
// The game must have a registered profile; name and data path fall back to
// profile values.
func (s *Service) AddGame(game *domain.Game) error {
	p, err := s.registry.Get(game.ID)
	if err != nil {
		return err
	}
	if game.Name == "" {
		game.Name = p.Name
	}
	if game.DataPath == "" {
		game.DataPath = filepath.Join(game.InstallPath, p.DataDir)
	}
	if !game.LinkMethodExplicit {
		game.LinkMethod = s.config.DefaultLinkMethod
	}
	if err := config.SaveGame(s.configDir, game); err != nil {
		return err
	}
	if game.IsDefault {
		// game may already be the pointer held in s.games, so leave it
		// untouched while clearing the others.
		for _, g := range s.games {
			if g.ID != game.ID {
				g.IsDefault = false
			}
		}
	}
	s.games[game.ID] = game
	return nil
}

// SetDefaultGame marks a configured game as the default.
func (s *Service) SetDefaultGame(gameID string) error {
	game, err := s.Game(gameID)
	if err != nil {
		return err
	}
	game.IsDefault = true
	return s.AddGame(game)
}

// RemoveGame drops a configured game install. Installed packages are left
// alone; uninstall them first if their files should go too.
func (s *Service) RemoveGame(gameID string) error {
	if err := config.DeleteGame(s.configDir, gameID); err != nil {
		return err
	}
	delete(s.games, gameID)
	return nil
}

// DetectGames scans Steam libraries for games matching registered profiles.
func (s *Service) DetectGames() ([]steam.DetectedGame, error) {
	return steam.DetectGames(s.registry, s.configDir)
}

// NexusClient returns a client for the NexusMods API, authenticated with
// the stored API key if one exists.
func (s *Service) NexusClient() (*nexus.Client, error) {
	if s.nexusClient != nil {
		return s.nexusClient, nil
	}
	apiKey, err := s.NexusAPIKey()
	if err != nil {
		return nil, err
	}
	s.nexusClient = nexus.NewClient(http.DefaultClient, apiKey)
	return s.nexusClient, nil
}

// SetNexusClient overrides the Nexus client, for tests.
func (s *Service) SetNexusClient(c *nexus.Client) { s.nexusClient = c }

// NexusAPIKey returns the NexusMods API key from the environment variable
// named in the config, falling back to the stored token. Empty when
// neither is set.
func (s *Service) NexusAPIKey() (string, error) {
	if env := s.config.NexusAPIKeyEnv; env != "" {
		if key := os.Getenv(env); key != "" {
			return key, nil
		}
	}
	token, err := s.db.GetToken(nexusService)
	if err != nil {
		return "", err
	}
	if token != nil {
		return token.APIKey, nil
	}
	return "", nil
}

// SaveNexusAPIKey stores the NexusMods API key.
func (s *Service) SaveNexusAPIKey(apiKey string) error {
	s.nexusClient = nil
	return s.db.SaveToken(nexusService, apiKey)
}

// DeleteNexusAPIKey removes the stored NexusMods API key.
func (s *Service) DeleteNexusAPIKey() error {
	s.nexusClient = nil
	return s.db.DeleteToken(nexusService)
}

// InstalledPackages lists the installed packages for a game.
func (s *Service) InstalledPackages(gameID string) ([]domain.InstalledPackage, error) {
	return s.db.GetPackages(gameID)
}
