// Package steam scans local Steam libraries for installed games we have a
// profile for.
package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bmm/internal/profile"
)

// DetectedGame is a Steam install matched against a registered game profile.
type DetectedGame struct {
	SteamAppID  string
	Game        string // game profile ID
	Name        string // Steam display name
	InstallPath string // absolute path to the game install
	DataPath    string // absolute path to the game data directory
}

// FindSteamRoots returns candidate Steam installation roots in search order.
// STEAM_ROOT, when set, is tried first.
func FindSteamRoots() []string {
	home, _ := os.UserHomeDir()
	candidates := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	}
	if p := os.Getenv("STEAM_ROOT"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	var out []string
	for _, p := range candidates {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LibraryPaths returns all Steam library paths for a Steam root, reading
// libraryfolders.vdf. A root without one is its own single library.
func LibraryPaths(steamRoot string) ([]string, error) {
	vdfPath := filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf")
	data, err := os.ReadFile(vdfPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{steamRoot}, nil
		}
		return nil, fmt.Errorf("reading libraryfolders: %w", err)
	}
	root, err := ParseVDF(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing libraryfolders: %w", err)
	}
	paths := libraryPaths(root)
	if len(paths) == 0 {
		return []string{steamRoot}, nil
	}
	return paths, nil
}

// DetectGames scans Steam libraries for installs matching registered game
// profiles. A match requires the profile's detect file to exist under the
// install path, so lookalike folders are skipped. configDir is used to load
// the known-games list override.
func DetectGames(reg *profile.Registry, configDir string) ([]DetectedGame, error) {
	knownGames, err := LoadKnownGames(configDir)
	if err != nil {
		return nil, err
	}
	var found []DetectedGame
	seen := make(map[string]bool) // game ID, to dedupe across libraries

	for _, steamRoot := range FindSteamRoots() {
		libraries, err := LibraryPaths(steamRoot)
		if err != nil {
			continue
		}
		for _, libPath := range libraries {
			steamapps := filepath.Join(libPath, "steamapps")
			entries, err := os.ReadDir(steamapps)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				name := e.Name()
				if !strings.HasPrefix(name, "appmanifest_") || !strings.HasSuffix(name, ".acf") {
					continue
				}
				data, err := os.ReadFile(filepath.Join(steamapps, name))
				if err != nil {
					continue
				}
				manifest, err := ParseAppManifest(string(data))
				if err != nil || manifest.AppID == "" || manifest.InstallDir == "" {
					continue
				}
				known, ok := knownGames[manifest.AppID]
				if !ok || seen[known.Game] {
					continue
				}
				p, err := reg.Get(known.Game)
				if err != nil {
					continue
				}
				installPath := filepath.Join(libPath, "steamapps", "common", manifest.InstallDir)
				if _, err := os.Stat(filepath.Join(installPath, p.DetectFile)); err != nil {
					continue
				}
				seen[known.Game] = true
				found = append(found, DetectedGame{
					SteamAppID:  manifest.AppID,
					Game:        known.Game,
					Name:        known.Name,
					InstallPath: installPath,
					DataPath:    filepath.Join(installPath, known.DataPath),
				})
			}
		}
	}
	return found, nil
}
