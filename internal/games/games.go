// Package games wires the builtin per-game profiles into a registry.
package games

import (
	"bmm/internal/games/fallout4"
	"bmm/internal/games/oblivion"
	"bmm/internal/games/skyrimse"
	"bmm/internal/profile"
)

// RegisterAll registers loaders for every builtin game. Profiles are built
// and validated lazily, on first lookup.
func RegisterAll(reg *profile.Registry) error {
	loaders := map[string]profile.Loader{
		"oblivion": func() (*profile.Profile, error) { return oblivion.Profile(), nil },
		"skyrimse": func() (*profile.Profile, error) { return skyrimse.Profile(), nil },
		"fallout4": func() (*profile.Profile, error) { return fallout4.Profile(), nil },
	}
	for id, load := range loaders {
		if err := reg.RegisterLoader(id, load); err != nil {
			return err
		}
	}
	return nil
}
