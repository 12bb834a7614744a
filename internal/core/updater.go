package core

import (
	"context"
	"fmt"

	"bmm/internal/domain"
)

// CheckUpdates compares each game's installed packages against NexusMods.
// gameIDs empty means all configured games. Games whose profile fails to
// load are skipped with their error collected, so one broken game does not
// block the rest.
func (s *Service) CheckUpdates(ctx context.Context, gameIDs ...string) ([]UpdateReport, error) {
	if len(gameIDs) == 0 {
		for _, g := range s.Games() {
			gameIDs = append(gameIDs, g.ID)
		}
	}

	client, err := s.NexusClient()
	if err != nil {
		return nil, err
	}

	var reports []UpdateReport
	for _, gameID := range gameIDs {
		report := UpdateReport{Game: gameID}

		p, err := s.registry.Get(gameID)
		if err != nil {
			report.Err = err
			reports = append(reports, report)
			continue
		}
		installed, err := s.db.GetPackages(gameID)
		if err != nil {
			report.Err = err
			reports = append(reports, report)
			continue
		}
		// No Nexus domain means there is nothing to query against.
		if len(installed) == 0 || p.NexusDomain == "" {
			reports = append(reports, report)
			continue
		}

		domains := map[string]string{gameID: p.NexusDomain}
		updates, err := client.CheckUpdates(ctx, installed, domains)
		if err != nil {
			return reports, fmt.Errorf("checking updates for %s: %w", gameID, err)
		}
		report.Updates = updates
		reports = append(reports, report)
	}
	return reports, nil
}

// UpdateReport holds the update-check outcome for one game.
type UpdateReport struct {
	Game    string
	Updates []domain.Update
	Err     error
}
