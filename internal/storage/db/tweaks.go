package db

import (
	"fmt"

	"bmm/internal/domain"
)

// SaveTweakSelection records the chosen option for a game tweak, replacing
// any previous choice.
func (d *DB) SaveTweakSelection(sel *domain.TweakSelection) error {
	_, err := d.Exec(`
		INSERT INTO tweak_selections (game_id, tweak_key, option_label, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(game_id, tweak_key) DO UPDATE SET
			option_label = excluded.option_label,
			value = excluded.value
	`, sel.Game, sel.TweakKey, sel.Option, sel.Value)
	if err != nil {
		return fmt.Errorf("saving tweak selection: %w", err)
	}
	return nil
}

// GetTweakSelections returns all recorded tweak choices for a game, keyed by
// tweak key.
func (d *DB) GetTweakSelections(gameID string) (map[string]domain.TweakSelection, error) {
	rows, err := d.Query(`
		SELECT game_id, tweak_key, option_label, value
		FROM tweak_selections
		WHERE game_id = ?
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying tweak selections: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.TweakSelection)
	for rows.Next() {
		var sel domain.TweakSelection
		if err := rows.Scan(&sel.Game, &sel.TweakKey, &sel.Option, &sel.Value); err != nil {
			return nil, fmt.Errorf("scanning tweak selection: %w", err)
		}
		out[sel.TweakKey] = sel
	}
	return out, rows.Err()
}

// DeleteTweakSelection clears the recorded choice for one tweak, reverting
// it to the profile default.
func (d *DB) DeleteTweakSelection(gameID, tweakKey string) error {
	_, err := d.Exec("DELETE FROM tweak_selections WHERE game_id = ? AND tweak_key = ?", gameID, tweakKey)
	if err != nil {
		return fmt.Errorf("deleting tweak selection: %w", err)
	}
	return nil
}
