package db

import (
	"database/sql"
	"fmt"
	"time"
)

// StoredToken is an API key stored for an external service.
type StoredToken struct {
	Service   string
	APIKey    string
	UpdatedAt time.Time
}

// SaveToken saves or updates the API key for a service.
func (d *DB) SaveToken(service, apiKey string) error {
	_, err := d.Exec(`
		INSERT INTO auth_tokens (service, token_data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(service) DO UPDATE SET
			token_data = excluded.token_data,
			updated_at = CURRENT_TIMESTAMP
	`, service, apiKey)
	if err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

// GetToken retrieves the API key for a service; nil when none is stored.
func (d *DB) GetToken(service string) (*StoredToken, error) {
	var token StoredToken
	err := d.QueryRow(`
		SELECT service, token_data, updated_at
		FROM auth_tokens
		WHERE service = ?
	`, service).Scan(&token.Service, &token.APIKey, &token.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}
	return &token, nil
}

// DeleteToken removes the stored API key for a service.
func (d *DB) DeleteToken(service string) error {
	_, err := d.Exec("DELETE FROM auth_tokens WHERE service = ?", service)
	if err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}
