package db

import "fmt"

func (d *DB) migrate() error {
	if _, err := d.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	var version int
	if err := d.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version); err != nil {
		return fmt.Errorf("getting schema version: %w", err)
	}

	migrations := []func(*DB) error{
		migrateV1,
	}

	for i := version; i < len(migrations); i++ {
		if err := migrations[i](d); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if _, err := d.Exec("INSERT INTO schema_migrations (version) VALUES (?)", i+1); err != nil {
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
	}
	return nil
}

func migrateV1(d *DB) error {
	statements := []string{
		`CREATE TABLE installed_packages (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			name TEXT NOT NULL,
			version TEXT NOT NULL,
			nexus_mod_id INTEGER DEFAULT 0,
			link_method INTEGER DEFAULT 0,
			installed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(game_id, name)
		)`,
		`CREATE INDEX idx_installed_packages_game ON installed_packages(game_id)`,
		`CREATE TABLE package_files (
			package_id TEXT NOT NULL,
			path TEXT NOT NULL,
			source TEXT NOT NULL,
			size INTEGER DEFAULT 0,
			PRIMARY KEY(package_id, path),
			FOREIGN KEY(package_id) REFERENCES installed_packages(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE tweak_selections (
			game_id TEXT NOT NULL,
			tweak_key TEXT NOT NULL,
			option_label TEXT NOT NULL DEFAULT '',
			value REAL NOT NULL,
			PRIMARY KEY(game_id, tweak_key)
		)`,
		`CREATE TABLE auth_tokens (
			service TEXT PRIMARY KEY,
			token_data BLOB,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := d.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}
	return nil
}
