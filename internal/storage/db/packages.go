package db

import (
	"database/sql"
	"fmt"
	"time"

	"bmm/internal/domain"
)

// SavePackage inserts or updates an installed package record.
func (d *DB) SavePackage(pkg *domain.InstalledPackage) error {
	installedAt := pkg.InstalledAt
	if installedAt.IsZero() {
		installedAt = time.Now()
	}
	_, err := d.Exec(`
		INSERT INTO installed_packages (id, game_id, name, version, nexus_mod_id, link_method, installed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			version = excluded.version,
			nexus_mod_id = excluded.nexus_mod_id,
			link_method = excluded.link_method
	`, pkg.ID, pkg.Game, pkg.Name, pkg.Version, pkg.NexusModID, pkg.LinkMethod, installedAt)
	if err != nil {
		return fmt.Errorf("saving package: %w", err)
	}
	return nil
}

// GetPackages returns all installed packages for a game, oldest install
// first.
func (d *DB) GetPackages(gameID string) ([]domain.InstalledPackage, error) {
	rows, err := d.Query(`
		SELECT id, game_id, name, version, nexus_mod_id, link_method, installed_at
		FROM installed_packages
		WHERE game_id = ?
		ORDER BY installed_at ASC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying packages: %w", err)
	}
	defer rows.Close()

	var pkgs []domain.InstalledPackage
	for rows.Next() {
		var pkg domain.InstalledPackage
		if err := rows.Scan(&pkg.ID, &pkg.Game, &pkg.Name, &pkg.Version, &pkg.NexusModID, &pkg.LinkMethod, &pkg.InstalledAt); err != nil {
			return nil, fmt.Errorf("scanning package: %w", err)
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, rows.Err()
}

// GetPackageByName retrieves one installed package by game and name.
func (d *DB) GetPackageByName(gameID, name string) (*domain.InstalledPackage, error) {
	var pkg domain.InstalledPackage
	err := d.QueryRow(`
		SELECT id, game_id, name, version, nexus_mod_id, link_method, installed_at
		FROM installed_packages
		WHERE game_id = ? AND name = ?
	`, gameID, name).Scan(&pkg.ID, &pkg.Game, &pkg.Name, &pkg.Version, &pkg.NexusModID, &pkg.LinkMethod, &pkg.InstalledAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting package: %w", err)
	}
	return &pkg, nil
}

// DeletePackage removes a package record; its files go with it.
func (d *DB) DeletePackage(id string) error {
	result, err := d.Exec("DELETE FROM installed_packages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting package: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

// SavePackageFiles replaces the recorded file list for a package.
func (d *DB) SavePackageFiles(packageID string, files []domain.PackageFile) error {
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM package_files WHERE package_id = ?", packageID); err != nil {
		return fmt.Errorf("clearing package files: %w", err)
	}
	for _, f := range files {
		if _, err := tx.Exec(`
			INSERT INTO package_files (package_id, path, source, size)
			VALUES (?, ?, ?, ?)
		`, packageID, f.Path, f.Source, f.Size); err != nil {
			return fmt.Errorf("saving package file %s: %w", f.Path, err)
		}
	}
	return tx.Commit()
}

// GetPackageFiles returns the deployed files recorded for a package.
func (d *DB) GetPackageFiles(packageID string) ([]domain.PackageFile, error) {
	rows, err := d.Query(`
		SELECT path, source, size
		FROM package_files
		WHERE package_id = ?
		ORDER BY path ASC
	`, packageID)
	if err != nil {
		return nil, fmt.Errorf("querying package files: %w", err)
	}
	defer rows.Close()

	var files []domain.PackageFile
	for rows.Next() {
		var f domain.PackageFile
		if err := rows.Scan(&f.Path, &f.Source, &f.Size); err != nil {
			return nil, fmt.Errorf("scanning package file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
