// Package cache manages the on-disk store of extracted package archives.
// Deployment links out of here, so cached files must outlive the deployment
// for symlinks and hardlinks to stay valid.
package cache

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Cache manages extracted package contents under a base directory.
type Cache struct {
	basePath string
}

// New creates a cache manager rooted at basePath.
func New(basePath string) *Cache {
	return &Cache{basePath: basePath}
}

// PackagePath returns the directory holding one package version's extracted
// files.
func (c *Cache) PackagePath(gameID, name, version string) string {
	return filepath.Join(c.basePath, gameID, name, version)
}

// Exists reports whether a package version is cached.
func (c *Cache) Exists(gameID, name, version string) bool {
	info, err := os.Stat(c.PackagePath(gameID, name, version))
	return err == nil && info.IsDir()
}

// Store writes one file into a cached package version.
func (c *Cache) Store(gameID, name, version, relativePath string, content []byte) error {
	fullPath := filepath.Join(c.PackagePath(gameID, name, version), relativePath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("writing cached file: %w", err)
	}
	return nil
}

// FilePath returns the full path of a file inside a cached package version.
func (c *Cache) FilePath(gameID, name, version, relativePath string) string {
	return filepath.Join(c.PackagePath(gameID, name, version), relativePath)
}

// ListFiles returns the relative paths of all files in a cached package
// version.
func (c *Cache) ListFiles(gameID, name, version string) ([]string, error) {
	root := c.PackagePath(gameID, name, version)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing cached files: %w", err)
	}
	return files, nil
}

// Delete removes a cached package version.
func (c *Cache) Delete(gameID, name, version string) error {
	if err := os.RemoveAll(c.PackagePath(gameID, name, version)); err != nil {
		return fmt.Errorf("deleting cached package: %w", err)
	}
	return nil
}

// Size returns the total size in bytes of a cached package version.
func (c *Cache) Size(gameID, name, version string) (int64, error) {
	var total int64
	err := filepath.WalkDir(c.PackagePath(gameID, name, version), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("calculating cache size: %w", err)
	}
	return total, nil
}
