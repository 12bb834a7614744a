// Package config reads and writes the application's YAML configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ParseConfigPath validates a user-supplied config file path and returns it
// if usable: absolute, no parent traversal, an existing regular file with a
// .yaml or .yml extension.
func ParseConfigPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("config path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		return "", errors.New("config path must be absolute")
	}
	if strings.Contains(path, "..") {
		return "", errors.New("config path contains invalid traversal")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return "", errors.New("config file must have .yaml or .yml extension")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New("config file does not exist")
		}
		return "", err
	}
	if info.IsDir() {
		return "", errors.New("config path is a directory, not a file")
	}
	return path, nil
}
