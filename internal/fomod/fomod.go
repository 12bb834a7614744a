// Package fomod implements the FOMOD installer format: locating the
// installer files inside a mod package, decoding ModuleConfig.xml, walking
// the install steps with the user's choices, and producing the final
// source-to-destination file plan.
package fomod

import (
	"fmt"
	"os"
	"path/filepath"

	"bmm/internal/domain"
)

// InstallerFiles are the two files that make up a FOMOD installer.
type InstallerFiles struct {
	InfoPath   string // fomod/info.xml
	ConfigPath string // fomod/ModuleConfig.xml
}

// FindInstallerFiles locates info.xml and ModuleConfig.xml under searchPath.
// Both a fomod subfolder and searchPath itself being the fomod folder are
// supported; the subfolder takes priority.
func FindInstallerFiles(searchPath string) (InstallerFiles, error) {
	info, err := os.Stat(searchPath)
	if err != nil {
		return InstallerFiles{}, fmt.Errorf("stat %s: %w", searchPath, err)
	}
	if !info.IsDir() {
		return InstallerFiles{}, fmt.Errorf("%s: not a directory", searchPath)
	}

	fomodPath := filepath.Join(searchPath, "fomod")
	if st, err := os.Stat(fomodPath); err != nil || !st.IsDir() {
		fomodPath = ""
	}
	if fomodPath == "" && filepath.Base(searchPath) == "fomod" {
		fomodPath = searchPath
	}
	if fomodPath == "" {
		return InstallerFiles{}, fmt.Errorf("%s: %w", searchPath, domain.ErrFomodNotFound)
	}

	files := InstallerFiles{
		InfoPath:   filepath.Join(fomodPath, "info.xml"),
		ConfigPath: filepath.Join(fomodPath, "ModuleConfig.xml"),
	}
	if _, err := os.Stat(files.InfoPath); err != nil {
		return InstallerFiles{}, fmt.Errorf("info.xml: %w", domain.ErrFomodNotFound)
	}
	if _, err := os.Stat(files.ConfigPath); err != nil {
		return InstallerFiles{}, fmt.Errorf("ModuleConfig.xml: %w", domain.ErrFomodNotFound)
	}
	return files, nil
}
