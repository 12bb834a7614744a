package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bmm/internal/domain"
	"bmm/internal/fomod"
	"bmm/internal/linker"
)

// InstallRequest describes a resolved package install: the extracted
// package contents and the file plan to deploy from them.
type InstallRequest struct {
	Game       *domain.Game
	Name       string
	Version    string
	NexusModID int
	PackageDir string // extracted package root the plan sources resolve against
	Plan       []fomod.PlanEntry
}

// Install deploys a package plan into the game data directory and records
// the result. A failed deploy is rolled back; nothing is recorded.
func (s *Service) Install(req InstallRequest) (*domain.InstalledPackage, error) {
	if req.Game == nil {
		return nil, domain.ErrGameNotFound
	}
	if existing, err := s.db.GetPackageByName(req.Game.ID, req.Name); err == nil && existing != nil {
		return nil, fmt.Errorf("package %q already installed (version %s)", req.Name, existing.Version)
	}

	files, err := resolvePlan(req.PackageDir, req.Plan)
	if err != nil {
		return nil, err
	}

	lnk := linker.New(req.Game.LinkMethod)
	var deployed []string
	for _, f := range files {
		dst := filepath.Join(req.Game.DataPath, f.Path)
		if err := lnk.Deploy(filepath.Join(req.PackageDir, f.Source), dst); err != nil {
			for _, d := range deployed {
				_ = lnk.Undeploy(d)
			}
			return nil, fmt.Errorf("deploying %s: %w", f.Path, err)
		}
		deployed = append(deployed, dst)
	}

	pkg := &domain.InstalledPackage{
		ID:          uuid.NewString(),
		Game:        req.Game.ID,
		Name:        req.Name,
		Version:     req.Version,
		NexusModID:  req.NexusModID,
		LinkMethod:  req.Game.LinkMethod,
		InstalledAt: time.Now(),
	}
	if err := s.db.SavePackage(pkg); err != nil {
		for _, d := range deployed {
			_ = lnk.Undeploy(d)
		}
		return nil, err
	}
	if err := s.db.SavePackageFiles(pkg.ID, files); err != nil {
		for _, d := range deployed {
			_ = lnk.Undeploy(d)
		}
		_ = s.db.DeletePackage(pkg.ID)
		return nil, err
	}
	return pkg, nil
}

// Uninstall undeploys a package's recorded files and removes it from the
// database. Files already gone from the data directory are skipped.
func (s *Service) Uninstall(gameID, name string) error {
	game, err := s.Game(gameID)
	if err != nil {
		return err
	}
	pkg, err := s.db.GetPackageByName(gameID, name)
	if err != nil {
		return err
	}
	files, err := s.db.GetPackageFiles(pkg.ID)
	if err != nil {
		return err
	}

	lnk := linker.New(pkg.LinkMethod)
	for _, f := range files {
		if err := lnk.Undeploy(filepath.Join(game.DataPath, f.Path)); err != nil {
			return fmt.Errorf("undeploying %s: %w", f.Path, err)
		}
	}
	return s.db.DeletePackage(pkg.ID)
}

// resolvePlan expands a FOMOD plan into a flat file list: folder entries are
// walked, destinations default to the source path, and all paths are
// normalized to the local separator.
func resolvePlan(packageDir string, plan []fomod.PlanEntry) ([]domain.PackageFile, error) {
	var files []domain.PackageFile
	for _, entry := range plan {
		src := filepath.FromSlash(entry.Source)
		dst := filepath.FromSlash(entry.Destination)
		if dst == "" {
			dst = src
		}

		if !entry.IsFolder {
			info, err := os.Stat(filepath.Join(packageDir, src))
			if err != nil {
				return nil, fmt.Errorf("plan source %s: %w", entry.Source, err)
			}
			files = append(files, domain.PackageFile{Path: dst, Source: src, Size: info.Size()})
			continue
		}

		root := filepath.Join(packageDir, src)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, domain.PackageFile{
				Path:   filepath.Join(dst, rel),
				Source: filepath.Join(src, rel),
				Size:   info.Size(),
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("plan folder %s: %w", entry.Source, err)
		}
	}
	return files, nil
}
