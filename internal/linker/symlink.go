package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"bmm/internal/domain"
)

// SymlinkLinker deploys files as symbolic links back into the cache.
type SymlinkLinker struct{}

func NewSymlink() *SymlinkLinker {
	return &SymlinkLinker{}
}

// Deploy creates a symlink at dst pointing to src, replacing any existing
// file there.
func (l *SymlinkLinker) Deploy(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating destination dir: %w", err)
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing file: %w", err)
	}
	if err := os.Symlink(src, dst); err != nil {
		return fmt.Errorf("%w: symlink %s: %v", domain.ErrLinkFailed, dst, err)
	}
	return nil
}

// Undeploy removes the symlink at dst. Regular files are left alone so a
// game's own files are never deleted by mistake.
func (l *SymlinkLinker) Undeploy(dst string) error {
	info, err := os.Lstat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking file: %w", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return fmt.Errorf("not a symlink: %s", dst)
	}
	if err := os.Remove(dst); err != nil {
		return fmt.Errorf("removing symlink: %w", err)
	}
	return nil
}

// IsDeployed reports whether dst is a symlink.
func (l *SymlinkLinker) IsDeployed(dst string) (bool, error) {
	info, err := os.Lstat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

func (l *SymlinkLinker) Method() domain.LinkMethod {
	return domain.LinkSymlink
}
