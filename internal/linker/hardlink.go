package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"bmm/internal/domain"
)

// HardlinkLinker deploys files as hard links, which games cannot tell from
// regular files.
type HardlinkLinker struct{}

func NewHardlink() *HardlinkLinker {
	return &HardlinkLinker{}
}

// Deploy creates a hard link at dst for src, replacing any existing file.
// Fails when src and dst are on different filesystems.
func (l *HardlinkLinker) Deploy(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating destination dir: %w", err)
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing file: %w", err)
	}
	if err := os.Link(src, dst); err != nil {
		return fmt.Errorf("%w: hardlink %s: %v", domain.ErrLinkFailed, dst, err)
	}
	return nil
}

// Undeploy removes the file at dst.
func (l *HardlinkLinker) Undeploy(dst string) error {
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing file: %w", err)
	}
	return nil
}

// IsDeployed reports whether dst exists. Hard links are indistinguishable
// from regular files, so this is the best available check.
func (l *HardlinkLinker) IsDeployed(dst string) (bool, error) {
	_, err := os.Stat(dst)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (l *HardlinkLinker) Method() domain.LinkMethod {
	return domain.LinkHardlink
}
