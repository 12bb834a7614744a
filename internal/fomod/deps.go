package fomod

import (
	"fmt"
	"os"
	"path/filepath"

	goversion "github.com/hashicorp/go-version"
)

// Env is the context dependencies are checked against. A zero field means
// the corresponding dependency kind is assumed to be met: with no DataDir
// every fileDependency passes, with no GameVersion every gameDependency
// passes.
type Env struct {
	DataDir     string // Game data directory used for fileDependency checks
	GameVersion string // Game executable version for gameDependency checks
}

// DependencyError reports an unmet dependency, with enough detail to tell
// the user what was expected.
type DependencyError struct {
	Kind     string // "Version", "File" or "Flag"
	Expected string
	Actual   string
}

func (e *DependencyError) Error() string {
	switch e.Kind {
	case "Version":
		return fmt.Sprintf("version dependency not met: game version is %s, %s or newer is required", e.Actual, e.Expected)
	case "File":
		return fmt.Sprintf("file dependency not met: %s should be %s", e.Actual, e.Expected)
	case "Flag":
		return fmt.Sprintf("flag dependency not met: expected value %q instead of %q", e.Expected, e.Actual)
	default:
		return fmt.Sprintf("%s dependency not met", e.Kind)
	}
}

// checkDependencies evaluates a composite dependency node against the
// current flag states and environment. And operators short-circuit on the
// first failure; Or operators fail only when every child check failed.
func checkDependencies(d *dependencies, flags map[string]string, env Env) error {
	if d == nil {
		return nil
	}
	operator := d.Operator
	if operator == "" {
		operator = "And"
	}

	total := d.childCount()
	missed := 0
	var lastErr error

	fail := func(err error) error {
		missed++
		lastErr = err
		if operator == "And" {
			return err
		}
		return nil
	}

	for _, g := range d.Games {
		if env.GameVersion == "" {
			continue
		}
		ok, err := versionAtLeast(env.GameVersion, g.Version)
		if err != nil {
			return err
		}
		if !ok {
			if err := fail(&DependencyError{Kind: "Version", Expected: g.Version, Actual: env.GameVersion}); err != nil {
				return err
			}
		}
	}

	for _, f := range d.Files {
		if env.DataDir == "" {
			continue
		}
		_, statErr := os.Stat(filepath.Join(env.DataDir, filepath.FromSlash(f.File)))
		present := statErr == nil
		switch {
		case f.State == "Missing" && present:
			if err := fail(&DependencyError{Kind: "File", Expected: "missing", Actual: f.File}); err != nil {
				return err
			}
		case (f.State == "Active" || f.State == "Inactive") && !present:
			if err := fail(&DependencyError{Kind: "File", Expected: f.State, Actual: f.File}); err != nil {
				return err
			}
		}
	}

	for _, f := range d.Flags {
		if flags[f.Flag] != f.Value {
			if err := fail(&DependencyError{Kind: "Flag", Expected: f.Value, Actual: flags[f.Flag]}); err != nil {
				return err
			}
		}
	}

	for i := range d.Nested {
		if err := checkDependencies(&d.Nested[i], flags, env); err != nil {
			if ferr := fail(err); ferr != nil {
				return ferr
			}
		}
	}

	if operator == "Or" && total > 0 && missed == total {
		return lastErr
	}
	return nil
}

// versionAtLeast reports whether have >= want, parsing loosely (Bethesda
// executables use four-segment versions like 1.5.97.0).
func versionAtLeast(have, want string) (bool, error) {
	hv, err := goversion.NewVersion(have)
	if err != nil {
		return false, fmt.Errorf("parsing game version %q: %w", have, err)
	}
	wv, err := goversion.NewVersion(want)
	if err != nil {
		return false, fmt.Errorf("parsing required version %q: %w", want, err)
	}
	return hv.GreaterThanOrEqual(wv), nil
}
