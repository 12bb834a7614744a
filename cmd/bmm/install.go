package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bmm/internal/core"
	"bmm/internal/domain"
	"bmm/internal/fomod"
	"bmm/internal/tui"
)

var (
	installName     string
	installVersion  string
	installNexusID  int
	installDefaults bool
)

var installCmd = &cobra.Command{
	Use:   "install <archive-or-dir>",
	Short: "Install a mod package",
	Long: `Install a mod package from an archive or an already extracted directory.

Packages with a FOMOD installer are walked interactively; pass --defaults to
accept the installer's default selections instead. Packages without an
installer are deployed as-is.

Examples:
  bmm install ~/Downloads/LushOverhaul-2-1.zip --game skyrimse
  bmm install ~/Downloads/LushOverhaul-2-1.zip --defaults
  bmm install ./extracted-mod --name "Lush Overhaul" --version 2.1`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installName, "name", "", "package name (default: from the installer or archive name)")
	installCmd.Flags().StringVar(&installVersion, "version", "", "package version (default: from the installer)")
	installCmd.Flags().IntVar(&installNexusID, "nexus-id", 0, "NexusMods mod ID, for update checks")
	installCmd.Flags().BoolVar(&installDefaults, "defaults", false, "accept installer defaults instead of running the wizard")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := requireGame(service)
	if err != nil {
		return err
	}

	pkgDir, name, version, err := stagePackage(service, game, args[0])
	if err != nil {
		return err
	}

	plan, name, version, err := resolveInstallPlan(game, pkgDir, name, version)
	if err != nil {
		return err
	}
	if installName != "" {
		name = installName
	}
	if installVersion != "" {
		version = installVersion
	}

	if verbose {
		fmt.Printf("Deploying %d plan entr(ies) with %s...\n", len(plan), game.LinkMethod.String())
	}

	pkg, err := service.Install(core.InstallRequest{
		Game:       game,
		Name:       name,
		Version:    version,
		NexusModID: installNexusID,
		PackageDir: pkgDir,
		Plan:       plan,
	})
	if err != nil {
		return fmt.Errorf("installing %s: %w", name, err)
	}

	fmt.Printf("%s Installed %s", colorGreen("✓"), pkg.Name)
	if pkg.Version != "" {
		fmt.Printf(" v%s", pkg.Version)
	}
	fmt.Printf(" for %s\n", game.Name)
	return nil
}

// stagePackage makes the package contents available as a directory: a
// directory argument is used in place, an archive is extracted into the
// cache. The returned name and version are guesses from the file name that
// installer metadata may override.
func stagePackage(svc *core.Service, game *domain.Game, path string) (dir, name, version string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", "", fmt.Errorf("reading package: %w", err)
	}

	name = packageNameFromPath(path)
	if info.IsDir() {
		return path, name, "", nil
	}

	extractor := core.NewExtractor()
	if !extractor.CanExtract(path) {
		return "", "", "", fmt.Errorf("unsupported archive format: %s", filepath.Ext(path))
	}

	dir = svc.Cache().PackagePath(game.ID, name, "staged")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", "", fmt.Errorf("creating cache dir: %w", err)
	}
	if verbose {
		fmt.Printf("Extracting %s...\n", filepath.Base(path))
	}
	if err := extractor.Extract(path, dir); err != nil {
		return "", "", "", fmt.Errorf("extracting archive: %w", err)
	}
	return dir, name, "", nil
}

// packageNameFromPath derives a package name from an archive or directory
// path, e.g. "LushOverhaul-2-1.zip" becomes "LushOverhaul-2-1".
func packageNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveInstallPlan builds the deploy plan for an extracted package. With
// a FOMOD installer present it is walked (interactively or with defaults);
// without one the whole package is deployed as-is.
func resolveInstallPlan(game *domain.Game, pkgDir, name, version string) ([]fomod.PlanEntry, string, string, error) {
	files, err := fomod.FindInstallerFiles(pkgDir)
	if errors.Is(err, domain.ErrFomodNotFound) {
		plan := []fomod.PlanEntry{{Source: ".", IsFolder: true}}
		return plan, name, version, nil
	}
	if err != nil {
		return nil, "", "", err
	}

	env := fomod.Env{DataDir: game.DataPath, GameVersion: game.Version}
	ins, err := fomod.NewInstaller(files, env)
	if err != nil {
		return nil, "", "", fmt.Errorf("reading installer: %w", err)
	}
	if ins.Name() != "" {
		name = ins.Name()
	}
	if v := ins.Info().Version; v != "" {
		version = v
	}

	var plan []fomod.PlanEntry
	if installDefaults {
		plan, err = runInstallerWithDefaults(ins)
	} else {
		plan, err = tui.RunWizard(ins, keyMode)
	}
	if err != nil {
		var depErr *fomod.DependencyError
		if errors.As(err, &depErr) {
			return nil, "", "", fmt.Errorf("package cannot be installed here: %w", err)
		}
		return nil, "", "", err
	}
	return plan, name, version, nil
}

// runInstallerWithDefaults walks every step accepting the selections the
// wizard would pre-fill.
func runInstallerWithDefaults(ins *fomod.Installer) ([]fomod.PlanEntry, error) {
	step, err := ins.Start()
	if err != nil {
		return nil, err
	}
	for step != nil {
		step, err = ins.Next(defaultAnswer(step))
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", ins.Current().Name, err)
		}
	}
	return ins.Plan()
}

// defaultAnswer selects required and recommended plugins, falling back to
// the first usable plugin in groups that demand exactly one.
func defaultAnswer(step *fomod.Step) fomod.Answer {
	answer := make(fomod.Answer)
	for _, g := range step.Groups {
		var ids []string
		for _, p := range g.Plugins {
			if g.Type == fomod.SelectAll || p.Type == fomod.TypeRequired {
				ids = append(ids, p.ID)
			}
		}
		if len(ids) == 0 {
			for _, p := range g.Plugins {
				if p.Type == fomod.TypeRecommended {
					ids = append(ids, p.ID)
					if g.Type == fomod.SelectExactlyOne || g.Type == fomod.SelectAtMostOne {
						break
					}
				}
			}
		}
		if len(ids) == 0 && (g.Type == fomod.SelectExactlyOne || g.Type == fomod.SelectAtLeastOne) {
			for _, p := range g.Plugins {
				if p.Type != fomod.TypeNotUsable {
					ids = append(ids, p.ID)
					break
				}
			}
		}
		if len(ids) > 0 {
			answer[g.ID] = ids
		}
	}
	return answer
}
