package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long: `List all packages installed for the specified game.

Examples:
  bmm list --game skyrimse
  bmm list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := requireGame(service)
	if err != nil {
		return err
	}

	packages, err := service.InstalledPackages(game.ID)
	if err != nil {
		return fmt.Errorf("getting installed packages: %w", err)
	}

	if jsonOutput {
		return printJSON(packages)
	}

	if verbose {
		fmt.Printf("Installed packages in %s\n\n", game.Name)
	}

	if len(packages) == 0 {
		fmt.Println("No packages installed.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tNEXUS\tMETHOD\tINSTALLED")
	fmt.Fprintln(w, "----\t-------\t-----\t------\t---------")
	for _, pkg := range packages {
		nexus := "-"
		if pkg.NexusModID != 0 {
			nexus = fmt.Sprintf("%d", pkg.NexusModID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			truncate(pkg.Name, 40),
			pkg.Version,
			nexus,
			pkg.LinkMethod.String(),
			pkg.InstalledAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	if verbose {
		fmt.Printf("\nTotal: %d package(s)\n", len(packages))
	}
	return nil
}
