package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bmm/internal/domain"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check installed packages for updates",
	Long: `Check NexusMods for newer versions of installed packages.

Without --game, all configured games are checked. Games whose check fails
are reported and the rest are still checked.

Examples:
  bmm update
  bmm update --game skyrimse
  bmm update --json`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	var gameIDs []string
	if gameID != "" {
		if _, err := service.Game(gameID); err != nil {
			return fmt.Errorf("game not configured: %s", gameID)
		}
		gameIDs = append(gameIDs, gameID)
	}

	ctx := context.Background()
	reports, err := service.CheckUpdates(ctx, gameIDs...)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			return fmt.Errorf("NexusMods requires authentication; run 'bmm auth login' first")
		}
		return fmt.Errorf("checking updates: %w", err)
	}

	if jsonOutput {
		return printJSON(reports)
	}

	total := 0
	for _, report := range reports {
		if report.Err != nil {
			fmt.Printf("%s %s: %v\n", colorRed("✗"), report.Game, report.Err)
			continue
		}
		if len(report.Updates) == 0 {
			if verbose {
				fmt.Printf("%s %s: up to date\n", colorGreen("✓"), report.Game)
			}
			continue
		}

		fmt.Printf("%s:\n", report.Game)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  PACKAGE\tCURRENT\tAVAILABLE")
		for _, u := range report.Updates {
			fmt.Fprintf(w, "  %s\t%s\t%s\n",
				truncate(u.Package.Name, 40),
				u.Package.Version,
				colorYellow(u.NewVersion),
			)
		}
		w.Flush()
		total += len(report.Updates)
	}

	if total == 0 {
		fmt.Println("All packages are up to date.")
	} else {
		fmt.Printf("\n%d update(s) available.\n", total)
	}
	return nil
}
