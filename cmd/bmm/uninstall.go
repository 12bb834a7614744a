package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Uninstall a package",
	Long: `Remove a package's deployed files from the game data directory and
forget it.

Example:
  bmm uninstall "Lush Overhaul" --game skyrimse`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := requireGame(service)
	if err != nil {
		return err
	}

	if err := service.Uninstall(game.ID, args[0]); err != nil {
		return fmt.Errorf("uninstalling %s: %w", args[0], err)
	}

	fmt.Printf("%s Uninstalled %s from %s\n", colorGreen("✓"), args[0], game.Name)
	return nil
}
