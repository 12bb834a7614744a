package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bmm/internal/tui"
)

var tweakValue string

var tweaksCmd = &cobra.Command{
	Use:   "tweaks",
	Short: "Manage INI and settings tweaks",
	Long: `Commands for viewing and selecting the game's settings tweaks.

Selections are recorded per game and applied on top of the profile
defaults.`,
}

var tweaksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tweaks and their current values",
	Args:  cobra.NoArgs,
	RunE:  runTweaksList,
}

var tweaksSetCmd = &cobra.Command{
	Use:   "set <key> [option]",
	Short: "Select a tweak option",
	Long: `Select an option for a tweak by its label, or supply a custom value
with --value for tweaks that accept one. When the option is omitted and the
tweak accepts a custom value, an interactive prompt asks for it.

Examples:
  bmm tweaks set arrow-litter-count "3 (default)"
  bmm tweaks set arrow-litter-count --value 15`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTweaksSet,
}

var tweaksResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Reset a tweak to its profile default",
	Args:  cobra.ExactArgs(1),
	RunE:  runTweaksReset,
}

func init() {
	tweaksSetCmd.Flags().StringVar(&tweakValue, "value", "", "custom numeric value (for tweaks that accept one)")

	tweaksCmd.AddCommand(tweaksListCmd)
	tweaksCmd.AddCommand(tweaksSetCmd)
	tweaksCmd.AddCommand(tweaksResetCmd)
	rootCmd.AddCommand(tweaksCmd)
}

func runTweaksList(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := requireGame(service)
	if err != nil {
		return err
	}

	tweaks, err := service.Tweaks(game.ID)
	if err != nil {
		return fmt.Errorf("loading tweaks: %w", err)
	}

	if jsonOutput {
		return printJSON(tweaks)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tVALUE\tSELECTED")
	fmt.Fprintln(w, "---\t-----\t-----\t--------")
	for _, t := range tweaks {
		selected := ""
		if t.Selected != nil {
			selected = t.Selected.Option
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\n", t.Tweak.Key, truncate(t.Tweak.Label, 40), t.Value, selected)
	}
	w.Flush()

	if verbose {
		fmt.Printf("\nTotal: %d tweak(s)\n", len(tweaks))
	}
	return nil
}

func runTweaksSet(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := requireGame(service)
	if err != nil {
		return err
	}
	key := args[0]

	if len(args) > 1 {
		if tweakValue != "" {
			return fmt.Errorf("give either an option label or --value, not both")
		}
		if err := service.SetTweak(game.ID, key, args[1]); err != nil {
			return err
		}
		cmd.Printf("%s = %s\n", key, args[1])
		return nil
	}

	raw := tweakValue
	if raw == "" {
		p, err := service.Profile(game.ID)
		if err != nil {
			return err
		}
		tw, ok := p.Tweak(key)
		if !ok {
			return fmt.Errorf("unknown tweak: %s", key)
		}
		raw, err = tui.RunPrompt(fmt.Sprintf("%s (custom value)", tw.Label), "")
		if err != nil {
			return err
		}
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: must be a number", raw)
	}
	if err := service.SetTweakValue(game.ID, key, value); err != nil {
		return err
	}
	cmd.Printf("%s = %g\n", key, value)
	return nil
}

func runTweaksReset(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := requireGame(service)
	if err != nil {
		return err
	}

	if err := service.ResetTweak(game.ID, args[0]); err != nil {
		return err
	}
	cmd.Printf("%s reset to default\n", args[0])
	return nil
}
