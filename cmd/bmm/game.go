package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bmm/internal/domain"
)

var gameAddLinkMethod string

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Game management commands",
	Long:  `Commands for managing game configurations.`,
}

var gameListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured games",
	Long:  `List all games configured in games.yaml, with the supported games shown when none are configured.`,
	Args:  cobra.NoArgs,
	RunE:  runGameList,
}

var gameAddCmd = &cobra.Command{
	Use:   "add <game-id> <install-path>",
	Short: "Add a game manually",
	Long: `Add a game to the configuration by its profile ID and install path.

The game ID must be one of the supported game profiles; run 'bmm game list'
to see them.

Examples:
  bmm game add skyrimse ~/.steam/steam/steamapps/common/"Skyrim Special Edition"
  bmm game add oblivion /games/Oblivion --link-method copy`,
	Args: cobra.ExactArgs(2),
	RunE: runGameAdd,
}

var gameRemoveCmd = &cobra.Command{
	Use:   "remove <game-id>",
	Short: "Remove a game from the configuration",
	Long:  `Remove a game from games.yaml. Installed packages are not touched.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGameRemove,
}

var gameSetDefaultCmd = &cobra.Command{
	Use:   "set-default <game-id>",
	Short: "Set the default game",
	Long: `Set the default game so you don't have to specify --game for every command.

Example:
  bmm game set-default skyrimse`,
	Args: cobra.ExactArgs(1),
	RunE: runGameSetDefault,
}

var gameShowDefaultCmd = &cobra.Command{
	Use:   "show-default",
	Short: "Show the current default game",
	Long:  `Display the currently configured default game.`,
	Args:  cobra.NoArgs,
	RunE:  runGameShowDefault,
}

var gameDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect Steam games and add them to config",
	Long: `Scan Steam libraries for supported games and optionally add them to games.yaml.

Prompts for which games to add (e.g. 1,2 or all or none).`,
	Args: cobra.NoArgs,
	RunE: runGameDetect,
}

func init() {
	gameAddCmd.Flags().StringVar(&gameAddLinkMethod, "link-method", "", "deployment method: symlink, hardlink or copy (default: from config)")

	gameCmd.AddCommand(gameListCmd)
	gameCmd.AddCommand(gameAddCmd)
	gameCmd.AddCommand(gameRemoveCmd)
	gameCmd.AddCommand(gameSetDefaultCmd)
	gameCmd.AddCommand(gameShowDefaultCmd)
	gameCmd.AddCommand(gameDetectCmd)
	rootCmd.AddCommand(gameCmd)
}

func runGameList(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	games := service.Games()
	if len(games) == 0 {
		cmd.Println("No games configured.")
		cmd.Println("Supported games:")
		for _, id := range service.ProfileIDs() {
			p, err := service.Profile(id)
			if err != nil {
				cmd.Printf("  %s (profile error: %v)\n", id, err)
				continue
			}
			cmd.Printf("  %s - %s\n", id, p.Name)
		}
		cmd.Println("\nUse 'bmm game detect' or 'bmm game add' to configure one.")
		return nil
	}

	if jsonOutput {
		return printJSON(games)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMETHOD\tDEFAULT\tPATH")
	fmt.Fprintln(w, "--\t----\t------\t-------\t----")
	for _, g := range games {
		def := ""
		if g.IsDefault {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.Name, g.LinkMethod.String(), def, g.InstallPath)
	}
	w.Flush()
	return nil
}

func runGameAdd(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game := &domain.Game{
		ID:          args[0],
		InstallPath: args[1],
	}
	if gameAddLinkMethod != "" {
		switch gameAddLinkMethod {
		case "symlink", "hardlink", "copy":
		default:
			return fmt.Errorf("invalid link method %q (use symlink, hardlink or copy)", gameAddLinkMethod)
		}
		game.LinkMethod = domain.ParseLinkMethod(gameAddLinkMethod)
		game.LinkMethodExplicit = true
	}

	if err := service.AddGame(game); err != nil {
		return fmt.Errorf("adding game: %w", err)
	}

	cmd.Printf("Added: %s (%s)\n", game.Name, game.ID)
	return nil
}

func runGameRemove(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if err := service.RemoveGame(args[0]); err != nil {
		return fmt.Errorf("removing game: %w", err)
	}

	cmd.Printf("Removed: %s\n", args[0])
	return nil
}

func runGameSetDefault(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if err := service.SetDefaultGame(args[0]); err != nil {
		return fmt.Errorf("setting default game: %w", err)
	}

	game, err := service.Game(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Default game set to: %s (%s)\n", game.Name, game.ID)
	return nil
}

func runGameShowDefault(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	game, err := service.DefaultGame()
	if err != nil {
		cmd.Println("No default game set")
		cmd.Println("Use 'bmm game set-default <game-id>' to set one")
		return nil
	}

	cmd.Printf("Default game: %s (%s)\n", game.Name, game.ID)
	return nil
}

func runGameDetect(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	cmd.Println("Scanning Steam libraries...")
	detected, err := service.DetectGames()
	if err != nil {
		return fmt.Errorf("detecting games: %w", err)
	}
	if len(detected) == 0 {
		cmd.Println("No supported Steam games found.")
		return nil
	}

	cmd.Printf("Found %d supported game(s):\n", len(detected))
	for i, g := range detected {
		cmd.Printf("  %d. %s (%s)\n", i+1, g.Name, g.Game)
		cmd.Printf("      Path: %s\n", g.InstallPath)
	}

	cmd.Print("Add games to config? [1,2/all/none]: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" || line == "n" || line == "none" {
		cmd.Println("No games added.")
		return nil
	}

	var indices []int
	if line == "all" || line == "a" {
		for i := 1; i <= len(detected); i++ {
			indices = append(indices, i)
		}
	} else {
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 || n > len(detected) {
				return fmt.Errorf("invalid selection: %q (use numbers 1-%d, all, or none)", part, len(detected))
			}
			indices = append(indices, n)
		}
	}

	for _, n := range indices {
		g := detected[n-1]
		game := &domain.Game{
			ID:          g.Game,
			Name:        g.Name,
			InstallPath: g.InstallPath,
			DataPath:    g.DataPath,
		}
		if err := service.AddGame(game); err != nil {
			return fmt.Errorf("saving game %s: %w", g.Game, err)
		}
		cmd.Printf("Added: %s (%s)\n", g.Name, g.Game)
	}
	return nil
}
