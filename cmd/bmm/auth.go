package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bmm/internal/nexus"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage NexusMods authentication",
	Long: `Manage the NexusMods API key used for update checks.

Use 'bmm auth login' to store an API key.
Use 'bmm auth logout' to remove it.
Use 'bmm auth status' to check the current state.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a NexusMods API key",
	Long: `Store a NexusMods personal API key.

To get one:
  1. Visit ` + nexus.APIKeyURL + `
  2. Click "Request an API Key" if you don't have one
  3. Copy your Personal API Key`,
	Args: cobra.NoArgs,
	RunE: runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored NexusMods API key",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show NexusMods authentication status",
	Args:  cobra.NoArgs,
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

// readAPIKey reads an API key from stdin, hiding the input when stdin is a
// terminal.
func readAPIKey() (string, error) {
	fmt.Print("Enter your API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		key, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(key)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	apiKey, err := readAPIKey()
	if err != nil {
		return fmt.Errorf("reading API key: %w", err)
	}
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if err := service.SaveNexusAPIKey(apiKey); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}

	cmd.Println("API key stored. Update checks are now enabled.")
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	if err := service.DeleteNexusAPIKey(); err != nil {
		return fmt.Errorf("removing API key: %w", err)
	}

	cmd.Println("API key removed.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	key, err := service.NexusAPIKey()
	if err != nil {
		return fmt.Errorf("reading stored key: %w", err)
	}

	if key == "" {
		cmd.Printf("NexusMods: %s\n", colorYellow("not authenticated"))
		cmd.Println("Run 'bmm auth login' to store an API key.")
		return nil
	}

	cmd.Printf("NexusMods: %s\n", colorGreen("authenticated"))
	if env := service.Config().NexusAPIKeyEnv; env != "" && os.Getenv(env) != "" {
		cmd.Printf("  (key supplied by $%s)\n", env)
	}
	return nil
}
