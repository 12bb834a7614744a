package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bmm/internal/core"
	"bmm/internal/profile"
)

var (
	conditionsForm1 bool
	conditionsForm2 bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect built-in game profiles",
	Long: `Commands for inspecting the built-in game profiles: master files,
vanilla data, condition functions and patcher subsystem tables.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [game-id]",
	Short: "Show a game profile summary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileShow,
}

var profileConditionsCmd = &cobra.Command{
	Use:   "conditions [game-id]",
	Short: "List a profile's condition functions",
	Long: `List the condition functions a game's scripting engine understands.

With --form1 or --form2, lists only the functions whose first or second
parameter is a form ID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfileConditions,
}

var profileTablesCmd = &cobra.Command{
	Use:   "tables [game-id]",
	Short: "List a profile's patcher subsystem tables",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileTables,
}

var profileTableCmd = &cobra.Command{
	Use:   "table <name> [game-id]",
	Short: "Show one patcher subsystem table",
	Long: `Show the record types and attributes of one patcher subsystem table.

Example:
  bmm profile table stats oblivion`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProfileTable,
}

func init() {
	profileConditionsCmd.Flags().BoolVar(&conditionsForm1, "form1", false, "only functions whose first parameter is a form ID")
	profileConditionsCmd.Flags().BoolVar(&conditionsForm2, "form2", false, "only functions whose second parameter is a form ID")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileConditionsCmd)
	profileCmd.AddCommand(profileTablesCmd)
	profileCmd.AddCommand(profileTableCmd)
	rootCmd.AddCommand(profileCmd)
}

// resolveProfileID picks the game whose profile to inspect: an explicit
// argument, then the --game flag, then the configured default game.
func resolveProfileID(svc *core.Service, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if gameID != "" {
		return gameID, nil
	}
	if game, err := svc.DefaultGame(); err == nil {
		return game.ID, nil
	}
	return "", fmt.Errorf("no game specified; pass a game ID or use --game (supported: %s)", strings.Join(svc.ProfileIDs(), ", "))
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	id, err := resolveProfileID(service, args)
	if err != nil {
		return err
	}
	p, err := service.Profile(id)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	if jsonOutput {
		return printJSON(map[string]interface{}{
			"id":          p.ID,
			"name":        p.Name,
			"exe":         p.Exe,
			"masters":     p.MasterFiles,
			"iniFiles":    p.IniFiles,
			"dataDir":     p.DataDir,
			"nexusDomain": p.NexusDomain,
			"dataFiles":   p.DataFiles.Sorted(),
			"conditions":  len(p.Conditions.All),
			"tweaks":      len(p.Tweaks()),
			"tables":      p.TableNames(),
		})
	}

	cmd.Printf("%s (%s)\n", p.Name, p.ID)
	cmd.Printf("  Executable:   %s\n", p.Exe)
	cmd.Printf("  Data dir:     %s\n", p.DataDir)
	cmd.Printf("  Masters:      %s\n", strings.Join(p.MasterFiles, ", "))
	cmd.Printf("  INI files:    %s\n", strings.Join(p.IniFiles, ", "))
	if p.NexusDomain != "" {
		cmd.Printf("  Nexus domain: %s\n", p.NexusDomain)
	}
	cmd.Printf("  Vendor data files: %d\n", len(p.DataFiles))
	cmd.Printf("  Condition functions: %d (%d form1, %d form2)\n",
		len(p.Conditions.All), len(p.Conditions.FirstForm), len(p.Conditions.SecondForm))
	cmd.Printf("  Tweaks: %d\n", len(p.Tweaks()))
	cmd.Printf("  Tables: %s\n", strings.Join(p.TableNames(), ", "))
	return nil
}

func runProfileConditions(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	id, err := resolveProfileID(service, args)
	if err != nil {
		return err
	}
	p, err := service.Profile(id)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	funcs := p.ConditionFunctions
	if conditionsForm1 || conditionsForm2 {
		var filtered []profile.ConditionFunction
		for _, f := range funcs {
			if conditionsForm1 && !p.Conditions.FormParam1(f.ID) {
				continue
			}
			if conditionsForm2 && !p.Conditions.FormParam2(f.ID) {
				continue
			}
			filtered = append(filtered, f)
		}
		funcs = filtered
	}

	if jsonOutput {
		return printJSON(funcs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tARITY\tPARAM1\tPARAM2")
	fmt.Fprintln(w, "--\t----\t-----\t------\t------")
	for _, f := range funcs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", f.ID, f.Name, f.ParamArity, f.Param1.String(), f.Param2.String())
	}
	w.Flush()

	if verbose {
		fmt.Printf("\nTotal: %d function(s)\n", len(funcs))
	}
	return nil
}

func runProfileTables(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	id, err := resolveProfileID(service, args)
	if err != nil {
		return err
	}
	p, err := service.Profile(id)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	names := p.TableNames()
	if jsonOutput {
		return printJSON(names)
	}
	for _, name := range names {
		cmd.Printf("%s (%d record types)\n", name, len(p.Tables[name]))
	}
	return nil
}

func runProfileTable(cmd *cobra.Command, args []string) error {
	service, err := initService()
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer service.Close()

	id, err := resolveProfileID(service, args[1:])
	if err != nil {
		return err
	}
	table, err := service.ProfileTable(id, args[0])
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	if jsonOutput {
		return printJSON(table)
	}

	p, err := service.Profile(id)
	if err != nil {
		return err
	}
	for _, tag := range table.Tags() {
		label := tag
		if name := p.RecordTypeName(tag); name != tag {
			label = fmt.Sprintf("%s (%s)", tag, name)
		}
		attrs := table[tag]
		if len(attrs) == 0 {
			cmd.Println(label)
			continue
		}
		cmd.Printf("%s: %s\n", label, strings.Join(attrs, ", "))
	}
	return nil
}
