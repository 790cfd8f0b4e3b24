package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/viberbox/internal/app"
	"github.com/firefly-engineering/viberbox/internal/discovery"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show state files and where Sandboxie and Viber were found",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

var pathsFormat string

func init() {
	pathsCmd.Flags().StringVarP(&pathsFormat, "output", "o", formatTable, "Output format: table, json or yaml")
	rootCmd.AddCommand(pathsCmd)
}

type pathsReport struct {
	StateDir  string           `json:"stateDir" yaml:"stateDir"`
	Settings  string           `json:"settings" yaml:"settings"`
	Accounts  string           `json:"accounts" yaml:"accounts"`
	AppPath   string           `json:"appPathFile" yaml:"appPathFile"`
	History   string           `json:"history" yaml:"history"`
	Discovery discovery.Report `json:"discovery" yaml:"discovery"`
}

func runPaths(cmd *cobra.Command, args []string) error {
	if err := validateFormat(pathsFormat); err != nil {
		return err
	}

	p := paths()
	r := pathsReport{
		StateDir:  p.StateDir,
		Settings:  p.SettingsFile,
		Accounts:  p.AccountsFile,
		AppPath:   p.AppPathFile,
		History:   p.AuditFile,
		Discovery: app.Default.Locator().Report(),
	}

	if pathsFormat != formatTable {
		return writeStructured(cmd.OutOrStdout(), pathsFormat, r)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "State directory: %s\n", r.StateDir)
	fmt.Fprintf(out, "  Settings:      %s\n", r.Settings)
	fmt.Fprintf(out, "  Accounts:      %s\n", r.Accounts)
	fmt.Fprintf(out, "  Viber path:    %s\n", r.AppPath)
	fmt.Fprintf(out, "  History:       %s\n", r.History)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Start.exe:       %s\n", orNotFound(r.Discovery.Launcher))
	fmt.Fprintf(out, "Sandboxie.ini:   %s\n", orNotFound(r.Discovery.Config))
	fmt.Fprintf(out, "Viber.exe:       %s\n", orNotFound(r.Discovery.App))

	if verbose {
		printCandidates(cmd, "Start.exe", r.Discovery.LauncherCandidates)
		printCandidates(cmd, "Sandboxie.ini", r.Discovery.ConfigCandidates)
		printCandidates(cmd, "Viber.exe", r.Discovery.AppCandidates)
	}
	return nil
}

func orNotFound(path string) string {
	if path == "" {
		return "(not found)"
	}
	return path
}

func printCandidates(cmd *cobra.Command, what string, candidates []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s candidates:\n", what)
	for i, c := range candidates {
		fmt.Fprintf(out, "  %d. %s\n", i+1, c)
	}
}
