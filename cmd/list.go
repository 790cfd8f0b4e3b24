package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered accounts",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "output", "o", formatTable, "Output format: table, json or yaml")
	rootCmd.AddCommand(listCmd)
}

type listEntry struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Box      string `json:"box" yaml:"box"`
}

func runList(cmd *cobra.Command, args []string) error {
	if err := validateFormat(listFormat); err != nil {
		return err
	}

	mgr, err := newManager(nil)
	if err != nil {
		return err
	}
	accounts := mgr.List()

	if listFormat != formatTable {
		entries := make([]listEntry, len(accounts))
		for i, a := range accounts {
			entries[i] = listEntry{Position: i + 1, Name: a.Name, Box: a.BoxID}
		}
		return writeStructured(cmd.OutOrStdout(), listFormat, entries)
	}

	if len(accounts) == 0 {
		logInfo("No accounts registered. Add one with: viberbox add <name>")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tSANDBOX")
	fmt.Fprintln(w, "-\t----\t-------")
	for i, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, a.Name, a.BoxID)
	}
	return w.Flush()
}
