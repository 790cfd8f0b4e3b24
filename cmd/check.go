package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/viberbox/internal/manager"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the account list with Sandboxie.ini",
	Long: `Reports accounts whose box section is missing from Sandboxie.ini
(drifted) and Viber_ sections that belong to no account (orphans).

With --repair, missing sections are recreated and Sandboxie is reloaded.
Orphans are never removed.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var (
	checkRepair bool
	checkFormat string
)

func init() {
	checkCmd.Flags().BoolVar(&checkRepair, "repair", false, "Recreate missing sections")
	checkCmd.Flags().StringVarP(&checkFormat, "output", "o", formatTable, "Output format: table, json or yaml")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := validateFormat(checkFormat); err != nil {
		return err
	}

	mgr, err := newManager(nil)
	if err != nil {
		return err
	}

	report, err := mgr.Check(cmd.Context(), checkRepair)
	if err != nil {
		return err
	}

	if checkFormat != formatTable {
		return writeStructured(cmd.OutOrStdout(), checkFormat, report)
	}

	for _, warn := range report.Warnings {
		logWarning("%s", warn)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sandboxie.ini: %s\n\n", report.ConfigPath)

	if len(report.Accounts) > 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tSANDBOX\tSTATUS")
		fmt.Fprintln(w, "-\t----\t-------\t------")
		for _, st := range report.Accounts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", st.Position, st.Account.Name, st.Account.BoxID, formatStatus(st.Status))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	for _, o := range report.Orphans {
		logWarning("Section [%s] has no account", o)
	}

	if n := report.Invalid(); n > 0 {
		logWarning("%d account(s) have an unusable sandbox name; edit or delete them in accounts.txt", n)
	}

	switch n := report.Drifted(); {
	case n > 0:
		logWarning("%d account(s) missing from Sandboxie.ini; run viberbox check --repair", n)
	case len(report.Orphans) == 0 && report.Invalid() == 0:
		logSuccess("Accounts and Sandboxie.ini agree")
	}
	return nil
}

func formatStatus(status manager.Status) string {
	switch status {
	case manager.StatusRegistered:
		return "✓ registered"
	case manager.StatusDrifted:
		return "⚠ drifted"
	case manager.StatusRepaired:
		return "✓ repaired"
	case manager.StatusInvalid:
		return "✗ invalid"
	default:
		return string(status)
	}
}
