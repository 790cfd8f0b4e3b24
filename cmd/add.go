package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register an account and create its sandbox",
	Long: `Registers a new Viber account and adds a matching box section to
Sandboxie.ini. Words are joined, so quoting is optional:

  viberbox add Work Phone`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	mgr, err := newManager(nil)
	if err != nil {
		return err
	}

	res, err := mgr.Add(cmd.Context(), strings.Join(args, " "))
	reportResult(res)
	if err != nil {
		return err
	}

	logSuccess("Added account %s (sandbox %s)", res.Account.Name, res.Account.BoxID)
	return nil
}
