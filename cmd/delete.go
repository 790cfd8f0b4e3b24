package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <position|name>",
	Aliases: []string{"rm"},
	Short:   "Remove an account and its sandbox",
	Long: `Removes the account from the registry and its box section from
Sandboxie.ini. Asks for confirmation unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	mgr, err := newManager(nil)
	if err != nil {
		return err
	}

	pos, err := resolvePosition(mgr, args[0])
	if err != nil {
		return err
	}
	acct, err := mgr.At(pos)
	if err != nil {
		return err
	}

	confirmed := deleteYes
	if !confirmed {
		confirmed, err = prompter(cmd).Confirm(fmt.Sprintf("Delete account %s and sandbox %s?", acct.Name, acct.BoxID))
		if err != nil {
			return err
		}
	}

	res, err := mgr.Delete(cmd.Context(), pos, confirmed)
	reportResult(res)
	if err != nil {
		return err
	}

	logSuccess("Deleted account %s", acct.Name)
	return nil
}
