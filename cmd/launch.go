package cmd

import (
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch <position|name>",
	Short: "Start Viber in an account's sandbox",
	Long: `Starts Viber inside the account's Sandboxie box and returns without
waiting for it. A box section missing from Sandboxie.ini is recreated
first. If Viber.exe cannot be found you are asked for its path once; the
answer is remembered in viber_path.txt.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	mgr, err := newManager(appPrompt(prompter(cmd)))
	if err != nil {
		return err
	}

	pos, err := resolvePosition(mgr, args[0])
	if err != nil {
		return err
	}

	res, err := mgr.Launch(cmd.Context(), pos)
	reportResult(res)
	if err != nil {
		return err
	}

	if len(res.Warnings) == 0 {
		logSuccess("Launched %s in sandbox %s", res.Account.Name, res.Account.BoxID)
	}
	return nil
}
