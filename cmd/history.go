package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/viberbox/internal/app"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent account events",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var (
	historyAccount string
	historyLimit   int
	historyJSON    bool
)

func init() {
	historyCmd.Flags().StringVarP(&historyAccount, "account", "a", "", "Only events for this account")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of events to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json-lines", false, "Output events as JSON lines")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	events, err := app.Default.Audit().Tail(historyAccount, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(events) == 0 {
		if historyAccount != "" {
			logInfo("No events found for account %s", historyAccount)
		} else {
			logInfo("No events recorded yet")
		}
		return nil
	}

	out := cmd.OutOrStdout()
	for _, e := range events {
		if historyJSON {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Fprintln(out, string(data))
			continue
		}

		ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
		if e.Details != "" {
			fmt.Fprintf(out, "[%s] %-8s %s (%s)\n", ts, e.Type, e.Account, e.Details)
		} else {
			fmt.Fprintf(out, "[%s] %-8s %s\n", ts, e.Type, e.Account)
		}
	}

	return nil
}
