package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/viberbox/internal/app"
	"github.com/firefly-engineering/viberbox/internal/config"
	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	stateDir   string
)

// appOptions are applied after paths and settings; tests inject fakes here.
var appOptions []app.Option

var rootCmd = &cobra.Command{
	Use:   "viberbox",
	Short: "Run several Viber accounts side by side in Sandboxie",
	Long: `viberbox keeps a list of Viber accounts and gives each one its own
Sandboxie box, so every account runs as a separate, isolated Viber.

Run without a command to open the interactive menu. Each account gets a
[Viber_<name>] section in Sandboxie.ini; a section removed behind the
tool's back is recreated the next time the account is launched.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE:          runMenu,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())

		paths := config.DefaultPaths()
		if stateDir != "" {
			dir, err := homedir.Expand(stateDir)
			if err != nil {
				return errors.SettingsError("invalid --state-dir", err)
			}
			paths = config.NewPaths(dir)
		}

		settings, err := config.LoadSettings(paths.SettingsFile)
		if err != nil {
			return errors.SettingsError("failed to load "+paths.SettingsFile, err)
		}

		if settings.LogFile != "" {
			logging.SetupWithFile(verbose, jsonOutput, cmd.ErrOrStderr(), logging.FileOptions{Path: settings.LogFile})
		}
		logging.Debug("loaded settings", "state_dir", paths.StateDir, "box_prefix", settings.BoxPrefix)

		opts := append([]app.Option{app.WithPaths(paths), app.WithSettings(settings)}, appOptions...)
		app.SetDefault(app.New(opts...))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

// Execute runs the root command. Ctrl+C cancels the running operation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "", "Directory holding accounts.txt and config.toml (default $"+config.StateDirEnv+" or the user config dir)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
