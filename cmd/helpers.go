package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/viberbox/internal/app"
	"github.com/firefly-engineering/viberbox/internal/config"
	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/manager"
	"github.com/firefly-engineering/viberbox/internal/tui"
)

// paths returns the configured state paths.
func paths() *config.Paths {
	return app.Default.Paths
}

// newManager loads the registry. prompt is used when Viber.exe is missing.
func newManager(prompt manager.AppPrompt) (*manager.Manager, error) {
	return app.Default.Manager(prompt)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// prompter returns the Bubble Tea prompter on a terminal and the
// line-based one otherwise.
func prompter(cmd *cobra.Command) tui.Prompter {
	in := cmd.InOrStdin()
	if isTerminal(in) {
		return tui.NewInteractive()
	}
	return tui.NewPlain(in, cmd.OutOrStdout())
}

// appPrompt asks for the Viber.exe path when discovery fails.
func appPrompt(p tui.Prompter) manager.AppPrompt {
	return func(ctx context.Context) (string, error) {
		logWarning("Viber.exe was not found in the usual locations.")
		path, ok, err := p.Text("Full path to Viber.exe", `C:\Users\you\AppData\Local\Viber\Viber.exe`, nil)
		if err != nil {
			return "", err
		}
		if !ok || path == "" {
			return "", errors.AppNotFound("")
		}
		return path, nil
	}
}

// resolvePosition accepts a 1-based position or an account name.
func resolvePosition(mgr *manager.Manager, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}
	pos, ok := mgr.Position(arg)
	if !ok {
		return 0, errors.AccountNotFound(arg)
	}
	return pos, nil
}

// reportResult prints what an operation did beyond its main effect.
func reportResult(res *manager.Result) {
	if res == nil {
		return
	}
	if res.Healed {
		logInfo("Sandbox %s was missing from Sandboxie.ini and has been recreated", res.Account.BoxID)
	}
	for _, w := range res.Warnings {
		logWarning("%s", w)
	}
}

// Output formats accepted by -o.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return errors.New(errors.ExitInvalidInput, errors.KindGeneral, fmt.Sprintf("unknown output format %q (use table, json or yaml)", format))
}

// writeStructured renders v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}
