package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/manager"
	"github.com/firefly-engineering/viberbox/internal/tui"
)

// runMenu is the default action: a loop over the main menu until Exit.
// Errors from an operation are printed and the menu is shown again.
func runMenu(cmd *cobra.Command, args []string) error {
	p := prompter(cmd)
	mgr, err := newManager(appPrompt(p))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for {
		if ctx.Err() != nil {
			return nil
		}

		choice, err := p.Menu(mgr.Count())
		if err != nil {
			return err
		}
		logging.Debug("menu choice", "choice", choice)

		switch choice {
		case tui.ChoiceAdd:
			err = menuAdd(ctx, p, mgr)
		case tui.ChoiceList:
			fmt.Fprint(cmd.OutOrStdout(), tui.SimpleList(mgr.List()))
		case tui.ChoiceLaunch:
			err = menuLaunch(ctx, p, mgr)
		case tui.ChoiceDelete:
			err = menuDelete(ctx, p, mgr)
		case tui.ChoiceExit:
			return nil
		default:
			logWarning("Invalid choice, pick 1-5")
		}

		if err != nil {
			logError("%v", err)
		}
	}
}

func menuAdd(ctx context.Context, p tui.Prompter, mgr *manager.Manager) error {
	name, ok, err := p.Text("Account name", "e.g. Work", nil)
	if err != nil || !ok {
		return err
	}

	res, err := mgr.Add(ctx, name)
	reportResult(res)
	if err != nil {
		return err
	}
	logSuccess("Added account %s (sandbox %s)", res.Account.Name, res.Account.BoxID)
	return nil
}

func menuLaunch(ctx context.Context, p tui.Prompter, mgr *manager.Manager) error {
	if mgr.Count() == 0 {
		return errors.OutOfRange(0, 0)
	}
	pick, err := p.PickAccount("Launch which account?", mgr.List())
	if err != nil || pick.Cancelled() {
		return err
	}

	res, err := mgr.Launch(ctx, pick.Position)
	reportResult(res)
	if err != nil {
		return err
	}
	if len(res.Warnings) == 0 {
		logSuccess("Launched %s", res.Account.Name)
	}
	return nil
}

func menuDelete(ctx context.Context, p tui.Prompter, mgr *manager.Manager) error {
	if mgr.Count() == 0 {
		return errors.OutOfRange(0, 0)
	}
	pick, err := p.PickAccount("Delete which account?", mgr.List())
	if err != nil || pick.Cancelled() {
		return err
	}
	acct, err := mgr.At(pick.Position)
	if err != nil {
		return err
	}

	confirmed, err := p.Confirm(fmt.Sprintf("Delete account %s and sandbox %s?", acct.Name, acct.BoxID))
	if err != nil {
		return err
	}

	res, err := mgr.Delete(ctx, pick.Position, confirmed)
	if errors.IsKind(err, errors.KindNotConfirmed) {
		logInfo("Cancelled")
		return nil
	}
	reportResult(res)
	if err != nil {
		return err
	}
	logSuccess("Deleted account %s", acct.Name)
	return nil
}
