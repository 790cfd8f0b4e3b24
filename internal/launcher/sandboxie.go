package launcher

import (
	"context"
	"time"

	"github.com/firefly-engineering/viberbox/internal/errors"
	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/system"
)

const (
	DefaultSwitchPrefix  = "/"
	DefaultReloadTimeout = 5 * time.Second
)

// Sandboxie drives Start.exe.
type Sandboxie struct {
	Exe           string
	Runner        Runner
	SwitchPrefix  string
	ReloadTimeout time.Duration
}

// NewSandboxie returns a launcher for exe with default switches.
func NewSandboxie(exe string, runner Runner) *Sandboxie {
	return &Sandboxie{
		Exe:           exe,
		Runner:        runner,
		SwitchPrefix:  DefaultSwitchPrefix,
		ReloadTimeout: DefaultReloadTimeout,
	}
}

func (s *Sandboxie) flag(name string) string {
	prefix := s.SwitchPrefix
	if prefix == "" {
		prefix = DefaultSwitchPrefix
	}
	return prefix + name
}

// ReloadArgs returns the Start.exe arguments for a config reload.
func (s *Sandboxie) ReloadArgs() []string {
	return []string{s.flag("reload")}
}

// BoxArgs returns the Start.exe arguments that run app inside box.
func (s *Sandboxie) BoxArgs(box, app string) []string {
	return []string{s.flag("box:" + box), app}
}

// Reload asks Sandboxie to re-read its configuration and waits for
// Start.exe to return, at most ReloadTimeout. A non-zero exit counts as
// success; only a failed spawn or a timeout is an error.
func (s *Sandboxie) Reload(ctx context.Context) error {
	timeout := s.ReloadTimeout
	if timeout <= 0 {
		timeout = DefaultReloadTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logging.Debug("reloading sandbox configuration", "exe", s.Exe, "timeout", timeout)
	err := s.Runner.Run(ctx, s.Exe, s.ReloadArgs()...)
	if err == nil {
		return nil
	}
	if ctx.Err() == context.DeadlineExceeded {
		logging.Debug("reload timed out", "timeout", timeout)
		return errors.ExternalProcessFailure("reload", err)
	}
	// Start.exe exit codes carry no reliable meaning for /reload.
	if code, exited := system.ExitStatus(err); exited {
		logging.Debug("reload exited non-zero", "code", code, "error", err)
		return nil
	}
	return errors.ExternalProcessFailure("reload", err)
}

// RunInBox starts app inside box and returns without waiting for it.
func (s *Sandboxie) RunInBox(ctx context.Context, box, app string) error {
	logging.Debug("starting in box", "exe", s.Exe, "box", box, "app", app)
	if err := s.Runner.Start(ctx, s.Exe, s.BoxArgs(box, app)...); err != nil {
		return errors.ExternalProcessFailure("launch", err)
	}
	return nil
}
