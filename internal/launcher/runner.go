package launcher

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/viberbox/internal/logging"
	"github.com/firefly-engineering/viberbox/internal/system"
)

// Runner executes external programs.
type Runner interface {
	// Name identifies the strategy in logs.
	Name() string

	// Run executes the program and waits for it to exit.
	Run(ctx context.Context, name string, args ...string) error

	// Start launches the program without waiting for it.
	Start(ctx context.Context, name string, args ...string) error
}

// Direct invokes the program binary itself.
type Direct struct {
	exec system.CommandExecutor
}

// NewDirect returns a Direct runner. A nil executor uses the OS.
func NewDirect(exec system.CommandExecutor) *Direct {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Direct{exec: exec}
}

func (d *Direct) Name() string { return "direct" }

func (d *Direct) Run(ctx context.Context, name string, args ...string) error {
	out, err := d.exec.Execute(ctx, name, args...)
	if err != nil {
		return commandError(name, err, out)
	}
	return nil
}

func (d *Direct) Start(ctx context.Context, name string, args ...string) error {
	return d.exec.Start(ctx, name, args...)
}

// Shell hands the command line to the platform shell: cmd.exe /c on
// Windows, sh -c elsewhere.
type Shell struct {
	exec system.CommandExecutor
	goos string
}

// NewShell returns a Shell runner for the current platform. A nil executor
// uses the OS.
func NewShell(exec system.CommandExecutor) *Shell {
	return NewShellFor(exec, runtime.GOOS)
}

// NewShellFor returns a Shell runner that builds command lines for goos.
func NewShellFor(exec system.CommandExecutor, goos string) *Shell {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Shell{exec: exec, goos: goos}
}

func (s *Shell) Name() string { return "shell" }

// Command returns the shell and the argument line that runs name with args.
//
// On Windows the whole command goes inside one extra pair of quotes, as in
// cmd.exe /c ""C:\Program Files\x.exe" "arg"". cmd.exe strips the first and
// last quote of what follows /c, so without the outer pair a quoted program
// path loses its opening quote.
func (s *Shell) Command(name string, args ...string) (string, string) {
	argv := append([]string{name}, args...)
	if s.goos == "windows" {
		parts := make([]string, len(argv))
		for i, a := range argv {
			parts[i] = cmdQuote(a)
		}
		return "cmd.exe", `/c "` + strings.Join(parts, " ") + `"`
	}
	return "sh", shellquote.Join("-c", shellquote.Join(argv...))
}

func (s *Shell) Run(ctx context.Context, name string, args ...string) error {
	shell, line := s.Command(name, args...)
	out, err := s.exec.ExecuteLine(ctx, shell, line)
	if err != nil {
		return commandError(shell, err, out)
	}
	return nil
}

func (s *Shell) Start(ctx context.Context, name string, args ...string) error {
	shell, line := s.Command(name, args...)
	return s.exec.StartLine(ctx, shell, line)
}

// cmdQuote wraps s in double quotes when cmd.exe would split or interpret it.
func cmdQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t&()[]{}^=;!'+,`~|<>%") {
		return s
	}
	return `"` + s + `"`
}

// Fallback tries each runner in order and stops at the first success.
type Fallback struct {
	runners []Runner
}

// NewFallback returns a Fallback over runners.
func NewFallback(runners ...Runner) *Fallback {
	return &Fallback{runners: runners}
}

// Default is the direct-then-shell policy over exec.
func Default(exec system.CommandExecutor) *Fallback {
	return NewFallback(NewDirect(exec), NewShell(exec))
}

func (f *Fallback) Name() string {
	names := make([]string, len(f.runners))
	for i, r := range f.runners {
		names[i] = r.Name()
	}
	return strings.Join(names, "+")
}

func (f *Fallback) Run(ctx context.Context, name string, args ...string) error {
	return f.try(ctx, "run", name, func(r Runner) error { return r.Run(ctx, name, args...) })
}

func (f *Fallback) Start(ctx context.Context, name string, args ...string) error {
	return f.try(ctx, "start", name, func(r Runner) error { return r.Start(ctx, name, args...) })
}

func (f *Fallback) try(ctx context.Context, verb, name string, fn func(Runner) error) error {
	if len(f.runners) == 0 {
		return fmt.Errorf("no runners configured for %s", name)
	}

	var errs []error
	for _, r := range f.runners {
		err := fn(r)
		if err == nil {
			return nil
		}
		logging.Debug("runner failed", "runner", r.Name(), "verb", verb, "program", name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", r.Name(), err))
		// The program ran; running it again through another runner would
		// repeat its effects.
		if _, exited := system.ExitStatus(err); exited || ctx.Err() != nil {
			break
		}
	}
	return errors.Join(errs...)
}

func commandError(name string, err error, out []byte) error {
	if msg := strings.TrimSpace(string(out)); msg != "" {
		return fmt.Errorf("%s: %w: %s", name, err, msg)
	}
	return fmt.Errorf("%s: %w", name, err)
}
