package system

import (
	"context"
	"errors"
	"os/exec"
)

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// Start detaches from the child. The context only guards the spawn itself;
// cancelling it later does not kill the process.
func (e *osExecutor) Start(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return detach(exec.Command(name, args...))
}

func (e *osExecutor) ExecuteLine(ctx context.Context, name, line string) ([]byte, error) {
	cmd, err := lineCommand(ctx, name, line)
	if err != nil {
		return nil, err
	}
	return cmd.CombinedOutput()
}

func (e *osExecutor) StartLine(ctx context.Context, name, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd, err := lineCommand(context.Background(), name, line)
	if err != nil {
		return err
	}
	return detach(cmd)
}

func detach(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// ExitStatus returns the exit code when err means the program ran and
// exited non-zero, as opposed to failing to start or being killed by a
// deadline.
func ExitStatus(err error) (int, bool) {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), ee.ExitCode() > 0
	}
	var se *ExitStatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
