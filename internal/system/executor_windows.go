//go:build windows

package system

import (
	"context"
	"os/exec"
	"syscall"
)

// lineCommand hands line to the child untouched. cmd.exe applies its own
// quote rules, which the per-argument escaping of os/exec breaks.
func lineCommand(ctx context.Context, name, line string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, name)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: syscall.EscapeArg(name) + " " + line}
	return cmd, nil
}
