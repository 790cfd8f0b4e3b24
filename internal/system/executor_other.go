//go:build !windows

package system

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// lineCommand splits line with POSIX shell rules; only Windows can pass a
// command line through verbatim.
func lineCommand(ctx context.Context, name, line string) (*exec.Cmd, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("invalid command line %q: %w", line, err)
	}
	return exec.CommandContext(ctx, name, args...), nil
}
