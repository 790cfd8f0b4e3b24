package main

import (
	"os"

	"github.com/firefly-engineering/viberbox/cmd"
	"github.com/firefly-engineering/viberbox/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
