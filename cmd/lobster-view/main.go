package main

import (
	"os"

	"github.com/cristianoliveira/lobster-view/cmd"
	"github.com/cristianoliveira/lobster-view/internal/errors"
	"github.com/cristianoliveira/lobster-view/internal/logging"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to the exit status.
// The post-run hook does not fire on failure, so the log is closed here.
func run() int {
	if err := cmd.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		errors.NewDefaultCLIHandler().Error(err.Error())
		_ = logging.ShutdownGlobal()
		return 1
	}
	return 0
}
