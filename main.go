package main

import (
	"os"

	"github.com/ambient-labs/vibectl/cmd"
	"github.com/ambient-labs/vibectl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
