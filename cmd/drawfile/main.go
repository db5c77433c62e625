// Package main is the entry point for the drawfile CLI.
package main

import (
	"errors"
	"os"

	"github.com/AndrewKraevskii/screen-drawer/internal/cli"
	"github.com/AndrewKraevskii/screen-drawer/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrVerifyFailed - the verify command already printed
		// per-file results; the error only carries the exit code.
		if !errors.Is(err, cli.ErrVerifyFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
