package cli

import (
	"errors"

	"github.com/AndrewKraevskii/screen-drawer/pkg/config"
	"github.com/AndrewKraevskii/screen-drawer/pkg/fsutil"
)

// Exit codes for drawfile.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitVerifyFailed indicates at least one session file failed to verify.
	ExitVerifyFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrVerifyFailed):
		return ExitVerifyFailed
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
