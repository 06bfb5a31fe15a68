package main

import (
	"errors"
	"os"

	svgembed "github.com/alnah/go-svg-embed"
	"github.com/alnah/go-svg-embed/internal/config"
)

// Exit codes for the svg-embed CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitNetwork = 4 // Refresher network failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Network errors (exit 4)
	if errors.Is(err, svgembed.ErrFetchFailed) ||
		errors.Is(err, svgembed.ErrBadStatus) ||
		errors.Is(err, svgembed.ErrNoAssetsUpdated) {
		return ExitNetwork
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, svgembed.ErrReadSource) ||
		errors.Is(err, svgembed.ErrWriteOutput) ||
		errors.Is(err, svgembed.ErrSaveAsset) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidDuration) ||
		errors.Is(err, svgembed.ErrNoSource) ||
		errors.Is(err, svgembed.ErrNoOutput) ||
		errors.Is(err, svgembed.ErrNoAssetsDir) {
		return ExitUsage
	}

	return ExitGeneral
}
