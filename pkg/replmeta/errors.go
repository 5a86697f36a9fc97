package replmeta

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := auditor.Run(ctx, packageDir)
//	if errors.Is(err, replmeta.ErrPackageNotFound) {
//	    // Handle missing package directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRule indicates a malformed include/exclude rule entry.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrPackageNotFound indicates the content package directory does not exist.
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidDocView indicates a DocView XML file could not be parsed.
	ErrInvalidDocView = errors.New("invalid docview xml")

	// ErrNotDocView indicates an XML file is not a DocView serialization.
	ErrNotDocView = errors.New("not a docview file")

	// ErrValidationFailed indicates the audit produced blocking findings.
	ErrValidationFailed = errors.New("validation failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrInvalidRule):
		return ExitConfigError
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrPackageNotFound):
		return ExitPackageNotFound
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "required flag", "invalid argument"} {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
