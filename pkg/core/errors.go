package core

import "errors"

// Common errors.
var (
	// ErrFatalEnumeration signals that the source directory itself could not
	// be listed. This is the only failure that aborts a run with no output.
	ErrFatalEnumeration = errors.New("cannot enumerate source directory")

	// ErrValidationFailed is returned by strict-mode runs when error-severity
	// diagnostics were accumulated.
	ErrValidationFailed = errors.New("validation failed")
)
