package lint

import "errors"

var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the file could not be parsed.
	ErrParseFailure = errors.New("parse failure")

	// ErrNotJava indicates the file content is not Java source.
	ErrNotJava = errors.New("not a java source file")

	// ErrContractViolation indicates a rule met a tree it cannot handle.
	// It is an internal error, never a finding about the linted code.
	ErrContractViolation = errors.New("contract violation")
)

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrParseFailure) ||
		errors.Is(err, ErrContractViolation)
}
