package errors

import (
	"errors"
	"fmt"
)

// Exit codes for vibectl. Creation and discovery failures carry distinct
// codes because they abort before any teardown is owed; later failures
// still route through teardown but keep their own codes.
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitCreateFailed      = 2
	ExitDiscoveryFailed   = 3
	ExitCredentialMissing = 4
	ExitProvisionFailed   = 5
	ExitSessionFailed     = 6
	ExitConfigError       = 7
)

// VibeError is the base error type for vibectl.
type VibeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *VibeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *VibeError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error.
func (e *VibeError) ExitCode() int {
	return e.Code
}

// New creates a new VibeError.
func New(code int, message string) *VibeError {
	return &VibeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a VibeError.
func Wrap(code int, message string, cause error) *VibeError {
	return &VibeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// CreateFailed returns an error for a failed sandbox create request.
func CreateFailed(cause error) *VibeError {
	return Wrap(ExitCreateFailed, "sandbox creation failed", cause)
}

// DiscoveryFailed returns an error when no matching sandbox was found.
func DiscoveryFailed(repo string) *VibeError {
	return New(ExitDiscoveryFailed, fmt.Sprintf("no sandbox found for %s", repo))
}

// CredentialMissing returns an error for an absent credential.
func CredentialMissing(key string) *VibeError {
	return New(ExitCredentialMissing, fmt.Sprintf("%s not set in .env or environment", key))
}

// ProvisionFailed returns an error for assistant provisioning failures.
func ProvisionFailed(op string, cause error) *VibeError {
	return Wrap(ExitProvisionFailed, fmt.Sprintf("provisioning %s failed", op), cause)
}

// SessionFailed returns an error for interactive session failures.
func SessionFailed(cause error) *VibeError {
	return Wrap(ExitSessionFailed, "session ended with error", cause)
}

// ConfigError returns an error for configuration issues.
func ConfigError(message string, cause error) *VibeError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures.
func ValidationError(message string) *VibeError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var vibeErr *VibeError
	if errors.As(err, &vibeErr) {
		return vibeErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
