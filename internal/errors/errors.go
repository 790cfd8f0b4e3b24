package errors

import (
	"errors"
	"fmt"
)

// Exit codes for viberbox
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitInvalidInput    = 2
	ExitNotFound        = 3
	ExitConfigNotFound  = 4
	ExitExternalProcess = 5
	ExitPersistence     = 6
	ExitCancelled       = 7
)

// Kind classifies a BoxError so callers can branch without string matching.
type Kind string

const (
	KindGeneral                Kind = "general"
	KindEmptyName              Kind = "empty-name"
	KindInvalidName            Kind = "invalid-name"
	KindDuplicateName          Kind = "duplicate-name"
	KindOutOfRange             Kind = "out-of-range"
	KindAccountNotFound        Kind = "account-not-found"
	KindInvalidBox             Kind = "invalid-box"
	KindNotConfirmed           Kind = "not-confirmed"
	KindConfigFileNotFound     Kind = "config-file-not-found"
	KindLauncherNotFound       Kind = "launcher-not-found"
	KindAppNotFound            Kind = "app-not-found"
	KindExternalProcessFailure Kind = "external-process-failure"
	KindPersistenceFailure     Kind = "persistence-failure"
	KindSettings               Kind = "settings"
)

// BoxError is the base error type for viberbox
type BoxError struct {
	Code    int
	Kind    Kind
	Message string
	Cause   error
}

func (e *BoxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BoxError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *BoxError) ExitCode() int {
	return e.Code
}

// New creates a new BoxError
func New(code int, kind Kind, message string) *BoxError {
	return &BoxError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with a BoxError
func Wrap(code int, kind Kind, message string, cause error) *BoxError {
	return &BoxError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// EmptyName returns an error for a blank account name
func EmptyName() *BoxError {
	return New(ExitInvalidInput, KindEmptyName, "account name cannot be empty")
}

// InvalidName returns an error for an account name the registry cannot store
func InvalidName(name, reason string) *BoxError {
	return New(ExitInvalidInput, KindInvalidName, fmt.Sprintf("invalid account name %q: %s", name, reason))
}

// DuplicateName returns an error for an account name already in the registry
func DuplicateName(name string) *BoxError {
	return New(ExitInvalidInput, KindDuplicateName, fmt.Sprintf("an account with the name %q already exists", name))
}

// OutOfRange returns an error for an invalid selection
func OutOfRange(pos, count int) *BoxError {
	if count == 0 {
		return New(ExitNotFound, KindOutOfRange, "no accounts have been added yet")
	}
	return New(ExitNotFound, KindOutOfRange, fmt.Sprintf("invalid selection %d (choose 1-%d)", pos, count))
}

// AccountNotFound returns an error when no account has the given name
func AccountNotFound(name string) *BoxError {
	return New(ExitNotFound, KindAccountNotFound, fmt.Sprintf("no account named %q", name))
}

// InvalidBox returns an error for a registry record whose box name is not
// one this tool may touch
func InvalidBox(name, box string) *BoxError {
	return New(ExitInvalidInput, KindInvalidBox, fmt.Sprintf("account %q has unusable sandbox name %q; fix or delete it in accounts.txt", name, box))
}

// NotConfirmed returns an error when a destructive operation was not confirmed
func NotConfirmed(name string) *BoxError {
	return New(ExitCancelled, KindNotConfirmed, fmt.Sprintf("deletion of account %q cancelled", name))
}

// ConfigFileNotFound returns an error when no Sandboxie.ini candidate exists
func ConfigFileNotFound(tried []string) *BoxError {
	return New(ExitConfigNotFound, KindConfigFileNotFound, fmt.Sprintf("cannot find Sandboxie.ini (tried %d locations)", len(tried)))
}

// LauncherNotFound returns an error when the Sandboxie launcher cannot be located
func LauncherNotFound(tried []string) *BoxError {
	return New(ExitNotFound, KindLauncherNotFound, fmt.Sprintf("cannot find Sandboxie Start.exe (tried %d locations)", len(tried)))
}

// AppNotFound returns an error when the target application cannot be located
func AppNotFound(path string) *BoxError {
	if path == "" {
		return New(ExitNotFound, KindAppNotFound, "Viber is not installed or could not be found")
	}
	return New(ExitNotFound, KindAppNotFound, fmt.Sprintf("application not found: %s", path))
}

// ExternalProcessFailure returns an error for launcher or reload invocations
func ExternalProcessFailure(op string, cause error) *BoxError {
	return Wrap(ExitExternalProcess, KindExternalProcessFailure, fmt.Sprintf("%s failed", op), cause)
}

// PersistenceFailure returns an error for registry write failures
func PersistenceFailure(cause error) *BoxError {
	return Wrap(ExitPersistence, KindPersistenceFailure, "failed to save accounts", cause)
}

// SettingsError returns an error for settings file issues
func SettingsError(message string, cause error) *BoxError {
	return Wrap(ExitGeneralError, KindSettings, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var boxErr *BoxError
	if errors.As(err, &boxErr) {
		return boxErr.ExitCode()
	}
	return ExitGeneralError
}

// IsKind reports whether err's chain contains a BoxError of the given kind
func IsKind(err error, kind Kind) bool {
	var boxErr *BoxError
	if errors.As(err, &boxErr) {
		return boxErr.Kind == kind
	}
	return false
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors
func Join(errs ...error) error {
	return errors.Join(errs...)
}
