// Package errors provides typed errors with exit codes for viberbox.
//
// # Error Types
//
// BoxError is the base error type that wraps an error with an exit code
// and a Kind:
//
//	type BoxError struct {
//	    Code    int    // Exit code
//	    Kind    Kind   // Classification (duplicate-name, out-of-range, ...)
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitInvalidInput    = 2  // Empty, invalid or duplicate account name
//	ExitNotFound        = 3  // Selection, launcher or application not found
//	ExitConfigNotFound  = 4  // No Sandboxie.ini candidate exists
//	ExitExternalProcess = 5  // Launcher or reload invocation failed
//	ExitPersistence     = 6  // Account registry could not be written
//	ExitCancelled       = 7  // Operation was not confirmed
//
// # Error Constructors
//
//	errors.DuplicateName("work")
//	errors.OutOfRange(3, 2)
//	errors.ConfigFileNotFound(candidates)
//	errors.PersistenceFailure(err)
//
// # Inspecting Errors
//
//	if errors.IsKind(err, errors.KindDuplicateName) {
//	    // re-prompt
//	}
//	os.Exit(errors.GetExitCode(err))
package errors
