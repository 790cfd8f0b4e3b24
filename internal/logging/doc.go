// Package logging provides logging utilities for viberbox.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("adding account", "name", name, "box", boxID)
//	logging.Warn("reload failed", "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Launching Viber for account: %s...", name)
//	logging.UserSuccess("Account %q added successfully", name)
//	logging.UserWarning("Sandbox %s not found in configuration", boxID)
//	logging.UserError("Error deleting account: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
//
// # Log File
//
// SetupWithFile additionally writes every record to a rotating file
// (gopkg.in/natefinch/lumberjack.v2), always at debug level.
package logging
