// Package logging provides logging utilities for vibectl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("creating sandbox", "repo", repo, "machine", machine)
//	logging.Warn("readiness poll exhausted", "attempts", attempts)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Creating sandbox for %s...", repo)
//	logging.UserSuccess("Sandbox %s deleted", handle)
//	logging.UserWarning("Credential verification failed, continuing")
//	logging.UserError("Failed to find sandbox: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// Never pass the credential value to either category of output.
package logging
