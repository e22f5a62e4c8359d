package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ambient-labs/vibectl/internal/audit"
	"github.com/ambient-labs/vibectl/internal/config"
	"github.com/ambient-labs/vibectl/internal/errors"
	"github.com/ambient-labs/vibectl/internal/logging"
)

// loadConfig loads configuration from the configured env file and the
// environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return nil, errors.ConfigError("loading configuration", err)
	}
	return cfg, nil
}

// newRunID returns a short unique identifier for one run. It tags the
// sandbox's display name and keys the audit log.
func newRunID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// auditLogger returns the run audit logger, or nil when no state
// directory is usable. Audit logging is best-effort.
func auditLogger() *audit.Logger {
	dir, err := os.UserCacheDir()
	if err != nil {
		logging.Debug("no cache directory for audit logs", "error", err)
		return nil
	}
	return audit.NewLogger(filepath.Join(dir, "vibectl"))
}
