// Package config loads vibectl configuration from a local .env file and
// the process environment. Environment variables take precedence over the
// file; built-in defaults fill the rest.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

// CredentialKey is the environment key holding the coding-assistant API key.
const CredentialKey = "ANTHROPIC_API_KEY"

// Built-in defaults. Branch and machine are the last known-good values for
// the default repository.
const (
	DefaultRepo    = "ambient-labs/vibe-coding-test"
	DefaultBranch  = "main"
	DefaultMachine = "basicLinux32gb"
	DefaultGHBin   = "gh"

	DefaultIdleTimeout     = 5 * time.Minute
	DefaultRetentionPeriod = time.Hour
	DefaultSettleDelay     = 5 * time.Second
	DefaultPollInterval    = 5 * time.Second
	DefaultPollAttempts    = 60
)

// repoRegex validates "owner/name"-shaped repository identifiers.
var repoRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*/[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Config holds all configuration for a vibectl run.
type Config struct {
	// Credential is the assistant API key. Empty means absent; this is
	// fatal only once the provisioning stage is reached.
	Credential string

	// Default sandbox request values, applied when positionals are omitted.
	Repo    string
	Branch  string
	Machine string

	// Create-request lifetime hints forwarded to the control plane.
	IdleTimeout     time.Duration
	RetentionPeriod time.Duration

	// SettleDelay is how long to wait after create before discovery.
	SettleDelay time.Duration

	// Readiness poll budget.
	PollInterval time.Duration
	PollAttempts int

	// GHBin is the control-plane CLI binary.
	GHBin string
}

// Load reads configuration from ./.env (when present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom reads configuration from the given env-format file (when
// present) and the environment. Environment variables win over the file.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("VIBECTL_REPO", DefaultRepo)
	v.SetDefault("VIBECTL_BRANCH", DefaultBranch)
	v.SetDefault("VIBECTL_MACHINE", DefaultMachine)
	v.SetDefault("VIBECTL_IDLE_TIMEOUT", DefaultIdleTimeout)
	v.SetDefault("VIBECTL_RETENTION_PERIOD", DefaultRetentionPeriod)
	v.SetDefault("VIBECTL_SETTLE_DELAY", DefaultSettleDelay)
	v.SetDefault("VIBECTL_POLL_INTERVAL", DefaultPollInterval)
	v.SetDefault("VIBECTL_POLL_ATTEMPTS", DefaultPollAttempts)
	v.SetDefault("VIBECTL_GH_BIN", DefaultGHBin)

	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Credential:      v.GetString(CredentialKey),
		Repo:            v.GetString("VIBECTL_REPO"),
		Branch:          v.GetString("VIBECTL_BRANCH"),
		Machine:         v.GetString("VIBECTL_MACHINE"),
		IdleTimeout:     v.GetDuration("VIBECTL_IDLE_TIMEOUT"),
		RetentionPeriod: v.GetDuration("VIBECTL_RETENTION_PERIOD"),
		SettleDelay:     v.GetDuration("VIBECTL_SETTLE_DELAY"),
		PollInterval:    v.GetDuration("VIBECTL_POLL_INTERVAL"),
		PollAttempts:    v.GetInt("VIBECTL_POLL_ATTEMPTS"),
		GHBin:           v.GetString("VIBECTL_GH_BIN"),
	}

	if cfg.PollAttempts < 1 {
		return nil, fmt.Errorf("VIBECTL_POLL_ATTEMPTS must be at least 1 (got %d)", cfg.PollAttempts)
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("VIBECTL_POLL_INTERVAL must be positive (got %s)", cfg.PollInterval)
	}

	return cfg, nil
}

// HasCredential reports whether the assistant API key is configured.
func (c *Config) HasCredential() bool {
	return c.Credential != ""
}

// ValidateRepo checks that a repository identifier is "owner/name"-shaped.
func ValidateRepo(repo string) error {
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	if !repoRegex.MatchString(repo) {
		return fmt.Errorf("invalid repository %q: must be owner/name", repo)
	}
	return nil
}
