// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultContract is the identifier copied by the copy-contract action.
const DefaultContract = "918iW3U2qBwvUx4B8x4uDfUSxqboX7e85gUPWZq3pump"

// DefaultLogFileName is created in the OS temp dir when no log file is set.
const DefaultLogFileName = "umbra-debug.log"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete umbra configuration.
type Config struct {
	// Boot sequence timing
	Boot BootConfig `toml:"boot"`

	// Terminal session behavior
	Session SessionConfig `toml:"session"`

	// Copy-contract action
	Contract ContractConfig `toml:"contract"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Diagnostic log
	Log LogConfig `toml:"log"`
}

// BootConfig contains boot sequencer timing.
type BootConfig struct {
	// TickIntervalMs is how often progress advances
	TickIntervalMs int `toml:"tick_interval_ms"`
	// ProgressStep is added on every tick, in percent
	ProgressStep float64 `toml:"progress_step"`
	// DelayMs is when the terminal screen takes over
	DelayMs int `toml:"delay_ms"`
}

// SessionConfig contains terminal session settings.
type SessionConfig struct {
	// ReplyDelayMs is how long a simulated reply takes
	ReplyDelayMs int `toml:"reply_delay_ms"`
	// Replies replaces the canned reply list when set
	Replies []string `toml:"replies"`
}

// ContractConfig contains the copy-contract settings.
type ContractConfig struct {
	// Address is copied to the clipboard
	Address string `toml:"address"`
}

// UIConfig contains UI preferences.
type UIConfig struct {
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme"`
	// ShowPanels shows the side panels when the terminal is wide enough
	ShowPanels bool `toml:"show_panels"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// File is the log path (empty = <tmp>/umbra-debug.log)
	File string `toml:"file"`
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
	// JSON switches to JSON lines output
	JSON bool `toml:"json"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Boot: BootConfig{
			TickIntervalMs: 100,
			ProgressStep:   2.22,
			DelayMs:        5000,
		},
		Session: SessionConfig{
			ReplyDelayMs: 2000,
		},
		Contract: ContractConfig{
			Address: DefaultContract,
		},
		UI: UIConfig{
			Theme:      "auto",
			ShowPanels: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// TickInterval returns the progress tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Boot.TickIntervalMs) * time.Millisecond
}

// BootDelay returns the delay before the terminal screen takes over.
func (c *Config) BootDelay() time.Duration {
	return time.Duration(c.Boot.DelayMs) * time.Millisecond
}

// ReplyDelay returns the simulated reply latency.
func (c *Config) ReplyDelay() time.Duration {
	return time.Duration(c.Session.ReplyDelayMs) * time.Millisecond
}

// LogFile returns the diagnostic log path.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(os.TempDir(), DefaultLogFileName)
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the umbra configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".umbra"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads ~/.umbra/config.toml if it exists and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file into cfg and fills in missing values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg, md)
	return nil
}

// Parse decodes TOML text into a config with defaults filled in. No
// environment overrides or validation are applied.
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}
	fillDefaults(cfg, md)
	return cfg, nil
}

// fillDefaults fills in any values the file did not set.
func fillDefaults(cfg *Config, md toml.MetaData) {
	defaults := Default()

	// Boot
	if !md.IsDefined("boot", "tick_interval_ms") {
		cfg.Boot.TickIntervalMs = defaults.Boot.TickIntervalMs
	}
	if !md.IsDefined("boot", "progress_step") {
		cfg.Boot.ProgressStep = defaults.Boot.ProgressStep
	}
	if !md.IsDefined("boot", "delay_ms") {
		cfg.Boot.DelayMs = defaults.Boot.DelayMs
	}

	// Session
	if !md.IsDefined("session", "reply_delay_ms") {
		cfg.Session.ReplyDelayMs = defaults.Session.ReplyDelayMs
	}

	// Contract
	if !md.IsDefined("contract", "address") {
		cfg.Contract.Address = defaults.Contract.Address
	}

	// UI
	if !md.IsDefined("ui", "theme") {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if !md.IsDefined("ui", "show_panels") {
		cfg.UI.ShowPanels = defaults.UI.ShowPanels
	}

	// Log
	if !md.IsDefined("log", "level") {
		cfg.Log.Level = defaults.Log.Level
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Boot
	if c.Boot.TickIntervalMs <= 0 {
		errs = append(errs, ValidationError{
			Field:   "boot.tick_interval_ms",
			Message: fmt.Sprintf("must be positive, got %d", c.Boot.TickIntervalMs),
		})
	}
	if c.Boot.ProgressStep <= 0 || c.Boot.ProgressStep > 100 {
		errs = append(errs, ValidationError{
			Field:   "boot.progress_step",
			Message: fmt.Sprintf("must be in (0, 100], got %g", c.Boot.ProgressStep),
		})
	}
	if c.Boot.DelayMs <= 0 {
		errs = append(errs, ValidationError{
			Field:   "boot.delay_ms",
			Message: fmt.Sprintf("must be positive, got %d", c.Boot.DelayMs),
		})
	}

	// Session
	if c.Session.ReplyDelayMs <= 0 {
		errs = append(errs, ValidationError{
			Field:   "session.reply_delay_ms",
			Message: fmt.Sprintf("must be positive, got %d", c.Session.ReplyDelayMs),
		})
	}
	if c.Session.Replies != nil {
		if len(c.Session.Replies) == 0 {
			errs = append(errs, ValidationError{
				Field:   "session.replies",
				Message: "must not be empty when set",
			})
		}
		for i, r := range c.Session.Replies {
			if strings.TrimSpace(r) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("session.replies[%d]", i),
					Message: "must not be blank",
				})
			}
		}
	}

	// Contract
	if strings.TrimSpace(c.Contract.Address) == "" {
		errs = append(errs, ValidationError{
			Field:   "contract.address",
			Message: "must not be empty",
		})
	}

	// UI
	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	// Log
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	var ve ValidateErrors
	return errors.As(err, &ve)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// LoadDotEnv loads variables from ~/.umbra/.env when the file exists.
// Variables already present in the environment are not replaced.
func LoadDotEnv() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - UMBRA_LOG_FILE: overrides log.file
//   - UMBRA_LOG_LEVEL: overrides log.level
//   - UMBRA_CONTRACT: overrides contract.address
func (c *Config) ApplyEnvOverrides() {
	if file := os.Getenv("UMBRA_LOG_FILE"); file != "" {
		c.Log.File = file
	}

	if level := os.Getenv("UMBRA_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}

	if addr := os.Getenv("UMBRA_CONTRACT"); addr != "" {
		c.Contract.Address = addr
	}
}

// =============================================================================
// HELPERS
// =============================================================================

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Session.Replies != nil {
		clone.Session.Replies = make([]string, len(c.Session.Replies))
		copy(clone.Session.Replies, c.Session.Replies)
	}
	return &clone
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
