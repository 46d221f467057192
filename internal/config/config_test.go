// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"UMBRA_LOG_FILE", "UMBRA_LOG_LEVEL", "UMBRA_CONTRACT"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// =============================================================================
// DEFAULT TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval())
	assert.InDelta(t, 2.22, cfg.Boot.ProgressStep, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.BootDelay())
	assert.Equal(t, 2*time.Second, cfg.ReplyDelay())
	assert.Nil(t, cfg.Session.Replies)
	assert.Equal(t, "918iW3U2qBwvUx4B8x4uDfUSxqboX7e85gUPWZq3pump", cfg.Contract.Address)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowPanels)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLogFile_Default(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join(os.TempDir(), DefaultLogFileName), cfg.LogFile())

	cfg.Log.File = "/var/log/umbra.log"
	assert.Equal(t, "/var/log/umbra.log", cfg.LogFile())
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath_Overrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[boot]
tick_interval_ms = 50
delay_ms = 1000

[session]
reply_delay_ms = 250
replies = ["one", "two"]

[ui]
show_panels = false

[log]
json = true
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, time.Second, cfg.BootDelay())
	assert.Equal(t, 250*time.Millisecond, cfg.ReplyDelay())
	assert.Equal(t, []string{"one", "two"}, cfg.Session.Replies)
	assert.False(t, cfg.UI.ShowPanels)
	assert.True(t, cfg.Log.JSON)

	// Unset keys keep their defaults.
	assert.InDelta(t, 2.22, cfg.Boot.ProgressStep, 1e-9)
	assert.Equal(t, DefaultContract, cfg.Contract.Address)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromPath_Invalid(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[boot]
tick_interval_ms = 0
progress_step = 150.0
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "boot.tick_interval_ms")
	assert.Contains(t, err.Error(), "boot.progress_step")
}

func TestLoadFromPath_BadSyntax(t *testing.T) {
	path := writeConfig(t, "[boot\ntick_interval_ms = ")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
}

func TestLoadFromPath_Missing(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_HomeConfig(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".umbra"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".umbra", "config.toml"),
		[]byte("[contract]\naddress = \"abc\"\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Contract.Address)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[ui]
theme = "light"
`)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowPanels)
	assert.Equal(t, 5000, cfg.Boot.DelayMs)
}

// =============================================================================
// ENV OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("UMBRA_LOG_FILE", "/tmp/custom.log")
	t.Setenv("UMBRA_LOG_LEVEL", "DEBUG")
	t.Setenv("UMBRA_CONTRACT", "override")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/tmp/custom.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "override", cfg.Contract.Address)
}

func TestLoadDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("UMBRA_CONTRACT", "")
	require.NoError(t, os.Unsetenv("UMBRA_CONTRACT"))
	t.Setenv("UMBRA_LOG_LEVEL", "warn")

	dir := filepath.Join(home, ".umbra")
	require.NoError(t, os.MkdirAll(dir, 0700))
	body := "UMBRA_CONTRACT=fromdotenv\nUMBRA_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(body), 0600))

	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "fromdotenv", os.Getenv("UMBRA_CONTRACT"))
	assert.Equal(t, "warn", os.Getenv("UMBRA_LOG_LEVEL"), "existing variables win")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, LoadDotEnv())
}

func TestApplyEnvOverrides_WinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("UMBRA_LOG_LEVEL", "warn")
	path := writeConfig(t, "[log]\nlevel = \"debug\"\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero tick", func(c *Config) { c.Boot.TickIntervalMs = 0 }, "boot.tick_interval_ms"},
		{"negative boot delay", func(c *Config) { c.Boot.DelayMs = -1 }, "boot.delay_ms"},
		{"zero step", func(c *Config) { c.Boot.ProgressStep = 0 }, "boot.progress_step"},
		{"step above 100", func(c *Config) { c.Boot.ProgressStep = 100.5 }, "boot.progress_step"},
		{"zero reply delay", func(c *Config) { c.Session.ReplyDelayMs = 0 }, "session.reply_delay_ms"},
		{"empty replies", func(c *Config) { c.Session.Replies = []string{} }, "session.replies"},
		{"blank reply", func(c *Config) { c.Session.Replies = []string{"ok", "  "} }, "session.replies[1]"},
		{"empty contract", func(c *Config) { c.Contract.Address = " " }, "contract.address"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidate_StepBoundary(t *testing.T) {
	cfg := Default()
	cfg.Boot.ProgressStep = 100
	assert.NoError(t, cfg.Validate())
}

func TestValidateErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())

	errs := ValidateErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	assert.Equal(t, "a: bad; b: worse", errs.Error())
}

// =============================================================================
// HELPER TESTS
// =============================================================================

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.Session.Replies = []string{"a"}

	clone := cfg.Clone()
	clone.Session.Replies[0] = "b"
	clone.Contract.Address = "changed"

	assert.Equal(t, "a", cfg.Session.Replies[0])
	assert.Equal(t, DefaultContract, cfg.Contract.Address)
}

func TestString_RoundTrips(t *testing.T) {
	cfg := Default()
	cfg.Session.Replies = []string{"hello"}

	parsed, err := Parse(cfg.String())
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
