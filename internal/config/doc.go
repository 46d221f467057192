// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and validation for umbra.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - BootConfig: progress tick and boot delay timing
//   - SessionConfig: reply delay and canned replies
//   - ContractConfig, UIConfig, LogConfig
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (UMBRA_*)
//   - --config PATH, or ~/.umbra/config.toml
//   - Built-in defaults
//
// The file is read-only input; umbra never writes it.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	delay := cfg.BootDelay()
package config
