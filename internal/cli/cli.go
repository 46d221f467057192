// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "2.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Plain      bool   // Force line mode
	Verbose    bool   // Debug-level diagnostics
	ConfigPath string // --config PATH
	LogPath    string // --log PATH

	// Raw args (remaining after flag parsing)
	Raw []string
}

// UsageError reports bad command line input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

const usageText = `umbra - the UMBRA neural terminal

Usage:
  umbra [flags]              Start the terminal (default)
  umbra config               Print the effective configuration
  umbra version              Show version information
  umbra help                 Show this help

Flags:
  --plain                    Line mode, no full-screen UI
  --config PATH              Config file (default ~/.umbra/config.toml)
  --log PATH                 Diagnostic log file
  -v, --verbose              Debug-level diagnostics

Keys:
  enter                      Execute
  ctrl+y                     Copy contract address
  pgup / pgdown              Scroll transcript
  esc / ctrl+c               Quit

Environment (also read from ~/.umbra/.env):
  UMBRA_LOG_FILE             Overrides log.file
  UMBRA_LOG_LEVEL            Overrides log.level
  UMBRA_CONTRACT             Overrides contract.address
`

// Usage returns the help text.
func Usage() string {
	return usageText
}

// VersionString returns the version banner.
func VersionString() string {
	return fmt.Sprintf("umbra %s (commit %s, built %s, %s/%s, %s)",
		Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Parse parses command line arguments (without the program name).
func Parse(argv []string) (Command, Args, error) {
	remaining, parsed, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsed, err
	}

	if len(remaining) == 0 {
		return CmdTUI, parsed, nil
	}

	cmd := strings.ToLower(remaining[0])
	parsed.Raw = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, parsed, nil
	case "config":
		return CmdConfig, parsed, nil
	case "version", "--version":
		return CmdVersion, parsed, nil
	case "help", "-h", "--help":
		return CmdHelp, parsed, nil
	default:
		return CmdHelp, parsed, &UsageError{Msg: fmt.Sprintf("unknown command %q", remaining[0])}
	}
}

// parseGlobalFlags extracts flags from anywhere in args.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var remaining []string
	var parsed Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "--plain":
			parsed.Plain = true
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--config", "--log":
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return nil, parsed, &UsageError{Msg: arg + " requires a path"}
			}
			i++
			if arg == "--config" {
				parsed.ConfigPath = args[i]
			} else {
				parsed.LogPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsed.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--log="):
				parsed.LogPath = strings.TrimPrefix(arg, "--log=")
			case strings.HasPrefix(arg, "--") && arg != "--help" && arg != "--version":
				return nil, parsed, &UsageError{Msg: fmt.Sprintf("unknown flag %q", arg)}
			default:
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsed, nil
}
