// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jeranaias/umbra-terminal/internal/config"
	"github.com/jeranaias/umbra-terminal/internal/contract"
	"github.com/jeranaias/umbra-terminal/internal/logging"
	"github.com/jeranaias/umbra-terminal/internal/replies"
	"github.com/jeranaias/umbra-terminal/internal/session"
	"github.com/jeranaias/umbra-terminal/internal/tasks"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
	"github.com/jeranaias/umbra-terminal/internal/ui/terminal"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// loopBuffer is how many due tasks may wait for the event loop.
const loopBuffer = 16

// Run executes the command line and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	cmd, args, err := Parse(argv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, Usage())
		return ExitUsage
	}

	switch cmd {
	case CmdHelp:
		fmt.Fprint(stdout, Usage())
		return ExitOK
	case CmdVersion:
		fmt.Fprintln(stdout, VersionString())
		return ExitOK
	}

	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}

	if cmd == CmdConfig {
		fmt.Fprint(stdout, cfg.String())
		return ExitOK
	}

	log, closer, err := logging.OpenFile(cfg.LogFile(), logConfig(cfg))
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (diagnostics disabled)\n", err)
		log = logging.Discard()
	} else {
		defer closer.Close()
	}

	sess := session.New(sessionConfig(cfg))
	loop := tasks.NewLoopScheduler(loopBuffer)
	defer loop.Close()
	copier := contract.New(cfg.Contract.Address, contract.WithLogger(log))

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	log.Info("umbra starting",
		"version", Version,
		"session_id", sess.ID(),
		"plain", args.Plain,
		"tty", stdinTTY && stdoutTTY)

	if args.Plain || !stdinTTY || !stdoutTTY {
		err = runLineMode(sess, loop, stdout, log, !stdinTTY)
	} else {
		err = runTUI(terminal.Options{
			Session:    sess,
			Loop:       loop,
			Copier:     copier,
			Logger:     log,
			Theme:      styles.NewTheme(cfg.UI.Theme),
			ShowPanels: cfg.UI.ShowPanels,
		}, cfg.LogFile())
	}

	if err != nil {
		log.LogError(err, "umbra exited with error")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	log.Info("umbra stopped")
	return ExitOK
}

// loadConfig loads ~/.umbra/.env, then the config file named by --config or
// the default file, and applies command line overrides.
func loadConfig(args Args) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if args.LogPath != "" {
		cfg.Log.File = args.LogPath
	}
	if args.Verbose {
		cfg.Log.Level = logging.LevelDebug
	}
	return cfg, nil
}

func logConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
	}
}

func sessionConfig(cfg *config.Config) session.Config {
	sc := session.Config{
		TickInterval: cfg.TickInterval(),
		ProgressStep: cfg.Boot.ProgressStep,
		BootDelay:    cfg.BootDelay(),
		ReplyDelay:   cfg.ReplyDelay(),
	}
	if len(cfg.Session.Replies) > 0 {
		sc.Replies = replies.Clone(cfg.Session.Replies)
	}
	return sc
}

// runTUI runs the full-screen terminal until the user quits.
func runTUI(opts terminal.Options, logPath string) error {
	m, err := terminal.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	defer m.Close()

	if f, err := tea.LogToFile(logPath, "tea"); err == nil {
		defer f.Close()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run terminal: %w", err)
	}
	return nil
}

// runLineMode runs the session through a liner prompt.
func runLineMode(sess *session.Session, loop *tasks.LoopScheduler, out io.Writer, log *logging.Logger, echo bool) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	return RunPlain(PlainOptions{
		Session:   sess,
		Loop:      loop,
		Prompter:  line,
		Out:       out,
		Logger:    log,
		EchoInput: echo,
	})
}
