// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/umbra-terminal/internal/logging"
	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/session"
	"github.com/jeranaias/umbra-terminal/internal/ui/components"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
	"github.com/jeranaias/umbra-terminal/internal/ui/terminal"
)

// =============================================================================
// LINE MODE
// =============================================================================

// PlainPrompt is shown when input is accepted.
const PlainPrompt = "> "

// plainBarWidth is the width of the line-mode progress bar.
const plainBarWidth = 30

// Prompter reads one line of input. *liner.State implements it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// PlainOptions configures RunPlain.
type PlainOptions struct {
	Session  *session.Session
	Loop     terminal.Loop
	Prompter Prompter
	Out      io.Writer
	Logger   *logging.Logger

	// EchoInput prints user lines, for input that the terminal does not echo.
	EchoInput bool
}

type lineResult struct {
	text string
	err  error
}

// RunPlain runs the session as a line-oriented terminal. Scheduled tasks and
// submitted lines are handled on the calling goroutine; a reader goroutine
// only blocks in Prompt. The prompt is shown after boot and never while a
// reply is pending. It returns nil on exit, quit or end of input.
func RunPlain(opts PlainOptions) error {
	if opts.Session == nil || opts.Loop == nil || opts.Prompter == nil {
		return errors.New("cli: session, loop and prompter are required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	sess := opts.Session
	log := opts.Logger.WithSession(sess.ID()).WithComponent("plain")

	fmt.Fprintln(opts.Out, components.Brand)
	fmt.Fprintln(opts.Out, components.BootSubtitle)

	printer := newPlainPrinter(opts.Out, opts.EchoInput)
	sess.Subscribe(printer.observe)
	if err := sess.Start(opts.Loop); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.Close()
	log.Info("session started")

	requests := make(chan struct{}, 1)
	lines := make(chan lineResult)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-requests:
			case <-done:
				return
			}
			text, err := opts.Prompter.Prompt(PlainPrompt)
			select {
			case lines <- lineResult{text: text, err: err}:
			case <-done:
				return
			}
		}
	}()

	asking := false
	for {
		if !asking && sess.BootComplete() && !sess.PendingReply() {
			requests <- struct{}{}
			asking = true
		}

		select {
		case task := <-opts.Loop.Fired():
			opts.Loop.Run(task)

		case <-opts.Loop.Done():
			return nil

		case res := <-lines:
			asking = false
			if res.err != nil {
				if errors.Is(res.err, io.EOF) || errors.Is(res.err, liner.ErrPromptAborted) {
					log.Info("input closed")
					return nil
				}
				return fmt.Errorf("failed to read input: %w", res.err)
			}

			cmd := strings.ToLower(strings.TrimSpace(res.text))
			if cmd == "exit" || cmd == "quit" {
				log.Info("user quit")
				return nil
			}

			if err := sess.Submit(res.text); err != nil {
				log.Debug("submission dropped", "reason", err.Error())
				continue
			}
			opts.Prompter.AppendHistory(res.text)
			log.Debug("query received", "length", len(res.text))
		}
	}
}

// =============================================================================
// EVENT PRINTER
// =============================================================================

// plainPrinter writes session events as lines.
type plainPrinter struct {
	out      io.Writer
	echo     bool
	lastStep int
	booted   bool
}

func newPlainPrinter(out io.Writer, echo bool) *plainPrinter {
	return &plainPrinter{out: out, echo: echo, lastStep: -1}
}

func (p *plainPrinter) observe(ev session.Event) {
	switch ev.Kind {
	case session.EventProgress:
		if p.booted {
			return
		}
		// One line per 10% so the log stays short.
		step := int(ev.Progress) / 10
		if step <= p.lastStep {
			return
		}
		p.lastStep = step
		fmt.Fprintf(p.out, "[%s] %s\n",
			styles.RenderProgressBar(plainBarWidth, ev.Progress),
			components.PercentLabel(ev.Progress))

	case session.EventBootComplete:
		p.booted = true
		fmt.Fprintln(p.out, styles.Rule(plainBarWidth+2))

	case session.EventMessage:
		if ev.Message.Kind == model.KindUser && !p.echo {
			return
		}
		fmt.Fprintln(p.out, ev.Message.String())

	case session.EventPending:
		if ev.Pending {
			fmt.Fprintln(p.out, model.KindUmbra.Tag()+" "+components.ThinkingLabel+"...")
		}
	}
}
