// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/replies"
	"github.com/jeranaias/umbra-terminal/internal/tasks"
)

// Seeded transcript lines shown when boot completes.
const (
	BootLineVersion = "UMBRA OS v2.1.0 - Initializing..."
	BootLineNeural  = "Neural pathways established. Language model online."
	BootLineWelcome = "Welcome to UMBRA. I am your AI companion. How may I assist you today?"
)

// MaxProgress is the value at which boot progress saturates.
const MaxProgress = 100.0

// Task descriptions used on the scheduler.
const (
	TaskProgress = "progress"
	TaskBoot     = "boot"
	TaskReply    = "reply"
)

// Submission rejections. The UI treats all of them as no-ops.
var (
	ErrEmptyInput   = errors.New("input is empty")
	ErrReplyPending = errors.New("a reply is already pending")
	ErrNotBooted    = errors.New("boot sequence has not completed")
	ErrClosed       = errors.New("session is closed")
)

// Lifecycle errors.
var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrNoScheduler    = errors.New("session requires a scheduler")
)

// =============================================================================
// CONFIG
// =============================================================================

// Config holds the timing and content of a session.
type Config struct {
	// TickInterval is how often boot progress advances (default: 100ms)
	TickInterval time.Duration

	// ProgressStep is added to progress on each tick (default: 2.22)
	ProgressStep float64

	// BootDelay is when the terminal screen takes over (default: 5s)
	BootDelay time.Duration

	// ReplyDelay is how long a simulated reply takes (default: 2s)
	ReplyDelay time.Duration

	// Replies is the canned reply list (default: replies.Default)
	Replies []string

	// Source picks reply indexes (default: time-seeded PCG)
	Source replies.Source
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
		ProgressStep: 2.22,
		BootDelay:    5 * time.Second,
		ReplyDelay:   2 * time.Second,
		Replies:      replies.Clone(replies.Default),
	}
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
	if c.ProgressStep <= 0 {
		c.ProgressStep = def.ProgressStep
	}
	if c.BootDelay <= 0 {
		c.BootDelay = def.BootDelay
	}
	if c.ReplyDelay <= 0 {
		c.ReplyDelay = def.ReplyDelay
	}
	if len(c.Replies) == 0 {
		c.Replies = def.Replies
	}
	if c.Source == nil {
		c.Source = replies.NewSource()
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the boot sequencer and terminal session for one mount of the UI.
type Session struct {
	mu sync.Mutex

	id        string
	cfg       Config
	sched     tasks.Scheduler
	startedAt time.Time

	transcript   *model.Transcript
	progress     float64
	bootComplete bool
	pendingReply bool
	input        string

	started bool
	closed  bool

	progressTask *tasks.Task
	bootTask     *tasks.Task
	replyTask    *tasks.Task

	observers map[int]func(Event)
	nextObs   int
}

// New creates a session. Zero or missing config values take their defaults.
func New(cfg Config) *Session {
	cfg.fillDefaults()
	return &Session{
		id:         uuid.NewString(),
		cfg:        cfg,
		transcript: model.NewTranscript(),
		observers:  make(map[int]func(Event)),
	}
}

// Start arms the progress ticker and the boot timer on sched.
func (s *Session) Start(sched tasks.Scheduler) error {
	if sched == nil {
		return ErrNoScheduler
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return ErrClosed
	case s.started:
		return ErrAlreadyStarted
	}

	s.started = true
	s.sched = sched
	s.startedAt = sched.Now()
	s.progressTask = sched.Every(TaskProgress, s.cfg.TickInterval, s.Tick)
	s.bootTask = sched.After(TaskBoot, s.cfg.BootDelay, func() { s.CompleteBoot() })
	return nil
}

// Close cancels every outstanding task and drops all subscribers. Scheduled
// callbacks that still arrive after Close are ignored. Close returns the
// number of tasks it canceled.
func (s *Session) Close() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.closed = true

	n := 0
	for _, t := range []*tasks.Task{s.progressTask, s.bootTask, s.replyTask} {
		if t != nil && t.Cancel() {
			n++
		}
	}
	s.observers = make(map[int]func(Event))
	return n
}

// =============================================================================
// BOOT SEQUENCER
// =============================================================================

// Tick advances boot progress by one step, saturating at MaxProgress. The
// progress task is canceled once the maximum is reached.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.closed || s.progress >= MaxProgress {
		s.mu.Unlock()
		return
	}

	s.progress += s.cfg.ProgressStep
	if s.progress >= MaxProgress {
		s.progress = MaxProgress
		if s.progressTask != nil {
			s.progressTask.Cancel()
		}
	}
	ev := Event{Kind: EventProgress, Progress: s.progress}
	s.mu.Unlock()

	s.emit(ev)
}

// CompleteBoot switches to terminal mode and seeds the welcome lines. It
// reports whether the transition happened; later calls are no-ops.
func (s *Session) CompleteBoot() bool {
	s.mu.Lock()
	if s.closed || s.bootComplete {
		s.mu.Unlock()
		return false
	}

	s.bootComplete = true
	now := s.now()
	events := []Event{{Kind: EventBootComplete, Progress: s.progress}}
	for _, seed := range []struct {
		kind    model.Kind
		content string
	}{
		{model.KindSystem, BootLineVersion},
		{model.KindSystem, BootLineNeural},
		{model.KindUmbra, BootLineWelcome},
	} {
		msg := s.transcript.Append(seed.kind, seed.content, now)
		events = append(events, Event{Kind: EventMessage, Message: msg})
	}
	s.mu.Unlock()

	s.emit(events...)
	return true
}

// =============================================================================
// TERMINAL SESSION
// =============================================================================

// Submit records text as a user message and schedules a reply. It returns
// one of the Err* rejections when the submission is dropped.
func (s *Session) Submit(text string) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case strings.TrimSpace(text) == "":
		s.mu.Unlock()
		return ErrEmptyInput
	case !s.bootComplete:
		s.mu.Unlock()
		return ErrNotBooted
	case s.pendingReply:
		s.mu.Unlock()
		return ErrReplyPending
	}

	msg := s.transcript.Append(model.KindUser, text, s.now())
	s.input = ""
	s.pendingReply = true
	s.replyTask = s.sched.After(TaskReply, s.cfg.ReplyDelay, s.CompleteReply)
	s.mu.Unlock()

	s.emit(
		Event{Kind: EventMessage, Message: msg},
		Event{Kind: EventPending, Pending: true},
	)
	return nil
}

// SubmitInput submits the current input buffer.
func (s *Session) SubmitInput() error {
	return s.Submit(s.Input())
}

// CompleteReply appends a canned reply and clears the pending flag. It is a
// no-op when no reply is pending.
func (s *Session) CompleteReply() {
	s.mu.Lock()
	if s.closed || !s.pendingReply {
		s.mu.Unlock()
		return
	}

	content := replies.PickReply(s.cfg.Source, s.cfg.Replies)
	msg := s.transcript.Append(model.KindUmbra, content, s.now())
	s.pendingReply = false
	s.replyTask = nil
	s.mu.Unlock()

	s.emit(
		Event{Kind: EventMessage, Message: msg},
		Event{Kind: EventPending, Pending: false},
	)
}

// SetInput replaces the input buffer.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.input = text
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Config returns the effective configuration.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	cfg.Replies = replies.Clone(s.cfg.Replies)
	return cfg
}

// Progress returns boot progress in [0, 100].
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// BootComplete reports whether the terminal screen is active.
func (s *Session) BootComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bootComplete
}

// PendingReply reports whether a reply is in flight.
func (s *Session) PendingReply() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingReply
}

// Input returns the input buffer.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Messages()
}

// now must be called with s.mu held.
func (s *Session) now() time.Time {
	if s.sched != nil {
		return s.sched.Now()
	}
	return time.Now()
}
