// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/umbra-terminal/internal/contract"
	"github.com/jeranaias/umbra-terminal/internal/model"
	"github.com/jeranaias/umbra-terminal/internal/replies"
	"github.com/jeranaias/umbra-terminal/internal/session"
	"github.com/jeranaias/umbra-terminal/internal/tasks"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

var epoch = time.Date(2025, 6, 1, 22, 15, 0, 0, time.UTC)

// manualLoop drives the model on virtual time. Tasks run inside Advance,
// so Fired never delivers anything.
type manualLoop struct {
	*tasks.ManualScheduler
}

func (manualLoop) Fired() <-chan *tasks.Task { return nil }
func (manualLoop) Done() <-chan struct{}     { return nil }
func (manualLoop) Run(*tasks.Task) bool      { return false }

type clipboardRecorder struct {
	writes []string
}

func (c *clipboardRecorder) write(text string) error {
	c.writes = append(c.writes, text)
	return nil
}

type harness struct {
	m     Model
	sched *tasks.ManualScheduler
	clip  *clipboardRecorder
}

func newHarness(t *testing.T, showPanels bool) *harness {
	t.Helper()

	cfg := session.DefaultConfig()
	cfg.Source = replies.Fixed(0)
	sess := session.New(cfg)
	sched := tasks.NewManualScheduler(epoch)
	clip := &clipboardRecorder{}

	m, err := New(Options{
		Session:    sess,
		Loop:       manualLoop{sched},
		Copier:     contract.New("test-address", contract.WithWriter(clip.write)),
		Theme:      styles.NewTheme("dark"),
		ShowPanels: showPanels,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	h := &harness{m: m, sched: sched, clip: clip}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) advance(d time.Duration) {
	h.sched.Advance(d)
	h.send(RefreshMsg{})
}

func (h *harness) typeText(s string) {
	h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) boot(t *testing.T) {
	t.Helper()
	h.advance(5 * time.Second)
	require.True(t, h.m.Session().BootComplete())
}

// =============================================================================
// CONSTRUCTION TESTS
// =============================================================================

func TestNew_RequiresSessionAndLoop(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_StartsSession(t *testing.T) {
	h := newHarness(t, true)
	assert.Len(t, h.sched.Active(), 2)
}

func TestNew_SessionAlreadyStarted(t *testing.T) {
	sess := session.New(session.DefaultConfig())
	sched := tasks.NewManualScheduler(epoch)
	require.NoError(t, sess.Start(sched))
	defer sess.Close()

	_, err := New(Options{Session: sess, Loop: manualLoop{sched}})
	assert.ErrorIs(t, err, session.ErrAlreadyStarted)
}

// =============================================================================
// BOOT SCREEN TESTS
// =============================================================================

func TestView_BootScreen(t *testing.T) {
	h := newHarness(t, true)

	view := h.m.View()
	assert.Contains(t, view, "Initializing Neural Interface...")
	assert.Contains(t, view, "0% Complete")

	h.advance(time.Second)
	assert.Contains(t, h.m.View(), "22% Complete")
	assert.NotContains(t, h.m.View(), "EXECUTE")
}

func TestKeys_IgnoredWhileBooting(t *testing.T) {
	h := newHarness(t, true)

	h.typeText("early")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.send(tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Empty(t, h.m.Input())
	assert.Empty(t, h.clip.writes)
	assert.Empty(t, h.m.Session().Messages())
}

// =============================================================================
// TERMINAL SCREEN TESTS
// =============================================================================

func TestView_TerminalScreen(t *testing.T) {
	h := newHarness(t, true)
	h.boot(t)

	view := h.m.View()
	assert.Contains(t, view, "Contract: To Be Announced")
	assert.Contains(t, view, "UMBRA OS v2.1.0 - Initializing...")
	assert.Contains(t, view, "[SYS] Neural pathways established.")
	assert.Contains(t, view, "[UMBRA] Welcome to UMBRA.")
	assert.Contains(t, view, "EXECUTE")
	assert.Contains(t, view, "SYSTEM INFO")
	assert.Contains(t, view, "ACTIVE MODULES")
	assert.Contains(t, view, "SYSTEM LOGS")
	assert.Contains(t, view, "PERFORMANCE")
	assert.Contains(t, view, "UMBRA TERMINAL")
	assert.Contains(t, view, "6/1/2025")
	assert.Contains(t, view, "CPU: Neural Core")
	assert.Contains(t, view, "STATUS: ONLINE")
	assert.Contains(t, view, "Quantum Processor")
	assert.Contains(t, view, "Reply Engine: READY")
	assert.Contains(t, view, "Response Time: 0.02ms")
	assert.Contains(t, view, "Accuracy: 99.7%")
	assert.NotContains(t, view, "Thinking")
	assert.Equal(t, InputPlaceholder, h.m.input.Placeholder)
	assert.Equal(t, "Enter command or query...", InputPlaceholder)
	assert.True(t, h.m.InputFocused())
	assert.True(t, h.m.PanelsVisible())
}

func TestView_HeaderWithoutPanels(t *testing.T) {
	h := newHarness(t, false)
	h.boot(t)

	view := h.m.View()
	assert.Contains(t, view, "UMBRA TERMINAL")
	assert.Contains(t, view, "6/1/2025")
}

func TestView_PanelsHiddenWhenNarrow(t *testing.T) {
	h := newHarness(t, true)
	h.boot(t)
	h.send(tea.WindowSizeMsg{Width: 80, Height: 30})

	assert.False(t, h.m.PanelsVisible())
	view := h.m.View()
	assert.NotContains(t, view, "SYSTEM INFO")
	assert.Contains(t, view, "EXECUTE")
}

func TestView_PanelsDisabled(t *testing.T) {
	h := newHarness(t, false)
	h.boot(t)

	assert.False(t, h.m.PanelsVisible())
	assert.NotContains(t, h.m.View(), "SYSTEM INFO")
}

func TestSubmit_ReplyCycle(t *testing.T) {
	h := newHarness(t, true)
	h.boot(t)

	h.typeText("hello")
	assert.Equal(t, "hello", h.m.Input())
	assert.Equal(t, "hello", h.m.Session().Input())

	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := h.m.Session().Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, model.KindUser, msgs[3].Kind)
	assert.Equal(t, "hello", msgs[3].Content)
	assert.Empty(t, h.m.Input())
	assert.False(t, h.m.InputFocused())
	assert.Contains(t, h.m.View(), "[UMBRA] Thinking")
	assert.Contains(t, h.m.View(), "Reply Engine: BUSY")

	// Input is disabled while the reply is pending.
	h.typeText("more")
	assert.Empty(t, h.m.Input())

	h.advance(2 * time.Second)
	msgs = h.m.Session().Messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, replies.Default[0], msgs[4].Content)
	assert.True(t, h.m.InputFocused())
	assert.NotContains(t, h.m.View(), "Thinking")
}

func TestSubmit_WhitespaceIsNoop(t *testing.T) {
	h := newHarness(t, true)
	h.boot(t)

	h.typeText("   ")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, h.m.Session().Messages(), 3)
	assert.False(t, h.m.Session().PendingReply())
	assert.Equal(t, "   ", h.m.Input())
}

func TestCopyContract(t *testing.T) {
	h := newHarness(t, true)
	h.boot(t)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, []string{"test-address"}, h.clip.writes)

	// A second press within a second is throttled.
	h.send(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Len(t, h.clip.writes, 1)

	// Nothing about the copy shows up in the UI or the transcript.
	assert.Len(t, h.m.Session().Messages(), 3)
	assert.NotContains(t, h.m.View(), "copied")
}

func TestLogs_RecordActivity(t *testing.T) {
	h := newHarness(t, true)
	h.boot(t)
	h.typeText("status")
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	h.advance(2 * time.Second)

	logs := h.m.Logs()
	require.Len(t, logs, 4)
	assert.Equal(t, "neural link established", logs[0])
	assert.Equal(t, "22:15:05 query received", logs[1])
	assert.Equal(t, "routing to language model", logs[2])
	assert.Equal(t, "response delivered", logs[3])
}

func TestQuit_ClosesSession(t *testing.T) {
	h := newHarness(t, true)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, h.m.Session().Closed())
	assert.Empty(t, h.sched.Active())
	assert.Empty(t, h.m.View())

	h.advance(10 * time.Second)
	assert.False(t, h.m.Session().BootComplete())
}

// =============================================================================
// EVENT LOOP TESTS
// =============================================================================

func TestTaskFiredMsg_RunsOnLoop(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.TickInterval = time.Millisecond
	cfg.BootDelay = 5 * time.Millisecond
	cfg.Source = replies.Fixed(0)
	sess := session.New(cfg)

	loop := tasks.NewLoopScheduler(16)
	defer loop.Close()

	m, err := New(Options{Session: sess, Loop: loop, Theme: styles.NewTheme("dark")})
	require.NoError(t, err)
	defer m.Close()

	// Nothing mutates until the model runs the delivered tasks.
	require.Eventually(t, func() bool {
		select {
		case task := <-loop.Fired():
			next, cmd := m.Update(TaskFiredMsg{Task: task})
			m = next.(Model)
			assert.NotNil(t, cmd)
		default:
		}
		return sess.BootComplete()
	}, 2*time.Second, time.Millisecond)

	assert.Len(t, sess.Messages(), 3)
}

func TestWaitForTask_SchedulerClosed(t *testing.T) {
	loop := tasks.NewLoopScheduler(1)
	cmd := waitForTask(loop)
	require.NotNil(t, cmd)

	loop.Close()
	assert.Equal(t, SchedulerClosedMsg{}, cmd())
}
