// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal provides the root Bubble Tea model for umbra.
//
// The model shows the boot screen until the session reports boot complete,
// then the terminal screen: nav bar, side panels, transcript and input line.
// Scheduled session tasks are delivered as TaskFiredMsg and run inside
// Update, so every session mutation happens on the Bubble Tea goroutine.
package terminal

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/umbra-terminal/internal/contract"
	"github.com/jeranaias/umbra-terminal/internal/logging"
	"github.com/jeranaias/umbra-terminal/internal/session"
	"github.com/jeranaias/umbra-terminal/internal/tasks"
	"github.com/jeranaias/umbra-terminal/internal/ui/components"
	"github.com/jeranaias/umbra-terminal/internal/ui/styles"
)

// InputPlaceholder is shown in the empty input line.
const InputPlaceholder = "Enter command or query..."

// Loop is a scheduler whose due tasks are run by the event loop.
// *tasks.LoopScheduler implements it.
type Loop interface {
	tasks.Scheduler
	Fired() <-chan *tasks.Task
	Done() <-chan struct{}
	Run(task *tasks.Task) bool
}

// Options configures a Model.
type Options struct {
	Session    *session.Session
	Loop       Loop
	Copier     *contract.Copier
	Logger     *logging.Logger
	Theme      *styles.Theme
	ShowPanels bool
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the root Bubble Tea model.
type Model struct {
	sess   *session.Session
	loop   Loop
	copier *contract.Copier
	log    *logging.Logger
	theme  *styles.Theme

	keys     KeyMap
	help     help.Model
	boot     components.BootScreen
	nav      *components.NavBar
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	activity   *activity
	showPanels bool

	width    int
	height   int
	ready    bool
	booted   bool
	quitting bool
}

// New creates the model and starts the session on the loop.
func New(opts Options) (Model, error) {
	if opts.Session == nil || opts.Loop == nil {
		return Model{}, errors.New("terminal: session and loop are required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme("auto")
	}
	if opts.Copier == nil {
		opts.Copier = contract.New("", contract.WithLogger(opts.Logger))
	}

	input := textinput.New()
	input.Prompt = "> "
	input.PromptStyle = opts.Theme.InputPrompt
	input.Placeholder = InputPlaceholder
	input.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.DotsSpinner.Frames,
		FPS:    styles.DotsSpinner.Duration(),
	}
	sp.Style = opts.Theme.Thinking

	m := Model{
		sess:       opts.Session,
		loop:       opts.Loop,
		copier:     opts.Copier,
		log:        opts.Logger.WithSession(opts.Session.ID()).WithComponent("terminal"),
		theme:      opts.Theme,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		boot:       components.NewBootScreen(opts.Theme),
		nav:        components.NewNavBar(opts.Theme, contract.Label),
		input:      input,
		viewport:   viewport.New(80, 10),
		spinner:    sp,
		activity:   newActivity(),
		showPanels: opts.ShowPanels,
	}

	m.sess.Subscribe(m.activity.observe)
	if err := m.sess.Start(m.loop); err != nil {
		return Model{}, err
	}
	m.log.Info("session started")
	return m, nil
}

// Close tears the session down. It is safe to call more than once.
func (m Model) Close() {
	if n := m.sess.Close(); n > 0 {
		m.log.Debug("canceled tasks on close", "count", n)
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts listening for scheduled tasks.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForTask(m.loop), m.spinner.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case TaskFiredMsg:
		if msg.Task != nil && m.loop.Run(msg.Task) {
			m.log.Debug("task ran", "task", msg.Task.Description)
		}
		cmds = append(cmds, waitForTask(m.loop))

	case SchedulerClosedMsg:
		m.log.Debug("scheduler closed")

	case RefreshMsg:
		m.activity.dirty = true

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		if m.quitting {
			return m, cmd
		}
		cmds = append(cmds, cmd)
		if !handled {
			cmds = append(cmds, m.updateInput(msg))
		}

	default:
		cmds = append(cmds, m.updateInput(msg))
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

// handleKey processes bound keys. It reports whether the key was consumed.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return tea.Quit, true

	case !m.sess.BootComplete():
		// Only quit works while booting.
		return nil, true

	case key.Matches(msg, m.keys.Copy):
		result := m.copier.Copy()
		m.log.Debug("copy contract", "result", result.String())
		return nil, true

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return nil, true

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return nil, true

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return nil, true
	}
	return nil, false
}

// submit sends the input buffer to the session. Rejections are no-ops.
func (m *Model) submit() {
	m.sess.SetInput(m.input.Value())
	if err := m.sess.SubmitInput(); err != nil {
		m.log.Debug("submit dropped", "reason", err.Error())
		return
	}
	m.input.Reset()
}

// updateInput forwards a message to the text input unless it is disabled.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	if !m.sess.BootComplete() || m.sess.PendingReply() {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.SetInput(m.input.Value())
	return cmd
}

// sync pulls session state into the sub-models after events.
func (m *Model) sync() {
	m.boot.SetPercent(m.sess.Progress())

	if !m.activity.takeDirty() {
		return
	}

	if m.sess.BootComplete() && !m.booted {
		m.booted = true
		m.input.Focus()
		m.log.Info("boot complete")
	}

	if m.sess.PendingReply() {
		m.input.Blur()
	} else if m.booted {
		m.input.Focus()
	}

	m.viewport.SetContent(components.RenderTranscript(m.theme, m.sess.Messages(), m.viewport.Width))
	m.viewport.GotoBottom()
}

// resize lays out every sub-model for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	m.theme.SetSize(width, height)
	m.boot.SetSize(width, height)
	m.nav.SetWidth(width)
	m.help.Width = width

	l := m.layout()
	m.viewport.Width = l.viewportWidth
	m.viewport.Height = l.viewportHeight
	m.input.Width = l.inputWidth
	m.activity.dirty = true
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.sess
}

// Input returns the current input line text.
func (m Model) Input() string {
	return m.input.Value()
}

// InputFocused reports whether the input accepts keystrokes.
func (m Model) InputFocused() bool {
	return m.input.Focused()
}

// PanelsVisible reports whether side panels are rendered at the current width.
func (m Model) PanelsVisible() bool {
	return m.showPanels && m.theme.GetLayoutMode() == styles.LayoutWide
}

// Logs returns the system log panel lines.
func (m Model) Logs() []string {
	out := make([]string, len(m.activity.logs))
	copy(out, m.activity.logs)
	return out
}
