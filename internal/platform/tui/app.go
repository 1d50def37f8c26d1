package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// LocalPlayer is the player name recorded for sessions played in a local terminal.
const LocalPlayer = "local"

// Options configures an AppModel.
type Options struct {
	Runtime    core.RuntimeConfig
	Config     config.PongConfig
	Difficulty config.DifficultyPreset
	Store      *storage.Store // Optional; history is disabled when nil
	Player     string
	Logger     *log.Logger // Optional; defaults to a discarding logger
	Now        func() time.Time
}

// TuningFor converts a loaded configuration into simulation speeds.
func TuningFor(cfg config.PongConfig, preset config.DifficultyPreset) pong.Tuning {
	config.ApplyPongPreset(&cfg, preset)
	return pong.Tuning{
		BallSpeed:   cfg.Physics.BallSpeed,
		PaddleSpeed: cfg.Physics.PaddleSpeed,
		AISpeed:     cfg.Physics.AISpeed,
	}
}

type view int

const (
	viewMenu view = iota
	viewPlaying
	viewHistory
)

// AppModel is the top-level Bubble Tea model: menu -> court -> menu, plus
// the history screen. One AppModel owns one simulation.
type AppModel struct {
	opts     Options
	sim      *pong.Simulation
	screen   *core.Screen
	input    *inputState
	gameKeys GameKeyMap
	menuKeys MenuKeyMap
	help     help.Model
	cursor   int
	history  HistoryModel
	view     view
	width    int
	height   int
	logger   *log.Logger

	sessionID    string
	sessionLog   *log.Logger
	sessionStart time.Time
	sessionScore pong.Score // Score when the session started
	lastTick     time.Time
	quitting     bool
}

// NewAppModel creates the app shell in the menu.
func NewAppModel(opts Options) AppModel {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Player == "" {
		opts.Player = LocalPlayer
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyNormal
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	defInput := config.DefaultPongConfig().Input
	repeatDelay := millis(opts.Config.Input.RepeatDelayMillis, defInput.RepeatDelayMillis)
	hold := millis(opts.Config.Input.HoldMillis, defInput.HoldMillis)

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	return AppModel{
		opts:     opts,
		sim:      pong.New(TuningFor(opts.Config, opts.Difficulty)),
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		input:    newInputState(repeatDelay, hold),
		gameKeys: DefaultGameKeyMap(),
		menuKeys: DefaultMenuKeyMap(),
		help:     h,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
		logger:   logger.With("player", opts.Player),
	}
}

// millis converts a configured millisecond count, falling back to def when unset.
func millis(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Millisecond
}

// Init starts the tick loop.
func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		if m.view == viewHistory {
			m.history = m.history.Resize(msg.Width, msg.Height)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	if m.view == viewHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes keyboard input to the active screen.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.view {
	case viewPlaying:
		action := m.gameKeys.Action(msg)
		if action == core.ActionQuit {
			return m.quit()
		}
		if action != core.ActionNone {
			m.input.press(action, m.opts.Now())
		}
		return m, nil

	case viewHistory:
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		switch {
		case m.history.IsQuitting():
			return m.quit()
		case m.history.IsGoingBack():
			m.view = viewMenu
		}
		return m, cmd

	default:
		return m.handleMenuKey(msg)
	}
}

// handleTick advances the simulation while a session is open.
func (m AppModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.view == viewPlaying {
		dt := frameDelta(m.lastTick, now)
		m.lastTick = now

		res := m.sim.Tick(m.input.frame(now), dt)
		if res.PauseToggled {
			m.sessionLog.Debug("pause toggled", "state", m.sim.States().Playing)
		}
		for _, r := range res.RoundsEnded {
			s := m.sim.Score()
			m.sessionLog.Debug("round ended", "winner", r.Winner, "player", s.Player, "computer", s.Computer)
		}
		if res.MenuRequested {
			m.leaveCourt()
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// enterCourt opens a new session.
func (m *AppModel) enterCourt() {
	m.sim.EnterPlaying()
	m.input.reset()
	m.lastTick = time.Time{}
	m.sessionID = uuid.NewString()
	m.sessionLog = m.logger.With("session", m.sessionID)
	m.sessionStart = m.opts.Now()
	m.sessionScore = m.sim.Score()
	m.view = viewPlaying
	m.sessionLog.Info("session started", "difficulty", m.opts.Difficulty, "repeat_delay", m.input.hold.RepeatDelay(), "hold", m.input.hold.Window())
}

// leaveCourt records the session and returns to the menu.
func (m *AppModel) leaveCourt() {
	if m.view != viewPlaying {
		return
	}
	sess := m.currentSession()
	m.sessionLog.Info("session ended",
		"points", sess.Points,
		"cpu_points", sess.CPUPoints,
		"rounds", sess.Rounds,
		"ticks", m.sim.Ticks(),
		"duration", sess.Duration.Round(time.Second),
		"hash", fmt.Sprintf("%016x", m.sim.Snapshot().Hash()),
	)
	m.saveSession(sess)

	m.sim.ExitPlaying()
	m.input.reset()
	m.view = viewMenu
	m.cursor = 0
}

// currentSession summarizes the open session.
func (m AppModel) currentSession() storage.Session {
	score := m.sim.Score()
	return storage.Session{
		SessionID:  m.sessionID,
		Player:     m.opts.Player,
		Difficulty: string(m.opts.Difficulty),
		Points:     score.Player - m.sessionScore.Player,
		CPUPoints:  score.Computer - m.sessionScore.Computer,
		Rounds:     m.sim.Rounds(),
		Duration:   m.opts.Now().Sub(m.sessionStart),
	}
}

// saveSession stores a session that completed at least one round.
func (m AppModel) saveSession(sess storage.Session) {
	if m.opts.Store == nil || sess.Rounds == 0 {
		return
	}
	if _, err := m.opts.Store.SaveSession(sess); err != nil {
		m.sessionLog.Warn("could not save session", "error", err)
	}
}

// quit closes any open session and exits the program.
func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.leaveCourt()
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewPlaying:
		m.sim.Render(m.screen)
		return RenderScreen(m.screen)
	case viewHistory:
		return m.history.View()
	default:
		return m.menuView()
	}
}

// Simulation exposes the simulation driven by this model.
func (m AppModel) Simulation() *pong.Simulation {
	return m.sim
}

// IsQuitting returns true if the user requested to quit.
func (m AppModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program in the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
