package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-jump/internal/audio"
	"github.com/vovakirdan/bubble-jump/internal/config"
	"github.com/vovakirdan/bubble-jump/internal/core"
	"github.com/vovakirdan/bubble-jump/internal/games/jumper"
	"github.com/vovakirdan/bubble-jump/internal/shop"
	"github.com/vovakirdan/bubble-jump/internal/storage"
)

// holdDuration is how long a movement key counts as held after a press.
const holdDuration = 250 * time.Millisecond

// maxAlerts is the number of toasts shown at once.
const maxAlerts = 3

// Store persists the high score and finished runs.
type Store interface {
	jumper.HighScoreStore
	SaveScore(runID string, score int) (int64, error)
}

var _ Store = (*storage.Store)(nil)

// Options configures a game Model. Store, Sound and Logger may be nil.
type Options struct {
	Config  config.JumperConfig
	Runtime core.RuntimeConfig
	Store   Store
	Sound   audio.Player
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a game of Bubble Jump.
type Model struct {
	session *jumper.Session
	market  *shop.Market
	alerts  *shop.AlertQueue
	screen  *core.Screen
	store   Store
	sound   audio.Player
	logger  *log.Logger
	config  core.RuntimeConfig

	keys  KeyMap
	help  help.Model
	input core.InputFrame
	held  heldKeys

	tick      int
	cursor    int // highlighted market row
	gameState core.GameState
	savedRun  string // run id whose score has been recorded
	quitting  bool
}

// NewModel wires a session, market and host resources into a model.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Silent{}
	}

	var hs jumper.HighScoreStore
	if opts.Store != nil {
		hs = opts.Store
	}
	session := jumper.NewSession(opts.Config, cfg, hs, logger.WithPrefix("session"))

	catalog, err := shop.NewCatalog(opts.Config.Shop.Items)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	alertTicks := int(opts.Config.Shop.AlertSeconds * float64(cfg.TickRate))

	h := help.New()
	h.ShowAll = false

	return Model{
		session:   session,
		market:    shop.NewMarket(catalog, session, logger.WithPrefix("market")),
		alerts:    shop.NewAlertQueue(core.Max(alertTicks, 1), maxAlerts),
		screen:    core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:     opts.Store,
		sound:     sound,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     core.NewInputFrame(),
		held:      newHeldKeys(core.Max(int(holdDuration.Seconds()*float64(cfg.TickRate)), 1)),
		gameState: session.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.press(action, m.tick)
	case core.ActionUp:
		if m.gameState.MarketOpen {
			m.cursor = core.Max(m.cursor-1, 0)
		}
	case core.ActionDown:
		if m.gameState.MarketOpen {
			m.cursor = core.Min(m.cursor+1, m.market.Catalog().Len()-1)
		}
	case core.ActionConfirm:
		if m.gameState.MarketOpen {
			m.buySelected()
			return m, nil
		}
		m.input.Set(action)
	default:
		m.input.Set(action)
	}

	return m, nil
}

// buySelected attempts to buy the highlighted market item with the current score.
func (m *Model) buySelected() {
	if m.market.Catalog().Len() == 0 {
		return
	}
	item := m.market.Catalog().At(m.cursor)
	res, err := m.market.Purchase(item.ID, m.session.Score())
	if err != nil {
		m.logger.Error("purchase failed", "item", item.ID, "error", err)
		return
	}
	m.alerts.Push(res.Message)
	if res.Outcome != shop.OutcomeInsufficient {
		m.sound.Play(audio.CuePurchase)
	}
}

// handleResize processes window resize events. The world keeps its size and
// is rescaled to the new terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.held.apply(&m.input, m.tick)

	result := m.session.Step(m.input)
	m.gameState = result.State
	m.input.Clear()
	m.alerts.Tick()

	for _, cue := range audio.CuesFor(result.Events) {
		m.sound.Play(cue)
	}

	if result.Events.Started || result.Events.GameOver {
		m.held.release()
	}
	if result.Events.GameOver {
		m.recordRun(m.session.RunID(), m.gameState.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run once. Zero-score runs are not recorded.
func (m *Model) recordRun(runID string, score int) {
	if runID == m.savedRun {
		return
	}
	m.savedRun = runID
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(runID, score); err != nil && !errors.Is(err, storage.ErrRunRecorded) {
		m.logger.Warn("failed to save run", "run", runID, "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("jumper_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.alerts.Push("Screenshot saved")
}

// draw renders the session and overlays into the screen buffer.
func (m Model) draw() {
	m.session.Render(m.screen)
	if m.gameState.MarketOpen {
		drawMarket(m.screen, m.market, m.cursor, m.gameState.Score)
	}
	drawAlerts(m.screen, m.alerts.Active())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one game session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.sound.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
