package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-jump/internal/audio"
	"github.com/vovakirdan/bubble-jump/internal/config"
	"github.com/vovakirdan/bubble-jump/internal/core"
	"github.com/vovakirdan/bubble-jump/internal/storage"
)

type fakeStore struct {
	high  int
	saves map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{saves: make(map[string]int)}
}

func (f *fakeStore) HighScore() (int, error) { return f.high, nil }

func (f *fakeStore) SetHighScore(score int) error {
	if score > f.high {
		f.high = score
	}
	return nil
}

func (f *fakeStore) SaveScore(runID string, score int) (int64, error) {
	if _, ok := f.saves[runID]; ok {
		return 0, storage.ErrRunRecorded
	}
	f.saves[runID] = score
	return int64(len(f.saves)), nil
}

type recordingPlayer struct {
	cues []audio.Cue
}

func (p *recordingPlayer) Play(c audio.Cue) { p.cues = append(p.cues, c) }
func (p *recordingPlayer) Close()           {}

func newTestModel(t *testing.T, store Store, sound audio.Player) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:  config.DefaultJumperConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42},
		Store:   store,
		Sound:   sound,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestModelStartsOnEnter(t *testing.T) {
	m := newTestModel(t, nil, nil)
	if m.gameState.Started {
		t.Fatal("game should wait for the start key")
	}

	m = send(t, m, TickMsg{})
	if m.gameState.Started {
		t.Fatal("a tick without input should not start the game")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if !m.gameState.Started {
		t.Error("enter + tick should start the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelMarketPurchaseFlow(t *testing.T) {
	sound := &recordingPlayer{}
	m := newTestModel(t, nil, sound)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, runeKey('m'), TickMsg{})
	if !m.gameState.MarketOpen {
		t.Fatal("market should be open")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, expected 1", m.cursor)
	}

	// The run has barely begun, so buying the dolphin is refused with the shortfall.
	want := fmt.Sprintf("Not enough points! Need %dP more.", 200-m.session.Score())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	alerts := m.alerts.Active()
	if len(alerts) != 1 || alerts[0].Message != want {
		t.Fatalf("alerts = %+v", alerts)
	}
	if m.market.Owned("dolphin") {
		t.Error("refused purchase should not grant ownership")
	}
	for _, c := range sound.cues {
		if c == audio.CuePurchase {
			t.Error("refused purchase should not play the purchase cue")
		}
	}

	if !strings.Contains(m.View(), "MARKET") {
		t.Error("market panel should be rendered while open")
	}
}

func TestModelCursorClamps(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{}, runeKey('m'), TickMsg{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected clamp at 0", m.cursor)
	}

	n := m.market.Catalog().Len()
	for i := 0; i < n+3; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != n-1 {
		t.Errorf("cursor = %d, expected clamp at %d", m.cursor, n-1)
	}
}

func TestModelRecordRunOnce(t *testing.T) {
	store := newFakeStore()
	m := newTestModel(t, store, nil)

	m.recordRun("run-1", 120)
	m.recordRun("run-1", 120)
	m.recordRun("run-2", 0)
	m.recordRun("run-3", 40)

	if len(store.saves) != 2 {
		t.Fatalf("saves = %v, expected run-1 and run-3", store.saves)
	}
	if store.saves["run-1"] != 120 || store.saves["run-3"] != 40 {
		t.Errorf("unexpected saved scores: %v", store.saves)
	}
}

func TestModelLoadsHighScore(t *testing.T) {
	store := newFakeStore()
	store.high = 730
	m := newTestModel(t, store, nil)

	if m.gameState.HighScore != 730 {
		t.Errorf("HighScore = %d, expected 730", m.gameState.HighScore)
	}
	if !strings.Contains(m.View(), "High Score: 730") {
		t.Error("HUD should show the stored high score")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	runID := m.session.RunID()

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.session.RunID() != runID {
		t.Error("resize should not restart the run")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.SetColored(0, 1, '#', core.ColorTeal)

	out := RenderScreen(s)
	if !strings.Contains(out, "hello") {
		t.Errorf("RenderScreen() = %q, expected it to contain hello", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
