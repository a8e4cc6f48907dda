package app

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snake/internal/flags"
	"github.com/vinser/snake/internal/model/over"
	"github.com/vinser/snake/internal/model/play"
	"github.com/vinser/snake/internal/model/quit"
	"github.com/vinser/snake/internal/model/setup"
	"github.com/vinser/snake/internal/state"
	"github.com/vinser/snake/internal/world"
)

func newTestModel(t *testing.T, args ...string) Model {
	t.Helper()
	fl, err := flags.Parse("snake", args, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	return newModel(fl, state.New(""))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSplashStartsGame(t *testing.T) {
	m := newTestModel(t, "-seed=3")
	if m.status != statusStartSplash {
		t.Fatalf("status %v", m.status)
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = update(t, m, cmd())
	if m.status != statusGameplay {
		t.Fatalf("status %v after skipping the splash", m.status)
	}
	if cmd == nil {
		t.Error("game started without a tick")
	}
}

func TestGameOverSavesHighScore(t *testing.T) {
	m := newTestModel(t)
	m = skipSplash(t, m)

	m, _ = update(t, m, play.GameOverMsg{Session: "s1", Score: 30, Fruits: 3, Length: 5, Cause: world.CauseSelf})
	if m.status != statusGameOver || !m.over.Entering() {
		t.Fatal("qualifying score did not ask for a nickname")
	}

	// q and m are letters of the nickname here
	for _, r := range "qm" {
		m, _ = update(t, m, runes(string(r)))
	}
	if m.status != statusGameOver || m.state.Mute {
		t.Fatal("global keys fired while typing a nickname")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(over.SaveHighScoreMsg)
	if !ok {
		t.Fatalf("Enter produced %T", cmd())
	}
	m, _ = update(t, m, msg)

	best, ok := m.state.Best()
	if !ok || best.Score != 30 || best.Nick != "qm" || best.Session != "s1" {
		t.Errorf("best %+v", best)
	}
	if m.score.GetHigh() != 30 {
		t.Errorf("header high score %d", m.score.GetHigh())
	}

	m, cmd = update(t, m, runes("a"))
	m, _ = update(t, m, cmd())
	if m.status != statusGameplay {
		t.Errorf("play again led to status %v", m.status)
	}
	if m.score.Get() != 0 {
		t.Errorf("score not reset: %d", m.score.Get())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("q"))
	if m.status != statusQuitting {
		t.Fatalf("q led to status %v", m.status)
	}
	_, cmd := update(t, m, quit.TimedoutMsg{})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit screen did not end the program")
	}

	// a second ctrl+c does not wait for the goodbye screen
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c on the quit screen did not quit")
	}
}

func TestMuteToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("m"))
	if !m.state.Mute {
		t.Error("m did not mute")
	}
	m, _ = update(t, m, runes("m"))
	if m.state.Mute {
		t.Error("m did not unmute")
	}
}

func TestSettingsReset(t *testing.T) {
	m := newTestModel(t)
	m.state.AddHighScore(state.HighScore{Score: 90, Nick: "kaa"})
	m.score.SetHigh(90, "kaa")
	m.status = statusDoSettings

	m, _ = update(t, m, setup.SaveSettingsMsg{SpriteSize: "small", Theme: "night", Width: 10, Height: 8, Reset: true})
	if m.status != statusGameplay {
		t.Fatalf("status %v after saving settings", m.status)
	}
	if len(m.state.HighScores) != 0 || m.score.GetHigh() != 0 {
		t.Error("reset kept high scores")
	}
	if snap := m.play.Snapshot(); snap.Width != 10 || snap.Height != 8 {
		t.Errorf("board %dx%d, want 10x8", snap.Width, snap.Height)
	}
}

func TestBoardConfigFallback(t *testing.T) {
	st := state.New("")
	st.Width, st.Height = 1, 1000
	if got := boardConfig(st); got != world.DefaultConfig() {
		t.Errorf("invalid saved size gave %+v", got)
	}
}

// skipSplash starts a game straight away.
func skipSplash(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.startGame()
	return next.(Model)
}
