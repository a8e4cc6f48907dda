package app

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snake/internal/flags"
	"github.com/vinser/snake/internal/geoip"
	"github.com/vinser/snake/internal/model/about"
	"github.com/vinser/snake/internal/model/over"
	"github.com/vinser/snake/internal/model/play"
	"github.com/vinser/snake/internal/model/quit"
	"github.com/vinser/snake/internal/model/setup"
	"github.com/vinser/snake/internal/model/splash"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/score"
	"github.com/vinser/snake/internal/sound"
	"github.com/vinser/snake/internal/state"
	"github.com/vinser/snake/internal/world"
)

type status uint

const (
	statusStartSplash status = iota
	statusDoSettings
	statusAbout
	statusGameplay
	statusGameOver
	statusQuitting
)

type Model struct {
	status status
	state  *state.State
	flags  *flags.Flags
	score  *score.Score
	best   int // best score of this run
	last   play.GameOverMsg
	// models
	splash splash.Model
	setup  setup.Model
	about  about.Model
	play   play.Model
	over   over.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New loads the saved state, applies the command line on top of it and starts audio.
func New(fl *flags.Flags) Model {
	geoip.SetCacheTTL(0) // fresh location for every run
	st := getState(fl)
	st.InitSound()
	st.SoundManager.SetMasterVolume(fl.VolumeDB())
	if st.Theme == state.ThemeReal {
		st.Locate()
	}
	return newModel(fl, st)
}

func newModel(fl *flags.Flags, st *state.State) Model {
	sc := score.NewScore()
	if best, ok := st.Best(); ok {
		sc.SetHigh(best.Score, best.Nick)
	}
	return Model{
		status: statusStartSplash,
		state:  st,
		flags:  fl,
		score:  sc,
		splash: setSplash(st),
	}
}

func getState(fl *flags.Flags) *state.State {
	path, err := state.DefaultPath()
	if err != nil {
		log.Printf("state will not be saved: %v", err)
	}
	if fl.Reset {
		return state.New(path)
	}
	st := state.Load(path)
	if fl.IsSet("mute") {
		st.Mute = fl.Mute
	}
	if fl.IsSet("sprite") {
		st.SpriteSize = fl.Sprite
	}
	if fl.IsSet("theme") {
		st.Theme = fl.Theme
	}
	if fl.IsSet("width") {
		st.Width = fl.Width
	}
	if fl.IsSet("height") {
		st.Height = fl.Height
	}
	return st
}

func boardConfig(st *state.State) world.Config {
	cfg := world.Config{Width: st.Width, Height: st.Height}
	if err := cfg.Validate(); err != nil {
		log.Printf("saved board size ignored: %v", err)
		return world.DefaultConfig()
	}
	return cfg
}

func getWidthHeight(st *state.State) (int, int) {
	sprite := render.SpriteFor(st.SpriteSize)
	cfg := boardConfig(st)
	return max(40, cfg.Width*sprite.Width()), max(16, cfg.Height*sprite.Height()+4)
}

func setSplash(st *state.State) splash.Model {
	width, _ := getWidthHeight(st)
	return splash.New(width, 8)
}

func setSetup(st *state.State) setup.Model {
	return setup.New(st.SpriteSize, st.Theme, st.Width, st.Height, st.Mute)
}

func setAbout(st *state.State) about.Model {
	width, height := getWidthHeight(st)
	return about.New(width, height)
}

func setGameOver(st *state.State, msg play.GameOverMsg) over.Model {
	qualifies := st.Qualifies(msg.Score)
	if qualifies {
		mgr := st.SoundManager
		mgr.PlayWithCallback(sound.HIGH_SCORE, func() {
			go mgr.Play(sound.INTRO)
		})
	}
	width, height := getWidthHeight(st)
	return over.New(msg.Score, msg.Length, msg.Cause.String(), st.HighScores, qualifies, width, height)
}

func setQuit(st *state.State, best int) quit.Model {
	st.SoundManager.StopAll()
	st.SoundManager.Play(sound.QUIT)
	return quit.New(best)
}

func (m Model) Init() tea.Cmd {
	m.state.SoundManager.Play(sound.INTRO)
	return m.splash.Init()
}

// globalKeysActive reports whether q and m act app-wide; they are plain
// letters while a nickname is typed.
func (m Model) globalKeysActive() bool {
	return !(m.status == statusGameOver && m.over.Entering())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quitting()
		case "q":
			if m.globalKeysActive() && m.status != statusQuitting {
				return m.quitting()
			}
		case "m":
			if m.globalKeysActive() {
				m.state.SetMute(!m.state.Mute)
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.resize()
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusStartSplash:
		switch msg := msg.(type) {
		case splash.MakeSettingsMsg:
			m.status = statusDoSettings
			m.setup = setSetup(m.state)
			m.resize()
		case splash.ShowAboutMsg:
			m.status = statusAbout
			m.about = setAbout(m.state)
			m.resize()
		case splash.TimedoutMsg:
			m.state.SoundManager.StopListed(sound.INTRO)
			return m.startGame()
		default:
			m.splash, cmd = m.splash.Update(msg)
		}
	case statusDoSettings:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			m.applySettings(msg)
			return m.startGame()
		case setup.DiscardSettingsMsg:
			return m.startGame()
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusStartSplash
			m.splash = setSplash(m.state)
			m.resize()
			return m, m.splash.Init()
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusGameplay:
		switch msg := msg.(type) {
		case play.GameOverMsg:
			m.status = statusGameOver
			m.last = msg
			m.best = max(m.best, msg.Score)
			m.over = setGameOver(m.state, msg)
			m.resize()
			return m, m.over.Init()
		default:
			m.play, cmd = m.play.Update(msg)
		}
	case statusGameOver:
		switch msg := msg.(type) {
		case over.SaveHighScoreMsg:
			m.saveHighScore(msg.Nick)
		case over.PlayAgainMsg:
			return m.startGame()
		case over.QuitGameMsg:
			return m.quitting()
		default:
			m.over, cmd = m.over.Update(msg)
		}
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) quitting() (tea.Model, tea.Cmd) {
	if m.status == statusQuitting {
		return m, tea.Quit
	}
	m.status = statusQuitting
	m.quit = setQuit(m.state, m.best)
	m.resize()
	return m, m.quit.Init()
}

func (m Model) startGame() (tea.Model, tea.Cmd) {
	m.score.Reset()
	p, err := play.New(m.state, m.score, boardConfig(m.state), m.flags.Seed)
	if err != nil {
		log.Printf("cannot start game: %v", err)
		return m, tea.Quit
	}
	m.play = p
	m.status = statusGameplay
	m.resize()
	return m, m.play.Init()
}

func (m *Model) applySettings(msg setup.SaveSettingsMsg) {
	// The sound manager and the file location outlive a reset.
	if msg.Reset {
		mgr, loc := m.state.SoundManager, m.state.LocationInfo
		m.state = state.New(m.state.Path())
		m.state.SoundManager = mgr
		m.state.LocationInfo = loc
		m.score.SetHigh(0, "")
	}
	m.state.SpriteSize = msg.SpriteSize
	m.state.Theme = msg.Theme
	m.state.Width = msg.Width
	m.state.Height = msg.Height
	m.state.SetMute(msg.Mute)
	if m.state.Theme == state.ThemeReal && m.state.LocationInfo.Timezone == "" {
		m.state.Locate()
	}
	m.save()
}

func (m *Model) saveHighScore(nick string) {
	rank := m.state.AddHighScore(state.HighScore{
		Score:   m.last.Score,
		Fruits:  m.last.Fruits,
		Nick:    nick,
		Session: m.last.Session,
		Date:    time.Now(),
	})
	log.Printf("session %s: high score %d ranked %d", m.last.Session, m.last.Score, rank)
	if best, ok := m.state.Best(); ok {
		m.score.SetHigh(best.Score, best.Nick)
	}
	m.over.SetHighScores(m.state.HighScores)
	m.save()
}

func (m *Model) save() {
	if m.state.Path() == "" {
		return
	}
	if err := m.state.Save(); err != nil {
		log.Printf("save state: %v", err)
	}
}

func (m *Model) resize() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	switch m.status {
	case statusStartSplash:
		m.splash.SetSize(m.termWidth, m.termHeight)
	case statusDoSettings:
		m.setup.SetSize(m.termWidth, m.termHeight)
	case statusAbout:
		m.about.SetSize(m.termWidth, m.termHeight)
	case statusGameplay:
		m.play.SetSize(m.termWidth, m.termHeight)
	case statusGameOver:
		m.over.SetSize(m.termWidth, m.termHeight)
	case statusQuitting:
		m.quit.SetSize(m.termWidth, m.termHeight)
	}
}

// Close releases the audio device.
func (m Model) Close() {
	m.state.SoundManager.Close()
}

func (m Model) View() string {
	switch m.status {
	case statusStartSplash:
		return m.splash.View()
	case statusDoSettings:
		return m.setup.View()
	case statusAbout:
		return m.about.View()
	case statusGameplay:
		return m.play.View()
	case statusGameOver:
		return m.over.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
