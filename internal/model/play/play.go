package play

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/vinser/snake/internal/ambilite"
	"github.com/vinser/snake/internal/input"
	"github.com/vinser/snake/internal/model/motd"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/score"
	"github.com/vinser/snake/internal/sound"
	"github.com/vinser/snake/internal/state"
	"github.com/vinser/snake/internal/style"
	"github.com/vinser/snake/internal/world"
)

const (
	TickInterval = 150 * time.Millisecond
	deathFreeze  = 1500 * time.Millisecond
)

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	state        *state.State
	soundManager *sound.Manager
	score        *score.Score
	world        *world.World
	queue        *input.Queue
	spawner      *world.Spawner
	session      string
	sprite       render.Sprite
	board        style.BoardStyles
	palette      style.Palette
	cause        world.Cause
	paused       bool
	gen          int // tick chain generation, bumped on resume
	terminal     TerminalDimensions
	motd         motd.Model
	sb           *strings.Builder
}

// TickMsg advances the simulation by one step.
type TickMsg struct {
	gen int
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

// GameOverMsg is sent once the dead snake has been shown for a moment.
type GameOverMsg struct {
	Session string
	Score   int
	Fruits  int
	Length  int
	Cause   world.Cause
}

func gameOverCmd(msg GameOverMsg) tea.Cmd {
	return tea.Tick(deathFreeze, func(time.Time) tea.Msg {
		return msg
	})
}

// New starts a game on a fresh board. A zero seed picks one from the clock.
func New(st *state.State, sc *score.Score, cfg world.Config, seed int64) (Model, error) {
	queue := input.NewQueue()
	w, err := world.New(cfg, queue)
	if err != nil {
		return Model{}, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	palette := PaletteFor(st.Theme, st.LocationInfo.Lat, st.LocationInfo.Lon, st.LocationInfo.Timezone, time.Now())

	m := Model{
		state:        st,
		soundManager: st.SoundManager,
		score:        sc,
		world:        w,
		queue:        queue,
		spawner:      world.NewSpawner(seed),
		session:      uuid.NewString(),
		sprite:       render.SpriteFor(st.SpriteSize),
		palette:      palette,
		board:        palette.Board(),
		sb:           &strings.Builder{},
		terminal:     TerminalDimensions{Width: 80, Height: 24},
	}
	m.motd = motd.New(cfg.Width*m.sprite.Width(), 1, time.Minute)
	m.spawner.Spawn(w)
	log.Printf("session %s: new game %dx%d seed %d theme %s", m.session, cfg.Width, cfg.Height, seed, st.Theme)
	return m, nil
}

// PaletteFor picks the board colours for a theme. The real theme follows
// the daylight at the given place and time.
func PaletteFor(theme string, lat, lon float64, tz string, now time.Time) style.Palette {
	switch theme {
	case state.ThemeNight:
		return style.NightPalette
	case state.ThemeReal:
		return style.Shade(ambilite.Intensity(now, lat, lon, tz))
	default:
		return style.DayPalette
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.gen)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// Handle MOTD updates separately
	if _, ok := msg.(motd.TickMsg); ok {
		if !m.paused {
			return m, nil
		}
		var cmd tea.Cmd
		m.motd, cmd = m.motd.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "p" && !m.world.Over() {
			return m.togglePause()
		}
		if m.paused {
			return m, nil
		}
		if d, ok := input.FromKey(msg.String()); ok {
			m.queue.Push(d)
		}
		return m, nil
	case TickMsg:
		if msg.gen != m.gen || m.paused || m.world.Over() {
			return m, nil
		}
		return m.step()
	}
	return m, nil
}

func (m Model) togglePause() (Model, tea.Cmd) {
	m.paused = !m.paused
	if m.paused {
		log.Printf("session %s: paused at tick %d", m.session, m.world.Ticks())
		return m, m.motd.Init()
	}
	m.gen++
	return m, tickCmd(m.gen)
}

// step runs one simulation tick and reacts to its events.
func (m Model) step() (Model, tea.Cmd) {
	m.spawner.Spawn(m.world)
	for _, ev := range m.world.Step() {
		switch ev.Kind {
		case world.Eaten:
			m.score.AddFruit()
			m.soundManager.Play(sound.EAT)
			log.Printf("session %s: %v, score %d", m.session, ev, m.score.Get())
		case world.Died:
			m.cause = ev.Cause
			m.soundManager.Play(sound.GAME_OVER)
			log.Printf("session %s: %v, score %d length %d", m.session, ev, m.score.Get(), m.world.Len())
			return m, gameOverCmd(GameOverMsg{
				Session: m.session,
				Score:   m.score.Get(),
				Fruits:  m.score.Fruits(),
				Length:  m.world.Len(),
				Cause:   ev.Cause,
			})
		}
	}
	return m, tickCmd(m.gen)
}

func (m *Model) SetSize(width, height int) {
	m.terminal = TerminalDimensions{Width: width, Height: height}
}

func (m Model) Session() string {
	return m.session
}

func (m Model) Score() *score.Score {
	return m.score
}

func (m Model) Paused() bool {
	return m.paused
}

func (m Model) Over() bool {
	return m.world.Over()
}

func (m Model) Snapshot() world.Snapshot {
	return m.world.Snapshot()
}

// View returns the complete screen with header, board and footer.
func (m Model) View() string {
	m.sb.Reset()
	boardWidth := m.world.Snapshot().Width * m.sprite.Width()

	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("~", boardWidth)))
	m.sb.WriteString("\n")
	m.sb.WriteString(m.header())
	m.sb.WriteString("\n")
	m.sb.WriteString(render.Board(m.world.Snapshot(), m.sprite, m.board))
	m.sb.WriteString("\n")
	if m.paused {
		m.motd.SetWidth(boardWidth)
		m.sb.WriteString(m.motd.View())
	}
	m.sb.WriteString("\n")
	m.sb.WriteString(m.footer(boardWidth))

	return render.Center(m.sb.String(), m.terminal.Width, m.terminal.Height)
}

func (m Model) header() string {
	var status string
	switch {
	case m.world.Over():
		status = style.GameOver.Render(fmt.Sprintf("GAME OVER: %s", m.cause))
	case m.paused:
		status = style.Paused.Render("PAUSED")
	case m.state.Theme == state.ThemeReal:
		status = style.Footer.Render(m.state.LocationInfo.String())
	}

	line := fmt.Sprintf("Score: %d  Length: %d  Heading: %s", m.score.Get(), m.world.Len(), m.queue.Current())
	if high := m.score.GetHigh(); high > 0 {
		line += fmt.Sprintf("  High Score: %d by %s", high, m.score.GetHighNick())
	} else {
		line += "  High Score: -"
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, style.PlayHeader.Render(line))
}

func (m Model) footer(width int) string {
	help := "← ↑ ↓ → move, p pause, m mute, q quit"
	if m.paused {
		help = "p resume, m mute, q quit"
	}
	fill := max(0, width-lipgloss.Width(help)-1)
	return style.Footer.Render(help + " " + strings.Repeat("~", fill))
}
