package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/style"
)

const title = `
▄▀▀▀ █▄  █  ▄▀▄  █ ▄▀ █▀▀▀
 ▀▀▄ █ ▀▄█ █▄▄▄█ █▀▄  █▀▀
▀▀▀  █   █ █   █ █  █ █▄▄▄
`

const (
	snakeLength      = 8
	fruitEvery       = 6
	moveTickDuration = 80 * time.Millisecond
	titlePause       = 2 * time.Second
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	pos        int // head column of the crawling snake
	length     int
	fruits     []bool
	pauseUntil time.Time
	paused     bool
	sb         *strings.Builder
}

type MoveMsg struct{}

func moveCmd() tea.Cmd {
	return tea.Tick(moveTickDuration, func(t time.Time) tea.Msg {
		return MoveMsg{}
	})
}

type MakeSettingsMsg struct{}

func makeSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return MakeSettingsMsg{}
	}
}

type ShowAboutMsg struct{}

func showAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowAboutMsg{}
	}
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(width, height int) Model {
	fruits := make([]bool, width)
	for i := fruitEvery; i < width; i += fruitEvery {
		fruits[i] = true
	}
	return Model{
		width:  width,
		height: height,
		pos:    -1,
		length: snakeLength,
		fruits: fruits,
		sb:     &strings.Builder{},
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return moveCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MoveMsg:
		return m.crawl(time.Now())
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, makeSettingsCmd()
		case "?":
			return m, showAboutCmd()
		case "enter", "esc", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

// crawl moves the snake one column, stopping once in the middle to show the title.
func (m Model) crawl(now time.Time) (Model, tea.Cmd) {
	if m.paused {
		if now.Before(m.pauseUntil) {
			return m, moveCmd()
		}
		m.paused = false
	} else if m.pos == m.width/2 && m.pauseUntil.IsZero() {
		m.paused = true
		m.pauseUntil = now.Add(titlePause)
		return m, moveCmd()
	}

	m.pos++
	if m.pos >= 0 && m.pos < len(m.fruits) && m.fruits[m.pos] {
		m.fruits[m.pos] = false
		m.length++
	}
	if m.pos-m.length >= m.width {
		return m, timedoutCmd()
	}
	return m, moveCmd()
}

func (m Model) View() string {
	m.sb.Reset()
	m.sb.WriteString(style.SplashTitle.Render(strings.Trim(title, "\n")))
	m.sb.WriteString("\n\n")

	for x := 0; x < m.width; x++ {
		switch {
		case x == m.pos:
			m.sb.WriteString(style.SplashSnake.Render("@"))
		case x < m.pos && x > m.pos-m.length:
			m.sb.WriteString(style.SplashSnake.Render("o"))
		case m.fruits[x]:
			m.sb.WriteString(style.SplashFruit.Render("*"))
		default:
			m.sb.WriteByte(' ')
		}
	}
	m.sb.WriteString("\n\n")
	m.sb.WriteString(style.Footer.Render("s — settings, ? — about, m — mute, space — play, q — quit"))
	return render.Center(m.sb.String(), m.termWidth, m.termHeight)
}
