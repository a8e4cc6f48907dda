package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/style"
)

const quitPeriod = 2 * time.Second

type Model struct {
	quitUntil  time.Time
	score      int
	termWidth  int
	termHeight int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New shows the goodbye screen with the best score of the session.
func New(score int) Model {
	return Model{
		quitUntil: time.Now().Add(quitPeriod),
		score:     score,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	text := "\nIt's a pity you gave up :(\nBye!\n"
	if m.score > 0 {
		text = fmt.Sprintf("\nYour best this time: %d\nBye!\n", m.score)
	}
	return render.Center(style.Title.Render(text), m.termWidth, m.termHeight)
}
