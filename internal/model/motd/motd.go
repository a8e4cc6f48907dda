// Package motd scrolls tips across the board while the game is paused.
package motd

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/embeddata"
)

const fallbackTip = "Stay hungry!"

type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   []rune
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// New returns a ticker that scrolls each tip repeats times, then waits
// interval before picking the next one.
func New(frameWidth, repeats int, interval time.Duration) Model {
	msgs, err := embeddata.ReadTips()
	if err != nil || len(msgs) == 0 {
		msgs = []string{fallbackTip}
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    []rune(msgs[rng.Intn(len(msgs))]),
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if m.doneCount >= m.repeats {
		if time.Since(m.lastShown) >= m.interval {
			m.current = []rune(m.msgs[m.rng.Intn(len(m.msgs))])
			m.lastShown = time.Now()
			m.doneCount = 0
			m.offset = 0
		}
		return m, Tick()
	}
	m.offset++
	if m.offset >= len(m.current)+m.frameWidth {
		m.offset = 0
		m.doneCount++
	}
	return m, Tick()
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	pad := []rune(strings.Repeat(" ", m.frameWidth))
	text := append(append(append([]rune{}, pad...), m.current...), pad...)
	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
