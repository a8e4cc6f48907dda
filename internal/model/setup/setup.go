package setup

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/state"
	"github.com/vinser/snake/internal/style"
	"github.com/vinser/snake/internal/world"
)

const (
	selectedSpriteSize = iota
	selectedTheme
	selectedWidth
	selectedHeight
	selectedMute
	selectedReset
	numSettings
)

type Model struct {
	spriteSize string // small, medium or large
	theme      string // day, night or real
	width      int
	height     int
	mute       bool
	reset      bool

	selectedSetting int
	termWidth       int
	termHeight      int
}

type SaveSettingsMsg struct {
	SpriteSize string
	Theme      string
	Width      int
	Height     int
	Mute       bool
	Reset      bool
}

func saveSettingsCmd(m Model) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			SpriteSize: m.spriteSize,
			Theme:      m.theme,
			Width:      m.width,
			Height:     m.height,
			Mute:       m.mute,
			Reset:      m.reset,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(spriteSize, theme string, width, height int, mute bool) Model {
	return Model{
		spriteSize: spriteSize,
		theme:      theme,
		width:      width,
		height:     height,
		mute:       mute,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "s":
		return m, saveSettingsCmd(m)
	case "esc":
		return m, discardSettingsCmd()
	case "up":
		if m.selectedSetting > 0 {
			m.selectedSetting--
		}
	case "down":
		if m.selectedSetting < numSettings-1 {
			m.selectedSetting++
		}
	case "left":
		m.adjust(-1)
	case "right":
		m.adjust(1)
	case "enter", " ":
		switch m.selectedSetting {
		case selectedSpriteSize:
			m.spriteSize = nextSpriteSize(m.spriteSize)
		case selectedTheme:
			m.theme = nextTheme(m.theme)
		case selectedWidth, selectedHeight:
			m.adjust(5)
		case selectedMute:
			m.mute = !m.mute
		case selectedReset:
			m.reset = !m.reset
		}
	}
	return m, nil
}

// adjust changes the selected board dimension, wrapping around its limits.
func (m *Model) adjust(delta int) {
	switch m.selectedSetting {
	case selectedWidth:
		m.width = wrap(m.width+delta, world.MinWidth, world.MaxSize)
	case selectedHeight:
		m.height = wrap(m.height+delta, world.MinHeight, world.MaxSize)
	}
}

func wrap(v, lo, hi int) int {
	switch {
	case v > hi:
		return lo
	case v < lo:
		return hi
	}
	return v
}

func nextTheme(current string) string {
	switch current {
	case state.ThemeDay:
		return state.ThemeNight
	case state.ThemeNight:
		return state.ThemeReal
	default:
		return state.ThemeDay
	}
}

func nextSpriteSize(current string) string {
	switch current {
	case state.SpriteSmall:
		return state.SpriteMedium
	case state.SpriteMedium:
		return state.SpriteLarge
	case state.SpriteLarge:
		return state.SpriteSmall
	default:
		return state.SpriteDefault
	}
}

const footer = "↑ ↓ — select, space — change, ← → — resize, s — save, esc — cancel"

func (m Model) View() string {
	type option struct {
		label string
		value string
	}
	options := []option{
		{"Sprite size", m.spriteSize},
		{"Colour theme", m.theme},
		{"Board width", fmt.Sprint(m.width)},
		{"Board height", fmt.Sprint(m.height)},
		{"Mute all sounds", fmt.Sprint(m.mute)},
		{"Reset scores and settings", fmt.Sprint(m.reset)},
	}

	var lines []string
	for i, opt := range options {
		prefix := "  "
		st := style.SetupItem
		if i == m.selectedSetting {
			prefix = "➤ "
			st = style.SetupItemSelected
		}
		lines = append(lines, st.Render(fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	width := lipgloss.Width(footer)
	return render.Page("Settings", content, footer, width, len(lines)+8, m.termWidth, m.termHeight)
}
