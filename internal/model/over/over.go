package over

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/render"
	"github.com/vinser/snake/internal/state"
	"github.com/vinser/snake/internal/style"
)

type status int

const (
	statusIdle status = iota
	statusEntering
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	status     status
	score      int
	length     int
	cause      string
	newHigh    bool
	highScores []state.HighScore
	textInput  textinput.Model
}

// PlayAgainMsg is a message sent when the user chooses to play again.
type PlayAgainMsg struct{}

func playAgainCmd() tea.Cmd {
	return func() tea.Msg {
		return PlayAgainMsg{}
	}
}

// QuitGameMsg is a message sent when the user chooses to quit from the game over screen.
type QuitGameMsg struct{}

func quitGameCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitGameMsg{}
	}
}

// SaveHighScoreMsg is a message sent when the user has entered their name for a new high score.
type SaveHighScoreMsg struct {
	Nick string
}

func saveHighScoreCmd(nick string) tea.Cmd {
	return func() tea.Msg {
		return SaveHighScoreMsg{Nick: nick}
	}
}

// New builds the game over screen. When qualifies is set the player is asked for a nickname first.
func New(score, length int, cause string, highScores []state.HighScore, qualifies bool, width, height int) Model {
	width = max(width, lipgloss.Width(footer))

	ti := textinput.New()
	ti.Prompt = "Nickname: "
	ti.Placeholder = "Enter Your Nickname"
	ti.CharLimit = 16
	ti.Width = 20

	leftAlign := lipgloss.NewStyle().Align(lipgloss.Left)
	ti.PromptStyle = leftAlign
	ti.TextStyle = leftAlign
	ti.PlaceholderStyle = leftAlign

	status := statusIdle
	if qualifies {
		status = statusEntering
		ti.Focus()
	}

	return Model{
		width:      width,
		height:     height,
		status:     status,
		score:      score,
		length:     length,
		cause:      cause,
		newHigh:    qualifies,
		highScores: highScores,
		textInput:  ti,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

// SetHighScores replaces the table once the new entry is stored.
func (m *Model) SetHighScores(hs []state.HighScore) {
	m.highScores = hs
}

// Entering reports whether keys go to the nickname field.
func (m Model) Entering() bool {
	return m.status == statusEntering
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.status == statusEntering {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.Type {
			case tea.KeyEnter:
				m.status = statusIdle
				return m, saveHighScoreCmd(m.textInput.Value())
			case tea.KeyEsc:
				// Cancel entering, save with default name
				m.status = statusIdle
				return m, saveHighScoreCmd("")
			}
		}
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "a", "enter", " ":
			return m, playAgainCmd()
		case "q":
			return m, quitGameCmd()
		}
	}
	return m, nil
}

const footer = "a — play again, q — quit"

func (m Model) View() string {
	return render.Page("Game Over", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	var content []string
	if m.newHigh {
		content = append(content, style.HighScore.Render(fmt.Sprintf("New high score: %d !!!", m.score)))
	} else {
		content = append(content, fmt.Sprintf("Your score: %d", m.score))
	}
	content = append(content, fmt.Sprintf("Length %d, %s", m.length, m.cause), "")

	if m.status == statusEntering {
		content = append(content, m.textInput.View(), "", "(press Enter to save, Esc to cancel)")
		return lipgloss.JoinVertical(lipgloss.Left, content...)
	}

	content = append(content, "High Scores:")
	listFormat := fmt.Sprintf("%%d. %%%dd — %%s", scoreDigits(m.highScores))
	for i, hs := range m.highScores {
		content = append(content, fmt.Sprintf(listFormat, i+1, hs.Score, hs.Nick))
	}
	content = append(content, "", "press a to try again")
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func scoreDigits(hs []state.HighScore) int {
	digits := 1
	for _, h := range hs {
		digits = max(digits, len(strconv.Itoa(h.Score)))
	}
	return digits
}

func (m Model) Score() int {
	return m.score
}
