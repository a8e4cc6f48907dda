package style

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

var (
	// General UI
	SplashSnake = lipgloss.NewStyle().Foreground(lipgloss.Color("#8CA0D6"))
	SplashFruit = lipgloss.NewStyle().Foreground(lipgloss.Color("#AA4586"))
	SplashTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green

	SetupTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	PlayHeader        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))  // Green
	Paused            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228"))
	GameOver          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D00000"))

	HighScore = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

// Hex formats the colour as #RRGGBB.
func (c RGB) Hex() string {
	return GenerateHexColor(c.R, c.G, c.B)
}

// Color converts to a lipgloss colour.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// GenerateHexColor generates hexadecimal string for a given RGB values. r, g, b should be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

// Blend mixes a and b; t=0 gives a, t=1 gives b.
func Blend(a, b RGB, t float64) RGB {
	t = max(0, min(1, t))
	mix := func(x, y int) int {
		return x + int(math.Round(float64(y-x)*t))
	}
	return RGB{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}

func clamp(v int) int {
	return max(0, min(255, v))
}
