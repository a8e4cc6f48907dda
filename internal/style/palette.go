package style

import "github.com/charmbracelet/lipgloss"

// Palette colours the board.
type Palette struct {
	Background RGB
	Snake      RGB
	Head       RGB
	DeadSnake  RGB
	Fruit      RGB
	Text       RGB
}

var (
	DayPalette = Palette{
		Background: RGB{0xE8, 0xF7, 0xEE},
		Snake:      RGB{0x8C, 0xA0, 0xD6},
		Head:       RGB{0x5C, 0x70, 0xB0},
		DeadSnake:  RGB{0xD0, 0x00, 0x00},
		Fruit:      RGB{0xAA, 0x45, 0x86},
		Text:       RGB{0x1C, 0x31, 0x44},
	}
	NightPalette = Palette{
		Background: RGB{0x10, 0x18, 0x20},
		Snake:      RGB{0x5A, 0x6F, 0xA8},
		Head:       RGB{0x8C, 0xA0, 0xD6},
		DeadSnake:  RGB{0xA0, 0x00, 0x00},
		Fruit:      RGB{0xC4, 0x5A, 0xA0},
		Text:       RGB{0xC8, 0xD6, 0xE5},
	}
)

// Shade returns the palette for the given daylight intensity in [0, 1].
func Shade(intensity float64) Palette {
	n, d := NightPalette, DayPalette
	return Palette{
		Background: Blend(n.Background, d.Background, intensity),
		Snake:      Blend(n.Snake, d.Snake, intensity),
		Head:       Blend(n.Head, d.Head, intensity),
		DeadSnake:  Blend(n.DeadSnake, d.DeadSnake, intensity),
		Fruit:      Blend(n.Fruit, d.Fruit, intensity),
		Text:       Blend(n.Text, d.Text, intensity),
	}
}

// BoardStyles are the cell styles derived from a palette.
type BoardStyles struct {
	Empty lipgloss.Style
	Body  lipgloss.Style
	Head  lipgloss.Style
	Dead  lipgloss.Style
	Fruit lipgloss.Style
	Text  lipgloss.Style
}

func (p Palette) Board() BoardStyles {
	bg := p.Background.Color()
	cell := lipgloss.NewStyle().Background(bg)
	return BoardStyles{
		Empty: cell,
		Body:  cell.Foreground(p.Snake.Color()),
		Head:  cell.Foreground(p.Head.Color()).Bold(true),
		Dead:  cell.Foreground(p.DeadSnake.Color()),
		Fruit: cell.Foreground(p.Fruit.Color()),
		Text:  lipgloss.NewStyle().Foreground(p.Text.Color()),
	}
}
