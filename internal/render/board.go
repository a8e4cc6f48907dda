package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snake/internal/style"
	"github.com/vinser/snake/internal/world"
)

// Sprite holds the glyph rows drawn for each kind of cell.
// All rows of a sprite have the same display width.
type Sprite struct {
	Empty []string
	Body  []string
	Head  []string
	Fruit []string
}

var sprites = map[string]Sprite{
	"small": {
		Empty: []string{" "},
		Body:  []string{"o"},
		Head:  []string{"@"},
		Fruit: []string{"*"},
	},
	"medium": {
		Empty: []string{"  "},
		Body:  []string{"▓▓"},
		Head:  []string{"██"},
		Fruit: []string{"<>"},
	},
	"large": {
		Empty: []string{"    ", "    "},
		Body:  []string{"▓▓▓▓", "▓▓▓▓"},
		Head:  []string{"█▀▀█", "████"},
		Fruit: []string{" ▄▄ ", " ▀▀ "},
	},
}

// SpriteFor returns the sprite of the named size, falling back to medium.
func SpriteFor(size string) Sprite {
	if s, ok := sprites[size]; ok {
		return s
	}
	return sprites["medium"]
}

// Width returns the display width of one cell.
func (s Sprite) Width() int {
	return lipgloss.Width(s.Empty[0])
}

// Height returns the number of terminal rows of one cell.
func (s Sprite) Height() int {
	return len(s.Empty)
}

// Board draws the snapshot with the given sprite and styles. A dead snake is
// drawn in the dead colour.
func Board(snap world.Snapshot, sprite Sprite, bs style.BoardStyles) string {
	cells := snap.Cells()
	var b strings.Builder
	for y, row := range cells {
		for line := 0; line < sprite.Height(); line++ {
			for _, cell := range row {
				glyph, st := sprite.Empty[line], bs.Empty
				switch cell {
				case world.CellFruit:
					glyph, st = sprite.Fruit[line], bs.Fruit
				case world.CellHead:
					glyph, st = sprite.Head[line], bs.Head
				case world.CellBody:
					glyph, st = sprite.Body[line], bs.Body
				}
				if snap.Dead && (cell == world.CellHead || cell == world.CellBody) {
					st = bs.Dead
				}
				b.WriteString(st.Render(glyph))
			}
			if y < len(cells)-1 || line < sprite.Height()-1 {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
