package world

import "github.com/vinser/snake/internal/snake"

// Snapshot is a read-only copy of the world for renderers.
type Snapshot struct {
	Width, Height int
	Segments      []snake.Position // head first
	Len           int
	Fruit         snake.Position
	HasFruit      bool
	Dead          bool
	Tick          int
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Width:    w.cfg.Width,
		Height:   w.cfg.Height,
		Segments: w.snake.Segments(),
		Len:      w.snake.Len(),
		Fruit:    w.fruit,
		HasFruit: w.hasFruit,
		Dead:     w.state == Over,
		Tick:     w.tick,
	}
}

// Cells returns the board as rows of cells, row 0 first, for text renderers.
func (s Snapshot) Cells() [][]Cell {
	rows := make([][]Cell, s.Height)
	for y := range rows {
		rows[y] = make([]Cell, s.Width)
	}
	if s.HasFruit {
		rows[s.Fruit.Y][s.Fruit.X] = CellFruit
	}
	// Paint from the tail so the head wins if a dead head overlaps the body.
	for i := len(s.Segments) - 1; i >= 0; i-- {
		p := s.Segments[i]
		if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
			continue
		}
		if i == 0 {
			rows[p.Y][p.X] = CellHead
		} else {
			rows[p.Y][p.X] = CellBody
		}
	}
	return rows
}

// Cell is the content of one board cell.
type Cell int

const (
	CellEmpty Cell = iota
	CellFruit
	CellHead
	CellBody
)
