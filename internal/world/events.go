package world

import (
	"fmt"

	"github.com/vinser/snake/internal/snake"
)

// EventKind identifies what happened during a step.
type EventKind int

const (
	Eaten EventKind = iota + 1 // head reached the fruit
	Died                       // head hit the wall or the body
)

func (k EventKind) String() string {
	switch k {
	case Eaten:
		return "eaten"
	case Died:
		return "died"
	}
	return "unknown"
}

// Cause tells why the snake died.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall-collision"
	case CauseSelf:
		return "self-collision"
	}
	return "none"
}

// Event is emitted by Step for the layers around the simulation (sound, score, UI).
type Event struct {
	Kind  EventKind
	Tick  int
	Pos   snake.Position // fruit cell for Eaten, the cell the head tried to enter for Died
	Cause Cause          // set for Died only
}

func (e Event) String() string {
	if e.Kind == Died {
		return fmt.Sprintf("tick %d: %s at (%d,%d), %s", e.Tick, e.Kind, e.Pos.X, e.Pos.Y, e.Cause)
	}
	return fmt.Sprintf("tick %d: %s at (%d,%d)", e.Tick, e.Kind, e.Pos.X, e.Pos.Y)
}
