// Package world is the fixed-step snake simulation: movement, collisions and growth.
//
// A World owns the snake body and the fruit. Each call to Step advances it by
// exactly one tick using one direction taken from its Director and returns what
// happened as a list of events. Nothing else mutates the body; renderers read
// Snapshot, and an external Spawner places fruit through SetFruit.
package world

import (
	"errors"
	"fmt"

	"github.com/vinser/snake/internal/snake"
)

const (
	// Board size of the classic game.
	DefaultWidth  = 15
	DefaultHeight = 15

	// The spawn body occupies (2,3)-(3,3) and needs room to turn.
	MinWidth  = 5
	MinHeight = 5
	MaxSize   = 60
)

var (
	ErrInvalidConfig = errors.New("world: invalid board size")
	ErrOutOfBounds   = errors.New("world: position is outside the board")
	ErrOnSnake       = errors.New("world: position is occupied by the snake")
	ErrFruitExists   = errors.New("world: fruit already placed")
)

// Config holds the board dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the classic 15x15 board.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate rejects boards the spawn body does not fit on.
func (c Config) Validate() error {
	if c.Width < MinWidth || c.Width > MaxSize {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidConfig, c.Width, MinWidth, MaxSize)
	}
	if c.Height < MinHeight || c.Height > MaxSize {
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidConfig, c.Height, MinHeight, MaxSize)
	}
	return nil
}

// Director yields the direction to move in, once per tick.
type Director interface {
	Next() snake.Direction
}

// State of the simulation.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// World is the simulation core.
type World struct {
	cfg      Config
	dir      Director
	snake    *snake.Snake
	fruit    snake.Position
	hasFruit bool
	state    State
	tick     int
	lastTail snake.Position
}

// New returns a running world with the spawn snake and no fruit.
func New(cfg Config, dir Director) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWorld(cfg, dir, snake.Spawn()), nil
}

func newWorld(cfg Config, dir Director, s *snake.Snake) *World {
	return &World{
		cfg:      cfg,
		dir:      dir,
		snake:    s,
		lastTail: s.Tail(),
	}
}

// Step advances the world by one tick and returns the events it produced.
// Once the world is over Step does nothing.
func (w *World) Step() []Event {
	if w.state == Over {
		return nil
	}
	w.tick++

	old := w.snake.Segments()
	head := old[0].Step(w.dir.Next())

	// Collisions are checked against the body before it moves, so the cell the
	// tail is about to leave still counts as occupied.
	if cause := w.collision(head, old); cause != CauseNone {
		w.state = Over
		return []Event{{Kind: Died, Tick: w.tick, Pos: head, Cause: cause}}
	}

	w.lastTail = w.snake.Advance(head)

	if !w.hasFruit || head != w.fruit {
		return nil
	}
	w.hasFruit = false
	// Growth happens in the same tick, into the cell the tail just left.
	w.snake.Grow(w.lastTail)
	return []Event{{Kind: Eaten, Tick: w.tick, Pos: head}}
}

func (w *World) collision(head snake.Position, body []snake.Position) Cause {
	if !w.inBounds(head) {
		return CauseWall
	}
	for _, seg := range body {
		if seg == head {
			return CauseSelf
		}
	}
	return CauseNone
}

func (w *World) inBounds(p snake.Position) bool {
	return p.X >= 0 && p.X < w.cfg.Width && p.Y >= 0 && p.Y < w.cfg.Height
}

// NeedsFruit reports whether a spawner should place a fruit.
func (w *World) NeedsFruit() bool {
	return !w.hasFruit && w.state == Running
}

// SetFruit places the fruit at p.
func (w *World) SetFruit(p snake.Position) error {
	switch {
	case w.hasFruit:
		return ErrFruitExists
	case !w.inBounds(p):
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	case w.snake.Occupies(p):
		return fmt.Errorf("%w: (%d,%d)", ErrOnSnake, p.X, p.Y)
	}
	w.fruit = p
	w.hasFruit = true
	return nil
}

// Fruit returns the fruit position and whether there is one.
func (w *World) Fruit() (snake.Position, bool) {
	return w.fruit, w.hasFruit
}

// Occupied reports whether the snake covers p.
func (w *World) Occupied(p snake.Position) bool {
	return w.snake.Occupies(p)
}

// Size returns the board dimensions.
func (w *World) Size() (width, height int) {
	return w.cfg.Width, w.cfg.Height
}

// State returns the simulation state.
func (w *World) State() State {
	return w.state
}

// Over reports whether the game has ended.
func (w *World) Over() bool {
	return w.state == Over
}

// Ticks returns the number of steps taken while running.
func (w *World) Ticks() int {
	return w.tick
}

// Len returns the snake length.
func (w *World) Len() int {
	return w.snake.Len()
}
