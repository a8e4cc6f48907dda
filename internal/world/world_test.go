package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vinser/snake/internal/input"
	"github.com/vinser/snake/internal/snake"
)

// script replays fixed directions and then repeats the last one.
type script []snake.Direction

func (s *script) Next() snake.Direction {
	d := (*s)[0]
	if len(*s) > 1 {
		*s = (*s)[1:]
	}
	return d
}

func moving(d snake.Direction) *script {
	return &script{d}
}

func pos(x, y int) snake.Position {
	return snake.Position{X: x, Y: y}
}

func assertSegments(t *testing.T, w *World, want ...snake.Position) {
	t.Helper()
	got := w.Snapshot().Segments
	if len(got) != len(want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segments = %v, want %v", got, want)
		}
	}
}

func mustWorld(t *testing.T, dir Director) *World {
	t.Helper()
	w, err := New(DefaultConfig(), dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestStepMovesRight(t *testing.T) {
	w := mustWorld(t, input.NewQueue())

	if events := w.Step(); len(events) != 0 {
		t.Fatalf("unexpected events %v", events)
	}
	assertSegments(t, w, pos(4, 3), pos(3, 3))
	if w.Over() {
		t.Fatal("world over after a free move")
	}
}

func TestStepEatsAndGrows(t *testing.T) {
	w := mustWorld(t, input.NewQueue())
	if err := w.SetFruit(pos(4, 3)); err != nil {
		t.Fatalf("SetFruit: %v", err)
	}

	events := w.Step()
	if len(events) != 1 || events[0].Kind != Eaten || events[0].Pos != pos(4, 3) {
		t.Fatalf("events = %v, want one Eaten at (4,3)", events)
	}
	if _, ok := w.Fruit(); ok {
		t.Error("fruit still present after being eaten")
	}
	if !w.NeedsFruit() {
		t.Error("world does not ask for a new fruit")
	}
	// The new tail goes where the tail was before the shift.
	assertSegments(t, w, pos(4, 3), pos(3, 3), pos(2, 3))
	if snap := w.Snapshot(); snap.Len != 3 || snap.Len != len(snap.Segments) {
		t.Errorf("snapshot length %d with %d segments, want 3", snap.Len, len(snap.Segments))
	}
}

func TestStepIntoWall(t *testing.T) {
	w := newWorld(DefaultConfig(), moving(snake.Left), snake.New(pos(0, 3), pos(1, 3)))

	events := w.Step()
	if len(events) != 1 || events[0].Kind != Died || events[0].Cause != CauseWall {
		t.Fatalf("events = %v, want one Died by wall", events)
	}
	if events[0].Pos != pos(-1, 3) {
		t.Errorf("died at %v, want (-1,3)", events[0].Pos)
	}
	if w.State() != Over {
		t.Errorf("state = %s, want over", w.State())
	}
	assertSegments(t, w, pos(0, 3), pos(1, 3))
}

func TestWallsOnEverySide(t *testing.T) {
	cfg := Config{Width: 6, Height: 7}
	tests := []struct {
		name string
		body []snake.Position
		dir  snake.Direction
	}{
		{"top", []snake.Position{pos(2, 0), pos(2, 1)}, snake.Up},
		{"bottom", []snake.Position{pos(2, 6), pos(2, 5)}, snake.Down},
		{"left", []snake.Position{pos(0, 2), pos(1, 2)}, snake.Left},
		{"right", []snake.Position{pos(5, 2), pos(4, 2)}, snake.Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(cfg, moving(tt.dir), snake.New(tt.body...))
			events := w.Step()
			if len(events) != 1 || events[0].Cause != CauseWall {
				t.Fatalf("events = %v, want wall collision", events)
			}
		})
	}
}

func TestReversalIsIgnored(t *testing.T) {
	q := input.NewQueue()
	w := newWorld(DefaultConfig(), q, snake.New(pos(5, 5), pos(4, 5), pos(3, 5)))

	q.Push(snake.Left)
	if events := w.Step(); len(events) != 0 {
		t.Fatalf("events = %v, want none", events)
	}
	assertSegments(t, w, pos(6, 5), pos(5, 5), pos(4, 5))
}

func TestSelfCollision(t *testing.T) {
	// Head at (5,5) turning down into its own body at (5,6).
	body := []snake.Position{pos(5, 5), pos(4, 5), pos(4, 6), pos(5, 6), pos(6, 6)}
	w := newWorld(DefaultConfig(), moving(snake.Down), snake.New(body...))

	events := w.Step()
	if len(events) != 1 || events[0].Kind != Died || events[0].Cause != CauseSelf {
		t.Fatalf("events = %v, want self collision", events)
	}
	assertSegments(t, w, body...)
}

func TestMovingIntoTailCellIsFatal(t *testing.T) {
	// A 2x2 loop: the head chases the tail into the cell it is leaving.
	body := []snake.Position{pos(5, 5), pos(5, 6), pos(4, 6), pos(4, 5)}
	w := newWorld(DefaultConfig(), moving(snake.Left), snake.New(body...))

	events := w.Step()
	if len(events) != 1 || events[0].Cause != CauseSelf {
		t.Fatalf("events = %v, want self collision on tail cell", events)
	}
}

func TestOverIsTerminal(t *testing.T) {
	w := newWorld(DefaultConfig(), moving(snake.Left), snake.New(pos(0, 3), pos(1, 3)))
	w.Step()
	ticks := w.Ticks()

	for i := 0; i < 5; i++ {
		if events := w.Step(); events != nil {
			t.Fatalf("step %d after game over returned %v", i, events)
		}
	}
	assertSegments(t, w, pos(0, 3), pos(1, 3))
	if w.Ticks() != ticks {
		t.Errorf("ticks advanced after game over: %d -> %d", ticks, w.Ticks())
	}
	if w.NeedsFruit() {
		t.Error("over world asks for fruit")
	}
	if !w.Snapshot().Dead {
		t.Error("snapshot not dead")
	}
}

func TestSetFruit(t *testing.T) {
	w := mustWorld(t, input.NewQueue())

	tests := []struct {
		name string
		p    snake.Position
		want error
	}{
		{"outside", pos(15, 0), ErrOutOfBounds},
		{"negative", pos(0, -1), ErrOutOfBounds},
		{"on head", pos(3, 3), ErrOnSnake},
		{"on tail", pos(2, 3), ErrOnSnake},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := w.SetFruit(tt.p); !errors.Is(err, tt.want) {
				t.Errorf("SetFruit(%v) = %v, want %v", tt.p, err, tt.want)
			}
		})
	}

	if err := w.SetFruit(pos(7, 7)); err != nil {
		t.Fatalf("SetFruit on free cell: %v", err)
	}
	if err := w.SetFruit(pos(8, 8)); !errors.Is(err, ErrFruitExists) {
		t.Errorf("second fruit: %v, want ErrFruitExists", err)
	}
	if f, ok := w.Fruit(); !ok || f != pos(7, 7) {
		t.Errorf("Fruit() = %v, %v", f, ok)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg Config
		ok  bool
	}{
		{DefaultConfig(), true},
		{Config{Width: MinWidth, Height: MinHeight}, true},
		{Config{Width: MaxSize, Height: MaxSize}, true},
		{Config{Width: 0, Height: 15}, false},
		{Config{Width: 15, Height: -1}, false},
		{Config{Width: 4, Height: 15}, false},
		{Config{Width: 15, Height: MaxSize + 1}, false},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("Validate(%+v) = %v, want ok=%v", tt.cfg, err, tt.ok)
		}
		if err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Validate(%+v) error %v does not wrap ErrInvalidConfig", tt.cfg, err)
		}
		if _, err := New(tt.cfg, input.NewQueue()); (err == nil) != tt.ok {
			t.Errorf("New(%+v) = %v, want ok=%v", tt.cfg, err, tt.ok)
		}
	}
}

// Random games must keep the board invariants on every tick.
func TestRandomGamesKeepInvariants(t *testing.T) {
	dirs := []snake.Direction{snake.Up, snake.Down, snake.Left, snake.Right}
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		q := input.NewQueue()
		cfg := Config{Width: 8, Height: 8}
		w, err := New(cfg, q)
		if err != nil {
			t.Fatal(err)
		}
		spawner := NewSpawner(seed)

		for tick := 0; tick < 500 && !w.Over(); tick++ {
			spawner.Spawn(w)
			if rng.Intn(3) == 0 {
				q.Push(dirs[rng.Intn(len(dirs))])
			}
			before := w.Snapshot()
			events := w.Step()
			after := w.Snapshot()

			if w.Over() {
				if len(events) != 1 || events[0].Kind != Died {
					t.Fatalf("seed %d tick %d: over without a single Died: %v", seed, tick, events)
				}
				continue
			}

			seen := make(map[snake.Position]bool)
			for _, p := range after.Segments {
				if p.X < 0 || p.X >= cfg.Width || p.Y < 0 || p.Y >= cfg.Height {
					t.Fatalf("seed %d tick %d: segment %v out of bounds", seed, tick, p)
				}
				if seen[p] {
					t.Fatalf("seed %d tick %d: segments overlap at %v", seed, tick, p)
				}
				seen[p] = true
			}

			grew := len(events) == 1 && events[0].Kind == Eaten
			wantLen := len(before.Segments)
			if grew {
				wantLen++
				if tail := after.Segments[len(after.Segments)-1]; tail != before.Segments[len(before.Segments)-1] {
					t.Fatalf("seed %d tick %d: grown tail %v, want pre-step tail %v", seed, tick, tail, before.Segments[len(before.Segments)-1])
				}
			}
			if len(after.Segments) != wantLen {
				t.Fatalf("seed %d tick %d: length %d, want %d", seed, tick, len(after.Segments), wantLen)
			}
		}
	}
}

func TestSnapshotCells(t *testing.T) {
	w := mustWorld(t, input.NewQueue())
	if err := w.SetFruit(pos(10, 1)); err != nil {
		t.Fatal(err)
	}
	cells := w.Snapshot().Cells()

	if len(cells) != DefaultHeight || len(cells[0]) != DefaultWidth {
		t.Fatalf("cells are %dx%d", len(cells[0]), len(cells))
	}
	if cells[3][3] != CellHead || cells[3][2] != CellBody || cells[1][10] != CellFruit {
		t.Error("cells do not match the world")
	}
	if cells[0][0] != CellEmpty {
		t.Error("corner is not empty")
	}
}
