package world

import (
	"math/rand"

	"github.com/vinser/snake/internal/snake"
)

// Spawner places fruit on free cells at random.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner with a reproducible sequence for seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Spawn places a fruit if the world asks for one. It rolls random cells until
// one is off the snake. It returns false when no fruit was placed.
func (s *Spawner) Spawn(w *World) (snake.Position, bool) {
	if !w.NeedsFruit() {
		return snake.Position{}, false
	}
	width, height := w.Size()
	if w.Len() >= width*height {
		return snake.Position{}, false // board is full
	}
	for {
		p := snake.Position{X: s.rng.Intn(width), Y: s.rng.Intn(height)}
		if w.Occupied(p) {
			continue
		}
		if err := w.SetFruit(p); err != nil {
			return snake.Position{}, false
		}
		return p, true
	}
}
