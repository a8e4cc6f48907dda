// Package input turns key presses into exactly one direction per simulation tick.
//
// Key presses may arrive faster than ticks. They are buffered in order, repeated
// presses collapse, and a press that would turn the snake back onto its own neck is
// dropped before it can reach the simulation.
package input

import (
	"sync"

	"github.com/vinser/snake/internal/snake"
)

// DefaultDirection is the committed direction of a fresh queue.
const DefaultDirection = snake.Right

// Queue buffers directional intents between ticks.
// It is safe for one goroutine to Push while another calls Next.
type Queue struct {
	mu      sync.Mutex
	current snake.Direction   // committed direction
	pending []snake.Direction // accepted but not yet committed
	visited bool              // current was already returned by Next since it was set
}

// NewQueue returns a queue committed to DefaultDirection.
func NewQueue() *Queue {
	return &Queue{current: DefaultDirection}
}

// Push offers a new direction. It is dropped when it repeats or reverses the
// most recently accepted direction.
func (q *Queue) Push(d snake.Direction) {
	q.mu.Lock()
	defer q.mu.Unlock()

	last := q.current
	if n := len(q.pending); n > 0 {
		last = q.pending[n-1]
	}
	if d == last || d == last.Opposite() {
		return
	}

	if q.visited {
		// visited implies an empty queue: the committed direction was already
		// applied, so the new one can take over right away.
		q.current = d
		q.visited = false
		return
	}
	q.pending = append(q.pending, d)
}

// Next returns the direction for this tick and advances the queue by one.
func (q *Queue) Next() snake.Direction {
	q.mu.Lock()
	defer q.mu.Unlock()

	ret := q.current
	if len(q.pending) > 0 {
		q.current = q.pending[0]
		q.pending = q.pending[1:]
	} else {
		q.visited = true
	}
	return ret
}

// Current returns the committed direction.
func (q *Queue) Current() snake.Direction {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}
