package snake

// Snake is the ordered body of the snake, head first.
type Snake struct {
	segments []Position
}

// Spawn returns the snake every game starts with: head at (3,3), one segment behind it.
func Spawn() *Snake {
	return New(Position{X: 3, Y: 3}, Position{X: 2, Y: 3})
}

// New returns a snake made of the given segments, head first.
func New(segments ...Position) *Snake {
	body := make([]Position, len(segments))
	copy(body, segments)
	return &Snake{segments: body}
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.segments[0]
}

// Tail returns the last segment position.
func (s *Snake) Tail() Position {
	return s.segments[len(s.segments)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance moves the head to head and pulls every other segment into the
// cell of the segment ahead of it. It returns where the tail was before the move.
func (s *Snake) Advance(head Position) Position {
	oldTail := s.Tail()
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = head
	return oldTail
}

// Grow appends a new tail segment at p.
func (s *Snake) Grow(p Position) {
	s.segments = append(s.segments, p)
}
