package input

import "github.com/vinser/snake/internal/snake"

// FromKey maps a key name as reported by the terminal to a direction.
func FromKey(key string) (snake.Direction, bool) {
	switch key {
	case "up", "w", "W":
		return snake.Up, true
	case "down", "s", "S":
		return snake.Down, true
	case "left", "a", "A":
		return snake.Left, true
	case "right", "d", "D":
		return snake.Right, true
	}
	return 0, false
}
