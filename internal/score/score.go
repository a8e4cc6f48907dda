package score

// FruitPoints is awarded for every fruit eaten.
const FruitPoints = 10

type Score struct {
	value  int
	fruits int
	high   int
	nick   string
}

func NewScore() *Score {
	return &Score{}
}

// AddFruit counts one eaten fruit.
func (s *Score) AddFruit() {
	s.fruits++
	s.value += FruitPoints
}

func (s *Score) Get() int {
	return s.value
}

func (s *Score) Fruits() int {
	return s.fruits
}

func (s *Score) Reset() {
	s.value = 0
	s.fruits = 0
}

// IsHigh reports whether the current score beats the best one so far.
func (s *Score) IsHigh() bool {
	return s.value > s.high
}

func (s *Score) GetHigh() int {
	return s.high
}

func (s *Score) SetHigh(value int, nick string) {
	s.high = value
	s.nick = nick
}

func (s *Score) GetHighNick() string {
	return s.nick
}
