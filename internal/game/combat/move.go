package combat

// Move is one of the three attacks available to both combatants.
type Move int

const (
	Paper Move = iota + 1
	Stone
	Scissors
)

// Moves returns the three moves in menu order.
func Moves() []Move {
	return []Move{Paper, Stone, Scissors}
}

// Valid reports whether m is Paper, Stone, or Scissors.
func (m Move) Valid() bool {
	return m >= Paper && m <= Scissors
}

// String returns a human-readable move label.
func (m Move) String() string {
	switch m {
	case Paper:
		return "Paper"
	case Stone:
		return "Stone"
	case Scissors:
		return "Scissors"
	default:
		return "unknown"
	}
}
