// Package combat implements the rock-paper-scissors battle engine: the outcome
// table, player and enemy state, exchange resolution and enemy progression.
package combat

import "fmt"

// Outcome is the result of one exchange from the acting player's perspective.
type Outcome int

const (
	Lose Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Valid reports whether o is Win, Draw, or Lose.
func (o Outcome) Valid() bool {
	return o == Win || o == Draw || o == Lose
}

// Pair is an ordered (actor, opponent) move pair.
type Pair struct {
	Actor    Move
	Opponent Move
}

// Table maps every ordered move pair to the actor's Outcome.
type Table map[Pair]Outcome

// StandardTable returns the canonical rules: Paper beats Stone, Stone beats
// Scissors, Scissors beats Paper, identical moves draw.
//
// Postcondition: The returned table has an entry for all 9 pairs of Moves().
func StandardTable() Table {
	return Table{
		{Paper, Paper}:       Draw,
		{Paper, Stone}:       Win,
		{Paper, Scissors}:    Lose,
		{Stone, Paper}:       Lose,
		{Stone, Stone}:       Draw,
		{Stone, Scissors}:    Win,
		{Scissors, Paper}:    Win,
		{Scissors, Stone}:    Lose,
		{Scissors, Scissors}: Draw,
	}
}

// Resolve returns the Outcome of actor playing against opponent.
//
// Precondition: t must contain the pair. A missing pair is a broken table and panics.
func (t Table) Resolve(actor, opponent Move) Outcome {
	o, ok := t[Pair{Actor: actor, Opponent: opponent}]
	if !ok {
		panic(fmt.Sprintf("combat: outcome table has no entry for %s vs %s", actor, opponent))
	}
	return o
}
