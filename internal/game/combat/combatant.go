package combat

import (
	"fmt"
	"strings"
	"unicode"
)

// Scoring and life constants.
const (
	// PlayerLives is the number of lives a player starts a game with.
	PlayerLives = 2
	// PointsForFight is awarded for every won exchange (Normal mode).
	PointsForFight = 1
	// PointsForKill is awarded for defeating an enemy (Normal mode).
	PointsForKill = 5
)

// Source is the subset of dice.Source used for enemy move selection.
// Using a local interface avoids a circular import.
type Source interface {
	Intn(n int) int
}

// Enemy is a computer-controlled opponent.
//
// Invariant: 0 <= lives; level >= 1.
type Enemy struct {
	level int
	lives int
}

// NewEnemy creates an enemy at level under mode.
//
// Precondition: mode must be valid; level must be >= 1.
// Postcondition: Lives() == level in Normal mode and level*HardMultiplier in Hard mode,
// or an error wrapping ErrInvalidMode / ErrInvalidLevel is returned.
func NewEnemy(mode Mode, level int) (*Enemy, error) {
	mult, err := mode.Multiplier()
	if err != nil {
		return nil, err
	}
	if level <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return &Enemy{level: level, lives: level * mult}, nil
}

// Level returns the enemy's level.
func (e *Enemy) Level() int { return e.level }

// Lives returns the enemy's remaining lives.
func (e *Enemy) Lives() int { return e.lives }

// ChooseMove picks one of the three moves uniformly at random.
//
// Precondition: src must be non-nil.
func (e *Enemy) ChooseMove(src Source) Move {
	moves := Moves()
	return moves[src.Intn(len(moves))]
}

// Damage removes one life.
//
// Postcondition: Lives() >= 0. Returns true exactly when this call took lives to 0.
func (e *Enemy) Damage() bool {
	return damage(&e.lives)
}

// Player is the human combatant.
//
// Invariant: 0 <= Lives <= PlayerLives; Score never decreases.
type Player struct {
	name  string
	lives int
	score int
}

// ValidateName checks that name is usable as a leaderboard column value.
//
// Postcondition: Returns nil, ErrEmptyName, or ErrWhitespaceInName.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrWhitespaceInName
	}
	return nil
}

// NewPlayer creates a player with PlayerLives lives and a zero score.
//
// Precondition: name must be non-empty and contain no whitespace.
func NewPlayer(name string) (*Player, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Player{name: name, lives: PlayerLives}, nil
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Lives returns the player's remaining lives.
func (p *Player) Lives() int { return p.lives }

// Score returns the player's current score.
func (p *Player) Score() int { return p.score }

// Damage removes one life.
//
// Postcondition: Lives() >= 0. Returns true exactly when this call took lives to 0.
func (p *Player) Damage() bool {
	return damage(&p.lives)
}

// AwardWin adds the per-exchange win points for mode.
//
// Postcondition: Score increases by PointsForFight * multiplier, or is unchanged on error.
func (p *Player) AwardWin(mode Mode) error {
	return p.award(mode, PointsForFight)
}

// AwardKill adds the enemy-defeated bonus for mode.
//
// Postcondition: Score increases by PointsForKill * multiplier, or is unchanged on error.
func (p *Player) AwardKill(mode Mode) error {
	return p.award(mode, PointsForKill)
}

func (p *Player) award(mode Mode, points int) error {
	mult, err := mode.Multiplier()
	if err != nil {
		return err
	}
	p.score += points * mult
	return nil
}

// damage decrements *lives, flooring at zero, and reports whether zero was just reached.
func damage(lives *int) bool {
	if *lives <= 0 {
		return false
	}
	*lives--
	return *lives == 0
}
