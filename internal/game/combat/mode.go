package combat

import "fmt"

// Mode is the game difficulty.
type Mode string

const (
	ModeNormal Mode = "Normal"
	ModeHard   Mode = "Hard"
)

// HardMultiplier scales score awards and enemy lives in Hard mode.
const HardMultiplier = 2

// Modes returns every recognised mode in menu order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeHard}
}

// ParseMode converts s into a Mode.
//
// Postcondition: Returns a valid Mode, or an error wrapping ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate reports whether m is one of the recognised modes.
//
// Postcondition: Returns nil, or an error wrapping ErrInvalidMode.
func (m Mode) Validate() error {
	switch m {
	case ModeNormal, ModeHard:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
}

// Multiplier returns the award and enemy-lives multiplier for m.
//
// Postcondition: Returns 1 for Normal, HardMultiplier for Hard, or an error wrapping ErrInvalidMode.
func (m Mode) Multiplier() (int, error) {
	switch m {
	case ModeNormal:
		return 1, nil
	case ModeHard:
		return HardMultiplier, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
}

// String returns the mode name as written to the leaderboard.
func (m Mode) String() string { return string(m) }
