package combat

// NextEnemy returns the enemy that follows one at level.
// The session counter starts at 0, so the first enemy of a game is level 1.
//
// Precondition: level >= 0; mode must be valid.
// Postcondition: Returns an Enemy with Level() == level+1, or the NewEnemy error.
func NextEnemy(level int, mode Mode) (*Enemy, error) {
	return NewEnemy(mode, level+1)
}
