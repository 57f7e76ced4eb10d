package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every draw is logged at debug level.
// Roller itself satisfies Source.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn draws a value in [0, n) from the wrapped source and logs it.
//
// Precondition: n > 0.
// Postcondition: Returns exactly what the wrapped Source returned.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("dice roll",
		zap.Int("sides", n),
		zap.Int("result", v),
	)
	return v
}
