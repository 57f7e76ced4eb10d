package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// cryptoSource draws enemy moves from crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns the Source used for live games.
//
// Postcondition: Each of the n choices is equally likely on every call.
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn picks one of n choices, typically the index of the enemy's move.
//
// Precondition: n > 0. A failing crypto/rand reader panics; no move can be picked without it.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("move source: %d choices", n))
	}
	pick, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("move source: reading crypto/rand: %v", err))
	}
	return int(pick.Int64())
}

// seededSource replays the same enemy moves for the same seed using a PCG generator.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source for seed.
//
// Postcondition: Two sources built from the same seed yield the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn picks one of n choices from the seeded sequence.
//
// Precondition: n > 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("move source: %d choices", n))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
