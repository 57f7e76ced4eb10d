package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpsbattle/internal/game/dice"
)

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(3) is in [0, 3).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(0) })
}

func TestSeededSource_Property_SameSeedSameSequence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		n := rapid.IntRange(1, 50).Draw(rt, "n")
		a := dice.NewSeededSource(seed)
		b := dice.NewSeededSource(seed)
		for i := 0; i < 20; i++ {
			va, vb := a.Intn(n), b.Intn(n)
			if va != vb {
				rt.Fatalf("draw %d diverged: %d != %d", i, va, vb)
			}
			if va < 0 || va >= n {
				rt.Fatalf("draw %d out of range [0,%d): %d", i, n, va)
			}
		}
	})
}

func TestSeededSource_CoversAllFaces(t *testing.T) {
	src := dice.NewSeededSource(42)
	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		seen[src.Intn(3)] = true
	}
	assert.Len(t, seen, 3, "300 draws of a 3-sided die should hit every face")
}

type constSource int

func (c constSource) Intn(int) int { return int(c) }

func TestLoggedRoller_ReturnsWrappedValueAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(constSource(2), zap.New(core))

	assert.Equal(t, 2, r.Intn(3))

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["sides"])
	assert.EqualValues(t, 2, fields["result"])
}
