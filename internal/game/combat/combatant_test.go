package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
)

func TestNewEnemy_Lives(t *testing.T) {
	e, err := combat.NewEnemy(combat.ModeNormal, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Level())
	assert.Equal(t, 3, e.Lives())

	e, err = combat.NewEnemy(combat.ModeHard, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Level())
	assert.Equal(t, 6, e.Lives())
}

func TestNewEnemy_Property_LivesScaleWithLevel(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 1000).Draw(rt, "level")
		normal, err := combat.NewEnemy(combat.ModeNormal, level)
		require.NoError(rt, err)
		hard, err := combat.NewEnemy(combat.ModeHard, level)
		require.NoError(rt, err)
		assert.Equal(rt, level, normal.Lives())
		assert.Equal(rt, level*combat.HardMultiplier, hard.Lives())
	})
}

func TestNewEnemy_Property_NonPositiveLevelRejected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(-1000, 0).Draw(rt, "level")
		mode := rapid.SampledFrom(combat.Modes()).Draw(rt, "mode")
		_, err := combat.NewEnemy(mode, level)
		assert.ErrorIs(rt, err, combat.ErrInvalidLevel)
	})
}

func TestNewEnemy_InvalidMode(t *testing.T) {
	_, err := combat.NewEnemy(combat.Mode("wrong"), 1)
	assert.ErrorIs(t, err, combat.ErrInvalidMode)
}

type constSource int

func (c constSource) Intn(int) int { return int(c) }

func TestEnemy_ChooseMove(t *testing.T) {
	e, err := combat.NewEnemy(combat.ModeNormal, 1)
	require.NoError(t, err)
	assert.Equal(t, combat.Paper, e.ChooseMove(constSource(0)))
	assert.Equal(t, combat.Stone, e.ChooseMove(constSource(1)))
	assert.Equal(t, combat.Scissors, e.ChooseMove(constSource(2)))
}

func TestEnemy_Property_DefeatedExactlyOnLastLife(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 50).Draw(rt, "level")
		mode := rapid.SampledFrom(combat.Modes()).Draw(rt, "mode")
		e, err := combat.NewEnemy(mode, level)
		require.NoError(rt, err)
		n := e.Lives()
		for i := 1; i < n; i++ {
			if e.Damage() {
				rt.Fatalf("defeated early on hit %d of %d", i, n)
			}
		}
		assert.True(rt, e.Damage(), "hit %d must defeat", n)
		assert.Equal(rt, 0, e.Lives())
		assert.False(rt, e.Damage())
		assert.Equal(rt, 0, e.Lives(), "lives must never go negative")
	})
}

func TestNewPlayer(t *testing.T) {
	p, err := combat.NewPlayer("Vlad")
	require.NoError(t, err)
	assert.Equal(t, "Vlad", p.Name())
	assert.Equal(t, combat.PlayerLives, p.Lives())
	assert.Equal(t, 0, p.Score())
}

func TestNewPlayer_InvalidName(t *testing.T) {
	tests := []struct {
		name string
		want error
	}{
		{"", combat.ErrEmptyName},
		{"Vlad Z", combat.ErrWhitespaceInName},
		{" Vlad", combat.ErrWhitespaceInName},
		{"Vlad\t", combat.ErrWhitespaceInName},
	}
	for _, tc := range tests {
		_, err := combat.NewPlayer(tc.name)
		assert.ErrorIs(t, err, tc.want, "name %q", tc.name)
	}
}

func TestPlayer_DamageEliminatesOnLastLife(t *testing.T) {
	p, err := combat.NewPlayer("Vlad")
	require.NoError(t, err)
	assert.False(t, p.Damage())
	assert.Equal(t, 1, p.Lives())
	assert.True(t, p.Damage())
	assert.Equal(t, 0, p.Lives())
	assert.False(t, p.Damage())
	assert.Equal(t, 0, p.Lives())
}

func TestPlayer_Awards(t *testing.T) {
	tests := []struct {
		mode  combat.Mode
		award func(*combat.Player, combat.Mode) error
		want  int
	}{
		{combat.ModeNormal, (*combat.Player).AwardWin, 1},
		{combat.ModeHard, (*combat.Player).AwardWin, 2},
		{combat.ModeNormal, (*combat.Player).AwardKill, 5},
		{combat.ModeHard, (*combat.Player).AwardKill, 10},
	}
	for _, tc := range tests {
		p, err := combat.NewPlayer("Vlad")
		require.NoError(t, err)
		require.NoError(t, tc.award(p, tc.mode))
		assert.Equal(t, tc.want, p.Score(), "mode %s", tc.mode)
	}
}

func TestPlayer_AwardsRejectInvalidMode(t *testing.T) {
	p, err := combat.NewPlayer("Vlad")
	require.NoError(t, err)
	assert.ErrorIs(t, p.AwardWin("wrong"), combat.ErrInvalidMode)
	assert.ErrorIs(t, p.AwardKill("wrong"), combat.ErrInvalidMode)
	assert.Equal(t, 0, p.Score())
}

func TestPlayer_Property_AwardsAreAdditive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		mode := rapid.SampledFrom(combat.Modes()).Draw(rt, "mode")
		wins := rapid.IntRange(0, 30).Draw(rt, "wins")
		kills := rapid.IntRange(0, 10).Draw(rt, "kills")
		p, err := combat.NewPlayer("Vlad")
		require.NoError(rt, err)
		for i := 0; i < wins; i++ {
			require.NoError(rt, p.AwardWin(mode))
		}
		for i := 0; i < kills; i++ {
			require.NoError(rt, p.AwardKill(mode))
		}
		mult, _ := mode.Multiplier()
		assert.Equal(rt, (wins*combat.PointsForFight+kills*combat.PointsForKill)*mult, p.Score())
	})
}

func TestNextEnemy(t *testing.T) {
	e, err := combat.NextEnemy(0, combat.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, 1, e.Lives())

	e, err = combat.NextEnemy(4, combat.ModeHard)
	require.NoError(t, err)
	assert.Equal(t, 5, e.Level())
	assert.Equal(t, 10, e.Lives())

	_, err = combat.NextEnemy(0, "wrong")
	assert.ErrorIs(t, err, combat.ErrInvalidMode)
}
