package combat

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Signal tells the caller how to proceed after an exchange.
type Signal int

const (
	// Continue means the same enemy fights on.
	Continue Signal = iota
	// TargetDefeated means the enemy lost its last life and must be replaced.
	TargetDefeated
	// GameOver means the player lost its last life; the battle accepts no more exchanges.
	GameOver
	// Quit means the player chose to leave; nothing changed.
	Quit
)

// String returns a human-readable signal label.
func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case TargetDefeated:
		return "target defeated"
	case GameOver:
		return "game over"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// MoveSelector is the human-input boundary for the player's move.
type MoveSelector interface {
	// SelectMove blocks until the player picks a move.
	//
	// Postcondition: Returns a valid Move, ErrQuit on an explicit exit, or another error
	// (including ctx.Err()) when no move can be read.
	SelectMove(ctx context.Context) (Move, error)
}

// Exchange records one resolved round between the player and an enemy.
type Exchange struct {
	PlayerMove Move
	EnemyMove  Move
	Outcome    Outcome
	Signal     Signal
}

// Battle resolves exchanges between one player and a succession of enemies.
// It is not safe for concurrent use.
type Battle struct {
	player   *Player
	mode     Mode
	table    Table
	src      Source
	selector MoveSelector
	logger   *zap.Logger
	over     bool
}

// NewBattle creates a Battle for player under mode.
//
// Precondition: player, table, src, selector and logger must be non-nil.
// Postcondition: Returns a ready Battle, or an error wrapping ErrInvalidMode.
func NewBattle(player *Player, mode Mode, table Table, src Source, selector MoveSelector, logger *zap.Logger) (*Battle, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errors.New("battle requires a player")
	}
	return &Battle{
		player:   player,
		mode:     mode,
		table:    table,
		src:      src,
		selector: selector,
		logger:   logger,
	}, nil
}

// Over reports whether the player has been eliminated.
func (b *Battle) Over() bool { return b.over }

// Fight runs one exchange against enemy: the enemy picks at random, the player picks
// through the selector, the table decides, and Apply transitions state.
//
// Precondition: enemy must be non-nil with Lives() > 0.
// Postcondition: On ErrQuit from the selector returns an Exchange with Signal Quit and no
// state change. Returns ErrBattleOver once GameOver has been signalled.
func (b *Battle) Fight(ctx context.Context, enemy *Enemy) (Exchange, error) {
	if b.over {
		return Exchange{}, ErrBattleOver
	}

	enemyMove := enemy.ChooseMove(b.src)
	playerMove, err := b.selector.SelectMove(ctx)
	if err != nil {
		if errors.Is(err, ErrQuit) {
			b.logger.Debug("player quit", zap.String("player", b.player.Name()))
			return Exchange{EnemyMove: enemyMove, Signal: Quit}, nil
		}
		return Exchange{}, fmt.Errorf("selecting player move: %w", err)
	}

	outcome := b.table.Resolve(playerMove, enemyMove)
	sig, err := b.Apply(enemy, outcome)
	if err != nil {
		return Exchange{}, err
	}

	b.logger.Debug("exchange resolved",
		zap.Stringer("player_move", playerMove),
		zap.Stringer("enemy_move", enemyMove),
		zap.Stringer("outcome", outcome),
		zap.Stringer("signal", sig),
		zap.Int("player_lives", b.player.Lives()),
		zap.Int("score", b.player.Score()),
		zap.Int("enemy_level", enemy.Level()),
		zap.Int("enemy_lives", enemy.Lives()),
	)

	return Exchange{
		PlayerMove: playerMove,
		EnemyMove:  enemyMove,
		Outcome:    outcome,
		Signal:     sig,
	}, nil
}

// Apply transitions player and enemy state for outcome.
//   - Win: the player earns the win award and the enemy is damaged; if that defeats the
//     enemy the player also earns the kill bonus and TargetDefeated is returned.
//   - Lose: the player is damaged; elimination returns GameOver and ends the battle.
//   - Draw: nothing changes.
//
// Precondition: enemy must be non-nil.
// Postcondition: Returns ErrInvalidFightResult for any other outcome and ErrBattleOver
// after GameOver; state is unchanged in both cases.
func (b *Battle) Apply(enemy *Enemy, outcome Outcome) (Signal, error) {
	if b.over {
		return GameOver, ErrBattleOver
	}
	switch outcome {
	case Win:
		if err := b.player.AwardWin(b.mode); err != nil {
			return Continue, err
		}
		if !enemy.Damage() {
			return Continue, nil
		}
		if err := b.player.AwardKill(b.mode); err != nil {
			return Continue, err
		}
		return TargetDefeated, nil
	case Lose:
		if !b.player.Damage() {
			return Continue, nil
		}
		b.over = true
		return GameOver, nil
	case Draw:
		return Continue, nil
	}
	return Continue, fmt.Errorf("%w: %d", ErrInvalidFightResult, int(outcome))
}
