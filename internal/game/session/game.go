// Package session runs one game: a player against a succession of enemies until
// the player is eliminated or quits, then records the result on the leaderboard.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
	"github.com/cory-johannsen/rpsbattle/internal/leaderboard"
)

// Status is a display snapshot of the current game.
type Status struct {
	Player      string
	Mode        combat.Mode
	PlayerLives int
	Score       int
	Level       int
	EnemyLives  int
}

// Display receives everything a player should see during a game.
type Display interface {
	ShowStatus(Status)
	ShowExchange(combat.Exchange)
	ShowMessage(msg string)
}

// Messages shown at game milestones.
const (
	MsgEnemyDown       = "Congratulation! Enemy down."
	MsgNewEnemy        = "New enemy comes."
	MsgYouLose         = "You lose!"
	MsgDuplicateRecord = "Record is already in list"
)

// BoardOpener loads the leaderboard when the game needs to record a result.
type BoardOpener func() (*leaderboard.Leaderboard, error)

// Game is one play-through. It is not safe for concurrent use.
type Game struct {
	id        uuid.UUID
	player    *combat.Player
	mode      combat.Mode
	level     int
	enemy     *combat.Enemy
	battle    *combat.Battle
	display   Display
	openBoard BoardOpener
	logger    *zap.Logger
}

// New creates a game for player under mode and brings on the first (level 1) enemy.
//
// Precondition: player, src, selector, display, openBoard and logger must be non-nil.
// Postcondition: Returns a Game whose Status().Level == 1, or an error wrapping
// combat.ErrInvalidMode.
func New(player *combat.Player, mode combat.Mode, src combat.Source, selector combat.MoveSelector, display Display, openBoard BoardOpener, logger *zap.Logger) (*Game, error) {
	id := uuid.New()
	logger = logger.With(zap.String("session_id", id.String()))

	battle, err := combat.NewBattle(player, mode, combat.StandardTable(), src, selector, logger)
	if err != nil {
		return nil, err
	}
	g := &Game{
		id:        id,
		player:    player,
		mode:      mode,
		battle:    battle,
		display:   display,
		openBoard: openBoard,
		logger:    logger,
	}
	if err := g.nextEnemy(); err != nil {
		return nil, err
	}
	logger.Info("game started",
		zap.String("player", player.Name()),
		zap.Stringer("mode", mode),
	)
	return g, nil
}

// ID returns the unique identifier of this game.
func (g *Game) ID() uuid.UUID { return g.id }

// Enemy returns the current enemy.
func (g *Game) Enemy() *combat.Enemy { return g.enemy }

// Status returns a snapshot for display.
func (g *Game) Status() Status {
	return Status{
		Player:      g.player.Name(),
		Mode:        g.mode,
		PlayerLives: g.player.Lives(),
		Score:       g.player.Score(),
		Level:       g.enemy.Level(),
		EnemyLives:  g.enemy.Lives(),
	}
}

// nextEnemy replaces the current enemy with the one a level above.
func (g *Game) nextEnemy() error {
	e, err := combat.NextEnemy(g.level, g.mode)
	if err != nil {
		return err
	}
	g.level = e.Level()
	g.enemy = e
	g.logger.Debug("enemy spawned",
		zap.Int("level", e.Level()),
		zap.Int("lives", e.Lives()),
	)
	return nil
}

// Play fights exchanges until the player is eliminated or quits.
//
// Postcondition: Returns combat.GameOver after the result has been recorded, or
// combat.Quit with nothing recorded. Errors from move selection (including context
// cancellation) and from the leaderboard are returned wrapped.
func (g *Game) Play(ctx context.Context) (combat.Signal, error) {
	for {
		g.display.ShowStatus(g.Status())

		ex, err := g.battle.Fight(ctx, g.enemy)
		if err != nil {
			return combat.Quit, fmt.Errorf("fighting level %d: %w", g.level, err)
		}
		g.display.ShowExchange(ex)

		switch ex.Signal {
		case combat.Continue:
		case combat.TargetDefeated:
			g.display.ShowMessage(MsgEnemyDown)
			g.logger.Info("enemy defeated",
				zap.Int("level", g.level),
				zap.Int("score", g.player.Score()),
			)
			if err := g.nextEnemy(); err != nil {
				return combat.Quit, err
			}
			g.display.ShowMessage(MsgNewEnemy)
		case combat.GameOver:
			g.display.ShowMessage(MsgYouLose)
			g.logger.Info("game over",
				zap.String("player", g.player.Name()),
				zap.Int("score", g.player.Score()),
				zap.Int("level", g.level),
			)
			err := g.record()
			g.display.ShowStatus(g.Status())
			return combat.GameOver, err
		case combat.Quit:
			g.logger.Info("game abandoned", zap.Int("score", g.player.Score()))
			return combat.Quit, nil
		}
	}
}

// record adds the player's result to the leaderboard and saves it. A duplicate
// record is announced and skipped; it is not an error.
func (g *Game) record() error {
	board, err := g.openBoard()
	if err != nil {
		return fmt.Errorf("opening leaderboard: %w", err)
	}
	if err := board.AddPlayer(g.player, g.mode); err != nil {
		if errors.Is(err, leaderboard.ErrDuplicateRecord) {
			g.logger.Warn("duplicate leaderboard record skipped", zap.Error(err))
			g.display.ShowMessage(MsgDuplicateRecord)
			return nil
		}
		return fmt.Errorf("recording score: %w", err)
	}
	if err := board.Save(); err != nil {
		return fmt.Errorf("saving leaderboard: %w", err)
	}
	return nil
}
