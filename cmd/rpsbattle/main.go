// Package main runs the rock-paper-scissors battler in the terminal.
// It wires together configuration, logging, prompt content, the console and the leaderboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpsbattle/content"
	"github.com/cory-johannsen/rpsbattle/internal/config"
	"github.com/cory-johannsen/rpsbattle/internal/frontend/console"
	"github.com/cory-johannsen/rpsbattle/internal/frontend/prompt"
	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
	"github.com/cory-johannsen/rpsbattle/internal/game/dice"
	"github.com/cory-johannsen/rpsbattle/internal/game/session"
	"github.com/cory-johannsen/rpsbattle/internal/leaderboard"
	"github.com/cory-johannsen/rpsbattle/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (defaults and RPS_* environment only when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, newSource(cfg.Game, logger), os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Fatal("starting game", zap.Error(err))
	}
	err = a.run(ctx)
	_ = a.close()
	if err != nil {
		logger.Error("game failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// newSource returns the enemy move source: seeded when configured, crypto/rand otherwise.
func newSource(cfg config.GameConfig, logger *zap.Logger) combat.Source {
	var src dice.Source
	if cfg.Seed != 0 {
		src = dice.NewSeededSource(cfg.Seed)
	} else {
		src = dice.NewCryptoSource()
	}
	return dice.NewLoggedRoller(src, logger.Named("dice"))
}

// loadPrompts reads prompts from dir, or the built-in set when dir is empty.
func loadPrompts(dir string) (*prompt.Provider, error) {
	var fsys fs.FS = content.PromptFS()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	p, err := prompt.Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}
	return p, nil
}

type app struct {
	cfg     config.Config
	src     combat.Source
	console *console.Console
	logger  *zap.Logger
}

func newApp(cfg config.Config, src combat.Source, in io.Reader, out io.Writer, logger *zap.Logger) (*app, error) {
	prompts, err := loadPrompts(cfg.Content.PromptsDir)
	if err != nil {
		return nil, err
	}
	con, err := console.New(prompts, in, out, cfg.Game.Color, logger.Named("console"))
	if err != nil {
		return nil, fmt.Errorf("starting console: %w", err)
	}
	return &app{cfg: cfg, src: src, console: con, logger: logger}, nil
}

// close stops the console's input goroutine.
func (a *app) close() error {
	return a.console.Close()
}

func (a *app) openBoard() (*leaderboard.Leaderboard, error) {
	return leaderboard.Load(a.cfg.Leaderboard.Path, a.cfg.Leaderboard.MaxRecords, a.logger.Named("leaderboard"))
}

// run shows the main menu until the player exits, input ends, or ctx is cancelled.
//
// Postcondition: Returns nil on any of those; returns leaderboard and other I/O errors.
func (a *app) run(ctx context.Context) error {
	for {
		choice, err := a.console.MainMenu(ctx)
		if err != nil {
			return a.finish(err)
		}
		switch choice {
		case console.MenuPlay:
			quit, err := a.play(ctx)
			if err != nil || quit {
				return a.finish(err)
			}
		case console.MenuScores:
			if err := a.showScores(); err != nil {
				return err
			}
		case console.MenuExit:
			return a.finish(nil)
		}
	}
}

// play runs one game and reports whether the player asked to leave.
func (a *app) play(ctx context.Context) (bool, error) {
	player, err := a.console.ReadPlayer(ctx)
	if err != nil {
		return false, err
	}
	mode, err := a.console.ChooseMode(ctx)
	if err != nil {
		return false, err
	}
	g, err := session.New(player, mode, a.src, a.console, a.console, a.openBoard, a.logger.Named("session"))
	if err != nil {
		return false, err
	}
	sig, err := g.Play(ctx)
	if err != nil {
		return false, err
	}
	return sig == combat.Quit, nil
}

func (a *app) showScores() error {
	board, err := a.openBoard()
	if err != nil {
		return err
	}
	if _, err := board.WriteTo(a.console); err != nil {
		return fmt.Errorf("showing leaderboard: %w", err)
	}
	return nil
}

// finish says goodbye unless err is a real failure. End of input and cancellation
// end the program the same way the exit choice does.
func (a *app) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		a.logger.Info("input closed", zap.Error(err))
	}
	a.console.ShowMessage(console.MsgGoodbye)
	return nil
}
