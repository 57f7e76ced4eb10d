// Package console is the line-based terminal frontend: it renders menus and game
// events to a writer and reads validated player choices from a reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpsbattle/internal/frontend/prompt"
	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
	"github.com/cory-johannsen/rpsbattle/internal/game/session"
)

// Main menu choices.
const (
	MenuPlay   = "1"
	MenuScores = "2"
	MenuExit   = "3"
)

// Player-facing messages.
const (
	MsgIncorrectInput = "Incorrect input."
	MsgWhitespaceName = "Whitespaces are not allowed in the name."
	MsgEmptyName      = "Name cannot be empty."
	MsgEnterName      = "Enter your name:"
	MsgHit            = "You attacked successfully!"
	MsgMiss           = "You missed!"
	MsgDraw           = "It's a draw!"
	MsgGoodbye        = "Good bye!"
)

var modeKeys = map[string]combat.Mode{
	"1": combat.ModeNormal,
	"2": combat.ModeHard,
}

// exitMove is the attack key value that leaves the game.
const exitMove combat.Move = 0

var attackKeys = map[string]combat.Move{
	"1": combat.Paper,
	"2": combat.Stone,
	"3": combat.Scissors,
	"0": exitMove,
}

var mainMenuKeys = map[string]string{
	MenuPlay:   MenuPlay,
	MenuScores: MenuScores,
	MenuExit:   MenuExit,
}

type line struct {
	text string
	err  error
}

// Console reads player input line by line and writes game output.
// It implements combat.MoveSelector and session.Display.
type Console struct {
	prompts *prompt.Provider
	out     io.Writer
	lines   <-chan line
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	color   bool
	logger  *zap.Logger
}

// New starts a Console reading from in and writing to out.
//
// Precondition: prompts must hold the main_menu, mode and attacks menus; in, out and
// logger must be non-nil.
// Postcondition: A single goroutine reads in until EOF, a read error, or Close. Returns
// an error wrapping prompt.ErrInvalidInputType if a required menu is missing.
func New(prompts *prompt.Provider, in io.Reader, out io.Writer, color bool, logger *zap.Logger) (*Console, error) {
	if err := prompts.Require(prompt.TagMainMenu, prompt.TagMode, prompt.TagAttacks); err != nil {
		return nil, err
	}
	lines := make(chan line, 1)
	c := &Console{
		prompts: prompts,
		out:     out,
		lines:   lines,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		color:   color,
		logger:  logger,
	}
	go c.readLines(in, lines)
	return c, nil
}

// readLines feeds lines until input ends or the Console is closed. A read already
// blocked inside in is not interrupted; the goroutine exits once it returns.
func (c *Console) readLines(in io.Reader, lines chan<- line) {
	defer close(c.stopped)
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- line{text: strings.TrimRight(scanner.Text(), "\r")}:
		case <-c.done:
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case lines <- line{err: err}:
	case <-c.done:
	}
}

// Close stops the input goroutine. It is safe to call more than once.
func (c *Console) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

// ReadLine blocks until the next input line arrives or ctx is done.
//
// Postcondition: Returns the line without its terminator, io.EOF once input is
// exhausted, or ctx.Err().
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// MainMenu shows the main menu until a valid choice is made.
//
// Postcondition: Returns MenuPlay, MenuScores or MenuExit, or a read error.
func (c *Console) MainMenu(ctx context.Context) (string, error) {
	return choose(ctx, c, prompt.TagMainMenu, mainMenuKeys)
}

// ChooseMode shows the mode menu until a valid mode is chosen.
func (c *Console) ChooseMode(ctx context.Context) (combat.Mode, error) {
	return choose(ctx, c, prompt.TagMode, modeKeys)
}

// ReadPlayer asks for a name until one is acceptable.
//
// Postcondition: Returns a fresh Player, or a read error.
func (c *Console) ReadPlayer(ctx context.Context) (*combat.Player, error) {
	for {
		c.println(MsgEnterName)
		name, err := c.ReadLine(ctx)
		if err != nil {
			return nil, err
		}
		p, err := combat.NewPlayer(name)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, combat.ErrWhitespaceInName):
			c.println(Colorize(Red, MsgWhitespaceName))
		case errors.Is(err, combat.ErrEmptyName):
			c.println(Colorize(Red, MsgEmptyName))
		default:
			return nil, err
		}
	}
}

// SelectMove shows the attack menu until a valid attack is chosen.
//
// Postcondition: Returns a valid Move, combat.ErrQuit for the exit key, or a read error.
func (c *Console) SelectMove(ctx context.Context) (combat.Move, error) {
	m, err := choose(ctx, c, prompt.TagAttacks, attackKeys)
	if err != nil {
		return 0, err
	}
	if m == exitMove {
		return 0, combat.ErrQuit
	}
	return m, nil
}

// choose renders the menu for tag and reads until the input is a key both on the
// menu and in accept.
func choose[T any](ctx context.Context, c *Console, tag string, accept map[string]T) (T, error) {
	var zero T
	menu, err := c.prompts.Menu(tag)
	if err != nil {
		return zero, err
	}
	for {
		c.print(menu.Render())
		input, err := c.ReadLine(ctx)
		if err != nil {
			return zero, err
		}
		key := strings.TrimSpace(input)
		if _, onMenu := menu.Lookup(key); onMenu {
			if v, ok := accept[key]; ok {
				return v, nil
			}
		}
		c.logger.Debug("rejected input", zap.String("tag", tag), zap.String("input", input))
		c.println(Colorize(Red, MsgIncorrectInput))
	}
}

// ShowStatus writes the status line.
func (c *Console) ShowStatus(s session.Status) {
	c.println(Colorf(Cyan, "\nPlayer: %s.\tMode: %s.\tPlayer Lives: %d.\tScore: %d.\tLevel: %d\tEnemy's lives: %d",
		s.Player, s.Mode, s.PlayerLives, s.Score, s.Level, s.EnemyLives))
}

// ShowExchange narrates one resolved exchange. Quit exchanges are not narrated.
func (c *Console) ShowExchange(ex combat.Exchange) {
	if ex.Signal == combat.Quit {
		return
	}
	c.println(fmt.Sprintf("Your attack: %s.  Enemy's attack: %s", ex.PlayerMove, ex.EnemyMove))
	switch ex.Outcome {
	case combat.Win:
		c.println(Colorize(Green, MsgHit))
	case combat.Lose:
		c.println(Colorize(Red, MsgMiss))
	case combat.Draw:
		c.println(Colorize(Yellow, MsgDraw))
	}
}

// ShowMessage writes msg on its own line.
func (c *Console) ShowMessage(msg string) {
	c.println(Colorize(Bold, msg))
}

// Write copies p to the output unchanged, so leaderboards and other preformatted
// text can be written straight to the Console.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) println(text string) {
	c.print(text + "\n")
}

func (c *Console) print(text string) {
	if !c.color {
		text = StripANSI(text)
	}
	if _, err := io.WriteString(c.out, text); err != nil {
		c.logger.Warn("writing console output", zap.Error(err))
	}
}
