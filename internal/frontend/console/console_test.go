package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/rpsbattle/content"
	"github.com/cory-johannsen/rpsbattle/internal/frontend/console"
	"github.com/cory-johannsen/rpsbattle/internal/frontend/prompt"
	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
	"github.com/cory-johannsen/rpsbattle/internal/game/session"
)

func newConsole(t *testing.T, input string, color bool) (*console.Console, *bytes.Buffer) {
	t.Helper()
	prompts, err := prompt.Load(content.PromptFS())
	require.NoError(t, err)
	var out bytes.Buffer
	c, err := console.New(prompts, strings.NewReader(input), &out, color, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, &out
}

func TestNew_MissingMenu(t *testing.T) {
	prompts, err := prompt.Load(fstest.MapFS{
		"main_menu.yaml": {Data: []byte("title: Main\noptions:\n  - key: \"1\"\n    text: Play\n")},
	})
	require.NoError(t, err)
	_, err = console.New(prompts, strings.NewReader(""), io.Discard, false, zap.NewNop())
	assert.ErrorIs(t, err, prompt.ErrInvalidInputType)
}

func TestReadLine(t *testing.T) {
	c, _ := newConsole(t, "first\r\nsecond\n", false)
	ctx := context.Background()

	l, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", l)

	l, err = c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", l)

	_, err = c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
	_, err = c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	prompts, err := prompt.Load(content.PromptFS())
	require.NoError(t, err)
	c, err := console.New(prompts, pr, io.Discard, false, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMainMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"play", "1\n", console.MenuPlay},
		{"scores", "2\n", console.MenuScores},
		{"exit", "3\n", console.MenuExit},
		{"surrounding spaces", "  2 \n", console.MenuScores},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newConsole(t, tt.input, false)
			got, err := c.MainMenu(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), prompt.Header+"----Main Menu----\n1 - Play\n"))
		})
	}
}

func TestMainMenu_RepromptsOnIncorrectInput(t *testing.T) {
	c, out := newConsole(t, "9\nplay\n\n3\n", false)
	got, err := c.MainMenu(context.Background())
	require.NoError(t, err)
	assert.Equal(t, console.MenuExit, got)
	assert.Equal(t, 3, strings.Count(out.String(), console.MsgIncorrectInput))
	assert.Equal(t, 4, strings.Count(out.String(), "----Main Menu----"))
}

func TestMainMenu_EOF(t *testing.T) {
	c, _ := newConsole(t, "7\n", false)
	_, err := c.MainMenu(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestChooseMode(t *testing.T) {
	c, out := newConsole(t, "0\n2\n", false)
	m, err := c.ChooseMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, combat.ModeHard, m)
	assert.Contains(t, out.String(), "----Mode----\n1 - Normal\n2 - Hard\n")
	assert.Equal(t, 1, strings.Count(out.String(), console.MsgIncorrectInput))
}

func TestReadPlayer(t *testing.T) {
	c, out := newConsole(t, "\nVlad Ivanov\nVlad\n", false)
	p, err := c.ReadPlayer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Vlad", p.Name())
	assert.Equal(t, combat.PlayerLives, p.Lives())

	text := out.String()
	assert.Contains(t, text, console.MsgEmptyName)
	assert.Contains(t, text, console.MsgWhitespaceName)
	assert.Equal(t, 3, strings.Count(text, console.MsgEnterName))
}

func TestSelectMove(t *testing.T) {
	tests := []struct {
		input string
		want  combat.Move
	}{
		{"1\n", combat.Paper},
		{"2\n", combat.Stone},
		{"3\n", combat.Scissors},
		{"4\n3\n", combat.Scissors},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			c, _ := newConsole(t, tt.input, false)
			m, err := c.SelectMove(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestSelectMove_ExitQuits(t *testing.T) {
	c, _ := newConsole(t, "0\n", false)
	_, err := c.SelectMove(context.Background())
	assert.ErrorIs(t, err, combat.ErrQuit)
}

func TestShowStatus(t *testing.T) {
	c, out := newConsole(t, "", false)
	c.ShowStatus(session.Status{Player: "Vlad", Mode: combat.ModeHard, PlayerLives: 2, Score: 14, Level: 2, EnemyLives: 4})
	assert.Equal(t, "\nPlayer: Vlad.\tMode: Hard.\tPlayer Lives: 2.\tScore: 14.\tLevel: 2\tEnemy's lives: 4\n", out.String())
}

func TestShowExchange(t *testing.T) {
	tests := []struct {
		name string
		ex   combat.Exchange
		want string
	}{
		{"win", combat.Exchange{PlayerMove: combat.Paper, EnemyMove: combat.Stone, Outcome: combat.Win},
			"Your attack: Paper.  Enemy's attack: Stone\nYou attacked successfully!\n"},
		{"lose", combat.Exchange{PlayerMove: combat.Scissors, EnemyMove: combat.Stone, Outcome: combat.Lose},
			"Your attack: Scissors.  Enemy's attack: Stone\nYou missed!\n"},
		{"draw", combat.Exchange{PlayerMove: combat.Stone, EnemyMove: combat.Stone, Outcome: combat.Draw},
			"Your attack: Stone.  Enemy's attack: Stone\nIt's a draw!\n"},
		{"quit", combat.Exchange{EnemyMove: combat.Stone, Signal: combat.Quit}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newConsole(t, "", false)
			c.ShowExchange(tt.ex)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestShowMessage_Color(t *testing.T) {
	c, out := newConsole(t, "", true)
	c.ShowMessage("New enemy comes.")
	assert.Equal(t, console.Colorize(console.Bold, "New enemy comes.")+"\n", out.String())

	plain, plainOut := newConsole(t, "", false)
	plain.ShowMessage("New enemy comes.")
	assert.Equal(t, "New enemy comes.\n", plainOut.String())
}

func TestWrite_PassesThrough(t *testing.T) {
	c, out := newConsole(t, "", false)
	n, err := c.Write([]byte("NAME MODE      SCORE\n"))
	require.NoError(t, err)
	assert.Equal(t, 21, n)
	assert.Equal(t, "NAME MODE      SCORE\n", out.String())
}
