package leaderboard

import (
	"cmp"
	"fmt"
	"unicode/utf8"

	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
)

const (
	// NameAdditionalSpaces is the padding added after the longest name in the name column.
	NameAdditionalSpaces = 4
	// ModeColumnWidth is the fixed width of the mode column.
	ModeColumnWidth = 10

	nameHeader  = "NAME"
	modeHeader  = "MODE"
	scoreHeader = "SCORE"
)

// Record is an end-of-game snapshot of one player's result.
type Record struct {
	Name  string
	Mode  combat.Mode
	Score int
}

// NewRecord builds a Record.
//
// Precondition: name must be a valid player name; mode must be valid.
// Postcondition: Returns a Record, or an error wrapping combat.ErrInvalidMode or a name error.
func NewRecord(name string, mode combat.Mode, score int) (Record, error) {
	if err := mode.Validate(); err != nil {
		return Record{}, err
	}
	if err := combat.ValidateName(name); err != nil {
		return Record{}, err
	}
	return Record{Name: name, Mode: mode, Score: score}, nil
}

// RecordFromPlayer snapshots p's name and score under mode.
//
// Precondition: p must be non-nil.
func RecordFromPlayer(p *combat.Player, mode combat.Mode) (Record, error) {
	return NewRecord(p.Name(), mode, p.Score())
}

// Equal reports whether r and o have the same name, mode and score.
func (r Record) Equal(o Record) bool {
	return r.Name == o.Name && r.Mode == o.Mode && r.Score == o.Score
}

// NameLength returns the displayed length of r.Name in characters, the unit the
// fixed-width padding is counted in.
func (r Record) NameLength() int {
	return utf8.RuneCountInString(r.Name)
}

// ByNameLength orders records by name length in characters. It decides display
// width only and has nothing to do with ranking.
func ByNameLength(a, b Record) int {
	return cmp.Compare(a.NameLength(), b.NameLength())
}

// byScoreDesc is the ranking order: higher scores first.
func byScoreDesc(a, b Record) int {
	return cmp.Compare(b.Score, a.Score)
}

// ColumnWidth coerces a requested name column width to the minimum of len("NAME")+1.
//
// Postcondition: Returns width if width > len("NAME"), else len("NAME")+1.
func ColumnWidth(width int) int {
	if width <= len(nameHeader) {
		return len(nameHeader) + 1
	}
	return width
}

// TitleRow returns the header row for a name column of nameWidth.
//
// Postcondition: The result ends with a newline; nameWidth is coerced by ColumnWidth.
func TitleRow(nameWidth int) string {
	return fmt.Sprintf("%-*s%-*s%s\n", ColumnWidth(nameWidth), nameHeader, ModeColumnWidth, modeHeader, scoreHeader)
}

// FileRow returns r as one fixed-width leaderboard row.
//
// Postcondition: The result ends with a newline; nameWidth is coerced by ColumnWidth.
func (r Record) FileRow(nameWidth int) string {
	return fmt.Sprintf("%-*s%-*s%d\n", ColumnWidth(nameWidth), r.Name, ModeColumnWidth, string(r.Mode), r.Score)
}
