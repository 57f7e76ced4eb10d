// Package leaderboard keeps a ranked, capped list of finished games in a flat
// fixed-width text file.
//
// The file is read once when a Leaderboard is loaded and overwritten wholesale by
// Save. Access is not locked and the overwrite is not atomic; a single process is
// assumed to own the file.
package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpsbattle/internal/game/combat"
)

// DefaultMaxRecords is the number of records kept when none is configured.
const DefaultMaxRecords = 10

// ErrDuplicateRecord is returned by Add when an equal record is already present.
var ErrDuplicateRecord = errors.New("record already in leaderboard")

// ErrMalformedRow is returned by Load when a data row is not NAME MODE SCORE.
var ErrMalformedRow = errors.New("malformed leaderboard row")

// Leaderboard is an in-memory view of the leaderboard file.
// It is not safe for concurrent use.
type Leaderboard struct {
	path       string
	maxRecords int
	records    []Record
	logger     *zap.Logger
}

// Load reads the leaderboard stored at path, first creating a header-only file if
// none exists.
//
// Precondition: maxRecords >= 1; logger must be non-nil.
// Postcondition: Returns a Leaderboard owning a fresh record slice in file order, or
// an error. A row that does not split into exactly three fields, or whose score or
// mode is invalid, yields an error wrapping ErrMalformedRow.
func Load(path string, maxRecords int, logger *zap.Logger) (*Leaderboard, error) {
	if maxRecords < 1 {
		return nil, fmt.Errorf("leaderboard max records must be >= 1, got %d", maxRecords)
	}
	if err := ensureStore(path, logger); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening leaderboard %s: %w", path, err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard %s: %w", path, err)
	}

	logger.Debug("leaderboard loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return &Leaderboard{
		path:       path,
		maxRecords: maxRecords,
		records:    records,
		logger:     logger,
	}, nil
}

// ensureStore writes a header-only file at path if nothing is there yet.
func ensureStore(path string, logger *zap.Logger) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking leaderboard %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(TitleRow(0)), 0o644); err != nil {
		return fmt.Errorf("creating leaderboard %s: %w", path, err)
	}
	logger.Info("created empty leaderboard", zap.String("path", path))
	return nil
}

// parse reads the header row and then NAME MODE SCORE rows from r.
func parse(r io.Reader) ([]Record, error) {
	records := []Record{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrMalformedRow, line, len(fields))
		}
		score, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		rec, err := NewRecord(fields[0], combat.Mode(fields[1]), score)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRow, line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Path returns the file backing this leaderboard.
func (l *Leaderboard) Path() string { return l.path }

// MaxRecords returns how many records survive Prepare.
func (l *Leaderboard) MaxRecords() int { return l.maxRecords }

// Records returns a copy of the current records in their current order.
func (l *Leaderboard) Records() []Record {
	return slices.Clone(l.records)
}

// Contains reports whether a record equal to r is present.
func (l *Leaderboard) Contains(r Record) bool {
	return slices.ContainsFunc(l.records, r.Equal)
}

// Add appends r.
//
// Postcondition: Returns ErrDuplicateRecord and leaves the records unchanged if an
// equal record is already present.
func (l *Leaderboard) Add(r Record) error {
	if l.Contains(r) {
		return fmt.Errorf("%w: %s %s %d", ErrDuplicateRecord, r.Name, r.Mode, r.Score)
	}
	l.records = append(l.records, r)
	return nil
}

// AddPlayer records p's final score under mode.
//
// Precondition: p must be non-nil.
// Postcondition: See RecordFromPlayer and Add.
func (l *Leaderboard) AddPlayer(p *combat.Player, mode combat.Mode) error {
	rec, err := RecordFromPlayer(p, mode)
	if err != nil {
		return err
	}
	return l.Add(rec)
}

// Prepare ranks the records by score, highest first, keeping insertion order among
// equal scores, and drops everything past MaxRecords.
//
// Postcondition: len(Records()) <= MaxRecords(). Dropped records are discarded.
func (l *Leaderboard) Prepare() {
	slices.SortStableFunc(l.records, byScoreDesc)
	if len(l.records) > l.maxRecords {
		dropped := len(l.records) - l.maxRecords
		l.records = slices.Clip(l.records[:l.maxRecords])
		l.logger.Debug("leaderboard truncated", zap.Int("dropped", dropped))
	}
}

// NameColumnWidth returns the width of the name column for the current records:
// the longest name in characters plus NameAdditionalSpaces, coerced by ColumnWidth.
func (l *Leaderboard) NameColumnWidth() int {
	if len(l.records) == 0 {
		return ColumnWidth(0)
	}
	longest := slices.MaxFunc(l.records, ByNameLength)
	return ColumnWidth(longest.NameLength() + NameAdditionalSpaces)
}

// WriteTo writes the header and one fixed-width row per record to w.
func (l *Leaderboard) WriteTo(w io.Writer) (int64, error) {
	width := l.NameColumnWidth()
	var b strings.Builder
	b.WriteString(TitleRow(width))
	for _, r := range l.records {
		b.WriteString(r.FileRow(width))
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Save prepares the records and overwrites the backing file with them.
//
// Postcondition: The file holds exactly the header and the prepared records.
func (l *Leaderboard) Save() error {
	l.Prepare()

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("opening leaderboard %s for writing: %w", l.path, err)
	}
	if _, err := l.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing leaderboard %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing leaderboard %s: %w", l.path, err)
	}

	l.logger.Info("leaderboard saved",
		zap.String("path", l.path),
		zap.Int("records", len(l.records)),
	)
	return nil
}
