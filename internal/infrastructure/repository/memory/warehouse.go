package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

// Tables is a full in-memory copy of the warehouse.
type Tables struct {
	Competitions    []competition.Competition
	Teams           []team.Team
	Matches         []match.Match
	Reference       map[string][]reference.Entry
	Events          []event.Row
	Lineups         []lineup.Lineup
	LineupPlayers   []lineup.Player
	LineupPositions []lineup.Position
	LineupCards     []lineup.Card
	Frames          []tracking.Frame
	FramePositions  []tracking.Position
}

// Count returns the number of rows held for table.
func (t Tables) Count(table string) int {
	switch table {
	case schema.TableCompetitions:
		return len(t.Competitions)
	case schema.TableTeams:
		return len(t.Teams)
	case schema.TableMatches:
		return len(t.Matches)
	case schema.TableEvents:
		return len(t.Events)
	case schema.TableLineups:
		return len(t.Lineups)
	case schema.TableLineupPlayers:
		return len(t.LineupPlayers)
	case schema.TableLineupPositions:
		return len(t.LineupPositions)
	case schema.TableLineupCards:
		return len(t.LineupCards)
	case schema.TableThreeSixtyFrames:
		return len(t.Frames)
	case schema.TableThreeSixtyPositions:
		return len(t.FramePositions)
	default:
		return len(t.Reference[table])
	}
}

// Warehouse is an in-memory warehouse.Repository. Sessions stage their writes
// and publish them on Commit. Primary keys are enforced; foreign keys are not.
type Warehouse struct {
	mu        sync.RWMutex
	committed Tables
	commits   int
	failOn    map[string]error
}

func NewWarehouse() *Warehouse {
	return &Warehouse{failOn: make(map[string]error)}
}

// FailInsert makes every later insert into table fail with err.
func (w *Warehouse) FailInsert(table string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.failOn[table] = err
}

// Snapshot returns the last committed contents.
func (w *Warehouse) Snapshot() Tables {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.committed
}

func (w *Warehouse) Commits() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.commits
}

func (w *Warehouse) Begin(_ context.Context) (warehouse.Session, error) {
	return &Session{
		owner: w,
		keys:  make(map[string]map[string]struct{}),
	}, nil
}

// Session stages one rebuild.
type Session struct {
	owner   *Warehouse
	staged  Tables
	keys    map[string]map[string]struct{}
	dropped bool
	created bool
	done    bool
}

func (s *Session) DropSchema(_ context.Context) error {
	if err := s.active(); err != nil {
		return err
	}
	s.dropped = true
	s.created = false
	s.staged = Tables{}
	s.keys = make(map[string]map[string]struct{})
	return nil
}

func (s *Session) CreateSchema(_ context.Context) error {
	if err := s.active(); err != nil {
		return err
	}
	s.created = true
	if s.staged.Reference == nil {
		s.staged.Reference = make(map[string][]reference.Entry)
	}
	return nil
}

func (s *Session) CreateIndexes(_ context.Context) error {
	if err := s.active(); err != nil {
		return err
	}
	if !s.created {
		return fmt.Errorf("create indexes: schema not declared")
	}
	return nil
}

func (s *Session) InsertCompetitions(_ context.Context, rows []competition.Competition) (int, error) {
	return stage(s, schema.TableCompetitions, &s.staged.Competitions, rows, func(c competition.Competition) string {
		return key(c.CompetitionID, c.SeasonID)
	})
}

func (s *Session) InsertTeams(_ context.Context, rows []team.Team) (int, error) {
	return stage(s, schema.TableTeams, &s.staged.Teams, rows, func(t team.Team) string { return key(t.ID) })
}

func (s *Session) InsertMatches(_ context.Context, rows []match.Match) (int, error) {
	return stage(s, schema.TableMatches, &s.staged.Matches, rows, func(m match.Match) string { return key(m.MatchID) })
}

func (s *Session) InsertReference(_ context.Context, table string, rows []reference.Entry) (int, error) {
	switch table {
	case schema.TableEventTypes, schema.TablePlayers, schema.TablePositions, schema.TablePlayPatterns, schema.TableCountries:
	default:
		return 0, fmt.Errorf("table %q is not a reference table", table)
	}
	dst := s.staged.Reference[table]
	n, err := stage(s, table, &dst, rows, func(e reference.Entry) string { return key(e.ID) })
	if s.staged.Reference != nil {
		s.staged.Reference[table] = dst
	}
	return n, err
}

func (s *Session) InsertEvents(_ context.Context, rows []event.Row) (int, error) {
	return stage(s, schema.TableEvents, &s.staged.Events, rows, func(r event.Row) string { return r.ID })
}

func (s *Session) InsertLineups(_ context.Context, rows []lineup.Lineup) (int, error) {
	return stage(s, schema.TableLineups, &s.staged.Lineups, rows, func(l lineup.Lineup) string {
		return key(l.MatchID, l.TeamID)
	})
}

func (s *Session) InsertLineupPlayers(_ context.Context, rows []lineup.Player) (int, error) {
	return stage(s, schema.TableLineupPlayers, &s.staged.LineupPlayers, rows, func(p lineup.Player) string {
		return key(p.MatchID, p.TeamID, p.PlayerID)
	})
}

func (s *Session) InsertLineupPositions(_ context.Context, rows []lineup.Position) (int, error) {
	return stage(s, schema.TableLineupPositions, &s.staged.LineupPositions, rows, func(p lineup.Position) string { return key(p.ID) })
}

func (s *Session) InsertLineupCards(_ context.Context, rows []lineup.Card) (int, error) {
	return stage(s, schema.TableLineupCards, &s.staged.LineupCards, rows, func(c lineup.Card) string { return key(c.ID) })
}

func (s *Session) InsertFrames(_ context.Context, rows []tracking.Frame) (int, error) {
	return stage(s, schema.TableThreeSixtyFrames, &s.staged.Frames, rows, func(f tracking.Frame) string { return f.EventUUID })
}

func (s *Session) InsertFramePositions(_ context.Context, rows []tracking.Position) (int, error) {
	return stage(s, schema.TableThreeSixtyPositions, &s.staged.FramePositions, rows, func(p tracking.Position) string { return key(p.ID) })
}

func (s *Session) Commit() error {
	if err := s.active(); err != nil {
		return err
	}
	s.done = true

	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	if s.dropped || s.created {
		s.owner.committed = s.staged
	}
	s.owner.commits++
	return nil
}

func (s *Session) Rollback() error {
	s.done = true
	return nil
}

func (s *Session) active() error {
	if s.done {
		return fmt.Errorf("build transaction already finished")
	}
	return nil
}

func stage[T any](s *Session, table string, dst *[]T, rows []T, keyOf func(T) string) (int, error) {
	if err := s.active(); err != nil {
		return 0, err
	}
	if !s.created {
		return 0, fmt.Errorf("insert into %s: table does not exist", table)
	}

	s.owner.mu.RLock()
	failure := s.owner.failOn[table]
	s.owner.mu.RUnlock()
	if failure != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, failure)
	}

	seen := s.keys[table]
	if seen == nil {
		seen = make(map[string]struct{})
		s.keys[table] = seen
	}
	for _, row := range rows {
		k := keyOf(row)
		if _, dup := seen[k]; dup {
			return 0, fmt.Errorf("insert into %s: duplicate primary key %s", table, k)
		}
		seen[k] = struct{}{}
	}
	*dst = append(*dst, rows...)
	return len(rows), nil
}

func key(parts ...int64) string {
	out := make([]byte, 0, 8*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, '/')
		}
		out = strconv.AppendInt(out, p, 10)
	}
	return string(out)
}
