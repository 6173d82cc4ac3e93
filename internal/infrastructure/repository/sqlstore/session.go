package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/platform/querybuilder"
)

// Session is a build transaction. It is not safe for concurrent use.
type Session struct {
	tx        *sqlx.Tx
	dialect   Dialect
	registry  *schema.Registry
	batchSize int
	logger    *logging.Logger
	done      bool
}

func (s *Session) DropSchema(ctx context.Context) error {
	for _, t := range s.registry.DropOrder() {
		if _, err := s.tx.ExecContext(ctx, s.dialect.DropTableSQL(t)); err != nil {
			return fmt.Errorf("drop table %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *Session) CreateSchema(ctx context.Context) error {
	for _, t := range s.registry.CreateOrder() {
		if _, err := s.tx.ExecContext(ctx, s.dialect.CreateTableSQL(t)); err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

func (s *Session) CreateIndexes(ctx context.Context) error {
	for _, idx := range s.registry.Indexes() {
		if _, err := s.tx.ExecContext(ctx, s.dialect.CreateIndexSQL(idx)); err != nil {
			return fmt.Errorf("create index %s: %w", idx.Name, err)
		}
	}
	return nil
}

func (s *Session) InsertCompetitions(ctx context.Context, rows []competition.Competition) (int, error) {
	return insertRows(ctx, s, schema.TableCompetitions, rows)
}

func (s *Session) InsertTeams(ctx context.Context, rows []team.Team) (int, error) {
	return insertRows(ctx, s, schema.TableTeams, rows)
}

func (s *Session) InsertMatches(ctx context.Context, rows []match.Match) (int, error) {
	return insertRows(ctx, s, schema.TableMatches, rows)
}

func (s *Session) InsertReference(ctx context.Context, table string, rows []reference.Entry) (int, error) {
	switch table {
	case schema.TableEventTypes, schema.TablePlayers, schema.TablePositions, schema.TablePlayPatterns, schema.TableCountries:
	default:
		return 0, fmt.Errorf("table %q is not a reference table", table)
	}
	return insertRows(ctx, s, table, rows)
}

func (s *Session) InsertEvents(ctx context.Context, rows []event.Row) (int, error) {
	return insertRows(ctx, s, schema.TableEvents, rows)
}

func (s *Session) InsertLineups(ctx context.Context, rows []lineup.Lineup) (int, error) {
	return insertRows(ctx, s, schema.TableLineups, rows)
}

func (s *Session) InsertLineupPlayers(ctx context.Context, rows []lineup.Player) (int, error) {
	return insertRows(ctx, s, schema.TableLineupPlayers, rows)
}

func (s *Session) InsertLineupPositions(ctx context.Context, rows []lineup.Position) (int, error) {
	return insertRows(ctx, s, schema.TableLineupPositions, rows)
}

func (s *Session) InsertLineupCards(ctx context.Context, rows []lineup.Card) (int, error) {
	return insertRows(ctx, s, schema.TableLineupCards, rows)
}

func (s *Session) InsertFrames(ctx context.Context, rows []tracking.Frame) (int, error) {
	return insertRows(ctx, s, schema.TableThreeSixtyFrames, rows)
}

func (s *Session) InsertFramePositions(ctx context.Context, rows []tracking.Position) (int, error) {
	return insertRows(ctx, s, schema.TableThreeSixtyPositions, rows)
}

func (s *Session) Commit() error {
	if s.done {
		return fmt.Errorf("build transaction already finished")
	}
	s.done = true
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit build transaction: %w", err)
	}
	return nil
}

// Rollback is a no-op after Commit, so it can be deferred unconditionally.
func (s *Session) Rollback() error {
	if s.done {
		return nil
	}
	s.done = true
	if err := s.tx.Rollback(); err != nil {
		return fmt.Errorf("rollback build transaction: %w", err)
	}
	return nil
}

func insertRows[T any](ctx context.Context, s *Session, table string, rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	stmts, err := querybuilder.InsertModels(table, rows, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("build insert into %s: %w", table, err)
	}

	written := 0
	for _, stmt := range stmts {
		if _, err := s.tx.ExecContext(ctx, stmt.Query, stmt.Args...); err != nil {
			return written, fmt.Errorf("insert %d rows into %s: %w", stmt.Rows, table, err)
		}
		written += stmt.Rows
	}
	s.logger.DebugContext(ctx, "rows inserted", "table", table, "rows", written, "statements", len(stmts))
	return written, nil
}
