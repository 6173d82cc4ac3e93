package warehouse

import (
	"context"

	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
)

// Repository opens build sessions against the warehouse.
type Repository interface {
	Begin(ctx context.Context) (Session, error)
}

// Session is one all-or-nothing rebuild. Nothing written through it is
// visible until Commit; Rollback discards everything. Insert methods return
// the number of rows written.
type Session interface {
	DropSchema(ctx context.Context) error
	CreateSchema(ctx context.Context) error
	CreateIndexes(ctx context.Context) error

	InsertCompetitions(ctx context.Context, rows []competition.Competition) (int, error)
	InsertTeams(ctx context.Context, rows []team.Team) (int, error)
	InsertMatches(ctx context.Context, rows []match.Match) (int, error)
	InsertReference(ctx context.Context, table string, rows []reference.Entry) (int, error)
	InsertEvents(ctx context.Context, rows []event.Row) (int, error)
	InsertLineups(ctx context.Context, rows []lineup.Lineup) (int, error)
	InsertLineupPlayers(ctx context.Context, rows []lineup.Player) (int, error)
	InsertLineupPositions(ctx context.Context, rows []lineup.Position) (int, error)
	InsertLineupCards(ctx context.Context, rows []lineup.Card) (int, error)
	InsertFrames(ctx context.Context, rows []tracking.Frame) (int, error)
	InsertFramePositions(ctx context.Context, rows []tracking.Position) (int, error)

	Commit() error
	Rollback() error
}

// GoalTally compares a match score with the goals counted from its shots.
type GoalTally struct {
	MatchID         int64 `db:"match_id"`
	HomeScore       int64 `db:"home_score"`
	AwayScore       int64 `db:"away_score"`
	HomeShotGoals   int64 `db:"home_shot_goals"`
	AwayShotGoals   int64 `db:"away_shot_goals"`
	HomeOwnGoalsFor int64 `db:"home_own_goals_for"`
	AwayOwnGoalsFor int64 `db:"away_own_goals_for"`
}

// LocationSample is a stored event location with its split coordinates.
type LocationSample struct {
	EventID   string   `db:"id"`
	Location  string   `db:"location"`
	LocationX *float64 `db:"location_x"`
	LocationY *float64 `db:"location_y"`
}

// AuditRepository runs read-only integrity queries over a built warehouse.
type AuditRepository interface {
	CountRows(ctx context.Context, table string) (int64, error)
	CountDuplicateKeys(ctx context.Context, table string, columns []string) (int64, error)
	CountOrphans(ctx context.Context, table string, fk schema.ForeignKey) (int64, error)
	CountWhere(ctx context.Context, table, condition string, args ...any) (int64, error)
	GoalTallies(ctx context.Context) ([]GoalTally, error)
	ScanEventLocations(ctx context.Context, fn func(LocationSample) error) error
}
