package corpus

import (
	"context"

	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
)

// Reader describes read access to the open-data corpus. Per-match file
// listings are ordered by ascending match id.
type Reader interface {
	Competitions(ctx context.Context) ([]competition.Competition, error)
	Matches(ctx context.Context) ([]match.Match, error)

	EventFiles(ctx context.Context) ([]string, error)
	ReadEvents(ctx context.Context, path string) ([]event.Record, error)

	LineupFiles(ctx context.Context) ([]string, error)
	ReadLineups(ctx context.Context, path string) ([]lineup.TeamSheet, error)

	TrackingFiles(ctx context.Context) ([]string, error)
	ReadTracking(ctx context.Context, path string) ([]tracking.Snapshot, error)

	// FilterValid drops files that cannot be parsed, keeping input order.
	FilterValid(ctx context.Context, paths []string) ([]string, error)
}
