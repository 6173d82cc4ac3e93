package warehouse

import (
	"context"

	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
)

// Denormalised views published by the export command.
const (
	ViewMatches    = "matches"
	ViewEvents     = "events"
	ViewLineups    = "lineups"
	ViewThreeSixty = "three_sixty"
	ViewReference  = "reference"
)

func Views() []string {
	return []string{ViewMatches, ViewEvents, ViewLineups, ViewThreeSixty, ViewReference}
}

type ViewColumn struct {
	Name string
	Type schema.ColumnType
}

// RowCursor iterates the rows of an opened view. Values are returned in
// Columns order; NULL is nil.
type RowCursor interface {
	Columns() []ViewColumn
	Next() bool
	Values() ([]any, error)
	Err() error
	Close() error
}

type ViewRepository interface {
	OpenView(ctx context.Context, name string) (RowCursor, error)
}

// ViewWriter persists a view and reports how many rows it wrote.
type ViewWriter interface {
	WriteView(ctx context.Context, name string, rows RowCursor) (int64, error)
}
