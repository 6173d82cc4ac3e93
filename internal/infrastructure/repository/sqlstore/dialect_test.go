package sqlstore

import (
	"slices"
	"strings"
	"testing"

	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
	"github.com/riskibarqy/football-warehouse/internal/platform/querybuilder"
)

func TestDialectFor(t *testing.T) {
	t.Parallel()

	d, err := DialectFor(" Postgres ")
	if err != nil {
		t.Fatalf("dialect: %v", err)
	}
	if d.Name != Postgres.Name {
		t.Fatalf("unexpected dialect: %s", d.Name)
	}
	if _, err := DialectFor("sqlite"); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestCreateTableSQL_RendersKeysAndFlags(t *testing.T) {
	t.Parallel()

	registry := schema.Default()
	lineups, _ := registry.Table(schema.TableLineupPlayers)
	ddl := DuckDB.CreateTableSQL(lineups)
	if !strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS lineup_players (") {
		t.Fatalf("unexpected ddl prefix: %s", ddl)
	}
	if !strings.Contains(ddl, "PRIMARY KEY (match_id, team_id, player_id)") {
		t.Fatalf("missing composite primary key: %s", ddl)
	}
	if !strings.Contains(ddl, "REFERENCES lineups (match_id, team_id)") {
		t.Fatalf("missing lineups foreign key: %s", ddl)
	}

	events, _ := registry.Table(schema.TableEvents)
	duck := DuckDB.CreateTableSQL(events)
	if !strings.Contains(duck, "out BOOLEAN NOT NULL") || !strings.Contains(duck, "location_x DOUBLE,") {
		t.Fatalf("unexpected duckdb events ddl")
	}
	pg := Postgres.CreateTableSQL(events)
	if !strings.Contains(pg, "location_x DOUBLE PRECISION,") || !strings.Contains(pg, "index_num BIGINT") {
		t.Fatalf("unexpected postgres events ddl")
	}
}

func TestDropTableSQL_CascadesOnlyOnPostgres(t *testing.T) {
	t.Parallel()

	events, _ := schema.Default().Table(schema.TableEvents)
	if got := DuckDB.DropTableSQL(events); got != "DROP TABLE IF EXISTS events" {
		t.Fatalf("unexpected duckdb drop: %s", got)
	}
	if got := Postgres.DropTableSQL(events); got != "DROP TABLE IF EXISTS events CASCADE" {
		t.Fatalf("unexpected postgres drop: %s", got)
	}
}

func TestCreateIndexSQL(t *testing.T) {
	t.Parallel()

	got := DuckDB.CreateIndexSQL(schema.Index{Name: "idx_events_match", Table: "events", Columns: []string{"match_id"}})
	if got != "CREATE INDEX IF NOT EXISTS idx_events_match ON events (match_id)" {
		t.Fatalf("unexpected index ddl: %s", got)
	}
}

// Every row model must bind exactly the declared columns, in declaration order.
func TestRowModelsMatchRegistry(t *testing.T) {
	t.Parallel()

	models := map[string]any{
		schema.TableCompetitions:        competition.Competition{},
		schema.TableTeams:               team.Team{},
		schema.TableMatches:             match.Match{},
		schema.TableEventTypes:          reference.Entry{},
		schema.TablePlayers:             reference.Entry{},
		schema.TablePositions:           reference.Entry{},
		schema.TablePlayPatterns:        reference.Entry{},
		schema.TableCountries:           reference.Entry{},
		schema.TableEvents:              event.Row{},
		schema.TableLineups:             lineup.Lineup{},
		schema.TableLineupPlayers:       lineup.Player{},
		schema.TableLineupPositions:     lineup.Position{},
		schema.TableLineupCards:         lineup.Card{},
		schema.TableThreeSixtyFrames:    tracking.Frame{},
		schema.TableThreeSixtyPositions: tracking.Position{},
	}

	registry := schema.Default()
	if len(models) != len(registry.Tables()) {
		t.Fatalf("expected a row model for each of %d tables", len(registry.Tables()))
	}
	for name, model := range models {
		table, ok := registry.Table(name)
		if !ok {
			t.Fatalf("table %s not declared", name)
		}
		cols, err := querybuilder.ModelColumns(model)
		if err != nil {
			t.Fatalf("model columns for %s: %v", name, err)
		}
		if !slices.Equal(cols, table.ColumnNames()) {
			t.Fatalf("columns of %s mismatch:\nmodel=%v\ntable=%v", name, cols, table.ColumnNames())
		}
	}
}
