package sqlstore

import (
	"context"
	"testing"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/querybuilder"
)

const testMatchID int64 = 3788741

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlx.Open("duckdb", "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db, StoreConfig{Dialect: DuckDB, BatchSize: 2})
}

func mustInsert(t *testing.T, what string, n int, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("insert %s: %v", what, err)
	}
	if n == 0 {
		t.Fatalf("insert %s wrote no rows", what)
	}
}

// seed runs a complete build of a one-match warehouse and commits it.
func seed(t *testing.T, ctx context.Context, store *Store) {
	t.Helper()

	session, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = session.Rollback() }()

	if err := session.DropSchema(ctx); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if err := session.CreateSchema(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	n, err := session.InsertCompetitions(ctx, []competition.Competition{{
		CompetitionID: 43, SeasonID: 106, Name: ptr("FIFA World Cup"), Gender: ptr("male"), IsYouth: ptr(false),
	}})
	mustInsert(t, "competitions", n, err)

	n, err = session.InsertTeams(ctx, []team.Team{
		{ID: 217, Name: ptr("Barcelona"), Gender: ptr("male")},
		{ID: 206, Name: ptr("Deportivo Alavés"), Gender: ptr("male")},
		{ID: 210, Name: ptr("Eibar"), Gender: ptr("male")},
	})
	mustInsert(t, "teams", n, err)

	n, err = session.InsertMatches(ctx, []match.Match{{
		MatchID: testMatchID, CompetitionID: 43, SeasonID: 106, HomeTeamID: 217, AwayTeamID: 206,
		HomeScore: ptr(int64(1)), AwayScore: ptr(int64(0)), MatchDate: ptr("2018-08-18"),
	}})
	mustInsert(t, "matches", n, err)

	refs := map[string][]reference.Entry{
		schema.TableEventTypes: {{ID: 16, Name: "Shot"}, {ID: 30, Name: "Pass"}},
		schema.TablePlayers:    {{ID: 5503, Name: "Lionel Andrés Messi Cuccittini"}},
		schema.TablePositions:  {{ID: 17, Name: "Right Wing"}},
		schema.TableCountries:  {{ID: 11, Name: "Argentina"}},
	}
	for table, rows := range refs {
		n, err = session.InsertReference(ctx, table, rows)
		mustInsert(t, table, n, err)
	}

	n, err = session.InsertEvents(ctx, []event.Row{
		{
			ID: "ev-shot", IndexNum: ptr(int64(2)), MatchID: testMatchID, TypeID: ptr(int64(16)), Type: ptr("Shot"),
			TeamID: ptr(int64(217)), PlayerID: ptr(int64(5503)), PositionID: ptr(int64(17)),
			Location: ptr("[108.4,38.9]"), LocationX: ptr(108.4), LocationY: ptr(38.9),
			ShotOutcome: ptr("Goal"), ShotStatsbombXG: ptr(0.31), ShotFirstTime: true,
		},
		{
			ID: "ev-pass", IndexNum: ptr(int64(1)), MatchID: testMatchID, TypeID: ptr(int64(30)), Type: ptr("Pass"),
			TeamID: ptr(int64(217)),
		},
	})
	mustInsert(t, "events", n, err)

	n, err = session.InsertLineups(ctx, []lineup.Lineup{{MatchID: testMatchID, TeamID: 217, TeamName: ptr("Barcelona")}})
	mustInsert(t, "lineups", n, err)
	n, err = session.InsertLineupPlayers(ctx, []lineup.Player{{
		MatchID: testMatchID, TeamID: 217, PlayerID: 5503, PlayerName: ptr("Lionel Andrés Messi Cuccittini"),
		JerseyNumber: ptr(int64(10)), CountryID: ptr(int64(11)), CountryName: ptr("Argentina"),
	}})
	mustInsert(t, "lineup players", n, err)
	n, err = session.InsertLineupPositions(ctx, []lineup.Position{{
		ID: 1, MatchID: testMatchID, TeamID: 217, PlayerID: 5503, PositionID: ptr(int64(17)),
		PositionName: ptr("Right Wing"), FromTime: ptr("00:00"), FromPeriod: ptr(int64(1)),
	}})
	mustInsert(t, "lineup positions", n, err)
	n, err = session.InsertLineupCards(ctx, []lineup.Card{{
		ID: 1, MatchID: testMatchID, TeamID: 217, PlayerID: 5503, CardType: ptr("Yellow Card"), Period: ptr(int64(2)),
	}})
	mustInsert(t, "lineup cards", n, err)

	n, err = session.InsertFrames(ctx, []tracking.Frame{{EventUUID: "ev-shot", MatchID: testMatchID, VisibleArea: ptr("[0,0,120,80]")}})
	mustInsert(t, "frames", n, err)
	n, err = session.InsertFramePositions(ctx, []tracking.Position{
		{ID: 1, EventUUID: "ev-shot", Actor: true, Teammate: true, LocationX: ptr(108.4), LocationY: ptr(38.9)},
		{ID: 2, EventUUID: "ev-shot", Keeper: true, LocationX: ptr(119.0), LocationY: ptr(40.0)},
		{ID: 3, EventUUID: "ev-shot", LocationX: ptr(112.0), LocationY: ptr(35.5)},
	})
	mustInsert(t, "frame positions", n, err)

	if err := session.CreateIndexes(ctx); err != nil {
		t.Fatalf("create indexes: %v", err)
	}
	if err := session.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestSession_BuildCommitsEveryTable(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)

	want := map[string]int64{
		schema.TableCompetitions:        1,
		schema.TableTeams:               3,
		schema.TableMatches:             1,
		schema.TableEventTypes:          2,
		schema.TablePlayers:             1,
		schema.TablePlayPatterns:        0,
		schema.TableEvents:              2,
		schema.TableLineupCards:         1,
		schema.TableThreeSixtyPositions: 3,
	}
	for table, expected := range want {
		got, err := store.CountRows(ctx, table)
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if got != expected {
			t.Fatalf("rows in %s: got=%d want=%d", table, got, expected)
		}
	}
}

func TestSession_RebuildReplacesPreviousContents(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)
	seed(t, ctx, store)

	got, err := store.CountRows(ctx, schema.TableThreeSixtyPositions)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected rebuild to replace rows, got %d", got)
	}
}

func TestSession_RollbackKeepsPreviousWarehouse(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)

	session, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := session.DropSchema(ctx); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if err := session.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if err := session.Rollback(); err != nil {
		t.Fatalf("second rollback must be a no-op: %v", err)
	}

	got, err := store.CountRows(ctx, schema.TableEvents)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected events to survive rollback, got %d", got)
	}
}

func TestSession_ForeignKeyViolationFailsInsert(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)

	session, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = session.Rollback() }()

	if err := session.CreateSchema(ctx); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	if _, err := session.InsertEvents(ctx, []event.Row{{ID: "orphan", MatchID: 999}}); err == nil {
		t.Fatalf("expected foreign key violation for unknown match")
	}
}

func TestSession_InsertReferenceRejectsNonLookupTable(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)

	session, err := store.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = session.Rollback() }()

	if _, err := session.InsertReference(ctx, schema.TableMatches, []reference.Entry{{ID: 1, Name: "x"}}); err == nil {
		t.Fatalf("expected error for non lookup table")
	}
}

func TestStore_AuditQueries(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)

	for _, table := range store.Registry().Tables() {
		dups, err := store.CountDuplicateKeys(ctx, table.Name, table.PrimaryKey)
		if err != nil {
			t.Fatalf("duplicate keys of %s: %v", table.Name, err)
		}
		if dups != 0 {
			t.Fatalf("unexpected duplicate keys in %s: %d", table.Name, dups)
		}
		for _, fk := range table.ForeignKeys {
			orphans, err := store.CountOrphans(ctx, table.Name, fk)
			if err != nil {
				t.Fatalf("orphans of %s -> %s: %v", table.Name, fk.RefTable, err)
			}
			if orphans != 0 {
				t.Fatalf("unexpected orphans in %s -> %s: %d", table.Name, fk.RefTable, orphans)
			}
		}
	}

	high, err := store.CountWhere(ctx, schema.TableEvents, "shot_statsbomb_xg > ?", 0.3)
	if err != nil {
		t.Fatalf("count where: %v", err)
	}
	if high != 1 {
		t.Fatalf("expected one shot above 0.3 xG, got %d", high)
	}

	tallies, err := store.GoalTallies(ctx)
	if err != nil {
		t.Fatalf("goal tallies: %v", err)
	}
	want := warehouse.GoalTally{MatchID: testMatchID, HomeScore: 1, AwayScore: 0, HomeShotGoals: 1}
	if len(tallies) != 1 || tallies[0] != want {
		t.Fatalf("unexpected tallies: %+v", tallies)
	}

	var samples []warehouse.LocationSample
	err = store.ScanEventLocations(ctx, func(s warehouse.LocationSample) error {
		samples = append(samples, s)
		return nil
	})
	if err != nil {
		t.Fatalf("scan locations: %v", err)
	}
	if len(samples) != 1 || samples[0].EventID != "ev-shot" || samples[0].Location != "[108.4,38.9]" {
		t.Fatalf("unexpected samples: %+v", samples)
	}

	if _, err := store.CountRows(ctx, "not_a_table"); err == nil {
		t.Fatalf("expected unknown table error")
	}
}

func TestStore_AuditQueriesOnEdgeRows(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)

	extra := []event.Row{
		{
			ID: "ev-shootout", IndexNum: ptr(int64(3)), Period: ptr(int64(5)), MatchID: testMatchID,
			Type: ptr("Shot"), TeamID: ptr(int64(217)), ShotOutcome: ptr("Goal"),
		},
		{ID: "ev-repeat", IndexNum: ptr(int64(2)), Period: ptr(int64(1)), MatchID: testMatchID, Type: ptr("Pass")},
		{ID: "ev-unindexed-1", MatchID: testMatchID, Type: ptr("Pass")},
		{ID: "ev-unindexed-2", MatchID: testMatchID, Type: ptr("Pass")},
	}
	stmts, err := querybuilder.InsertModels(schema.TableEvents, extra, 10)
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	for _, stmt := range stmts {
		if _, err := store.db.ExecContext(ctx, stmt.Query, stmt.Args...); err != nil {
			t.Fatalf("insert extra events: %v", err)
		}
	}

	tallies, err := store.GoalTallies(ctx)
	if err != nil {
		t.Fatalf("goal tallies: %v", err)
	}
	if len(tallies) != 1 || tallies[0].HomeShotGoals != 1 {
		t.Fatalf("shootout goal must not count and a missing period must: %+v", tallies)
	}

	dups, err := store.CountDuplicateKeys(ctx, schema.TableEvents, []string{"match_id", "index_num"})
	if err != nil {
		t.Fatalf("duplicate natural keys: %v", err)
	}
	if dups != 1 {
		t.Fatalf("expected one repeated index and no null index groups, got %d", dups)
	}
}

func TestStore_OpenViews(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)

	wantRows := map[string]int{
		warehouse.ViewMatches:    1,
		warehouse.ViewEvents:     2,
		warehouse.ViewLineups:    1,
		warehouse.ViewThreeSixty: 3,
		warehouse.ViewReference:  8,
	}
	for _, name := range warehouse.Views() {
		cursor, err := store.OpenView(ctx, name)
		if err != nil {
			t.Fatalf("open view %s: %v", name, err)
		}
		rows := 0
		for cursor.Next() {
			values, err := cursor.Values()
			if err != nil {
				t.Fatalf("values of %s: %v", name, err)
			}
			if len(values) != len(cursor.Columns()) {
				t.Fatalf("view %s returned %d values for %d columns", name, len(values), len(cursor.Columns()))
			}
			rows++
		}
		if err := cursor.Err(); err != nil {
			t.Fatalf("iterate %s: %v", name, err)
		}
		_ = cursor.Close()
		if rows != wantRows[name] {
			t.Fatalf("rows in view %s: got=%d want=%d", name, rows, wantRows[name])
		}
	}
}

func TestStore_MatchesViewJoinsCompetition(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)
	seed(t, ctx, store)

	cursor, err := store.OpenView(ctx, warehouse.ViewMatches)
	if err != nil {
		t.Fatalf("open view: %v", err)
	}
	defer func() { _ = cursor.Close() }()

	if !cursor.Next() {
		t.Fatalf("expected one match row")
	}
	values, err := cursor.Values()
	if err != nil {
		t.Fatalf("values: %v", err)
	}
	byName := make(map[string]any, len(values))
	for i, col := range cursor.Columns() {
		byName[col.Name] = values[i]
	}
	if byName["competition_name"] != "FIFA World Cup" {
		t.Fatalf("unexpected competition name: %v", byName["competition_name"])
	}
	if byName["home_score"] != int64(1) || byName["is_youth"] != false {
		t.Fatalf("unexpected typed values: home_score=%v is_youth=%v", byName["home_score"], byName["is_youth"])
	}
	if byName["stadium"] != nil {
		t.Fatalf("expected null stadium, got %v", byName["stadium"])
	}
}

func TestViewSQL_UnknownView(t *testing.T) {
	t.Parallel()

	store := NewStore(nil, StoreConfig{})
	if _, _, err := store.ViewSQL("nope"); err == nil {
		t.Fatalf("expected unknown view error")
	}
}
