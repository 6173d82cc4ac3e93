package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

// viewField is one projected column of a view: the source table alias and
// column, and the name it is published under.
type viewField struct {
	alias  string
	table  string
	column string
	as     string
}

type viewDef struct {
	fields []viewField
	from   string
	order  string
}

func allColumns(registry *schema.Registry, alias, table string) []viewField {
	t, _ := registry.Table(table)
	out := make([]viewField, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, viewField{alias: alias, table: table, column: c.Name})
	}
	return out
}

func (s *Store) viewDefs() map[string]viewDef {
	r := s.registry

	matches := allColumns(r, "m", schema.TableMatches)
	matches = append(matches,
		viewField{alias: "c", table: schema.TableCompetitions, column: "name", as: "competition_name"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "gender"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "is_youth"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "is_international"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "country_name"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "season_name"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "match_updated"},
		viewField{alias: "c", table: schema.TableCompetitions, column: "match_available_360"},
	)

	lineups := allColumns(r, "lp", schema.TableLineupPlayers)
	lineups = append(lineups,
		viewField{alias: "l", table: schema.TableLineups, column: "team_name"},
		viewField{alias: "pos", table: schema.TableLineupPositions, column: "position_name"},
		viewField{alias: "pos", table: schema.TableLineupPositions, column: "from_time"},
		viewField{alias: "pos", table: schema.TableLineupPositions, column: "to_time"},
		viewField{alias: "pos", table: schema.TableLineupPositions, column: "from_period"},
		viewField{alias: "pos", table: schema.TableLineupPositions, column: "to_period"},
		viewField{alias: "cd", table: schema.TableLineupCards, column: "card_time"},
		viewField{alias: "cd", table: schema.TableLineupCards, column: "card_type"},
		viewField{alias: "cd", table: schema.TableLineupCards, column: "reason", as: "card_reason"},
	)

	threeSixty := []viewField{{alias: "f", table: schema.TableThreeSixtyFrames, column: "match_id"}}
	threeSixty = append(threeSixty, allColumns(r, "p", schema.TableThreeSixtyPositions)...)
	threeSixty = append(threeSixty, viewField{alias: "f", table: schema.TableThreeSixtyFrames, column: "visible_area"})

	return map[string]viewDef{
		warehouse.ViewMatches: {
			fields: matches,
			from: "matches m JOIN competitions c " +
				"ON m.competition_id = c.competition_id AND m.season_id = c.season_id",
			order: "m.match_id",
		},
		warehouse.ViewEvents: {
			fields: allColumns(r, "e", schema.TableEvents),
			from:   "events e",
			order:  "e.match_id, e.index_num",
		},
		warehouse.ViewLineups: {
			fields: lineups,
			from: "lineup_players lp " +
				"JOIN lineups l ON lp.match_id = l.match_id AND lp.team_id = l.team_id " +
				"LEFT JOIN lineup_positions pos ON lp.match_id = pos.match_id AND lp.team_id = pos.team_id AND lp.player_id = pos.player_id " +
				"LEFT JOIN lineup_cards cd ON lp.match_id = cd.match_id AND lp.team_id = cd.team_id AND lp.player_id = cd.player_id",
			order: "lp.match_id, lp.team_id, lp.player_id, pos.id, cd.id",
		},
		warehouse.ViewThreeSixty: {
			fields: threeSixty,
			from:   "three_sixty_positions p JOIN three_sixty_frames f ON p.event_uuid = f.event_uuid",
			order:  "p.id",
		},
	}
}

// referenceSources feeds the unified lookup view; only teams carry extra info.
var referenceSources = []struct {
	label string
	table string
	extra string
}{
	{label: "team", table: schema.TableTeams, extra: "gender"},
	{label: "player", table: schema.TablePlayers},
	{label: "position", table: schema.TablePositions},
	{label: "event_type", table: schema.TableEventTypes},
	{label: "play_pattern", table: schema.TablePlayPatterns},
	{label: "country", table: schema.TableCountries},
}

var referenceColumns = []warehouse.ViewColumn{
	{Name: "table_name", Type: schema.TypeText},
	{Name: "id", Type: schema.TypeInteger},
	{Name: "name", Type: schema.TypeText},
	{Name: "extra_info", Type: schema.TypeText},
}

// ViewSQL renders the query behind a published view together with the typed
// column list it produces.
func (s *Store) ViewSQL(name string) (string, []warehouse.ViewColumn, error) {
	if name == warehouse.ViewReference {
		parts := make([]string, 0, len(referenceSources))
		for _, src := range referenceSources {
			extra := "CAST(NULL AS TEXT)"
			if src.extra != "" {
				extra = src.extra
			}
			parts = append(parts, fmt.Sprintf("SELECT '%s' AS table_name, id, name, %s AS extra_info FROM %s",
				src.label, extra, src.table))
		}
		query := "SELECT table_name, id, name, extra_info FROM (" +
			strings.Join(parts, " UNION ALL ") + ") ref ORDER BY table_name, id"
		return query, append([]warehouse.ViewColumn(nil), referenceColumns...), nil
	}

	def, ok := s.viewDefs()[name]
	if !ok {
		return "", nil, fmt.Errorf("unknown view %q", name)
	}

	exprs := make([]string, 0, len(def.fields))
	columns := make([]warehouse.ViewColumn, 0, len(def.fields))
	for _, f := range def.fields {
		t, ok := s.registry.Table(f.table)
		if !ok {
			return "", nil, fmt.Errorf("view %s: unknown table %q", name, f.table)
		}
		col, ok := t.Column(f.column)
		if !ok {
			return "", nil, fmt.Errorf("view %s: unknown column %s.%s", name, f.table, f.column)
		}
		published := f.column
		expr := f.alias + "." + f.column
		if f.as != "" {
			published = f.as
			expr += " AS " + f.as
		}
		exprs = append(exprs, expr)
		columns = append(columns, warehouse.ViewColumn{Name: published, Type: col.Type})
	}

	query := "SELECT " + strings.Join(exprs, ", ") + " FROM " + def.from + " ORDER BY " + def.order
	return query, columns, nil
}

func (s *Store) OpenView(ctx context.Context, name string) (warehouse.RowCursor, error) {
	query, columns, err := s.ViewSQL(name)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("open view %s: %w", name, err)
	}
	return &viewCursor{rows: rows, columns: columns}, nil
}

type viewCursor struct {
	rows    *sqlx.Rows
	columns []warehouse.ViewColumn
}

func (c *viewCursor) Columns() []warehouse.ViewColumn {
	return c.columns
}

func (c *viewCursor) Next() bool {
	return c.rows.Next()
}

// Values scans the current row into plain Go values: int64, float64, bool,
// string or nil.
func (c *viewCursor) Values() ([]any, error) {
	dest := make([]any, len(c.columns))
	for i, col := range c.columns {
		switch col.Type {
		case schema.TypeInteger:
			dest[i] = new(sql.NullInt64)
		case schema.TypeDouble:
			dest[i] = new(sql.NullFloat64)
		case schema.TypeBoolean:
			dest[i] = new(sql.NullBool)
		default:
			dest[i] = new(sql.NullString)
		}
	}
	if err := c.rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scan view row: %w", err)
	}

	out := make([]any, len(dest))
	for i, d := range dest {
		switch v := d.(type) {
		case *sql.NullInt64:
			if v.Valid {
				out[i] = v.Int64
			}
		case *sql.NullFloat64:
			if v.Valid {
				out[i] = v.Float64
			}
		case *sql.NullBool:
			if v.Valid {
				out[i] = v.Bool
			}
		case *sql.NullString:
			if v.Valid {
				out[i] = v.String
			}
		}
	}
	return out, nil
}

func (c *viewCursor) Err() error {
	return c.rows.Err()
}

func (c *viewCursor) Close() error {
	return c.rows.Close()
}
