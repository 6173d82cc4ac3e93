package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/querybuilder"
)

func (s *Store) CountRows(ctx context.Context, table string) (int64, error) {
	if err := s.knownTable(table); err != nil {
		return 0, err
	}
	query, args, err := querybuilder.Select("COUNT(*)").From(table).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	return s.count(ctx, query, args...)
}

// CountDuplicateKeys counts key values that occur on more than one row. Rows
// with a null key column are not compared.
func (s *Store) CountDuplicateKeys(ctx context.Context, table string, columns []string) (int64, error) {
	if err := s.knownTable(table); err != nil {
		return 0, err
	}
	key := strings.Join(columns, ", ")
	present := make([]querybuilder.Condition, 0, len(columns))
	for _, col := range columns {
		present = append(present, querybuilder.NotNull(col))
	}
	dup := querybuilder.Select(key).
		From(table).
		Where(present...).
		GroupBy(key).
		Having(querybuilder.Expr("COUNT(*) > 1"))
	query, args, err := querybuilder.Select("COUNT(*)").FromSelect(dup, "dup").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build duplicate key query: %w", err)
	}
	return s.count(ctx, query, args...)
}

// CountOrphans counts rows of table whose non-null foreign key has no parent.
func (s *Store) CountOrphans(ctx context.Context, table string, fk schema.ForeignKey) (int64, error) {
	if err := s.knownTable(table); err != nil {
		return 0, err
	}
	if err := s.knownTable(fk.RefTable); err != nil {
		return 0, err
	}

	on := make([]string, 0, len(fk.Columns))
	where := make([]querybuilder.Condition, 0, len(fk.Columns)+1)
	for i, col := range fk.Columns {
		on = append(on, fmt.Sprintf("c.%s = p.%s", col, fk.RefColumns[i]))
		where = append(where, querybuilder.NotNull("c."+col))
	}
	where = append(where, querybuilder.IsNull("p."+fk.RefColumns[0]))
	query, args, err := querybuilder.Select("COUNT(*)").
		From(table+" c").
		LeftJoin(fk.RefTable+" p", strings.Join(on, " AND ")).
		Where(where...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build orphan query: %w", err)
	}
	return s.count(ctx, query, args...)
}

// CountWhere counts rows matching condition. Use ? for bind parameters.
func (s *Store) CountWhere(ctx context.Context, table, condition string, args ...any) (int64, error) {
	if err := s.knownTable(table); err != nil {
		return 0, err
	}
	query, bound, err := querybuilder.Select("COUNT(*)").
		From(table).
		Where(querybuilder.Expr(condition, args...)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	return s.count(ctx, query, bound...)
}

const goalTalliesQuery = `
SELECT
    m.match_id,
    COALESCE(m.home_score, 0) AS home_score,
    COALESCE(m.away_score, 0) AS away_score,
    CAST(COALESCE(SUM(CASE WHEN g.team_id = m.home_team_id THEN g.shot_goals ELSE 0 END), 0) AS BIGINT) AS home_shot_goals,
    CAST(COALESCE(SUM(CASE WHEN g.team_id = m.away_team_id THEN g.shot_goals ELSE 0 END), 0) AS BIGINT) AS away_shot_goals,
    CAST(COALESCE(SUM(CASE WHEN g.team_id = m.home_team_id THEN g.own_goals_for ELSE 0 END), 0) AS BIGINT) AS home_own_goals_for,
    CAST(COALESCE(SUM(CASE WHEN g.team_id = m.away_team_id THEN g.own_goals_for ELSE 0 END), 0) AS BIGINT) AS away_own_goals_for
FROM matches m
LEFT JOIN (
    SELECT
        match_id,
        team_id,
        CAST(SUM(CASE WHEN type = 'Shot' AND shot_outcome = 'Goal' THEN 1 ELSE 0 END) AS BIGINT) AS shot_goals,
        CAST(SUM(CASE WHEN type = 'Own Goal For' THEN 1 ELSE 0 END) AS BIGINT) AS own_goals_for
    FROM events
    WHERE period IS NULL OR period < 5
    GROUP BY match_id, team_id
) g ON g.match_id = m.match_id
WHERE m.home_score IS NOT NULL AND m.away_score IS NOT NULL
GROUP BY m.match_id, m.home_score, m.away_score
ORDER BY m.match_id`

// GoalTallies counts Shot→Goal events per side. Shootout events (period 5)
// are excluded; events without a period are counted.
func (s *Store) GoalTallies(ctx context.Context) ([]warehouse.GoalTally, error) {
	var out []warehouse.GoalTally
	if err := s.db.SelectContext(ctx, &out, goalTalliesQuery); err != nil {
		return nil, fmt.Errorf("query goal tallies: %w", err)
	}
	return out, nil
}

// ScanEventLocations streams every event with a stored location.
func (s *Store) ScanEventLocations(ctx context.Context, fn func(warehouse.LocationSample) error) error {
	query, args, err := querybuilder.Select("id", "location", "location_x", "location_y").
		From(schema.TableEvents).
		Where(querybuilder.NotNull("location")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build location query: %w", err)
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query event locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sample warehouse.LocationSample
		if err := rows.StructScan(&sample); err != nil {
			return fmt.Errorf("scan event location: %w", err)
		}
		if err := fn(sample); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate event locations: %w", err)
	}
	return nil
}

func (s *Store) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("run count query: %w", err)
	}
	return n, nil
}

func (s *Store) knownTable(name string) error {
	if _, ok := s.registry.Table(name); !ok {
		return fmt.Errorf("unknown table %q", name)
	}
	return nil
}
