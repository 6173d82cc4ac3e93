package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("id", int64(5503)), IsNull("name")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE id = $1 AND name IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(5503) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_GroupByWithExpr(t *testing.T) {
	query, args, err := Select("match_id", "team_id", "COUNT(*) AS goals").
		From("events").
		Where(Expr("type = ? AND shot_outcome = ?", "Shot", "Goal")).
		GroupBy("match_id", "team_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id, team_id, COUNT(*) AS goals FROM events WHERE type = $1 AND shot_outcome = $2 GROUP BY match_id, team_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Shot" || args[1] != "Goal" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_LeftJoinOrphans(t *testing.T) {
	query, _, err := Select("COUNT(*)").
		From("events c").
		LeftJoin("teams p", "c.team_id = p.id").
		Where(NotNull("c.team_id"), IsNull("p.id")).
		ToSQL()
	if err != nil {
		t.Fatalf("build join query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM events c LEFT JOIN teams p ON c.team_id = p.id WHERE c.team_id IS NOT NULL AND p.id IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestSelectBuilder_SubqueryNumbersInnerArgsFirst(t *testing.T) {
	inner := Select("match_id").
		From("events").
		Where(Eq("period", int64(5))).
		GroupBy("match_id").
		Having(Expr("COUNT(*) > ?", int64(1)))
	query, args, err := Select("COUNT(*)").
		FromSelect(inner, "dup").
		Where(Expr("match_id > ?", int64(0))).
		ToSQL()
	if err != nil {
		t.Fatalf("build subquery: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM (SELECT match_id FROM events WHERE period = $1 GROUP BY match_id HAVING COUNT(*) > $2) dup WHERE match_id > $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[1] != int64(1) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Or(t *testing.T) {
	query, args, err := Select("COUNT(*)").
		From("players").
		Where(Or(
			Expr("id = ? AND name <> ?", int64(4354), "Philip Foden"),
			Expr("id = ? AND name <> ?", int64(3961), "N'Golo Kanté"),
		)).
		ToSQL()
	if err != nil {
		t.Fatalf("build or query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM players WHERE ((id = $1 AND name <> $2) OR (id = $3 AND name <> $4))"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, _, err = Select("COUNT(*)").From("players").Where(Or()).ToSQL()
	if err != nil || query != "SELECT COUNT(*) FROM players WHERE 1=0" {
		t.Fatalf("unexpected empty or: %q %v", query, err)
	}
}

func TestSelectBuilder_Errors(t *testing.T) {
	if _, _, err := Select().From("events").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without source")
	}
	if _, _, err := Select("id").From("events").Having(Expr("COUNT(*) > 1")).ToSQL(); err == nil {
		t.Fatalf("expected error for having without group by")
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("countries").
		Columns("id", "name").
		Values(int64(11), "Argentina").
		Values(int64(68), "England").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO countries (id, name) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != int64(68) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("countries").
		Columns("id", "name").
		Values(int64(11)).
		ToSQL()
	if err == nil {
		t.Fatalf("expected arity error")
	}
}
