// Package querybuilder renders the small set of SELECT and INSERT shapes the
// warehouse needs, with numbered $N bind parameters accepted by both DuckDB
// and PostgreSQL.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// statement accumulates SQL text and its bind arguments.
type statement struct {
	buf  strings.Builder
	args []any
}

func (s *statement) write(parts ...string) {
	for _, p := range parts {
		s.buf.WriteString(p)
	}
}

func (s *statement) bind(v any) {
	s.args = append(s.args, v)
	s.buf.WriteString("$" + strconv.Itoa(len(s.args)))
}

// expr writes raw SQL, binding one argument for each ? in order. Extra ?
// marks without an argument are written literally.
func (s *statement) expr(sql string, args []any) {
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(args) {
			s.bind(args[next])
			next++
			continue
		}
		s.buf.WriteByte(sql[i])
	}
}

type Condition interface {
	render(s *statement)
}

type conditionFunc func(s *statement)

func (f conditionFunc) render(s *statement) { f(s) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(s *statement) {
		s.write(column, " = ")
		s.bind(value)
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(s *statement) { s.write(column, " IS NULL") })
}

func NotNull(column string) Condition {
	return conditionFunc(func(s *statement) { s.write(column, " IS NOT NULL") })
}

// Expr is a raw predicate; each ? is bound to the next argument.
func Expr(sql string, args ...any) Condition {
	return conditionFunc(func(s *statement) { s.expr(sql, args) })
}

// Or joins conditions with OR inside parentheses. An empty Or is false.
func Or(conditions ...Condition) Condition {
	return conditionFunc(func(s *statement) {
		if len(conditions) == 0 {
			s.write("1=0")
			return
		}
		s.write("(")
		for i, c := range conditions {
			if i > 0 {
				s.write(" OR ")
			}
			s.write("(")
			c.render(s)
			s.write(")")
		}
		s.write(")")
	})
}

func renderAnd(s *statement, keyword string, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.write(" ", keyword, " ")
	for i, c := range conditions {
		if i > 0 {
			s.write(" AND ")
		}
		c.render(s)
	}
}

type join struct {
	table string
	on    string
}

type SelectBuilder struct {
	columns  []string
	from     string
	subquery *SelectBuilder
	joins    []join
	where    []Condition
	groupBy  []string
	having   []Condition
	orderBy  []string
	limit    int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

// From sets the source relation; it may carry an alias ("events e").
func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.from = table
	b.subquery = nil
	return b
}

// FromSelect selects from a derived table named alias. Its bind
// parameters are numbered before those of the outer query.
func (b *SelectBuilder) FromSelect(inner *SelectBuilder, alias string) *SelectBuilder {
	b.subquery = inner
	b.from = alias
	return b
}

func (b *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	b.joins = append(b.joins, join{table: table, on: on})
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

func (b *SelectBuilder) Having(conditions ...Condition) *SelectBuilder {
	b.having = append(b.having, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, columns...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	var s statement
	if err := b.render(&s); err != nil {
		return "", nil, err
	}
	return s.buf.String(), s.args, nil
}

func (b *SelectBuilder) render(s *statement) error {
	if len(b.columns) == 0 {
		return fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.from) == "" {
		return fmt.Errorf("select source is required")
	}
	if len(b.having) > 0 && len(b.groupBy) == 0 {
		return fmt.Errorf("having requires group by")
	}

	s.write("SELECT ", strings.Join(b.columns, ", "), " FROM ")
	if b.subquery != nil {
		s.write("(")
		if err := b.subquery.render(s); err != nil {
			return fmt.Errorf("subquery %s: %w", b.from, err)
		}
		s.write(") ")
	}
	s.write(b.from)
	for _, j := range b.joins {
		s.write(" LEFT JOIN ", j.table, " ON ", j.on)
	}
	renderAnd(s, "WHERE", b.where)
	if len(b.groupBy) > 0 {
		s.write(" GROUP BY ", strings.Join(b.groupBy, ", "))
	}
	renderAnd(s, "HAVING", b.having)
	if len(b.orderBy) > 0 {
		s.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.write(" LIMIT ", strconv.Itoa(b.limit))
	}
	return nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row to the VALUES list.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, values)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	s := statement{args: make([]any, 0, len(b.rows)*len(b.columns))}
	s.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		if i > 0 {
			s.write(", ")
		}
		s.write("(")
		for j, v := range row {
			if j > 0 {
				s.write(", ")
			}
			s.bind(v)
		}
		s.write(")")
	}
	return s.buf.String(), s.args, nil
}
