package sqlstore

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
)

// Dialect captures the few DDL differences between the supported engines.
type Dialect struct {
	Name         string
	doubleType   string
	cascadeDrops bool
}

var (
	DuckDB   = Dialect{Name: "duckdb", doubleType: "DOUBLE"}
	Postgres = Dialect{Name: "postgres", doubleType: "DOUBLE PRECISION", cascadeDrops: true}
)

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DuckDB.Name:
		return DuckDB, nil
	case Postgres.Name:
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (d Dialect) columnType(t schema.ColumnType) string {
	switch t {
	case schema.TypeInteger:
		return "BIGINT"
	case schema.TypeDouble:
		return d.doubleType
	case schema.TypeBoolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}

// CreateTableSQL renders an idempotent CREATE TABLE for t.
func (d Dialect) CreateTableSQL(t schema.Table) string {
	var buf strings.Builder
	buf.WriteString("CREATE TABLE IF NOT EXISTS ")
	buf.WriteString(t.Name)
	buf.WriteString(" (\n")

	lines := make([]string, 0, len(t.Columns)+1+len(t.ForeignKeys))
	for _, c := range t.Columns {
		line := "    " + c.Name + " " + d.columnType(c.Type)
		if c.NotNull {
			line += " NOT NULL"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "    PRIMARY KEY ("+strings.Join(t.PrimaryKey, ", ")+")")
	for _, fk := range t.ForeignKeys {
		lines = append(lines, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s)",
			strings.Join(fk.Columns, ", "), fk.RefTable, strings.Join(fk.RefColumns, ", ")))
	}
	buf.WriteString(strings.Join(lines, ",\n"))
	buf.WriteString("\n)")
	return buf.String()
}

func (d Dialect) DropTableSQL(t schema.Table) string {
	stmt := "DROP TABLE IF EXISTS " + t.Name
	if d.cascadeDrops {
		stmt += " CASCADE"
	}
	return stmt
}

func (d Dialect) CreateIndexSQL(idx schema.Index) string {
	return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.Name, idx.Table, strings.Join(idx.Columns, ", "))
}
