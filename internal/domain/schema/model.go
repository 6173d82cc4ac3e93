package schema

// ColumnType is the portable SQL type of a column. Store dialects may render it differently.
type ColumnType string

const (
	TypeInteger ColumnType = "INTEGER"
	TypeText    ColumnType = "TEXT"
	TypeDouble  ColumnType = "DOUBLE"
	TypeBoolean ColumnType = "BOOLEAN"
)

type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool
}

// IsFlag reports whether the column is a defaulted boolean flag.
func (c Column) IsFlag() bool {
	return c.Type == TypeBoolean && c.NotNull
}

type ForeignKey struct {
	Columns    []string
	RefTable   string
	RefColumns []string
}

type Table struct {
	Name        string
	Columns     []Column
	PrimaryKey  []string
	ForeignKeys []ForeignKey
	// NaturalKeys are column sets that must also identify a row. They are
	// audited after a build, not enforced by the store.
	NaturalKeys [][]string
}

func (t Table) ColumnNames() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Name)
	}
	return out
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) FlagColumns() []string {
	out := make([]string, 0)
	for _, c := range t.Columns {
		if c.IsFlag() {
			out = append(out, c.Name)
		}
	}
	return out
}

// DependsOn lists referenced tables in foreign key order, without duplicates.
func (t Table) DependsOn() []string {
	seen := make(map[string]struct{}, len(t.ForeignKeys))
	out := make([]string, 0, len(t.ForeignKeys))
	for _, fk := range t.ForeignKeys {
		if _, ok := seen[fk.RefTable]; ok {
			continue
		}
		seen[fk.RefTable] = struct{}{}
		out = append(out, fk.RefTable)
	}
	return out
}

type Index struct {
	Name    string
	Table   string
	Columns []string
}
