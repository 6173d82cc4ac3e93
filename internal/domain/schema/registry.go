package schema

import (
	"fmt"
	"strings"
)

// Registry holds validated table and index declarations together with a
// foreign-key safe creation order.
type Registry struct {
	tables      []Table
	byName      map[string]int
	createOrder []int
	indexes     []Index
}

// NewRegistry validates the declarations and computes the creation order.
// Tables are emitted as soon as every table they reference has been emitted;
// ties are broken by declaration order so the result is stable.
func NewRegistry(tables []Table, indexes []Index) (*Registry, error) {
	r := &Registry{
		tables:  append([]Table(nil), tables...),
		byName:  make(map[string]int, len(tables)),
		indexes: append([]Index(nil), indexes...),
	}

	for i, t := range r.tables {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("table %d has empty name", i)
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("duplicate table %q", name)
		}
		if len(t.Columns) == 0 {
			return nil, fmt.Errorf("table %q has no columns", name)
		}
		r.byName[name] = i
	}

	for _, t := range r.tables {
		if err := r.validateTable(t); err != nil {
			return nil, err
		}
	}
	for _, idx := range r.indexes {
		if err := r.validateIndex(idx); err != nil {
			return nil, err
		}
	}

	order, err := r.topologicalOrder()
	if err != nil {
		return nil, err
	}
	r.createOrder = order
	return r, nil
}

// MustNewRegistry is NewRegistry for compiled-in declarations.
func MustNewRegistry(tables []Table, indexes []Index) *Registry {
	r, err := NewRegistry(tables, indexes)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Table(name string) (Table, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Table{}, false
	}
	return r.tables[i], true
}

// Tables returns the declarations in declaration order.
func (r *Registry) Tables() []Table {
	return append([]Table(nil), r.tables...)
}

func (r *Registry) CreateOrder() []Table {
	out := make([]Table, 0, len(r.createOrder))
	for _, i := range r.createOrder {
		out = append(out, r.tables[i])
	}
	return out
}

// DropOrder is the exact reverse of CreateOrder.
func (r *Registry) DropOrder() []Table {
	out := make([]Table, 0, len(r.createOrder))
	for i := len(r.createOrder) - 1; i >= 0; i-- {
		out = append(out, r.tables[r.createOrder[i]])
	}
	return out
}

func (r *Registry) Indexes() []Index {
	return append([]Index(nil), r.indexes...)
}

func (r *Registry) validateTable(t Table) error {
	cols := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("table %q has a column with empty name", t.Name)
		}
		if _, exists := cols[c.Name]; exists {
			return fmt.Errorf("table %q declares column %q twice", t.Name, c.Name)
		}
		cols[c.Name] = struct{}{}
	}

	if len(t.PrimaryKey) == 0 {
		return fmt.Errorf("table %q has no primary key", t.Name)
	}
	for _, pk := range t.PrimaryKey {
		if _, ok := cols[pk]; !ok {
			return fmt.Errorf("table %q primary key references unknown column %q", t.Name, pk)
		}
	}

	for _, key := range t.NaturalKeys {
		if len(key) == 0 {
			return fmt.Errorf("table %q has an empty natural key", t.Name)
		}
		for _, c := range key {
			if _, ok := cols[c]; !ok {
				return fmt.Errorf("table %q natural key uses unknown column %q", t.Name, c)
			}
		}
	}

	for _, fk := range t.ForeignKeys {
		if len(fk.Columns) == 0 || len(fk.Columns) != len(fk.RefColumns) {
			return fmt.Errorf("table %q has malformed foreign key to %q", t.Name, fk.RefTable)
		}
		for _, c := range fk.Columns {
			if _, ok := cols[c]; !ok {
				return fmt.Errorf("table %q foreign key uses unknown column %q", t.Name, c)
			}
		}
		ref, ok := r.Table(fk.RefTable)
		if !ok {
			return fmt.Errorf("table %q references unknown table %q", t.Name, fk.RefTable)
		}
		if fk.RefTable == t.Name {
			return fmt.Errorf("table %q references itself", t.Name)
		}
		if !sameColumns(ref.PrimaryKey, fk.RefColumns) {
			return fmt.Errorf("table %q foreign key must reference primary key of %q", t.Name, fk.RefTable)
		}
	}
	return nil
}

func (r *Registry) validateIndex(idx Index) error {
	if strings.TrimSpace(idx.Name) == "" {
		return fmt.Errorf("index on %q has empty name", idx.Table)
	}
	t, ok := r.Table(idx.Table)
	if !ok {
		return fmt.Errorf("index %q references unknown table %q", idx.Name, idx.Table)
	}
	if len(idx.Columns) == 0 {
		return fmt.Errorf("index %q has no columns", idx.Name)
	}
	for _, c := range idx.Columns {
		if _, ok := t.Column(c); !ok {
			return fmt.Errorf("index %q references unknown column %s.%s", idx.Name, idx.Table, c)
		}
	}
	return nil
}

func (r *Registry) topologicalOrder() ([]int, error) {
	emitted := make([]bool, len(r.tables))
	order := make([]int, 0, len(r.tables))

	for len(order) < len(r.tables) {
		progressed := false
		for i, t := range r.tables {
			if emitted[i] || !r.depsEmitted(t, emitted) {
				continue
			}
			emitted[i] = true
			order = append(order, i)
			progressed = true
			break
		}
		if !progressed {
			pending := make([]string, 0)
			for i, t := range r.tables {
				if !emitted[i] {
					pending = append(pending, t.Name)
				}
			}
			return nil, fmt.Errorf("foreign key cycle among tables: %s", strings.Join(pending, ", "))
		}
	}
	return order, nil
}

func (r *Registry) depsEmitted(t Table, emitted []bool) bool {
	for _, dep := range t.DependsOn() {
		if !emitted[r.byName[dep]] {
			return false
		}
	}
	return true
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
