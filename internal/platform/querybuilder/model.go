package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// MaxBindParams is the largest number of bind parameters one statement may
// carry on the supported drivers.
const MaxBindParams = 65535

// Statement is one rendered SQL statement with its bind arguments.
type Statement struct {
	Query string
	Args  []any
	Rows  int
}

// InsertModels renders multi-row inserts for models, splitting them into
// statements of at most batchSize rows. The batch is shrunk further so no
// statement exceeds MaxBindParams.
func InsertModels[T any](table string, models []T, batchSize int) ([]Statement, error) {
	if len(models) == 0 {
		return nil, nil
	}

	cols, err := ModelColumns(models[0])
	if err != nil {
		return nil, err
	}
	size := BatchSize(len(cols), batchSize)

	out := make([]Statement, 0, (len(models)+size-1)/size)
	for start := 0; start < len(models); start += size {
		end := min(start+size, len(models))

		b := InsertInto(table).Columns(cols...)
		for _, m := range models[start:end] {
			_, vals, err := columnsAndValuesFromModel(m)
			if err != nil {
				return nil, err
			}
			b.Values(vals...)
		}
		query, args, err := b.ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build insert into %s: %w", table, err)
		}
		out = append(out, Statement{Query: query, Args: args, Rows: end - start})
	}
	return out, nil
}

// BatchSize caps the configured rows per statement by the bind parameter limit.
func BatchSize(columns, configured int) int {
	if columns <= 0 {
		return max(configured, 1)
	}
	limit := MaxBindParams / columns
	if configured <= 0 || configured > limit {
		return max(limit, 1)
	}
	return configured
}

// ModelColumns lists the db-tagged columns of a struct in field order.
func ModelColumns(model any) ([]string, error) {
	cols, _, err := columnsAndValuesFromModel(model)
	return cols, err
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, bindValue(value.Field(i)))
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

// bindValue unwraps optional fields: a nil pointer binds as NULL and a
// non-nil pointer binds as the value it points to.
func bindValue(v reflect.Value) any {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}
