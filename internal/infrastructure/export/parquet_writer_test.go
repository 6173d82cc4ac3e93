package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
)

type sliceCursor struct {
	columns []warehouse.ViewColumn
	rows    [][]any
	pos     int
	err     error
}

func (c *sliceCursor) Columns() []warehouse.ViewColumn { return c.columns }

func (c *sliceCursor) Next() bool {
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor) Values() ([]any, error) { return c.rows[c.pos-1], nil }
func (c *sliceCursor) Err() error             { return c.err }
func (c *sliceCursor) Close() error           { return nil }

func matchesCursor() *sliceCursor {
	return &sliceCursor{
		columns: []warehouse.ViewColumn{
			{Name: "match_id", Type: schema.TypeInteger},
			{Name: "home_team", Type: schema.TypeText},
			{Name: "home_score", Type: schema.TypeInteger},
			{Name: "xg", Type: schema.TypeDouble},
			{Name: "neutral", Type: schema.TypeBoolean},
		},
		rows: [][]any{
			{int64(3788741), "Barcelona", int64(1), 0.31, false},
			{int64(3788742), "Real Madrid", nil, nil, true},
			{int64(3788743), nil, int64(3), 1.5, nil},
		},
	}
}

func readTable(t *testing.T, path string) arrow.Table {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open parquet: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	table, err := pqarrow.ReadTable(t.Context(), f, parquet.NewReaderProperties(memory.DefaultAllocator), pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		t.Fatalf("read parquet: %v", err)
	}
	t.Cleanup(table.Release)
	return table
}

func TestParquetWriter_WritesTypedColumnsAndNulls(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewParquetWriter(ParquetConfig{Dir: dir, RowGroupRows: 2})
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	written, err := w.WriteView(t.Context(), warehouse.ViewMatches, matchesCursor())
	if err != nil {
		t.Fatalf("write view: %v", err)
	}
	if written != 3 {
		t.Fatalf("unexpected rows written: %d", written)
	}
	if w.Path(warehouse.ViewMatches) != filepath.Join(dir, "matches.parquet") {
		t.Fatalf("unexpected path: %s", w.Path(warehouse.ViewMatches))
	}

	table := readTable(t, w.Path(warehouse.ViewMatches))
	if table.NumRows() != 3 {
		t.Fatalf("unexpected rows read back: %d", table.NumRows())
	}
	if table.NumCols() != 5 {
		t.Fatalf("unexpected columns read back: %d", table.NumCols())
	}

	wantTypes := []arrow.Type{arrow.INT64, arrow.STRING, arrow.INT64, arrow.FLOAT64, arrow.BOOL}
	for i, want := range wantTypes {
		if got := table.Schema().Field(i).Type.ID(); got != want {
			t.Fatalf("column %d type: got=%s want=%s", i, got, want)
		}
	}

	ids := table.Column(0).Data().Chunk(0).(*array.Int64)
	if ids.Value(0) != 3788741 {
		t.Fatalf("unexpected first match id: %d", ids.Value(0))
	}

	nulls := 0
	for i := 0; i < int(table.NumCols()); i++ {
		nulls += table.Column(i).NullN()
	}
	if nulls != 4 {
		t.Fatalf("unexpected null count: %d", nulls)
	}
}

func TestParquetWriter_EmptyViewStillWritesSchema(t *testing.T) {
	t.Parallel()

	w, err := NewParquetWriter(ParquetConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	cursor := matchesCursor()
	cursor.rows = nil

	written, err := w.WriteView(t.Context(), warehouse.ViewMatches, cursor)
	if err != nil {
		t.Fatalf("write view: %v", err)
	}
	if written != 0 {
		t.Fatalf("expected no rows, got %d", written)
	}
	table := readTable(t, w.Path(warehouse.ViewMatches))
	if table.NumRows() != 0 || table.NumCols() != 5 {
		t.Fatalf("unexpected empty table shape: rows=%d cols=%d", table.NumRows(), table.NumCols())
	}
}

func TestParquetWriter_TypeMismatchLeavesNoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewParquetWriter(ParquetConfig{Dir: dir})
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	cursor := matchesCursor()
	cursor.rows[1][0] = "not-a-number"

	if _, err := w.WriteView(t.Context(), warehouse.ViewMatches, cursor); err == nil {
		t.Fatalf("expected type mismatch error")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files left behind, got %d", len(entries))
	}
}

func TestParquetWriter_CursorErrorIsReturned(t *testing.T) {
	t.Parallel()

	w, err := NewParquetWriter(ParquetConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	cursor := matchesCursor()
	boom := errors.New("connection reset")
	cursor.err = boom

	if _, err := w.WriteView(t.Context(), warehouse.ViewMatches, cursor); !errors.Is(err, boom) {
		t.Fatalf("expected cursor error, got %v", err)
	}
	if _, err := os.Stat(w.Path(warehouse.ViewMatches)); !os.IsNotExist(err) {
		t.Fatalf("expected no published file, got %v", err)
	}
}

func TestNewParquetWriter_RequiresDir(t *testing.T) {
	t.Parallel()

	if _, err := NewParquetWriter(ParquetConfig{}); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}
