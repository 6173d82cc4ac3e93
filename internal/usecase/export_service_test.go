package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	warehousemock "github.com/riskibarqy/football-warehouse/internal/mocks/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type sliceCursor struct {
	columns []warehouse.ViewColumn
	rows    [][]any
	pos     int
	closed  bool
}

func newSliceCursor(rows ...[]any) *sliceCursor {
	return &sliceCursor{
		columns: []warehouse.ViewColumn{{Name: "id", Type: schema.TypeInteger}},
		rows:    rows,
		pos:     -1,
	}
}

func (c *sliceCursor) Columns() []warehouse.ViewColumn { return c.columns }
func (c *sliceCursor) Next() bool                      { c.pos++; return c.pos < len(c.rows) }
func (c *sliceCursor) Values() ([]any, error)          { return c.rows[c.pos], nil }
func (c *sliceCursor) Err() error                      { return nil }
func (c *sliceCursor) Close() error                    { c.closed = true; return nil }

func TestExportService_ExportsEveryView(t *testing.T) {
	t.Parallel()

	views := warehousemock.NewViewRepository(t)
	writer := warehousemock.NewViewWriter(t)
	cursors := make(map[string]*sliceCursor)
	for _, name := range warehouse.Views() {
		cursor := newSliceCursor([]any{int64(1)}, []any{int64(2)})
		cursors[name] = cursor
		views.On("OpenView", mock.Anything, name).Return(cursor, nil).Once()
		writer.On("WriteView", mock.Anything, name, cursor).Return(int64(2), nil).Once()
	}

	report, err := NewExportService(views, writer, logging.NewNop()).Export(t.Context())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(report.Views) != len(warehouse.Views()) {
		t.Fatalf("unexpected exported views: %+v", report.Views)
	}
	for i, name := range warehouse.Views() {
		if report.Views[i].View != name || report.Views[i].Rows != 2 {
			t.Fatalf("unexpected export %d: %+v", i, report.Views[i])
		}
		if !cursors[name].closed {
			t.Fatalf("cursor of %s left open", name)
		}
	}
}

func TestExportService_UnknownView(t *testing.T) {
	t.Parallel()

	views := warehousemock.NewViewRepository(t)
	writer := warehousemock.NewViewWriter(t)

	_, err := NewExportService(views, writer, logging.NewNop()).Export(t.Context(), "standings")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportService_WriteFailureClosesCursor(t *testing.T) {
	t.Parallel()

	views := warehousemock.NewViewRepository(t)
	writer := warehousemock.NewViewWriter(t)
	cursor := newSliceCursor()
	boom := errors.New("no space left on device")
	views.On("OpenView", mock.Anything, warehouse.ViewEvents).Return(cursor, nil).Once()
	writer.On("WriteView", mock.Anything, warehouse.ViewEvents, cursor).Return(int64(0), boom).Once()

	_, err := NewExportService(views, writer, logging.NewNop()).Export(t.Context(), warehouse.ViewEvents)
	if !errors.Is(err, boom) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if !cursor.closed {
		t.Fatalf("cursor must be closed after a failed write")
	}
}
