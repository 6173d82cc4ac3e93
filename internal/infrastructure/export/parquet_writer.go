package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

const defaultRowGroupRows = 64 * 1024

var _ warehouse.ViewWriter = (*ParquetWriter)(nil)

type ParquetConfig struct {
	Dir string
	// RowGroupRows caps the rows buffered before a row group is flushed.
	RowGroupRows int
	Allocator    memory.Allocator
	Logger       *logging.Logger
}

// ParquetWriter writes each view to <dir>/<view>.parquet with snappy
// compression. Files are replaced atomically.
type ParquetWriter struct {
	dir          string
	rowGroupRows int
	alloc        memory.Allocator
	props        *parquet.WriterProperties
	logger       *logging.Logger
}

func NewParquetWriter(cfg ParquetConfig) (*ParquetWriter, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("export directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	rowGroupRows := cfg.RowGroupRows
	if rowGroupRows <= 0 {
		rowGroupRows = defaultRowGroupRows
	}
	alloc := cfg.Allocator
	if alloc == nil {
		alloc = memory.DefaultAllocator
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &ParquetWriter{
		dir:          cfg.Dir,
		rowGroupRows: rowGroupRows,
		alloc:        alloc,
		props:        parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy)),
		logger:       logger,
	}, nil
}

// Path returns the file a view is written to.
func (w *ParquetWriter) Path(view string) string {
	return filepath.Join(w.dir, view+".parquet")
}

func (w *ParquetWriter) WriteView(ctx context.Context, name string, rows warehouse.RowCursor) (written int64, err error) {
	arrowSchema, err := arrowSchemaFor(rows.Columns())
	if err != nil {
		return 0, fmt.Errorf("view %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(w.dir, name+"-*.parquet.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temp file for %s: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	fw, err := pqarrow.NewFileWriter(arrowSchema, tmp, w.props, pqarrow.DefaultWriterProps())
	if err != nil {
		return 0, fmt.Errorf("open parquet writer for %s: %w", name, err)
	}

	builder := array.NewRecordBuilder(w.alloc, arrowSchema)
	defer builder.Release()

	pending := 0
	flush := func() error {
		if pending == 0 {
			return nil
		}
		rec := builder.NewRecord()
		defer rec.Release()
		pending = 0
		return fw.Write(rec)
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			_ = fw.Close()
			return written, err
		}
		values, err := rows.Values()
		if err != nil {
			_ = fw.Close()
			return written, err
		}
		if err := appendRow(builder, values); err != nil {
			_ = fw.Close()
			return written, fmt.Errorf("view %s row %d: %w", name, written+1, err)
		}
		pending++
		written++
		if pending >= w.rowGroupRows {
			if err := flush(); err != nil {
				_ = fw.Close()
				return written, fmt.Errorf("write row group of %s: %w", name, err)
			}
		}
	}
	if err := rows.Err(); err != nil {
		_ = fw.Close()
		return written, fmt.Errorf("read view %s: %w", name, err)
	}
	if err := flush(); err != nil {
		_ = fw.Close()
		return written, fmt.Errorf("write row group of %s: %w", name, err)
	}
	if err := fw.Close(); err != nil {
		return written, fmt.Errorf("finish parquet file for %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return written, fmt.Errorf("close parquet file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), w.Path(name)); err != nil {
		return written, fmt.Errorf("publish parquet file for %s: %w", name, err)
	}

	w.logger.DebugContext(ctx, "parquet file written", "view", name, "path", w.Path(name), "rows", written)
	return written, nil
}

func arrowSchemaFor(columns []warehouse.ViewColumn) (*arrow.Schema, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("view has no columns")
	}
	fields := make([]arrow.Field, 0, len(columns))
	for _, c := range columns {
		var dt arrow.DataType
		switch c.Type {
		case schema.TypeInteger:
			dt = arrow.PrimitiveTypes.Int64
		case schema.TypeDouble:
			dt = arrow.PrimitiveTypes.Float64
		case schema.TypeBoolean:
			dt = arrow.FixedWidthTypes.Boolean
		case schema.TypeText:
			dt = arrow.BinaryTypes.String
		default:
			return nil, fmt.Errorf("column %s has unsupported type %q", c.Name, c.Type)
		}
		fields = append(fields, arrow.Field{Name: c.Name, Type: dt, Nullable: true})
	}
	return arrow.NewSchema(fields, nil), nil
}

func appendRow(b *array.RecordBuilder, values []any) error {
	if len(values) != b.Schema().NumFields() {
		return fmt.Errorf("got %d values for %d columns", len(values), b.Schema().NumFields())
	}
	for i, v := range values {
		if err := appendValue(b.Field(i), v); err != nil {
			return fmt.Errorf("column %s: %w", b.Schema().Field(i).Name, err)
		}
	}
	return nil
}

func appendValue(fb array.Builder, v any) error {
	if v == nil {
		fb.AppendNull()
		return nil
	}
	switch b := fb.(type) {
	case *array.Int64Builder:
		n, ok := v.(int64)
		if !ok {
			return fmt.Errorf("expected int64, got %T", v)
		}
		b.Append(n)
	case *array.Float64Builder:
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("expected float64, got %T", v)
		}
		b.Append(f)
	case *array.BooleanBuilder:
		flag, ok := v.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", v)
		}
		b.Append(flag)
	case *array.StringBuilder:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		b.Append(s)
	default:
		return fmt.Errorf("unsupported builder %T", fb)
	}
	return nil
}
