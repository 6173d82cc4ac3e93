package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type ViewExport struct {
	View     string
	Rows     int64
	Duration time.Duration
}

type ExportReport struct {
	Views []ViewExport
}

// ExportService publishes the denormalised views of a built warehouse.
type ExportService struct {
	views  warehouse.ViewRepository
	writer warehouse.ViewWriter
	logger *logging.Logger
}

func NewExportService(views warehouse.ViewRepository, writer warehouse.ViewWriter, logger *logging.Logger) *ExportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ExportService{views: views, writer: writer, logger: logger}
}

// Export writes every view, or only the named ones when names is non-empty.
func (s *ExportService) Export(ctx context.Context, names ...string) (ExportReport, error) {
	ctx, span := startCommandSpan(ctx, "usecase.ExportService.Export")
	defer span.End()

	if len(names) == 0 {
		names = warehouse.Views()
	}
	known := make(map[string]struct{}, len(warehouse.Views()))
	for _, v := range warehouse.Views() {
		known[v] = struct{}{}
	}
	for _, name := range names {
		if _, ok := known[name]; !ok {
			return ExportReport{}, failSpan(span, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, name))
		}
	}

	var report ExportReport
	for _, name := range names {
		start := time.Now()
		s.logger.InfoContext(ctx, "exporting view", "view", name)
		rows, err := s.exportView(ctx, name)
		if err != nil {
			return report, failSpan(span, err)
		}
		elapsed := time.Since(start)
		report.Views = append(report.Views, ViewExport{View: name, Rows: rows, Duration: elapsed})
		s.logger.InfoContext(ctx, "view exported", "view", name, "rows", rows, "duration_ms", elapsed.Milliseconds())
	}
	return report, nil
}

func (s *ExportService) exportView(ctx context.Context, name string) (int64, error) {
	cursor, err := s.views.OpenView(ctx, name)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := cursor.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "close view cursor failed", "view", name, "error", closeErr)
		}
	}()

	rows, err := s.writer.WriteView(ctx, name, cursor)
	if err != nil {
		return rows, fmt.Errorf("write view %s: %w", name, err)
	}
	return rows, nil
}
