package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-warehouse/internal/domain/corpus"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type TrackingLoadResult struct {
	Files        int
	SkippedFiles int
	Frames       int
	Positions    int
	// Snapshots repeated within a file.
	SkippedFrames int
}

// TrackingLoader loads the optional 360 frames. Source files are filtered to
// the parseable ones first; the load itself treats any error as fatal.
type TrackingLoader struct {
	corpus corpus.Reader
	logger *logging.Logger
}

func NewTrackingLoader(reader corpus.Reader, logger *logging.Logger) *TrackingLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &TrackingLoader{corpus: reader, logger: logger}
}

func (l *TrackingLoader) Load(ctx context.Context, session warehouse.Session, positions tracking.IDSource) (TrackingLoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrackingLoader.Load")
	defer span.End()

	all, err := l.corpus.TrackingFiles(ctx)
	if err != nil {
		return TrackingLoadResult{}, fmt.Errorf("list tracking files: %w", err)
	}
	valid, err := l.corpus.FilterValid(ctx, all)
	if err != nil {
		return TrackingLoadResult{}, fmt.Errorf("validate tracking files: %w", err)
	}

	result := TrackingLoadResult{SkippedFiles: len(all) - len(valid)}
	if result.SkippedFiles > 0 {
		l.logger.WarnContext(ctx, "malformed tracking files skipped",
			"skipped", result.SkippedFiles,
			"valid", len(valid),
		)
	}

	for _, path := range valid {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		matchID, err := event.MatchIDFromPath(path)
		if err != nil {
			return result, err
		}
		snapshots, err := l.corpus.ReadTracking(ctx, path)
		if err != nil {
			return result, fmt.Errorf("read tracking %s: %w", path, err)
		}
		exp, err := tracking.Expand(matchID, snapshots, positions)
		if err != nil {
			return result, fmt.Errorf("expand tracking of match %d: %w", matchID, err)
		}

		n, err := session.InsertFrames(ctx, exp.Frames)
		if err != nil {
			return result, fmt.Errorf("load frames of match %d: %w", matchID, err)
		}
		result.Frames += n
		if n, err = session.InsertFramePositions(ctx, exp.Positions); err != nil {
			return result, fmt.Errorf("load frame positions of match %d: %w", matchID, err)
		}
		result.Positions += n
		result.SkippedFrames += exp.SkippedFrames
		result.Files++
	}
	return result, nil
}
