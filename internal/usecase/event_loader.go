package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/riskibarqy/football-warehouse/internal/domain/corpus"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/sourcegraph/conc/stream"
)

const eventDecodeWorkers = 4

type EventLoadResult struct {
	Files int
	Rows  int
	// Records carrying a payload block that does not belong to their type.
	Mismatched int
}

// EventLoader flattens every event file into the events table, one insert
// batch set per match.
type EventLoader struct {
	corpus corpus.Reader
	names  reference.NameOverrides
	logger *logging.Logger
}

func NewEventLoader(reader corpus.Reader, names reference.NameOverrides, logger *logging.Logger) *EventLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventLoader{corpus: reader, names: names, logger: logger}
}

func (l *EventLoader) Load(ctx context.Context, session warehouse.Session) (EventLoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventLoader.Load")
	defer span.End()

	files, err := l.corpus.EventFiles(ctx)
	if err != nil {
		return EventLoadResult{}, fmt.Errorf("list event files: %w", err)
	}

	var (
		result   EventLoadResult
		firstErr error
		failed   atomic.Bool
	)
	// Files decode concurrently; inserts run one at a time in file order.
	s := stream.New().WithMaxGoroutines(eventDecodeWorkers)
	for _, path := range files {
		s.Go(func() stream.Callback {
			d := l.decode(ctx, path, &failed)
			return func() {
				if firstErr != nil {
					return
				}
				if d.err != nil {
					firstErr = d.err
					failed.Store(true)
					return
				}
				n, err := session.InsertEvents(ctx, d.rows)
				if err != nil {
					firstErr = fmt.Errorf("load events of match %d: %w", d.matchID, err)
					failed.Store(true)
					return
				}
				result.Files++
				result.Rows += n
				result.Mismatched += d.mismatched
			}
		})
	}
	s.Wait()
	if firstErr != nil {
		return result, firstErr
	}

	if result.Mismatched > 0 {
		l.logger.DebugContext(ctx, "events with payloads outside their type", "count", result.Mismatched)
	}
	return result, nil
}

type decodedEvents struct {
	matchID    int64
	rows       []event.Row
	mismatched int
	err        error
}

// decode reads and flattens one event file. It does nothing once another
// file has failed.
func (l *EventLoader) decode(ctx context.Context, path string, failed *atomic.Bool) decodedEvents {
	if failed.Load() {
		return decodedEvents{}
	}
	if err := ctx.Err(); err != nil {
		return decodedEvents{err: err}
	}
	matchID, err := event.MatchIDFromPath(path)
	if err != nil {
		return decodedEvents{err: err}
	}
	records, err := l.corpus.ReadEvents(ctx, path)
	if err != nil {
		return decodedEvents{err: fmt.Errorf("read events %s: %w", path, err)}
	}

	out := decodedEvents{matchID: matchID, rows: make([]event.Row, 0, len(records))}
	for _, rec := range records {
		if rec.Mismatched() {
			out.mismatched++
		}
		row, err := event.Flatten(matchID, rec, l.names)
		if err != nil {
			return decodedEvents{err: fmt.Errorf("flatten events of match %d: %w", matchID, err)}
		}
		out.rows = append(out.rows, row)
	}
	return out
}
