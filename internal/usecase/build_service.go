package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/corpus"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/id"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// Skip counters reported by a build.
const (
	SkippedTrackingFiles  = "tracking_files"
	SkippedTrackingFrames = "tracking_frames"
	SkippedLineupTeams    = "lineup_teams"
	SkippedLineupPlayers  = "lineup_players"
	SkippedNameConflicts  = "reference_name_conflicts"
)

type PhaseTiming struct {
	Phase    string
	Duration time.Duration
}

// BuildReport summarises one committed build.
type BuildReport struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Rows      map[string]int
	Skipped   map[string]int
	Phases    []PhaseTiming
}

// TotalRows sums the rows written across all tables.
func (r BuildReport) TotalRows() int {
	total := 0
	for _, n := range r.Rows {
		total += n
	}
	return total
}

// BuildService performs the destructive full rebuild of the warehouse.
type BuildService struct {
	corpus   corpus.Reader
	store    warehouse.Repository
	names    reference.NameOverrides
	runIDs   id.Generator
	observer BuildObserver
	logger   *logging.Logger

	resolver *ReferenceResolver
	events   *EventLoader
	lineups  *LineupExpander
	tracking *TrackingLoader
}

func NewBuildService(
	reader corpus.Reader,
	store warehouse.Repository,
	names reference.NameOverrides,
	runIDs id.Generator,
	observer BuildObserver,
	logger *logging.Logger,
) *BuildService {
	if names == nil {
		names = reference.DefaultPlayerOverrides()
	}
	if runIDs == nil {
		runIDs = id.NewRunIDGenerator()
	}
	if observer == nil {
		observer = nopBuildObserver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BuildService{
		corpus:   reader,
		store:    store,
		names:    names,
		runIDs:   runIDs,
		observer: observer,
		logger:   logger,
		resolver: NewReferenceResolver(reader, names, logger),
		events:   NewEventLoader(reader, names, logger),
		lineups:  NewLineupExpander(reader, names, logger),
		tracking: NewTrackingLoader(reader, logger),
	}
}

// Build drops and reloads every table inside one transaction. On any error the
// transaction is rolled back and the previous warehouse is left untouched.
func (s *BuildService) Build(ctx context.Context) (BuildReport, error) {
	ctx, span := startCommandSpan(ctx, "usecase.BuildService.Build")
	defer span.End()

	runID, err := s.runIDs.NewID()
	if err != nil {
		return BuildReport{}, failSpan(span, err)
	}
	span.SetAttributes(attribute.String("warehouse.run_id", runID))
	report := BuildReport{
		RunID:     runID,
		StartedAt: time.Now(),
		Rows:      make(map[string]int),
		Skipped:   make(map[string]int),
	}
	logger := s.logger.With("run_id", runID)
	logger.InfoContext(ctx, "warehouse build started")

	err = s.build(ctx, logger, &report)
	report.Duration = time.Since(report.StartedAt)
	s.observer.ObserveBuild(err == nil, report.Duration)
	if err != nil {
		logger.ErrorContext(ctx, "warehouse build failed", "error", err, "duration_ms", report.Duration.Milliseconds())
		return report, failSpan(span, err)
	}

	for table, n := range report.Rows {
		s.observer.ObserveRows(table, n)
	}
	for kind, n := range report.Skipped {
		s.observer.ObserveSkipped(kind, n)
	}
	logger.InfoContext(ctx, "warehouse build completed",
		"rows", report.TotalRows(),
		"duration_ms", report.Duration.Milliseconds(),
	)
	return report, nil
}

func (s *BuildService) build(ctx context.Context, logger *logging.Logger, report *BuildReport) (err error) {
	session, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := session.Rollback(); rbErr != nil {
			logger.ErrorContext(ctx, "rollback build transaction failed", "error", rbErr)
		}
	}()

	run := func(name string, fn func(ctx context.Context) error) error {
		phaseCtx, span := startUsecaseSpan(ctx, "usecase.BuildService."+name, attribute.String("warehouse.phase", name))
		defer span.End()

		start := time.Now()
		logger.InfoContext(phaseCtx, "build phase started", "phase", name)
		if err := fn(phaseCtx); err != nil {
			return failSpan(span, fmt.Errorf("%s: %w", name, err))
		}
		elapsed := time.Since(start)
		report.Phases = append(report.Phases, PhaseTiming{Phase: name, Duration: elapsed})
		s.observer.ObservePhase(name, elapsed)
		logger.InfoContext(phaseCtx, "build phase finished", "phase", name, "duration_ms", elapsed.Milliseconds())
		return nil
	}

	var (
		matches []match.Match
		comps   []competition.Competition
	)
	phases := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"drop_schema", session.DropSchema},
		{"create_schema", session.CreateSchema},
		{"competitions", func(ctx context.Context) error {
			var err error
			if comps, err = s.corpus.Competitions(ctx); err != nil {
				return err
			}
			n, err := session.InsertCompetitions(ctx, comps)
			report.Rows[schema.TableCompetitions] = n
			return err
		}},
		{"matches", func(ctx context.Context) error {
			var err error
			if matches, err = s.corpus.Matches(ctx); err != nil {
				return err
			}
			teams := ResolveTeams(matches)
			n, err := session.InsertTeams(ctx, teams)
			report.Rows[schema.TableTeams] = n
			if err != nil {
				return err
			}
			if aligned := match.AlignNames(matches, teams, comps); aligned > 0 {
				logger.DebugContext(ctx, "match names aligned to reference rows", "matches", aligned)
			}
			n, err = session.InsertMatches(ctx, matches)
			report.Rows[schema.TableMatches] = n
			return err
		}},
		{"references", func(ctx context.Context) error {
			refs, err := s.resolver.ResolveReferences(ctx)
			if err != nil {
				return err
			}
			report.Skipped[SkippedNameConflicts] = refs.Conflicts()
			for _, t := range refs.Tables() {
				n, err := session.InsertReference(ctx, t.Table, t.Catalog.Entries())
				report.Rows[t.Table] = n
				if err != nil {
					return err
				}
			}
			return nil
		}},
		{"events", func(ctx context.Context) error {
			res, err := s.events.Load(ctx, session)
			report.Rows[schema.TableEvents] = res.Rows
			return err
		}},
		{"lineups", func(ctx context.Context) error {
			seqs := lineup.Sequences{Positions: id.NewSequence(), Cards: id.NewSequence()}
			res, err := s.lineups.Load(ctx, session, seqs)
			report.Rows[schema.TableLineups] = res.Lineups
			report.Rows[schema.TableLineupPlayers] = res.Players
			report.Rows[schema.TableLineupPositions] = res.Positions
			report.Rows[schema.TableLineupCards] = res.Cards
			report.Skipped[SkippedLineupTeams] = res.SkippedTeams
			report.Skipped[SkippedLineupPlayers] = res.SkippedPlayers
			return err
		}},
		{"tracking", func(ctx context.Context) error {
			res, err := s.tracking.Load(ctx, session, id.NewSequence())
			report.Rows[schema.TableThreeSixtyFrames] = res.Frames
			report.Rows[schema.TableThreeSixtyPositions] = res.Positions
			report.Skipped[SkippedTrackingFiles] = res.SkippedFiles
			report.Skipped[SkippedTrackingFrames] = res.SkippedFrames
			return err
		}},
		{"indexes", session.CreateIndexes},
	}

	for _, p := range phases {
		if err := run(p.name, p.fn); err != nil {
			return err
		}
	}
	return session.Commit()
}
