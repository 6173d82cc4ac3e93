package opendata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/usecase"
)

const (
	competitionsFile = "competitions.json"
	matchesDir       = "matches"
	eventsDir        = "events"
	lineupsDir       = "lineups"
	threeSixtyDir    = "three-sixty"

	defaultValidateWorkers = 8
)

// ErrMalformedFile marks a source file whose bytes are not the expected JSON.
var ErrMalformedFile = crerr.New("malformed open-data file")

type SourceConfig struct {
	Root            string
	ValidateWorkers int
	Logger          *logging.Logger
}

// Source reads the open-data directory layout:
//
//	competitions.json
//	matches/<competition_id>/<season_id>.json
//	events/<match_id>.json
//	lineups/<match_id>.json
//	three-sixty/<match_id>.json
type Source struct {
	root    string
	workers int
	logger  *logging.Logger
}

func NewSource(cfg SourceConfig) *Source {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	workers := cfg.ValidateWorkers
	if workers <= 0 {
		workers = defaultValidateWorkers
	}
	return &Source{
		root:    strings.TrimSpace(cfg.Root),
		workers: workers,
		logger:  logger,
	}
}

func (s *Source) Competitions(ctx context.Context) ([]competition.Competition, error) {
	path := filepath.Join(s.root, competitionsFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", usecase.ErrSourceUnavailable, path, err)
	}

	var items []competitionDTO
	if err := readJSON(ctx, path, &items); err != nil {
		return nil, err
	}

	out := make([]competition.Competition, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

// Matches reads every season file under matches/, in path order.
func (s *Source) Matches(ctx context.Context) ([]match.Match, error) {
	paths, err := filepath.Glob(filepath.Join(s.root, matchesDir, "*", "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list match files: %w", err)
	}
	sort.Strings(paths)

	out := make([]match.Match, 0, len(paths)*32)
	for _, path := range paths {
		var items []matchDTO
		if err := readJSON(ctx, path, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			m, err := item.toDomain()
			if err != nil {
				return nil, crerr.Wrapf(err, "map match %d in %s", item.MatchID, path)
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Source) EventFiles(ctx context.Context) ([]string, error) {
	return s.matchFiles(ctx, eventsDir)
}

func (s *Source) LineupFiles(ctx context.Context) ([]string, error) {
	return s.matchFiles(ctx, lineupsDir)
}

func (s *Source) TrackingFiles(ctx context.Context) ([]string, error) {
	return s.matchFiles(ctx, threeSixtyDir)
}

func (s *Source) ReadEvents(ctx context.Context, path string) ([]event.Record, error) {
	var out []event.Record
	if err := readJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) ReadLineups(ctx context.Context, path string) ([]lineup.TeamSheet, error) {
	var out []lineup.TeamSheet
	if err := readJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) ReadTracking(ctx context.Context, path string) ([]tracking.Snapshot, error) {
	var out []tracking.Snapshot
	if err := readJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterValid keeps the tracking paths whose content decodes into snapshots.
func (s *Source) FilterValid(ctx context.Context, paths []string) ([]string, error) {
	return ValidFiles[tracking.Snapshot](ctx, paths, s.workers, s.logger)
}

// matchFiles lists <match_id>.json files of dir ordered by ascending match
// id. Files with other names are ignored; a missing directory yields none.
func (s *Source) matchFiles(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(s.root, dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list %s files: %w", dir, err)
	}

	type keyed struct {
		id   int64
		path string
	}
	files := make([]keyed, 0, len(paths))
	for _, path := range paths {
		id, err := event.MatchIDFromPath(path)
		if err != nil {
			s.logger.DebugContext(ctx, "ignoring non match file", "path", path)
			continue
		}
		files = append(files, keyed{id: id, path: path})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].id < files[j].id })

	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.path)
	}
	return out, nil
}

func readJSON(ctx context.Context, path string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(ErrMalformedFile, "decode %s: %v", path, err)
	}
	return nil
}
