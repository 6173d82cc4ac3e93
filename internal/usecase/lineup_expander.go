package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-warehouse/internal/domain/corpus"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

type LineupLoadResult struct {
	Files     int
	Lineups   int
	Players   int
	Positions int
	Cards     int

	SkippedTeams   int
	SkippedPlayers int
}

// LineupExpander loads the four lineup tables from the per-match lineup files.
type LineupExpander struct {
	corpus corpus.Reader
	names  reference.NameOverrides
	logger *logging.Logger
}

func NewLineupExpander(reader corpus.Reader, names reference.NameOverrides, logger *logging.Logger) *LineupExpander {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupExpander{corpus: reader, names: names, logger: logger}
}

func (e *LineupExpander) Load(ctx context.Context, session warehouse.Session, seqs lineup.Sequences) (LineupLoadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupExpander.Load")
	defer span.End()

	files, err := e.corpus.LineupFiles(ctx)
	if err != nil {
		return LineupLoadResult{}, fmt.Errorf("list lineup files: %w", err)
	}

	var result LineupLoadResult
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		matchID, err := event.MatchIDFromPath(path)
		if err != nil {
			return result, err
		}
		sheets, err := e.corpus.ReadLineups(ctx, path)
		if err != nil {
			return result, fmt.Errorf("read lineups %s: %w", path, err)
		}

		exp := lineup.Expand(matchID, sheets, seqs, e.names)
		if exp.SkippedTeams > 0 || exp.SkippedPlayers > 0 {
			e.logger.WarnContext(ctx, "duplicate lineup entries skipped",
				"match_id", matchID,
				"teams", exp.SkippedTeams,
				"players", exp.SkippedPlayers,
			)
		}
		if err := e.insert(ctx, session, exp, &result); err != nil {
			return result, fmt.Errorf("load lineups of match %d: %w", matchID, err)
		}
		result.Files++
		result.SkippedTeams += exp.SkippedTeams
		result.SkippedPlayers += exp.SkippedPlayers
	}
	return result, nil
}

// insert writes parents before children so every foreign key resolves.
func (e *LineupExpander) insert(ctx context.Context, session warehouse.Session, exp lineup.Expansion, result *LineupLoadResult) error {
	n, err := session.InsertLineups(ctx, exp.Lineups)
	if err != nil {
		return err
	}
	result.Lineups += n

	if n, err = session.InsertLineupPlayers(ctx, exp.Players); err != nil {
		return err
	}
	result.Players += n

	if n, err = session.InsertLineupPositions(ctx, exp.Positions); err != nil {
		return err
	}
	result.Positions += n

	if n, err = session.InsertLineupCards(ctx, exp.Cards); err != nil {
		return err
	}
	result.Cards += n
	return nil
}
