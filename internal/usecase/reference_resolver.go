package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-warehouse/internal/domain/corpus"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

// References holds the controlled vocabularies discovered in the corpus.
type References struct {
	EventTypes   *reference.Catalog
	Players      *reference.Catalog
	Positions    *reference.Catalog
	PlayPatterns *reference.Catalog
	Countries    *reference.Catalog
}

func newReferences() References {
	return References{
		EventTypes:   reference.NewCatalog(),
		Players:      reference.NewCatalog(),
		Positions:    reference.NewCatalog(),
		PlayPatterns: reference.NewCatalog(),
		Countries:    reference.NewCatalog(),
	}
}

// ReferenceTable pairs a lookup table with its catalog.
type ReferenceTable struct {
	Table   string
	Catalog *reference.Catalog
}

// Tables lists the catalogs in insert order.
func (r References) Tables() []ReferenceTable {
	return []ReferenceTable{
		{Table: schema.TableEventTypes, Catalog: r.EventTypes},
		{Table: schema.TablePlayers, Catalog: r.Players},
		{Table: schema.TablePositions, Catalog: r.Positions},
		{Table: schema.TablePlayPatterns, Catalog: r.PlayPatterns},
		{Table: schema.TableCountries, Catalog: r.Countries},
	}
}

// Conflicts counts ids that were seen again under a different name.
func (r References) Conflicts() int {
	total := 0
	for _, t := range r.Tables() {
		total += len(t.Catalog.Conflicts())
	}
	return total
}

// ResolveTeams collects the home and away sides of every match, keeping the
// first mention of each team id.
func ResolveTeams(matches []match.Match) []team.Team {
	mentions := make([]team.Team, 0, 2*len(matches))
	for _, m := range matches {
		mentions = append(mentions, m.TeamMentions()...)
	}
	return team.Dedupe(mentions)
}

type ReferenceResolver struct {
	corpus corpus.Reader
	names  reference.NameOverrides
	logger *logging.Logger
}

func NewReferenceResolver(reader corpus.Reader, names reference.NameOverrides, logger *logging.Logger) *ReferenceResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReferenceResolver{corpus: reader, names: names, logger: logger}
}

// ResolveReferences scans every event file and then every lineup file, both
// in ascending match id order, and fills the lookup catalogs. Ids seen again
// with a different name keep their first name.
func (r *ReferenceResolver) ResolveReferences(ctx context.Context) (References, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceResolver.ResolveReferences")
	defer span.End()

	refs := newReferences()

	eventFiles, err := r.corpus.EventFiles(ctx)
	if err != nil {
		return References{}, fmt.Errorf("list event files: %w", err)
	}
	for _, path := range eventFiles {
		if err := ctx.Err(); err != nil {
			return References{}, err
		}
		records, err := r.corpus.ReadEvents(ctx, path)
		if err != nil {
			return References{}, fmt.Errorf("read events %s: %w", path, err)
		}
		for _, rec := range records {
			r.observeEvent(refs, rec)
		}
	}

	lineupFiles, err := r.corpus.LineupFiles(ctx)
	if err != nil {
		return References{}, fmt.Errorf("list lineup files: %w", err)
	}
	for _, path := range lineupFiles {
		if err := ctx.Err(); err != nil {
			return References{}, err
		}
		sheets, err := r.corpus.ReadLineups(ctx, path)
		if err != nil {
			return References{}, fmt.Errorf("read lineups %s: %w", path, err)
		}
		for _, sheet := range sheets {
			for _, p := range sheet.Players {
				playerID := p.PlayerID
				refs.Players.ObserveRef(&playerID, r.names.CanonicalizePtr(&playerID, p.PlayerName))
				if p.Country != nil {
					refs.Countries.ObserveRef(p.Country.ID, p.Country.Name)
				}
				for _, pos := range p.Positions {
					refs.Positions.ObserveRef(pos.PositionID, pos.Position)
				}
			}
		}
	}

	for _, t := range refs.Tables() {
		conflicts := t.Catalog.Conflicts()
		if len(conflicts) == 0 {
			continue
		}
		first := conflicts[0]
		r.logger.WarnContext(ctx, "reference ids seen with conflicting names",
			"table", t.Table,
			"conflicts", len(conflicts),
			"example_id", first.ID,
			"kept", first.Kept,
			"rejected", first.Rejected,
		)
	}
	r.logger.InfoContext(ctx, "references resolved",
		"event_files", len(eventFiles),
		"lineup_files", len(lineupFiles),
		"event_types", refs.EventTypes.Len(),
		"players", refs.Players.Len(),
		"positions", refs.Positions.Len(),
		"play_patterns", refs.PlayPatterns.Len(),
		"countries", refs.Countries.Len(),
	)
	return refs, nil
}

func (r *ReferenceResolver) observeEvent(refs References, rec event.Record) {
	refs.EventTypes.ObserveRef(rec.Type.IDPtr(), rec.Type.NamePtr())
	refs.Positions.ObserveRef(rec.Position.IDPtr(), rec.Position.NamePtr())
	refs.PlayPatterns.ObserveRef(rec.PlayPattern.IDPtr(), rec.PlayPattern.NamePtr())

	r.observePlayer(refs, rec.Player)
	if rec.Pass != nil {
		r.observePlayer(refs, rec.Pass.Recipient)
	}
	if rec.Substitution != nil {
		r.observePlayer(refs, rec.Substitution.Replacement)
	}
}

func (r *ReferenceResolver) observePlayer(refs References, ref *event.Ref) {
	id := ref.IDPtr()
	refs.Players.ObserveRef(id, r.names.CanonicalizePtr(id, ref.NamePtr()))
}
