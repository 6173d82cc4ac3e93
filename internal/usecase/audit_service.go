package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"github.com/riskibarqy/football-warehouse/internal/domain/schema"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

const (
	defaultMismatchTolerance = 0.05
	locationTolerance        = 1e-3
	passLengthTolerance      = 0.1
	passAngleTolerance       = 0.05
)

// CheckResult is the outcome of one integrity check.
type CheckResult struct {
	Name   string
	Passed bool
	Detail string
}

type AuditReport struct {
	Checks []CheckResult
}

func (r AuditReport) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

func (r AuditReport) OK() bool {
	return len(r.Failed()) == 0
}

// AuditService runs the read-only integrity battery over a built warehouse.
type AuditService struct {
	repo      warehouse.AuditRepository
	registry  *schema.Registry
	names     reference.NameOverrides
	tolerance float64
	logger    *logging.Logger
}

func NewAuditService(
	repo warehouse.AuditRepository,
	registry *schema.Registry,
	names reference.NameOverrides,
	tolerance float64,
	logger *logging.Logger,
) *AuditService {
	if registry == nil {
		registry = schema.Default()
	}
	if names == nil {
		names = reference.DefaultPlayerOverrides()
	}
	if tolerance <= 0 {
		tolerance = defaultMismatchTolerance
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AuditService{repo: repo, registry: registry, names: names, tolerance: tolerance, logger: logger}
}

// Run executes every check. A report is returned even when checks fail; the
// error then wraps ErrAuditFailed.
func (s *AuditService) Run(ctx context.Context) (AuditReport, error) {
	ctx, span := startCommandSpan(ctx, "usecase.AuditService.Run")
	defer span.End()

	var report AuditReport
	steps := []func(context.Context, *AuditReport) error{
		s.checkKeys,
		s.checkFlags,
		s.checkLocationRoundTrip,
		s.checkRanges,
		s.checkPassGeometry,
		s.checkMatchNames,
		s.checkCanonicalNames,
		s.checkGoalTallies,
		s.checkPeriodOrder,
	}
	for _, step := range steps {
		if err := step(ctx, &report); err != nil {
			return report, failSpan(span, err)
		}
	}

	failed := report.Failed()
	for _, c := range failed {
		s.logger.WarnContext(ctx, "integrity check failed", "check", c.Name, "detail", c.Detail)
	}
	s.logger.InfoContext(ctx, "integrity audit finished", "checks", len(report.Checks), "failed", len(failed))
	if len(failed) > 0 {
		return report, failSpan(span, fmt.Errorf("%w: %d of %d checks failed", ErrAuditFailed, len(failed), len(report.Checks)))
	}
	return report, nil
}

func zeroCheck(name string, n int64, what string) CheckResult {
	if n == 0 {
		return CheckResult{Name: name, Passed: true}
	}
	return CheckResult{Name: name, Detail: fmt.Sprintf("%d %s", n, what)}
}

func (s *AuditService) checkKeys(ctx context.Context, report *AuditReport) error {
	for _, t := range s.registry.Tables() {
		dups, err := s.repo.CountDuplicateKeys(ctx, t.Name, t.PrimaryKey)
		if err != nil {
			return fmt.Errorf("check primary key of %s: %w", t.Name, err)
		}
		report.Checks = append(report.Checks, zeroCheck("unique:"+t.Name, dups, "duplicate keys"))

		for _, key := range t.NaturalKeys {
			dups, err := s.repo.CountDuplicateKeys(ctx, t.Name, key)
			if err != nil {
				return fmt.Errorf("check natural key of %s: %w", t.Name, err)
			}
			name := fmt.Sprintf("unique:%s(%s)", t.Name, strings.Join(key, ","))
			report.Checks = append(report.Checks, zeroCheck(name, dups, "duplicate natural keys"))
		}

		for _, fk := range t.ForeignKeys {
			orphans, err := s.repo.CountOrphans(ctx, t.Name, fk)
			if err != nil {
				return fmt.Errorf("check foreign key of %s: %w", t.Name, err)
			}
			name := fmt.Sprintf("fk:%s(%s)->%s", t.Name, strings.Join(fk.Columns, ","), fk.RefTable)
			report.Checks = append(report.Checks, zeroCheck(name, orphans, "orphan rows"))
		}
	}
	return nil
}

func (s *AuditService) checkFlags(ctx context.Context, report *AuditReport) error {
	for _, t := range s.registry.Tables() {
		flags := t.FlagColumns()
		if len(flags) == 0 {
			continue
		}
		conds := make([]string, 0, len(flags))
		for _, f := range flags {
			conds = append(conds, f+" IS NULL")
		}
		n, err := s.repo.CountWhere(ctx, t.Name, "("+strings.Join(conds, " OR ")+")")
		if err != nil {
			return fmt.Errorf("check flags of %s: %w", t.Name, err)
		}
		report.Checks = append(report.Checks, zeroCheck("flags_not_null:"+t.Name, n, "rows with a null flag"))
	}
	return nil
}

func (s *AuditService) checkLocationRoundTrip(ctx context.Context, report *AuditReport) error {
	var bad int64
	var firstID string
	err := s.repo.ScanEventLocations(ctx, func(sample warehouse.LocationSample) error {
		if !locationMatches(sample) {
			if bad == 0 {
				firstID = sample.EventID
			}
			bad++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("check location round trip: %w", err)
	}
	result := zeroCheck("location_round_trip:events", bad, "events with split coordinates that disagree with location")
	if bad > 0 {
		result.Detail += ", first " + firstID
	}
	report.Checks = append(report.Checks, result)
	return nil
}

func locationMatches(sample warehouse.LocationSample) bool {
	var coords []float64
	if err := sonic.UnmarshalString(sample.Location, &coords); err != nil {
		return false
	}
	if len(coords) < 2 || sample.LocationX == nil || sample.LocationY == nil {
		return false
	}
	return math.Abs(*sample.LocationX-coords[0]) <= locationTolerance &&
		math.Abs(*sample.LocationY-coords[1]) <= locationTolerance
}

func (s *AuditService) checkRanges(ctx context.Context, report *AuditReport) error {
	ranges := []whereCheck{
		{
			name:      "xg_range:events",
			table:     schema.TableEvents,
			condition: "(shot_statsbomb_xg < ? OR shot_statsbomb_xg > ?)",
			args:      []any{0.0, 1.0},
			what:      "shots with xG outside [0,1]",
		},
		{
			name:      "pitch_envelope:events",
			table:     schema.TableEvents,
			condition: "(location_x < ? OR location_x > ? OR location_y < ? OR location_y > ?)",
			args:      []any{-5.0, 125.0, -5.0, 85.0},
			what:      "events outside the padded pitch",
		},
		endEnvelope("pass_end_envelope:events", "pass_end_location", "passes"),
		endEnvelope("carry_end_envelope:events", "carry_end_location", "carries"),
		endEnvelope("goalkeeper_end_envelope:events", "goalkeeper_end_location", "goalkeeper actions"),
		{
			name:  "shot_goal_end:events",
			table: schema.TableEvents,
			condition: "(type = ? AND shot_outcome = ? AND shot_end_location_x IS NOT NULL AND shot_end_location_y IS NOT NULL" +
				" AND (shot_end_location_x < ? OR shot_end_location_y < ? OR shot_end_location_y > ?" +
				" OR COALESCE(shot_end_location_z, 0) < ? OR COALESCE(shot_end_location_z, 0) > ?))",
			args: []any{"Shot", "Goal", 118.0, 35.0, 45.0, 0.0, 3.0},
			what: "goals ending outside the goal mouth",
		},
		{
			name:      "tracking_envelope:three_sixty_positions",
			table:     schema.TableThreeSixtyPositions,
			condition: "(location_x < ? OR location_x > ? OR location_y < ? OR location_y > ?)",
			args:      []any{-100.0, 220.0, -100.0, 180.0},
			what:      "tracked positions outside the camera envelope",
		},
		{
			name:      "scores_non_negative:matches",
			table:     schema.TableMatches,
			condition: "(home_score < ? OR away_score < ?)",
			args:      []any{0, 0},
			what:      "matches with a negative score",
		},
	}
	return s.runWhereChecks(ctx, report, ranges)
}

type whereCheck struct {
	name      string
	table     string
	condition string
	args      []any
	what      string
}

func (s *AuditService) runWhereChecks(ctx context.Context, report *AuditReport, checks []whereCheck) error {
	for _, c := range checks {
		n, err := s.repo.CountWhere(ctx, c.table, c.condition, c.args...)
		if err != nil {
			return fmt.Errorf("check %s: %w", c.name, err)
		}
		report.Checks = append(report.Checks, zeroCheck(c.name, n, c.what))
	}
	return nil
}

// endEnvelope bounds the split end coordinates of prefix on a pitch padded
// by ten units on every side.
func endEnvelope(name, prefix, what string) whereCheck {
	x, y := prefix+"_x", prefix+"_y"
	return whereCheck{
		name:      name,
		table:     schema.TableEvents,
		condition: fmt.Sprintf("(%s < ? OR %s > ? OR %s < ? OR %s > ?)", x, x, y, y),
		args:      []any{-10.0, 130.0, -10.0, 90.0},
		what:      what + " ending outside the padded pitch",
	}
}

// checkPassGeometry recomputes pass length and angle from the start and end
// coordinates. Angles are compared on the circle.
func (s *AuditService) checkPassGeometry(ctx context.Context, report *AuditReport) error {
	const (
		dx = "(pass_end_location_x - location_x)"
		dy = "(pass_end_location_y - location_y)"
	)
	angleDiff := "ABS(ATAN2(" + dy + ", " + dx + ") - pass_angle)"
	return s.runWhereChecks(ctx, report, []whereCheck{{
		name:  "pass_geometry:events",
		table: schema.TableEvents,
		condition: "(type = ? AND location_x IS NOT NULL AND location_y IS NOT NULL" +
			" AND pass_end_location_x IS NOT NULL AND pass_end_location_y IS NOT NULL" +
			" AND pass_length IS NOT NULL AND pass_angle IS NOT NULL" +
			" AND (ABS(SQRT(POWER(" + dx + ", 2) + POWER(" + dy + ", 2)) - pass_length) >= ?" +
			" OR LEAST(" + angleDiff + ", 2 * PI() - " + angleDiff + ") >= ?))",
		args: []any{"Pass", passLengthTolerance, passAngleTolerance},
		what: "passes whose length or angle disagrees with their coordinates",
	}})
}

// checkMatchNames compares the denormalized names on matches with the rows
// their ids point at.
func (s *AuditService) checkMatchNames(ctx context.Context, report *AuditReport) error {
	teamName := func(col string) string {
		return fmt.Sprintf("%s_team IS DISTINCT FROM (SELECT t.name FROM %s t WHERE t.id = %s.%s_team_id)",
			col, schema.TableTeams, schema.TableMatches, col)
	}
	return s.runWhereChecks(ctx, report, []whereCheck{
		{
			name:      "team_names:matches",
			table:     schema.TableMatches,
			condition: "(" + teamName("home") + " OR " + teamName("away") + ")",
			what:      "matches whose team names disagree with teams",
		},
		{
			name:  "competition_names:matches",
			table: schema.TableMatches,
			condition: fmt.Sprintf("competition IS DISTINCT FROM (SELECT c.name FROM %s c"+
				" WHERE c.competition_id = %s.competition_id AND c.season_id = %s.season_id)",
				schema.TableCompetitions, schema.TableMatches, schema.TableMatches),
			what: "matches whose competition name disagrees with competitions",
		},
	})
}

func (s *AuditService) checkCanonicalNames(ctx context.Context, report *AuditReport) error {
	if len(s.names) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(s.names))
	for id := range s.names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	columns := []struct{ table, idCol, nameCol string }{
		{schema.TablePlayers, "id", "name"},
		{schema.TableEvents, "player_id", "player"},
		{schema.TableEvents, "pass_recipient_id", "pass_recipient"},
		{schema.TableEvents, "substitution_replacement_id", "substitution_replacement_name"},
		{schema.TableLineupPlayers, "player_id", "player_name"},
	}
	for _, c := range columns {
		conds := make([]string, 0, len(ids))
		args := make([]any, 0, 2*len(ids))
		for _, id := range ids {
			conds = append(conds, fmt.Sprintf("(%s = ? AND %s <> ?)", c.idCol, c.nameCol))
			args = append(args, id, s.names[id])
		}
		n, err := s.repo.CountWhere(ctx, c.table, "("+strings.Join(conds, " OR ")+")", args...)
		if err != nil {
			return fmt.Errorf("check canonical names in %s.%s: %w", c.table, c.nameCol, err)
		}
		name := fmt.Sprintf("canonical_names:%s.%s", c.table, c.nameCol)
		report.Checks = append(report.Checks, zeroCheck(name, n, "rows with a non canonical player name"))
	}
	return nil
}

// checkGoalTallies compares scores with counted goals. Source data is known to
// disagree occasionally, so only the mismatch rate is bounded.
func (s *AuditService) checkGoalTallies(ctx context.Context, report *AuditReport) error {
	tallies, err := s.repo.GoalTallies(ctx)
	if err != nil {
		return fmt.Errorf("check goal tallies: %w", err)
	}
	mismatched := 0
	for _, t := range tallies {
		if t.HomeScore != t.HomeShotGoals+t.HomeOwnGoalsFor || t.AwayScore != t.AwayShotGoals+t.AwayOwnGoalsFor {
			mismatched++
		}
	}
	report.Checks = append(report.Checks, s.rateCheck("goal_tally_rate:matches", mismatched, len(tallies), "matches whose score disagrees with counted goals"))
	return nil
}

func (s *AuditService) checkPeriodOrder(ctx context.Context, report *AuditReport) error {
	total, err := s.repo.CountRows(ctx, schema.TableLineupPositions)
	if err != nil {
		return fmt.Errorf("check period order: %w", err)
	}
	reversed, err := s.repo.CountWhere(ctx, schema.TableLineupPositions, "from_period > to_period")
	if err != nil {
		return fmt.Errorf("check period order: %w", err)
	}
	report.Checks = append(report.Checks, s.rateCheck("period_order_rate:lineup_positions", int(reversed), int(total), "positions ending in an earlier period than they start"))
	return nil
}

func (s *AuditService) rateCheck(name string, bad, total int, what string) CheckResult {
	if total == 0 {
		return CheckResult{Name: name, Passed: true}
	}
	rate := float64(bad) / float64(total)
	return CheckResult{
		Name:   name,
		Passed: rate < s.tolerance,
		Detail: fmt.Sprintf("%d of %d %s (%.2f%%, tolerance %.2f%%)", bad, total, what, rate*100, s.tolerance*100),
	}
}
