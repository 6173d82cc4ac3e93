package usecase

import (
	"context"
	"fmt"
	"sort"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/event"
	"github.com/riskibarqy/football-warehouse/internal/domain/lineup"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
	"github.com/riskibarqy/football-warehouse/internal/domain/tracking"
)

func ptr[T any](v T) *T { return &v }

// fakeCorpus serves decoded fixtures keyed by file path.
type fakeCorpus struct {
	competitions    []competition.Competition
	competitionsErr error
	matches         []match.Match
	events          map[string][]event.Record
	lineups         map[string][]lineup.TeamSheet
	tracking        map[string][]tracking.Snapshot
	malformed       map[string]bool
}

func newFakeCorpus() *fakeCorpus {
	return &fakeCorpus{
		events:    make(map[string][]event.Record),
		lineups:   make(map[string][]lineup.TeamSheet),
		tracking:  make(map[string][]tracking.Snapshot),
		malformed: make(map[string]bool),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (f *fakeCorpus) Competitions(context.Context) ([]competition.Competition, error) {
	return f.competitions, f.competitionsErr
}

func (f *fakeCorpus) Matches(context.Context) ([]match.Match, error) {
	return f.matches, nil
}

func (f *fakeCorpus) EventFiles(context.Context) ([]string, error) {
	return sortedKeys(f.events), nil
}

func (f *fakeCorpus) ReadEvents(_ context.Context, path string) ([]event.Record, error) {
	recs, ok := f.events[path]
	if !ok {
		return nil, fmt.Errorf("no fixture %s", path)
	}
	return recs, nil
}

func (f *fakeCorpus) LineupFiles(context.Context) ([]string, error) {
	return sortedKeys(f.lineups), nil
}

func (f *fakeCorpus) ReadLineups(_ context.Context, path string) ([]lineup.TeamSheet, error) {
	return f.lineups[path], nil
}

func (f *fakeCorpus) TrackingFiles(context.Context) ([]string, error) {
	return sortedKeys(f.tracking), nil
}

func (f *fakeCorpus) ReadTracking(_ context.Context, path string) ([]tracking.Snapshot, error) {
	if f.malformed[path] {
		return nil, fmt.Errorf("malformed %s", path)
	}
	return f.tracking[path], nil
}

func (f *fakeCorpus) FilterValid(_ context.Context, paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !f.malformed[p] {
			out = append(out, p)
		}
	}
	return out, nil
}

func decodeJSON[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	if err := sonic.UnmarshalString(raw, &v); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return v
}

// sampleCorpus is one match with events, a lineup, a valid tracking file and
// a malformed one.
func sampleCorpus(t *testing.T) *fakeCorpus {
	t.Helper()

	f := newFakeCorpus()
	f.competitions = []competition.Competition{{CompetitionID: 43, SeasonID: 106, Name: ptr("FIFA World Cup")}}
	f.matches = []match.Match{{
		MatchID: 100, CompetitionID: 43, SeasonID: 106,
		HomeTeamID: 217, HomeTeam: ptr("Barcelona"), HomeTeamGender: ptr("male"),
		AwayTeamID: 206, AwayTeam: ptr("Deportivo Alavés"), AwayTeamGender: ptr("male"),
		HomeScore: ptr(int64(1)), AwayScore: ptr(int64(0)),
	}}

	f.events["events/100.json"] = decodeJSON[[]event.Record](t, `[
		{"id": "ev-1", "index": 1, "period": 1, "type": {"id": 30, "name": "Pass"},
		 "team": {"id": 217, "name": "Barcelona"},
		 "player": {"id": 4354, "name": "Phil Foden"},
		 "position": {"id": 17, "name": "Right Wing"},
		 "play_pattern": {"id": 1, "name": "Regular Play"},
		 "location": [60.0, 40.0],
		 "pass": {"recipient": {"id": 5503, "name": "Lionel Messi"}, "end_location": [100.0, 35.0]}},
		{"id": "ev-2", "index": 2, "period": 1, "type": {"id": 16, "name": "Shot"},
		 "team": {"id": 217, "name": "Barcelona"},
		 "player": {"id": 5503, "name": "Lionel Messi"},
		 "position": {"id": 24, "name": "Left Center Forward"},
		 "play_pattern": {"id": 1, "name": "Regular Play"},
		 "location": [108.4, 38.9],
		 "shot": {"end_location": [119.2, 40.1, 2.3], "outcome": {"id": 97, "name": "Goal"}, "statsbomb_xg": 0.31}}
	]`)

	f.lineups["lineups/100.json"] = decodeJSON[[]lineup.TeamSheet](t, `[
		{"team_id": 217, "team_name": "Barcelona", "lineup": [
			{"player_id": 4354, "player_name": "Phil Foden", "jersey_number": 47,
			 "country": {"id": 68, "name": "England"},
			 "cards": [{"time": "55:02", "card_type": "Yellow Card", "reason": "Foul Committed", "period": 2}],
			 "positions": [
				{"position_id": 17, "position": "Right Wing", "from": "00:00", "to": "60:00", "from_period": 1, "to_period": 2, "start_reason": "Starting XI", "end_reason": "Tactical Shift"},
				{"position_id": 24, "position": "Left Center Forward", "from": "60:00", "to": null, "from_period": 2, "to_period": null, "start_reason": "Tactical Shift", "end_reason": "Final Whistle"}
			 ]}
		]}
	]`)

	f.tracking["three-sixty/100.json"] = decodeJSON[[]tracking.Snapshot](t, `[
		{"event_uuid": "ev-2", "visible_area": [0, 0, 120, 0, 120, 80, 0, 80],
		 "freeze_frame": [
			{"teammate": true, "actor": true, "keeper": false, "location": [108.4, 38.9]},
			{"teammate": false, "actor": false, "keeper": true, "location": [119.0, 40.0]}
		 ]}
	]`)
	f.tracking["three-sixty/101.json"] = nil
	f.malformed["three-sixty/101.json"] = true
	return f
}
