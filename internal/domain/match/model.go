package match

import (
	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/team"
)

// Match is the flattened metadata of one match.
type Match struct {
	MatchID             int64   `db:"match_id"`
	MatchDate           *string `db:"match_date"`
	MatchWeek           *int64  `db:"match_week"`
	MatchStatus         *string `db:"match_status"`
	MatchStatus360      *string `db:"match_status_360"`
	Kickoff             *string `db:"kickoff"`
	HomeScore           *int64  `db:"home_score"`
	AwayScore           *int64  `db:"away_score"`
	CompetitionID       int64   `db:"competition_id"`
	Competition         *string `db:"competition"`
	CompetitionStage    *string `db:"competition_stage"`
	SeasonID            int64   `db:"season_id"`
	Season              *string `db:"season"`
	HomeTeamID          int64   `db:"home_team_id"`
	HomeTeam            *string `db:"home_team"`
	HomeManagers        *string `db:"home_managers"`
	AwayTeamID          int64   `db:"away_team_id"`
	AwayTeam            *string `db:"away_team"`
	AwayManagers        *string `db:"away_managers"`
	StadiumID           *int64  `db:"stadium_id"`
	Stadium             *string `db:"stadium"`
	RefereeID           *int64  `db:"referee_id"`
	Referee             *string `db:"referee"`
	LastUpdated         *string `db:"last_updated"`
	LastUpdated360      *string `db:"last_updated_360"`
	DataVersion         *string `db:"data_version"`
	ShotFidelityVersion *string `db:"shot_fidelity_version"`
	XYFidelityVersion   *string `db:"xy_fidelity_version"`

	// Gender of each side, carried only to populate the teams table.
	HomeTeamGender *string `db:"-"`
	AwayTeamGender *string `db:"-"`
}

func (m Match) CompetitionKey() competition.Key {
	return competition.Key{CompetitionID: m.CompetitionID, SeasonID: m.SeasonID}
}

// TeamMentions returns the home side followed by the away side.
func (m Match) TeamMentions() []team.Team {
	return []team.Team{
		{ID: m.HomeTeamID, Name: m.HomeTeam, Gender: m.HomeTeamGender},
		{ID: m.AwayTeamID, Name: m.AwayTeam, Gender: m.AwayTeamGender},
	}
}

// AlignNames rewrites the denormalized team and competition names of every
// match to the resolved reference rows, so a match never disagrees with the
// tables it points at. It returns how many matches changed.
func AlignNames(matches []Match, teams []team.Team, comps []competition.Competition) int {
	teamNames := make(map[int64]*string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}
	compNames := make(map[competition.Key]*string, len(comps))
	for _, c := range comps {
		compNames[c.Key()] = c.Name
	}

	changed := 0
	for i := range matches {
		m := &matches[i]
		diff := false
		if name, ok := teamNames[m.HomeTeamID]; ok && !sameName(m.HomeTeam, name) {
			m.HomeTeam, diff = name, true
		}
		if name, ok := teamNames[m.AwayTeamID]; ok && !sameName(m.AwayTeam, name) {
			m.AwayTeam, diff = name, true
		}
		if name, ok := compNames[m.CompetitionKey()]; ok && !sameName(m.Competition, name) {
			m.Competition, diff = name, true
		}
		if diff {
			changed++
		}
	}
	return changed
}

func sameName(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
