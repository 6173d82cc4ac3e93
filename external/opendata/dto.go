package opendata

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-warehouse/internal/domain/competition"
	"github.com/riskibarqy/football-warehouse/internal/domain/match"
)

type competitionDTO struct {
	CompetitionID            int64   `json:"competition_id"`
	SeasonID                 int64   `json:"season_id"`
	CountryName              *string `json:"country_name"`
	CompetitionName          *string `json:"competition_name"`
	CompetitionGender        *string `json:"competition_gender"`
	CompetitionYouth         *bool   `json:"competition_youth"`
	CompetitionInternational *bool   `json:"competition_international"`
	SeasonName               *string `json:"season_name"`
	MatchUpdated             *string `json:"match_updated"`
	MatchAvailable360        *string `json:"match_available_360"`
}

func (d competitionDTO) toDomain() competition.Competition {
	return competition.Competition{
		CompetitionID:     d.CompetitionID,
		SeasonID:          d.SeasonID,
		Name:              d.CompetitionName,
		Gender:            d.CompetitionGender,
		IsYouth:           d.CompetitionYouth,
		IsInternational:   d.CompetitionInternational,
		CountryName:       d.CountryName,
		SeasonName:        d.SeasonName,
		MatchUpdated:      d.MatchUpdated,
		MatchAvailable360: d.MatchAvailable360,
	}
}

type namedRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type managerDTO struct {
	ID       *int64    `json:"id"`
	Name     *string   `json:"name"`
	Nickname *string   `json:"nickname"`
	Dob      *string   `json:"dob"`
	Country  *namedRef `json:"country"`
}

type homeTeamDTO struct {
	ID       int64        `json:"home_team_id"`
	Name     *string      `json:"home_team_name"`
	Gender   *string      `json:"home_team_gender"`
	Managers []managerDTO `json:"managers"`
}

type awayTeamDTO struct {
	ID       int64        `json:"away_team_id"`
	Name     *string      `json:"away_team_name"`
	Gender   *string      `json:"away_team_gender"`
	Managers []managerDTO `json:"managers"`
}

type matchDTO struct {
	MatchID        int64   `json:"match_id"`
	MatchDate      *string `json:"match_date"`
	KickOff        *string `json:"kick_off"`
	HomeScore      *int64  `json:"home_score"`
	AwayScore      *int64  `json:"away_score"`
	MatchStatus    *string `json:"match_status"`
	MatchStatus360 *string `json:"match_status_360"`
	LastUpdated    *string `json:"last_updated"`
	LastUpdated360 *string `json:"last_updated_360"`
	MatchWeek      *int64  `json:"match_week"`
	Competition    struct {
		ID   int64   `json:"competition_id"`
		Name *string `json:"competition_name"`
	} `json:"competition"`
	Season struct {
		ID   int64   `json:"season_id"`
		Name *string `json:"season_name"`
	} `json:"season"`
	HomeTeam         homeTeamDTO `json:"home_team"`
	AwayTeam         awayTeamDTO `json:"away_team"`
	CompetitionStage *namedRef   `json:"competition_stage"`
	Stadium          *namedRef   `json:"stadium"`
	Referee          *namedRef   `json:"referee"`
	Metadata         *struct {
		DataVersion         *string `json:"data_version"`
		ShotFidelityVersion *string `json:"shot_fidelity_version"`
		XYFidelityVersion   *string `json:"xy_fidelity_version"`
	} `json:"metadata"`
}

func (d matchDTO) toDomain() (match.Match, error) {
	homeManagers, err := managersText(d.HomeTeam.Managers)
	if err != nil {
		return match.Match{}, fmt.Errorf("home managers: %w", err)
	}
	awayManagers, err := managersText(d.AwayTeam.Managers)
	if err != nil {
		return match.Match{}, fmt.Errorf("away managers: %w", err)
	}

	m := match.Match{
		MatchID:        d.MatchID,
		MatchDate:      d.MatchDate,
		MatchWeek:      d.MatchWeek,
		MatchStatus:    d.MatchStatus,
		MatchStatus360: d.MatchStatus360,
		Kickoff:        d.KickOff,
		HomeScore:      d.HomeScore,
		AwayScore:      d.AwayScore,
		CompetitionID:  d.Competition.ID,
		Competition:    d.Competition.Name,
		SeasonID:       d.Season.ID,
		Season:         d.Season.Name,
		HomeTeamID:     d.HomeTeam.ID,
		HomeTeam:       d.HomeTeam.Name,
		HomeTeamGender: d.HomeTeam.Gender,
		HomeManagers:   homeManagers,
		AwayTeamID:     d.AwayTeam.ID,
		AwayTeam:       d.AwayTeam.Name,
		AwayTeamGender: d.AwayTeam.Gender,
		AwayManagers:   awayManagers,
		LastUpdated:    d.LastUpdated,
		LastUpdated360: d.LastUpdated360,
	}
	if d.CompetitionStage != nil {
		m.CompetitionStage = d.CompetitionStage.Name
	}
	if d.Stadium != nil {
		m.StadiumID = d.Stadium.ID
		m.Stadium = d.Stadium.Name
	}
	if d.Referee != nil {
		m.RefereeID = d.Referee.ID
		m.Referee = d.Referee.Name
	}
	if d.Metadata != nil {
		m.DataVersion = d.Metadata.DataVersion
		m.ShotFidelityVersion = d.Metadata.ShotFidelityVersion
		m.XYFidelityVersion = d.Metadata.XYFidelityVersion
	}
	return m, nil
}

// managersText keeps the manager list as JSON text; an absent list is NULL.
func managersText(managers []managerDTO) (*string, error) {
	if managers == nil {
		return nil, nil
	}
	raw, err := sonic.Marshal(managers)
	if err != nil {
		return nil, err
	}
	text := string(raw)
	return &text, nil
}
