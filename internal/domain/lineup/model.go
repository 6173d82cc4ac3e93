package lineup

// TeamSheet is one team's entry in a per-match lineup file.
type TeamSheet struct {
	TeamID   int64         `json:"team_id"`
	TeamName *string       `json:"team_name"`
	Players  []SheetPlayer `json:"lineup"`
}

type SheetPlayer struct {
	PlayerID       int64           `json:"player_id"`
	PlayerName     *string         `json:"player_name"`
	PlayerNickname *string         `json:"player_nickname"`
	JerseyNumber   *int64          `json:"jersey_number"`
	Country        *Country        `json:"country"`
	Cards          []SheetCard     `json:"cards"`
	Positions      []SheetPosition `json:"positions"`
}

type Country struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type SheetCard struct {
	Time     *string `json:"time"`
	CardType *string `json:"card_type"`
	Reason   *string `json:"reason"`
	Period   *int64  `json:"period"`
}

type SheetPosition struct {
	PositionID  *int64  `json:"position_id"`
	Position    *string `json:"position"`
	From        *string `json:"from"`
	To          *string `json:"to"`
	FromPeriod  *int64  `json:"from_period"`
	ToPeriod    *int64  `json:"to_period"`
	StartReason *string `json:"start_reason"`
	EndReason   *string `json:"end_reason"`
}

// Lineup is a row of the lineups table.
type Lineup struct {
	MatchID  int64   `db:"match_id"`
	TeamID   int64   `db:"team_id"`
	TeamName *string `db:"team_name"`
}

// Player is a row of the lineup_players table.
type Player struct {
	MatchID        int64   `db:"match_id"`
	TeamID         int64   `db:"team_id"`
	PlayerID       int64   `db:"player_id"`
	PlayerName     *string `db:"player_name"`
	PlayerNickname *string `db:"player_nickname"`
	JerseyNumber   *int64  `db:"jersey_number"`
	CountryID      *int64  `db:"country_id"`
	CountryName    *string `db:"country_name"`
}

// Position is one interval of a player's position history.
type Position struct {
	ID           int64   `db:"id"`
	MatchID      int64   `db:"match_id"`
	TeamID       int64   `db:"team_id"`
	PlayerID     int64   `db:"player_id"`
	PositionID   *int64  `db:"position_id"`
	PositionName *string `db:"position_name"`
	FromTime     *string `db:"from_time"`
	ToTime       *string `db:"to_time"`
	FromPeriod   *int64  `db:"from_period"`
	ToPeriod     *int64  `db:"to_period"`
	StartReason  *string `db:"start_reason"`
	EndReason    *string `db:"end_reason"`
}

// Card is one disciplinary card shown to a lineup player.
type Card struct {
	ID       int64   `db:"id"`
	MatchID  int64   `db:"match_id"`
	TeamID   int64   `db:"team_id"`
	PlayerID int64   `db:"player_id"`
	CardTime *string `db:"card_time"`
	CardType *string `db:"card_type"`
	Reason   *string `db:"reason"`
	Period   *int64  `db:"period"`
}
