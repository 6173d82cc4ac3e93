package competition

// Competition is one competition season from the competitions listing.
type Competition struct {
	CompetitionID     int64   `db:"competition_id"`
	SeasonID          int64   `db:"season_id"`
	Name              *string `db:"name"`
	Gender            *string `db:"gender"`
	IsYouth           *bool   `db:"is_youth"`
	IsInternational   *bool   `db:"is_international"`
	CountryName       *string `db:"country_name"`
	SeasonName        *string `db:"season_name"`
	MatchUpdated      *string `db:"match_updated"`
	MatchAvailable360 *string `db:"match_available_360"`
}

// Key identifies a competition season.
type Key struct {
	CompetitionID int64
	SeasonID      int64
}

func (c Competition) Key() Key {
	return Key{CompetitionID: c.CompetitionID, SeasonID: c.SeasonID}
}
