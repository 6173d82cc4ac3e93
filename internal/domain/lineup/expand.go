package lineup

import "github.com/riskibarqy/football-warehouse/internal/domain/reference"

// IDSource issues surrogate keys.
type IDSource interface {
	Next() int64
}

// Sequences holds the key sources for the rows that have no natural key.
type Sequences struct {
	Positions IDSource
	Cards     IDSource
}

// Expansion is the row set produced from one lineup file.
type Expansion struct {
	Lineups   []Lineup
	Players   []Player
	Positions []Position
	Cards     []Card

	// Duplicate entries that were dropped because an earlier entry with the
	// same key already produced rows.
	SkippedTeams   int
	SkippedPlayers int
}

// Expand unnests the team sheets of one match. The first entry for a team
// or player wins; a duplicate is skipped together with its histories.
func Expand(matchID int64, sheets []TeamSheet, seqs Sequences, names reference.NameOverrides) Expansion {
	var out Expansion
	seenTeams := make(map[int64]struct{}, len(sheets))

	for _, sheet := range sheets {
		if _, ok := seenTeams[sheet.TeamID]; ok {
			out.SkippedTeams++
			continue
		}
		seenTeams[sheet.TeamID] = struct{}{}

		out.Lineups = append(out.Lineups, Lineup{
			MatchID:  matchID,
			TeamID:   sheet.TeamID,
			TeamName: sheet.TeamName,
		})

		seenPlayers := make(map[int64]struct{}, len(sheet.Players))
		for _, p := range sheet.Players {
			if _, ok := seenPlayers[p.PlayerID]; ok {
				out.SkippedPlayers++
				continue
			}
			seenPlayers[p.PlayerID] = struct{}{}

			playerID := p.PlayerID
			row := Player{
				MatchID:        matchID,
				TeamID:         sheet.TeamID,
				PlayerID:       p.PlayerID,
				PlayerName:     names.CanonicalizePtr(&playerID, p.PlayerName),
				PlayerNickname: p.PlayerNickname,
				JerseyNumber:   p.JerseyNumber,
			}
			if p.Country != nil {
				row.CountryID = p.Country.ID
				row.CountryName = p.Country.Name
			}
			out.Players = append(out.Players, row)

			for _, pos := range p.Positions {
				out.Positions = append(out.Positions, Position{
					ID:           seqs.Positions.Next(),
					MatchID:      matchID,
					TeamID:       sheet.TeamID,
					PlayerID:     p.PlayerID,
					PositionID:   pos.PositionID,
					PositionName: pos.Position,
					FromTime:     pos.From,
					ToTime:       pos.To,
					FromPeriod:   pos.FromPeriod,
					ToPeriod:     pos.ToPeriod,
					StartReason:  pos.StartReason,
					EndReason:    pos.EndReason,
				})
			}
			for _, card := range p.Cards {
				out.Cards = append(out.Cards, Card{
					ID:       seqs.Cards.Next(),
					MatchID:  matchID,
					TeamID:   sheet.TeamID,
					PlayerID: p.PlayerID,
					CardTime: card.Time,
					CardType: card.CardType,
					Reason:   card.Reason,
					Period:   card.Period,
				})
			}
		}
	}
	return out
}
