package event

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
)

var matchFileRegex = regexp.MustCompile(`^([0-9]+)\.json$`)

// MatchIDFromPath extracts the owning match id from a per-match file name
// such as "events/3788741.json".
func MatchIDFromPath(path string) (int64, error) {
	m := matchFileRegex.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, fmt.Errorf("file %q is not named <match_id>.json", path)
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse match id from %q: %w", path, err)
	}
	return id, nil
}

// Flatten maps one raw event into its wide row. The block selected by the
// event type is applied first, then every other present block.
func Flatten(matchID int64, rec Record, names reference.NameOverrides) (Row, error) {
	loc, err := splitLocation(rec.Location)
	if err != nil {
		return Row{}, fmt.Errorf("event %s location: %w", rec.ID, err)
	}

	row := Row{
		ID:             rec.ID,
		IndexNum:       rec.Index,
		Period:         rec.Period,
		Minute:         rec.Minute,
		Second:         rec.Second,
		Timestamp:      rec.Timestamp,
		Duration:       rec.Duration,
		Location:       loc.text,
		LocationX:      loc.x,
		LocationY:      loc.y,
		Possession:     rec.Possession,
		PossessionTeam: rec.PossessionTeam.IDPtr(),
		PossessionName: rec.PossessionTeam.NamePtr(),
		Out:            rec.Out,
		OffCamera:      rec.OffCamera,
		Counterpress:   rec.Counterpress,
		UnderPressure:  rec.UnderPressure,
		TypeID:         rec.Type.IDPtr(),
		Type:           rec.Type.NamePtr(),
		MatchID:        matchID,
		TeamID:         rec.Team.IDPtr(),
		Team:           rec.Team.NamePtr(),
		PlayerID:       rec.Player.IDPtr(),
		Player:         names.CanonicalizePtr(rec.Player.IDPtr(), rec.Player.NamePtr()),
		PositionID:     rec.Position.IDPtr(),
		Position:       rec.Position.NamePtr(),
		PlayPatternID:  rec.PlayPattern.IDPtr(),
		PlayPattern:    rec.PlayPattern.NamePtr(),
	}

	payloads := append([]Payload{rec.Payload()}, rec.Extras()...)
	for _, p := range payloads {
		if err := p.apply(&row, names); err != nil {
			return Row{}, fmt.Errorf("event %s %s payload: %w", rec.ID, p.Family(), err)
		}
	}
	return row, nil
}

type location struct {
	text *string
	x    *float64
	y    *float64
	z    *float64
}

// splitLocation serialises a coordinate array and splits it by index:
// [0] is x, [1] is y and [2], when present, is z.
func splitLocation(coords []float64) (location, error) {
	if coords == nil {
		return location{}, nil
	}
	text, err := marshalText(coords)
	if err != nil {
		return location{}, err
	}

	out := location{text: text}
	if len(coords) > 0 {
		out.x = &coords[0]
	}
	if len(coords) > 1 {
		out.y = &coords[1]
	}
	if len(coords) > 2 {
		out.z = &coords[2]
	}
	return out, nil
}

func marshalText(v any) (*string, error) {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json text: %w", err)
	}
	text := string(raw)
	return &text, nil
}
