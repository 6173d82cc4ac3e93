package tracking

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
)

// Snapshot is one 360 entry: the visible pitch polygon at an event and the
// players captured in it.
type Snapshot struct {
	EventUUID   string        `json:"event_uuid"`
	VisibleArea []float64     `json:"visible_area"`
	FreezeFrame []FramePlayer `json:"freeze_frame"`
}

type FramePlayer struct {
	Teammate bool      `json:"teammate"`
	Actor    bool      `json:"actor"`
	Keeper   bool      `json:"keeper"`
	Location []float64 `json:"location"`
}

// Frame is a row of the three_sixty_frames table.
type Frame struct {
	EventUUID   string  `db:"event_uuid"`
	MatchID     int64   `db:"match_id"`
	VisibleArea *string `db:"visible_area"`
}

// Position is a row of the three_sixty_positions table.
type Position struct {
	ID        int64    `db:"id"`
	EventUUID string   `db:"event_uuid"`
	Teammate  bool     `db:"teammate"`
	Actor     bool     `db:"actor"`
	Keeper    bool     `db:"keeper"`
	LocationX *float64 `db:"location_x"`
	LocationY *float64 `db:"location_y"`
}

// IDSource issues surrogate keys.
type IDSource interface {
	Next() int64
}

type Expansion struct {
	Frames    []Frame
	Positions []Position
	// Snapshots dropped because an earlier one in the file had the same event.
	SkippedFrames int
}

// Expand turns the snapshots of one match into frame and position rows.
func Expand(matchID int64, snapshots []Snapshot, positions IDSource) (Expansion, error) {
	out := Expansion{Frames: make([]Frame, 0, len(snapshots))}
	seen := make(map[string]struct{}, len(snapshots))

	for _, snap := range snapshots {
		if _, ok := seen[snap.EventUUID]; ok {
			out.SkippedFrames++
			continue
		}
		seen[snap.EventUUID] = struct{}{}

		frame := Frame{EventUUID: snap.EventUUID, MatchID: matchID}
		if snap.VisibleArea != nil {
			raw, err := sonic.Marshal(snap.VisibleArea)
			if err != nil {
				return Expansion{}, fmt.Errorf("encode visible area of %s: %w", snap.EventUUID, err)
			}
			text := string(raw)
			frame.VisibleArea = &text
		}
		out.Frames = append(out.Frames, frame)

		for _, p := range snap.FreezeFrame {
			row := Position{
				ID:        positions.Next(),
				EventUUID: snap.EventUUID,
				Teammate:  p.Teammate,
				Actor:     p.Actor,
				Keeper:    p.Keeper,
			}
			if len(p.Location) > 0 {
				x := p.Location[0]
				row.LocationX = &x
			}
			if len(p.Location) > 1 {
				y := p.Location[1]
				row.LocationY = &y
			}
			out.Positions = append(out.Positions, row)
		}
	}
	return out, nil
}
