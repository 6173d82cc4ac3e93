package tracking

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-warehouse/internal/platform/id"
)

func TestExpand_FramesAndPositions(t *testing.T) {
	t.Parallel()

	var snapshots []Snapshot
	raw := `[
		{"event_uuid": "ev-1", "visible_area": [0, 0, 120, 0, 120, 80], "freeze_frame": [
			{"teammate": true, "actor": true, "keeper": false, "location": [60.5, 40.2]},
			{"teammate": false, "actor": false, "keeper": true, "location": [118.0, 39.0]}
		]},
		{"event_uuid": "ev-2", "freeze_frame": []},
		{"event_uuid": "ev-1", "freeze_frame": [{"teammate": true, "location": [1, 1]}]}
	]`
	if err := sonic.Unmarshal([]byte(raw), &snapshots); err != nil {
		t.Fatalf("decode snapshots: %v", err)
	}

	seq := id.NewSequence()
	got, err := Expand(3788741, snapshots, seq)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}

	if len(got.Frames) != 2 || got.SkippedFrames != 1 {
		t.Fatalf("unexpected frames: %d skipped=%d", len(got.Frames), got.SkippedFrames)
	}
	if got.Frames[0].MatchID != 3788741 || *got.Frames[0].VisibleArea != "[0,0,120,0,120,80]" {
		t.Fatalf("unexpected first frame: %+v", got.Frames[0])
	}
	if got.Frames[1].VisibleArea != nil {
		t.Fatalf("expected null visible area for ev-2")
	}
	if len(got.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(got.Positions))
	}

	actor := got.Positions[0]
	if actor.ID != 1 || !actor.Teammate || !actor.Actor || actor.Keeper || *actor.LocationX != 60.5 || *actor.LocationY != 40.2 {
		t.Fatalf("unexpected actor row: %+v", actor)
	}
	keeper := got.Positions[1]
	if keeper.ID != 2 || keeper.Teammate || !keeper.Keeper {
		t.Fatalf("unexpected keeper row: %+v", keeper)
	}
}

func TestExpand_NoSnapshots(t *testing.T) {
	t.Parallel()

	got, err := Expand(1, nil, id.NewSequence())
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got.Frames) != 0 || len(got.Positions) != 0 {
		t.Fatalf("expected empty expansion, got %+v", got)
	}
}
