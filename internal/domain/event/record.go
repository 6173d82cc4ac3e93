package event

import (
	"bytes"
	"fmt"
	"strconv"

	sonic "github.com/bytedance/sonic"
)

// Ref is a nested {id, name} reference. Sources occasionally flatten a
// reference to a bare name or id, both of which decode into the same shape.
type Ref struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var name string
		if err := sonic.Unmarshal(trimmed, &name); err != nil {
			return fmt.Errorf("decode reference name: %w", err)
		}
		r.Name = &name
		return nil
	case '{':
		var raw struct {
			ID   *int64  `json:"id"`
			Name *string `json:"name"`
		}
		if err := sonic.Unmarshal(trimmed, &raw); err != nil {
			return fmt.Errorf("decode reference: %w", err)
		}
		r.ID, r.Name = raw.ID, raw.Name
		return nil
	default:
		id, err := strconv.ParseInt(string(trimmed), 10, 64)
		if err != nil {
			return fmt.Errorf("decode reference id %q: %w", trimmed, err)
		}
		r.ID = &id
		return nil
	}
}

func (r *Ref) IDPtr() *int64 {
	if r == nil {
		return nil
	}
	return r.ID
}

func (r *Ref) NamePtr() *string {
	if r == nil {
		return nil
	}
	return r.Name
}

// NameValue returns the name or "" when absent.
func (r *Ref) NameValue() string {
	if r == nil || r.Name == nil {
		return ""
	}
	return *r.Name
}

// Record is one raw event as it appears in a per-match events file. The owning
// match is not part of the record; it comes from the file the record was read from.
type Record struct {
	ID             string    `json:"id"`
	Index          *int64    `json:"index"`
	Period         *int64    `json:"period"`
	Timestamp      *string   `json:"timestamp"`
	Minute         *int64    `json:"minute"`
	Second         *int64    `json:"second"`
	Type           *Ref      `json:"type"`
	Possession     *int64    `json:"possession"`
	PossessionTeam *Ref      `json:"possession_team"`
	PlayPattern    *Ref      `json:"play_pattern"`
	Team           *Ref      `json:"team"`
	Player         *Ref      `json:"player"`
	Position       *Ref      `json:"position"`
	Location       []float64 `json:"location"`
	Duration       *float64  `json:"duration"`
	UnderPressure  bool      `json:"under_pressure"`
	OffCamera      bool      `json:"off_camera"`
	Out            bool      `json:"out"`
	Counterpress   bool      `json:"counterpress"`

	Shot           *Shot           `json:"shot"`
	Pass           *Pass           `json:"pass"`
	Carry          *Carry          `json:"carry"`
	Dribble        *Dribble        `json:"dribble"`
	Duel           *Duel           `json:"duel"`
	FoulCommitted  *FoulCommitted  `json:"foul_committed"`
	FoulWon        *FoulWon        `json:"foul_won"`
	Goalkeeper     *Goalkeeper     `json:"goalkeeper"`
	Clearance      *Clearance      `json:"clearance"`
	Interception   *Interception   `json:"interception"`
	Block          *Block          `json:"block"`
	BallRecovery   *BallRecovery   `json:"ball_recovery"`
	Miscontrol     *Miscontrol     `json:"miscontrol"`
	Substitution   *Substitution   `json:"substitution"`
	FiftyFifty     *FiftyFifty     `json:"50_50"`
	BadBehaviour   *BadBehaviour   `json:"bad_behaviour"`
	InjuryStoppage *InjuryStoppage `json:"injury_stoppage"`
}

// TypeName returns the type discriminator, or "" when absent.
func (r Record) TypeName() string {
	return r.Type.NameValue()
}

// FreezeFramePlayer is one entry of a shot freeze frame.
type FreezeFramePlayer struct {
	Location []float64 `json:"location"`
	Player   *Ref      `json:"player,omitempty"`
	Position *Ref      `json:"position,omitempty"`
	Teammate bool      `json:"teammate"`
}

type Shot struct {
	StatsbombXG    *float64            `json:"statsbomb_xg"`
	EndLocation    []float64           `json:"end_location"`
	KeyPassID      *string             `json:"key_pass_id"`
	BodyPart       *Ref                `json:"body_part"`
	Type           *Ref                `json:"type"`
	Outcome        *Ref                `json:"outcome"`
	Technique      *Ref                `json:"technique"`
	FreezeFrame    []FreezeFramePlayer `json:"freeze_frame"`
	FirstTime      bool                `json:"first_time"`
	Deflected      bool                `json:"deflected"`
	AerialWon      bool                `json:"aerial_won"`
	FollowsDribble bool                `json:"follows_dribble"`
	OneOnOne       bool                `json:"one_on_one"`
	OpenGoal       bool                `json:"open_goal"`
	Redirect       bool                `json:"redirect"`
	SavedOffTarget bool                `json:"saved_off_target"`
	SavedToPost    bool                `json:"saved_to_post"`
}

type Pass struct {
	Recipient        *Ref      `json:"recipient"`
	Length           *float64  `json:"length"`
	Angle            *float64  `json:"angle"`
	Height           *Ref      `json:"height"`
	EndLocation      []float64 `json:"end_location"`
	BodyPart         *Ref      `json:"body_part"`
	Type             *Ref      `json:"type"`
	Outcome          *Ref      `json:"outcome"`
	Technique        *Ref      `json:"technique"`
	AssistedShotID   *string   `json:"assisted_shot_id"`
	GoalAssist       bool      `json:"goal_assist"`
	ShotAssist       bool      `json:"shot_assist"`
	Cross            bool      `json:"cross"`
	Switch           bool      `json:"switch"`
	ThroughBall      bool      `json:"through_ball"`
	AerialWon        bool      `json:"aerial_won"`
	Deflected        bool      `json:"deflected"`
	Inswinging       bool      `json:"inswinging"`
	Outswinging      bool      `json:"outswinging"`
	NoTouch          bool      `json:"no_touch"`
	CutBack          bool      `json:"cut_back"`
	Straight         bool      `json:"straight"`
	Miscommunication bool      `json:"miscommunication"`
}

type Carry struct {
	EndLocation []float64 `json:"end_location"`
}

type Dribble struct {
	Outcome *Ref `json:"outcome"`
	Nutmeg  bool `json:"nutmeg"`
	Overrun bool `json:"overrun"`
	NoTouch bool `json:"no_touch"`
}

type Duel struct {
	Type    *Ref `json:"type"`
	Outcome *Ref `json:"outcome"`
}

type FoulCommitted struct {
	Card      *Ref `json:"card"`
	Type      *Ref `json:"type"`
	Offensive bool `json:"offensive"`
	Advantage bool `json:"advantage"`
	Penalty   bool `json:"penalty"`
}

type FoulWon struct {
	Defensive bool `json:"defensive"`
	Advantage bool `json:"advantage"`
	Penalty   bool `json:"penalty"`
}

type Goalkeeper struct {
	Type        *Ref      `json:"type"`
	Outcome     *Ref      `json:"outcome"`
	Technique   *Ref      `json:"technique"`
	Position    *Ref      `json:"position"`
	BodyPart    *Ref      `json:"body_part"`
	EndLocation []float64 `json:"end_location"`
}

type Clearance struct {
	BodyPart  *Ref `json:"body_part"`
	AerialWon bool `json:"aerial_won"`
	Head      bool `json:"head"`
	LeftFoot  bool `json:"left_foot"`
	RightFoot bool `json:"right_foot"`
}

type Interception struct {
	Outcome *Ref `json:"outcome"`
}

type Block struct {
	Deflection bool `json:"deflection"`
	Offensive  bool `json:"offensive"`
	SaveBlock  bool `json:"save_block"`
}

type BallRecovery struct {
	Offensive       bool `json:"offensive"`
	RecoveryFailure bool `json:"recovery_failure"`
}

type Miscontrol struct {
	AerialWon bool `json:"aerial_won"`
}

type Substitution struct {
	Replacement *Ref `json:"replacement"`
	Outcome     *Ref `json:"outcome"`
}

type FiftyFifty struct {
	Outcome *Ref `json:"outcome"`
}

type BadBehaviour struct {
	Card *Ref `json:"card"`
}

type InjuryStoppage struct {
	InChain bool `json:"in_chain"`
}
