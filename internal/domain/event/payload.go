package event

import (
	"fmt"

	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
)

// Family identifies an event payload block.
type Family string

const (
	FamilyNone           Family = ""
	FamilyShot           Family = "shot"
	FamilyPass           Family = "pass"
	FamilyCarry          Family = "carry"
	FamilyDribble        Family = "dribble"
	FamilyDuel           Family = "duel"
	FamilyFoulCommitted  Family = "foul_committed"
	FamilyFoulWon        Family = "foul_won"
	FamilyGoalkeeper     Family = "goalkeeper"
	FamilyClearance      Family = "clearance"
	FamilyInterception   Family = "interception"
	FamilyBlock          Family = "block"
	FamilyBallRecovery   Family = "ball_recovery"
	FamilyMiscontrol     Family = "miscontrol"
	FamilySubstitution   Family = "substitution"
	FamilyFiftyFifty     Family = "fifty_fifty"
	FamilyBadBehaviour   Family = "bad_behaviour"
	FamilyInjuryStoppage Family = "injury_stoppage"
)

var familyByTypeName = map[string]Family{
	"Shot":            FamilyShot,
	"Pass":            FamilyPass,
	"Carry":           FamilyCarry,
	"Dribble":         FamilyDribble,
	"Duel":            FamilyDuel,
	"Foul Committed":  FamilyFoulCommitted,
	"Foul Won":        FamilyFoulWon,
	"Goal Keeper":     FamilyGoalkeeper,
	"Clearance":       FamilyClearance,
	"Interception":    FamilyInterception,
	"Block":           FamilyBlock,
	"Ball Recovery":   FamilyBallRecovery,
	"Miscontrol":      FamilyMiscontrol,
	"Substitution":    FamilySubstitution,
	"50/50":           FamilyFiftyFifty,
	"Bad Behaviour":   FamilyBadBehaviour,
	"Injury Stoppage": FamilyInjuryStoppage,
}

// FamilyForType maps an event type name to the payload family it carries.
// Types without a payload family map to FamilyNone.
func FamilyForType(typeName string) Family {
	return familyByTypeName[typeName]
}

// Payload is the tagged union of event payload blocks. Every family block
// type implements it, and Unclassified covers event types without one.
type Payload interface {
	Family() Family
	apply(row *Row, names reference.NameOverrides) error
}

// Unclassified is the payload of an event type that has no family block.
type Unclassified struct {
	TypeName string
}

func (Unclassified) Family() Family                            { return FamilyNone }
func (Unclassified) apply(*Row, reference.NameOverrides) error { return nil }
func (*Shot) Family() Family                                   { return FamilyShot }
func (*Pass) Family() Family                                   { return FamilyPass }
func (*Carry) Family() Family                                  { return FamilyCarry }
func (*Dribble) Family() Family                                { return FamilyDribble }
func (*Duel) Family() Family                                   { return FamilyDuel }
func (*FoulCommitted) Family() Family                          { return FamilyFoulCommitted }
func (*FoulWon) Family() Family                                { return FamilyFoulWon }
func (*Goalkeeper) Family() Family                             { return FamilyGoalkeeper }
func (*Clearance) Family() Family                              { return FamilyClearance }
func (*Interception) Family() Family                           { return FamilyInterception }
func (*Block) Family() Family                                  { return FamilyBlock }
func (*BallRecovery) Family() Family                           { return FamilyBallRecovery }
func (*Miscontrol) Family() Family                             { return FamilyMiscontrol }
func (*Substitution) Family() Family                           { return FamilySubstitution }
func (*FiftyFifty) Family() Family                             { return FamilyFiftyFifty }
func (*BadBehaviour) Family() Family                           { return FamilyBadBehaviour }
func (*InjuryStoppage) Family() Family                         { return FamilyInjuryStoppage }

// Payload selects the variant named by the type discriminator. A classified
// type whose block is missing yields an empty block of that family, so its
// flags default to false.
func (r Record) Payload() Payload {
	family := FamilyForType(r.TypeName())
	if family == FamilyNone {
		return Unclassified{TypeName: r.TypeName()}
	}
	for _, p := range r.Payloads() {
		if p.Family() == family {
			return p
		}
	}
	return emptyPayload(family)
}

// Payloads lists every block present on the record, regardless of type.
func (r Record) Payloads() []Payload {
	out := make([]Payload, 0, 1)
	add := func(present bool, p Payload) {
		if present {
			out = append(out, p)
		}
	}
	add(r.Shot != nil, r.Shot)
	add(r.Pass != nil, r.Pass)
	add(r.Carry != nil, r.Carry)
	add(r.Dribble != nil, r.Dribble)
	add(r.Duel != nil, r.Duel)
	add(r.FoulCommitted != nil, r.FoulCommitted)
	add(r.FoulWon != nil, r.FoulWon)
	add(r.Goalkeeper != nil, r.Goalkeeper)
	add(r.Clearance != nil, r.Clearance)
	add(r.Interception != nil, r.Interception)
	add(r.Block != nil, r.Block)
	add(r.BallRecovery != nil, r.BallRecovery)
	add(r.Miscontrol != nil, r.Miscontrol)
	add(r.Substitution != nil, r.Substitution)
	add(r.FiftyFifty != nil, r.FiftyFifty)
	add(r.BadBehaviour != nil, r.BadBehaviour)
	add(r.InjuryStoppage != nil, r.InjuryStoppage)
	return out
}

// Extras lists the blocks present on the record that its type does not name.
func (r Record) Extras() []Payload {
	family := FamilyForType(r.TypeName())
	var out []Payload
	for _, p := range r.Payloads() {
		if p.Family() != family {
			out = append(out, p)
		}
	}
	return out
}

// Mismatched reports whether the record carries a block that its type does
// not name. Such records are still flattened in full.
func (r Record) Mismatched() bool {
	return len(r.Extras()) > 0
}

func emptyPayload(family Family) Payload {
	switch family {
	case FamilyShot:
		return &Shot{}
	case FamilyPass:
		return &Pass{}
	case FamilyCarry:
		return &Carry{}
	case FamilyDribble:
		return &Dribble{}
	case FamilyDuel:
		return &Duel{}
	case FamilyFoulCommitted:
		return &FoulCommitted{}
	case FamilyFoulWon:
		return &FoulWon{}
	case FamilyGoalkeeper:
		return &Goalkeeper{}
	case FamilyClearance:
		return &Clearance{}
	case FamilyInterception:
		return &Interception{}
	case FamilyBlock:
		return &Block{}
	case FamilyBallRecovery:
		return &BallRecovery{}
	case FamilyMiscontrol:
		return &Miscontrol{}
	case FamilySubstitution:
		return &Substitution{}
	case FamilyFiftyFifty:
		return &FiftyFifty{}
	case FamilyBadBehaviour:
		return &BadBehaviour{}
	case FamilyInjuryStoppage:
		return &InjuryStoppage{}
	default:
		return Unclassified{}
	}
}

func (p *Shot) apply(row *Row, _ reference.NameOverrides) error {
	loc, err := splitLocation(p.EndLocation)
	if err != nil {
		return fmt.Errorf("shot end location: %w", err)
	}
	row.ShotEndLocation = loc.text
	row.ShotEndLocationX = loc.x
	row.ShotEndLocationY = loc.y
	row.ShotEndLocationZ = loc.z
	row.ShotStatsbombXG = p.StatsbombXG
	row.ShotOutcome = p.Outcome.NamePtr()
	row.ShotTechnique = p.Technique.NamePtr()
	row.ShotBodyPart = p.BodyPart.NamePtr()
	row.ShotType = p.Type.NamePtr()
	row.ShotKeyPassID = p.KeyPassID
	if p.FreezeFrame != nil {
		text, err := marshalText(p.FreezeFrame)
		if err != nil {
			return fmt.Errorf("shot freeze frame: %w", err)
		}
		row.ShotFreezeFrame = text
	}
	row.ShotFirstTime = p.FirstTime
	row.ShotDeflected = p.Deflected
	row.ShotAerialWon = p.AerialWon
	row.ShotFollowsDribble = p.FollowsDribble
	row.ShotOneOnOne = p.OneOnOne
	row.ShotOpenGoal = p.OpenGoal
	row.ShotRedirect = p.Redirect
	row.ShotSavedOffTarget = p.SavedOffTarget
	row.ShotSavedToPost = p.SavedToPost
	return nil
}

func (p *Pass) apply(row *Row, names reference.NameOverrides) error {
	loc, err := splitLocation(p.EndLocation)
	if err != nil {
		return fmt.Errorf("pass end location: %w", err)
	}
	row.PassEndLocation = loc.text
	row.PassEndLocationX = loc.x
	row.PassEndLocationY = loc.y
	row.PassRecipientID = p.Recipient.IDPtr()
	row.PassRecipient = names.CanonicalizePtr(p.Recipient.IDPtr(), p.Recipient.NamePtr())
	row.PassLength = p.Length
	row.PassAngle = p.Angle
	row.PassHeight = p.Height.NamePtr()
	row.PassBodyPart = p.BodyPart.NamePtr()
	row.PassType = p.Type.NamePtr()
	row.PassOutcome = p.Outcome.NamePtr()
	row.PassTechnique = p.Technique.NamePtr()
	row.PassAssistedShotID = p.AssistedShotID
	row.PassGoalAssist = p.GoalAssist
	row.PassShotAssist = p.ShotAssist
	row.PassCross = p.Cross
	row.PassSwitch = p.Switch
	row.PassThroughBall = p.ThroughBall
	row.PassAerialWon = p.AerialWon
	row.PassDeflected = p.Deflected
	row.PassInswinging = p.Inswinging
	row.PassOutswinging = p.Outswinging
	row.PassNoTouch = p.NoTouch
	row.PassCutBack = p.CutBack
	row.PassStraight = p.Straight
	row.PassMiscommunication = p.Miscommunication
	return nil
}

func (p *Carry) apply(row *Row, _ reference.NameOverrides) error {
	loc, err := splitLocation(p.EndLocation)
	if err != nil {
		return fmt.Errorf("carry end location: %w", err)
	}
	row.CarryEndLocation = loc.text
	row.CarryEndLocationX = loc.x
	row.CarryEndLocationY = loc.y
	return nil
}

func (p *Dribble) apply(row *Row, _ reference.NameOverrides) error {
	row.DribbleOutcome = p.Outcome.NamePtr()
	row.DribbleNutmeg = p.Nutmeg
	row.DribbleOverrun = p.Overrun
	row.DribbleNoTouch = p.NoTouch
	return nil
}

func (p *Duel) apply(row *Row, _ reference.NameOverrides) error {
	row.DuelType = p.Type.NamePtr()
	row.DuelOutcome = p.Outcome.NamePtr()
	return nil
}

func (p *FoulCommitted) apply(row *Row, _ reference.NameOverrides) error {
	row.FoulCommittedCard = p.Card.NamePtr()
	row.FoulCommittedType = p.Type.NamePtr()
	row.FoulCommittedOffensive = p.Offensive
	row.FoulCommittedAdvantage = p.Advantage
	row.FoulCommittedPenalty = p.Penalty
	return nil
}

func (p *FoulWon) apply(row *Row, _ reference.NameOverrides) error {
	row.FoulWonDefensive = p.Defensive
	row.FoulWonAdvantage = p.Advantage
	row.FoulWonPenalty = p.Penalty
	return nil
}

func (p *Goalkeeper) apply(row *Row, _ reference.NameOverrides) error {
	loc, err := splitLocation(p.EndLocation)
	if err != nil {
		return fmt.Errorf("goalkeeper end location: %w", err)
	}
	row.GoalkeeperType = p.Type.NamePtr()
	row.GoalkeeperOutcome = p.Outcome.NamePtr()
	row.GoalkeeperTechnique = p.Technique.NamePtr()
	row.GoalkeeperPosition = p.Position.NamePtr()
	row.GoalkeeperBodyPart = p.BodyPart.NamePtr()
	row.GoalkeeperEndLocation = loc.text
	row.GoalkeeperEndLocationX = loc.x
	row.GoalkeeperEndLocationY = loc.y
	return nil
}

func (p *Clearance) apply(row *Row, _ reference.NameOverrides) error {
	row.ClearanceBodyPart = p.BodyPart.NamePtr()
	row.ClearanceAerialWon = p.AerialWon
	row.ClearanceHead = p.Head
	row.ClearanceLeftFoot = p.LeftFoot
	row.ClearanceRightFoot = p.RightFoot
	return nil
}

func (p *Interception) apply(row *Row, _ reference.NameOverrides) error {
	row.InterceptionOutcome = p.Outcome.NamePtr()
	return nil
}

func (p *Block) apply(row *Row, _ reference.NameOverrides) error {
	row.BlockDeflection = p.Deflection
	row.BlockOffensive = p.Offensive
	row.BlockSaveBlock = p.SaveBlock
	return nil
}

func (p *BallRecovery) apply(row *Row, _ reference.NameOverrides) error {
	row.BallRecoveryOffensive = p.Offensive
	row.BallRecoveryFailure = p.RecoveryFailure
	return nil
}

func (p *Miscontrol) apply(row *Row, _ reference.NameOverrides) error {
	row.MiscontrolAerialWon = p.AerialWon
	return nil
}

func (p *Substitution) apply(row *Row, names reference.NameOverrides) error {
	row.SubstitutionReplacementID = p.Replacement.IDPtr()
	row.SubstitutionReplacementName = names.CanonicalizePtr(p.Replacement.IDPtr(), p.Replacement.NamePtr())
	row.SubstitutionOutcome = p.Outcome.NamePtr()
	return nil
}

func (p *FiftyFifty) apply(row *Row, _ reference.NameOverrides) error {
	row.FiftyFiftyOutcome = p.Outcome.NamePtr()
	return nil
}

func (p *BadBehaviour) apply(row *Row, _ reference.NameOverrides) error {
	row.BadBehaviourCard = p.Card.NamePtr()
	return nil
}

func (p *InjuryStoppage) apply(row *Row, _ reference.NameOverrides) error {
	row.InjuryStoppageInChain = p.InChain
	return nil
}
