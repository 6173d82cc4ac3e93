package event

// Row is the flattened, typed projection of one event into the events table.
// Nominal columns are nil when absent; flag columns are never unknown.
type Row struct {
	ID             string   `db:"id"`
	IndexNum       *int64   `db:"index_num"`
	Period         *int64   `db:"period"`
	Minute         *int64   `db:"minute"`
	Second         *int64   `db:"second"`
	Timestamp      *string  `db:"timestamp"`
	Duration       *float64 `db:"duration"`
	Location       *string  `db:"location"`
	LocationX      *float64 `db:"location_x"`
	LocationY      *float64 `db:"location_y"`
	Possession     *int64   `db:"possession"`
	PossessionTeam *int64   `db:"possession_team_id"`
	PossessionName *string  `db:"possession_team"`
	Out            bool     `db:"out"`
	OffCamera      bool     `db:"off_camera"`
	Counterpress   bool     `db:"counterpress"`
	UnderPressure  bool     `db:"under_pressure"`
	TypeID         *int64   `db:"type_id"`
	Type           *string  `db:"type"`
	MatchID        int64    `db:"match_id"`
	TeamID         *int64   `db:"team_id"`
	Team           *string  `db:"team"`
	PlayerID       *int64   `db:"player_id"`
	Player         *string  `db:"player"`
	PositionID     *int64   `db:"position_id"`
	Position       *string  `db:"position"`
	PlayPatternID  *int64   `db:"play_pattern_id"`
	PlayPattern    *string  `db:"play_pattern"`

	ShotEndLocation    *string  `db:"shot_end_location"`
	ShotEndLocationX   *float64 `db:"shot_end_location_x"`
	ShotEndLocationY   *float64 `db:"shot_end_location_y"`
	ShotEndLocationZ   *float64 `db:"shot_end_location_z"`
	ShotStatsbombXG    *float64 `db:"shot_statsbomb_xg"`
	ShotOutcome        *string  `db:"shot_outcome"`
	ShotTechnique      *string  `db:"shot_technique"`
	ShotBodyPart       *string  `db:"shot_body_part"`
	ShotType           *string  `db:"shot_type"`
	ShotKeyPassID      *string  `db:"shot_key_pass_id"`
	ShotFreezeFrame    *string  `db:"shot_freeze_frame"`
	ShotFirstTime      bool     `db:"shot_first_time"`
	ShotDeflected      bool     `db:"shot_deflected"`
	ShotAerialWon      bool     `db:"shot_aerial_won"`
	ShotFollowsDribble bool     `db:"shot_follows_dribble"`
	ShotOneOnOne       bool     `db:"shot_one_on_one"`
	ShotOpenGoal       bool     `db:"shot_open_goal"`
	ShotRedirect       bool     `db:"shot_redirect"`
	ShotSavedOffTarget bool     `db:"shot_saved_off_target"`
	ShotSavedToPost    bool     `db:"shot_saved_to_post"`

	PassEndLocation      *string  `db:"pass_end_location"`
	PassEndLocationX     *float64 `db:"pass_end_location_x"`
	PassEndLocationY     *float64 `db:"pass_end_location_y"`
	PassRecipientID      *int64   `db:"pass_recipient_id"`
	PassRecipient        *string  `db:"pass_recipient"`
	PassLength           *float64 `db:"pass_length"`
	PassAngle            *float64 `db:"pass_angle"`
	PassHeight           *string  `db:"pass_height"`
	PassBodyPart         *string  `db:"pass_body_part"`
	PassType             *string  `db:"pass_type"`
	PassOutcome          *string  `db:"pass_outcome"`
	PassTechnique        *string  `db:"pass_technique"`
	PassAssistedShotID   *string  `db:"pass_assisted_shot_id"`
	PassGoalAssist       bool     `db:"pass_goal_assist"`
	PassShotAssist       bool     `db:"pass_shot_assist"`
	PassCross            bool     `db:"pass_cross"`
	PassSwitch           bool     `db:"pass_switch"`
	PassThroughBall      bool     `db:"pass_through_ball"`
	PassAerialWon        bool     `db:"pass_aerial_won"`
	PassDeflected        bool     `db:"pass_deflected"`
	PassInswinging       bool     `db:"pass_inswinging"`
	PassOutswinging      bool     `db:"pass_outswinging"`
	PassNoTouch          bool     `db:"pass_no_touch"`
	PassCutBack          bool     `db:"pass_cut_back"`
	PassStraight         bool     `db:"pass_straight"`
	PassMiscommunication bool     `db:"pass_miscommunication"`

	CarryEndLocation  *string  `db:"carry_end_location"`
	CarryEndLocationX *float64 `db:"carry_end_location_x"`
	CarryEndLocationY *float64 `db:"carry_end_location_y"`

	DribbleOutcome *string `db:"dribble_outcome"`
	DribbleNutmeg  bool    `db:"dribble_nutmeg"`
	DribbleOverrun bool    `db:"dribble_overrun"`
	DribbleNoTouch bool    `db:"dribble_no_touch"`

	DuelType    *string `db:"duel_type"`
	DuelOutcome *string `db:"duel_outcome"`

	FoulCommittedCard      *string `db:"foul_committed_card"`
	FoulCommittedType      *string `db:"foul_committed_type"`
	FoulCommittedOffensive bool    `db:"foul_committed_offensive"`
	FoulCommittedAdvantage bool    `db:"foul_committed_advantage"`
	FoulCommittedPenalty   bool    `db:"foul_committed_penalty"`

	FoulWonDefensive bool `db:"foul_won_defensive"`
	FoulWonAdvantage bool `db:"foul_won_advantage"`
	FoulWonPenalty   bool `db:"foul_won_penalty"`

	GoalkeeperType         *string  `db:"goalkeeper_type"`
	GoalkeeperOutcome      *string  `db:"goalkeeper_outcome"`
	GoalkeeperTechnique    *string  `db:"goalkeeper_technique"`
	GoalkeeperPosition     *string  `db:"goalkeeper_position"`
	GoalkeeperBodyPart     *string  `db:"goalkeeper_body_part"`
	GoalkeeperEndLocation  *string  `db:"goalkeeper_end_location"`
	GoalkeeperEndLocationX *float64 `db:"goalkeeper_end_location_x"`
	GoalkeeperEndLocationY *float64 `db:"goalkeeper_end_location_y"`

	ClearanceBodyPart  *string `db:"clearance_body_part"`
	ClearanceAerialWon bool    `db:"clearance_aerial_won"`
	ClearanceHead      bool    `db:"clearance_head"`
	ClearanceLeftFoot  bool    `db:"clearance_left_foot"`
	ClearanceRightFoot bool    `db:"clearance_right_foot"`

	InterceptionOutcome *string `db:"interception_outcome"`

	BlockDeflection bool `db:"block_deflection"`
	BlockOffensive  bool `db:"block_offensive"`
	BlockSaveBlock  bool `db:"block_save_block"`

	BallRecoveryOffensive bool `db:"ball_recovery_offensive"`
	BallRecoveryFailure   bool `db:"ball_recovery_failure"`

	MiscontrolAerialWon bool `db:"miscontrol_aerial_won"`

	SubstitutionReplacementID   *int64  `db:"substitution_replacement_id"`
	SubstitutionReplacementName *string `db:"substitution_replacement_name"`
	SubstitutionOutcome         *string `db:"substitution_outcome"`

	FiftyFiftyOutcome *string `db:"fifty_fifty_outcome"`

	BadBehaviourCard *string `db:"bad_behaviour_card"`

	InjuryStoppageInChain bool `db:"injury_stoppage_in_chain"`
}
