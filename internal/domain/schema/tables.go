package schema

const (
	TableCompetitions        = "competitions"
	TableTeams               = "teams"
	TableMatches             = "matches"
	TableEventTypes          = "event_types"
	TablePlayers             = "players"
	TablePositions           = "positions"
	TablePlayPatterns        = "play_patterns"
	TableCountries           = "countries"
	TableEvents              = "events"
	TableLineups             = "lineups"
	TableLineupPlayers       = "lineup_players"
	TableLineupPositions     = "lineup_positions"
	TableLineupCards         = "lineup_cards"
	TableThreeSixtyFrames    = "three_sixty_frames"
	TableThreeSixtyPositions = "three_sixty_positions"
)

// Default returns the warehouse registry.
func Default() *Registry {
	return MustNewRegistry(Tables(), Indexes())
}

// Tables returns the warehouse table declarations.
func Tables() []Table {
	return []Table{
		{
			Name: TableCompetitions,
			Columns: []Column{
				integer("competition_id"),
				integer("season_id"),
				text("name"),
				text("gender"),
				nullableBool("is_youth"),
				nullableBool("is_international"),
				text("country_name"),
				text("season_name"),
				text("match_updated"),
				text("match_available_360"),
			},
			PrimaryKey: []string{"competition_id", "season_id"},
		},
		{
			Name:       TableTeams,
			Columns:    []Column{integer("id"), text("name"), text("gender")},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableMatches,
			Columns: []Column{
				integer("match_id"),
				text("match_date"),
				integer("match_week"),
				text("match_status"),
				text("match_status_360"),
				text("kickoff"),
				integer("home_score"),
				integer("away_score"),
				integer("competition_id"),
				text("competition"),
				text("competition_stage"),
				integer("season_id"),
				text("season"),
				integer("home_team_id"),
				text("home_team"),
				text("home_managers"),
				integer("away_team_id"),
				text("away_team"),
				text("away_managers"),
				integer("stadium_id"),
				text("stadium"),
				integer("referee_id"),
				text("referee"),
				text("last_updated"),
				text("last_updated_360"),
				text("data_version"),
				text("shot_fidelity_version"),
				text("xy_fidelity_version"),
			},
			PrimaryKey: []string{"match_id"},
			ForeignKeys: []ForeignKey{
				fk([]string{"competition_id", "season_id"}, TableCompetitions, "competition_id", "season_id"),
				fk([]string{"home_team_id"}, TableTeams, "id"),
				fk([]string{"away_team_id"}, TableTeams, "id"),
			},
		},
		lookup(TableEventTypes),
		lookup(TablePlayers),
		lookup(TablePositions),
		lookup(TablePlayPatterns),
		lookup(TableCountries),
		{
			Name:        TableEvents,
			Columns:     eventColumns(),
			PrimaryKey:  []string{"id"},
			NaturalKeys: [][]string{{"match_id", "index_num"}},
			ForeignKeys: []ForeignKey{
				fk([]string{"type_id"}, TableEventTypes, "id"),
				fk([]string{"match_id"}, TableMatches, "match_id"),
				fk([]string{"team_id"}, TableTeams, "id"),
				fk([]string{"player_id"}, TablePlayers, "id"),
				fk([]string{"position_id"}, TablePositions, "id"),
				fk([]string{"possession_team_id"}, TableTeams, "id"),
				fk([]string{"play_pattern_id"}, TablePlayPatterns, "id"),
				fk([]string{"pass_recipient_id"}, TablePlayers, "id"),
				fk([]string{"substitution_replacement_id"}, TablePlayers, "id"),
			},
		},
		{
			Name:       TableLineups,
			Columns:    []Column{integer("match_id"), integer("team_id"), text("team_name")},
			PrimaryKey: []string{"match_id", "team_id"},
			ForeignKeys: []ForeignKey{
				fk([]string{"match_id"}, TableMatches, "match_id"),
				fk([]string{"team_id"}, TableTeams, "id"),
			},
		},
		{
			Name: TableLineupPlayers,
			Columns: []Column{
				integer("match_id"),
				integer("team_id"),
				integer("player_id"),
				text("player_name"),
				text("player_nickname"),
				integer("jersey_number"),
				integer("country_id"),
				text("country_name"),
			},
			PrimaryKey: []string{"match_id", "team_id", "player_id"},
			ForeignKeys: []ForeignKey{
				fk([]string{"match_id", "team_id"}, TableLineups, "match_id", "team_id"),
				fk([]string{"country_id"}, TableCountries, "id"),
			},
		},
		{
			Name: TableLineupPositions,
			Columns: []Column{
				integer("id"),
				integer("match_id"),
				integer("team_id"),
				integer("player_id"),
				integer("position_id"),
				text("position_name"),
				text("from_time"),
				text("to_time"),
				integer("from_period"),
				integer("to_period"),
				text("start_reason"),
				text("end_reason"),
			},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				fk([]string{"match_id", "team_id", "player_id"}, TableLineupPlayers, "match_id", "team_id", "player_id"),
				fk([]string{"position_id"}, TablePositions, "id"),
			},
		},
		{
			Name: TableLineupCards,
			Columns: []Column{
				integer("id"),
				integer("match_id"),
				integer("team_id"),
				integer("player_id"),
				text("card_time"),
				text("card_type"),
				text("reason"),
				integer("period"),
			},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				fk([]string{"match_id", "team_id", "player_id"}, TableLineupPlayers, "match_id", "team_id", "player_id"),
			},
		},
		{
			Name:       TableThreeSixtyFrames,
			Columns:    []Column{text("event_uuid"), integer("match_id"), text("visible_area")},
			PrimaryKey: []string{"event_uuid"},
			ForeignKeys: []ForeignKey{
				fk([]string{"event_uuid"}, TableEvents, "id"),
				fk([]string{"match_id"}, TableMatches, "match_id"),
			},
		},
		{
			Name: TableThreeSixtyPositions,
			Columns: []Column{
				integer("id"),
				text("event_uuid"),
				flag("teammate"),
				flag("actor"),
				flag("keeper"),
				double("location_x"),
				double("location_y"),
			},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				fk([]string{"event_uuid"}, TableThreeSixtyFrames, "event_uuid"),
			},
		},
	}
}

func eventColumns() []Column {
	cols := []Column{
		text("id"),
		integer("index_num"),
		integer("period"),
		integer("minute"),
		integer("second"),
		text("timestamp"),
		double("duration"),
		text("location"),
		double("location_x"),
		double("location_y"),
		integer("possession"),
		integer("possession_team_id"),
		text("possession_team"),
		flag("out"),
		flag("off_camera"),
		flag("counterpress"),
		flag("under_pressure"),
		integer("type_id"),
		text("type"),
		integer("match_id"),
		integer("team_id"),
		text("team"),
		integer("player_id"),
		text("player"),
		integer("position_id"),
		text("position"),
		integer("play_pattern_id"),
		text("play_pattern"),

		text("shot_end_location"),
		double("shot_end_location_x"),
		double("shot_end_location_y"),
		double("shot_end_location_z"),
		double("shot_statsbomb_xg"),
		text("shot_outcome"),
		text("shot_technique"),
		text("shot_body_part"),
		text("shot_type"),
		text("shot_key_pass_id"),
		text("shot_freeze_frame"),
		flag("shot_first_time"),
		flag("shot_deflected"),
		flag("shot_aerial_won"),
		flag("shot_follows_dribble"),
		flag("shot_one_on_one"),
		flag("shot_open_goal"),
		flag("shot_redirect"),
		flag("shot_saved_off_target"),
		flag("shot_saved_to_post"),

		text("pass_end_location"),
		double("pass_end_location_x"),
		double("pass_end_location_y"),
		integer("pass_recipient_id"),
		text("pass_recipient"),
		double("pass_length"),
		double("pass_angle"),
		text("pass_height"),
		text("pass_body_part"),
		text("pass_type"),
		text("pass_outcome"),
		text("pass_technique"),
		text("pass_assisted_shot_id"),
		flag("pass_goal_assist"),
		flag("pass_shot_assist"),
		flag("pass_cross"),
		flag("pass_switch"),
		flag("pass_through_ball"),
		flag("pass_aerial_won"),
		flag("pass_deflected"),
		flag("pass_inswinging"),
		flag("pass_outswinging"),
		flag("pass_no_touch"),
		flag("pass_cut_back"),
		flag("pass_straight"),
		flag("pass_miscommunication"),

		text("carry_end_location"),
		double("carry_end_location_x"),
		double("carry_end_location_y"),

		text("dribble_outcome"),
		flag("dribble_nutmeg"),
		flag("dribble_overrun"),
		flag("dribble_no_touch"),

		text("duel_type"),
		text("duel_outcome"),

		text("foul_committed_card"),
		text("foul_committed_type"),
		flag("foul_committed_offensive"),
		flag("foul_committed_advantage"),
		flag("foul_committed_penalty"),

		flag("foul_won_defensive"),
		flag("foul_won_advantage"),
		flag("foul_won_penalty"),

		text("goalkeeper_type"),
		text("goalkeeper_outcome"),
		text("goalkeeper_technique"),
		text("goalkeeper_position"),
		text("goalkeeper_body_part"),
		text("goalkeeper_end_location"),
		double("goalkeeper_end_location_x"),
		double("goalkeeper_end_location_y"),

		text("clearance_body_part"),
		flag("clearance_aerial_won"),
		flag("clearance_head"),
		flag("clearance_left_foot"),
		flag("clearance_right_foot"),

		text("interception_outcome"),

		flag("block_deflection"),
		flag("block_offensive"),
		flag("block_save_block"),

		flag("ball_recovery_offensive"),
		flag("ball_recovery_failure"),

		flag("miscontrol_aerial_won"),

		integer("substitution_replacement_id"),
		text("substitution_replacement_name"),
		text("substitution_outcome"),

		text("fifty_fifty_outcome"),

		text("bad_behaviour_card"),

		flag("injury_stoppage_in_chain"),
	}
	return cols
}

// Indexes returns the secondary indexes created after loading.
func Indexes() []Index {
	return []Index{
		{Name: "idx_events_match", Table: TableEvents, Columns: []string{"match_id"}},
		{Name: "idx_events_player", Table: TableEvents, Columns: []string{"player_id"}},
		{Name: "idx_events_type", Table: TableEvents, Columns: []string{"type_id"}},
		{Name: "idx_events_team", Table: TableEvents, Columns: []string{"team_id"}},
		{Name: "idx_events_possession", Table: TableEvents, Columns: []string{"possession_team_id"}},
		{Name: "idx_matches_competition", Table: TableMatches, Columns: []string{"competition_id", "season_id"}},
		{Name: "idx_matches_home_team", Table: TableMatches, Columns: []string{"home_team_id"}},
		{Name: "idx_matches_away_team", Table: TableMatches, Columns: []string{"away_team_id"}},
		{Name: "idx_matches_date", Table: TableMatches, Columns: []string{"match_date"}},
		{Name: "idx_lineup_players_player", Table: TableLineupPlayers, Columns: []string{"player_id"}},
		{Name: "idx_lineup_players_match", Table: TableLineupPlayers, Columns: []string{"match_id"}},
		{Name: "idx_lineup_positions_player", Table: TableLineupPositions, Columns: []string{"player_id"}},
		{Name: "idx_lineup_positions_match", Table: TableLineupPositions, Columns: []string{"match_id"}},
		{Name: "idx_lineup_cards_player", Table: TableLineupCards, Columns: []string{"player_id"}},
		{Name: "idx_lineup_cards_match", Table: TableLineupCards, Columns: []string{"match_id"}},
		{Name: "idx_360_frames_match", Table: TableThreeSixtyFrames, Columns: []string{"match_id"}},
		{Name: "idx_360_positions_event", Table: TableThreeSixtyPositions, Columns: []string{"event_uuid"}},
	}
}

func lookup(name string) Table {
	return Table{
		Name:       name,
		Columns:    []Column{integer("id"), text("name")},
		PrimaryKey: []string{"id"},
	}
}

func fk(cols []string, refTable string, refCols ...string) ForeignKey {
	return ForeignKey{Columns: cols, RefTable: refTable, RefColumns: refCols}
}

func integer(name string) Column      { return Column{Name: name, Type: TypeInteger} }
func text(name string) Column         { return Column{Name: name, Type: TypeText} }
func double(name string) Column       { return Column{Name: name, Type: TypeDouble} }
func nullableBool(name string) Column { return Column{Name: name, Type: TypeBoolean} }
func flag(name string) Column         { return Column{Name: name, Type: TypeBoolean, NotNull: true} }
