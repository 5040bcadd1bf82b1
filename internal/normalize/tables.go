package normalize

import (
	"strconv"

	"github.com/riskibarqy/matchday-scraper/internal/domain/dataset"
	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchevent"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchstat"
	"github.com/riskibarqy/matchday-scraper/internal/domain/result"
	"github.com/riskibarqy/matchday-scraper/internal/domain/roster"
	"github.com/riskibarqy/matchday-scraper/internal/domain/score"
	"github.com/riskibarqy/matchday-scraper/internal/domain/standing"
)

// Dataset names, one CSV file each.
const (
	DatasetLineups       = "lineups"
	DatasetScores        = "scores"
	DatasetGoals         = "goals"
	DatasetAssists       = "assists"
	DatasetLeagueTables  = "league_tables"
	DatasetMatchStats    = "match_stats"
	DatasetOfficials     = "officials"
	DatasetSamedayScores = "sameday_scores"
	DatasetSamedayGoals  = "sameday_goals"
	DatasetCommentary    = "commentary"
	DatasetSubEvents     = "sub_events"
	DatasetSubs          = "subs"
	DatasetSubMins       = "sub_mins"
	DatasetPlayerApps    = "player_apps"
	DatasetYellowCards   = "yellow_cards"
	DatasetRedCards      = "red_cards"
	DatasetClubGoals     = "club_goals"
	DatasetResults       = "results"
)

var (
	LineupHeader = []string{
		"game_date", "team_name", "team_venue", "formation", "team_manager",
		"surname", "forename", "player_name", "short_name", "player_id",
		"shirt_no", "position", "formation_place", "role", "is_captain",
		"yellow_card", "min_yc", "min_yc_inj", "red_card", "min_rc", "min_rc_inj",
		"sub_off_period", "sub_off_min", "sub_off_reason", "sub_replacement_id", "sub_replacement_name",
		"sub_on_period", "sub_on_min", "sub_on_reason", "sub_replaced_id", "sub_replaced_name",
	}
	ScoreHeader         = []string{"game_date", "team_name", "team_venue", "ht_score", "ft_score", "pens_score"}
	GoalHeader          = []string{"game_date", "team_name", "player_name", "player_id", "goal_min", "goal_min_inj", "goal_type"}
	SamedayGoalHeader   = []string{"game_date", "home_team", "away_team", "team_name", "player_name", "player_id", "goal_min", "goal_min_inj", "goal_type"}
	AssistHeader        = []string{"game_date", "team_name", "player_name", "assist_min", "assist_min_inj"}
	StandingHeader      = []string{"game_date", "league_name", "cup_div", "rank", "team_name", "p", "w", "d", "l", "gf", "ga", "gd", "points"}
	OfficialHeader      = []string{"game_date", "surname", "forename", "name", "role"}
	SamedayScoreHeader  = []string{"game_date", "home_team", "away_team", "team_name", "ht_score", "ft_score", "pen_score"}
	CommentaryHeader    = []string{"game_date", "comm_min", "comm_min_inj", "comm_text", "headline"}
	SubEventHeader      = []string{"game_date", "team_name", "period", "minute", "reason", "leaving_id", "leaving_name", "leaving_shirt", "entering_id", "entering_name", "entering_shirt"}
	SubstitutionHeader  = []string{"game_date", "minute", "shirt_no", "player_name", "off_shirt_no", "off_player_name"}
	SubMinutesHeader    = []string{"game_date", "player_name", "min_off", "min_on"}
	AppearanceHeader    = []string{"game_date", "player_name", "shirt_no", "role"}
	CardHeader          = []string{"game_date", "player_name", "min", "min_inj"}
	ClubGoalHeader      = []string{"game_date", "player_name", "goal_min", "goal_min_inj", "penalty", "own_goal"}
	ResultHeader        = []string{"season", "game_date", "weekday", "opposition", "venue", "score", "outcome", "goals_for", "goals_against", "goal_diff", "game_type", "competition", "league_pos", "pts", "manager", "referee", "pen_score"}
	matchStatsKeyHeader = []string{"game_date", "team_name", "team_venue"}
)

// datasetSources lists the extractors every dataset is built from.
var datasetSources = map[string][]string{
	DatasetLineups:       {EntityLineups},
	DatasetScores:        {EntityScores},
	DatasetGoals:         {EntityGoals},
	DatasetAssists:       {EntityAssists},
	DatasetLeagueTables:  {EntityLeagueTable},
	DatasetMatchStats:    {EntityMatchStats},
	DatasetOfficials:     {EntityOfficials},
	DatasetSamedayScores: {EntitySamedayScores},
	DatasetSamedayGoals:  {EntitySamedayGoals},
	DatasetCommentary:    {EntityCommentary},
	DatasetSubEvents:     {EntityLineups},
	DatasetSubs:          {EntityLineups},
	DatasetSubMins:       {EntityLineups},
	DatasetPlayerApps:    {EntityLineups},
	DatasetYellowCards:   {EntityLineups},
	DatasetRedCards:      {EntityLineups},
	DatasetClubGoals:     {EntityGoals},
	DatasetResults:       {EntityScores},
}

// Complete reports whether every extractor behind the named dataset
// succeeded for this date. Only complete datasets may replace stored rows.
func (md Matchday) Complete(name string) bool {
	for _, entity := range datasetSources[name] {
		if !md.Extracted(entity) {
			return false
		}
	}
	return true
}

// ToDataset renders rows with a fixed header.
func ToDataset[T any](name string, header []string, rows []T, record func(T) []string) dataset.Dataset {
	out := dataset.Dataset{
		Name:   name,
		Header: append([]string(nil), header...),
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, record(row))
	}
	return out
}

// Datasets renders every table extracted for one date.
func (md Matchday) Datasets() []dataset.Dataset {
	return []dataset.Dataset{
		ToDataset(DatasetLineups, LineupHeader, md.Lineups, LineupRecord),
		ToDataset(DatasetScores, ScoreHeader, md.Scores, ScoreRecord),
		ToDataset(DatasetGoals, GoalHeader, md.Goals, GoalRecord),
		ToDataset(DatasetAssists, AssistHeader, md.Assists, AssistRecord),
		ToDataset(DatasetLeagueTables, StandingHeader, md.LeagueTable, StandingRecord),
		MatchStatsDataset(md.MatchStats),
		ToDataset(DatasetOfficials, OfficialHeader, md.Officials, OfficialRecord),
		ToDataset(DatasetSamedayScores, SamedayScoreHeader, md.SamedayScores, SamedayScoreRecord),
		ToDataset(DatasetSamedayGoals, SamedayGoalHeader, md.SamedayGoals, SamedayGoalRecord),
		ToDataset(DatasetCommentary, CommentaryHeader, md.Commentary, CommentaryRecord),
		ToDataset(DatasetSubEvents, SubEventHeader, SubstitutionEvents(md.Lineups), SubEventRecord),
	}
}

// ClubDatasets renders the views derived for the tracked club.
func (md Matchday) ClubDatasets(club Club, resolver *roster.Resolver) []dataset.Dataset {
	yellow, red := Cards(md.Lineups, club.TeamName, resolver)
	results := make([]result.Match, 0, 1)
	if match, ok := Result(md, club); ok {
		results = append(results, match)
	}

	return []dataset.Dataset{
		ToDataset(DatasetSubs, SubstitutionHeader, SubstitutionPairs(md.Lineups, club.TeamName, resolver), SubstitutionRecord),
		ToDataset(DatasetSubMins, SubMinutesHeader, SubstituteMinutes(md.Lineups, club.TeamName, resolver), SubMinutesRecord),
		ToDataset(DatasetPlayerApps, AppearanceHeader, Appearances(md.Lineups, club.TeamName, resolver), AppearanceRecord),
		ToDataset(DatasetYellowCards, CardHeader, yellow, CardRecord),
		ToDataset(DatasetRedCards, CardHeader, red, CardRecord),
		ToDataset(DatasetClubGoals, ClubGoalHeader, ClubGoals(md.Goals, club.TeamName, resolver), ClubGoalRecord),
		ToDataset(DatasetResults, ResultHeader, results, ResultRecord),
	}
}

func LineupRecord(e lineup.Entry) []string {
	off := e.SubOff
	if off == nil {
		off = &lineup.SubLink{}
	}
	on := e.SubOn
	if on == nil {
		on = &lineup.SubLink{}
	}
	return []string{
		e.GameDate, e.TeamName, e.TeamVenue, e.Formation, e.TeamManager,
		e.Surname, e.Forename, e.PlayerName, e.ShortName, e.PlayerID,
		itoa(e.ShirtNo), e.Position, optInt(e.FormationPlace), e.Role, boolCell(e.IsCaptain),
		itoa(e.YellowCard), optInt(e.MinYC), optInt(e.MinYCInj), itoa(e.RedCard), optInt(e.MinRC), optInt(e.MinRCInj),
		off.Period, subMinute(e.SubOff), off.Reason, off.CounterpartID, off.CounterpartName,
		on.Period, subMinute(e.SubOn), on.Reason, on.CounterpartID, on.CounterpartName,
	}
}

func ScoreRecord(s score.Score) []string {
	return []string{s.GameDate, s.TeamName, s.TeamVenue, itoa(s.HTScore), itoa(s.FTScore), optInt(s.PensScore)}
}

func GoalRecord(g matchevent.Goal) []string {
	return []string{g.GameDate, g.TeamName, g.PlayerName, g.PlayerID, itoa(g.Minute), optInt(g.Injury), g.Type}
}

func SamedayGoalRecord(g matchevent.SamedayGoal) []string {
	return []string{g.GameDate, g.HomeTeam, g.AwayTeam, g.TeamName, g.PlayerName, g.PlayerID, itoa(g.Minute), optInt(g.Injury), g.Type}
}

func AssistRecord(a matchevent.Assist) []string {
	return []string{a.GameDate, a.TeamName, a.PlayerName, itoa(a.Minute), optInt(a.Injury)}
}

func StandingRecord(r standing.Row) []string {
	return []string{
		r.GameDate, r.LeagueName, r.CupDiv, itoa(r.Rank), r.TeamName,
		itoa(r.Played), itoa(r.Won), itoa(r.Drawn), itoa(r.Lost),
		itoa(r.GoalsFor), itoa(r.GoalsAgainst), itoa(r.GoalDifference), itoa(r.Points),
	}
}

func OfficialRecord(o matchstat.Official) []string {
	return []string{o.GameDate, o.Surname, o.Forename, o.Name, o.Role}
}

func SamedayScoreRecord(s score.SamedayScore) []string {
	return []string{s.GameDate, s.HomeTeam, s.AwayTeam, s.TeamName, itoa(s.HTScore), itoa(s.FTScore), optInt(s.PenScore)}
}

func CommentaryRecord(c matchevent.Commentary) []string {
	headline := ""
	if c.Headline != nil {
		headline = *c.Headline
	}
	return []string{c.GameDate, itoa(c.Minute), optInt(c.Injury), c.Text, headline}
}

func SubEventRecord(e lineup.SubstitutionEvent) []string {
	return []string{
		e.GameDate, e.TeamName, e.Period, itoa(e.Minute), e.Reason,
		e.LeavingID, e.LeavingName, optInt(e.LeavingShirt),
		e.EnteringID, e.EnteringName, optInt(e.EnteringShirt),
	}
}

func SubstitutionRecord(s lineup.Substitution) []string {
	return []string{s.GameDate, itoa(s.Minute), itoa(s.ShirtOn), s.PlayerOn, optInt(s.ShirtOff), s.PlayerOff}
}

func SubMinutesRecord(s lineup.SubstituteMinutes) []string {
	return []string{s.GameDate, s.PlayerName, optInt(s.MinOff), optInt(s.MinOn)}
}

func AppearanceRecord(a lineup.Appearance) []string {
	return []string{a.GameDate, a.PlayerName, itoa(a.ShirtNo), a.Role}
}

func CardRecord(c matchevent.Card) []string {
	return []string{c.GameDate, c.PlayerName, optInt(c.Minute), optInt(c.Injury)}
}

func ClubGoalRecord(g matchevent.ClubGoal) []string {
	return []string{g.GameDate, g.PlayerName, itoa(g.Minute), optInt(g.Injury), itoa(g.Penalty), itoa(g.OwnGoal)}
}

func ResultRecord(m result.Match) []string {
	return []string{
		m.Season, m.GameDate, m.Weekday, m.Opposition, m.Venue, m.Score, m.Outcome,
		itoa(m.GoalsFor), itoa(m.GoalsAgainst), itoa(m.GoalDiff), m.GameType, m.Competition,
		optInt(m.LeaguePos), optInt(m.Points), m.Manager, m.Referee, m.PenScore,
	}
}

// MatchStatsDataset uses the key columns followed by the sorted union of
// statistic names. A statistic missing for one side is an empty cell.
func MatchStatsDataset(rows []matchstat.TeamStats) dataset.Dataset {
	names := StatNames(rows)
	header := append(append([]string(nil), matchStatsKeyHeader...), names...)
	return ToDataset(DatasetMatchStats, header, rows, func(row matchstat.TeamStats) []string {
		record := make([]string, 0, len(header))
		record = append(record, row.GameDate, row.TeamName, row.TeamVenue)
		for _, name := range names {
			record = append(record, row.Stats[name])
		}
		return record
	})
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func subMinute(link *lineup.SubLink) string {
	if link == nil {
		return ""
	}
	return strconv.Itoa(link.Minute)
}

func boolCell(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
