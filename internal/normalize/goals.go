package normalize

import (
	"strings"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchevent"
	"github.com/riskibarqy/matchday-scraper/internal/domain/roster"
	"github.com/riskibarqy/matchday-scraper/internal/domain/score"
)

const (
	actionTypeGoal   = "goal"
	assistsGroupName = "Assists"
)

type eventSide struct {
	venue string
	team  *bbcsport.EventTeam
}

func matchSides(doc bbcsport.MatchInfoDocument) ([]eventSide, error) {
	if err := checkStructure(doc, "match info"); err != nil {
		return nil, err
	}
	return []eventSide{
		{venue: lineup.VenueHome, team: doc.SportDataEvent.Home},
		{venue: lineup.VenueAway, team: doc.SportDataEvent.Away},
	}, nil
}

// Goals lists every goal of a match. A player with several goals appears
// once per goal.
func Goals(doc bbcsport.MatchInfoDocument, gameDate string) ([]matchevent.Goal, error) {
	sides, err := matchSides(doc)
	if err != nil {
		return nil, err
	}

	out := make([]matchevent.Goal, 0)
	for _, side := range sides {
		goals, err := teamGoals(side.team, gameDate)
		if err != nil {
			return nil, err
		}
		out = append(out, goals...)
	}
	return out, nil
}

func teamGoals(team *bbcsport.EventTeam, gameDate string) ([]matchevent.Goal, error) {
	out := make([]matchevent.Goal, 0)
	for _, action := range team.Actions {
		if action.ActionType != actionTypeGoal {
			continue
		}
		for _, event := range action.Actions {
			if event.TimeLabel == nil {
				return nil, structuref("goal by %q for %s has no timeLabel", action.PlayerName, team.FullName)
			}
			minute, injury, err := SplitMinuteToken(event.TimeLabel.Value)
			if err != nil {
				return nil, err
			}
			out = append(out, matchevent.Goal{
				GameDate:   gameDate,
				TeamName:   team.FullName,
				PlayerName: action.PlayerName,
				PlayerID:   ExtractEntityID(action.PlayerURN),
				Minute:     minute,
				Injury:     injury,
				Type:       goalType(event.Type),
			})
		}
	}
	return out, nil
}

func goalType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "penalty", "penalty goal":
		return matchevent.GoalPenalty
	case "own goal":
		return matchevent.GoalOwnGoal
	default:
		return matchevent.GoalNormal
	}
}

// Scores returns the half-time, full-time and shootout score of each side.
func Scores(doc bbcsport.MatchInfoDocument, gameDate string) ([]score.Score, error) {
	sides, err := matchSides(doc)
	if err != nil {
		return nil, err
	}

	out := make([]score.Score, 0, len(sides))
	for _, side := range sides {
		ht, ft, pens, err := scoreTriple(side.team.RunningScores)
		if err != nil {
			return nil, structuref("%s %s: %v", side.venue, side.team.FullName, err)
		}
		out = append(out, score.Score{
			GameDate:  gameDate,
			TeamName:  side.team.FullName,
			TeamVenue: side.venue,
			HTScore:   ht,
			FTScore:   ft,
			PensScore: pens,
		})
	}
	return out, nil
}

// Assists parses the "Assists" group of the match info document. Each token
// looks like "Name (12', 45+2')" and yields one row per minute.
func Assists(doc bbcsport.MatchInfoDocument, gameDate string) ([]matchevent.Assist, error) {
	if _, err := matchSides(doc); err != nil {
		return nil, err
	}

	event := doc.SportDataEvent
	out := make([]matchevent.Assist, 0)
	for _, group := range event.GroupedActions {
		if group.GroupName == nil || group.GroupName.FullName != assistsGroupName {
			continue
		}
		sides := []struct {
			team   string
			tokens []string
		}{
			{team: event.Home.FullName, tokens: group.HomeTeamActions},
			{team: event.Away.FullName, tokens: group.AwayTeamActions},
		}
		for _, side := range sides {
			for _, token := range side.tokens {
				name, minutes, err := ParseAssistToken(token)
				if err != nil {
					return nil, err
				}
				for _, m := range minutes {
					out = append(out, matchevent.Assist{
						GameDate:   gameDate,
						TeamName:   side.team,
						PlayerName: name,
						Minute:     m.minute,
						Injury:     m.injury,
					})
				}
			}
		}
	}
	return out, nil
}

// ClubGoals keeps the tracked club's goals, resolves scorers to roster names
// and replaces own-goal scorers with the OG sentinel.
func ClubGoals(goals []matchevent.Goal, team string, resolver *roster.Resolver) []matchevent.ClubGoal {
	out := make([]matchevent.ClubGoal, 0, len(goals))
	for _, goal := range goals {
		if goal.TeamName != team {
			continue
		}
		row := matchevent.ClubGoal{
			GameDate: goal.GameDate,
			Minute:   goal.Minute,
			Injury:   goal.Injury,
		}
		switch goal.Type {
		case matchevent.GoalOwnGoal:
			row.OwnGoal = 1
			row.PlayerName = matchevent.OwnGoalScorer
		case matchevent.GoalPenalty:
			row.Penalty = 1
			row.PlayerName, _ = resolver.NameByShortName(goal.PlayerName)
		default:
			row.PlayerName, _ = resolver.NameByShortName(goal.PlayerName)
		}
		out = append(out, row)
	}
	return out
}
