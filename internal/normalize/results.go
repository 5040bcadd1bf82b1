package normalize

import (
	"strconv"
	"time"

	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
	"github.com/riskibarqy/matchday-scraper/internal/domain/result"
	"github.com/riskibarqy/matchday-scraper/internal/domain/score"
)

const (
	dateLayout  = "2006-01-02"
	roleReferee = "Referee"
)

// Club describes the tracked club for the derived views.
type Club struct {
	TeamName          string
	Season            string
	LeagueCompetition string
}

// Result summarizes the tracked club's match. It reports false when the
// scores of both sides are not available.
func Result(md Matchday, club Club) (result.Match, bool) {
	var own, opponent *score.Score
	for i := range md.Scores {
		if md.Scores[i].TeamName == club.TeamName {
			own = &md.Scores[i]
		} else {
			opponent = &md.Scores[i]
		}
	}
	if own == nil || opponent == nil {
		return result.Match{}, false
	}

	match := result.Match{
		Season:       club.Season,
		GameDate:     md.GameDate,
		Opposition:   opponent.TeamName,
		Venue:        result.VenueAway,
		GoalsFor:     own.FTScore,
		GoalsAgainst: opponent.FTScore,
		GoalDiff:     own.FTScore - opponent.FTScore,
		Score:        strconv.Itoa(own.FTScore) + "-" + strconv.Itoa(opponent.FTScore),
		Competition:  md.Competition,
		GameType:     result.GameTypeCup,
	}
	if own.TeamVenue == lineup.VenueHome {
		match.Venue = result.VenueHome
	}
	if parsed, err := time.Parse(dateLayout, md.GameDate); err == nil {
		match.Weekday = parsed.Weekday().String()
	}

	switch {
	case match.GoalDiff > 0:
		match.Outcome = result.OutcomeWin
	case match.GoalDiff < 0:
		match.Outcome = result.OutcomeLoss
	default:
		match.Outcome = result.OutcomeDraw
	}

	if own.PensScore != nil && opponent.PensScore != nil {
		match.PenScore = strconv.Itoa(*own.PensScore) + "-" + strconv.Itoa(*opponent.PensScore)
	}

	if club.LeagueCompetition != "" && md.Competition == club.LeagueCompetition {
		match.GameType = result.GameTypeLeague
		for _, row := range md.LeagueTable {
			if row.TeamName != club.TeamName {
				continue
			}
			rank, points := row.Rank, row.Points
			match.LeaguePos = &rank
			match.Points = &points
			break
		}
	}

	for _, entry := range md.Lineups {
		if entry.TeamName == club.TeamName {
			match.Manager = entry.TeamManager
			break
		}
	}
	for _, official := range md.Officials {
		if official.Role == roleReferee {
			match.Referee = official.Name
			break
		}
	}

	return match, true
}
