package normalize

import (
	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/standing"
)

// LeagueTable returns the division containing team, taken from the first
// round whose participants list it. A team found in no round yields an empty
// table and no error.
func LeagueTable(doc bbcsport.TableDocument, team, gameDate string) ([]standing.Row, error) {
	if len(doc.Tournaments) == 0 {
		return nil, structuref("table has no tournaments")
	}
	tournament := doc.Tournaments[0]
	if len(tournament.Stages) == 0 {
		return nil, structuref("tournament %q has no stages", tournament.Name)
	}
	rounds := tournament.Stages[0].Rounds
	if rounds == nil {
		return nil, structuref("tournament %q has no rounds", tournament.Name)
	}

	round, ok := findTeamRound(rounds, team)
	if !ok {
		return []standing.Row{}, nil
	}

	cupDiv := ""
	if round.Name != nil {
		cupDiv = *round.Name
	}

	out := make([]standing.Row, 0, len(round.Participants))
	for _, p := range round.Participants {
		out = append(out, standing.Row{
			GameDate:       gameDate,
			LeagueName:     tournament.Name,
			CupDiv:         cupDiv,
			Rank:           int(p.Rank),
			TeamName:       p.Name,
			Played:         int(p.MatchesPlayed),
			Won:            int(p.Wins),
			Drawn:          int(p.Draws),
			Lost:           int(p.Losses),
			GoalsFor:       int(p.GoalsScoredFor),
			GoalsAgainst:   int(p.GoalsScoredAgainst),
			GoalDifference: int(p.GoalDifference),
			Points:         int(p.Points),
		})
	}
	return out, nil
}

func findTeamRound(rounds []bbcsport.Round, team string) (bbcsport.Round, bool) {
	for _, round := range rounds {
		for _, p := range round.Participants {
			if p.Name == team {
				return round, true
			}
		}
	}
	return bbcsport.Round{}, false
}
