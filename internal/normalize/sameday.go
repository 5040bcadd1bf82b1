package normalize

import (
	"strings"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchevent"
	"github.com/riskibarqy/matchday-scraper/internal/domain/score"
)

const statusCancelled = "cancelled"

// playedFixtures returns the same-day fixtures that were not cancelled.
func playedFixtures(doc bbcsport.SamedayDocument) ([]bbcsport.SamedayEvent, error) {
	if doc.Events == nil {
		return nil, structuref("sameday fixtures have no events")
	}

	out := make([]bbcsport.SamedayEvent, 0, len(doc.Events))
	for i, event := range doc.Events {
		if strings.EqualFold(strings.TrimSpace(event.Status), statusCancelled) {
			continue
		}
		if event.Home == nil || event.Away == nil {
			return nil, structuref("sameday fixture %d is missing a side", i)
		}
		if err := checkStructure(event, "sameday fixture "+itoa(i)); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}

// SamedayScores emits one score row per side of every fixture played on the
// match date, tagged with the fixture's home and away teams.
func SamedayScores(doc bbcsport.SamedayDocument, gameDate string) ([]score.SamedayScore, error) {
	events, err := playedFixtures(doc)
	if err != nil {
		return nil, err
	}

	out := make([]score.SamedayScore, 0, len(events)*2)
	for _, event := range events {
		for _, team := range []*bbcsport.EventTeam{event.Home, event.Away} {
			ht, ft, pens, err := scoreTriple(team.RunningScores)
			if err != nil {
				return nil, structuref("sameday fixture %s v %s, %s: %v",
					event.Home.FullName, event.Away.FullName, team.FullName, err)
			}
			out = append(out, score.SamedayScore{
				GameDate: gameDate,
				HomeTeam: event.Home.FullName,
				AwayTeam: event.Away.FullName,
				TeamName: team.FullName,
				HTScore:  ht,
				FTScore:  ft,
				PenScore: pens,
			})
		}
	}
	return out, nil
}

// SamedayGoals lists the goals of the other fixtures played on the match date.
func SamedayGoals(doc bbcsport.SamedayDocument, gameDate string) ([]matchevent.SamedayGoal, error) {
	events, err := playedFixtures(doc)
	if err != nil {
		return nil, err
	}

	out := make([]matchevent.SamedayGoal, 0)
	for _, event := range events {
		for _, team := range []*bbcsport.EventTeam{event.Home, event.Away} {
			goals, err := teamGoals(team, gameDate)
			if err != nil {
				return nil, err
			}
			for _, goal := range goals {
				out = append(out, matchevent.SamedayGoal{
					Goal:     goal,
					HomeTeam: event.Home.FullName,
					AwayTeam: event.Away.FullName,
				})
			}
		}
	}
	return out, nil
}
