package normalize

import (
	"errors"
	"testing"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
)

const tableFixture = `{
  "tournaments": [
    {
      "name": "League Two",
      "stages": [
        {
          "rounds": [
            {
              "name": "Group A",
              "participants": [
                {"rank": 1, "name": "Everton U21", "matchesPlayed": 1, "wins": 1, "draws": 0, "losses": 0, "goalsScoredFor": 2, "goalsScoredAgainst": 0, "goalDifference": 2, "points": 3}
              ]
            },
            {
              "name": "Group B",
              "participants": [
                {"rank": 1, "name": "Wigan Athletic", "matchesPlayed": 1, "wins": 1, "draws": 0, "losses": 0, "goalsScoredFor": 1, "goalsScoredAgainst": 0, "goalDifference": 1, "points": 3}
              ]
            },
            {
              "name": "League Two",
              "participants": [
                {"rank": "1", "name": "Walsall", "matchesPlayed": "10", "wins": "7", "draws": "2", "losses": "1", "goalsScoredFor": "20", "goalsScoredAgainst": "9", "goalDifference": "11", "points": "23"},
                {"rank": 14, "name": "Tranmere Rovers", "matchesPlayed": 10, "wins": 3, "draws": 3, "losses": 4, "goalsScoredFor": 11, "goalsScoredAgainst": 14, "goalDifference": -3, "points": 12},
                {"rank": 24, "name": "Carlisle United", "matchesPlayed": 10, "wins": 1, "draws": 2, "losses": 7, "goalsScoredFor": 6, "goalsScoredAgainst": 19, "goalDifference": -13, "points": 5}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestLeagueTableUsesFirstRoundContainingTeam(t *testing.T) {
	t.Parallel()

	rows, err := LeagueTable(mustDecode[bbcsport.TableDocument](t, tableFixture), trackedTeam, testDate)
	if err != nil {
		t.Fatalf("LeagueTable error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want the 3 participants of the third round", len(rows))
	}
	for _, row := range rows {
		if row.CupDiv != "League Two" || row.LeagueName != "League Two" || row.GameDate != testDate {
			t.Fatalf("row labels = %+v", row)
		}
	}

	if rows[0].TeamName != "Walsall" || rows[0].Points != 23 || rows[0].Played != 10 {
		t.Fatalf("first row = %+v", rows[0])
	}
	tranmere := rows[1]
	if tranmere.Rank != 14 || tranmere.GoalDifference != -3 || tranmere.GoalsFor != 11 || tranmere.GoalsAgainst != 14 {
		t.Fatalf("tracked team row = %+v", tranmere)
	}
}

func TestLeagueTableTeamAbsentIsEmptyNotError(t *testing.T) {
	t.Parallel()

	rows, err := LeagueTable(mustDecode[bbcsport.TableDocument](t, tableFixture), "Dagenham & Redbridge", testDate)
	if err != nil {
		t.Fatalf("LeagueTable error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want none", len(rows))
	}
}

func TestLeagueTableMissingHierarchyIsStructuralError(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{
		"no tournaments": `{}`,
		"no stages":      `{"tournaments": [{"name": "League Two", "stages": []}]}`,
		"no rounds":      `{"tournaments": [{"name": "League Two", "stages": [{}]}]}`,
	} {
		if _, err := LeagueTable(mustDecode[bbcsport.TableDocument](t, raw), trackedTeam, testDate); !errors.Is(err, ErrStructure) {
			t.Fatalf("%s: error = %v, want ErrStructure", name, err)
		}
	}
}
