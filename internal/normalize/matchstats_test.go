package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
)

const matchStatsFixture = `{
  "homeTeam": {
    "name": {"fullName": "Tranmere Rovers"},
    "alignment": "home",
    "stats": {
      "possession": {"total": 54.5},
      "shotsOnTarget": {"total": 6},
      "corners": {"total": 7, "firstHalf": 3}
    }
  },
  "awayTeam": {
    "name": {"fullName": "Crewe Alexandra"},
    "alignment": "away",
    "stats": {
      "possession": {"total": 45.5},
      "shotsOnTarget": {"total": 2},
      "fouls": {"total": "11"}
    }
  }
}`

func TestMatchStatsFlattenAndStripTotal(t *testing.T) {
	t.Parallel()

	rows, err := MatchStats(mustDecode[bbcsport.MatchStatsDocument](t, matchStatsFixture), testDate)
	if err != nil {
		t.Fatalf("MatchStats error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	home := rows[0]
	if home.TeamName != trackedTeam || home.TeamVenue != "home" {
		t.Fatalf("home = %+v", home)
	}
	if home.Stats["possession"] != "54.5" || home.Stats["shotsOnTarget"] != "6" {
		t.Fatalf("home stats = %v", home.Stats)
	}
	if home.Stats["corners"] != "7" || home.Stats["corners.firstHalf"] != "3" {
		t.Fatalf("nested stats = %v", home.Stats)
	}

	ds := MatchStatsDataset(rows)
	wantHeader := "game_date,team_name,team_venue,corners,corners.firstHalf,fouls,possession,shotsOnTarget"
	if got := strings.Join(ds.Header, ","); got != wantHeader {
		t.Fatalf("header = %s", got)
	}
	if got := strings.Join(ds.Rows[1], ","); got != testDate+",Crewe Alexandra,away,,,11,45.5,2" {
		t.Fatalf("away record = %s", got)
	}
}

func TestMatchStatsMissingStatsIsStructuralError(t *testing.T) {
	t.Parallel()

	broken := `{"homeTeam": {"name": {"fullName": "A"}, "alignment": "home"}, "awayTeam": {"name": {"fullName": "B"}, "alignment": "away", "stats": {}}}`
	if _, err := MatchStats(mustDecode[bbcsport.MatchStatsDocument](t, broken), testDate); !errors.Is(err, ErrStructure) {
		t.Fatalf("error = %v, want ErrStructure", err)
	}
}

func TestOfficialsPreferShortNames(t *testing.T) {
	t.Parallel()

	officials, err := Officials(mustDecode[bbcsport.LineupDocument](t, lineupFixture), testDate)
	if err != nil {
		t.Fatalf("Officials error: %v", err)
	}
	if len(officials) != 2 {
		t.Fatalf("officials = %d, want 2", len(officials))
	}
	if officials[0].Name != "Sam Barrott" || officials[0].Forename != "Sam" || officials[0].Role != "Referee" {
		t.Fatalf("referee = %+v", officials[0])
	}
	if officials[1].Name != "Paul Graham" {
		t.Fatalf("assistant = %+v", officials[1])
	}

	none, err := Officials(mustDecode[bbcsport.LineupDocument](t, `{}`), testDate)
	if err != nil || len(none) != 0 {
		t.Fatalf("no officials = %d rows, err %v", len(none), err)
	}
}
