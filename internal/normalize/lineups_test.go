package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
)

const testDate = "2024-10-05"

func TestLineupsRowCountAndOrder(t *testing.T) {
	t.Parallel()

	doc := mustDecode[bbcsport.LineupDocument](t, lineupFixture)
	entries, err := Lineups(doc, testDate)
	if err != nil {
		t.Fatalf("Lineups error: %v", err)
	}

	want := len(doc.HomeTeam.Players.Starters) + len(doc.HomeTeam.Players.Substitutes) +
		len(doc.AwayTeam.Players.Starters) + len(doc.AwayTeam.Players.Substitutes)
	if len(entries) != want {
		t.Fatalf("rows = %d, want %d", len(entries), want)
	}

	wantOrder := []struct {
		venue string
		shirt int
	}{
		{lineup.VenueHome, 1}, {lineup.VenueHome, 4}, {lineup.VenueHome, 10},
		{lineup.VenueHome, 18}, {lineup.VenueHome, 21},
		{lineup.VenueAway, 1}, {lineup.VenueAway, 13},
	}
	for i, w := range wantOrder {
		if entries[i].TeamVenue != w.venue || entries[i].ShirtNo != w.shirt {
			t.Fatalf("row %d = %s #%d, want %s #%d", i, entries[i].TeamVenue, entries[i].ShirtNo, w.venue, w.shirt)
		}
	}
}

func TestLineupsTeamMetadataAndPlayerFields(t *testing.T) {
	t.Parallel()

	doc := mustDecode[bbcsport.LineupDocument](t, lineupFixture)
	entries, err := Lineups(doc, testDate)
	if err != nil {
		t.Fatalf("Lineups error: %v", err)
	}

	jennings := findEntry(t, entries, "p110")
	if jennings.Formation != "4-4-2" {
		t.Fatalf("formation = %q, want spaces removed", jennings.Formation)
	}
	if jennings.TeamManager != "Andy Crosby" || jennings.TeamName != "Tranmere Rovers" {
		t.Fatalf("team metadata = %q / %q", jennings.TeamName, jennings.TeamManager)
	}
	if jennings.PlayerName != "Connor Jennings" || jennings.ShortName != "C. Jennings" {
		t.Fatalf("names = %q / %q", jennings.PlayerName, jennings.ShortName)
	}
	if !jennings.IsCaptain || !jennings.IsStarter() {
		t.Fatalf("captain/starter flags = %v/%v", jennings.IsCaptain, jennings.IsStarter())
	}
	if jennings.FormationPlace == nil || *jennings.FormationPlace != 10 {
		t.Fatalf("formation place = %v, want 10", jennings.FormationPlace)
	}

	oconnor := findEntry(t, entries, "p104")
	if oconnor.FormationPlace != nil {
		t.Fatalf("formation place = %d, want nil", *oconnor.FormationPlace)
	}
	if oconnor.YellowCard != 0 || oconnor.MinYC != nil || oconnor.RedCard != 0 || oconnor.MinRC != nil {
		t.Fatalf("uncarded player has card fields: %+v", oconnor)
	}
}

func TestLineupsLastYellowCardWins(t *testing.T) {
	t.Parallel()

	doc := mustDecode[bbcsport.LineupDocument](t, lineupFixture)
	entries, err := Lineups(doc, testDate)
	if err != nil {
		t.Fatalf("Lineups error: %v", err)
	}

	jennings := findEntry(t, entries, "p110")
	if jennings.YellowCard != 1 {
		t.Fatalf("yellow flag = %d, want 1", jennings.YellowCard)
	}
	if jennings.MinYC == nil || *jennings.MinYC != 90 {
		t.Fatalf("yellow minute = %v, want 90 from the last card", jennings.MinYC)
	}
	if jennings.MinYCInj == nil || *jennings.MinYCInj != 3 {
		t.Fatalf("yellow injury = %v, want 3", jennings.MinYCInj)
	}

	keeper := findEntry(t, entries, "p201")
	if keeper.RedCard != 1 || keeper.MinRC == nil || *keeper.MinRC != 45 || keeper.MinRCInj == nil || *keeper.MinRCInj != 2 {
		t.Fatalf("red card fields = %+v", keeper)
	}
}

func TestLineupsKeepSubstitutionDirectionsApart(t *testing.T) {
	t.Parallel()

	doc := mustDecode[bbcsport.LineupDocument](t, lineupFixture)
	entries, err := Lineups(doc, testDate)
	if err != nil {
		t.Fatalf("Lineups error: %v", err)
	}

	jennings := findEntry(t, entries, "p110")
	if jennings.SubOn != nil {
		t.Fatalf("starter has SubOn: %+v", jennings.SubOn)
	}
	if jennings.SubOff == nil || jennings.SubOff.Minute != 93 || jennings.SubOff.CounterpartID != "p118" {
		t.Fatalf("SubOff = %+v", jennings.SubOff)
	}

	hawkes := findEntry(t, entries, "p118")
	if hawkes.SubOff != nil {
		t.Fatalf("substitute has SubOff: %+v", hawkes.SubOff)
	}
	if hawkes.SubOn == nil || hawkes.SubOn.Minute != 93 || hawkes.SubOn.CounterpartName != "C. Jennings" {
		t.Fatalf("SubOn = %+v", hawkes.SubOn)
	}

	record := LineupRecord(hawkes)
	column := func(name string) string {
		for i, h := range LineupHeader {
			if h == name {
				return record[i]
			}
		}
		t.Fatalf("column %s not in header", name)
		return ""
	}
	if column("sub_off_min") != "" || column("sub_on_min") != "93" || column("sub_replaced_id") != "p110" {
		t.Fatalf("record sub columns = off %q on %q replaced %q", column("sub_off_min"), column("sub_on_min"), column("sub_replaced_id"))
	}
}

func TestLineupsMissingTeamKeyIsStructuralError(t *testing.T) {
	t.Parallel()

	broken := strings.Replace(lineupFixture, `"formation": {"value": "3-5-2"},`, "", 1)
	doc := mustDecode[bbcsport.LineupDocument](t, broken)

	entries, err := Lineups(doc, testDate)
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("error = %v, want ErrStructure", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rows = %d, want none", len(entries))
	}

	missingSide := bbcsport.LineupDocument{HomeTeam: doc.HomeTeam}
	if _, err := Lineups(missingSide, testDate); !errors.Is(err, ErrStructure) {
		t.Fatalf("missing awayTeam error = %v, want ErrStructure", err)
	}
}

func TestLineupsAcceptBlankFormation(t *testing.T) {
	t.Parallel()

	blank := strings.Replace(lineupFixture, `"formation": {"value": "3-5-2"}`, `"formation": {"value": ""}`, 1)
	entries, err := Lineups(mustDecode[bbcsport.LineupDocument](t, blank), testDate)
	if err != nil {
		t.Fatalf("Lineups error: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("rows = %d, want 7", len(entries))
	}
	last := entries[len(entries)-1]
	if last.TeamVenue != "away" || last.Formation != "" {
		t.Fatalf("away entry = %s formation %q, want blank formation", last.TeamVenue, last.Formation)
	}
}

func TestLineupsMalformedCardMinute(t *testing.T) {
	t.Parallel()

	broken := strings.Replace(lineupFixture, `"value": "12'"`, `"value": "HT"`, 1)
	doc := mustDecode[bbcsport.LineupDocument](t, broken)

	if _, err := Lineups(doc, testDate); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("error = %v, want ErrMalformedToken", err)
	}
}

func findEntry(t *testing.T, entries []lineup.Entry, playerID string) lineup.Entry {
	t.Helper()
	for _, entry := range entries {
		if entry.PlayerID == playerID {
			return entry
		}
	}
	t.Fatalf("player %s not found", playerID)
	return lineup.Entry{}
}
