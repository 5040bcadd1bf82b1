package normalize

import (
	"testing"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
	"github.com/riskibarqy/matchday-scraper/internal/domain/roster"
)

const trackedTeam = "Tranmere Rovers"

func fixtureEntries(t *testing.T) []lineup.Entry {
	t.Helper()
	entries, err := Lineups(mustDecode[bbcsport.LineupDocument](t, lineupFixture), testDate)
	if err != nil {
		t.Fatalf("Lineups error: %v", err)
	}
	return entries
}

func fixtureResolver(entries []lineup.Entry) *roster.Resolver {
	squad := []roster.SquadNumber{
		{Season: "2024/25", SquadNo: 1, PlayerName: "Luke McGee"},
		{Season: "2024/25", SquadNo: 4, PlayerName: "Lee O'Connor"},
		{Season: "2024/25", SquadNo: 10, PlayerName: "Connor Jennings"},
		{Season: "2024/25", SquadNo: 18, PlayerName: "Josh Hawkes"},
	}
	return roster.NewResolver("2024/25", squad, FeedPlayers(entries, trackedTeam))
}

func TestSubstitutionEventsReconcileBothSides(t *testing.T) {
	t.Parallel()

	events := SubstitutionEvents(fixtureEntries(t))
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1 for one substitution reported by both players", len(events))
	}

	event := events[0]
	if event.LeavingID != "p110" || event.EnteringID != "p118" {
		t.Fatalf("event ids = %s -> %s", event.LeavingID, event.EnteringID)
	}
	if event.LeavingName != "Connor Jennings" || event.EnteringName != "Josh Hawkes" {
		t.Fatalf("event names = %q -> %q", event.LeavingName, event.EnteringName)
	}
	if event.LeavingShirt == nil || *event.LeavingShirt != 10 || event.EnteringShirt == nil || *event.EnteringShirt != 18 {
		t.Fatalf("event shirts = %v -> %v", event.LeavingShirt, event.EnteringShirt)
	}
	if event.Minute != 93 || event.Reason != "Tactical" || event.Period != "2" {
		t.Fatalf("event detail = %+v", event)
	}
}

func TestSubstitutionEventsFromOneSideOnly(t *testing.T) {
	t.Parallel()

	entries := []lineup.Entry{
		{
			GameDate: testDate, TeamName: trackedTeam, PlayerID: "p7", PlayerName: "Kieron Morris", ShirtNo: 7,
			SubOff: &lineup.SubLink{Minute: 70, CounterpartID: "p99", CounterpartName: "R. Unknown"},
		},
	}

	events := SubstitutionEvents(entries)
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].EnteringName != "R. Unknown" || events[0].EnteringShirt != nil {
		t.Fatalf("unmatched counterpart = %q / %v", events[0].EnteringName, events[0].EnteringShirt)
	}
}

func TestSubstitutionPairsResolveBothPlayers(t *testing.T) {
	t.Parallel()

	entries := fixtureEntries(t)
	pairs := SubstitutionPairs(entries, trackedTeam, fixtureResolver(entries))
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}

	pair := pairs[0]
	if pair.ShirtOn != 18 || pair.PlayerOn != "Josh Hawkes" {
		t.Fatalf("incoming = #%d %q", pair.ShirtOn, pair.PlayerOn)
	}
	if pair.ShirtOff == nil || *pair.ShirtOff != 10 || pair.PlayerOff != "Connor Jennings" {
		t.Fatalf("outgoing = %v %q", pair.ShirtOff, pair.PlayerOff)
	}
}

func TestSubstitutionPairsFallBackToShortName(t *testing.T) {
	t.Parallel()

	entries := []lineup.Entry{
		{
			GameDate: testDate, TeamName: trackedTeam, PlayerID: "p4", ShirtNo: 4, Role: lineup.RoleStarter,
			SubOff: &lineup.SubLink{Minute: 60, CounterpartID: "p-missing", CounterpartName: "J. Hawkes"},
		},
	}
	resolver := roster.NewResolver("", []roster.SquadNumber{
		{SquadNo: 4, PlayerName: "Lee O'Connor"},
		{SquadNo: 18, PlayerName: "Josh Hawkes"},
	}, []roster.FeedPlayer{{ShirtNo: 18, ShortName: "J. Hawkes"}})

	pairs := SubstitutionPairs(entries, trackedTeam, resolver)
	if len(pairs) != 1 || pairs[0].ShirtOn != 18 || pairs[0].PlayerOn != "Josh Hawkes" || pairs[0].PlayerOff != "Lee O'Connor" {
		t.Fatalf("pairs = %+v", pairs)
	}

	// Without a short-name match the incoming shirt is unknown.
	if pairs := SubstitutionPairs(entries, trackedTeam, nil); len(pairs) != 0 {
		t.Fatalf("pairs without resolver = %+v, want none", pairs)
	}
}

func TestSubstituteMinutesClipAtNinety(t *testing.T) {
	t.Parallel()

	entries := fixtureEntries(t)
	minutes := SubstituteMinutes(entries, trackedTeam, fixtureResolver(entries))
	if len(minutes) != 2 {
		t.Fatalf("rows = %d, want 2", len(minutes))
	}
	for _, row := range minutes {
		switch row.PlayerName {
		case "Connor Jennings":
			if row.MinOff == nil || *row.MinOff != 90 || row.MinOn != nil {
				t.Fatalf("Jennings minutes = %v / %v", row.MinOff, row.MinOn)
			}
		case "Josh Hawkes":
			if row.MinOn == nil || *row.MinOn != 90 || row.MinOff != nil {
				t.Fatalf("Hawkes minutes = %v / %v", row.MinOff, row.MinOn)
			}
		default:
			t.Fatalf("unexpected player %q", row.PlayerName)
		}
	}

	jennings := findEntry(t, entries, "p110")
	if jennings.SubOff.Minute != 93 {
		t.Fatalf("raw minute changed to %d", jennings.SubOff.Minute)
	}
}

func TestAppearancesAndCards(t *testing.T) {
	t.Parallel()

	entries := fixtureEntries(t)
	resolver := fixtureResolver(entries)

	apps := Appearances(entries, trackedTeam, resolver)
	if len(apps) != 4 {
		t.Fatalf("appearances = %d, want 3 starters and 1 used substitute", len(apps))
	}
	last := apps[len(apps)-1]
	if last.Role != lineup.AppearanceSub || last.ShirtNo != 18 || last.PlayerName != "Josh Hawkes" {
		t.Fatalf("last appearance = %+v", last)
	}

	yellow, red := Cards(entries, trackedTeam, resolver)
	if len(yellow) != 1 || yellow[0].PlayerName != "Connor Jennings" || *yellow[0].Minute != 90 {
		t.Fatalf("yellow cards = %+v", yellow)
	}
	if len(red) != 0 {
		t.Fatalf("red cards = %+v, the red card belongs to the opponent", red)
	}
}

func TestResolverMissLeavesNameEmpty(t *testing.T) {
	t.Parallel()

	entries := fixtureEntries(t)
	apps := Appearances(entries, trackedTeam, roster.NewResolver("2024/25", nil, nil))
	for _, app := range apps {
		if app.PlayerName != "" {
			t.Fatalf("unresolved appearance has name %q", app.PlayerName)
		}
	}
}
