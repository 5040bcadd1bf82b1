package normalize

import (
	"sort"

	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchevent"
	"github.com/riskibarqy/matchday-scraper/internal/domain/roster"
)

const maxRegularMinute = 90

type playerKey struct {
	date string
	team string
	id   string
}

type substitutionKey struct {
	date     string
	team     string
	leaving  string
	entering string
}

// SubstitutionEvents reconciles the substitutedOff side of the leaving player
// and the substitutedOn side of the entering player into a single event per
// pair. Either side alone is enough to produce the event.
func SubstitutionEvents(entries []lineup.Entry) []lineup.SubstitutionEvent {
	index := make(map[playerKey]lineup.Entry, len(entries))
	for _, entry := range entries {
		index[playerKey{date: entry.GameDate, team: entry.TeamName, id: entry.PlayerID}] = entry
	}

	counterpart := func(entry lineup.Entry, link *lineup.SubLink) (string, *int) {
		other, ok := index[playerKey{date: entry.GameDate, team: entry.TeamName, id: link.CounterpartID}]
		if !ok {
			return link.CounterpartName, nil
		}
		shirt := other.ShirtNo
		return other.PlayerName, &shirt
	}

	events := make(map[substitutionKey]*lineup.SubstitutionEvent)
	order := make([]substitutionKey, 0)
	record := func(event lineup.SubstitutionEvent) {
		key := substitutionKey{
			date:     event.GameDate,
			team:     event.TeamName,
			leaving:  event.LeavingID,
			entering: event.EnteringID,
		}
		if existing, ok := events[key]; ok {
			fillSubstitution(existing, event)
			return
		}
		events[key] = &event
		order = append(order, key)
	}

	for _, entry := range entries {
		shirt := entry.ShirtNo
		if link := entry.SubOff; link != nil {
			name, otherShirt := counterpart(entry, link)
			record(lineup.SubstitutionEvent{
				GameDate:      entry.GameDate,
				TeamName:      entry.TeamName,
				Period:        link.Period,
				Minute:        link.Minute,
				Reason:        link.Reason,
				LeavingID:     entry.PlayerID,
				LeavingName:   entry.PlayerName,
				LeavingShirt:  &shirt,
				EnteringID:    link.CounterpartID,
				EnteringName:  name,
				EnteringShirt: otherShirt,
			})
		}
		if link := entry.SubOn; link != nil {
			name, otherShirt := counterpart(entry, link)
			record(lineup.SubstitutionEvent{
				GameDate:      entry.GameDate,
				TeamName:      entry.TeamName,
				Period:        link.Period,
				Minute:        link.Minute,
				Reason:        link.Reason,
				LeavingID:     link.CounterpartID,
				LeavingName:   name,
				LeavingShirt:  otherShirt,
				EnteringID:    entry.PlayerID,
				EnteringName:  entry.PlayerName,
				EnteringShirt: &shirt,
			})
		}
	}

	out := make([]lineup.SubstitutionEvent, 0, len(order))
	for _, key := range order {
		out = append(out, *events[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GameDate != b.GameDate {
			return a.GameDate < b.GameDate
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.Minute < b.Minute
	})
	return out
}

func fillSubstitution(dst *lineup.SubstitutionEvent, src lineup.SubstitutionEvent) {
	if dst.Period == "" {
		dst.Period = src.Period
	}
	if dst.Reason == "" {
		dst.Reason = src.Reason
	}
	if dst.LeavingShirt == nil {
		dst.LeavingShirt = src.LeavingShirt
	}
	if dst.EnteringShirt == nil {
		dst.EnteringShirt = src.EnteringShirt
	}
	if dst.LeavingName == "" {
		dst.LeavingName = src.LeavingName
	}
	if dst.EnteringName == "" {
		dst.EnteringName = src.EnteringName
	}
}

// SubstitutionPairs resolves the tracked club's substitutions to roster names.
// A side whose shirt is unknown in the lineup is looked up by the feed short
// name; events whose incoming shirt cannot be found are dropped.
func SubstitutionPairs(entries []lineup.Entry, team string, resolver *roster.Resolver) []lineup.Substitution {
	events := SubstitutionEvents(filterTeam(entries, team))

	out := make([]lineup.Substitution, 0, len(events))
	seen := make(map[string]struct{}, len(events))
	for _, event := range events {
		shirtOn, ok := shirtFor(event.EnteringShirt, event.EnteringName, resolver)
		if !ok {
			continue
		}
		key := event.GameDate + "#" + itoa(shirtOn)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		row := lineup.Substitution{
			GameDate: event.GameDate,
			Minute:   event.Minute,
			ShirtOn:  shirtOn,
		}
		row.PlayerOn, _ = resolver.NameByShirt(shirtOn)
		if shirtOff, ok := shirtFor(event.LeavingShirt, event.LeavingName, resolver); ok {
			row.ShirtOff = &shirtOff
			row.PlayerOff, _ = resolver.NameByShirt(shirtOff)
		}
		out = append(out, row)
	}
	return out
}

func shirtFor(known *int, shortName string, resolver *roster.Resolver) (int, bool) {
	if known != nil {
		return *known, true
	}
	return resolver.ShirtByShortName(shortName)
}

// SubstituteMinutes lists when the tracked club's players came on or went off.
// Minutes beyond 90 collapse to 90 here only.
func SubstituteMinutes(entries []lineup.Entry, team string, resolver *roster.Resolver) []lineup.SubstituteMinutes {
	out := make([]lineup.SubstituteMinutes, 0)
	for _, entry := range filterTeam(entries, team) {
		if entry.SubOn == nil && entry.SubOff == nil {
			continue
		}
		row := lineup.SubstituteMinutes{GameDate: entry.GameDate}
		row.PlayerName, _ = resolver.NameByShirt(entry.ShirtNo)
		if entry.SubOn != nil {
			row.MinOn = clipMinute(entry.SubOn.Minute)
		}
		if entry.SubOff != nil {
			row.MinOff = clipMinute(entry.SubOff.Minute)
		}
		out = append(out, row)
	}
	return out
}

func clipMinute(minute int) *int {
	if minute > maxRegularMinute {
		minute = maxRegularMinute
	}
	return &minute
}

// Appearances lists starters and the substitutes that came on.
func Appearances(entries []lineup.Entry, team string, resolver *roster.Resolver) []lineup.Appearance {
	out := make([]lineup.Appearance, 0, 16)
	for _, entry := range filterTeam(entries, team) {
		role := ""
		switch {
		case entry.IsStarter():
			role = lineup.AppearanceStarter
		case entry.SubOn != nil:
			role = lineup.AppearanceSub
		default:
			continue
		}
		name, _ := resolver.NameByShirt(entry.ShirtNo)
		out = append(out, lineup.Appearance{
			GameDate:   entry.GameDate,
			PlayerName: name,
			ShirtNo:    entry.ShirtNo,
			Role:       role,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GameDate != b.GameDate {
			return a.GameDate < b.GameDate
		}
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		return a.ShirtNo < b.ShirtNo
	})
	return out
}

// Cards returns the yellow and red cards shown to the tracked club.
func Cards(entries []lineup.Entry, team string, resolver *roster.Resolver) ([]matchevent.Card, []matchevent.Card) {
	yellow := make([]matchevent.Card, 0)
	red := make([]matchevent.Card, 0)
	for _, entry := range filterTeam(entries, team) {
		name, _ := resolver.NameByShirt(entry.ShirtNo)
		if entry.YellowCard == 1 {
			yellow = append(yellow, matchevent.Card{
				GameDate:   entry.GameDate,
				PlayerName: name,
				Color:      matchevent.CardYellow,
				Minute:     entry.MinYC,
				Injury:     entry.MinYCInj,
			})
		}
		if entry.RedCard == 1 {
			red = append(red, matchevent.Card{
				GameDate:   entry.GameDate,
				PlayerName: name,
				Color:      matchevent.CardRed,
				Minute:     entry.MinRC,
				Injury:     entry.MinRCInj,
			})
		}
	}
	return yellow, red
}

// FeedPlayers collects the shirt/short-name pairs the feed used for team.
func FeedPlayers(entries []lineup.Entry, team string) []roster.FeedPlayer {
	out := make([]roster.FeedPlayer, 0, len(entries)/2)
	for _, entry := range filterTeam(entries, team) {
		if entry.ShortName == "" {
			continue
		}
		out = append(out, roster.FeedPlayer{ShirtNo: entry.ShirtNo, ShortName: entry.ShortName})
	}
	return out
}

func filterTeam(entries []lineup.Entry, team string) []lineup.Entry {
	out := make([]lineup.Entry, 0, len(entries)/2)
	for _, entry := range entries {
		if entry.TeamName == team {
			out = append(out, entry)
		}
	}
	return out
}
