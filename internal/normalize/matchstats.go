package normalize

import (
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchstat"
)

const statTotalSuffix = ".total"

// MatchStats flattens each side's nested statistics into dotted names with
// the ".total" segment removed, e.g. "shotsOnTarget.total" -> "shotsOnTarget".
func MatchStats(doc bbcsport.MatchStatsDocument, gameDate string) ([]matchstat.TeamStats, error) {
	if err := checkStructure(doc, "match stats"); err != nil {
		return nil, err
	}

	out := make([]matchstat.TeamStats, 0, 2)
	for _, team := range []*bbcsport.StatsTeam{doc.HomeTeam, doc.AwayTeam} {
		stats := make(map[string]string, len(team.Stats))
		flattenStats("", team.Stats, stats)
		out = append(out, matchstat.TeamStats{
			GameDate:  gameDate,
			TeamName:  team.Name.FullName,
			TeamVenue: team.Alignment,
			Stats:     stats,
		})
	}
	return out, nil
}

func flattenStats(prefix string, node map[string]any, dst map[string]string) {
	for key, value := range node {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenStats(name, nested, dst)
			continue
		}
		dst[strings.ReplaceAll(name, statTotalSuffix, "")] = statValue(value)
	}
}

func statValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	default:
		encoded, err := sonic.MarshalString(typed)
		if err != nil {
			return ""
		}
		return encoded
	}
}

// StatNames is the sorted union of statistic names across rows.
func StatNames(rows []matchstat.TeamStats) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for name := range row.Stats {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Officials lists the match officials, preferring the feed's short names.
// A document without officials yields an empty list.
func Officials(doc bbcsport.LineupDocument, gameDate string) ([]matchstat.Official, error) {
	out := make([]matchstat.Official, 0, len(doc.Officials))
	for _, official := range doc.Officials {
		forename := official.FirstName
		if official.ShortFirstName != nil {
			forename = *official.ShortFirstName
		}
		surname := official.LastName
		if official.ShortLastName != nil {
			surname = *official.ShortLastName
		}
		out = append(out, matchstat.Official{
			GameDate: gameDate,
			Surname:  surname,
			Forename: forename,
			Name:     strings.TrimSpace(forename + " " + surname),
			Role:     official.Type,
		})
	}
	return out, nil
}
