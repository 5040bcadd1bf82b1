package normalize

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/matchday-scraper/internal/domain/dataset"
	"github.com/riskibarqy/matchday-scraper/internal/domain/roster"
)

// SquadHeader is the column layout of the hand-maintained squad numbers table.
var SquadHeader = []string{"season", "squad_no", "player_name"}

// SquadNumbers reads the squad numbers table. Rows with a non-numeric shirt
// are skipped.
func SquadNumbers(ds dataset.Dataset) []roster.SquadNumber {
	season, shirt, name := column(ds, "season"), column(ds, "squad_no"), column(ds, "player_name")
	if shirt < 0 || name < 0 {
		return nil
	}

	out := make([]roster.SquadNumber, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		no, err := strconv.Atoi(strings.TrimSpace(cell(row, shirt)))
		if err != nil {
			continue
		}
		out = append(out, roster.SquadNumber{
			Season:     strings.TrimSpace(cell(row, season)),
			SquadNo:    no,
			PlayerName: strings.TrimSpace(cell(row, name)),
		})
	}
	return out
}

// StoredFeedPlayers reads shirt/short-name pairs for team out of a persisted
// lineups dataset, so earlier matches keep resolving names.
func StoredFeedPlayers(ds dataset.Dataset, team string) []roster.FeedPlayer {
	teamIdx, shirt, short := column(ds, "team_name"), column(ds, "shirt_no"), column(ds, "short_name")
	if teamIdx < 0 || shirt < 0 || short < 0 {
		return nil
	}

	var out []roster.FeedPlayer
	for _, row := range ds.Rows {
		if cell(row, teamIdx) != team {
			continue
		}
		no, err := strconv.Atoi(cell(row, shirt))
		if err != nil {
			continue
		}
		out = append(out, roster.FeedPlayer{ShirtNo: no, ShortName: cell(row, short)})
	}
	return out
}

func column(ds dataset.Dataset, name string) int {
	for i, c := range ds.Header {
		if c == name {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
