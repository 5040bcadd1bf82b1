package normalize

import (
	"sort"
	"strings"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
)

const (
	cardTypeYellow = "yellow card"
	cardTypeRed    = "red card"
)

// Lineups flattens both team sheets of a lineups document into one entry per
// player. A team missing any required key fails the whole call.
func Lineups(doc bbcsport.LineupDocument, gameDate string) ([]lineup.Entry, error) {
	sides := []struct {
		key  string
		team *bbcsport.LineupTeam
	}{
		{key: "homeTeam", team: doc.HomeTeam},
		{key: "awayTeam", team: doc.AwayTeam},
	}

	out := make([]lineup.Entry, 0, 40)
	for _, side := range sides {
		if side.team == nil {
			return nil, structuref("lineups %s is missing", side.key)
		}
		if err := checkStructure(side.team, "lineups "+side.key); err != nil {
			return nil, err
		}

		rows, err := teamSheet(side.team, gameDate)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}

	SortLineup(out)
	return out, nil
}

// SortLineup orders entries by date, home team first, then shirt number.
func SortLineup(entries []lineup.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.GameDate != b.GameDate {
			return a.GameDate < b.GameDate
		}
		if a.TeamVenue != b.TeamVenue {
			return a.TeamVenue > b.TeamVenue
		}
		return a.ShirtNo < b.ShirtNo
	})
}

func teamSheet(team *bbcsport.LineupTeam, gameDate string) ([]lineup.Entry, error) {
	base := lineup.Entry{
		GameDate:    gameDate,
		TeamName:    team.Name.FullName,
		TeamVenue:   team.Alignment,
		Formation:   strings.ReplaceAll(team.Formation.Value, " ", ""),
		TeamManager: team.Manager.Name.Full,
	}

	out := make([]lineup.Entry, 0, len(team.Players.Starters)+len(team.Players.Substitutes))
	groups := []struct {
		role    string
		players []bbcsport.LineupPlayer
	}{
		{role: lineup.RoleStarter, players: team.Players.Starters},
		{role: lineup.RoleSubstitute, players: team.Players.Substitutes},
	}
	for _, group := range groups {
		for _, player := range group.players {
			entry, err := playerEntry(base, player, group.role)
			if err != nil {
				return nil, err
			}
			out = append(out, entry)
		}
	}
	return out, nil
}

func playerEntry(base lineup.Entry, player bbcsport.LineupPlayer, role string) (lineup.Entry, error) {
	entry := base
	entry.Forename = player.Name.First
	entry.Surname = player.Name.Last
	entry.PlayerName = strings.TrimSpace(player.Name.First + " " + player.Name.Last)
	entry.ShortName = player.Name.Short
	entry.PlayerID = ExtractEntityID(player.PlayerURN)
	entry.ShirtNo = player.ShirtNumber.Int()
	entry.Position = player.Position
	entry.FormationPlace = player.FormationPlace.IntPtr()
	entry.Role = role
	entry.IsCaptain = player.IsCaptain

	// Later cards of the same colour overwrite earlier ones.
	for _, card := range player.Cards {
		minute, injury, err := SplitMinuteToken(card.TimeLabel.Value)
		if err != nil {
			return lineup.Entry{}, err
		}
		switch strings.ToLower(strings.TrimSpace(card.Type)) {
		case cardTypeYellow:
			entry.YellowCard = 1
			entry.MinYC = &minute
			entry.MinYCInj = injury
		case cardTypeRed:
			entry.RedCard = 1
			entry.MinRC = &minute
			entry.MinRCInj = injury
		}
	}

	if off := player.SubstitutedOff; off != nil {
		entry.SubOff = &lineup.SubLink{
			Period:          off.PeriodID.String(),
			Minute:          off.TimeMin.Int(),
			Reason:          off.Reason,
			CounterpartID:   ExtractEntityID(off.PlayerOnURN),
			CounterpartName: off.PlayerOnName,
		}
	}
	if on := player.SubstitutedOn; on != nil {
		entry.SubOn = &lineup.SubLink{
			Period:          on.PeriodID.String(),
			Minute:          on.TimeMin.Int(),
			Reason:          on.Reason,
			CounterpartID:   ExtractEntityID(on.PlayerOffURN),
			CounterpartName: on.PlayerOffName,
		}
	}

	return entry, nil
}
