package standing

// Row represents a league table row for one team, as it stood on GameDate.
type Row struct {
	GameDate       string
	LeagueName     string
	CupDiv         string
	Rank           int
	TeamName       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}
