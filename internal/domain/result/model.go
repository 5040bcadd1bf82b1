package result

// Match summarizes one tracked-club match for the results dataset.
type Match struct {
	Season       string
	GameDate     string
	Weekday      string
	Opposition   string
	Venue        string
	Score        string
	Outcome      string
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	GameType     string
	Competition  string
	LeaguePos    *int
	Points       *int
	Manager      string
	Referee      string
	PenScore     string
}

const (
	VenueHome = "H"
	VenueAway = "A"

	OutcomeWin  = "W"
	OutcomeDraw = "D"
	OutcomeLoss = "L"

	GameTypeLeague = "League"
	GameTypeCup    = "Cup"
)
