package matchevent

const (
	GoalNormal  = "normal"
	GoalPenalty = "penalty"
	GoalOwnGoal = "own-goal"

	CardYellow = "yellow"
	CardRed    = "red"

	// OwnGoalScorer replaces the scorer's name on own goals in club views.
	OwnGoalScorer = "OG"
)

// Goal is a single goal credited to a team.
type Goal struct {
	GameDate   string
	TeamName   string
	PlayerName string
	PlayerID   string
	Minute     int
	Injury     *int
	Type       string
}

// SamedayGoal is a goal from another fixture played on the same day.
type SamedayGoal struct {
	Goal
	HomeTeam string
	AwayTeam string
}

// ClubGoal is a goal by the tracked club with the scorer's roster name.
type ClubGoal struct {
	GameDate   string
	PlayerName string
	Minute     int
	Injury     *int
	Penalty    int
	OwnGoal    int
}

// Assist is one assist parsed from the grouped actions of a match.
type Assist struct {
	GameDate   string
	TeamName   string
	PlayerName string
	Minute     int
	Injury     *int
}

// Card is a booking shown to a player of the tracked club.
type Card struct {
	GameDate   string
	PlayerName string
	Color      string
	Minute     *int
	Injury     *int
}

// Commentary is one entry of the live text stream.
type Commentary struct {
	GameDate string
	Minute   int
	Injury   *int
	Text     string
	Headline *string
}
