package score

// Score holds one team's running score for a match.
type Score struct {
	GameDate  string
	TeamName  string
	TeamVenue string
	HTScore   int
	FTScore   int
	PensScore *int
}

// SamedayScore is one team's score in a fixture played on the same day.
type SamedayScore struct {
	GameDate string
	HomeTeam string
	AwayTeam string
	TeamName string
	HTScore  int
	FTScore  int
	PenScore *int
}
