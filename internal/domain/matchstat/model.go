package matchstat

// TeamStats is one team's flattened statistics for a match. Values keep the
// feed's textual rendering of numbers.
type TeamStats struct {
	GameDate  string
	TeamName  string
	TeamVenue string
	Stats     map[string]string
}

// Official is a referee or assistant assigned to a match.
type Official struct {
	GameDate string
	Surname  string
	Forename string
	Name     string
	Role     string
}
