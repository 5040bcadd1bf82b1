package roster

// SquadNumber maps a shirt number to the canonical player name for a season.
type SquadNumber struct {
	Season     string
	SquadNo    int
	PlayerName string
}

// FeedPlayer pairs a shirt number with the short display name the feed uses.
type FeedPlayer struct {
	ShirtNo   int
	ShortName string
}
