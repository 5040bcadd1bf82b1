package rawdata

const (
	KindFixtureInfo     = "fixture_info"
	KindMatchStats      = "match_stats"
	KindMatchInfo       = "match_info"
	KindLineups         = "lineups"
	KindTable           = "table"
	KindSamedayFixtures = "sameday_fixtures"
	KindCommentary      = "commentary"
)

// Kinds lists every document fetched for one match date.
var Kinds = []string{
	KindFixtureInfo,
	KindMatchStats,
	KindMatchInfo,
	KindLineups,
	KindTable,
	KindSamedayFixtures,
	KindCommentary,
}

// Payload is one raw feed document as it was received.
type Payload struct {
	Source      string
	Kind        string
	GameDate    string
	EntityKey   string
	PayloadJSON []byte
	PayloadHash string
}
