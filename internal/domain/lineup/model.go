package lineup

const (
	VenueHome = "home"
	VenueAway = "away"

	RoleStarter    = "starter"
	RoleSubstitute = "substitute"

	AppearanceStarter = "starter"
	AppearanceSub     = "sub"
)

// Entry is one player's line in a team sheet, with the team's metadata
// repeated on every row.
type Entry struct {
	GameDate       string
	TeamName       string
	TeamVenue      string
	Formation      string
	TeamManager    string
	Surname        string
	Forename       string
	PlayerName     string
	ShortName      string
	PlayerID       string
	ShirtNo        int
	Position       string
	FormationPlace *int
	Role           string
	IsCaptain      bool
	YellowCard     int
	MinYC          *int
	MinYCInj       *int
	RedCard        int
	MinRC          *int
	MinRCInj       *int
	SubOff         *SubLink
	SubOn          *SubLink
}

// SubLink describes one side of a substitution as seen from the player
// that carries it. For SubOff the counterpart is the replacement, for SubOn
// it is the player who was replaced.
type SubLink struct {
	Period          string
	Minute          int
	Reason          string
	CounterpartID   string
	CounterpartName string
}

// SubstitutionEvent is a substitution with both players named, whichever
// side of the team sheet reported it.
type SubstitutionEvent struct {
	GameDate      string
	TeamName      string
	Period        string
	Minute        int
	Reason        string
	LeavingID     string
	LeavingName   string
	LeavingShirt  *int
	EnteringID    string
	EnteringName  string
	EnteringShirt *int
}

// Substitution is one substitution of the tracked club with both players
// resolved to roster names, keyed by date and the incoming shirt number.
type Substitution struct {
	GameDate  string
	Minute    int
	ShirtOn   int
	PlayerOn  string
	ShirtOff  *int
	PlayerOff string
}

// SubstituteMinutes records when a player came on or went off, capped at 90.
type SubstituteMinutes struct {
	GameDate   string
	PlayerName string
	MinOff     *int
	MinOn      *int
}

// Appearance is one player's participation in a match.
type Appearance struct {
	GameDate   string
	PlayerName string
	ShirtNo    int
	Role       string
}

func (e Entry) IsStarter() bool {
	return e.Role == RoleStarter
}
