package bbcsport

// Documents mirror the container API payloads. Pointer fields tagged
// `validate:"required"` are keys the feed promises; an absent one is a
// structural mismatch. Untagged pointers are genuinely optional.

// FixturesDocument is the scores-fixtures listing used to discover the match
// played on a date.
type FixturesDocument struct {
	EventGroups []FixtureGroup `json:"eventGroups"`
}

// FixtureGroup is one competition's block of fixtures; DisplayLabel holds
// the competition name, e.g. "League Two".
type FixtureGroup struct {
	DisplayLabel    string                  `json:"displayLabel"`
	SecondaryGroups []FixtureSecondaryGroup `json:"secondaryGroups"`
}

type FixtureSecondaryGroup struct {
	Events []FixtureEvent `json:"events"`
}

type FixtureEvent struct {
	ID          FlexString `json:"id"`
	TipoTopicID FlexString `json:"tipoTopicId"`
}

// LineupDocument is the match-lineups payload. It also carries the match
// officials.
type LineupDocument struct {
	HomeTeam  *LineupTeam `json:"homeTeam" validate:"required"`
	AwayTeam  *LineupTeam `json:"awayTeam" validate:"required"`
	Officials []Official  `json:"officials"`
}

type LineupTeam struct {
	Name      *TeamName      `json:"name" validate:"required"`
	Alignment string         `json:"alignment"`
	Formation *FormationInfo `json:"formation" validate:"required"`
	Manager   *Manager       `json:"manager" validate:"required"`
	Players   *TeamPlayers   `json:"players" validate:"required"`
}

type TeamName struct {
	FullName string `json:"fullName" validate:"required"`
}

type FormationInfo struct {
	Value string `json:"value"`
}

type Manager struct {
	Name *PersonName `json:"name" validate:"required"`
}

type PersonName struct {
	Full  string `json:"full"`
	First string `json:"first"`
	Last  string `json:"last"`
	Short string `json:"short"`
}

type TeamPlayers struct {
	Starters    []LineupPlayer `json:"starters" validate:"required,dive"`
	Substitutes []LineupPlayer `json:"substitutes" validate:"required,dive"`
}

type LineupPlayer struct {
	Name           *PersonName     `json:"name" validate:"required"`
	PlayerURN      string          `json:"playerUrn" validate:"required"`
	ShirtNumber    *FlexInt        `json:"shirtNumber" validate:"required"`
	Position       string          `json:"position"`
	FormationPlace *FlexInt        `json:"formationPlace"`
	IsCaptain      bool            `json:"isCaptain"`
	Cards          []Card          `json:"cards" validate:"omitempty,dive"`
	SubstitutedOff *SubstitutedOff `json:"substitutedOff"`
	SubstitutedOn  *SubstitutedOn  `json:"substitutedOn"`
}

type Card struct {
	Type      string     `json:"type" validate:"required"`
	TimeLabel *TimeLabel `json:"timeLabel" validate:"required"`
}

type TimeLabel struct {
	Value string `json:"value" validate:"required"`
}

type SubstitutedOff struct {
	PeriodID     FlexString `json:"periodId"`
	TimeMin      *FlexInt   `json:"timeMin" validate:"required"`
	Reason       string     `json:"reason"`
	PlayerOnURN  string     `json:"playerOnUrn" validate:"required"`
	PlayerOnName string     `json:"playerOnName"`
}

type SubstitutedOn struct {
	PeriodID      FlexString `json:"periodId"`
	TimeMin       *FlexInt   `json:"timeMin" validate:"required"`
	Reason        string     `json:"reason"`
	PlayerOffURN  string     `json:"playerOffUrn" validate:"required"`
	PlayerOffName string     `json:"playerOffName"`
}

type Official struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	ShortFirstName *string `json:"shortFirstName"`
	ShortLastName  *string `json:"shortLastName"`
	Type           string  `json:"type"`
}

// MatchInfoDocument is the live-header payload holding scores, goal actions
// and grouped actions.
type MatchInfoDocument struct {
	SportDataEvent *SportDataEvent `json:"sportDataEvent" validate:"required"`
}

type SportDataEvent struct {
	Home           *EventTeam      `json:"home" validate:"required"`
	Away           *EventTeam      `json:"away" validate:"required"`
	GroupedActions []GroupedAction `json:"groupedActions"`
}

type EventTeam struct {
	FullName      string         `json:"fullName" validate:"required"`
	RunningScores *RunningScores `json:"runningScores"`
	Actions       []TeamAction   `json:"actions"`
}

// RunningScores is only required by the score extractors, which check it
// through scoreTriple. Goal extraction never reads it.
type RunningScores struct {
	Halftime             *FlexInt `json:"halftime"`
	Fulltime             *FlexInt `json:"fulltime"`
	PenaltyShootoutScore *FlexInt `json:"penaltyShootoutScore"`
}

type TeamAction struct {
	ActionType string        `json:"actionType"`
	PlayerName string        `json:"playerName"`
	PlayerURN  string        `json:"playerUrn"`
	Actions    []ActionEvent `json:"actions"`
}

type ActionEvent struct {
	Type      string     `json:"type"`
	TimeLabel *TimeLabel `json:"timeLabel"`
}

type GroupedAction struct {
	GroupName       *TeamName `json:"groupName"`
	HomeTeamActions []string  `json:"homeTeamActions"`
	AwayTeamActions []string  `json:"awayTeamActions"`
}

// SamedayDocument lists the other fixtures played on the match date.
type SamedayDocument struct {
	Events []SamedayEvent `json:"events" validate:"required"`
}

type SamedayEvent struct {
	Status string     `json:"status"`
	Home   *EventTeam `json:"home"`
	Away   *EventTeam `json:"away"`
}

// TableDocument is the football-table payload:
// tournaments[0].stages[0].rounds[].participants[].
type TableDocument struct {
	Tournaments []Tournament `json:"tournaments"`
}

type Tournament struct {
	Name   string  `json:"name"`
	Stages []Stage `json:"stages"`
}

type Stage struct {
	Rounds []Round `json:"rounds"`
}

type Round struct {
	Name         *string       `json:"name"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	Rank               FlexInt `json:"rank"`
	Name               string  `json:"name"`
	MatchesPlayed      FlexInt `json:"matchesPlayed"`
	Wins               FlexInt `json:"wins"`
	Draws              FlexInt `json:"draws"`
	Losses             FlexInt `json:"losses"`
	GoalsScoredFor     FlexInt `json:"goalsScoredFor"`
	GoalsScoredAgainst FlexInt `json:"goalsScoredAgainst"`
	GoalDifference     FlexInt `json:"goalDifference"`
	Points             FlexInt `json:"points"`
}

// MatchStatsDocument is the match-stats payload. Stats stay untyped because
// the set of statistics varies between competitions.
type MatchStatsDocument struct {
	HomeTeam *StatsTeam `json:"homeTeam" validate:"required"`
	AwayTeam *StatsTeam `json:"awayTeam" validate:"required"`
}

type StatsTeam struct {
	Name      *TeamName      `json:"name" validate:"required"`
	Alignment string         `json:"alignment"`
	Stats     map[string]any `json:"stats" validate:"required"`
}

// CommentaryPage is one page of the live text stream.
type CommentaryPage struct {
	Page    PageInfo           `json:"page"`
	Results []CommentaryResult `json:"results"`
	Error   any                `json:"error,omitempty"`
}

type PageInfo struct {
	Index FlexInt `json:"index"`
	Total FlexInt `json:"total"`
}

type CommentaryResult struct {
	Dates    *CommentaryDates `json:"dates"`
	Content  *Block           `json:"content"`
	Headline *Block           `json:"headline"`
}

type CommentaryDates struct {
	Time string `json:"time"`
}

// Block is the rich-text node used by commentary bodies and headlines.
type Block struct {
	Type  string     `json:"type,omitempty"`
	Model BlockModel `json:"model"`
}

type BlockModel struct {
	Text   string  `json:"text,omitempty"`
	Blocks []Block `json:"blocks,omitempty"`
}
