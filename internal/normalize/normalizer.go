package normalize

import (
	"context"
	"strings"

	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/lineup"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchevent"
	"github.com/riskibarqy/matchday-scraper/internal/domain/matchstat"
	"github.com/riskibarqy/matchday-scraper/internal/domain/rawdata"
	"github.com/riskibarqy/matchday-scraper/internal/domain/score"
	"github.com/riskibarqy/matchday-scraper/internal/domain/standing"
	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
)

// Extractor names, used in logs and to track which tables of a date are
// complete.
const (
	EntityLineups       = "lineups"
	EntityOfficials     = "officials"
	EntityMatchStats    = "match_stats"
	EntityScores        = "scores"
	EntityGoals         = "goals"
	EntityAssists       = "assists"
	EntityLeagueTable   = "league_table"
	EntitySamedayScores = "sameday_scores"
	EntitySamedayGoals  = "sameday_goals"
	EntityCommentary    = "commentary"
)

// Matchday holds every table extracted for one match date.
type Matchday struct {
	GameDate      string
	Competition   string
	Lineups       []lineup.Entry
	Officials     []matchstat.Official
	MatchStats    []matchstat.TeamStats
	Scores        []score.Score
	Goals         []matchevent.Goal
	Assists       []matchevent.Assist
	LeagueTable   []standing.Row
	SamedayScores []score.SamedayScore
	SamedayGoals  []matchevent.SamedayGoal
	Commentary    []matchevent.Commentary

	failed map[string]struct{}
}

// Extracted reports whether the named extractor ran on a present document
// and succeeded.
func (md Matchday) Extracted(entity string) bool {
	_, failed := md.failed[entity]
	return !failed
}

func (md *Matchday) track(entity string, ok bool) {
	if ok {
		return
	}
	if md.failed == nil {
		md.failed = make(map[string]struct{})
	}
	md.failed[entity] = struct{}{}
}

type Normalizer struct {
	logger   *logging.Logger
	teamName string
}

func NewNormalizer(logger *logging.Logger, teamName string) *Normalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Normalizer{
		logger:   logger.Named("normalize"),
		teamName: teamName,
	}
}

// Matchday runs every extractor over the raw documents of one date. Each
// extractor is guarded on its own; a failure empties only its table and is
// remembered so the stored rows of that table are kept.
func (n *Normalizer) Matchday(ctx context.Context, gameDate string, docs map[string][]byte) Matchday {
	logger := n.logger.With("game_date", gameDate)
	md := Matchday{
		GameDate:    gameDate,
		Competition: fixtureCompetition(docs[rawdata.KindFixtureInfo]),
	}
	var ok bool

	lineupsRaw := docs[rawdata.KindLineups]
	md.Lineups, ok = TryExtract(ctx, logger, EntityLineups, gameDate, decoded(lineupsRaw, func(doc bbcsport.LineupDocument) ([]lineup.Entry, error) {
		return Lineups(doc, gameDate)
	}))
	md.track(EntityLineups, ok)
	md.Officials, ok = TryExtract(ctx, logger, EntityOfficials, gameDate, decoded(lineupsRaw, func(doc bbcsport.LineupDocument) ([]matchstat.Official, error) {
		return Officials(doc, gameDate)
	}))
	md.track(EntityOfficials, ok)
	md.MatchStats, ok = TryExtract(ctx, logger, EntityMatchStats, gameDate, decoded(docs[rawdata.KindMatchStats], func(doc bbcsport.MatchStatsDocument) ([]matchstat.TeamStats, error) {
		return MatchStats(doc, gameDate)
	}))
	md.track(EntityMatchStats, ok)

	infoRaw := docs[rawdata.KindMatchInfo]
	md.Scores, ok = TryExtract(ctx, logger, EntityScores, gameDate, decoded(infoRaw, func(doc bbcsport.MatchInfoDocument) ([]score.Score, error) {
		return Scores(doc, gameDate)
	}))
	md.track(EntityScores, ok)
	md.Goals, ok = TryExtract(ctx, logger, EntityGoals, gameDate, decoded(infoRaw, func(doc bbcsport.MatchInfoDocument) ([]matchevent.Goal, error) {
		return Goals(doc, gameDate)
	}))
	md.track(EntityGoals, ok)
	md.Assists, ok = TryExtract(ctx, logger, EntityAssists, gameDate, decoded(infoRaw, func(doc bbcsport.MatchInfoDocument) ([]matchevent.Assist, error) {
		return Assists(doc, gameDate)
	}))
	md.track(EntityAssists, ok)

	md.LeagueTable, ok = TryExtract(ctx, logger, EntityLeagueTable, gameDate, decoded(docs[rawdata.KindTable], func(doc bbcsport.TableDocument) ([]standing.Row, error) {
		return LeagueTable(doc, n.teamName, gameDate)
	}))
	md.track(EntityLeagueTable, ok)

	samedayRaw := docs[rawdata.KindSamedayFixtures]
	md.SamedayScores, ok = TryExtract(ctx, logger, EntitySamedayScores, gameDate, decoded(samedayRaw, func(doc bbcsport.SamedayDocument) ([]score.SamedayScore, error) {
		return SamedayScores(doc, gameDate)
	}))
	md.track(EntitySamedayScores, ok)
	md.SamedayGoals, ok = TryExtract(ctx, logger, EntitySamedayGoals, gameDate, decoded(samedayRaw, func(doc bbcsport.SamedayDocument) ([]matchevent.SamedayGoal, error) {
		return SamedayGoals(doc, gameDate)
	}))
	md.track(EntitySamedayGoals, ok)

	md.Commentary, ok = TryExtract(ctx, logger, EntityCommentary, gameDate, decoded(docs[rawdata.KindCommentary], func(pages []bbcsport.CommentaryPage) ([]matchevent.Commentary, error) {
		return Commentary(pages, gameDate)
	}))
	md.track(EntityCommentary, ok)

	if md.Competition == "" {
		md.Competition = tableCompetition(md.LeagueTable, n.teamName)
	}

	logger.DebugContext(ctx, "matchday normalized",
		"lineups", len(md.Lineups),
		"goals", len(md.Goals),
		"commentary", len(md.Commentary),
		"failed", len(md.failed),
	)
	return md
}

func fixtureCompetition(raw []byte) string {
	doc, err := bbcsport.Decode[bbcsport.FixturesDocument](raw)
	if err != nil || len(doc.EventGroups) == 0 {
		return ""
	}
	return strings.TrimSpace(doc.EventGroups[0].DisplayLabel)
}

func tableCompetition(rows []standing.Row, team string) string {
	for _, row := range rows {
		if row.TeamName == team {
			return row.LeagueName
		}
	}
	return ""
}
