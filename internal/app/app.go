package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/config"
	"github.com/riskibarqy/matchday-scraper/internal/domain/rawdata"
	"github.com/riskibarqy/matchday-scraper/internal/infrastructure/repository/csvstore"
	"github.com/riskibarqy/matchday-scraper/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/matchday-scraper/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/matchday-scraper/internal/normalize"
	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
	"github.com/riskibarqy/matchday-scraper/internal/platform/resilience"
	"github.com/riskibarqy/matchday-scraper/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const rawArchiveSource = "bbc"

// Updater owns the batch service and the resources it holds open.
type Updater struct {
	Service *usecase.MatchdayService
	db      *sqlx.DB
}

func NewUpdater(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Updater, error) {
	if logger == nil {
		logger = logging.Default()
	}

	u := &Updater{}

	var (
		archive rawdata.Repository
		replay  rawdata.Source
	)
	switch cfg.RawArchive {
	case config.ArchiveFS:
		fsArchive := filesystem.NewRawArchive(cfg.RawArchiveDir)
		archive, replay = fsArchive, fsArchive
	case config.ArchivePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		u.db = db
		pgArchive := postgres.NewRawDataRepository(db, rawArchiveSource)
		archive, replay = pgArchive, pgArchive
	}

	var feed usecase.MatchdayFeed
	if cfg.Source == config.SourceArchive {
		archive = nil
	} else {
		replay = nil
		feed = bbcsport.NewClient(bbcsport.ClientConfig{
			BaseURL:           cfg.FeedBaseURL,
			CommentaryBaseURL: cfg.FeedCommentaryBaseURL,
			TeamURN:           cfg.FeedTeamURN,
			Timeout:           cfg.FeedTimeout,
			MaxRetries:        cfg.FeedMaxRetries,
			RetryBackoff:      cfg.FeedRetryBackoff,
			Logger:            logger.Named("bbcsport"),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FeedCircuitEnabled,
				FailureThreshold: cfg.FeedCircuitFailureCount,
				OpenTimeout:      cfg.FeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FeedCircuitHalfOpenMaxReq,
			},
		})
	}

	u.Service = usecase.NewMatchdayService(
		feed,
		replay,
		archive,
		csvstore.NewDatasetRepository(cfg.DataDir),
		usecase.MatchdayServiceConfig{
			Club: normalize.Club{
				TeamName:          cfg.TeamName,
				Season:            cfg.Season,
				LeagueCompetition: cfg.LeagueCompetition,
			},
			SquadDataset:     cfg.SquadDataset,
			NormalizeWorkers: cfg.NormalizeWorkers,
		},
		logger,
	)

	logger.Info("updater wired",
		"source", cfg.Source,
		"raw_archive", cfg.RawArchive,
		"data_dir", cfg.DataDir,
		"team", cfg.TeamName,
	)

	return u, nil
}

func (u *Updater) Close() error {
	if u == nil || u.db == nil {
		return nil
	}
	return u.db.Close()
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(dbURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dbURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
