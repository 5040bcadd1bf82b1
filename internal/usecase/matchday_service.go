package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/domain/dataset"
	"github.com/riskibarqy/matchday-scraper/internal/domain/rawdata"
	"github.com/riskibarqy/matchday-scraper/internal/domain/roster"
	"github.com/riskibarqy/matchday-scraper/internal/normalize"
	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dateLayout = "2006-01-02"
	feedSource = "bbc"
)

// MatchdayFeed downloads every raw document for one match date.
type MatchdayFeed interface {
	FetchMatchday(ctx context.Context, gameDate string) (bbcsport.Matchday, error)
}

type MatchdayServiceConfig struct {
	Club             normalize.Club
	SquadDataset     string
	NormalizeWorkers int
}

// MatchdayService runs one batch: collect raw documents per date, archive
// them, normalize, derive the club views and merge everything into the
// stored datasets.
type MatchdayService struct {
	feed       MatchdayFeed
	replay     rawdata.Source
	archive    rawdata.Repository
	datasets   dataset.Repository
	normalizer *normalize.Normalizer
	cfg        MatchdayServiceConfig
	logger     *logging.Logger
}

// NewMatchdayService wires the batch. When replay is set documents are read
// from it instead of the feed. archive may be nil.
func NewMatchdayService(
	feed MatchdayFeed,
	replay rawdata.Source,
	archive rawdata.Repository,
	datasets dataset.Repository,
	cfg MatchdayServiceConfig,
	logger *logging.Logger,
) *MatchdayService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.NormalizeWorkers < 1 {
		cfg.NormalizeWorkers = 1
	}
	if strings.TrimSpace(cfg.SquadDataset) == "" {
		cfg.SquadDataset = "squad_numbers"
	}

	return &MatchdayService{
		feed:       feed,
		replay:     replay,
		archive:    archive,
		datasets:   datasets,
		normalizer: normalize.NewNormalizer(logger, cfg.Club.TeamName),
		cfg:        cfg,
		logger:     logger,
	}
}

type DateFailure struct {
	GameDate string
	Reason   string
}

type BatchResult struct {
	RunID     string
	Processed []string
	Skipped   []DateFailure
	Rows      map[string]int
}

type collectedDate struct {
	gameDate string
	docs     map[string][]byte
}

func (s *MatchdayService) Run(ctx context.Context, dates []string) (BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.Run")
	defer span.End()

	if s.datasets == nil || (s.feed == nil && s.replay == nil) {
		return BatchResult{}, fmt.Errorf("%w: matchday service is not fully configured", ErrDependencyUnavailable)
	}

	gameDates, err := normalizeGameDates(dates)
	if err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{RunID: uuid.NewString(), Rows: make(map[string]int)}
	logger := s.logger.With("run_id", result.RunID)
	logger.InfoContext(ctx, "matchday batch started", "dates", gameDates, "replay", s.replay != nil)

	collected := make([]collectedDate, 0, len(gameDates))
	for _, gameDate := range gameDates {
		docs, err := s.collect(ctx, gameDate)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return result, ctxErr
			}
			result.Skipped = append(result.Skipped, DateFailure{GameDate: gameDate, Reason: err.Error()})
			if crerr.Is(err, bbcsport.ErrNoFixture) || crerr.Is(err, ErrNoDocuments) {
				logger.InfoContext(ctx, "no match on date, skipping", "game_date", gameDate)
			} else {
				logger.WarnContext(ctx, "collect matchday failed, skipping", "game_date", gameDate, "error", err)
			}
			continue
		}
		collected = append(collected, collectedDate{gameDate: gameDate, docs: docs})
		result.Processed = append(result.Processed, gameDate)
	}

	if len(collected) == 0 {
		logger.InfoContext(ctx, "matchday batch finished without matches", "skipped", len(result.Skipped))
		return result, nil
	}

	matchdays, err := s.normalizeAll(ctx, collected)
	if err != nil {
		return result, err
	}

	resolver, err := s.buildResolver(ctx, matchdays)
	if err != nil {
		return result, err
	}

	// A dataset only replaces the stored rows of dates whose source documents
	// were all extracted; otherwise the stored rows of that date stay.
	incoming := make(map[string]dataset.Dataset)
	replaceDates := make(map[string][]string)
	var order []string
	for _, md := range matchdays {
		for _, ds := range append(md.Datasets(), md.ClubDatasets(s.cfg.Club, resolver)...) {
			if !md.Complete(ds.Name) {
				logger.DebugContext(ctx, "dataset incomplete, keeping stored rows",
					"dataset", ds.Name,
					"game_date", md.GameDate,
				)
				continue
			}
			replaceDates[ds.Name] = append(replaceDates[ds.Name], md.GameDate)
			current, exists := incoming[ds.Name]
			if !exists {
				order = append(order, ds.Name)
				incoming[ds.Name] = ds
				continue
			}
			incoming[ds.Name] = current.Merge(ds, nil)
		}
	}

	for _, name := range order {
		rows, err := s.mergeDataset(ctx, incoming[name], replaceDates[name])
		if err != nil {
			return result, err
		}
		result.Rows[name] = rows
	}

	logger.InfoContext(ctx, "matchday batch finished",
		"processed", len(result.Processed),
		"skipped", len(result.Skipped),
		"datasets", len(order),
	)
	return result, nil
}

func (s *MatchdayService) collect(ctx context.Context, gameDate string) (map[string][]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.collect", attribute.String("game_date", gameDate))
	defer span.End()

	if s.replay != nil {
		return s.loadArchived(ctx, gameDate)
	}

	fetched, err := s.feed.FetchMatchday(ctx, gameDate)
	if err != nil {
		if crerr.Is(err, bbcsport.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
		}
		return nil, err
	}

	if s.archive != nil {
		if err := s.archive.UpsertMany(ctx, rawPayloads(gameDate, fetched)); err != nil {
			s.logger.WarnContext(ctx, "archive raw documents failed", "game_date", gameDate, "error", err)
		}
	}

	return fetched.Documents, nil
}

func (s *MatchdayService) loadArchived(ctx context.Context, gameDate string) (map[string][]byte, error) {
	docs := make(map[string][]byte, len(rawdata.Kinds))
	for _, kind := range rawdata.Kinds {
		raw, err := s.replay.Load(ctx, kind, gameDate)
		if err != nil {
			return nil, fmt.Errorf("load archived %s: %w", kind, err)
		}
		if len(raw) > 0 {
			docs[kind] = raw
		}
	}
	if len(docs) == 0 {
		return nil, crerr.Wrapf(ErrNoDocuments, "archive has nothing for %s", gameDate)
	}
	return docs, nil
}

func rawPayloads(gameDate string, fetched bbcsport.Matchday) []rawdata.Payload {
	items := make([]rawdata.Payload, 0, len(fetched.Documents))
	for _, kind := range rawdata.Kinds {
		raw := fetched.Documents[kind]
		if len(raw) == 0 {
			continue
		}
		sum := sha256.Sum256(raw)
		items = append(items, rawdata.Payload{
			Source:      feedSource,
			Kind:        kind,
			GameDate:    gameDate,
			EntityKey:   fetched.Fixture.MatchID,
			PayloadJSON: raw,
			PayloadHash: hex.EncodeToString(sum[:]),
		})
	}
	return items
}

// normalizeAll fans the dates out over an ants pool and keeps the input order.
func (s *MatchdayService) normalizeAll(ctx context.Context, collected []collectedDate) ([]normalize.Matchday, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchdayService.normalizeAll", attribute.Int("dates", len(collected)))
	defer span.End()

	out := make([]normalize.Matchday, len(collected))

	pool, err := ants.NewPool(s.cfg.NormalizeWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, item := range collected {
		i, item := i, item
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.normalizer.Matchday(ctx, item.gameDate, item.docs)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit normalize task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return out, nil
}

// buildResolver joins the squad numbers table with every short name seen in
// stored and freshly scraped lineups.
func (s *MatchdayService) buildResolver(ctx context.Context, matchdays []normalize.Matchday) (*roster.Resolver, error) {
	squadDS, found, err := s.datasets.Load(ctx, s.cfg.SquadDataset)
	if err != nil {
		return nil, fmt.Errorf("load squad numbers: %w", err)
	}
	if !found {
		s.logger.WarnContext(ctx, "squad numbers dataset missing, player names stay empty", "dataset", s.cfg.SquadDataset)
	}

	storedLineups, _, err := s.datasets.Load(ctx, normalize.DatasetLineups)
	if err != nil {
		return nil, fmt.Errorf("load stored lineups: %w", err)
	}

	feed := normalize.StoredFeedPlayers(storedLineups, s.cfg.Club.TeamName)
	for _, md := range matchdays {
		feed = append(feed, normalize.FeedPlayers(md.Lineups, s.cfg.Club.TeamName)...)
	}

	return roster.NewResolver(s.cfg.Club.Season, normalize.SquadNumbers(squadDS), feed), nil
}

func (s *MatchdayService) mergeDataset(ctx context.Context, incoming dataset.Dataset, dates []string) (int, error) {
	existing, _, err := s.datasets.Load(ctx, incoming.Name)
	if err != nil {
		return 0, fmt.Errorf("load dataset %s: %w", incoming.Name, err)
	}

	merged := existing.Merge(incoming, dates)
	merged.Name = incoming.Name
	if err := s.datasets.Save(ctx, merged); err != nil {
		return 0, fmt.Errorf("save dataset %s: %w", incoming.Name, err)
	}

	s.logger.DebugContext(ctx, "dataset merged",
		"dataset", incoming.Name,
		"incoming_rows", incoming.Len(),
		"total_rows", merged.Len(),
	)
	return incoming.Len(), nil
}

func normalizeGameDates(dates []string) ([]string, error) {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, raw := range dates {
		value := strings.TrimSpace(raw)
		if _, err := time.Parse(dateLayout, value); err != nil {
			return nil, fmt.Errorf("%w: game date %q must be YYYY-MM-DD", ErrInvalidInput, raw)
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one game date is required", ErrInvalidInput)
	}

	sort.Strings(out)
	return out, nil
}
