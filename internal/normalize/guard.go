package normalize

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-scraper/external/bbcsport"
	"github.com/riskibarqy/matchday-scraper/internal/platform/logging"
	"github.com/sourcegraph/conc/panics"
)

// Guard runs one extractor. An error or a panic is logged with the entity and
// date and turns into an empty result, so a bad document never aborts the
// rest of a batch. An empty result therefore means "no data available".
func Guard[T any](ctx context.Context, logger *logging.Logger, entity, gameDate string, extract func() ([]T, error)) []T {
	rows, _ := TryExtract(ctx, logger, entity, gameDate, extract)
	return rows
}

// TryExtract is Guard that also reports whether the extractor succeeded. A
// missing document counts as a failure.
func TryExtract[T any](ctx context.Context, logger *logging.Logger, entity, gameDate string, extract func() ([]T, error)) ([]T, bool) {
	var (
		rows []T
		err  error
		pc   panics.Catcher
	)
	pc.Try(func() {
		rows, err = extract()
	})
	if recovered := pc.Recovered(); recovered != nil {
		err = crerr.Wrapf(recovered.AsError(), "%s extractor panicked", entity)
	}

	if err == nil {
		return rows, true
	}

	if crerr.Is(err, bbcsport.ErrEmptyDocument) {
		logger.InfoContext(ctx, "document not available", "entity", entity, "game_date", gameDate)
		return []T{}, false
	}
	logger.WarnContext(ctx, "extraction failed, returning empty table",
		"entity", entity,
		"game_date", gameDate,
		"structure", crerr.Is(err, ErrStructure),
		"error", err,
	)
	return []T{}, false
}

// decoded adapts a typed extractor to a raw document.
func decoded[D, T any](raw []byte, extract func(D) ([]T, error)) func() ([]T, error) {
	return func() ([]T, error) {
		doc, err := bbcsport.Decode[D](raw)
		if err != nil {
			return nil, err
		}
		return extract(doc)
	}
}
