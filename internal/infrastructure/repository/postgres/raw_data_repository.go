package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday-scraper/internal/domain/rawdata"
)

const upsertRawPayloadQuery = `INSERT INTO raw_payloads (source, kind, game_date, entity_key, payload, payload_hash)
VALUES (:source, :kind, :game_date, :entity_key, :payload, :payload_hash)
ON CONFLICT (source, kind, game_date)
DO UPDATE SET
    entity_key = EXCLUDED.entity_key,
    payload = EXCLUDED.payload,
    payload_hash = EXCLUDED.payload_hash,
    ingested_at = NOW()
WHERE raw_payloads.payload_hash IS DISTINCT FROM EXCLUDED.payload_hash`

const selectRawPayloadQuery = `SELECT payload FROM raw_payloads
WHERE source = $1 AND kind = $2 AND game_date = $3`

// RawDataRepository archives raw feed documents in postgres. A row is only
// rewritten when its payload hash changed.
type RawDataRepository struct {
	db     *sqlx.DB
	source string
}

func NewRawDataRepository(db *sqlx.DB, source string) *RawDataRepository {
	return &RawDataRepository{db: db, source: source}
}

func (r *RawDataRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	models := make([]rawPayloadModel, 0, len(items))
	for _, item := range items {
		if len(item.PayloadJSON) == 0 {
			continue
		}
		models = append(models, r.toModel(item))
	}
	if len(models) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert raw payloads: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, model := range models {
		if _, err := tx.NamedExecContext(ctx, upsertRawPayloadQuery, model); err != nil {
			return fmt.Errorf("upsert raw payload kind=%s date=%s: %w", model.Kind, model.GameDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert raw payloads tx: %w", err)
	}

	return nil
}

// Load returns nil without error when the document was never archived.
func (r *RawDataRepository) Load(ctx context.Context, kind, gameDate string) ([]byte, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, selectRawPayloadQuery, r.source, kind, gameDate)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select raw payload kind=%s date=%s: %w", kind, gameDate, err)
	}

	return []byte(payload), nil
}

func (r *RawDataRepository) toModel(item rawdata.Payload) rawPayloadModel {
	source := item.Source
	if source == "" {
		source = r.source
	}
	return rawPayloadModel{
		Source:      source,
		Kind:        item.Kind,
		GameDate:    item.GameDate,
		EntityKey:   nullableString(item.EntityKey),
		Payload:     string(item.PayloadJSON),
		PayloadHash: item.PayloadHash,
	}
}

type rawPayloadModel struct {
	Source      string  `db:"source"`
	Kind        string  `db:"kind"`
	GameDate    string  `db:"game_date"`
	EntityKey   *string `db:"entity_key"`
	Payload     string  `db:"payload"`
	PayloadHash string  `db:"payload_hash"`
}
