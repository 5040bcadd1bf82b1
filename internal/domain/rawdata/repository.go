package rawdata

import "context"

type Repository interface {
	UpsertMany(ctx context.Context, items []Payload) error
}

// Source reads back archived documents, keyed by kind and match date.
type Source interface {
	Load(ctx context.Context, kind, gameDate string) ([]byte, error)
}
