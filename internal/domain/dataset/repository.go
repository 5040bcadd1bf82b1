package dataset

import "context"

type Repository interface {
	// Load returns the stored dataset; found is false when it does not exist yet.
	Load(ctx context.Context, name string) (Dataset, bool, error)
	Save(ctx context.Context, ds Dataset) error
}
