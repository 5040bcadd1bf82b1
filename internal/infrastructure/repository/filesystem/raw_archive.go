package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/matchday-scraper/internal/domain/rawdata"
)

// RawArchive stores each feed document as <dir>/<kind>/<game_date>.json.
type RawArchive struct {
	dir string
}

func NewRawArchive(dir string) *RawArchive {
	return &RawArchive{dir: dir}
}

func (a *RawArchive) path(kind, gameDate string) (string, error) {
	kind = strings.TrimSpace(kind)
	gameDate = strings.TrimSpace(gameDate)
	if kind == "" || gameDate == "" {
		return "", fmt.Errorf("raw archive path: kind and game date are required")
	}
	if strings.ContainsAny(kind+gameDate, `/\`) || strings.Contains(kind+gameDate, "..") {
		return "", fmt.Errorf("raw archive path: invalid kind=%q date=%q", kind, gameDate)
	}
	return filepath.Join(a.dir, kind, gameDate+".json"), nil
}

func (a *RawArchive) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(item.PayloadJSON) == 0 {
			continue
		}

		target, err := a.path(item.Kind, item.GameDate)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create raw archive dir kind=%s: %w", item.Kind, err)
		}
		if err := os.WriteFile(target, item.PayloadJSON, 0o644); err != nil {
			return fmt.Errorf("write raw payload kind=%s date=%s: %w", item.Kind, item.GameDate, err)
		}
	}

	return nil
}

// Load returns nil without error when the document was never archived.
func (a *RawArchive) Load(ctx context.Context, kind, gameDate string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := a.path(kind, gameDate)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(target)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read raw payload kind=%s date=%s: %w", kind, gameDate, err)
	}

	return raw, nil
}
