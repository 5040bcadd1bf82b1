package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/matchday-scraper/internal/domain/dataset"
	"github.com/valyala/bytebufferpool"
)

const fileExt = ".csv"

// DatasetRepository keeps one CSV file per dataset under a directory.
type DatasetRepository struct {
	dir string
}

func NewDatasetRepository(dir string) *DatasetRepository {
	return &DatasetRepository{dir: dir}
}

func (r *DatasetRepository) path(name string) string {
	return filepath.Join(r.dir, name+fileExt)
}

func (r *DatasetRepository) Load(ctx context.Context, name string) (dataset.Dataset, bool, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Dataset{}, false, err
	}
	if strings.TrimSpace(name) == "" {
		return dataset.Dataset{}, false, fmt.Errorf("load dataset: empty name")
	}

	raw, err := os.ReadFile(r.path(name))
	if os.IsNotExist(err) {
		return dataset.Dataset{Name: name}, false, nil
	}
	if err != nil {
		return dataset.Dataset{}, false, fmt.Errorf("read dataset %s: %w", name, err)
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return dataset.Dataset{}, false, fmt.Errorf("parse dataset %s: %w", name, err)
	}

	out := dataset.Dataset{Name: name}
	if len(records) == 0 {
		return out, true, nil
	}
	out.Header = records[0]
	out.Rows = records[1:]

	return out, true, nil
}

// Save rewrites the dataset file. The content goes to a temp file in the same
// directory first so a failed write never truncates the previous version.
func (r *DatasetRepository) Save(ctx context.Context, ds dataset.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(ds.Name) == "" {
		return fmt.Errorf("save dataset: empty name")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create dataset dir: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	if len(ds.Header) > 0 {
		if err := writer.Write(ds.Header); err != nil {
			return fmt.Errorf("encode dataset %s header: %w", ds.Name, err)
		}
	}
	if err := writer.WriteAll(ds.Rows); err != nil {
		return fmt.Errorf("encode dataset %s: %w", ds.Name, err)
	}

	tmp, err := os.CreateTemp(r.dir, ds.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", ds.Name, err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write dataset %s: %w", ds.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dataset %s: %w", ds.Name, err)
	}
	if err := os.Rename(tmpName, r.path(ds.Name)); err != nil {
		return fmt.Errorf("replace dataset %s: %w", ds.Name, err)
	}

	return nil
}
