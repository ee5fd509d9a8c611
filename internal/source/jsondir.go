package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"t21dir/internal/directory"
)

// JSONDir reads the static exports shipped before the hosted store existed.
// Rows keep file order.
type JSONDir struct {
	dir string
	log *zap.Logger
}

func NewJSONDir(dir string, log *zap.Logger) *JSONDir {
	if log == nil {
		log = zap.NewNop()
	}
	return &JSONDir{dir: dir, log: log}
}

func (j *JSONDir) Name() string { return "json" }

func (j *JSONDir) Close() error { return nil }

func (j *JSONDir) Fetch(ctx context.Context, t Table) ([]directory.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(j.dir, t.File)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rows, err := decodeRows(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	j.log.Debug("read export", zap.String("path", path), zap.Int("rows", len(rows)))
	return rows, nil
}
