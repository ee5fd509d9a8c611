// Package loader performs the startup fetch of all three directory tables.
package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"t21dir/internal/directory"
	"t21dir/internal/source"
)

// ErrLoadFailed wraps the first fetch failure of a load.
var ErrLoadFailed = errors.New("failed to load directory")

// Loader fetches the three tables concurrently and builds the collections.
type Loader struct {
	src source.Source
	log *zap.Logger
}

// New creates a loader over src.
func New(src source.Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{src: src, log: log}
}

// Load runs one all-or-nothing load. The first failing fetch cancels the
// others; partial results are discarded and no retry is attempted.
func (l *Loader) Load(ctx context.Context) (*directory.Collections, error) {
	log := l.log.With(
		zap.String("load_id", uuid.NewString()),
		zap.String("source", l.src.Name()),
	)
	start := time.Now()

	var financial, therapy, inspiration []directory.Row

	eg, egCtx := errgroup.WithContext(ctx)
	fetch := func(t source.Table, dst *[]directory.Row) {
		eg.Go(func() error {
			began := time.Now()
			rows, err := l.src.Fetch(egCtx, t)
			if err != nil {
				log.Warn("fetch failed", zap.String("table", t.Name), zap.Error(err))
				return fmt.Errorf("%s: %w", t.Name, err)
			}
			log.Debug("fetched",
				zap.String("table", t.Name),
				zap.Int("rows", len(rows)),
				zap.Duration("elapsed", time.Since(began)),
			)
			*dst = rows
			return nil
		})
	}
	fetch(source.FinancialTable, &financial)
	fetch(source.TherapyTable, &therapy)
	fetch(source.InspirationTable, &inspiration)

	if err := eg.Wait(); err != nil {
		log.Error("load failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	data, dups := directory.Build(financial, therapy, inspiration)
	for _, d := range dups {
		log.Warn("duplicate id dropped", zap.String("collection", d.Collection), zap.String("id", d.ID))
	}

	log.Info("directory loaded",
		zap.Int("financial", len(data.Financial)),
		zap.Int("therapy", len(data.Therapy)),
		zap.Int("inspiration", len(data.Inspiration)),
		zap.Int("skipped_rows", len(financial)+len(therapy)+len(inspiration)-
			len(data.Financial)-len(data.Therapy)-len(data.Inspiration)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return data, nil
}
