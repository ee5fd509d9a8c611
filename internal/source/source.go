// Package source fetches the raw rows of the three directory tables from a
// configured backend: the hosted PostgREST store, a SQL database, or a
// directory of static JSON exports.
package source

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"t21dir/internal/config"
	"t21dir/internal/directory"
)

// Table describes one directory table in every backend.
type Table struct {
	Name    string // store table name
	OrderBy string // name column the store sorts by
	File    string // static export file name
}

var (
	FinancialTable   = Table{Name: "financial_resources", OrderBy: "program_name", File: "financial.json"}
	TherapyTable     = Table{Name: "therapy_services", OrderBy: "resource_name", File: "therapy.json"}
	InspirationTable = Table{Name: "inspiration_profiles", OrderBy: "full_name", File: "inspiration.json"}
)

// Tables lists the three tables in load order.
var Tables = []Table{FinancialTable, TherapyTable, InspirationTable}

// ErrUnknownKind is returned by Open for an unsupported source kind.
var ErrUnknownKind = errors.New("unknown source kind")

// Source fetches all rows of a table at once.
type Source interface {
	Name() string
	Fetch(ctx context.Context, t Table) ([]directory.Row, error)
	Close() error
}

// Open builds the backend selected by cfg.
func Open(cfg config.SourceConfig, log *zap.Logger) (Source, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Kind {
	case config.SourceSupabase:
		return NewSupabase(cfg.URL, cfg.AnonKey, cfg.GetTimeout(), log), nil
	case config.SourceJSON:
		return NewJSONDir(cfg.DataDir, log), nil
	case config.SourcePostgres, config.SourceSQLite:
		return OpenSQL(cfg.Kind, cfg.DSN, log)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
}
