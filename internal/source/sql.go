package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"t21dir/internal/config"
	"t21dir/internal/directory"
)

// SQL reads the tables from a Postgres database (the store's own backing
// database) or from a local SQLite export.
type SQL struct {
	kind config.SourceKind
	db   *sql.DB
	log  *zap.Logger
}

// OpenSQL opens dsn with the driver matching kind.
func OpenSQL(kind config.SourceKind, dsn string, log *zap.Logger) (*SQL, error) {
	if log == nil {
		log = zap.NewNop()
	}
	driver := "sqlite"
	if kind == config.SourcePostgres {
		driver = "postgres"
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return &SQL{kind: kind, db: db, log: log}, nil
}

// NewSQL wraps an already opened database.
func NewSQL(kind config.SourceKind, db *sql.DB, log *zap.Logger) *SQL {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQL{kind: kind, db: db, log: log}
}

func (s *SQL) Name() string { return string(s.kind) }

func (s *SQL) Close() error { return s.db.Close() }

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (s *SQL) Fetch(ctx context.Context, t Table) ([]directory.Row, error) {
	if !identRe.MatchString(t.Name) || (t.OrderBy != "" && !identRe.MatchString(t.OrderBy)) {
		return nil, fmt.Errorf("invalid table %q", t.Name)
	}
	query := "SELECT * FROM " + t.Name
	if t.OrderBy != "" {
		query += " ORDER BY " + t.OrderBy
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", t.Name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", t.Name, err)
	}

	var out []directory.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.Name, err)
		}
		row := make(directory.Row, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t.Name, err)
	}
	s.log.Debug("queried table", zap.String("table", t.Name), zap.Int("rows", len(out)))
	return out, nil
}
