package config

import (
	"fmt"
	"net/url"
	"slices"
	"time"
)

// SourceKind selects a data backend.
type SourceKind string

const (
	SourceSupabase SourceKind = "supabase" // hosted PostgREST store
	SourceJSON     SourceKind = "json"     // directory of static exports
	SourcePostgres SourceKind = "postgres" // the store's database, read directly
	SourceSQLite   SourceKind = "sqlite"   // local export
)

// ValidSourceKinds lists all supported backends.
var ValidSourceKinds = []SourceKind{SourceSupabase, SourceJSON, SourcePostgres, SourceSQLite}

// SourceConfig configures where listings are fetched from.
type SourceConfig struct {
	Kind    SourceKind `yaml:"kind"`
	URL     string     `yaml:"url,omitempty"`
	AnonKey string     `yaml:"anon_key,omitempty"`
	DataDir string     `yaml:"data_dir,omitempty"`
	DSN     string     `yaml:"dsn,omitempty"`
	Timeout string     `yaml:"timeout"`
}

// GetTimeout returns the per-request timeout as a duration.
func (s SourceConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Validate checks that the selected backend has what it needs.
func (s SourceConfig) Validate() error {
	if !slices.Contains(ValidSourceKinds, s.Kind) {
		return fmt.Errorf("invalid source kind: %s (valid: %v)", s.Kind, ValidSourceKinds)
	}
	switch s.Kind {
	case SourceSupabase:
		if s.URL == "" || s.AnonKey == "" {
			return fmt.Errorf("supabase source needs url and anon key (set SUPABASE_URL and SUPABASE_ANON_KEY)")
		}
		if u, err := url.Parse(s.URL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid supabase url: %q", s.URL)
		}
	case SourceJSON:
		if s.DataDir == "" {
			return fmt.Errorf("json source needs a data directory (set T21_DATA_DIR)")
		}
	case SourcePostgres, SourceSQLite:
		if s.DSN == "" {
			return fmt.Errorf("%s source needs a dsn (set T21_DATABASE_DSN)", s.Kind)
		}
	}
	return nil
}
