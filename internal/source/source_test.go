package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"t21dir/internal/config"
)

func TestSupabase_Fetch(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"program_id":"F1","program_name":"Hope","award_amount_max":2500}]`))
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL+"/", "anon-key", time.Second, nil)
	defer s.Close()

	rows, err := s.Fetch(context.Background(), FinancialTable)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "/rest/v1/financial_resources", gotPath)
	assert.Equal(t, "order=program_name&select=%2A", gotQuery)
	assert.Equal(t, "anon-key", gotKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)

	assert.Equal(t, json.Number("2500"), rows[0]["award_amount_max"])
	assert.Equal(t, "Hope", rows[0].String("program_name"))
}

func TestSupabase_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewSupabase(srv.URL, "bad", time.Second, nil).Fetch(context.Background(), TherapyTable)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Status)
	assert.Equal(t, "therapy_services", se.Table)
	assert.Contains(t, se.Body, "permission denied")
}

func TestSupabase_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSupabase(srv.URL, "k", time.Second, nil).Fetch(ctx, InspirationTable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSupabase_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := NewSupabase(srv.URL, "k", time.Second, nil).Fetch(context.Background(), FinancialTable)
	assert.ErrorContains(t, err, "decode financial_resources")
}

func TestJSONDir_Fetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "therapy.json"),
		[]byte(`[{"resource_id":"T2","resource_name":"Zeta"},{"resource_id":"T1","resource_name":"Alpha"}]`), 0644))

	j := NewJSONDir(dir, nil)
	rows, err := j.Fetch(context.Background(), TherapyTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "T2", rows[0].String("resource_id"), "file order is kept")

	_, err = j.Fetch(context.Background(), FinancialTable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSQL_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = db.Exec(`CREATE TABLE inspiration_profiles (
		profile_id TEXT PRIMARY KEY,
		full_name TEXT,
		speaking_available INTEGER,
		active_since INTEGER
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO inspiration_profiles VALUES
		('P2', 'Zoe Quinn', 1, 2015),
		('P1', 'Alex Moore', 0, NULL)`)
	require.NoError(t, err)

	s := NewSQL(config.SourceSQLite, db, nil)
	defer s.Close()

	rows, err := s.Fetch(context.Background(), InspirationTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alex Moore", rows[0].String("full_name"), "ordered by name")
	assert.Equal(t, "", rows[0].String("active_since"))
	assert.Equal(t, "2015", rows[1].String("active_since"))
	assert.True(t, rows[1].Bool("speaking_available"))
	assert.Equal(t, "sqlite", s.Name())
}

func TestSQL_RejectsBadIdentifiers(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	s := NewSQL(config.SourceSQLite, db, nil)
	defer s.Close()

	_, err = s.Fetch(context.Background(), Table{Name: "users; DROP TABLE x"})
	assert.ErrorContains(t, err, "invalid table")
}

func TestOpen(t *testing.T) {
	src, err := Open(config.SourceConfig{Kind: config.SourceJSON, DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", src.Name())

	src, err = Open(config.SourceConfig{Kind: config.SourceSupabase, URL: "https://x.supabase.co", AnonKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "supabase", src.Name())

	src, err = Open(config.SourceConfig{Kind: config.SourceSQLite, DSN: filepath.Join(t.TempDir(), "y.db")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", src.Name())
	assert.NoError(t, src.Close())

	_, err = Open(config.SourceConfig{Kind: "csv"}, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
