package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"t21dir/internal/directory"
)

// ErrStatus marks a non-2xx response from the store.
var ErrStatus = errors.New("unexpected status")

// StatusError carries the failing status and the start of the body.
type StatusError struct {
	Table  string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s: %s", e.Table, e.Status, http.StatusText(e.Status), e.Body)
}

func (e *StatusError) Unwrap() error { return ErrStatus }

const maxErrorBody = 512

// Supabase reads tables through the PostgREST endpoint of a hosted store.
type Supabase struct {
	baseURL string
	key     string
	client  *http.Client
	log     *zap.Logger
}

// NewSupabase creates a client for baseURL authenticated with the anon key.
func NewSupabase(baseURL, anonKey string, timeout time.Duration, log *zap.Logger) *Supabase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     anonKey,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (s *Supabase) Name() string { return "supabase" }

func (s *Supabase) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// Fetch runs GET /rest/v1/{table}?select=*&order={col}.
func (s *Supabase) Fetch(ctx context.Context, t Table) ([]directory.Row, error) {
	q := url.Values{}
	q.Set("select", "*")
	if t.OrderBy != "" {
		q.Set("order", t.OrderBy)
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, url.PathEscape(t.Name), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", t.Name, err)
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", t.Name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.Name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := body
		if len(excerpt) > maxErrorBody {
			excerpt = excerpt[:maxErrorBody]
		}
		return nil, &StatusError{Table: t.Name, Status: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}

	rows, err := decodeRows(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.Name, err)
	}
	s.log.Debug("fetched table",
		zap.String("table", t.Name),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return rows, nil
}

// decodeRows parses a JSON array of objects, keeping numbers exact.
func decodeRows(data []byte) ([]directory.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rows []directory.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
