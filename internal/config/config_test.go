package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable applyEnvOverrides reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SUPABASE_URL", "SUPABASE_ANON_KEY", "T21_SOURCE",
		"T21_DATA_DIR", "T21_DATABASE_DSN", "T21_LOG_LEVEL", "T21_DARK_MODE"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Source.Kind != SourceSupabase {
		t.Errorf("expected Kind=supabase, got %s", cfg.Source.Kind)
	}
	if cfg.UI.PageSizes.Inspiration != 12 {
		t.Errorf("expected inspiration page size 12, got %d", cfg.UI.PageSizes.Inspiration)
	}
	if got := cfg.GetSearchDebounce(); got != 300*time.Millisecond {
		t.Errorf("expected 300ms debounce, got %v", got)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	path := filepath.Join("nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Source.Kind = SourceJSON
	cfg.Source.DataDir = "/srv/exports"
	cfg.UI.SearchDebounce = "150ms"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assert.Equal(t, SourceJSON, loaded.Source.Kind)
	assert.Equal(t, "/srv/exports", loaded.Source.DataDir)
	assert.Equal(t, 150*time.Millisecond, loaded.GetSearchDebounce())
	assert.Nil(t, loaded.UI.DarkMode)
}

func TestLoad_MissingFileUsesDefaultsAndEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)
	assert.Equal(t, "https://example.supabase.co", cfg.Source.URL)
	assert.Equal(t, "anon", cfg.Source.AnonKey)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv does not overwrite variables that are already set, even when
	// empty, so unset the ones this file provides.
	os.Unsetenv("T21_SOURCE")
	os.Unsetenv("T21_DATABASE_DSN")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("T21_SOURCE=SQLite\nT21_DATABASE_DSN=file:listings.db\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("T21_SOURCE")
		os.Unsetenv("T21_DATABASE_DSN")
	})

	cfg, err := Load("config.yaml")
	require.NoError(t, err)
	assert.Equal(t, SourceSQLite, cfg.Source.Kind)
	assert.Equal(t, "file:listings.db", cfg.Source.DSN)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("bad.yaml", []byte("source: [unterminated"), 0644))

	_, err := Load("bad.yaml")
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("dark mode parses booleans", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("T21_DARK_MODE", "true")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		require.NotNil(t, cfg.UI.DarkMode)
		assert.True(t, *cfg.UI.DarkMode)
	})

	t.Run("garbage dark mode is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("T21_DARK_MODE", "sometimes")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Nil(t, cfg.UI.DarkMode)
	})

	t.Run("source kind is lower-cased", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("T21_SOURCE", "JSON")
		t.Setenv("T21_DATA_DIR", "exports")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, SourceJSON, cfg.Source.Kind)
		assert.Equal(t, "exports", cfg.Source.DataDir)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default has no credentials", func(*Config) {}, "needs url and anon key"},
		{"bad url", func(c *Config) { c.Source.URL, c.Source.AnonKey = "not a url", "k" }, "invalid supabase url"},
		{"unknown kind", func(c *Config) { c.Source.Kind = "csv" }, "invalid source kind"},
		{"sqlite without dsn", func(c *Config) { c.Source.Kind = SourceSQLite }, "needs a dsn"},
		{"json ok", func(c *Config) { c.Source.Kind = SourceJSON }, ""},
		{"bad log level", func(c *Config) {
			c.Source.Kind = SourceJSON
			c.Logging.Level = "loud"
		}, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSourceConfig_GetTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, SourceConfig{}.GetTimeout())
	assert.Equal(t, 5*time.Second, SourceConfig{Timeout: "5s"}.GetTimeout())
	assert.Equal(t, 30*time.Second, SourceConfig{Timeout: "-1s"}.GetTimeout())
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	c := &LoggingConfig{}
	assert.True(t, c.IsCategoryEnabled("loader"))

	c.Categories = map[string]bool{"store": false}
	assert.False(t, c.IsCategoryEnabled("store"))
	assert.True(t, c.IsCategoryEnabled("loader"))
}
