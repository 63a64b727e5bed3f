package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"estimate_editor/internal/usecase/editing"
)

func TestParse(t *testing.T) {
	t.Run("empty document gets defaults", func(t *testing.T) {
		cfg, err := Parse(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 {
			t.Fatalf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.LineStore.Driver != LineStoreDynamoDB {
			t.Fatalf("expected dynamodb driver, got %s", cfg.LineStore.Driver)
		}
		if cfg.LineService.MaxBulkItems != 50 {
			t.Fatalf("expected 50 bulk items, got %d", cfg.LineService.MaxBulkItems)
		}
		if cfg.Backup.Retention != 24*time.Hour || cfg.Backup.PruneSchedule != "@every 15m" {
			t.Fatalf("unexpected backup defaults: %+v", cfg.Backup)
		}
		if got := cfg.DefaultRates().SpecialMarkupPercentage; got != 25 {
			t.Fatalf("expected special markup 25, got %v", got)
		}
		if cfg.Editing() != editing.DefaultConfig() {
			t.Fatalf("expected default editing config")
		}
	})

	t.Run("yaml values are kept", func(t *testing.T) {
		doc := `
port: 9090
line_store:
  driver: SQLite
  sqlite_path: /tmp/lines.db
line_service:
  url: http://lines.internal
  requests_per_second: 20
sync:
  debounce: 500ms
  max_retries: 0
  refresh_interval: 0s
default_rates:
  labor_rate: 80
  vat_rate_percentage: 20
  special_markup_percentage: 0
`
		cfg, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9090 || cfg.LineStore.Driver != LineStoreSQLite {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.LineService.URL != "http://lines.internal" || cfg.LineService.RequestsPerSecond != 20 {
			t.Fatalf("unexpected line service config: %+v", cfg.LineService)
		}
		ed := cfg.Editing()
		if ed.Debounce != 500*time.Millisecond || ed.MaxRetries != 0 || ed.RefreshInterval != 0 {
			t.Fatalf("unexpected editing config: %+v", ed)
		}
		rates := cfg.DefaultRates()
		if rates.LaborRate != 80 || rates.VATRatePercentage != 20 || rates.SpecialMarkupPercentage != 0 {
			t.Fatalf("unexpected rates: %+v", rates)
		}
	})

	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed yaml", "port: [", "config: parse"},
		{"port out of range", "port: 70000", "port 70000 out of range"},
		{"unknown driver", "line_store:\n  driver: postgres", "line_store.driver"},
		{"negative rps", "line_service:\n  requests_per_second: -1", "requests_per_second"},
		{"batch above bulk limit", "line_service:\n  max_bulk_items: 10\nsync:\n  max_batch_rows: 20", "max_batch_rows"},
		{"bad prune schedule", "backup:\n  prune_schedule: sometimes", "prune_schedule"},
		{"vat above 100", "default_rates:\n  vat_rate_percentage: 120", "default_rates"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("port: 9090\nbackup:\n  dir: /var/backups\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		t.Setenv("PORT", "7070")
		t.Setenv("LINE_STORE", "sqlite")
		t.Setenv("BACKUP_RETENTION", "2h")

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 7070 {
			t.Fatalf("expected env port, got %d", cfg.Port)
		}
		if cfg.LineStore.Driver != LineStoreSQLite {
			t.Fatalf("expected sqlite driver, got %s", cfg.LineStore.Driver)
		}
		if cfg.Backup.Dir != "/var/backups" || cfg.Backup.Retention != 2*time.Hour {
			t.Fatalf("unexpected backup config: %+v", cfg.Backup)
		}
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "PORT") {
			t.Fatalf("expected PORT error, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected read error")
		}
	})
}
