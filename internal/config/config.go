// Package config loads the service configuration: an optional YAML file overridden by
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/editing"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	LineStoreDynamoDB = "dynamodb"
	LineStoreSQLite   = "sqlite"
)

type Config struct {
	Port        int               `yaml:"port"`
	LineStore   LineStoreConfig   `yaml:"line_store"`
	LineService LineServiceConfig `yaml:"line_service"`
	Backup      BackupConfig      `yaml:"backup"`
	Sync        SyncConfig        `yaml:"sync"`
	Rates       RatesConfig       `yaml:"default_rates"`
}

// LineStoreConfig selects where estimates and lines are persisted.
// DynamoDB table names and endpoint come from ESTIMATES_TABLE, ESTIMATE_LINES_TABLE and
// DYNAMODB_ENDPOINT, read by the repositories and the client.
type LineStoreConfig struct {
	Driver     string `yaml:"driver"`
	SQLitePath string `yaml:"sqlite_path"`
}

// LineServiceConfig points editing sessions at a remote line service. An empty URL
// keeps them on the in-process one.
type LineServiceConfig struct {
	URL               string  `yaml:"url"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	MaxBulkItems      int     `yaml:"max_bulk_items"`
}

type BackupConfig struct {
	Dir           string        `yaml:"dir"`
	Retention     time.Duration `yaml:"retention"`
	PruneSchedule string        `yaml:"prune_schedule"`
}

type SyncConfig struct {
	Debounce             time.Duration  `yaml:"debounce"`
	ActiveEditWindow     time.Duration  `yaml:"active_edit_window"`
	ActiveEditMultiplier float64        `yaml:"active_edit_multiplier"`
	MaxBatchRows         int            `yaml:"max_batch_rows"`
	MaxBatchFields       int            `yaml:"max_batch_fields"`
	MaxRetries           *int           `yaml:"max_retries"`
	RetryInitial         time.Duration  `yaml:"retry_initial"`
	RetryMax             time.Duration  `yaml:"retry_max"`
	RefreshInterval      *time.Duration `yaml:"refresh_interval"`
	RequestTimeout       time.Duration  `yaml:"request_timeout"`
}

type RatesConfig struct {
	LaborRate               float64  `yaml:"labor_rate"`
	PaintMaterialRate       float64  `yaml:"paint_material_rate"`
	VATRatePercentage       float64  `yaml:"vat_rate_percentage"`
	PartMarkupPercentage    float64  `yaml:"part_markup_percentage"`
	SpecialMarkupPercentage *float64 `yaml:"special_markup_percentage"`
}

// Load reads path when it is set, then applies environment overrides, defaults and
// validation.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		data = raw
	}
	return parse(data, os.Getenv)
}

// Parse builds a configuration from YAML alone.
func Parse(data []byte) (*Config, error) {
	return parse(data, func(string) string { return "" })
}

func parse(data []byte, getenv func(string) string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	str("LINE_STORE", &c.LineStore.Driver)
	str("SQLITE_PATH", &c.LineStore.SQLitePath)
	str("LINE_SERVICE_URL", &c.LineService.URL)
	str("BACKUP_DIR", &c.Backup.Dir)
	str("BACKUP_PRUNE_SCHEDULE", &c.Backup.PruneSchedule)

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PORT: %w", err)
		}
		c.Port = port
	}
	if v := strings.TrimSpace(getenv("LINE_SERVICE_RPS")); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: LINE_SERVICE_RPS: %w", err)
		}
		c.LineService.RequestsPerSecond = rps
	}
	if v := strings.TrimSpace(getenv("BACKUP_RETENTION")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: BACKUP_RETENTION: %w", err)
		}
		c.Backup.Retention = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	c.LineStore.Driver = strings.ToLower(c.LineStore.Driver)
	if c.LineStore.Driver == "" {
		c.LineStore.Driver = LineStoreDynamoDB
	}
	if c.LineStore.SQLitePath == "" {
		c.LineStore.SQLitePath = "estimate_editor.db"
	}
	if c.LineService.Burst == 0 {
		c.LineService.Burst = 5
	}
	if c.LineService.MaxBulkItems == 0 {
		c.LineService.MaxBulkItems = 50
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = "data/backups"
	}
	if c.Backup.Retention == 0 {
		c.Backup.Retention = 24 * time.Hour
	}
	if c.Backup.PruneSchedule == "" {
		c.Backup.PruneSchedule = "@every 15m"
	}
}

func (c *Config) validate() error {
	var errs []string
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port %d out of range", c.Port))
	}
	if c.LineStore.Driver != LineStoreDynamoDB && c.LineStore.Driver != LineStoreSQLite {
		errs = append(errs, fmt.Sprintf("line_store.driver must be %s or %s", LineStoreDynamoDB, LineStoreSQLite))
	}
	if c.LineService.RequestsPerSecond < 0 {
		errs = append(errs, "line_service.requests_per_second must not be negative")
	}
	if c.LineService.MaxBulkItems < 0 {
		errs = append(errs, "line_service.max_bulk_items must not be negative")
	}
	if c.Backup.Retention < 0 {
		errs = append(errs, "backup.retention must not be negative")
	}
	if _, err := cron.ParseStandard(c.Backup.PruneSchedule); err != nil {
		errs = append(errs, "backup.prune_schedule: "+err.Error())
	}
	if c.Editing().MaxBatchRows > c.LineService.MaxBulkItems {
		errs = append(errs, "sync.max_batch_rows exceeds line_service.max_bulk_items")
	}
	if err := c.DefaultRates().Validate(); err != nil {
		errs = append(errs, "default_rates: "+err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// DefaultRates are applied to estimates created without explicit rates.
func (c *Config) DefaultRates() entities.RateConfig {
	special := float64(entities.DefaultSpecialMarkupPercentage)
	if c.Rates.SpecialMarkupPercentage != nil {
		special = *c.Rates.SpecialMarkupPercentage
	}
	return entities.RateConfig{
		LaborRate:               c.Rates.LaborRate,
		PaintMaterialRate:       c.Rates.PaintMaterialRate,
		VATRatePercentage:       c.Rates.VATRatePercentage,
		PartMarkupPercentage:    c.Rates.PartMarkupPercentage,
		SpecialMarkupPercentage: special,
	}
}

// Editing maps the sync section onto the session configuration. Unset values keep the
// session defaults.
func (c *Config) Editing() editing.Config {
	out := editing.DefaultConfig()
	s := c.Sync
	if s.Debounce > 0 {
		out.Debounce = s.Debounce
	}
	if s.ActiveEditWindow > 0 {
		out.ActiveEditWindow = s.ActiveEditWindow
	}
	if s.ActiveEditMultiplier > 0 {
		out.ActiveEditMultiplier = s.ActiveEditMultiplier
	}
	if s.MaxBatchRows > 0 {
		out.MaxBatchRows = s.MaxBatchRows
	}
	if s.MaxBatchFields > 0 {
		out.MaxBatchFields = s.MaxBatchFields
	}
	if s.MaxRetries != nil {
		out.MaxRetries = *s.MaxRetries
	}
	if s.RetryInitial > 0 {
		out.RetryInitial = s.RetryInitial
	}
	if s.RetryMax > 0 {
		out.RetryMax = s.RetryMax
	}
	if s.RefreshInterval != nil {
		out.RefreshInterval = *s.RefreshInterval
	}
	if s.RequestTimeout > 0 {
		out.RequestTimeout = s.RequestTimeout
	}
	return out
}
