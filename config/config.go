package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidMaxEntries = errors.New("db.max_entries must be positive")
	ErrInvalidMaxAge     = errors.New("db.max_age must be positive")
	ErrInvalidHeadroom   = errors.New("db.eviction_headroom must be in [0, max_entries)")
	ErrInvalidSoftLimit  = errors.New("eviction.soft_memory_limit_bytes must be positive")
	ErrInvalidPersist    = errors.New("persistence.dump_dir and persistence.dump_name are required")
)

// Default returns the stock configuration:
// 50 entries, 24h lifetime and a sweep every 30 minutes.
func Default() *Cache {
	cfg := &Cache{
		DB: DBCfg{
			MaxEntries: DefaultMaxEntries,
			MaxAge:     DefaultMaxAge,
		},
		Lifetime: &LifetimerCfg{SweepInterval: DefaultSweepInterval},
	}
	cfg.AdjustConfig()
	return cfg
}

// AdjustConfig fills defaults and computes virtual fields. It is safe to call more than once.
func (cfg *Cache) AdjustConfig() {
	if cfg.DB.MaxEntries == 0 {
		cfg.DB.MaxEntries = DefaultMaxEntries
	}
	if cfg.DB.MaxAge == 0 {
		cfg.DB.MaxAge = DefaultMaxAge
	}
	if cfg.DB.IsTelemetryLogsEnabled && cfg.DB.TelemetryLogsInterval <= 0 {
		cfg.DB.TelemetryLogsInterval = DefaultTelemetryLogsInterval
	}
	cfg.DB.EvictTarget = cfg.DB.MaxEntries - cfg.DB.EvictionHeadroom
	if cfg.DB.EvictTarget < 1 {
		cfg.DB.EvictTarget = 1
	}

	if !cfg.Fetch.Enabled() {
		cfg.Fetch = &FetchCfg{}
	}
	if cfg.Fetch.Timeout <= 0 {
		cfg.Fetch.Timeout = DefaultFetchTimeout
	}
	if cfg.Fetch.Concurrency <= 0 {
		cfg.Fetch.Concurrency = DefaultFetchConcurrency
	}
	if cfg.Fetch.MaxBodyBytes <= 0 {
		cfg.Fetch.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = DefaultUserAgent
	}

	if cfg.Handles.BaseURL == "" {
		cfg.Handles.BaseURL = DefaultHandleBaseURL
	}
	if cfg.Handles.MaxPerEntry <= 0 {
		cfg.Handles.MaxPerEntry = DefaultMaxHandlesPerEntry
	}

	if cfg.Lifetime.Enabled() && cfg.Lifetime.SweepInterval <= 0 {
		cfg.Lifetime.SweepInterval = DefaultSweepInterval
	}

	if cfg.Eviction.Enabled() {
		if cfg.Eviction.CallsPerSec <= 0 {
			cfg.Eviction.CallsPerSec = 1
		}
		if cfg.Eviction.BackoffSpinsPerCall <= 0 {
			cfg.Eviction.BackoffSpinsPerCall = int64(cfg.DB.MaxEntries)
		}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate reports the first configuration error found.
func (cfg *Cache) Validate() error {
	if cfg.DB.MaxEntries <= 0 {
		return ErrInvalidMaxEntries
	}
	if cfg.DB.MaxAge <= 0 {
		return ErrInvalidMaxAge
	}
	if cfg.DB.EvictionHeadroom < 0 || cfg.DB.EvictionHeadroom >= cfg.DB.MaxEntries {
		return fmt.Errorf("%w: got %d", ErrInvalidHeadroom, cfg.DB.EvictionHeadroom)
	}
	if cfg.Eviction.Enabled() && cfg.Eviction.SoftMemoryLimitBytes <= 0 {
		return ErrInvalidSoftLimit
	}
	if cfg.Persistence.Enabled() && (cfg.Persistence.Dir == "" || cfg.Persistence.Name == "") {
		return ErrInvalidPersist
	}
	return nil
}

func LoadConfig(path string) (*Cache, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Cache
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if cfg == nil {
		cfg = &Cache{}
	}
	cfg.AdjustConfig()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	return cfg, nil
}
