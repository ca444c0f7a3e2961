package config

import "time"

const (
	// DefaultMaxEntries is the number of images kept in memory when nothing is configured.
	DefaultMaxEntries = 50
	// DefaultMaxAge is the default entry lifetime.
	DefaultMaxAge = 24 * time.Hour
	// DefaultTelemetryLogsInterval is used when stat logs are enabled without an interval.
	DefaultTelemetryLogsInterval = 5 * time.Second
)

type DBCfg struct {
	// MaxEntries is the hard bound of the store (number of cached images).
	MaxEntries int `yaml:"max_entries" json:"max_entries"`

	// MaxAge is the lifetime of an entry. An entry older than MaxAge is never served.
	// Example: "24h".
	MaxAge time.Duration `yaml:"max_age" json:"max_age"`

	// EvictionHeadroom is how many extra entries are dropped once the bound is overcome,
	// so that a burst of inserts does not trigger eviction on every single call.
	// Zero keeps the store exactly at MaxEntries.
	EvictionHeadroom int `yaml:"eviction_headroom" json:"eviction_headroom"`

	IsTelemetryLogsEnabled bool          `yaml:"stat_logs_enabled" json:"stat_logs_enabled"`
	TelemetryLogsInterval  time.Duration `yaml:"stat_logs_interval" json:"stat_logs_interval"`

	// EvictTarget is derived from MaxEntries and EvictionHeadroom. It is not read from YAML.
	EvictTarget int `yaml:"-" json:"-"` // virtual: computed during init
}
