package config

import "time"

const (
	DefaultFetchTimeout     = 10 * time.Second
	DefaultFetchConcurrency = 8
	DefaultMaxBodyBytes     = 16 << 20
	DefaultUserAgent        = "go-image-cache/1.0"
)

type FetchCfg struct {
	// Timeout bounds a single upstream fetch, including the time coalesced callers wait on it.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// RatePerSec limits outbound fetches per second. Zero or negative means unlimited.
	RatePerSec int `yaml:"rate_per_sec" json:"rate_per_sec"`

	// Concurrency bounds how many fetches a single PreloadAll call keeps in flight.
	Concurrency int `yaml:"concurrency" json:"concurrency"`

	// MaxBodyBytes rejects images larger than this size.
	MaxBodyBytes int64 `yaml:"max_body_bytes" json:"max_body_bytes"`

	UserAgent string `yaml:"user_agent" json:"user_agent"`

	// AllowedHosts restricts upstream hosts. An entry is either an exact host name
	// ("cdn.example.com") or a wildcard for its subdomains ("*.example.com").
	// Empty allows any host.
	AllowedHosts []string `yaml:"allowed_hosts" json:"allowed_hosts,omitempty"`
}

func (cfg *FetchCfg) Enabled() bool {
	return cfg != nil
}
