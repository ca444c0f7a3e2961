package config

type EvictionCfg struct {
	// SoftMemoryLimitBytes is the total payload size the background evictor keeps the store under.
	// The entry-count bound (DB.MaxEntries) is enforced synchronously regardless of this value.
	SoftMemoryLimitBytes int64 `yaml:"soft_memory_limit_bytes" json:"soft_memory_limit_bytes"`

	// CallsPerSec defines how many times per second the evictor checks the memory usage.
	CallsPerSec int64 `yaml:"calls_per_sec" json:"calls_per_sec"`

	// BackoffSpinsPerCall bounds how many entries a single eviction call may remove.
	BackoffSpinsPerCall int64 `yaml:"backoff_spins_per_call" json:"backoff_spins_per_call"`
}

func (cfg *EvictionCfg) Enabled() bool {
	return cfg != nil
}
