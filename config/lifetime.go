package config

import "time"

// DefaultSweepInterval is how often stale entries are swept when nothing else is configured.
const DefaultSweepInterval = 30 * time.Minute

type LifetimerCfg struct {
	// SweepInterval defines how often entries older than DB.MaxAge are removed.
	// Example: "30m".
	SweepInterval time.Duration `yaml:"sweep_interval" json:"sweep_interval"`
}

func (cfg *LifetimerCfg) Enabled() bool {
	return cfg != nil
}
