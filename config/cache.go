package config

// Cache groups configuration of all cache subsystems.
// Optional components are disabled by leaving their section nil.
type Cache struct {
	// DB configures the entry store: capacity, entry lifetime and eviction headroom.
	DB DBCfg `yaml:"db" json:"db"`

	// Fetch configures the network fetch boundary.
	// If nil, defaults are applied by AdjustConfig.
	Fetch *FetchCfg `yaml:"fetch" json:"fetch,omitempty"`

	// Handles configures how issued local handles look like.
	Handles HandlesCfg `yaml:"handles" json:"handles"`

	// Lifetime configures the periodic expiry sweep.
	// If nil, stale entries are dropped lazily on access only.
	Lifetime *LifetimerCfg `yaml:"lifetime" json:"lifetime,omitempty"`

	// Eviction configures the background soft memory-limit evictor.
	// If nil, the store is bounded by entry count only.
	Eviction *EvictionCfg `yaml:"eviction" json:"eviction,omitempty"`

	// Persistence configures dumping entries to disk on close and restoring them on start.
	// If nil, the cache starts cold every time.
	Persistence *PersistenceCfg `yaml:"persistence" json:"persistence,omitempty"`

	// Preload lists images which are fetched in background right after start.
	// If nil, nothing is warmed up.
	Preload *PreloadCfg `yaml:"preload" json:"preload,omitempty"`

	// Log configures the logger built by the CLI.
	Log LogCfg `yaml:"log" json:"log"`
}
