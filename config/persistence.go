package config

type PersistenceCfg struct {
	// Dir specifies the directory where cache dump files are stored.
	// It is created when missing.
	Dir string `yaml:"dump_dir" json:"dump_dir"`

	// Name defines the base name of the cache dump file.
	// The final file name has ".dump" appended (and ".gz" when Gzip is enabled).
	Name string `yaml:"dump_name" json:"dump_name"`

	// Gzip enables gzip compression for cache dump files.
	Gzip bool `yaml:"gzip" json:"gzip"`
}

func (cfg *PersistenceCfg) Enabled() bool {
	return cfg != nil
}
