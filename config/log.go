package config

type LogCfg struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level" json:"level"`

	// Pretty switches the CLI logger to a human-readable console writer.
	Pretty bool `yaml:"pretty" json:"pretty"`
}
