package config

// PreloadCfg lists images that are known to be shown right away (hero banners, featured vehicles).
type PreloadCfg struct {
	URLs []string `yaml:"urls" json:"urls"`
}

func (cfg *PreloadCfg) Enabled() bool {
	return cfg != nil && len(cfg.URLs) > 0
}
