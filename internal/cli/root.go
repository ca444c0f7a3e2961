// Package cli provides the imgcache command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "IMGCACHE"

// NewRootCmd creates the root command. Flags can also be set through
// IMGCACHE_* environment variables (IMGCACHE_CONFIG, IMGCACHE_LOG_LEVEL, ...).
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:           "imgcache",
		Short:         "Bounded, time-expiring image cache",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().String("log-level", "", "override log.level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-pretty", false, "human-readable console logs")
	_ = v.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newServeCmd(v),
		newWarmCmd(v),
		newSchemaCmd(),
		newVersionCmd(version, commit, buildDate),
	)

	return cmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the file named by the config key, or falls back to defaults,
// and applies flag/env overrides on top.
func loadConfig(v *viper.Viper) (*config.Cache, error) {
	var (
		cfg *config.Cache
		err error
	)
	if path := v.GetString("config"); path != "" {
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	if lvl := v.GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if v.GetBool("log-pretty") {
		cfg.Log.Pretty = true
	}
	return cfg, nil
}
