package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	imgcache "github.com/Borislavv/go-image-cache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWarmCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "warm <url>...",
		Short: "Fetch images and leave them in the dump for the next start",
		Long: "Fetches the given images (plus preload.urls from the config), prints one\n" +
			"\"<url>\\t<handle>\" line per input and closes the cache, which writes the\n" +
			"dump when persistence is configured.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !cfg.Persistence.Enabled() {
				logger.Warn().Msg("persistence is disabled, warmed images are dropped on exit")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c := imgcache.New(ctx, cfg, logger)

			var cached int
			out := cmd.OutOrStdout()
			for i, h := range c.PreloadAll(ctx, args) {
				if h != args[i] {
					cached++
				}
				fmt.Fprintf(out, "%s\t%s\n", args[i], h)
			}
			logger.Info().Int("requested", len(args)).Int("cached", cached).Msg("warm finished")

			return c.Close()
		},
	}
}
