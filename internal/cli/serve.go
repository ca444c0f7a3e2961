package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	imgcache "github.com/Borislavv/go-image-cache"
	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultAddr keeps the API, which fetches client-supplied URLs, off public interfaces.
const defaultAddr = "127.0.0.1:8080"

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cache behind an HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			addr := v.GetString("addr")
			if len(cfg.Fetch.AllowedHosts) == 0 {
				logger.Warn().Msg("fetch.allowed_hosts is empty, any upstream host a client names will be fetched")
			}
			if cfg.Handles.BaseURL == config.DefaultHandleBaseURL {
				cfg.Handles.BaseURL = blobBaseURL(addr)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c := imgcache.New(ctx, cfg, logger)
			defer func() {
				if cerr := c.Close(); cerr != nil {
					logger.Error().Err(cerr).Msg("closing cache failed")
				}
			}()

			logger.Info().
				Str("addr", addr).
				Str("base_url", cfg.Handles.BaseURL).
				Int("max_entries", cfg.DB.MaxEntries).
				Dur("max_age", cfg.DB.MaxAge).
				Msg("starting image cache")

			return server.New(c, logger, cfg.DB.MaxAge).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().String("addr", defaultAddr, "listen address; use \":8080\" to listen on every interface")
	_ = v.BindPFlag("addr", cmd.Flags().Lookup("addr"))

	return cmd
}

// blobBaseURL points handles at the /blob/ route of the listener.
func blobBaseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Sprintf("http://%s/blob/", addr)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/blob/", net.JoinHostPort(host, port))
}
