package fetcher

//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/Borislavv/go-image-cache/config"
	"github.com/Borislavv/go-image-cache/internal/shared/rate"
	"github.com/rs/zerolog"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	ErrBodyTooLarge     = errors.New("upstream body exceeds limit")
	ErrEmptyBody        = errors.New("upstream body is empty")
	ErrHostNotAllowed   = errors.New("upstream host is not allowed")
)

// Fetcher retrieves the bytes behind a resource URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTP fetches images with plain GET requests.
type HTTP struct {
	cfg      *config.FetchCfg
	client   *http.Client
	limiter  *rate.Jitter // nil when unlimited
	logger   *zerolog.Logger
	counters *counters
}

// NewHTTP builds an HTTP fetcher. A nil client means a dedicated client with cfg.Timeout.
// The rate limiter, if any, stops with ctx.
func NewHTTP(ctx context.Context, cfg *config.FetchCfg, logger *zerolog.Logger, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	f := &HTTP{cfg: cfg, client: client, logger: logger, counters: newCounters()}
	if cfg.RatePerSec > 0 {
		f.limiter = rate.NewJitter(ctx, cfg.RatePerSec)
	}
	return f
}

func (f *HTTP) Fetch(ctx context.Context, url string) (data []byte, err error) {
	f.counters.fetches.Add(1)
	defer func() {
		if err != nil {
			f.counters.failures.Add(1)
		} else {
			f.counters.bytes.Add(int64(len(data)))
		}
	}()

	if err = f.checkHost(url); err != nil {
		return nil, err
	}

	if f.limiter != nil {
		if err = f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait fetch rate token: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "image/*,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, fmt.Errorf("%w: %s responded %d", ErrUnexpectedStatus, url, resp.StatusCode)
	}
	if f.cfg.MaxBodyBytes > 0 && resp.ContentLength > f.cfg.MaxBodyBytes {
		return nil, fmt.Errorf("%w: %s declares %d bytes", ErrBodyTooLarge, url, resp.ContentLength)
	}

	var body io.Reader = resp.Body
	if f.cfg.MaxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, f.cfg.MaxBodyBytes+1)
	}
	data, err = io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	if f.cfg.MaxBodyBytes > 0 && int64(len(data)) > f.cfg.MaxBodyBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrBodyTooLarge, url, f.cfg.MaxBodyBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBody, url)
	}

	f.logger.Debug().Str("url", url).Int("bytes", len(data)).Msg("image fetched")
	return data, nil
}

func (f *HTTP) checkHost(url string) error {
	if len(f.cfg.AllowedHosts) == 0 {
		return nil
	}
	u, err := neturl.Parse(url)
	if err != nil {
		return fmt.Errorf("parse %s: %w", url, err)
	}
	if !hostAllowed(u.Hostname(), f.cfg.AllowedHosts) {
		return fmt.Errorf("%w: %q", ErrHostNotAllowed, u.Hostname())
	}
	return nil
}

func hostAllowed(host string, allowed []string) bool {
	host = strings.ToLower(host)
	if host == "" {
		return false
	}
	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		if suffix, ok := strings.CutPrefix(pattern, "*."); ok {
			if strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == pattern {
			return true
		}
	}
	return false
}

// FetcherMetrics returns totals since start.
func (f *HTTP) FetcherMetrics() (fetches, failures, bytes int64) {
	return f.counters.snapshot()
}
