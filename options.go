package imgcache

import (
	"context"
	"net/http"

	"github.com/benbjohnson/clock"
)

// Fetcher retrieves the bytes behind a resource URL. Any error degrades the
// preload to the original URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Option func(o *options)

type options struct {
	clock   clock.Clock
	fetcher Fetcher
	client  *http.Client
}

func newOptions(opts ...Option) *options {
	o := &options{clock: clock.New()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithClock replaces the wall clock used for expiry, scoring and sweeps.
func WithClock(clk clock.Clock) Option {
	return func(o *options) {
		if clk != nil {
			o.clock = clk
		}
	}
}

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// WithHTTPClient sets the client used by the default HTTP fetcher.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.client = client }
}
