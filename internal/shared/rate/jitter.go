package rate

import (
	"context"
	"errors"

	"go.uber.org/ratelimit"
)

// ErrStopped is returned by Wait once the jitter provider has exited.
var ErrStopped = errors.New("rate jitter stopped")

// Jitter turns a blocking ratelimit.Limiter into a channel of tokens,
// so that callers can give up waiting when their context is done.
type Jitter struct {
	ch    chan struct{}
	l     ratelimit.Limiter
	limit int
}

func NewJitter(ctx context.Context, limit int) *Jitter {
	brst := int(float64(limit) * 0.1)
	if brst < 1 {
		brst = 1
	}
	jitter := &Jitter{
		limit: limit,
		ch:    make(chan struct{}, brst),
		l:     ratelimit.New(limit),
	}
	go jitter.provider(ctx)
	return jitter
}

func (l *Jitter) provider(ctx context.Context) {
	defer close(l.ch)
	for {
		l.l.Take()
		select {
		case <-ctx.Done():
			return
		case l.ch <- struct{}{}:
		}
	}
}

func (l *Jitter) Take() {
	<-l.ch
}

// Wait blocks until a token is available or ctx is done.
func (l *Jitter) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-l.ch:
		if !ok {
			return ErrStopped
		}
		return nil
	}
}

func (l *Jitter) Chan() <-chan struct{} {
	return l.ch
}

func (l *Jitter) Limit() int {
	return l.limit
}
