package geocode

import (
	"context"
	"log/slog"
	"time"

	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// Resolution is the per-record outcome. Degraded results keep the
// normalized raw address with nil coordinates; the record still flows
// through identity and merge.
type Resolution struct {
	AddrStd  string
	Lat      *float64
	Lng      *float64
	Degraded bool
}

// Resolver normalizes addresses and resolves them through the injected
// Client, memoized in the injected Cache. No module-level state: tests
// supply a fake client and a fresh cache.
type Resolver struct {
	client      Client
	cache       *Cache
	logger      *slog.Logger
	maxAttempts int
	backoffBase time.Duration
}

func NewResolver(client Client, cache *Cache, maxAttempts int, backoffBase time.Duration, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if backoffBase <= 0 {
		backoffBase = 500 * time.Millisecond
	}
	return &Resolver{
		client:      client,
		cache:       cache,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
	}
}

// Resolve geocodes one raw address. The error, when non-nil, is a
// *common.GeocodeError and the Resolution is still usable (degraded).
func (r *Resolver) Resolve(ctx context.Context, rawAddress string) (Resolution, error) {
	key := NormalizeAddress(rawAddress)
	if key == "" {
		return Resolution{AddrStd: "", Degraded: true}, &common.GeocodeError{Address: rawAddress, Attempts: 0, Cause: common.ErrInvalidInput}
	}

	res, err := r.cache.Do(ctx, key, func(ctx context.Context) (Result, error) {
		return r.lookupWithRetry(ctx, key)
	})
	if err != nil {
		return Resolution{AddrStd: key, Degraded: true}, &common.GeocodeError{Address: key, Attempts: r.maxAttempts, Cause: err}
	}
	if !res.Found {
		// The service answered; it just has no match. Keep the
		// normalized address, no coordinates, not an error.
		return Resolution{AddrStd: key, Degraded: true}, nil
	}
	lat, lng := res.Lat, res.Lng
	return Resolution{AddrStd: res.AddrStd, Lat: &lat, Lng: &lng}, nil
}

func (r *Resolver) lookupWithRetry(ctx context.Context, address string) (Result, error) {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		res, err := r.client.Geocode(ctx, address)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !IsTransient(err) || attempt == r.maxAttempts {
			break
		}
		delay := r.backoffBase << (attempt - 1)
		r.logger.Warn("geocode.retry",
			"address", address,
			"attempt", attempt,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}
	return Result{}, lastErr
}
