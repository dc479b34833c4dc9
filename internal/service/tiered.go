package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"artemisops/internal/cache"
	"artemisops/internal/domain"
)

// tiered serves a fresh cache hit, else the upstream value, else a stale
// cache hit, else ErrUnavailable.
func tiered[V any](
	ctx context.Context,
	c *cache.TTL[string, *V],
	key string,
	fetch func(context.Context) (*V, error),
	logger *slog.Logger,
) (*V, domain.CacheInfo, error) {
	if v, age, ok := c.Get(key); ok {
		return v, domain.CacheInfo{Cached: true, CacheAgeSeconds: ageSeconds(age)}, nil
	}

	v, err := fetch(ctx)
	if err == nil {
		c.Set(key, v)
		return v, domain.CacheInfo{}, nil
	}
	logger.Warn("upstream fetch failed", "error", err)

	if v, age, ok := c.Stale(key); ok {
		return v, domain.CacheInfo{Cached: true, Stale: true, CacheAgeSeconds: ageSeconds(age)}, nil
	}
	return nil, domain.CacheInfo{}, domain.ErrUnavailable
}

func ageSeconds(d time.Duration) *float64 {
	v := math.Round(d.Seconds()*10) / 10
	return &v
}
