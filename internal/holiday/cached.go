package holiday

import (
	"context"
	"log/slog"
)

// YearCache is the cache interface satisfied by cache.Cache.
type YearCache interface {
	Get(ctx context.Context, country string, year int) ([]Holiday, error)
	Set(ctx context.Context, country string, year int, holidays []Holiday) error
}

// CachedFetcher serves year lookups from a YearCache and falls back to the
// wrapped fetcher on a miss. Cache failures are logged and never returned.
type CachedFetcher struct {
	next  Fetcher
	cache YearCache
	log   *slog.Logger
}

// NewCachedFetcher wraps next with cache.
func NewCachedFetcher(next Fetcher, cache YearCache, log *slog.Logger) *CachedFetcher {
	return &CachedFetcher{next: next, cache: cache, log: log}
}

// Fetch implements Fetcher.
func (f *CachedFetcher) Fetch(ctx context.Context, year int, country string) ([]Holiday, error) {
	cached, err := f.cache.Get(ctx, country, year)
	if err != nil {
		f.log.Warn("cache get failed", "year", year, "country", country, "err", err)
	}
	if cached != nil {
		f.log.Debug("cache hit", "year", year, "country", country)
		return cached, nil
	}

	holidays, err := f.next.Fetch(ctx, year, country)
	if err != nil {
		return nil, err
	}

	if err := f.cache.Set(ctx, country, year, holidays); err != nil {
		f.log.Warn("cache set failed", "year", year, "country", country, "err", err)
	}

	return holidays, nil
}
