package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the holidays of one country for one year.
// Client and CachedFetcher satisfy it.
type Fetcher interface {
	Fetch(ctx context.Context, year int, country string) ([]Holiday, error)
}

// Result is the outcome of a Load. Every requested year has an entry in
// Holidays; years that failed map to an empty slice and have an entry in Failures.
type Result struct {
	Holidays map[int][]Holiday
	Failures map[int]error
}

// Loader fetches the configured years for a single country.
type Loader struct {
	fetcher     Fetcher
	country     string
	concurrency int
	log         *slog.Logger
}

// NewLoader constructs a Loader. A concurrency below 1 is treated as 1
// (strictly sequential fetching).
func NewLoader(fetcher Fetcher, country string, concurrency int, log *slog.Logger) *Loader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Loader{fetcher: fetcher, country: country, concurrency: concurrency, log: log}
}

// Load fetches every year once. Failures are per year and non-fatal: the
// remaining years are still fetched and the failed year is stored empty.
func (l *Loader) Load(ctx context.Context, years []int) Result {
	res := Result{
		Holidays: make(map[int][]Holiday, len(years)),
		Failures: make(map[int]error),
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for _, year := range years {
		year := year // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			holidays, err := l.fetchYear(gCtx, year)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.log.Warn("holiday fetch failed", "year", year, "country", l.country, "err", err)
				res.Holidays[year] = []Holiday{}
				res.Failures[year] = err
				return nil
			}
			l.log.Info("holidays loaded", "year", year, "country", l.country, "count", len(holidays))
			res.Holidays[year] = holidays
			return nil
		})
	}

	// Per-year errors are collected in res; the group itself never fails.
	_ = g.Wait()

	return res
}

func (l *Loader) fetchYear(ctx context.Context, year int) (holidays []Holiday, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("holiday fetch panicked", "year", year, "recover", r)
			holidays, err = nil, fmt.Errorf("holiday fetch for %d panicked: %v", year, r)
		}
	}()
	return l.fetcher.Fetch(ctx, year, l.country)
}
