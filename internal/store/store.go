package store

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/neexbeast/holiday-tracker/internal/holiday"
)

// Query errors
var (
	ErrYearNotConfigured = errors.New("year is not configured")
	ErrEmptyQuery        = errors.New("search text cannot be empty")
)

// Match is a holiday returned by a cross-year search, tagged with its store year.
type Match struct {
	Year int
	holiday.Holiday
}

// YearGroup holds the holidays of one configured year.
type YearGroup struct {
	Year     int
	Holidays []holiday.Holiday
}

// entry is a stored holiday with its date parsed once.
type entry struct {
	h      holiday.Holiday
	date   time.Time
	parsed bool
}

// Store is the in-memory holiday collection keyed by year. It is built once by
// New and has no mutating methods, so it is safe for concurrent reads.
type Store struct {
	years  []int
	byYear map[int][]entry
}

// New builds a Store for the configured years. Years missing from data are
// stored empty; data for years outside the configured set is ignored.
func New(years []int, data map[int][]holiday.Holiday) *Store {
	ys := slices.Clone(years)
	slices.Sort(ys)
	ys = slices.Compact(ys)

	byYear := make(map[int][]entry, len(ys))
	for _, y := range ys {
		src := data[y]
		entries := make([]entry, 0, len(src))
		for _, h := range src {
			d, ok := holiday.ParseDate(h.Date)
			entries = append(entries, entry{h: h, date: d, parsed: ok})
		}
		// Stable so holidays sharing a date keep upstream order.
		slices.SortStableFunc(entries, func(a, b entry) int {
			return strings.Compare(a.h.Date, b.h.Date)
		})
		byYear[y] = entries
	}

	return &Store{years: ys, byYear: byYear}
}

// Years returns the configured years in ascending order.
func (s *Store) Years() []int {
	return slices.Clone(s.years)
}

// Has reports whether year is configured.
func (s *Store) Has(year int) bool {
	_, ok := s.byYear[year]
	return ok
}

// ByYear returns the holidays of year sorted by date. A configured year with
// no data yields an empty slice; an unconfigured year yields ErrYearNotConfigured.
func (s *Store) ByYear(year int) ([]holiday.Holiday, error) {
	entries, ok := s.byYear[year]
	if !ok {
		return nil, ErrYearNotConfigured
	}
	return holidays(entries), nil
}

// ByDayMonth returns the holidays in any configured year that fall on the
// given day and month. Records with an unparsable date never match. Inputs are
// not range checked.
func (s *Store) ByDayMonth(day, month int) []Match {
	return s.scan(func(e entry) bool {
		return e.parsed && e.date.Day() == day && int(e.date.Month()) == month
	})
}

// ByName returns holidays whose local or English name contains text,
// ignoring case. Blank text yields ErrEmptyQuery.
func (s *Store) ByName(text string) ([]Match, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil, ErrEmptyQuery
	}
	return s.scan(func(e entry) bool {
		return strings.Contains(strings.ToLower(e.h.LocalName), needle) ||
			strings.Contains(strings.ToLower(e.h.Name), needle)
	}), nil
}

// All returns one group per configured year in ascending order. Years without
// data are present with an empty slice.
func (s *Store) All() []YearGroup {
	groups := make([]YearGroup, 0, len(s.years))
	for _, y := range s.years {
		groups = append(groups, YearGroup{Year: y, Holidays: holidays(s.byYear[y])})
	}
	return groups
}

// scan walks years ascending and entries by date, so results come out ordered
// by year then date.
func (s *Store) scan(keep func(entry) bool) []Match {
	matches := []Match{}
	for _, y := range s.years {
		for _, e := range s.byYear[y] {
			if keep(e) {
				matches = append(matches, Match{Year: y, Holiday: e.h})
			}
		}
	}
	return matches
}

func holidays(entries []entry) []holiday.Holiday {
	out := make([]holiday.Holiday, len(entries))
	for i, e := range entries {
		out[i] = e.h
	}
	return out
}
