package shell

import (
	"github.com/neexbeast/holiday-tracker/internal/holiday"
	"github.com/neexbeast/holiday-tracker/internal/store"
)

// Queries defines the store operations needed by the shell.
// *store.Store satisfies this interface.
type Queries interface {
	Years() []int
	ByYear(year int) ([]holiday.Holiday, error)
	ByDayMonth(day, month int) []store.Match
	ByName(text string) ([]store.Match, error)
	All() []store.YearGroup
}

var _ Queries = (*store.Store)(nil)
