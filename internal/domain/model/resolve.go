package model

import "fmt"

// DateIndex is a day-keyed view over rate tables: the long-lived cache
// or a batch that was just fetched.
type DateIndex interface {
	Lookup(day Day) (RateTable, bool)
	// Before returns the greatest day strictly earlier than day.
	Before(day Day) (Day, RateTable, bool)
}

// ResolveDate returns the table for day, or for the nearest earlier known day
// unless exactOnly is set. An exact entry always wins.
func ResolveDate(idx DateIndex, day Day, exactOnly bool) (Day, RateTable, error) {
	if !day.Valid() {
		return InvalidDay, nil, fmt.Errorf("%w: invalid date", ErrNoData)
	}

	if table, ok := idx.Lookup(day); ok {
		return day, table, nil
	}

	if !exactOnly {
		if prev, table, ok := idx.Before(day); ok {
			return prev, table, nil
		}
	}

	return InvalidDay, nil, fmt.Errorf("%w: %s", ErrNoData, day)
}
