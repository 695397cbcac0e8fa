package model

import (
	"math"
	"time"
)

const (
	secondsPerDay = int64(24 * time.Hour / time.Second)
	msPerDay      = int64(24 * time.Hour / time.Millisecond)
)

// Day is a calendar day in UTC, counted from the Unix epoch.
// It is the only key the rate cache and the fallback search use.
type Day int64

// InvalidDay never matches a lookup.
const InvalidDay Day = math.MinInt64

// Normalize truncates t to the UTC day that contains it.
func Normalize(t time.Time) Day {
	return Day(floorDiv(t.Unix(), secondsPerDay))
}

// NormalizeMillis is Normalize for a millisecond Unix timestamp.
func NormalizeMillis(ms int64) Day {
	return Day(floorDiv(ms, msPerDay))
}

// ParseDay reads a "2006-01-02" date as published by the feed.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return InvalidDay, err
	}
	return Normalize(t), nil
}

func (d Day) Valid() bool {
	return d != InvalidDay
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d Day) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return d.Time().Format(time.DateOnly)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
