package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	midnight := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "midnight", in: midnight, want: "2024-01-05"},
		{name: "last second of day", in: time.Date(2024, 1, 5, 23, 59, 59, 999, time.UTC), want: "2024-01-05"},
		{name: "offset zone crosses into previous UTC day", in: time.Date(2024, 1, 5, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), want: "2024-01-04"},
		{name: "before epoch", in: time.Date(1969, 12, 31, 12, 0, 0, 0, time.UTC), want: "1969-12-31"},
		{name: "epoch", in: time.Unix(0, 0), want: "1970-01-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in).String())
		})
	}
}

func TestNormalize_SameDayCompareEqual(t *testing.T) {
	morning := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 10, 22, 30, 0, 0, time.UTC)
	next := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Normalize(morning), Normalize(evening))
	assert.Equal(t, Normalize(morning)+1, Normalize(next))
	assert.True(t, Normalize(morning).Time().Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeMillis(t *testing.T) {
	ts := time.Date(2024, 1, 5, 15, 4, 5, 0, time.UTC)

	testCases := []struct {
		name string
		ms   int64
		want Day
	}{
		{name: "afternoon", ms: ts.UnixMilli(), want: Normalize(ts)},
		{name: "epoch", ms: 0, want: 0},
		{name: "last millisecond before epoch", ms: -1, want: -1},
		{name: "pre-1970 afternoon", ms: time.Date(1969, 7, 20, 20, 17, 0, 0, time.UTC).UnixMilli(), want: Normalize(time.Date(1969, 7, 20, 0, 0, 0, 0, time.UTC))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeMillis(tc.ms))
		})
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", day.String())

	day, err = ParseDay("2024-13-01")
	assert.Error(t, err)
	assert.False(t, day.Valid())
	assert.Equal(t, "invalid", day.String())
}
