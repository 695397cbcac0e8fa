package utils

import (
	"fmt"
	"strconv"
	"time"

	"ecb-rates/internal/domain/model"
)

// ParseDate accepts "2006-01-02", RFC 3339 or a millisecond Unix timestamp.
// Timestamps are truncated to the start of their UTC day.
func ParseDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, dateStr); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}
	if ms, err := strconv.ParseInt(dateStr, 10, 64); err == nil {
		return model.NormalizeMillis(ms).Time(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", dateStr)
}
