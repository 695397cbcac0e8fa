package model

import (
	"testing"
	"time"
)

func TestSelectWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	today := Normalize(now)

	testCases := []struct {
		name    string
		day     Day
		current bool
		want    Window
	}{
		{name: "current date", day: today, current: true, want: WindowCurrent},
		{name: "current flag wins over old day", day: today - 400, current: true, want: WindowCurrent},
		{name: "explicit today", day: today, want: WindowRecent},
		{name: "yesterday", day: today - 1, want: WindowRecent},
		{name: "89 days ago", day: today - 89, want: WindowRecent},
		{name: "90 days ago midnight is past the span at noon", day: today - 90, want: WindowFull},
		{name: "a year ago", day: today - 365, want: WindowFull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectWindow(tc.day, tc.current, now, RecentWindowSpan)
			if got != tc.want {
				t.Errorf("Expected window: %s, got: %s", tc.want, got)
			}
		})
	}
}

func TestWindow_StringIsDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range Windows {
		key := w.String()
		if seen[key] {
			t.Fatalf("duplicate window key %q", key)
		}
		seen[key] = true
	}
}
