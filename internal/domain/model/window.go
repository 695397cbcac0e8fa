package model

import "time"

// RecentWindowSpan is how far back the trailing feed reaches.
const RecentWindowSpan = 90 * 24 * time.Hour

// Window is one of the upstream feed scopes. Fetches are deduplicated per window.
type Window int

const (
	WindowCurrent Window = iota
	WindowRecent
	WindowFull
)

var Windows = []Window{WindowCurrent, WindowRecent, WindowFull}

func (w Window) String() string {
	switch w {
	case WindowCurrent:
		return "current"
	case WindowRecent:
		return "recent"
	case WindowFull:
		return "full"
	}
	return "unknown"
}

// SelectWindow picks the smallest feed that can contain day.
func SelectWindow(day Day, current bool, now time.Time, recentSpan time.Duration) Window {
	if current {
		return WindowCurrent
	}
	if now.Sub(day.Time()) < recentSpan {
		return WindowRecent
	}
	return WindowFull
}
