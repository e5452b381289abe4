package schedule

import (
	"strings"
	"time"

	"github.com/sahil-d-patel/AggieAce/internal/semester"
)

// dateAttempt tries a single interpretation of a date token.
type dateAttempt func(token string, w semester.Window) (time.Time, bool)

// dateAttempts is tried in order; the first interpretation that succeeds
// wins. Year-less layouts infer the year from the semester window.
var dateAttempts = []dateAttempt{
	exactLayout("01/02/2006"),
	yearInferred("01/02"),
	exactLayout("January 2, 2006"),
	yearInferred("January 2"),
	yearInferred("Jan 2"),
}

// ResolveDate resolves a date token into a concrete calendar date. The
// second return value is false when no interpretation matches; callers treat
// that as "drop the event", never as a fatal error.
func ResolveDate(token string, w semester.Window) (time.Time, bool) {
	token = strings.TrimSpace(token)
	for _, attempt := range dateAttempts {
		if d, ok := attempt(token, w); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func exactLayout(layout string) dateAttempt {
	return func(token string, _ semester.Window) (time.Time, bool) {
		d, err := time.Parse(layout, token)
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	}
}

// yearInferred parses a layout with no year component and assigns the
// window's start year. If that lands before the window start, the end year
// is used instead, which handles terms spanning a calendar-year boundary.
func yearInferred(layout string) dateAttempt {
	return func(token string, w semester.Window) (time.Time, bool) {
		d, err := time.Parse(layout, token)
		if err != nil {
			return time.Time{}, false
		}
		resolved := time.Date(w.Start.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if resolved.Before(w.Start) {
			resolved = time.Date(w.End.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		}
		return resolved, true
	}
}
