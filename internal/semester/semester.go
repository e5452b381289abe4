// Package semester defines the term window used to disambiguate years and
// bound weekly recurrence.
package semester

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the required input format for semester dates (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// Window bounds one academic term. Start and End are calendar dates at
// midnight with no time component, and Start never follows End.
type Window struct {
	Start time.Time
	End   time.Time
}

// FormatError reports a semester date that is not in MM/DD/YYYY form.
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected MM/DD/YYYY", e.Field, e.Value)
}

// ParseWindow builds a Window from two MM/DD/YYYY date strings. Both dates
// must parse and the end date must not precede the start date; any failure
// here is fatal to the conversion.
func ParseWindow(start, end string) (Window, error) {
	s, err := time.Parse(DateLayout, strings.TrimSpace(start))
	if err != nil {
		return Window{}, &FormatError{Field: "semester start date", Value: start}
	}

	e, err := time.Parse(DateLayout, strings.TrimSpace(end))
	if err != nil {
		return Window{}, &FormatError{Field: "semester end date", Value: end}
	}

	if e.Before(s) {
		return Window{}, fmt.Errorf("semester end %s precedes start %s", e.Format(DateLayout), s.Format(DateLayout))
	}

	return Window{Start: s, End: e}, nil
}
