package ics

import (
	"fmt"
	"strings"
)

// ValidationError reports a structural problem in a rendered calendar. A
// document that fails validation must never be written to output.
type ValidationError struct {
	Element string
	Reason  string
}

func (e *ValidationError) Error() string {
	return "invalid calendar: " + e.Reason
}

var requiredMarkers = []string{
	"BEGIN:VCALENDAR",
	"VERSION:2.0",
	"CALSCALE:GREGORIAN",
	"END:VCALENDAR",
}

// Validate checks that a rendered calendar is well-formed: the mandatory
// header and footer markers are present, at least one event block exists,
// and every event block opens and closes.
func Validate(text string) error {
	for _, m := range requiredMarkers {
		if !strings.Contains(text, m) {
			return &ValidationError{Element: m, Reason: fmt.Sprintf("missing required element %q", m)}
		}
	}

	begins := strings.Count(text, "BEGIN:VEVENT")
	ends := strings.Count(text, "END:VEVENT")
	if begins == 0 || ends == 0 {
		return &ValidationError{Element: "VEVENT", Reason: "no events found"}
	}
	if begins != ends {
		return &ValidationError{
			Element: "VEVENT",
			Reason:  fmt.Sprintf("mismatched VEVENT markers: %d BEGIN, %d END", begins, ends),
		}
	}

	return nil
}
