package schedule

import (
	"log/slog"
	"strings"

	"github.com/sahil-d-patel/AggieAce/internal/semester"
)

// DefaultLocation is used when a line carries no location field.
const DefaultLocation = "TBA"

// ParseLines converts a blob of extracted event text into event records.
// The input is untrusted and heterogeneous; lines that cannot be interpreted
// are logged and dropped, never fatal. The result preserves input order.
func ParseLines(text string, w semester.Window) []EventRecord {
	var events []EventRecord
	for _, line := range strings.Split(text, "\n") {
		if ev, ok := ParseLine(line, w); ok {
			events = append(events, ev)
		}
	}
	return events
}

// ParseLine parses a single raw record. The second return value is false
// when the line is empty, a comment or list marker, has an unrecognized
// delimiter, carries fewer than three fields, or names a date that cannot
// be resolved.
func ParseLine(line string, w semester.Window) (EventRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
		return EventRecord{}, false
	}

	var parts []string
	switch {
	case strings.Contains(line, "|"):
		parts = strings.Split(line, "|")
	case strings.Contains(line, "\t"):
		parts = strings.Split(line, "\t")
	default:
		slog.Debug("Skipping line with unrecognized format", "line", line)
		return EventRecord{}, false
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		slog.Debug("Skipping line with too few fields", "line", line, "fields", len(parts))
		return EventRecord{}, false
	}

	name, dateToken, timeToken := parts[0], parts[1], parts[2]
	location := DefaultLocation
	if len(parts) > 3 {
		location = parts[3]
	}

	spec := ResolveTime(timeToken)

	if days := DetectWeekdays(dateToken); len(days) > 0 {
		return EventRecord{
			Kind:            Recurring,
			Name:            name,
			Location:        location,
			Time:            spec,
			Days:            days,
			FirstOccurrence: FirstOccurrence(w.Start, days),
			RecurUntil:      w.End,
		}, true
	}

	date, ok := ResolveDate(dateToken, w)
	if !ok {
		slog.Warn("Skipping event with unresolvable date", "name", name, "date", dateToken)
		return EventRecord{}, false
	}

	return EventRecord{
		Kind:     Single,
		Name:     name,
		Location: location,
		Time:     spec,
		Date:     date,
	}, true
}
