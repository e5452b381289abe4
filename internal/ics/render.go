// Package ics renders event records into an iCalendar v2.0 document and
// checks the result for structural well-formedness.
package ics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/sahil-d-patel/AggieAce/internal/schedule"
)

// ErrEmptyInput is returned when there are no events to render. A calendar
// with zero events is a failed conversion, not a valid degenerate output.
var ErrEmptyInput = errors.New("no events to render")

const (
	productID = "-//AggieAce//Syllabus Converter//EN"
	uidSuffix = "@aggieace.converter"

	dateLayout = "20060102"
)

// Meta carries the calendar-level fields stamped into the rendered document.
// The timezone is informational only; event times stay floating.
type Meta struct {
	CalendarName string
	Timezone     string
}

// Render serializes event records, in input order, into a complete
// iCalendar document. Each event gets a fresh UUID-based UID; all events
// share one generation timestamp captured at the start of the call.
func Render(events []schedule.EventRecord, meta Meta) (string, error) {
	if len(events) == 0 {
		return "", ErrEmptyInput
	}

	cal := ical.NewCalendar()
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")
	cal.SetProductId(productID)
	cal.SetXWRTimezone(meta.Timezone)
	cal.SetXWRCalName(escapeText(meta.CalendarName))

	stamp := time.Now().UTC()

	for _, ev := range events {
		ve := cal.AddEvent(uuid.NewString() + uidSuffix)
		ve.SetDtStampTime(stamp)
		ve.SetProperty(ical.ComponentPropertySummary, escapeText(meta.CalendarName)+" - "+escapeText(ev.Name))
		ve.SetProperty(ical.ComponentPropertyLocation, escapeText(ev.Location))
		ve.SetStatus(ical.ObjectStatusConfirmed)

		switch ev.Kind {
		case schedule.Recurring:
			setSpan(ve, ev.FirstOccurrence, ev.Time)
			ve.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%sT235959",
				joinDays(ev.Days), ev.RecurUntil.Format(dateLayout)))
			ve.SetProperty(ical.ComponentPropertyDescription, "Recurring "+escapeText(ev.Name))
		case schedule.Single:
			setSpan(ve, ev.Date, ev.Time)
			ve.SetProperty(ical.ComponentPropertyDescription, escapeText(ev.Name))
		}
	}

	return cal.Serialize(), nil
}

// setSpan writes DTSTART/DTEND. All-day events use date-only values with an
// exclusive next-day end; timed events combine the date with the resolved
// wall-clock span as floating local time.
func setSpan(ve *ical.VEvent, date time.Time, ts schedule.TimeSpec) {
	if ts.AllDay {
		ve.SetAllDayStartAt(date)
		ve.SetAllDayEndAt(date.AddDate(0, 0, 1))
		return
	}

	day := date.Format(dateLayout)
	ve.SetProperty(ical.ComponentPropertyDtStart, fmt.Sprintf("%sT%02d%02d00", day, ts.StartHour, ts.StartMinute))
	ve.SetProperty(ical.ComponentPropertyDtEnd, fmt.Sprintf("%sT%02d%02d00", day, ts.EndHour, ts.EndMinute))
}

func joinDays(days []schedule.Weekday) string {
	codes := make([]string, len(days))
	for i, d := range days {
		codes[i] = string(d)
	}
	return strings.Join(codes, ",")
}

// escapeText escapes text property values per RFC 5545. Backslashes go
// first so characters introduced by the later substitutions are not escaped
// twice.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
