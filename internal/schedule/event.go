// Package schedule turns extracted event text into typed event records,
// resolving dates and times against a semester window.
package schedule

import "time"

// Kind discriminates the two event variants.
type Kind int

const (
	// Single is an event with one concrete date.
	Single Kind = iota
	// Recurring is an event repeating weekly on one or more weekdays.
	Recurring
)

// Weekday is the two-letter iCalendar day code used in recurrence rules.
type Weekday string

const (
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
	Sunday    Weekday = "SU"
)

// TimeSpec is the resolved wall-clock span of an event. When AllDay is set
// the hour and minute fields are meaningless. The end hour may exceed 23
// when an undeclared end is derived from a late start.
type TimeSpec struct {
	AllDay      bool
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// EventRecord is a tagged union over single and recurring events. Kind
// selects which variant-specific fields are meaningful: Date for Single;
// Days, FirstOccurrence and RecurUntil for Recurring. Records are only ever
// built with concrete dates; lines that cannot be resolved are dropped by
// the parser before a record exists.
type EventRecord struct {
	Kind     Kind
	Name     string
	Location string
	Time     TimeSpec

	// Single
	Date time.Time

	// Recurring
	Days            []Weekday
	FirstOccurrence time.Time
	RecurUntil      time.Time
}
