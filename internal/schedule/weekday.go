package schedule

import (
	"strings"
	"time"
)

// weekdayNames maps day names and multi-letter abbreviations to day codes,
// in a fixed order so detection is deterministic.
var weekdayNames = []struct {
	name string
	code Weekday
}{
	{"monday", Monday}, {"mon", Monday},
	{"tuesday", Tuesday}, {"tues", Tuesday}, {"tue", Tuesday}, {"tu", Tuesday},
	{"wednesday", Wednesday}, {"wed", Wednesday},
	{"thursday", Thursday}, {"thurs", Thursday}, {"thu", Thursday}, {"th", Thursday},
	{"friday", Friday}, {"fri", Friday},
	{"saturday", Saturday}, {"sat", Saturday},
	{"sunday", Sunday}, {"sun", Sunday}, {"su", Sunday},
}

// letterCodes are the single-letter day forms (R is Thursday, U is Sunday).
// They only match inside compact day groups like "MWF" or "TR"; matching
// them as free substrings would misread tokens like "TBA".
var letterCodes = map[rune]Weekday{
	'm': Monday,
	't': Tuesday,
	'w': Wednesday,
	'r': Thursday,
	'f': Friday,
	's': Saturday,
	'u': Sunday,
}

var dayIndex = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

// DetectWeekdays finds weekday codes named in a date token. Matching is
// case-insensitive and runs per word (words are maximal letter runs): a word
// either starts with a day name or abbreviation, or is a compact group of
// single-letter day codes. Duplicates are dropped and the result preserves
// first-match order. A non-empty result marks the token as describing a
// weekly recurring event.
func DetectWeekdays(token string) []Weekday {
	var days []Weekday
	seen := make(map[Weekday]bool)

	add := func(d Weekday) {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	for _, word := range letterWords(strings.ToLower(token)) {
		if code, ok := matchName(word); ok {
			add(code)
			continue
		}
		if codes, ok := matchLetterGroup(word); ok {
			for _, c := range codes {
				add(c)
			}
		}
	}

	return days
}

func matchName(word string) (Weekday, bool) {
	for _, e := range weekdayNames {
		if strings.HasPrefix(word, e.name) {
			return e.code, true
		}
	}
	return "", false
}

func matchLetterGroup(word string) ([]Weekday, bool) {
	codes := make([]Weekday, 0, len(word))
	for _, r := range word {
		c, ok := letterCodes[r]
		if !ok {
			return nil, false
		}
		codes = append(codes, c)
	}
	return codes, len(codes) > 0
}

// letterWords splits a token into maximal runs of letters.
func letterWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'))
	})
}

// FirstOccurrence returns the first date on or after start that falls on any
// of the given weekdays, scanning forward at most seven days. Every week
// contains every weekday, so the scan always lands for a well-formed day
// set; start itself is the fallback for an empty or unknown set.
func FirstOccurrence(start time.Time, days []Weekday) time.Time {
	want := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		if wd, ok := dayIndex[d]; ok {
			want[wd] = true
		}
	}
	if len(want) == 0 {
		return start
	}

	cur := start
	for i := 0; i < 7; i++ {
		if want[cur.Weekday()] {
			return cur
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return start
}
