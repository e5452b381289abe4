package schedule

import (
	"strconv"
	"strings"
)

// ResolveTime interprets a time token into a TimeSpec. It never fails: the
// phrases "all-day"/"all day" and empty tokens yield an all-day spec, AM/PM
// markers are applied before numeric noise is stripped, and a token with no
// digits at all falls back to a 00:00-01:00 span.
func ResolveTime(token string) TimeSpec {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" || strings.Contains(t, "all-day") || strings.Contains(t, "all day") {
		return TimeSpec{AllDay: true}
	}

	parts := strings.Split(t, "-")
	start := parts[0]
	end := ""
	if len(parts) > 1 {
		end = parts[1]
	}

	spec := TimeSpec{}
	spec.StartHour, spec.StartMinute = parseClock(start)

	if eh, em, ok := parseClockOptional(end); ok {
		spec.EndHour, spec.EndMinute = eh, em
	} else {
		// Undeclared end defaults to one hour after the start. The hour is
		// not wrapped; a 23:30 start yields a 24:30 end.
		spec.EndHour = spec.StartHour + 1
		spec.EndMinute = spec.StartMinute
	}

	return spec
}

// parseClock reads a sub-token as HH:MM when a colon is present, or as a
// bare hour otherwise. A trailing am/pm marker shifts the hour into 24-hour
// form before any other text is discarded.
func parseClock(tok string) (hour, minute int) {
	pm := strings.Contains(tok, "p")
	am := strings.Contains(tok, "a")

	tok = stripTimeNoise(tok)
	if i := strings.Index(tok, ":"); i >= 0 {
		hour, _ = strconv.Atoi(tok[:i])
		minute, _ = strconv.Atoi(tok[i+1:])
	} else {
		hour, _ = strconv.Atoi(tok)
	}

	if pm && hour >= 1 && hour < 12 {
		hour += 12
	}
	if am && hour == 12 {
		hour = 0
	}
	return hour, minute
}

func parseClockOptional(tok string) (hour, minute int, ok bool) {
	if stripTimeNoise(tok) == "" {
		return 0, 0, false
	}
	hour, minute = parseClock(tok)
	return hour, minute, true
}

// stripTimeNoise drops everything except digits and colons.
func stripTimeNoise(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
