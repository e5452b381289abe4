package schedule

import "testing"

func TestResolveTime(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  TimeSpec
	}{
		{"range", "11:30-12:30", TimeSpec{StartHour: 11, StartMinute: 30, EndHour: 12, EndMinute: 30}},
		{"evening range", "19:00-21:00", TimeSpec{StartHour: 19, StartMinute: 0, EndHour: 21, EndMinute: 0}},
		{"single time defaults to one hour", "14:15", TimeSpec{StartHour: 14, StartMinute: 15, EndHour: 15, EndMinute: 15}},
		{"bare hour", "19", TimeSpec{StartHour: 19, EndHour: 20}},
		{"bare hour range", "9-11", TimeSpec{StartHour: 9, EndHour: 11}},
		{"pm markers", "7:00 PM-9:00 PM", TimeSpec{StartHour: 19, StartMinute: 0, EndHour: 21, EndMinute: 0}},
		{"am noon boundary", "12:00 AM", TimeSpec{StartHour: 0, StartMinute: 0, EndHour: 1, EndMinute: 0}},
		{"pm noon stays noon", "12:00 PM-1:30 PM", TimeSpec{StartHour: 12, StartMinute: 0, EndHour: 13, EndMinute: 30}},
		{"noise stripped", "at 19:00 (sharp)", TimeSpec{StartHour: 19, StartMinute: 0, EndHour: 20, EndMinute: 0}},
		// Undeclared end after a late start: the hour is not wrapped.
		{"late start overflows end hour", "23:59", TimeSpec{StartHour: 23, StartMinute: 59, EndHour: 24, EndMinute: 59}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveTime(tc.token); got != tc.want {
				t.Errorf("ResolveTime(%q) = %+v, want %+v", tc.token, got, tc.want)
			}
		})
	}
}

func TestResolveTimeAllDay(t *testing.T) {
	for _, token := range []string{"all-day", "all day", "ALL DAY", "All-Day", " all-day ", ""} {
		got := ResolveTime(token)
		if !got.AllDay {
			t.Errorf("ResolveTime(%q).AllDay = false, want true", token)
		}
	}
}

// A token with no digits at all resolves to a 00:00-01:00 span. This is the
// documented fallback for unparseable times, not a silent mask.
func TestResolveTimeNoDigitsFallback(t *testing.T) {
	want := TimeSpec{StartHour: 0, StartMinute: 0, EndHour: 1, EndMinute: 0}
	for _, token := range []string{"noon", "TBD", "??"} {
		if got := ResolveTime(token); got != want {
			t.Errorf("ResolveTime(%q) = %+v, want fallback %+v", token, got, want)
		}
	}
}
