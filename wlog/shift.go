package wlog

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a 12-hour clock reading with no AM/PM marker.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ShiftEntry describes one candidate day's attendance as a morning range
// and an afternoon range.
type ShiftEntry struct {
	MorningIn    TimeOfDay
	MorningOut   TimeOfDay
	AfternoonIn  TimeOfDay
	AfternoonOut TimeOfDay
}

// TotalMinutes converts the two ranges into total minutes worked.
//
// The morning guard compares hours only, so equal hours with decreasing
// minutes (9:30 -> 9:00) contribute a negative total. The afternoon guard
// is a strict later-than check on (hour, minute) and contributes zero
// otherwise. The asymmetry is intentional and must stay.
func (s ShiftEntry) TotalMinutes() int {
	morning := 0
	if s.MorningOut.Hour >= s.MorningIn.Hour {
		morning = (s.MorningOut.Hour-s.MorningIn.Hour)*60 +
			(s.MorningOut.Minute - s.MorningIn.Minute)
	}

	afternoon := 0
	if s.AfternoonOut.Hour > s.AfternoonIn.Hour ||
		(s.AfternoonOut.Hour == s.AfternoonIn.Hour &&
			s.AfternoonOut.Minute > s.AfternoonIn.Minute) {
		afternoon = (s.AfternoonOut.Hour-s.AfternoonIn.Hour)*60 +
			(s.AfternoonOut.Minute - s.AfternoonIn.Minute)
	}

	return morning + afternoon
}

// ParseTimeOfDay reads "h:mm" on the 12-hour clock, hour 0-12 and minute
// 0-59.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("invalid time %q, want h:mm ex: 9:30", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 12 {
		return TimeOfDay{}, fmt.Errorf("invalid hour %q, want 0-12", hs)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute %q, want 0-59", ms)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}
