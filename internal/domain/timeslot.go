package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// SessionDurations is the fixed set of bookable session lengths in minutes.
var SessionDurations = []int{30, 60, 90, 120}

func ValidDuration(minutes int) bool {
	for _, d := range SessionDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether two half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect. Abutting windows do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// OperatingHours bounds every bookable window. The venue does not
// operate across midnight.
type OperatingHours struct {
	OpenMin  int
	CloseMin int
}

func (h OperatingHours) Contains(startMin, endMin int) bool {
	return startMin >= h.OpenMin && endMin <= h.CloseMin && startMin < endMin
}
