package model

import (
	"fmt"
	"slices"
)

// Days of the teaching week, in display order. Scheduling logic treats them
// as opaque labels; only rendering cares about this ordering.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeInterval is a half-open interval [Start, End) on a given day. Start and
// End are zero-padded 24-hour "HH:MM" strings, so chronological comparisons
// reduce to plain lexicographic string comparisons.
type TimeInterval struct {
	Day   string
	Start string
	End   string
}

// Contains reports whether the interval fully contains [start, end) on day.
// Partial overlap is not containment.
func (t TimeInterval) Contains(day, start, end string) bool {
	return t.Day == day && t.Start <= start && t.End >= end
}

// Overlaps reports whether two same-day windows [startA, endA) and
// [startB, endB) intersect. Touching endpoints do not overlap.
func Overlaps(startA, endA, startB, endB string) bool {
	return !(endA <= startB || startA >= endB)
}

// ValidDay reports whether day names one of the five teaching days.
func ValidDay(day string) bool {
	return slices.Contains(Days, day)
}

// AddMinutes returns the "HH:MM" clock time minutes after start.
func AddMinutes(start string, minutes int) (string, error) {
	hours, mins, err := parseClock(start)
	if err != nil {
		return "", err
	}
	total := hours*60 + mins + minutes
	if total >= 24*60 {
		return "", fmt.Errorf("%v + %vmin runs past midnight", start, minutes)
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// parseClock accepts only the zero-padded "HH:MM" form, since the model's
// lexicographic comparisons are correct only over that representation.
func parseClock(value string) (hours, minutes int, err error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, 0, fmt.Errorf("malformed clock time %q", value)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, 0, fmt.Errorf("malformed clock time %q", value)
		}
	}
	hours = int(value[0]-'0')*10 + int(value[1]-'0')
	minutes = int(value[3]-'0')*10 + int(value[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, 0, fmt.Errorf("clock time out of range: %q", value)
	}
	return hours, minutes, nil
}

func validateInterval(interval TimeInterval) error {
	if !ValidDay(interval.Day) {
		return fmt.Errorf("%q is not a valid day", interval.Day)
	}
	if _, _, err := parseClock(interval.Start); err != nil {
		return err
	}
	if _, _, err := parseClock(interval.End); err != nil {
		return err
	}
	if interval.Start >= interval.End {
		return fmt.Errorf("interval start %v must precede end %v", interval.Start, interval.End)
	}
	return nil
}
