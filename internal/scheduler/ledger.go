package scheduler

import (
	"slices"
	"strings"

	"unischeduler/internal/model"
)

// ledger is the booking table owned by one engine run: classroom name → day
// → committed bookings sorted by start time. It is seeded from each
// classroom's persisted snapshot and is the only state the run mutates, so
// the long-lived classroom records stay untouched and concurrent test runs
// stay isolated.
type ledger map[string]map[string][]model.Booking

func newLedger(classrooms []*model.Classroom) ledger {
	l := make(ledger, len(classrooms))
	for _, classroom := range classrooms {
		days := make(map[string][]model.Booking, len(classroom.ScheduledTimes))
		for day, bookings := range classroom.ScheduledTimes {
			days[day] = slices.Clone(bookings)
		}
		l[classroom.Name] = days
	}
	return l
}

// available reports whether the classroom's declared windows fully contain
// [start, end) on day and no booking in the run ledger overlaps it.
func (l ledger) available(classroom *model.Classroom, day, start, end string) bool {
	declared := false
	for _, interval := range classroom.AvailableTimes {
		if interval.Contains(day, start, end) {
			declared = true
			break
		}
	}
	if !declared {
		return false
	}
	for _, booking := range l[classroom.Name][day] {
		if model.Overlaps(start, end, booking.Start, booking.End) {
			return false
		}
	}
	return true
}

// book commits [start, end) for a course, re-validating availability first.
// It reports false and leaves the ledger untouched when the window cannot be
// booked. Bookings are never rolled back.
func (l ledger) book(classroom *model.Classroom, day, start, end, courseCode string) bool {
	if !l.available(classroom, day, start, end) {
		return false
	}
	bookings := append(l[classroom.Name][day], model.Booking{Start: start, End: end, CourseCode: courseCode})
	slices.SortFunc(bookings, func(a, b model.Booking) int {
		return strings.Compare(a.Start, b.Start)
	})
	l[classroom.Name][day] = bookings
	return true
}

// snapshot returns a deep copy of the ledger in the classroom snapshot
// shape, suitable for writing back onto classroom records before persisting.
func (l ledger) snapshot() map[string]map[string][]model.Booking {
	result := make(map[string]map[string][]model.Booking, len(l))
	for name, days := range l {
		copied := make(map[string][]model.Booking, len(days))
		for day, bookings := range days {
			copied[day] = slices.Clone(bookings)
		}
		result[name] = copied
	}
	return result
}
