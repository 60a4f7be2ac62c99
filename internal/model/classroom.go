package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Booking is one committed reservation within a classroom's per-day ledger.
type Booking struct {
	Start      string
	End        string
	CourseCode string
}

// Classroom is identified by its (unique, non-empty) name. Capacity must be
// positive but is not checked against course sizes. Features are capability
// tags carried for persistence; the engine does not consume them.
// ScheduledTimes is the persisted per-day booking snapshot, kept sorted by
// start time.
type Classroom struct {
	Name           string
	Capacity       int
	AvailableTimes []TimeInterval
	Features       []string
	ScheduledTimes map[string][]Booking
}

func NewClassroom(name string, capacity int, availableTimes []TimeInterval, features []string) (*Classroom, error) {
	if name == "" {
		return nil, errors.New("classroom name must be non-empty")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("classroom %v: capacity must be positive", name)
	}
	for _, interval := range availableTimes {
		if err := validateInterval(interval); err != nil {
			return nil, fmt.Errorf("classroom %v: %w", name, err)
		}
	}
	return &Classroom{
		Name:           name,
		Capacity:       capacity,
		AvailableTimes: slices.Clone(availableTimes),
		Features:       slices.Clone(features),
		ScheduledTimes: make(map[string][]Booking),
	}, nil
}

// AddAvailableTime appends a declared availability window.
func (c *Classroom) AddAvailableTime(day, start, end string) error {
	interval := TimeInterval{Day: day, Start: start, End: end}
	if err := validateInterval(interval); err != nil {
		return fmt.Errorf("classroom %v: %w", c.Name, err)
	}
	c.AvailableTimes = append(c.AvailableTimes, interval)
	return nil
}

// AddFeature records a capability tag.
func (c *Classroom) AddFeature(feature string) {
	if !slices.Contains(c.Features, feature) {
		c.Features = append(c.Features, feature)
	}
}

// IsAvailable reports whether some declared window fully contains
// [start, end) on day and no booking in the classroom's snapshot overlaps
// the request.
func (c *Classroom) IsAvailable(day, start, end string) bool {
	declared := lo.SomeBy(c.AvailableTimes, func(interval TimeInterval) bool {
		return interval.Contains(day, start, end)
	})
	if !declared {
		return false
	}
	for _, booking := range c.ScheduledTimes[day] {
		if Overlaps(start, end, booking.Start, booking.End) {
			return false
		}
	}
	return true
}

// ScheduleClass commits [start, end) for a course into the classroom's
// booking snapshot. It re-validates availability and reports false, leaving
// the snapshot untouched, when the window cannot be booked.
func (c *Classroom) ScheduleClass(day, start, end, courseCode string) bool {
	if !c.IsAvailable(day, start, end) {
		return false
	}
	if c.ScheduledTimes == nil {
		c.ScheduledTimes = make(map[string][]Booking)
	}
	c.ScheduledTimes[day] = append(c.ScheduledTimes[day], Booking{Start: start, End: end, CourseCode: courseCode})
	slices.SortFunc(c.ScheduledTimes[day], func(a, b Booking) int {
		return strings.Compare(a.Start, b.Start)
	})
	return true
}

func (c *Classroom) String() string {
	return fmt.Sprintf("Classroom: %v (Capacity: %v)", c.Name, c.Capacity)
}
