package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ScheduleEntry is one immutable commitment of a course to a professor, a
// classroom and a weekly time window. EndTime is StartTime plus the course
// duration, computed once at placement.
type ScheduleEntry struct {
	CourseCode    string
	ProfessorName string
	ClassroomName string
	Day           string
	StartTime     string
	EndTime       string
}

func (e ScheduleEntry) String() string {
	return fmt.Sprintf("%v - %v, %v-%v, Room: %v, Prof: %v",
		e.CourseCode, e.Day, e.StartTime, e.EndTime, e.ClassroomName, e.ProfessorName)
}

// Schedule is the append-only sequence of committed entries built by one
// engine run. It guards against professor and classroom double-booking via
// HasConflict; declared course conflicts are the engine's concern.
type Schedule struct {
	Entries []ScheduleEntry
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddEntry appends an entry. Callers are expected to have consulted
// HasConflict first; the schedule itself never rejects.
func (s *Schedule) AddEntry(entry ScheduleEntry) {
	s.Entries = append(s.Entries, entry)
}

// EntriesByDay returns the entries committed on day.
func (s *Schedule) EntriesByDay(day string) []ScheduleEntry {
	return lo.Filter(s.Entries, func(entry ScheduleEntry, _ int) bool {
		return entry.Day == day
	})
}

// EntriesByCourse returns the entries committed for a course code.
func (s *Schedule) EntriesByCourse(code string) []ScheduleEntry {
	return lo.Filter(s.Entries, func(entry ScheduleEntry, _ int) bool {
		return entry.CourseCode == code
	})
}

// CourseCodes returns the distinct course codes present in the schedule.
func (s *Schedule) CourseCodes() []string {
	return lo.Uniq(lo.Map(s.Entries, func(entry ScheduleEntry, _ int) string {
		return entry.CourseCode
	}))
}

// HasConflict reports whether candidate double-books a classroom or a
// professor: an existing entry on the same day sharing either resource with
// an overlapping [start, end) window.
func (s *Schedule) HasConflict(candidate ScheduleEntry) bool {
	for _, entry := range s.Entries {
		if entry.Day != candidate.Day {
			continue
		}
		if !Overlaps(candidate.StartTime, candidate.EndTime, entry.StartTime, entry.EndTime) {
			continue
		}
		if entry.ClassroomName == candidate.ClassroomName || entry.ProfessorName == candidate.ProfessorName {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the schedule.
func (s *Schedule) Clone() *Schedule {
	return &Schedule{Entries: slices.Clone(s.Entries)}
}

// CheckCourseOverlap reports whether any entry of code1 and any entry of
// code2 share a day with overlapping time, or share a classroom on the same
// day even without time overlap. It is stateless and symmetric in its two
// course arguments, usable against any schedule.
func CheckCourseOverlap(schedule *Schedule, code1, code2 string) bool {
	entries1 := schedule.EntriesByCourse(code1)
	entries2 := schedule.EntriesByCourse(code2)

	for _, e1 := range entries1 {
		for _, e2 := range entries2 {
			if e1.Day != e2.Day {
				continue
			}
			if Overlaps(e1.StartTime, e1.EndTime, e2.StartTime, e2.EndTime) {
				return true
			}
			if e1.ClassroomName == e2.ClassroomName {
				return true
			}
		}
	}
	return false
}
