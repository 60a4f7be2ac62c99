package scheduler

import (
	"unischeduler/internal/model"
)

// Verify checks a built schedule against the run's inputs. For every entry:
// - the course, professor and classroom are known
// - the professor's availability fully contains the entry's window
// - some declared classroom window fully contains the entry's window
// - the end time equals start plus the course duration
// - no same-day overlapping pair double-books a professor or classroom
// - no same-day overlapping pair carries a declared course conflict
func (s *schedulerImplementation) Verify(schedule *model.Schedule) bool {
	type occupation struct {
		day  string
		name string
	}
	professorAssistance := make(map[occupation][]model.ScheduleEntry)
	classroomAssistance := make(map[occupation][]model.ScheduleEntry)

	for _, entry := range schedule.Entries {
		course, known := s.coursesByCode[entry.CourseCode]
		if !known {
			return false
		}
		professor, known := s.professorsByName[entry.ProfessorName]
		if !known {
			return false
		}
		classroom, known := s.classroomsByName[entry.ClassroomName]
		if !known {
			return false
		}

		if !professor.IsAvailable(entry.Day, entry.StartTime, entry.EndTime) {
			return false
		}
		declared := false
		for _, interval := range classroom.AvailableTimes {
			if interval.Contains(entry.Day, entry.StartTime, entry.EndTime) {
				declared = true
				break
			}
		}
		if !declared {
			return false
		}

		end, err := model.AddMinutes(entry.StartTime, course.Duration)
		if err != nil || end != entry.EndTime {
			return false
		}

		professorKey := occupation{day: entry.Day, name: entry.ProfessorName}
		for _, taken := range professorAssistance[professorKey] {
			if model.Overlaps(entry.StartTime, entry.EndTime, taken.StartTime, taken.EndTime) {
				return false
			}
		}
		professorAssistance[professorKey] = append(professorAssistance[professorKey], entry)

		classroomKey := occupation{day: entry.Day, name: entry.ClassroomName}
		for _, taken := range classroomAssistance[classroomKey] {
			if model.Overlaps(entry.StartTime, entry.EndTime, taken.StartTime, taken.EndTime) {
				return false
			}
		}
		classroomAssistance[classroomKey] = append(classroomAssistance[classroomKey], entry)
	}

	// Declared conflicts hold schedule-wide, independent of resources.
	for i, a := range schedule.Entries {
		courseA := s.coursesByCode[a.CourseCode]
		for _, b := range schedule.Entries[i+1:] {
			if a.Day != b.Day || a.CourseCode == b.CourseCode {
				continue
			}
			if !model.Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime) {
				continue
			}
			courseB := s.coursesByCode[b.CourseCode]
			if courseA.ConflictsWith(b.CourseCode) || courseB.ConflictsWith(a.CourseCode) {
				return false
			}
		}
	}

	return true
}
