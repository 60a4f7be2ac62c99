// Package store reads and writes the scheduler dataset file: the professor,
// course and classroom records, the last generated schedule (if any) and the
// optional non-overlap course pair.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"unischeduler/internal/model"
)

// Dataset is one complete persisted state.
type Dataset struct {
	Professors        []*model.Professor
	Courses           []*model.Course
	Classrooms        []*model.Classroom
	Schedule          *model.Schedule
	NonOverlapCourses *[2]string
}

// Raw wire records. Availability windows travel as [day, start, end] triples
// and ledger bookings as [start, end, course_code] triples, matching the
// established file format.
type professorRecord struct {
	Name           string     `mapstructure:"name" json:"name"`
	AvailableTimes [][]string `mapstructure:"available_times" json:"available_times"`
	Courses        []string   `mapstructure:"courses" json:"courses"`
}

type courseRecord struct {
	Name       string   `mapstructure:"name" json:"name"`
	Code       string   `mapstructure:"code" json:"code"`
	Duration   int      `mapstructure:"duration" json:"duration"`
	Professors []string `mapstructure:"professors" json:"professors"`
	Conflicts  []string `mapstructure:"conflicts" json:"conflicts"`
}

type classroomRecord struct {
	Name           string                `mapstructure:"name" json:"name"`
	Capacity       int                   `mapstructure:"capacity" json:"capacity"`
	AvailableTimes [][]string            `mapstructure:"available_times" json:"available_times"`
	Features       []string              `mapstructure:"features" json:"features"`
	ScheduledTimes map[string][][]string `mapstructure:"scheduled_times" json:"scheduled_times"`
}

type entryRecord struct {
	CourseCode    string `mapstructure:"course_code" json:"course_code"`
	ProfessorName string `mapstructure:"professor_name" json:"professor_name"`
	ClassroomName string `mapstructure:"classroom_name" json:"classroom_name"`
	Day           string `mapstructure:"day" json:"day"`
	StartTime     string `mapstructure:"start_time" json:"start_time"`
	EndTime       string `mapstructure:"end_time" json:"end_time"`
}

type scheduleRecord struct {
	Entries []entryRecord `mapstructure:"entries" json:"entries"`
}

type datasetRecord struct {
	Professors        []professorRecord `mapstructure:"professors" json:"professors"`
	Courses           []courseRecord    `mapstructure:"courses" json:"courses"`
	Classrooms        []classroomRecord `mapstructure:"classrooms" json:"classrooms"`
	Schedule          *scheduleRecord   `mapstructure:"schedule" json:"schedule"`
	NonOverlapCourses []string          `mapstructure:"non_overlap_courses" json:"non_overlap_courses"`
}

// Load parses a dataset file and validates every record through the model
// constructors.
func Load(file string) (*Dataset, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse dataset file: %w", err)
	}

	var record datasetRecord
	if err := mapstructure.Decode(raw, &record); err != nil {
		return nil, fmt.Errorf("cannot decode dataset file: %w", err)
	}
	return fromRecord(record)
}

// Save writes a dataset file in the established shape.
func Save(file string, dataset *Dataset) error {
	record := toRecord(dataset)
	bytes, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, append(bytes, '\n'), 0o644)
}

func fromRecord(record datasetRecord) (*Dataset, error) {
	dataset := &Dataset{}

	for _, raw := range record.Professors {
		intervals, err := toIntervals(raw.AvailableTimes)
		if err != nil {
			return nil, fmt.Errorf("professor %v: %w", raw.Name, err)
		}
		professor, err := model.NewProfessor(raw.Name, intervals, raw.Courses)
		if err != nil {
			return nil, err
		}
		dataset.Professors = append(dataset.Professors, professor)
	}

	for _, raw := range record.Courses {
		course, err := model.NewCourse(raw.Name, raw.Code, raw.Duration, raw.Professors, raw.Conflicts)
		if err != nil {
			return nil, err
		}
		dataset.Courses = append(dataset.Courses, course)
	}

	for _, raw := range record.Classrooms {
		intervals, err := toIntervals(raw.AvailableTimes)
		if err != nil {
			return nil, fmt.Errorf("classroom %v: %w", raw.Name, err)
		}
		classroom, err := model.NewClassroom(raw.Name, raw.Capacity, intervals, raw.Features)
		if err != nil {
			return nil, err
		}
		for day, rawBookings := range raw.ScheduledTimes {
			bookings, err := toBookings(rawBookings)
			if err != nil {
				return nil, fmt.Errorf("classroom %v, %v: %w", raw.Name, day, err)
			}
			classroom.ScheduledTimes[day] = bookings
		}
		dataset.Classrooms = append(dataset.Classrooms, classroom)
	}

	if record.Schedule != nil {
		schedule := model.NewSchedule()
		for _, raw := range record.Schedule.Entries {
			schedule.AddEntry(model.ScheduleEntry{
				CourseCode:    raw.CourseCode,
				ProfessorName: raw.ProfessorName,
				ClassroomName: raw.ClassroomName,
				Day:           raw.Day,
				StartTime:     raw.StartTime,
				EndTime:       raw.EndTime,
			})
		}
		dataset.Schedule = schedule
	}

	if len(record.NonOverlapCourses) > 0 {
		if len(record.NonOverlapCourses) != 2 {
			return nil, fmt.Errorf("non_overlap_courses must hold exactly two codes, got %v", len(record.NonOverlapCourses))
		}
		dataset.NonOverlapCourses = &[2]string{record.NonOverlapCourses[0], record.NonOverlapCourses[1]}
	}

	return dataset, nil
}

func toRecord(dataset *Dataset) datasetRecord {
	record := datasetRecord{
		Professors: []professorRecord{},
		Courses:    []courseRecord{},
		Classrooms: []classroomRecord{},
	}

	for _, professor := range dataset.Professors {
		record.Professors = append(record.Professors, professorRecord{
			Name:           professor.Name,
			AvailableTimes: fromIntervals(professor.AvailableTimes),
			Courses:        orEmpty(professor.Courses),
		})
	}

	for _, course := range dataset.Courses {
		record.Courses = append(record.Courses, courseRecord{
			Name:       course.Name,
			Code:       course.Code,
			Duration:   course.Duration,
			Professors: orEmpty(course.Professors),
			Conflicts:  orEmpty(course.Conflicts),
		})
	}

	for _, classroom := range dataset.Classrooms {
		scheduled := make(map[string][][]string, len(classroom.ScheduledTimes))
		for day, bookings := range classroom.ScheduledTimes {
			rows := make([][]string, 0, len(bookings))
			for _, booking := range bookings {
				rows = append(rows, []string{booking.Start, booking.End, booking.CourseCode})
			}
			scheduled[day] = rows
		}
		record.Classrooms = append(record.Classrooms, classroomRecord{
			Name:           classroom.Name,
			Capacity:       classroom.Capacity,
			AvailableTimes: fromIntervals(classroom.AvailableTimes),
			Features:       orEmpty(classroom.Features),
			ScheduledTimes: scheduled,
		})
	}

	if dataset.Schedule != nil {
		schedule := &scheduleRecord{Entries: []entryRecord{}}
		for _, entry := range dataset.Schedule.Entries {
			schedule.Entries = append(schedule.Entries, entryRecord{
				CourseCode:    entry.CourseCode,
				ProfessorName: entry.ProfessorName,
				ClassroomName: entry.ClassroomName,
				Day:           entry.Day,
				StartTime:     entry.StartTime,
				EndTime:       entry.EndTime,
			})
		}
		record.Schedule = schedule
	}

	if dataset.NonOverlapCourses != nil {
		record.NonOverlapCourses = dataset.NonOverlapCourses[:]
	}

	return record
}

func toIntervals(rows [][]string) ([]model.TimeInterval, error) {
	intervals := make([]model.TimeInterval, 0, len(rows))
	for _, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("availability window must be a [day, start, end] triple, got %v", row)
		}
		intervals = append(intervals, model.TimeInterval{Day: row[0], Start: row[1], End: row[2]})
	}
	return intervals, nil
}

func fromIntervals(intervals []model.TimeInterval) [][]string {
	rows := make([][]string, 0, len(intervals))
	for _, interval := range intervals {
		rows = append(rows, []string{interval.Day, interval.Start, interval.End})
	}
	return rows
}

func toBookings(rows [][]string) ([]model.Booking, error) {
	bookings := make([]model.Booking, 0, len(rows))
	for _, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("booking must be a [start, end, course_code] triple, got %v", row)
		}
		bookings = append(bookings, model.Booking{Start: row[0], End: row[1], CourseCode: row[2]})
	}
	return bookings, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
