package store

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"unischeduler/internal/model"
)

func TestLoad(t *testing.T) {
	// Act
	dataset, err := Load("testdata/sample.json")

	// Assert
	assert.Nil(t, err)
	assert.Len(t, dataset.Professors, 6)
	assert.Len(t, dataset.Courses, 9)
	assert.Len(t, dataset.Classrooms, 5)
	assert.Nil(t, dataset.Schedule)
	assert.Nil(t, dataset.NonOverlapCourses)

	alice := dataset.Professors[0]
	assert.Equal(t, "Dr. Alice Smith", alice.Name)
	assert.Equal(t, []string{"CS101", "CS201", "CS301"}, alice.Courses)
	assert.True(t, alice.IsAvailable("Monday", "09:00", "12:00"))
	assert.False(t, alice.IsAvailable("Tuesday", "09:00", "12:00"))

	cs201 := dataset.Courses[1]
	assert.Equal(t, "CS201", cs201.Code)
	assert.Equal(t, 120, cs201.Duration)
	assert.True(t, cs201.ConflictsWith("PHYS101"))

	room101 := dataset.Classrooms[0]
	assert.Equal(t, "Room 101", room101.Name)
	assert.Equal(t, 40, room101.Capacity)
	assert.Equal(t, []string{"Projector", "Whiteboard"}, room101.Features)
	assert.True(t, room101.IsAvailable("Monday", "08:00", "12:00"))
	assert.False(t, room101.IsAvailable("Monday", "12:00", "13:00"))
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		file := path.Join(t.TempDir(), "dataset.json")
		assert.Nil(t, os.WriteFile(file, []byte(content), 0o644))
		return file
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load("testdata/does-not-exist.json")
		assert.NotNil(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := Load(write(t, "{"))
		assert.NotNil(t, err)
	})

	t.Run("Empty professor name", func(t *testing.T) {
		_, err := Load(write(t, `{"professors": [{"name": "", "available_times": [], "courses": []}]}`))
		assert.NotNil(t, err)
	})

	t.Run("Non-positive duration", func(t *testing.T) {
		_, err := Load(write(t, `{"courses": [{"name": "X", "code": "X1", "duration": 0, "professors": [], "conflicts": []}]}`))
		assert.NotNil(t, err)
	})

	t.Run("Non-positive capacity", func(t *testing.T) {
		_, err := Load(write(t, `{"classrooms": [{"name": "R", "capacity": -1, "available_times": [], "features": [], "scheduled_times": {}}]}`))
		assert.NotNil(t, err)
	})

	t.Run("Malformed availability triple", func(t *testing.T) {
		_, err := Load(write(t, `{"professors": [{"name": "P", "available_times": [["Monday", "09:00"]], "courses": []}]}`))
		assert.NotNil(t, err)
	})

	t.Run("One-element non-overlap pair", func(t *testing.T) {
		_, err := Load(write(t, `{"non_overlap_courses": ["CS101"]}`))
		assert.NotNil(t, err)
	})
}

func TestSaveAndReload(t *testing.T) {
	// Arrange
	dataset, err := Load("testdata/sample.json")
	assert.Nil(t, err)

	schedule := model.NewSchedule()
	schedule.AddEntry(model.ScheduleEntry{
		CourseCode:    "CS101",
		ProfessorName: "Dr. Alice Smith",
		ClassroomName: "Room 101",
		Day:           "Monday",
		StartTime:     "09:00",
		EndTime:       "10:30",
	})
	dataset.Schedule = schedule
	dataset.NonOverlapCourses = &[2]string{"CS101", "MATH101"}
	assert.True(t, dataset.Classrooms[0].ScheduleClass("Monday", "09:00", "10:30", "CS101"))

	file := path.Join(t.TempDir(), "dataset.json")

	// Act
	assert.Nil(t, Save(file, dataset))
	reloaded, err := Load(file)

	// Assert: the round trip preserves every record
	assert.Nil(t, err)
	assert.Equal(t, dataset.Professors, reloaded.Professors)
	assert.Equal(t, dataset.Courses, reloaded.Courses)
	assert.Equal(t, dataset.Classrooms, reloaded.Classrooms)
	assert.Equal(t, dataset.Schedule.Entries, reloaded.Schedule.Entries)
	assert.Equal(t, dataset.NonOverlapCourses, reloaded.NonOverlapCourses)
}
