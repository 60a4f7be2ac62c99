package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCourse(t *testing.T) {
	t.Run("Valid course", func(t *testing.T) {
		course, err := NewCourse("Data Structures", "CS201", 120, []string{"Dr. Alice Smith"}, []string{"PHYS101"})

		assert.Nil(t, err)
		assert.Equal(t, "CS201", course.Code)
		assert.Equal(t, 120, course.Duration)
	})

	t.Run("Empty name or code is rejected", func(t *testing.T) {
		_, err := NewCourse("", "CS201", 120, nil, nil)
		assert.NotNil(t, err)

		_, err = NewCourse("Data Structures", "", 120, nil, nil)
		assert.NotNil(t, err)
	})

	t.Run("Non-positive duration is rejected", func(t *testing.T) {
		_, err := NewCourse("Data Structures", "CS201", 0, nil, nil)
		assert.NotNil(t, err)

		_, err = NewCourse("Data Structures", "CS201", -30, nil, nil)
		assert.NotNil(t, err)
	})
}

func TestConflictsWith(t *testing.T) {
	// Arrange: conflict declared on one side only
	cs101, err := NewCourse("Introduction to Programming", "CS101", 90, nil, []string{"MATH101"})
	assert.Nil(t, err)
	math101, err := NewCourse("Calculus I", "MATH101", 90, nil, nil)
	assert.Nil(t, err)

	// Assert: storage is asymmetric, so each side answers only for itself
	assert.True(t, cs101.ConflictsWith("MATH101"))
	assert.False(t, math101.ConflictsWith("CS101"))
	assert.False(t, cs101.ConflictsWith("PHYS101"))
}

func TestCourseMutators(t *testing.T) {
	course, err := NewCourse("Algorithms", "CS301", 90, nil, nil)
	assert.Nil(t, err)

	course.AddProfessor("Dr. Alice Smith")
	course.AddProfessor("Dr. Alice Smith")
	course.AddConflict("ENG101")
	course.AddConflict("ENG101")

	assert.Equal(t, []string{"Dr. Alice Smith"}, course.Professors)
	assert.Equal(t, []string{"ENG101"}, course.Conflicts)
}
