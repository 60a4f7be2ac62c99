package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProfessor(t *testing.T) {
	t.Run("Valid professor", func(t *testing.T) {
		professor, err := NewProfessor("Dr. Alice Smith", []TimeInterval{
			{Day: "Monday", Start: "09:00", End: "12:00"},
		}, []string{"CS101"})

		assert.Nil(t, err)
		assert.Equal(t, "Dr. Alice Smith", professor.Name)
		assert.True(t, professor.Teaches("CS101"))
	})

	t.Run("Empty name is rejected", func(t *testing.T) {
		_, err := NewProfessor("", nil, nil)
		assert.NotNil(t, err)
	})

	t.Run("Invalid availability window is rejected", func(t *testing.T) {
		_, err := NewProfessor("Dr. Bob Johnson", []TimeInterval{
			{Day: "Monday", Start: "12:00", End: "09:00"},
		}, nil)
		assert.NotNil(t, err)

		_, err = NewProfessor("Dr. Bob Johnson", []TimeInterval{
			{Day: "Sunday", Start: "09:00", End: "12:00"},
		}, nil)
		assert.NotNil(t, err)
	})
}

func TestProfessorIsAvailable(t *testing.T) {
	// Arrange
	professor, err := NewProfessor("Dr. Alice Smith", []TimeInterval{
		{Day: "Monday", Start: "09:00", End: "12:00"},
		{Day: "Wednesday", Start: "13:00", End: "16:00"},
	}, []string{"CS101"})
	assert.Nil(t, err)

	// Assert
	assert.True(t, professor.IsAvailable("Monday", "09:00", "12:00"))
	assert.True(t, professor.IsAvailable("Monday", "10:00", "11:30"))
	assert.True(t, professor.IsAvailable("Wednesday", "13:00", "14:00"))

	// Partial overlap with a declared window is not availability
	assert.False(t, professor.IsAvailable("Monday", "08:00", "10:00"))
	assert.False(t, professor.IsAvailable("Monday", "11:00", "13:00"))
	assert.False(t, professor.IsAvailable("Tuesday", "09:00", "12:00"))
}

func TestProfessorMutators(t *testing.T) {
	// Arrange
	professor, err := NewProfessor("Dr. Carol White", nil, nil)
	assert.Nil(t, err)

	// Act
	assert.Nil(t, professor.AddAvailableTime("Thursday", "14:00", "17:00"))
	professor.AddCourse("PHYS101")
	professor.AddCourse("PHYS101")

	// Assert
	assert.True(t, professor.IsAvailable("Thursday", "14:00", "17:00"))
	assert.Equal(t, []string{"PHYS101"}, professor.Courses)

	assert.NotNil(t, professor.AddAvailableTime("Thursday", "17:00", "14:00"))
}
