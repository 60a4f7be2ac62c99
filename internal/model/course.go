package model

import (
	"errors"
	"fmt"
	"slices"
)

// Course is identified by its (unique, non-empty) code. Duration is in
// minutes. Professors lists the names qualified to teach it; Conflicts lists
// course codes that must never occupy an overlapping window anywhere in the
// schedule. Conflict declarations may be one-sided, so callers must probe
// both directions.
type Course struct {
	Name       string
	Code       string
	Duration   int
	Professors []string
	Conflicts  []string
}

func NewCourse(name, code string, duration int, professors, conflicts []string) (*Course, error) {
	if name == "" || code == "" {
		return nil, errors.New("course name and code must be non-empty")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("course %v: duration must be positive", code)
	}
	return &Course{
		Name:       name,
		Code:       code,
		Duration:   duration,
		Professors: slices.Clone(professors),
		Conflicts:  slices.Clone(conflicts),
	}, nil
}

// AddProfessor records a professor qualified to teach the course.
func (c *Course) AddProfessor(name string) {
	if !slices.Contains(c.Professors, name) {
		c.Professors = append(c.Professors, name)
	}
}

// AddConflict declares that the course must not overlap another course code.
func (c *Course) AddConflict(code string) {
	if !slices.Contains(c.Conflicts, code) {
		c.Conflicts = append(c.Conflicts, code)
	}
}

// ConflictsWith reports whether this course declares a conflict against code.
// The relation is symmetric in intent but stored one-sided; check the other
// course too.
func (c *Course) ConflictsWith(code string) bool {
	return slices.Contains(c.Conflicts, code)
}

func (c *Course) String() string {
	return fmt.Sprintf("%v: %v", c.Code, c.Name)
}
