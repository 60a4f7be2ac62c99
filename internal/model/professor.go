package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Professor is identified by its (unique, non-empty) name. AvailableTimes are
// the declared windows during which the professor may teach; Courses lists
// the course codes the professor is qualified for.
type Professor struct {
	Name           string
	AvailableTimes []TimeInterval
	Courses        []string
}

func NewProfessor(name string, availableTimes []TimeInterval, courses []string) (*Professor, error) {
	if name == "" {
		return nil, errors.New("professor name must be non-empty")
	}
	for _, interval := range availableTimes {
		if err := validateInterval(interval); err != nil {
			return nil, fmt.Errorf("professor %v: %w", name, err)
		}
	}
	return &Professor{
		Name:           name,
		AvailableTimes: slices.Clone(availableTimes),
		Courses:        slices.Clone(courses),
	}, nil
}

// AddAvailableTime appends a declared availability window.
func (p *Professor) AddAvailableTime(day, start, end string) error {
	interval := TimeInterval{Day: day, Start: start, End: end}
	if err := validateInterval(interval); err != nil {
		return fmt.Errorf("professor %v: %w", p.Name, err)
	}
	p.AvailableTimes = append(p.AvailableTimes, interval)
	return nil
}

// AddCourse marks the professor as qualified for a course code.
func (p *Professor) AddCourse(code string) {
	if !slices.Contains(p.Courses, code) {
		p.Courses = append(p.Courses, code)
	}
}

// Teaches reports whether the professor lists the course code.
func (p *Professor) Teaches(code string) bool {
	return slices.Contains(p.Courses, code)
}

// IsAvailable reports whether some declared window fully contains
// [start, end) on day. A window that merely overlaps the request does not
// make the professor available.
func (p *Professor) IsAvailable(day, start, end string) bool {
	return lo.SomeBy(p.AvailableTimes, func(interval TimeInterval) bool {
		return interval.Contains(day, start, end)
	})
}

func (p *Professor) String() string {
	return fmt.Sprintf("Professor: %v", p.Name)
}
