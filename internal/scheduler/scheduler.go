package scheduler

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"unischeduler/internal/model"
)

const DefaultMaxIterations = 1000

// Config carries the engine knobs. Zero values fall back to the documented
// defaults; a nil Rand gets a time-seeded source, so deterministic runs must
// inject their own.
type Config struct {
	Grid          GridConfig
	MaxIterations int
	Rand          *rand.Rand
	Logger        *zap.Logger
}

// Result is the outcome of one generation run. Unscheduled lists, sorted,
// every requested course code absent from the schedule; a non-empty set is a
// normal partial outcome, not an error. Bookings is the run ledger snapshot
// in the classroom scheduled_times shape.
type Result struct {
	Schedule    *model.Schedule
	Unscheduled []string
	Iterations  int
	Bookings    map[string]map[string][]model.Booking
}

// Scheduler assigns courses to (professor, classroom, time slot) triples via
// a greedy randomized first-fit search. It offers no completeness guarantee:
// a committed entry is never evicted, and outcomes depend on the injected
// random source.
type Scheduler interface {
	// Generate builds a fresh schedule. nonOverlap optionally names two
	// course codes that must never share a time window or a classroom.
	Generate(nonOverlap *[2]string) (*Result, error)

	// Verify checks a built schedule against the run's inputs: availability
	// containment, duration arithmetic, declared conflicts and
	// double-booking.
	Verify(schedule *model.Schedule) bool
}

type schedulerImplementation struct {
	professors []*model.Professor
	courses    []*model.Course
	classrooms []*model.Classroom

	professorsByName map[string]*model.Professor
	coursesByCode    map[string]*model.Course
	classroomsByName map[string]*model.Classroom

	grid          []Slot
	maxIterations int
	rng           *rand.Rand
	logger        *zap.Logger
}

func NewScheduler(professors []*model.Professor, courses []*model.Course, classrooms []*model.Classroom, cfg Config) (Scheduler, error) {
	gridCfg := cfg.Grid.withDefaults()
	if err := gridCfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("max iterations must be positive: %v", cfg.MaxIterations)
	}
	maxIterations := cfg.MaxIterations
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}

	professorsByName := make(map[string]*model.Professor, len(professors))
	for _, professor := range professors {
		if _, duplicate := professorsByName[professor.Name]; duplicate {
			return nil, fmt.Errorf("duplicate professor name: %v", professor.Name)
		}
		professorsByName[professor.Name] = professor
	}
	coursesByCode := make(map[string]*model.Course, len(courses))
	for _, course := range courses {
		if _, duplicate := coursesByCode[course.Code]; duplicate {
			return nil, fmt.Errorf("duplicate course code: %v", course.Code)
		}
		coursesByCode[course.Code] = course
	}
	classroomsByName := make(map[string]*model.Classroom, len(classrooms))
	for _, classroom := range classrooms {
		if _, duplicate := classroomsByName[classroom.Name]; duplicate {
			return nil, fmt.Errorf("duplicate classroom name: %v", classroom.Name)
		}
		classroomsByName[classroom.Name] = classroom
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &schedulerImplementation{
		professors:       professors,
		courses:          courses,
		classrooms:       classrooms,
		professorsByName: professorsByName,
		coursesByCode:    coursesByCode,
		classroomsByName: classroomsByName,
		grid:             buildGrid(gridCfg),
		maxIterations:    maxIterations,
		rng:              rng,
		logger:           logger,
	}

	logger.Info("scheduler engine initialized",
		zap.Int("professors", len(professors)),
		zap.Int("courses", len(courses)),
		zap.Int("classrooms", len(classrooms)),
		zap.Int("time_slots", len(s.grid)),
	)
	return s, nil
}

func (s *schedulerImplementation) Generate(nonOverlap *[2]string) (*Result, error) {
	if nonOverlap != nil {
		if nonOverlap[0] == nonOverlap[1] {
			return nil, fmt.Errorf("non-overlap pair must name two distinct courses: %v", nonOverlap[0])
		}
		for _, code := range nonOverlap {
			if _, known := s.coursesByCode[code]; !known {
				return nil, fmt.Errorf("non-overlap pair references unknown course: %v", code)
			}
		}
	}

	schedule := model.NewSchedule()
	bookings := newLedger(s.classrooms)

	queue := slices.Clone(s.courses)
	s.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	iterations := 0
	for len(queue) > 0 && iterations < s.maxIterations {
		iterations++
		course := queue[0]

		qualified := lo.Filter(s.professors, func(professor *model.Professor, _ int) bool {
			return slices.Contains(course.Professors, professor.Name) && professor.Teaches(course.Code)
		})
		if len(qualified) == 0 {
			// Permanently unplaceable: no declared professor exists and
			// teaches this course. Drop it rather than requeue.
			queue = queue[1:]
			s.logger.Warn("no professor available for course", zap.String("course", course.Code))
			continue
		}

		if s.placeCourse(course, qualified, schedule, bookings, nonOverlap) {
			queue = queue[1:]
		} else {
			// Blocked this round: rotate to the tail and retry while budget
			// remains. There is deliberately no per-course attempt cap.
			queue = append(queue[1:], course)
		}
	}

	requested := lo.Map(s.courses, func(course *model.Course, _ int) string {
		return course.Code
	})
	unscheduled := lo.Without(requested, schedule.CourseCodes()...)
	slices.Sort(unscheduled)

	s.logger.Info("schedule generation completed",
		zap.Int("iterations", iterations),
		zap.Int("scheduled", len(schedule.CourseCodes())),
		zap.Int("unscheduled", len(unscheduled)),
	)

	return &Result{
		Schedule:    schedule,
		Unscheduled: unscheduled,
		Iterations:  iterations,
		Bookings:    bookings.snapshot(),
	}, nil
}

// placeCourse searches professor × (day, start) × classroom in freshly
// shuffled nesting order and commits the first feasible triple. It reports
// false when the whole product is exhausted without a fit.
func (s *schedulerImplementation) placeCourse(
	course *model.Course,
	qualified []*model.Professor,
	schedule *model.Schedule,
	bookings ledger,
	nonOverlap *[2]string,
) bool {
	s.rng.Shuffle(len(qualified), func(i, j int) {
		qualified[i], qualified[j] = qualified[j], qualified[i]
	})

	for _, professor := range qualified {
		grid := slices.Clone(s.grid)
		s.rng.Shuffle(len(grid), func(i, j int) {
			grid[i], grid[j] = grid[j], grid[i]
		})

		for _, slot := range grid {
			end, err := model.AddMinutes(slot.Start, course.Duration)
			if err != nil {
				// Course would run past midnight from this start
				continue
			}
			if !professor.IsAvailable(slot.Day, slot.Start, end) {
				continue
			}
			if s.committedConflict(schedule, course, slot.Day, slot.Start, end) {
				continue
			}

			classrooms := slices.Clone(s.classrooms)
			s.rng.Shuffle(len(classrooms), func(i, j int) {
				classrooms[i], classrooms[j] = classrooms[j], classrooms[i]
			})

			for _, classroom := range classrooms {
				if !bookings.available(classroom, slot.Day, slot.Start, end) {
					continue
				}
				entry := model.ScheduleEntry{
					CourseCode:    course.Code,
					ProfessorName: professor.Name,
					ClassroomName: classroom.Name,
					Day:           slot.Day,
					StartTime:     slot.Start,
					EndTime:       end,
				}
				if schedule.HasConflict(entry) {
					continue
				}
				if nonOverlap != nil && (course.Code == nonOverlap[0] || course.Code == nonOverlap[1]) {
					other := nonOverlap[0]
					if course.Code == nonOverlap[0] {
						other = nonOverlap[1]
					}
					scratch := schedule.Clone()
					scratch.AddEntry(entry)
					if model.CheckCourseOverlap(scratch, course.Code, other) {
						continue
					}
				}

				schedule.AddEntry(entry)
				bookings.book(classroom, slot.Day, slot.Start, end, course.Code)
				return true
			}
		}
	}
	return false
}

// committedConflict reports whether placing course at [start, end) on day
// would overlap an already committed entry of a declared-conflicting course,
// probing the declaration in both directions.
func (s *schedulerImplementation) committedConflict(schedule *model.Schedule, course *model.Course, day, start, end string) bool {
	for _, entry := range schedule.Entries {
		if entry.Day != day {
			continue
		}
		if !model.Overlaps(start, end, entry.StartTime, entry.EndTime) {
			continue
		}
		other := s.coursesByCode[entry.CourseCode]
		if course.ConflictsWith(entry.CourseCode) || (other != nil && other.ConflictsWith(course.Code)) {
			return true
		}
	}
	return false
}
