package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"strings"

	"go.uber.org/zap"

	"unischeduler/internal/app"
	"unischeduler/internal/config"
	"unischeduler/internal/model"
	"unischeduler/internal/scheduler"
	"unischeduler/internal/store"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the dataset file")
	outFilePathPtr := flag.String("out", "", "Path to write the dataset (schedule included) after generation; if empty, nothing is written")
	seedPtr := flag.Int64("seed", 0, "Random seed; 0 uses the SCHEDULER_SEED environment value, which itself defaults to a time-based seed")
	iterationsPtr := flag.Int("iterations", 0, "Iteration budget; 0 uses the SCHEDULER_MAX_ITERATIONS environment value")
	nonOverlapPtr := flag.String("no-overlap", "", `Two comma-separated course codes that must never share a time or a classroom, e.g. "CS101,MATH101"; overrides the pair stored in the dataset`)
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("a dataset file must be specified")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	logger := app.NewLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	dataset, err := store.Load(filePath)
	if err != nil {
		log.Fatalf("cannot load dataset: %v", err)
	}

	nonOverlap := dataset.NonOverlapCourses
	if *nonOverlapPtr != "" {
		codes := strings.Split(*nonOverlapPtr, ",")
		if len(codes) != 2 {
			log.Fatalf("no-overlap must name exactly two course codes: %v", *nonOverlapPtr)
		}
		nonOverlap = &[2]string{strings.TrimSpace(codes[0]), strings.TrimSpace(codes[1])}
	}

	seed := cfg.Seed
	if *seedPtr != 0 {
		seed = *seedPtr
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	iterations := cfg.MaxIterations
	if *iterationsPtr != 0 {
		iterations = *iterationsPtr
	}

	engine, err := scheduler.NewScheduler(dataset.Professors, dataset.Courses, dataset.Classrooms, scheduler.Config{
		Grid: scheduler.GridConfig{
			StartHour:   cfg.StartHour,
			EndHour:     cfg.EndHour,
			SlotMinutes: cfg.SlotMinutes,
		},
		MaxIterations: iterations,
		Rand:          rng,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("cannot initialize scheduler: %v", err)
	}

	result, err := engine.Generate(nonOverlap)
	if err != nil {
		log.Fatalf("an error occurred during schedule generation: %v", err)
	}

	printSchedule(result.Schedule)

	if len(result.Unscheduled) > 0 {
		fmt.Printf("\nCould not schedule: %v\n", strings.Join(result.Unscheduled, ", "))
	} else {
		fmt.Println("\nAll courses scheduled.")
	}

	if nonOverlap != nil {
		if model.CheckCourseOverlap(result.Schedule, nonOverlap[0], nonOverlap[1]) {
			fmt.Printf("Warning: could not prevent overlap between %v and %v\n", nonOverlap[0], nonOverlap[1])
		} else {
			fmt.Printf("%v and %v do not overlap\n", nonOverlap[0], nonOverlap[1])
		}
	}

	if !engine.Verify(result.Schedule) {
		log.Fatal("verification failed")
	}

	if outFile != "" {
		for _, classroom := range dataset.Classrooms {
			classroom.ScheduledTimes = result.Bookings[classroom.Name]
		}
		dataset.Schedule = result.Schedule
		dataset.NonOverlapCourses = nonOverlap
		if err := store.Save(outFile, dataset); err != nil {
			log.Fatalf("cannot save dataset: %v", err)
		}
		logger.Info("dataset saved", zap.String("file", outFile))
	}
}

func printSchedule(schedule *model.Schedule) {
	for _, day := range model.Days {
		entries := schedule.EntriesByDay(day)
		if len(entries) == 0 {
			continue
		}
		slices.SortFunc(entries, func(a, b model.ScheduleEntry) int {
			return strings.Compare(a.StartTime, b.StartTime)
		})

		fmt.Printf("%v:\n", day)
		for _, entry := range entries {
			fmt.Printf("  %v-%v  %v  Room: %v  Prof: %v\n",
				entry.StartTime, entry.EndTime, entry.CourseCode, entry.ClassroomName, entry.ProfessorName)
		}
	}
}
