package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"unischeduler/internal/scheduler"
	"unischeduler/internal/store"
)

// Runs the engine repeatedly over a dataset with successive seeds and
// reports the placement-rate and duration spread, to gauge how sensitive a
// dataset is to shuffle order.
func main() {
	filePathPtr := flag.String("file", "", "Path to the dataset file")
	runsPtr := flag.Int("runs", 20, "Number of seeded runs")
	iterationsPtr := flag.Int("iterations", 0, "Iteration budget per run; 0 uses the engine default")
	flag.Parse()

	if *filePathPtr == "" {
		log.Fatal("a dataset file must be specified")
	}
	if *runsPtr <= 0 {
		log.Fatalf("runs must be positive: %v", *runsPtr)
	}

	dataset, err := store.Load(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot load dataset: %v", err)
	}

	rates := make([]float64, 0, *runsPtr)
	durations := make([]float64, 0, *runsPtr)

	for seed := int64(1); seed <= int64(*runsPtr); seed++ {
		engine, err := scheduler.NewScheduler(dataset.Professors, dataset.Courses, dataset.Classrooms, scheduler.Config{
			MaxIterations: *iterationsPtr,
			Rand:          rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			log.Fatalf("cannot initialize scheduler: %v", err)
		}

		started := time.Now()
		result, err := engine.Generate(dataset.NonOverlapCourses)
		if err != nil {
			log.Fatalf("run with seed %v failed: %v", seed, err)
		}
		elapsed := time.Since(started)

		rates = append(rates, placementRate(len(dataset.Courses), len(result.Unscheduled)))
		durations = append(durations, float64(elapsed.Microseconds())/1000.0)
	}

	rateMin, rateAvg, rateMax := spread(rates)
	durMin, durAvg, durMax := spread(durations)

	fmt.Printf("Runs: %v over %v courses\n", *runsPtr, len(dataset.Courses))
	fmt.Printf("Placement rate: min %.2f%%, avg %.2f%%, max %.2f%%\n", rateMin*100, rateAvg*100, rateMax*100)
	fmt.Printf("Duration (ms): min %.2f, avg %.2f, max %.2f\n", durMin, durAvg, durMax)
}

// placementRate is the fraction of requested courses that got scheduled.
func placementRate(requested, unscheduled int) float64 {
	if requested == 0 {
		return 1
	}
	return float64(requested-unscheduled) / float64(requested)
}

func spread(values []float64) (min, avg, max float64) {
	return lo.Min(values), lo.Sum(values) / float64(len(values)), lo.Max(values)
}
