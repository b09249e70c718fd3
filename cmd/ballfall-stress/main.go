package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ballfall/sim"
)

const (
	viewportWidth  = 1280
	viewportHeight = 720
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	maxBodies := flag.Int("bodies", 500, "The live-body cap.")
	spawnEvery := flag.Int("spawn-every", 1, "Queue one click spawn every N frames.")
	frameDelta := flag.Float64("dt", 1.0/60.0, "Simulated seconds per frame.")
	gravity := flag.Float64("gravity", 1000, "Gravity in px/s².")
	seed := flag.Uint64("seed", 1, "Random seed for spawn positions and velocities.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting ballfall stress test...")

	params := sim.DefaultParams()
	params.MaxBodies = *maxBodies
	params.Gravity = *gravity
	if err := params.Validate(); err != nil {
		log.Fatalf("Bad params: %v", err)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	world := sim.NewWorld(viewportWidth, viewportHeight, params, rand.New(rand.NewPCG(*seed, *seed+1)))
	scheduler := sim.NewStepScheduler(world)

	report := &Report{
		Duration:   *duration,
		MaxBodies:  *maxBodies,
		SpawnEvery: *spawnEvery,
		FrameDelta: *frameDelta,
		Gravity:    *gravity,

		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if *spawnEvery > 0 && totalUpdates%int64(*spawnEvery) == 0 {
				scheduler.Commands().Spawn(rng.Float64()*viewportWidth, rng.Float64()*viewportHeight/2)
			}

			updateStart := time.Now()
			scheduler.Once(*frameDelta)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.ImpactCount += int64(len(scheduler.Impacts()))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	report.World = world.CollectStats()
	report.DroppedSpawns = scheduler.Commands().Dropped()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
