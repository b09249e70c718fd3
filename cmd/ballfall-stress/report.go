package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/ballfall/sim"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	MaxBodies  int
	SpawnEvery int
	FrameDelta float64
	Gravity    float64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	ImpactCount    int64
	DroppedSpawns  int
	Scheduler      *sim.SchedulerStats
	World          *sim.WorldStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
	s.P99 = percentile(s.Samples, 0.99)
}

func percentile(samples []time.Duration, q float64) time.Duration {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	slices.Sort(sorted)
	idx := int(q * float64(len(sorted)-1))
	return sorted[idx]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Ballfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Live-Body Cap:** {{.MaxBodies}}
- **Spawn Every:** {{.SpawnEvery}} frames
- **Frame Delta:** {{printf "%.4f" .FrameDelta}} s
- **Gravity:** {{.Gravity}} px/s²

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
  - **P99:** {{.UpdateTime.P99}}
{{if .Scheduler}}
## Systems
| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Scheduler.Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
{{- if .World}}
## World
- **Live:** {{.World.Live}} / {{.World.Max}}
- **Spawned:** {{.World.Spawned}} (reused {{.World.Reused}}, dropped {{.DroppedSpawns}})
- **Evicted:** {{.World.Evicted}}
- **Impacts:** {{.ImpactCount}}
- **Kinetic Energy:** {{printf "%.1f" .World.KineticEnergy}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
