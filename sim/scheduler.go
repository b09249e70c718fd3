package sim

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in order over one world, once per frame.
type Scheduler struct {
	world       *World
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
	impacts     []Impact
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:    world,
		commands: newCommands(),
		systems:  make([]System, 0),
	}
}

// NewStepScheduler creates a scheduler with the default physics systems
// already registered.
func NewStepScheduler(world *World) *Scheduler {
	s := NewScheduler(world)
	for _, system := range DefaultSystems() {
		s.Register(system)
	}
	return s
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *World {
	return s.world
}

// Commands returns the frame's command buffer. Input handlers queue spawns
// here between frames; they apply before the next frame's systems.
func (s *Scheduler) Commands() *Commands {
	return s.commands
}

// Impacts returns the impacts recorded during the most recent frame. The
// slice is reused by the next frame.
func (s *Scheduler) Impacts() []Impact {
	return s.impacts
}

// Once executes all registered systems once with the given delta time.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world, s.commands)
	frame.Impacts = s.impacts[:0]
	frame.Commands.Apply(s.world)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.RunDeferred()
	s.impacts = frame.Impacts
	s.frames++
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
