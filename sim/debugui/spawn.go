package debugui

import (
	"time"

	"github.com/plus3/ballfall/sim"
)

// FrameTimer measures wall-clock time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

// SpawnDebugUI registers the standard windows on the overlay and the
// ImguiSystem on the scheduler. The returned stats must be fed once per
// frame with Record.
func SpawnDebugUI(overlay *Overlay, scheduler *sim.Scheduler) *PerformanceStats {
	stats := NewPerformanceStats(120)
	inspector := NewBodyInspector()
	tuning := NewTuningPanel(scheduler.Commands())

	overlay.Add(func() { stats.Render(scheduler) })
	overlay.Add(func() { inspector.Render(scheduler.World()) })
	overlay.Add(func() { tuning.Render(scheduler.World()) })

	scheduler.Register(&ImguiSystem{Overlay: overlay})
	return stats
}
