package sim_test

import (
	"testing"

	"github.com/plus3/ballfall/sim"
)

func fillWorld(w *sim.World) {
	for i := 0; i < w.Max(); i++ {
		w.Spawn(float64(40+(i*53)%720), float64(40+(i*31)%480))
	}
}

func BenchmarkSpawnEvict(b *testing.B) {
	w := newTestWorld(15)
	fillWorld(w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.SetMaxBodies(16)
		w.Spawn(400, 300)
		w.SetMaxBodies(15)
		w.Evict()
	}
}

func BenchmarkStep15(b *testing.B) {
	w := newTestWorld(15)
	fillWorld(w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim.Step(w, 0.016)
	}
}

func BenchmarkStep500(b *testing.B) {
	w := newTestWorld(500)
	fillWorld(w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim.Step(w, 0.016)
	}
}

func BenchmarkSchedulerOnce(b *testing.B) {
	w := newTestWorld(100)
	fillWorld(w)
	scheduler := sim.NewStepScheduler(w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scheduler.Once(0.016)
	}
}
