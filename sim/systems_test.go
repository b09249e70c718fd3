package sim_test

import (
	"math"
	"testing"

	"github.com/plus3/ballfall/sim"
	"github.com/stretchr/testify/assert"
)

func TestStepGravityExample(t *testing.T) {
	w := newTestWorld(15)
	w.Params.Gravity = 1000
	b, _ := w.Spawn(100, 100)
	b.VX = 0
	vy0 := b.VY

	sim.Step(w, 0.016)

	assert.InDelta(t, vy0+16, b.VY, 1e-9)
	assert.InDelta(t, 100+b.VY*0.016, b.Y, 1e-9)
	assert.Equal(t, 100.0, b.X)
}

func TestFallingBodyAccelerates(t *testing.T) {
	for _, dt := range []float64{0.001, 0.016, 0.05} {
		w := newTestWorld(1)
		w.Params.Gravity = 500
		b, _ := w.Spawn(400, 40)

		for b.Y+b.Radius < w.Floor()-1 {
			prev := b.VY
			sim.Step(w, dt)
			if b.Y+b.Radius >= w.Floor() {
				break
			}
			assert.Greater(t, b.VY, prev, "dt=%v", dt)
		}
	}
}

func TestZeroAndNegativeDeltaDoNotMove(t *testing.T) {
	w := newTestWorld(1)
	b, _ := w.Spawn(400, 100)
	x, y, vy := b.X, b.Y, b.VY

	sim.Step(w, 0)
	sim.Step(w, -1)

	assert.Equal(t, x, b.X)
	assert.Equal(t, y, b.Y)
	assert.Equal(t, vy, b.VY)
}

func TestDeltaIsClamped(t *testing.T) {
	w := newTestWorld(1)
	w.Params.Gravity = 100
	b, _ := w.Spawn(400, 100)
	vy := b.VY

	sim.Step(w, 5)

	assert.InDelta(t, vy+100*w.Params.MaxDelta, b.VY, 1e-9)
}

func TestFloorBounceIsDamped(t *testing.T) {
	w := newTestWorld(1)
	b, _ := w.Spawn(400, w.Floor()-w.Params.Radius-1)
	b.VX = 0
	b.VY = 200

	impacts := sim.Step(w, 0.05)

	assert.Equal(t, w.Floor()-b.Radius, b.Y)
	assert.Less(t, b.VY, 0.0)
	assert.LessOrEqual(t, math.Abs(b.VY), (200+w.Params.Gravity*0.05)*w.Params.Damping+1e-9)
	if assert.Len(t, impacts, 1) {
		assert.Equal(t, sim.ImpactFloor, impacts[0].Kind)
	}
}

func TestWallBounceIsDamped(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		vx   float64
	}{
		{"left", 25, -300},
		{"right", 775, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(1)
			w.Params.Gravity = 0
			b, _ := w.Spawn(tt.x, 100)
			b.VX, b.VY = tt.vx, 0

			sim.Step(w, 0.1)

			assert.GreaterOrEqual(t, b.X, b.Radius)
			assert.LessOrEqual(t, b.X, w.Width-b.Radius)
			assert.InDelta(t, -tt.vx*w.Params.Damping, b.VX, 1e-9)
		})
	}
}

func TestBodiesStayInsideViewport(t *testing.T) {
	w := newTestWorld(15)
	w.Params.Gravity = 1000
	w.Params.SpawnVXSpread = 2000
	for i := 0; i < 15; i++ {
		w.Spawn(float64(30+i*5), 50)
	}

	for frame := 0; frame < 600; frame++ {
		sim.Step(w, 1.0/60.0)
		for b := range w.Iter() {
			assert.GreaterOrEqual(t, b.X, b.Radius)
			assert.LessOrEqual(t, b.X, w.Width-b.Radius)
			assert.LessOrEqual(t, b.Y, w.Floor()-b.Radius)
		}
	}
}

func TestStepEvictsAfterCapLowered(t *testing.T) {
	w := newTestWorld(4)
	for i := 0; i < 4; i++ {
		w.Spawn(float64(100+i*60), 100)
	}
	newest := w.Bodies()[3].Id

	w.SetMaxBodies(1)
	sim.Step(w, 0.016)

	assert.Equal(t, 1, w.Len())
	assert.Equal(t, newest, w.Bodies()[0].Id)
}

func TestResizePullsBodiesBackInside(t *testing.T) {
	w := newTestWorld(1)
	b, _ := w.Spawn(700, 500)

	w.Resize(400, 300)
	sim.Step(w, 0)

	assert.Equal(t, 400-b.Radius, b.X)
	assert.Equal(t, w.Floor()-b.Radius, b.Y)
}
