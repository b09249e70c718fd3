package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePairSeparatesOverlap(t *testing.T) {
	a := &Body{Id: 1, X: 100, Y: 100, Radius: 20}
	b := &Body{Id: 2, X: 130, Y: 100, Radius: 20}

	_, ok := resolvePair(a, b, 1, 1e-6)

	assert.True(t, ok)
	assert.InDelta(t, 95.0, a.X, 1e-9)
	assert.InDelta(t, 135.0, b.X, 1e-9)
	assert.InDelta(t, 40.0, math.Hypot(a.X-b.X, a.Y-b.Y), 1e-9)
}

func TestResolvePairIgnoresSeparatedBodies(t *testing.T) {
	a := &Body{X: 0, Y: 0, Radius: 10, VX: 5}
	b := &Body{X: 20, Y: 0, Radius: 10, VX: -5}

	_, ok := resolvePair(a, b, 1, 1e-6)

	assert.False(t, ok)
	assert.Equal(t, 5.0, a.VX)
	assert.Equal(t, -5.0, b.VX)
}

func TestResolvePairExchangesNormalVelocity(t *testing.T) {
	a := &Body{Id: 1, X: 0, Y: 0, Radius: 10, VX: 30, VY: 7}
	b := &Body{Id: 2, X: 15, Y: 0, Radius: 10, VX: -10, VY: -2}

	impact, ok := resolvePair(a, b, 1, 1e-6)

	assert.True(t, ok)
	assert.Equal(t, ImpactBody, impact.Kind)
	assert.InDelta(t, 40.0, impact.Speed, 1e-9)
	assert.InDelta(t, -10.0, a.VX, 1e-9)
	assert.InDelta(t, 30.0, b.VX, 1e-9)
	assert.InDelta(t, 7.0, a.VY, 1e-9, "tangential velocity is untouched")
	assert.InDelta(t, -2.0, b.VY, 1e-9)
}

func TestResolvePairConservesMomentum(t *testing.T) {
	tests := []struct {
		name        string
		restitution float64
	}{
		{"elastic", 1},
		{"damped", 0.5},
		{"plastic", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Body{X: 0, Y: 0, Radius: 10, VX: 12, VY: 9}
			b := &Body{X: 12, Y: 9, Radius: 10, VX: -3, VY: -4}
			px, py := a.VX+b.VX, a.VY+b.VY
			e0 := a.KineticEnergy() + b.KineticEnergy()

			resolvePair(a, b, tt.restitution, 1e-6)

			assert.InDelta(t, px, a.VX+b.VX, 1e-9)
			assert.InDelta(t, py, a.VY+b.VY, 1e-9)
			assert.LessOrEqual(t, a.KineticEnergy()+b.KineticEnergy(), e0+1e-9)
		})
	}
}

func TestResolvePairLeavesSeparatingPairVelocity(t *testing.T) {
	a := &Body{X: 0, Y: 0, Radius: 10, VX: -5}
	b := &Body{X: 15, Y: 0, Radius: 10, VX: 5}

	impact, ok := resolvePair(a, b, 1, 1e-6)

	assert.True(t, ok)
	assert.Zero(t, impact.Speed)
	assert.Equal(t, -5.0, a.VX)
	assert.Equal(t, 5.0, b.VX)
}

func TestResolvePairCoincidentCenters(t *testing.T) {
	a := &Body{X: 50, Y: 50, Radius: 10, VX: 1}
	b := &Body{X: 50, Y: 50, Radius: 10, VX: 1}

	_, ok := resolvePair(a, b, 1, 1e-6)

	assert.True(t, ok)
	assert.False(t, math.IsNaN(a.X) || math.IsNaN(b.X) || math.IsNaN(a.VX) || math.IsNaN(b.VX))
	assert.InDelta(t, 60.0, a.X, 1e-9)
	assert.InDelta(t, 40.0, b.X, 1e-9)
	assert.Equal(t, 50.0, a.Y)
}

func TestConfineHandlesNarrowViewport(t *testing.T) {
	b := &Body{X: 3, Y: 0, Radius: 10}
	var impacts []Impact

	b.confine(15, 100, 0.7, &impacts)

	assert.Equal(t, 7.5, b.X)
	assert.Empty(t, impacts)
}

func TestImpactKindString(t *testing.T) {
	assert.Equal(t, "wall", ImpactWall.String())
	assert.Equal(t, "floor", ImpactFloor.String())
	assert.Equal(t, "body", ImpactBody.String())
	assert.Equal(t, "unknown", ImpactKind(9).String())
}
