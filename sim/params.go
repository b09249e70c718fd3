package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every error returned from Params.Validate.
var ErrInvalidParams = errors.New("invalid simulation params")

// Params holds the tuning knobs of a World. Units are pixels and seconds.
type Params struct {
	Gravity       float64 // added to VY every second
	Damping       float64 // velocity multiplier on wall and floor bounces
	Restitution   float64 // impulse multiplier on body bounces, 1 is fully elastic
	FloorHeight   float64 // platform height at the bottom of the viewport
	MaxBodies     int
	Radius        float64
	SpawnVY       float64
	SpawnVXSpread float64 // VX is drawn from [-spread/2, spread/2)
	MaxDelta      float64 // frame deltas above this are clamped, 0 disables
	Epsilon       float64 // center distances below this use a fixed normal
}

// DefaultParams returns the stock tuning: 15 bodies of radius 20 falling
// at 9.8 px/s² onto a 20px floor.
func DefaultParams() Params {
	return Params{
		Gravity:       9.8,
		Damping:       0.7,
		Restitution:   1.0,
		FloorHeight:   20,
		MaxBodies:     15,
		Radius:        20,
		SpawnVY:       15,
		SpawnVXSpread: 50,
		MaxDelta:      0.1,
		Epsilon:       1e-6,
	}
}

// Validate rejects params the step cannot run with.
func (p Params) Validate() error {
	floats := []struct {
		name  string
		value float64
	}{
		{"gravity", p.Gravity},
		{"damping", p.Damping},
		{"restitution", p.Restitution},
		{"floor height", p.FloorHeight},
		{"radius", p.Radius},
		{"spawn vy", p.SpawnVY},
		{"spawn vx spread", p.SpawnVXSpread},
		{"max delta", p.MaxDelta},
		{"epsilon", p.Epsilon},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}

	switch {
	case p.Damping < 0 || p.Damping > 1:
		return fmt.Errorf("%w: damping %g outside [0, 1]", ErrInvalidParams, p.Damping)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("%w: restitution %g outside [0, 1]", ErrInvalidParams, p.Restitution)
	case p.MaxBodies < 0:
		return fmt.Errorf("%w: max bodies %d is negative", ErrInvalidParams, p.MaxBodies)
	case p.Radius <= 0:
		return fmt.Errorf("%w: radius %g must be positive", ErrInvalidParams, p.Radius)
	case p.FloorHeight < 0:
		return fmt.Errorf("%w: floor height %g is negative", ErrInvalidParams, p.FloorHeight)
	case p.SpawnVXSpread < 0:
		return fmt.Errorf("%w: spawn vx spread %g is negative", ErrInvalidParams, p.SpawnVXSpread)
	case p.MaxDelta < 0:
		return fmt.Errorf("%w: max delta %g is negative", ErrInvalidParams, p.MaxDelta)
	case p.Epsilon <= 0:
		return fmt.Errorf("%w: epsilon %g must be positive", ErrInvalidParams, p.Epsilon)
	}
	return nil
}

// clampDelta turns an arbitrary clock delta into one the integrator accepts.
func (p Params) clampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if p.MaxDelta > 0 && dt > p.MaxDelta {
		return p.MaxDelta
	}
	return dt
}
