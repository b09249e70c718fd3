package sim

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// BodyId identifies a body for as long as it is live. Ids are never reused,
// even when the underlying Body is recycled from the free list.
type BodyId uint64

// Body is a simulated circle. Radius and Color are assigned at spawn and left
// alone afterwards; position and velocity change every frame.
type Body struct {
	Id     BodyId
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  colorful.Color
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// KineticEnergy treats every body as unit mass.
func (b *Body) KineticEnergy() float64 {
	return 0.5 * (b.VX*b.VX + b.VY*b.VY)
}

// Overlaps reports whether the two circles intersect.
func (b *Body) Overlaps(other *Body) bool {
	dx := b.X - other.X
	dy := b.Y - other.Y
	r := b.Radius + other.Radius
	return dx*dx+dy*dy < r*r
}

func (b *Body) integrate(gravity, dt float64) {
	b.VY += gravity * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// confine clamps the body into the viewport. Velocity is reflected with
// damping only when it points into the boundary that was crossed.
func (b *Body) confine(width, floor, damping float64, impacts *[]Impact) {
	r := b.Radius

	switch {
	case width < 2*r:
		b.X = width / 2
	case b.X-r < 0:
		b.X = r
		if b.VX < 0 {
			*impacts = append(*impacts, Impact{Body: b.Id, Kind: ImpactWall, Speed: -b.VX})
			b.VX *= -damping
		}
	case b.X+r > width:
		b.X = width - r
		if b.VX > 0 {
			*impacts = append(*impacts, Impact{Body: b.Id, Kind: ImpactWall, Speed: b.VX})
			b.VX *= -damping
		}
	}

	if b.Y+r > floor {
		b.Y = floor - r
		if b.VY > 0 {
			*impacts = append(*impacts, Impact{Body: b.Id, Kind: ImpactFloor, Speed: b.VY})
			b.VY *= -damping
		}
	}
}

func (b *Body) reset(id BodyId, x, y, radius float64, c colorful.Color) {
	*b = Body{
		Id:     id,
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  c,
	}
}
