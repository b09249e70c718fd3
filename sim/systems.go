package sim

import "math"

// DefaultSystems returns the physics stages of a frame in execution order.
func DefaultSystems() []System {
	return []System{
		&IntegrateSystem{},
		&CollisionSystem{},
		&BoundsSystem{},
		&EvictionSystem{},
	}
}

// Step advances the world by dt seconds with the default systems and returns
// the impacts of the frame.
func Step(w *World, dt float64) []Impact {
	frame := newUpdateFrame(dt, w, nil)
	for _, system := range DefaultSystems() {
		system.Execute(frame)
	}
	frame.Commands.RunDeferred()
	return frame.Impacts
}

// IntegrateSystem applies gravity and moves every body by its velocity.
type IntegrateSystem struct{}

func (s *IntegrateSystem) Execute(frame *UpdateFrame) {
	g := frame.World.Params.Gravity
	for b := range frame.World.Iter() {
		b.integrate(g, frame.DeltaTime)
	}
}

// CollisionSystem separates overlapping pairs and exchanges an impulse along
// the contact normal. Every unordered pair is visited once, in spawn order.
type CollisionSystem struct {
	Contacts int
}

func (s *CollisionSystem) Execute(frame *UpdateFrame) {
	p := frame.World.Params
	s.Contacts = 0
	for a, b := range frame.World.Pairs() {
		// Elastic exchange (j = rel at restitution 1), once per pair and only
		// while approaching, rather than 2·rel on every visit.
		if impact, ok := resolvePair(a, b, p.Restitution, p.Epsilon); ok {
			s.Contacts++
			if impact.Speed > 0 {
				frame.Impacts = append(frame.Impacts, impact)
			}
		}
	}
}

// resolvePair pushes a and b apart by half the overlap each and, when they
// are closing in on each other, applies equal and opposite impulses. Below
// epsilon the normal is undefined and (1, 0) is used instead.
func resolvePair(a, b *Body, restitution, epsilon float64) (Impact, bool) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dist := math.Hypot(dx, dy)
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return Impact{}, false
	}

	nx, ny := 1.0, 0.0
	if dist >= epsilon {
		nx, ny = dx/dist, dy/dist
	}

	half := (minDist - dist) / 2
	a.X += half * nx
	a.Y += half * ny
	b.X -= half * nx
	b.Y -= half * ny

	impact := Impact{Body: a.Id, Other: b.Id, Kind: ImpactBody}
	rel := (a.VX-b.VX)*nx + (a.VY-b.VY)*ny
	if rel >= 0 {
		return impact, true
	}

	j := (1 + restitution) / 2 * rel
	a.VX -= j * nx
	a.VY -= j * ny
	b.VX += j * nx
	b.VY += j * ny

	impact.Speed = -rel
	return impact, true
}

// BoundsSystem keeps bodies between the side walls and above the floor. It
// runs after collisions so separation cannot leave a body outside.
type BoundsSystem struct{}

func (s *BoundsSystem) Execute(frame *UpdateFrame) {
	w := frame.World
	floor := w.Floor()
	for b := range w.Iter() {
		b.confine(w.Width, floor, w.Params.Damping, &frame.Impacts)
	}
}

// EvictionSystem trims the oldest bodies above the live-count cap.
type EvictionSystem struct {
	Evicted int
}

func (s *EvictionSystem) Execute(frame *UpdateFrame) {
	s.Evicted = frame.World.Evict()
}
