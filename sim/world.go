package sim

import (
	"iter"
	"math/rand/v2"

	"github.com/kamstrup/intmap"
	"github.com/lucasb-eyer/go-colorful"
)

// World owns every body of a simulation. The live list is kept in spawn
// order, so the front of the list is always the oldest body. A World must
// only be used from one goroutine.
type World struct {
	Width, Height float64
	Params        Params

	live  []*Body
	free  []*Body
	index *intmap.Map[BodyId, *Body]
	rng   *rand.Rand

	nextId  BodyId
	spawned uint64
	evicted uint64
	reused  uint64
}

// NewWorld creates an empty world with the given viewport size. A nil rng
// gets a randomly seeded PCG source.
func NewWorld(width, height float64, params Params, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	params.MaxBodies = max(params.MaxBodies, 0)
	return &World{
		Width:  width,
		Height: height,
		Params: params,
		live:   make([]*Body, 0, params.MaxBodies),
		index:  intmap.New[BodyId, *Body](max(params.MaxBodies, 16)),
		rng:    rng,
	}
}

// Len returns the live count.
func (w *World) Len() int {
	return len(w.live)
}

// FreeLen returns the number of pooled bodies waiting for reuse.
func (w *World) FreeLen() int {
	return len(w.free)
}

// Max returns the live-count cap.
func (w *World) Max() int {
	return w.Params.MaxBodies
}

// Floor returns the y coordinate of the top of the floor platform.
func (w *World) Floor() float64 {
	return w.Height - w.Params.FloorHeight
}

// Bodies returns the live bodies, oldest first. The slice is only valid until
// the next Spawn, Evict or Clear.
func (w *World) Bodies() []*Body {
	return w.live
}

// Iter yields live bodies in spawn order.
func (w *World) Iter() iter.Seq[*Body] {
	return func(yield func(*Body) bool) {
		for _, b := range w.live {
			if !yield(b) {
				return
			}
		}
	}
}

// Pairs yields every unordered pair of live bodies once, with the older body
// first.
func (w *World) Pairs() iter.Seq2[*Body, *Body] {
	return func(yield func(*Body, *Body) bool) {
		for i := 0; i < len(w.live); i++ {
			for j := i + 1; j < len(w.live); j++ {
				if !yield(w.live[i], w.live[j]) {
					return
				}
			}
		}
	}
}

// Get looks up a live body by id.
func (w *World) Get(id BodyId) (*Body, bool) {
	return w.index.Get(id)
}

// Spawn places a new body at (x, y). At the live-count cap nothing happens
// and Spawn returns false.
func (w *World) Spawn(x, y float64) (*Body, bool) {
	if len(w.live) >= w.Params.MaxBodies {
		return nil, false
	}

	var b *Body
	if n := len(w.free); n > 0 {
		b = w.free[n-1]
		w.free[n-1] = nil
		w.free = w.free[:n-1]
		w.reused++
	} else {
		b = &Body{}
	}

	w.nextId++
	b.reset(w.nextId, x, y, w.Params.Radius, w.randomColor())
	b.VY = w.Params.SpawnVY
	b.VX = (w.rng.Float64() - 0.5) * w.Params.SpawnVXSpread

	w.live = append(w.live, b)
	w.index.Put(b.Id, b)
	w.spawned++
	return b, true
}

// Evict removes the oldest bodies until the live count is back at the cap.
// Evicted bodies go to the free list. It returns how many were removed.
func (w *World) Evict() int {
	excess := len(w.live) - max(w.Params.MaxBodies, 0)
	if excess <= 0 {
		return 0
	}

	for _, b := range w.live[:excess] {
		w.release(b)
	}
	n := copy(w.live, w.live[excess:])
	clear(w.live[n:])
	w.live = w.live[:n]

	w.evicted += uint64(excess)
	return excess
}

// SetMaxBodies changes the cap. Bodies above a lowered cap stay live until
// the next Evict.
func (w *World) SetMaxBodies(n int) {
	w.Params.MaxBodies = max(n, 0)
}

// Resize changes the viewport. Bodies are pulled back inside on the next step.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
}

// Clear returns every live body to the free list.
func (w *World) Clear() {
	for _, b := range w.live {
		w.release(b)
	}
	clear(w.live)
	w.live = w.live[:0]
}

func (w *World) release(b *Body) {
	w.index.Del(b.Id)
	w.free = append(w.free, b)
}

func (w *World) randomColor() colorful.Color {
	return colorful.Color{
		R: w.rng.Float64(),
		G: w.rng.Float64(),
		B: w.rng.Float64(),
	}
}
