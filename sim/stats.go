package sim

// WorldStats is a snapshot of a World's counters.
type WorldStats struct {
	Live          int
	Max           int
	Free          int
	Spawned       uint64
	Evicted       uint64
	Reused        uint64
	KineticEnergy float64
}

// CollectStats gathers the current counters and the total kinetic energy of
// the live bodies.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		Live:    len(w.live),
		Max:     w.Params.MaxBodies,
		Free:    len(w.free),
		Spawned: w.spawned,
		Evicted: w.evicted,
		Reused:  w.reused,
	}
	for _, b := range w.live {
		stats.KineticEnergy += b.KineticEnergy()
	}
	return stats
}
