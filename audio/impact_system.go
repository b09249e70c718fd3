package audio

import (
	"log"
	"slices"

	"github.com/plus3/ballfall/sim"
)

// ImpactSystem turns the loudest impacts of each frame into clicks.
type ImpactSystem struct {
	Sounds    *SoundManager
	MaxVoices int
	MinSpeed  float64

	errLogged bool
}

func (s *ImpactSystem) Execute(frame *sim.UpdateFrame) {
	for _, impact := range loudest(frame.Impacts, s.MaxVoices, s.MinSpeed) {
		if err := s.Sounds.PlayImpact(impact); err != nil && !s.errLogged {
			log.Printf("audio: %v", err)
			s.errLogged = true
		}
	}
}

// loudest returns up to n impacts at or above minSpeed, fastest first.
func loudest(impacts []sim.Impact, n int, minSpeed float64) []sim.Impact {
	if n <= 0 {
		return nil
	}

	picked := make([]sim.Impact, 0, len(impacts))
	for _, impact := range impacts {
		if impact.Speed >= minSpeed {
			picked = append(picked, impact)
		}
	}
	slices.SortStableFunc(picked, func(a, b sim.Impact) int {
		switch {
		case a.Speed > b.Speed:
			return -1
		case a.Speed < b.Speed:
			return 1
		}
		return 0
	})

	if len(picked) > n {
		picked = picked[:n]
	}
	return picked
}
