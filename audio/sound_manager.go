// Package audio plays short clicks for bounces reported by the simulation.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/ballfall/sim"
)

const (
	sampleRate    = beep.SampleRate(44100)
	clickDuration = 40 * time.Millisecond
)

// SoundManager owns the speaker and mixes impact clicks into it.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device. Calling it twice is harmless.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayImpact queues a click for the impact. Before Initialize it does nothing.
func (sm *SoundManager) PlayImpact(impact sim.Impact) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	tone, err := impactTone(impact)
	if err != nil {
		return err
	}

	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
	return nil
}

// impactTone builds a short sine click. Body hits are higher than wall and
// floor hits; faster impacts are louder.
func impactTone(impact sim.Impact) (beep.Streamer, error) {
	freq := 220.0
	switch impact.Kind {
	case sim.ImpactWall:
		freq = 330
	case sim.ImpactBody:
		freq = 660
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %g Hz: %w", freq, err)
	}

	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(clickDuration), sine),
		Base:     2,
		Volume:   impactVolume(impact.Speed),
	}, nil
}

// impactVolume maps a closing speed to an exponent for effects.Volume with
// base 2: 0 is full volume, each step down halves it.
func impactVolume(speed float64) float64 {
	const fullSpeed = 400.0
	if speed >= fullSpeed {
		return 0
	}
	if speed <= 0 {
		return -10
	}
	return math.Max(-10, math.Log2(speed/fullSpeed))
}
