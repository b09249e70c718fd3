package audio

import (
	"testing"

	"github.com/plus3/ballfall/sim"
	"github.com/stretchr/testify/assert"
)

func TestLoudest(t *testing.T) {
	impacts := []sim.Impact{
		{Body: 1, Speed: 5},
		{Body: 2, Speed: 80},
		{Body: 3, Speed: 30},
		{Body: 4, Speed: 80},
		{Body: 5, Speed: 1},
	}

	got := loudest(impacts, 3, 2)

	if assert.Len(t, got, 3) {
		assert.Equal(t, sim.BodyId(2), got[0].Body)
		assert.Equal(t, sim.BodyId(4), got[1].Body, "ties keep frame order")
		assert.Equal(t, sim.BodyId(3), got[2].Body)
	}
	assert.Nil(t, loudest(impacts, 0, 0))
	assert.Empty(t, loudest(impacts, 4, 100))
}

func TestImpactVolume(t *testing.T) {
	assert.Equal(t, 0.0, impactVolume(400))
	assert.Equal(t, 0.0, impactVolume(1000))
	assert.InDelta(t, -1.0, impactVolume(200), 1e-9)
	assert.Equal(t, -10.0, impactVolume(0))
	assert.Equal(t, -10.0, impactVolume(0.0001))
}

func TestImpactToneIsShort(t *testing.T) {
	tone, err := impactTone(sim.Impact{Kind: sim.ImpactBody, Speed: 100})
	assert.NoError(t, err)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(clickDuration), total)
}

func TestPlayImpactBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()
	assert.NoError(t, sm.PlayImpact(sim.Impact{Speed: 100}))
	sm.Cleanup()
}
