package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestGradientDisc(t *testing.T) {
	c := colorful.Color{R: 0.9, G: 0.2, B: 0.1}
	img := GradientDisc(20, c)

	size := img.Bounds().Dx()
	assert.Equal(t, 42, size)
	assert.Equal(t, size, img.Bounds().Dy())

	t.Run("center carries the body color", func(t *testing.T) {
		px := img.RGBAAt(size/2, size/2)
		r, g, b := c.RGB255()
		assert.Equal(t, uint8(255), px.A)
		assert.InDelta(t, int(r), int(px.R), 3)
		assert.InDelta(t, int(g), int(px.G), 3)
		assert.InDelta(t, int(b), int(px.B), 3)
	})

	t.Run("rim is darker than the center", func(t *testing.T) {
		center := img.RGBAAt(size/2, size/2)
		rim := img.RGBAAt(size/2+18, size/2)
		assert.Equal(t, uint8(255), rim.A)
		assert.Less(t, int(rim.R), int(center.R))
	})

	t.Run("corners are transparent", func(t *testing.T) {
		assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
		assert.Equal(t, uint8(0), img.RGBAAt(size-1, size-1).A)
	})
}

func TestShadowDiscFadesOutward(t *testing.T) {
	img := ShadowDisc(20, 10, colorful.Color{R: 0.2, G: 0.29, B: 0.37})
	size := img.Bounds().Dx()
	assert.Equal(t, 62, size)

	c := size / 2
	prev := uint8(255)
	for dx := 0; dx < size/2; dx++ {
		a := img.RGBAAt(c+dx, c).A
		assert.LessOrEqual(t, a, prev, "alpha rises at dx=%d", dx)
		prev = a
	}
	assert.Equal(t, uint8(255), img.RGBAAt(c, c).A)
	assert.Equal(t, uint8(0), img.RGBAAt(size-1, c).A)
}

func TestShadowDiscWithoutBlurIsHardEdged(t *testing.T) {
	img := ShadowDisc(10, 0, colorful.Color{})
	assert.Equal(t, 22, img.Bounds().Dx())
	assert.Equal(t, uint8(255), img.RGBAAt(11, 11).A)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
}

func TestInfoText(t *testing.T) {
	assert.Equal(t, "Circles on screen: 3 / 15", InfoText(3, 15))
}
