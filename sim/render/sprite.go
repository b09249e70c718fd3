package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const spritePad = 1

// rimShade is how far the rim of a disc is blended towards black.
const rimShade = 0.45

// GradientDisc rasterizes an antialiased disc whose color runs from c at the
// center to a darker shade of c at the rim. The disc is centered in the
// returned image.
func GradientDisc(radius float64, c colorful.Color) *image.RGBA {
	size := spriteSize(radius, 0)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	rim := c.BlendLab(colorful.Color{}, rimShade).Clamped()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			coverage := clamp01(radius - d + 0.5)
			if coverage == 0 {
				continue
			}
			t := clamp01(d / radius)
			img.SetRGBA(x, y, premultiply(c.BlendLab(rim, t*t).Clamped(), coverage))
		}
	}
	return img
}

// ShadowDisc rasterizes the soft shadow cast under a disc of the given
// radius. Opacity falls off smoothly over blur pixels either side of the
// disc's edge.
func ShadowDisc(radius, blur float64, c colorful.Color) *image.RGBA {
	size := spriteSize(radius, blur)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-center, float64(y)+0.5-center)
			var alpha float64
			if blur <= 0 {
				alpha = clamp01(radius - d + 0.5)
			} else {
				alpha = smoothstep(radius+blur, radius-blur, d)
			}
			if alpha == 0 {
				continue
			}
			img.SetRGBA(x, y, premultiply(c, alpha))
		}
	}
	return img
}

func spriteSize(radius, blur float64) int {
	return int(math.Ceil(2*(radius+blur))) + 2*spritePad
}

func premultiply(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// smoothstep is 0 at edge0 and 1 at edge1; edge0 may be larger than edge1.
func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
