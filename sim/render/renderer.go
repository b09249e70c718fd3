// Package render draws a sim.World onto an Ebiten screen.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/plus3/ballfall/sim"
)

var (
	DefaultShadowColor = colorful.Color{R: 0x34 / 255.0, G: 0x49 / 255.0, B: 0x5e / 255.0}
	DefaultBackground  = color.RGBA{R: 236, G: 240, B: 241, A: 255}
	DefaultFloorColor  = color.RGBA{R: 52, G: 73, B: 94, A: 255}
)

const DefaultShadowBlur = 10

// InfoText formats the live-count label.
func InfoText(live, max int) string {
	return fmt.Sprintf("Circles on screen: %d / %d", live, max)
}

type cachedSprite struct {
	img  *ebiten.Image
	seen uint64
}

// Renderer draws bodies as shaded discs over drop shadows. Disc sprites are
// cached per body, which is safe because a body's radius and color never
// change while it is live.
type Renderer struct {
	ShadowColor colorful.Color
	ShadowBlur  float64
	Background  color.Color
	FloorColor  color.Color
	ShowInfo    bool

	discs   map[sim.BodyId]*cachedSprite
	shadows map[float64]*ebiten.Image
	frame   uint64
}

func NewRenderer() *Renderer {
	return &Renderer{
		ShadowColor: DefaultShadowColor,
		ShadowBlur:  DefaultShadowBlur,
		Background:  DefaultBackground,
		FloorColor:  DefaultFloorColor,
		ShowInfo:    true,
		discs:       make(map[sim.BodyId]*cachedSprite),
		shadows:     make(map[float64]*ebiten.Image),
	}
}

// Draw paints the background, the floor platform, every live body oldest
// first and the info label.
func (r *Renderer) Draw(screen *ebiten.Image, world *sim.World) {
	r.frame++
	screen.Fill(r.Background)

	floor := world.Floor()
	vector.DrawFilledRect(screen, 0, float32(floor), float32(world.Width), float32(world.Params.FloorHeight), r.FloorColor, false)

	for b := range world.Iter() {
		r.drawBody(screen, b)
	}
	r.prune()

	if r.ShowInfo {
		ebitenutil.DebugPrintAt(screen, InfoText(world.Len(), world.Max()), 12, 12)
	}
}

func (r *Renderer) drawBody(screen *ebiten.Image, b *sim.Body) {
	shadow := r.shadow(b.Radius)
	op := &ebiten.DrawImageOptions{}
	half := float64(shadow.Bounds().Dx()) / 2
	op.GeoM.Translate(b.X-half, b.Y-half)
	screen.DrawImage(shadow, op)

	disc := r.disc(b)
	op = &ebiten.DrawImageOptions{}
	half = float64(disc.Bounds().Dx()) / 2
	op.GeoM.Translate(b.X-half, b.Y-half)
	screen.DrawImage(disc, op)
}

func (r *Renderer) disc(b *sim.Body) *ebiten.Image {
	cached, ok := r.discs[b.Id]
	if !ok {
		cached = &cachedSprite{img: ebiten.NewImageFromImage(GradientDisc(b.Radius, b.Color))}
		r.discs[b.Id] = cached
	}
	cached.seen = r.frame
	return cached.img
}

func (r *Renderer) shadow(radius float64) *ebiten.Image {
	img, ok := r.shadows[radius]
	if !ok {
		img = ebiten.NewImageFromImage(ShadowDisc(radius, r.ShadowBlur, r.ShadowColor))
		r.shadows[radius] = img
	}
	return img
}

// prune releases sprites of bodies that were not drawn this frame.
func (r *Renderer) prune() {
	for id, cached := range r.discs {
		if cached.seen != r.frame {
			cached.img.Deallocate()
			delete(r.discs, id)
		}
	}
}

// CachedSprites returns the number of per-body sprites currently held.
func (r *Renderer) CachedSprites() int {
	return len(r.discs)
}
