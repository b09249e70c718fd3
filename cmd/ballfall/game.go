package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/ballfall/sim"
	"github.com/plus3/ballfall/sim/debugui"
	debugui_ebiten "github.com/plus3/ballfall/sim/debugui/ebiten"
	"github.com/plus3/ballfall/sim/render"
)

type Game struct {
	scheduler *sim.Scheduler
	renderer  *render.Renderer
	overlay   *debugui.Overlay
	perf      *debugui.PerformanceStats
	backend   *debugui_ebiten.ImguiBackend
	timer     *debugui.FrameTimer
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	commands := g.scheduler.Commands()
	if !g.overlay.Input.WantCaptureKeyboard && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		commands.Clear()
	}
	if !g.overlay.Input.WantCaptureMouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		commands.Spawn(float64(x), float64(y))
	}

	dt := g.timer.GetDeltaTime()

	g.backend.BeginFrame()
	g.scheduler.Once(float64(dt))
	g.backend.EndFrame()

	g.perf.Record(dt, g.scheduler.World().CollectStats())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scheduler.World())
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	g.scheduler.World().Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}
