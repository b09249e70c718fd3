package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballfall/sim"
	"github.com/plus3/ballfall/sim/debugui"
	debugui_ebiten "github.com/plus3/ballfall/sim/debugui/ebiten"
	"github.com/plus3/ballfall/sim/render"
)

// Game implements ebiten.Game and draws the debug overlay over the world.
type Game struct {
	scheduler *sim.Scheduler
	renderer  *render.Renderer
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.backend.BeginFrame()

	// Physics, then the ImguiSystem defers the overlay windows
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.scheduler.World())

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	g.scheduler.World().Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Debug Overlay Example", 1280, 720)
	defer backend.Close()

	world := sim.NewWorld(1280, 720, sim.DefaultParams(), nil)
	scheduler := sim.NewStepScheduler(world)

	overlay := debugui.NewOverlay()
	overlay.Toggle()
	debugui.SpawnDebugUI(overlay, scheduler)

	for i := 0; i < 10; i++ {
		scheduler.Commands().Spawn(float64(100+i*100), 100)
	}

	game := &Game{
		scheduler: scheduler,
		renderer:  render.NewRenderer(),
		backend:   backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
