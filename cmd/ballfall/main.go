package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ballfall/audio"
	"github.com/plus3/ballfall/config"
	"github.com/plus3/ballfall/sim"
	"github.com/plus3/ballfall/sim/debugui"
	debugui_ebiten "github.com/plus3/ballfall/sim/debugui/ebiten"
	"github.com/plus3/ballfall/sim/render"
)

const (
	maxVoicesPerFrame = 4
	minClickSpeed     = 5.0
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Printf("Game exited: %v", err)
		os.Exit(1)
	}
	log.Println("Bye.")
}

// run plays the game and releases the ImGui backend and the audio device
// before it returns.
func run(cfg *config.Config) error {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	backend := debugui_ebiten.NewImguiBackend(cfg.Title, cfg.Width, cfg.Height)
	defer backend.Close()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	world := sim.NewWorld(float64(cfg.Width), float64(cfg.Height), cfg.Params, rng)
	scheduler := sim.NewStepScheduler(world)

	if cfg.Sound {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			defer sounds.Cleanup()
			scheduler.Register(&audio.ImpactSystem{
				Sounds:    sounds,
				MaxVoices: maxVoicesPerFrame,
				MinSpeed:  minClickSpeed,
			})
		}
	}

	overlay := debugui.NewOverlay()
	overlay.Visible = cfg.Debug
	perf := debugui.SpawnDebugUI(overlay, scheduler)

	game := &Game{
		scheduler: scheduler,
		renderer:  render.NewRenderer(),
		overlay:   overlay,
		perf:      perf,
		backend:   backend,
		timer:     debugui.NewFrameTimer(),
	}

	log.Printf("Starting %dx%d, max %d bodies, gravity %g", cfg.Width, cfg.Height, cfg.Params.MaxBodies, cfg.Params.Gravity)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
