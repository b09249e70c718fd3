package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballfall/sim"
)

// applyTuning validates p and installs it on the world. A lowered cap is
// enforced by the next eviction pass.
func applyTuning(world *sim.World, p sim.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	world.Params = p
	return nil
}

// TuningPanel edits a world's params while it runs.
type TuningPanel struct {
	commands *sim.Commands
	lastErr  error
}

func NewTuningPanel(commands *sim.Commands) *TuningPanel {
	return &TuningPanel{commands: commands}
}

func (tp *TuningPanel) Render(world *sim.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 410), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 240), imgui.CondOnce)

	if !imgui.BeginV("Tuning", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p := world.Params
	changed := false

	floatField := func(name string, v *float64) {
		f := float32(*v)
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &f) {
			*v = float64(f)
			changed = true
		}
	}

	floatField("Gravity", &p.Gravity)
	floatField("Damping", &p.Damping)
	floatField("Restitution", &p.Restitution)
	floatField("Floor Height", &p.FloorHeight)
	floatField("Spawn VY", &p.SpawnVY)

	maxBodies := int32(p.MaxBodies)
	imgui.Text("Max Bodies:")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
	if imgui.InputInt("##maxbodies", &maxBodies) {
		p.MaxBodies = int(maxBodies)
		changed = true
	}

	if changed {
		tp.lastErr = applyTuning(world, p)
	}

	imgui.Separator()
	if imgui.Button("Clear") {
		tp.commands.Clear()
	}
	imgui.SameLine()
	if imgui.Button("Defaults") {
		p := sim.DefaultParams()
		tp.lastErr = applyTuning(world, p)
	}

	if tp.lastErr != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), tp.lastErr.Error())
	}

	imgui.End()
}
