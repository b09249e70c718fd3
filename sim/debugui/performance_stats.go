package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/ballfall/sim"
)

// PerformanceStats keeps a rolling history of frame times and kinetic energy
// and draws them next to the scheduler's per-system timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	energyHistory []float32
	frameIndex    int
	recorded      int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		energyHistory: make([]float32, historyFrames),
	}
}

// Record stores one frame's delta (seconds) and world stats.
func (ps *PerformanceStats) Record(deltaTime float32, stats *sim.WorldStats) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.energyHistory[ps.frameIndex] = float32(stats.KineticEnergy)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
	if ps.recorded < ps.historyFrames {
		ps.recorded++
	}
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(scheduler *sim.Scheduler) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 40), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 360), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	world := scheduler.World().CollectStats()
	avgFrameTime := ps.AverageFrameTime()

	imgui.Text(fmt.Sprintf("Live Bodies: %d / %d", world.Live, world.Max))
	imgui.Text(fmt.Sprintf("Free List: %d", world.Free))
	imgui.Text(fmt.Sprintf("Spawned: %d  Evicted: %d  Reused: %d", world.Spawned, world.Evicted, world.Reused))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if implot.BeginPlotV("Kinetic Energy", imgui.NewVec2(-1, 140), 0) {
		implot.SetupAxesV("Frame", "Energy", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("KE", &ps.energyHistory[0], int32(len(ps.energyHistory)))
		implot.EndPlot()
	}

	if imgui.TreeNodeStr("System Timings") {
		stats := scheduler.GetStats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
