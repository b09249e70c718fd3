package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballfall/sim"
)

type bodyRow struct {
	Id       sim.BodyId
	Position string
	Velocity string
	Color    string
}

func inspectorRows(world *sim.World) []bodyRow {
	rows := make([]bodyRow, 0, world.Len())
	for b := range world.Iter() {
		rows = append(rows, bodyRow{
			Id:       b.Id,
			Position: fmt.Sprintf("%.1f, %.1f", b.X, b.Y),
			Velocity: fmt.Sprintf("%.1f, %.1f", b.VX, b.VY),
			Color:    b.Color.Hex(),
		})
	}
	return rows
}

// BodyInspector lists live bodies oldest first and shows the selected one in
// detail.
type BodyInspector struct {
	selected sim.BodyId
}

func NewBodyInspector() *BodyInspector {
	return &BodyInspector{}
}

func (bi *BodyInspector) Render(world *sim.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 40), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 300), imgui.CondOnce)

	if !imgui.BeginV("Bodies", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("BodyTable", 4, tableFlags, imgui.NewVec2(0, 180), 0) {
		imgui.TableSetupColumn("Id")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Velocity")
		imgui.TableSetupColumn("Color")
		imgui.TableHeadersRow()

		for _, row := range inspectorRows(world) {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Id), bi.selected == row.Id, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bi.selected = row.Id
			}

			imgui.TableNextColumn()
			imgui.Text(row.Position)
			imgui.TableNextColumn()
			imgui.Text(row.Velocity)
			imgui.TableNextColumn()
			imgui.Text(row.Color)
		}

		imgui.EndTable()
	}

	imgui.Separator()
	if b, ok := world.Get(bi.selected); ok {
		imgui.Text(fmt.Sprintf("Body %d", b.Id))
		imgui.Indent()
		imgui.Text(fmt.Sprintf("Radius: %.1f", b.Radius))
		imgui.Text(fmt.Sprintf("Speed: %.2f", b.Speed()))
		imgui.Text(fmt.Sprintf("Kinetic Energy: %.2f", b.KineticEnergy()))
		r, g, bl := b.Color.RGB255()
		imgui.TextColored(imgui.NewVec4(float32(r)/255, float32(g)/255, float32(bl)/255, 1), b.Color.Hex())
		imgui.Unindent()
	} else {
		imgui.Text("Select a body")
	}

	imgui.End()
}
