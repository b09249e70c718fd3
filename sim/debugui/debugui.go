// Package debugui provides a Dear ImGui overlay for inspecting and tuning a
// running simulation.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ballfall/sim"
)

// Item holds a Dear ImGui render function drawn every frame the overlay is
// visible.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Clicks the overlay wants must not spawn bodies.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of debug windows and their shared input state.
type Overlay struct {
	Items   []*Item
	Input   InputState
	Visible bool
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a render function.
func (o *Overlay) Add(render func()) *Item {
	item := &Item{Render: render}
	o.Items = append(o.Items, item)
	return item
}

// Toggle flips visibility and returns the new state.
func (o *Overlay) Toggle() bool {
	o.Visible = !o.Visible
	if !o.Visible {
		o.Input = InputState{}
	}
	return o.Visible
}

// ImguiSystem updates the overlay input state and defers the render
// functions of every item until the frame's commands are flushed.
type ImguiSystem struct {
	Overlay *Overlay
}

func (i *ImguiSystem) Execute(frame *sim.UpdateFrame) {
	if !i.Overlay.Visible {
		return
	}

	io := imgui.CurrentIO()
	i.Overlay.Input.WantCaptureMouse = io.WantCaptureMouse()
	i.Overlay.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Overlay.Items {
		frame.Commands.Defer(item.Render)
	}
}
