// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/arcwelt/derelict/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a world
// resource. Use it to decide whether the game should ignore input that
// ImGui is consuming.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render
// functions to the end of the tick. It also refreshes the
// ImguiInputState resource.
type ImguiSystem struct{}

func (i *ImguiSystem) Execute(tick *ecs.Tick) {
	if state := ecs.Resource[ImguiInputState](tick.World); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, item := range ecs.Query1[ImguiItem](tick.World) {
		tick.Commands.Defer(item.Render)
	}
}
