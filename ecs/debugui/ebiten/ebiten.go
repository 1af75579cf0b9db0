// Package ebiten bridges the debug inspectors to an Ebiten render loop.
// The game loop calls BeginFrame before stepping the scheduler, EndFrame
// after, and Draw to composite the inspector windows over the frame.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the backend and opens the game window. The imgui.ini
// layout file is disabled so inspector windows reset between runs.
func NewBackend(title string, width, height int) ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: b}
}
