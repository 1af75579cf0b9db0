package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/arcwelt/derelict/ecs"
	"github.com/arcwelt/derelict/ecs/debugui"
	debugui_ebiten "github.com/arcwelt/derelict/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and overlays the debug windows on the frame.
type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	backend   debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin the ImGui frame before executing systems
	g.backend.BeginFrame()

	// Execute all ECS systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End the ImGui frame after systems complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw the ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create the Ebiten window and ImGui backend
	backend := debugui_ebiten.NewBackend("Debug Inspectors", 1280, 720)

	// Set up the world and the debug windows
	w := ecs.NewWorld()
	debugui.RegisterDebugUIComponents(w)
	ecs.SetResource(w, debugui.ImguiInputState{})

	scheduler := ecs.NewScheduler(w)
	scheduler.Register(&debugui.ImguiSystem{})
	debugui.SpawnDebugUI(w, scheduler)

	// Spawn an entity with a custom ImGui render function
	w.Spawn().With(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from the world!")
			imgui.End()
		},
	}).Build()

	// Run the game
	game := &Game{world: w, scheduler: scheduler, backend: backend}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
