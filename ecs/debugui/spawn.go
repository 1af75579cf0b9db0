package debugui

import "github.com/arcwelt/derelict/ecs"

// SpawnDebugUI creates the standard debug windows and the ImguiItem
// entities that render them. ImguiSystem must be registered on the
// scheduler for the windows to draw; the inspector follows the browser's
// selection.
func SpawnDebugUI(w *ecs.World, scheduler *ecs.Scheduler) {
	timer := NewFrameTimer()

	browser := w.Spawn().With(NewEntityBrowserComponent(100)).Build()
	inspector := w.Spawn().With(NewComponentInspectorComponent()).Build()
	stats := w.Spawn().With(NewPerformanceStatsComponent(120)).Build()

	w.Spawn().With(ImguiItem{Render: func() {
		if eb := ecs.Get[EntityBrowserComponent](w, browser); eb != nil {
			eb.Render(w)
		}
	}}).Build()

	w.Spawn().With(ImguiItem{Render: func() {
		eb := ecs.Get[EntityBrowserComponent](w, browser)
		ci := ecs.Get[ComponentInspectorComponent](w, inspector)
		if eb == nil || ci == nil {
			return
		}
		ci.Render(w, eb.GetSelectedEntity())
	}}).Build()

	w.Spawn().With(ImguiItem{Render: func() {
		if ps := ecs.Get[PerformanceStatsComponent](w, stats); ps != nil {
			ps.Render(w, scheduler, timer.GetDeltaTime())
		}
	}}).Build()
}

func RegisterDebugUIComponents(w *ecs.World) {
	ecs.RegisterComponent[EntityBrowserComponent](w)
	ecs.RegisterComponent[ComponentInspectorComponent](w)
	ecs.RegisterComponent[PerformanceStatsComponent](w)
	ecs.RegisterComponent[ImguiItem](w)
}
