package ecs

import "reflect"

// Commands buffers structural mutations until the end of the frame.
// Systems read the world directly but never change its shape mid-iteration;
// spawns, despawns and component changes queue here and apply on Flush.
type Commands struct {
	spawns   []spawnCommand
	despawns []Entity
	adds     []addComponentCommand
	removes  []removeComponentCommand
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    Entity
	component any
}

type removeComponentCommand struct {
	entity   Entity
	compType reflect.Type
}

// Spawn queues a new entity with the given components. The components
// must be of registered types; unregistered ones are dropped at flush.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Despawn queues an entity destruction.
func (c *Commands) Despawn(e Entity) {
	c.despawns = append(c.despawns, e)
}

// AddComponent queues a component addition.
func (c *Commands) AddComponent(e Entity, component any) {
	c.adds = append(c.adds, addComponentCommand{entity: e, component: component})
}

// RemoveComponent queues a component removal by type.
func (c *Commands) RemoveComponent(e Entity, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: e, compType: compType})
}

// Defer queues an arbitrary function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all queued commands to the world and resets the buffer.
// Despawns apply first so later component changes on a despawned entity
// become no-ops.
func (c *Commands) Flush(w *World) {
	despawned := make(map[Entity]bool)

	for _, e := range c.despawns {
		if w.Despawn(e) {
			despawned[e] = true
		}
	}

	for _, cmd := range c.removes {
		if !despawned[cmd.entity] {
			w.components.removeType(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if despawned[cmd.entity] || !w.IsValid(cmd.entity) {
			continue
		}
		w.components.insertAny(cmd.entity, cmd.component)
	}

	for _, cmd := range c.spawns {
		b := w.Spawn()
		for _, comp := range cmd.components {
			b.With(comp)
		}
		b.Build()
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
