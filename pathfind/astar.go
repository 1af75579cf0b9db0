// Package pathfind plans grid paths with A*. Movement is 4-directional
// with unit edge cost and a Manhattan heuristic; paths come back as
// world-space points ready for steering.
package pathfind

import (
	"container/heap"

	"github.com/kamstrup/intmap"

	"github.com/arcwelt/derelict/collision"
	"github.com/arcwelt/derelict/ecs"
	"github.com/arcwelt/derelict/geom"
	"github.com/arcwelt/derelict/worldmap"
)

// Result is the outcome of one plan. Explored lists every expanded cell
// in expansion order, for visualization. When Found is false both slices
// are as far as the search got; blocked endpoints leave them empty.
type Result struct {
	Path     []geom.Vec2
	Explored []worldmap.Cell
	Found    bool
}

// Planner runs A* over a map. It carries no per-search state, so one
// planner serves any number of searches.
type Planner struct {
	Map *worldmap.Map
}

// NewPlanner creates a planner over the given map.
func NewPlanner(m *worldmap.Map) *Planner {
	return &Planner{Map: m}
}

// UpdateMap swaps the map under the planner.
func (p *Planner) UpdateMap(m *worldmap.Map) {
	p.Map = m
}

// FindPath plans against static walls only.
func (p *Planner) FindPath(start, goal geom.Vec2) Result {
	return p.plan(start, goal, p.Map.IsWall)
}

// FindPathInWorld plans against static walls plus live blocking colliders,
// probed at each cell's world center.
func (p *Planner) FindPathInWorld(start, goal geom.Vec2, w *ecs.World) Result {
	return p.plan(start, goal, func(c worldmap.Cell) bool {
		if p.Map.IsWall(c) {
			return true
		}
		x, z := p.Map.GridToWorld(c)
		return collision.CheckGridCollision(w, x, z)
	})
}

type node struct {
	cell  worldmap.Cell
	gCost float32
	fCost float32
}

// nodeHeap is a min-heap on fCost. Tie order between equal costs is
// unspecified.
type nodeHeap []node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return h[i].fCost < h[j].fCost }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// cellKey packs a cell into a uint64 for the int-keyed search maps.
func cellKey(c worldmap.Cell) uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
}

func manhattan(a, b worldmap.Cell) float32 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float32(dx + dy)
}

func (p *Planner) plan(start, goal geom.Vec2, blocked func(worldmap.Cell) bool) Result {
	startCell := p.Map.WorldToGrid(start.X, start.Y)
	goalCell := p.Map.WorldToGrid(goal.X, goal.Y)

	if blocked(startCell) || blocked(goalCell) {
		return Result{}
	}

	open := &nodeHeap{}
	heap.Init(open)
	closed := intmap.New[uint64, bool](64)
	cameFrom := intmap.New[uint64, worldmap.Cell](64)
	gScore := intmap.New[uint64, float32](64)
	var explored []worldmap.Cell

	heap.Push(open, node{
		cell:  startCell,
		gCost: 0,
		fCost: manhattan(startCell, goalCell),
	})
	gScore.Put(cellKey(startCell), 0)

	for open.Len() > 0 {
		current := heap.Pop(open).(node)
		explored = append(explored, current.cell)

		if current.cell == goalCell {
			return Result{
				Path:     p.reconstruct(cameFrom, current.cell, start, goal),
				Explored: explored,
				Found:    true,
			}
		}

		closed.Put(cellKey(current.cell), true)

		for _, next := range [4]worldmap.Cell{
			{X: current.cell.X + 1, Y: current.cell.Y},
			{X: current.cell.X - 1, Y: current.cell.Y},
			{X: current.cell.X, Y: current.cell.Y + 1},
			{X: current.cell.X, Y: current.cell.Y - 1},
		} {
			if next.X < 0 || next.Y < 0 || next.X >= p.Map.Width || next.Y >= p.Map.Height {
				continue
			}
			key := cellKey(next)
			if _, done := closed.Get(key); done {
				continue
			}
			if blocked(next) {
				continue
			}

			tentative := current.gCost + 1
			if existing, ok := gScore.Get(key); ok && tentative >= existing {
				continue
			}

			cameFrom.Put(key, current.cell)
			gScore.Put(key, tentative)
			heap.Push(open, node{
				cell:  next,
				gCost: tentative,
				fCost: tentative + manhattan(next, goalCell),
			})
		}
	}

	return Result{Explored: explored}
}

// reconstruct walks the parent chain from the goal cell back to the
// start. The literal goal goes in first and the literal start last, then
// the whole list flips and drops the start since the walker is already
// standing on it. The goal end is exact while intermediate points snap
// to cell centers.
func (p *Planner) reconstruct(cameFrom *intmap.Map[uint64, worldmap.Cell], current worldmap.Cell, start, goal geom.Vec2) []geom.Vec2 {
	path := []geom.Vec2{goal}

	for {
		parent, ok := cameFrom.Get(cellKey(current))
		if !ok {
			break
		}
		x, z := p.Map.GridToWorld(current)
		path = append(path, geom.V2(x, z))
		current = parent
	}

	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path[1:]
}
