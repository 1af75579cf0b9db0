package ecs

import "sort"

// StorageStats describes one component storage.
type StorageStats struct {
	Type  string
	Count int
}

// WorldStats is a point-in-time snapshot of world occupancy.
type WorldStats struct {
	EntityCount    int
	TotalCreated   uint32
	ComponentTypes int
	Storages       []StorageStats
}

// CollectStats snapshots entity and storage counts, with storages sorted
// by type name for stable display.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		EntityCount:    w.entities.ActiveCount(),
		TotalCreated:   w.entities.TotalCreated(),
		ComponentTypes: w.components.TypeCount(),
	}

	for t, s := range w.components.storages {
		stats.Storages = append(stats.Storages, StorageStats{
			Type:  t.Name(),
			Count: s.Len(),
		})
	}

	sort.Slice(stats.Storages, func(i, j int) bool {
		return stats.Storages[i].Type < stats.Storages[j].Type
	})

	return stats
}
