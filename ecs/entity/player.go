package entity

import (
	"fmt"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, prefabs.PlayerPrefab)
}

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := NewPlayer(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, entity, x, y); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return entity, nil
}
