package entity

import (
	"fmt"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/levels"
	"github.com/alprun/alprun/prefabs"
)

// NewLevel spawns the map prefab, optionally swapping in another level by name.
func NewLevel(w *ecs.World, name string) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabs.MapPrefab)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return e, nil
	}
	m, ok := ecs.Get(w, e, component.TileMapComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("level: prefab %q has no tile_map", prefabs.MapPrefab)
	}
	if m.Name == name {
		return e, nil
	}
	lvl, err := levels.LoadLevel(name)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("level: %w", err)
	}
	m.Name = lvl.Name
	m.Level = lvl
	return e, nil
}

// Spawn builds the default scene: map, player and camera, in that order.
func Spawn(w *ecs.World, level string) (player, camera ecs.Entity, err error) {
	if _, err = NewLevel(w, level); err != nil {
		return 0, 0, err
	}
	if player, err = NewPlayer(w); err != nil {
		return 0, 0, err
	}
	if camera, err = NewCamera(w); err != nil {
		return 0, 0, err
	}
	return player, camera, nil
}

// Respawn replaces e with a fresh build of the same prefab at e's position, so prefab edits
// (bindings included) take effect. The old entity is destroyed only once the new one exists.
func Respawn(w *ecs.World, e ecs.Entity, prefabPath string) (ecs.Entity, error) {
	x, y := 0.0, 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	next, err := BuildEntity(w, prefabPath)
	if err != nil {
		return e, err
	}
	if err := SetEntityTransform(w, next, x, y); err != nil {
		ecs.DestroyEntity(w, next)
		return e, err
	}
	ecs.DestroyEntity(w, e)
	return next, nil
}
