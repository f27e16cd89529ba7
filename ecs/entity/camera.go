package entity

import (
	"fmt"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, prefabs.CameraPrefab)
}

func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	camera, err := NewCamera(w)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, camera, x, y); err != nil {
		ecs.DestroyEntity(w, camera)
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
