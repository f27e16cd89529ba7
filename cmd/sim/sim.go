package main

import (
	"fmt"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/ecs/entity"
	"github.com/alprun/alprun/ecs/system"
	"github.com/alprun/alprun/input"
)

// Step is the player's observable state after one tick.
type Step struct {
	Frame   uint64
	Keys    string
	State   component.MovementState
	Index   int
	X, Y    float64
	CameraX float64
	CameraY float64
}

// Simulate spawns the default scene and runs it for ticks fixed steps of dt, reporting the
// player after every tick.
func Simulate(src input.Source, level string, ticks int, dt float64, report func(Step)) error {
	w := ecs.NewWorld()
	player, camera, err := entity.Spawn(w, level)
	if err != nil {
		return err
	}
	sched := system.NewGameplayScheduler()

	for frame := uint64(1); frame <= uint64(ticks); frame++ {
		keys, err := src.Sample(frame)
		if err != nil {
			return err
		}
		sched.Update(w, ecs.Tick{Frame: frame, DT: dt, Keys: keys})

		step := Step{Frame: frame}
		if ks, ok := keys.(input.KeySet); ok {
			step.Keys = ks.String()
		}
		c, ok := ecs.Get(w, player, component.CharacterComponent.Kind())
		if !ok {
			return fmt.Errorf("tick %d: player has no character", frame)
		}
		step.State = c.State
		if s, ok := ecs.Get(w, player, component.AtlasSpriteComponent.Kind()); ok {
			step.Index = s.Index
		}
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			step.X, step.Y = t.X, t.Y
		}
		if t, ok := ecs.Get(w, camera, component.TransformComponent.Kind()); ok {
			step.CameraX, step.CameraY = t.X, t.Y
		}
		if report != nil {
			report(step)
		}
	}
	return nil
}
