package system

import (
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
)

// AnimationClockSystem accrues frame time on every animation timer.
type AnimationClockSystem struct{}

func NewAnimationClockSystem() *AnimationClockSystem {
	return &AnimationClockSystem{}
}

func (s *AnimationClockSystem) Update(w *ecs.World, tick ecs.Tick) {
	ecs.ForEach(w, component.AnimationTimerComponent.Kind(), func(_ ecs.Entity, t *component.AnimationTimer) {
		t.Tick(tick.DT)
	})
}
