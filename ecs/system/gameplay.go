package system

import "github.com/alprun/alprun/ecs"

// NewGameplayScheduler wires the per-tick order: resolve movement state, run the animation
// clock, advance frames, then translate characters and cameras.
func NewGameplayScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewMovementStateSystem(),
		NewAnimationClockSystem(),
		NewAnimationSystem(),
		NewCharacterTranslationSystem(),
		NewCameraTranslationSystem(),
	)
}
