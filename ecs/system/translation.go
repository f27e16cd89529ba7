package system

import (
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/input"
)

// TranslationSpeed is world units per second along each held axis.
const TranslationSpeed = 1000.0

// TranslationSystem moves every entity holding a T and a transform by the fixed W/A/S/D keys.
// It ignores Player bindings and MovementState.
// TODO: decide whether movement should follow Player bindings like the animation does.
type TranslationSystem[T any] struct {
	kind component.ComponentKind[T]
}

func NewTranslationSystem[T any](kind component.ComponentKind[T]) *TranslationSystem[T] {
	return &TranslationSystem[T]{kind: kind}
}

// NewCharacterTranslationSystem moves characters.
func NewCharacterTranslationSystem() *TranslationSystem[component.Character] {
	return NewTranslationSystem(component.CharacterComponent.Kind())
}

// NewCameraTranslationSystem moves cameras.
func NewCameraTranslationSystem() *TranslationSystem[component.Camera] {
	return NewTranslationSystem(component.CameraComponent.Kind())
}

func (s *TranslationSystem[T]) Update(w *ecs.World, tick ecs.Tick) {
	dx, dy := Direction(tick.Keys)
	if dx == 0 && dy == 0 {
		return
	}
	step := tick.DT * TranslationSpeed
	ecs.ForEach2(w, s.kind, component.TransformComponent.Kind(), func(_ ecs.Entity, _ *T, t *component.Transform) {
		t.X += dx * step
		t.Y += dy * step
	})
}

// Direction sums the unit axes of the held W/A/S/D keys. Diagonals are not normalized and
// opposite keys cancel.
func Direction(keys input.Snapshot) (x, y float64) {
	if keys == nil {
		return 0, 0
	}
	if keys.Pressed(input.KeyA) {
		x -= 1
	}
	if keys.Pressed(input.KeyD) {
		x += 1
	}
	if keys.Pressed(input.KeyW) {
		y += 1
	}
	if keys.Pressed(input.KeyS) {
		y -= 1
	}
	return x, y
}
