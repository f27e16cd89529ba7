package system

import (
	"math"
	"testing"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/input"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		keys   input.Snapshot
		wx, wy float64
	}{
		{"none", input.NewKeySet(), 0, 0},
		{"nil", nil, 0, 0},
		{"w", input.NewKeySet(input.KeyW), 0, 1},
		{"s", input.NewKeySet(input.KeyS), 0, -1},
		{"a", input.NewKeySet(input.KeyA), -1, 0},
		{"d", input.NewKeySet(input.KeyD), 1, 0},
		{"w_d_unnormalized", input.NewKeySet(input.KeyW, input.KeyD), 1, 1},
		{"w_s_cancel", input.NewKeySet(input.KeyW, input.KeyS), 0, 0},
		{"all", input.NewKeySet(input.KeyW, input.KeyA, input.KeyS, input.KeyD), 0, 0},
		{"arrows_ignored", input.NewKeySet(input.KeyArrowUp, input.KeyArrowRight), 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Direction(tc.keys)
			if x != tc.wx || y != tc.wy {
				t.Fatalf("Direction = (%v,%v), want (%v,%v)", x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestTranslationSystems(t *testing.T) {
	tests := []struct {
		name   string
		keys   input.KeySet
		dt     float64
		dx, dy float64
	}{
		{"w_d_diagonal", input.NewKeySet(input.KeyW, input.KeyD), 0.016, 16, 16},
		{"w_s_cancel", input.NewKeySet(input.KeyW, input.KeyS), 0.016, 0, 0},
		{"a_only", input.NewKeySet(input.KeyA), 0.5, -500, 0},
		{"zero_dt", input.NewKeySet(input.KeyD), 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()

			character := ecs.CreateEntity(w)
			_ = ecs.Add(w, character, component.CharacterComponent.Kind(), &component.Character{})
			_ = ecs.Add(w, character, component.TransformComponent.Kind(), &component.Transform{X: 10, Y: 20, Z: 2.5})

			camera := ecs.CreateEntity(w)
			_ = ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: 1})
			_ = ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{Z: 1000})

			static := ecs.CreateEntity(w)
			_ = ecs.Add(w, static, component.TransformComponent.Kind(), &component.Transform{X: 5})

			tick := ecs.Tick{DT: tc.dt, Keys: tc.keys}
			NewCharacterTranslationSystem().Update(w, tick)
			NewCameraTranslationSystem().Update(w, tick)

			ct, _ := ecs.Get(w, character, component.TransformComponent.Kind())
			if !approx(ct.X, 10+tc.dx) || !approx(ct.Y, 20+tc.dy) || ct.Z != 2.5 {
				t.Fatalf("character at (%v,%v,%v)", ct.X, ct.Y, ct.Z)
			}
			cam, _ := ecs.Get(w, camera, component.TransformComponent.Kind())
			if !approx(cam.X, tc.dx) || !approx(cam.Y, tc.dy) || cam.Z != 1000 {
				t.Fatalf("camera at (%v,%v,%v)", cam.X, cam.Y, cam.Z)
			}
			st, _ := ecs.Get(w, static, component.TransformComponent.Kind())
			if st.X != 5 || st.Y != 0 {
				t.Fatalf("entities without character or camera must not move")
			}
		})
	}
}

func TestTranslationIgnoresBindings(t *testing.T) {
	arrows := input.Bindings{Up: input.KeyArrowUp, Down: input.KeyArrowDown, Left: input.KeyArrowLeft, Right: input.KeyArrowRight}
	w, e := newPlayerWorld(t, arrows)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})

	sched := NewGameplayScheduler()
	sched.Update(w, ecs.Tick{DT: 0.01, Keys: input.NewKeySet(input.KeyArrowUp)})

	c, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if c.State != component.MovementUp {
		t.Fatalf("bound arrow should resolve up, got %v", c.State)
	}
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("arrow keys must not translate, moved to (%v,%v)", tr.X, tr.Y)
	}

	sched.Update(w, ecs.Tick{DT: 0.01, Keys: input.NewKeySet(input.KeyW)})
	if c.State != component.MovementNone {
		t.Fatalf("W is unbound for this player, got %v", c.State)
	}
	if !approx(tr.Y, 10) {
		t.Fatalf("W should still translate, y=%v", tr.Y)
	}
}
