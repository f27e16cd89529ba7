package system

import (
	"fmt"
	"testing"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/input"
)

func TestResolveMovementStateAllCombinations(t *testing.T) {
	type held = input.Held
	tests := []struct {
		held held
		want component.MovementState
	}{
		{held{}, component.MovementNone},
		{held{Up: true}, component.MovementUp},
		{held{Down: true}, component.MovementDown},
		{held{Left: true}, component.MovementLeft},
		{held{Right: true}, component.MovementRight},
		{held{Up: true, Left: true}, component.MovementUpLeft},
		{held{Up: true, Right: true}, component.MovementUpRight},
		{held{Down: true, Left: true}, component.MovementDownLeft},
		{held{Down: true, Right: true}, component.MovementDownRight},
		// opposing pairs fall through to the first single-direction rule
		{held{Up: true, Down: true}, component.MovementUp},
		{held{Left: true, Right: true}, component.MovementLeft},
		{held{Up: true, Down: true, Left: true}, component.MovementUpLeft},
		{held{Up: true, Down: true, Right: true}, component.MovementUpRight},
		{held{Up: true, Left: true, Right: true}, component.MovementUpLeft},
		{held{Down: true, Left: true, Right: true}, component.MovementDownLeft},
		{held{Up: true, Down: true, Left: true, Right: true}, component.MovementUpLeft},
	}

	seen := map[held]bool{}
	for _, tc := range tests {
		seen[tc.held] = true
		t.Run(fmt.Sprintf("%+v", tc.held), func(t *testing.T) {
			if got := ResolveMovementState(tc.held); got != tc.want {
				t.Fatalf("ResolveMovementState(%+v) = %v, want %v", tc.held, got, tc.want)
			}
		})
	}
	if len(seen) != 16 {
		t.Fatalf("expected all 16 key combinations covered, got %d", len(seen))
	}
}

func newPlayerWorld(t *testing.T, binds input.Bindings) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Binds: binds}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{Speed: 400}); err != nil {
		t.Fatal(err)
	}
	return w, e
}

func TestMovementStateSystemUsesBindings(t *testing.T) {
	arrows := input.Bindings{Up: input.KeyArrowUp, Down: input.KeyArrowDown, Left: input.KeyArrowLeft, Right: input.KeyArrowRight}
	tests := []struct {
		name  string
		binds input.Bindings
		keys  input.KeySet
		want  component.MovementState
	}{
		{"wasd_diagonal", input.WASD, input.NewKeySet(input.KeyS, input.KeyD), component.MovementDownRight},
		{"wasd_ignores_arrows", input.WASD, input.NewKeySet(input.KeyArrowUp), component.MovementNone},
		{"arrows_left", arrows, input.NewKeySet(input.KeyArrowLeft, input.KeyW), component.MovementLeft},
		{"nothing_held", input.WASD, input.NewKeySet(), component.MovementNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, e := newPlayerWorld(t, tc.binds)
			NewMovementStateSystem().Update(w, ecs.Tick{DT: 1.0 / 60, Keys: tc.keys})
			c, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
			if c.State != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, c.State)
			}
			if c.Speed != 400 {
				t.Fatalf("speed must not change, got %v", c.Speed)
			}
		})
	}
}

func TestMovementStateOverwrittenEveryTick(t *testing.T) {
	w, e := newPlayerWorld(t, input.WASD)
	sys := NewMovementStateSystem()
	c, _ := ecs.Get(w, e, component.CharacterComponent.Kind())

	sys.Update(w, ecs.Tick{Keys: input.NewKeySet(input.KeyW)})
	if c.State != component.MovementUp {
		t.Fatalf("expected up, got %v", c.State)
	}
	sys.Update(w, ecs.Tick{Keys: input.NewKeySet(input.KeyW)})
	if c.State != component.MovementUp {
		t.Fatalf("unchanged input should resolve the same state, got %v", c.State)
	}
	sys.Update(w, ecs.Tick{})
	if c.State != component.MovementNone {
		t.Fatalf("releasing keys should resolve none, got %v", c.State)
	}
}
