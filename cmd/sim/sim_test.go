package main

import (
	"testing"

	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/input"
	"github.com/alprun/alprun/prefabs"
)

func TestSimulateScriptedWalk(t *testing.T) {
	src, err := input.NewScriptSource("test", []byte(`keys := tick <= 3 ? ["W", "D"] : []`))
	if err != nil {
		t.Fatal(err)
	}

	var steps []Step
	if err := Simulate(src, "", 4, 0.05, func(s Step) { steps = append(steps, s) }); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}

	// up+right animates the right row, starting from frame 0 of the up row.
	wantIndex := []int{27, 28, 29, 27}
	for i, s := range steps[:3] {
		if s.State != component.MovementUpRight {
			t.Fatalf("tick %d: expected up_right, got %v", s.Frame, s.State)
		}
		if s.Keys != "D+W" {
			t.Fatalf("tick %d: keys %q", s.Frame, s.Keys)
		}
		if s.Index != wantIndex[i] {
			t.Fatalf("tick %d: expected frame %d, got %d", s.Frame, wantIndex[i], s.Index)
		}
	}
	last := steps[3]
	if last.State != component.MovementNone || last.Index != 27 {
		t.Fatalf("after release expected none at 27, got %v at %d", last.State, last.Index)
	}
	if !near(last.X, 150) || !near(last.Y, 150) {
		t.Fatalf("expected player at (150,150), got (%v,%v)", last.X, last.Y)
	}
	if last.CameraX != last.X || last.CameraY != last.Y {
		t.Fatalf("camera should move with the player, got (%v,%v)", last.CameraX, last.CameraY)
	}
}

func TestSimulateEmbeddedScripts(t *testing.T) {
	for _, name := range []string{"walk_square", "idle_blink"} {
		t.Run(name, func(t *testing.T) {
			src, err := prefabs.LoadScript(name)
			if err != nil {
				t.Fatal(err)
			}
			in, err := input.NewScriptSource(name, src)
			if err != nil {
				t.Fatal(err)
			}
			if err := Simulate(in, "", 120, 1.0/60, nil); err != nil {
				t.Fatalf("Simulate: %v", err)
			}
		})
	}
}

func TestSimulateScriptError(t *testing.T) {
	src, err := input.NewScriptSource("bad", []byte(`keys := ["Nope"]`))
	if err != nil {
		t.Fatal(err)
	}
	if err := Simulate(src, "", 1, 0.05, nil); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
