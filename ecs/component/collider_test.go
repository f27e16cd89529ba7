package component

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestColliderWorldBounds(t *testing.T) {
	c := &Collider{Kind: ColliderSolid, Bounds: cp.NewBBForExtents(cp.Vector{X: 0, Y: -6}, 12, 25)}
	got := c.WorldBounds(&Transform{X: 100, Y: 50})
	want := cp.BB{L: 88, B: 19, R: 112, T: 69}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if c.WorldBounds(nil) != c.Bounds {
		t.Fatalf("nil transform should return local bounds")
	}
	if ColliderScoreable.String() != "scoreable" || ColliderKind(9).String() != "unknown" {
		t.Fatalf("unexpected collider kind names")
	}
}
