package component

import "github.com/jakecoffman/cp"

type ColliderKind uint8

const (
	ColliderSolid ColliderKind = iota
	ColliderScoreable
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderSolid:
		return "solid"
	case ColliderScoreable:
		return "scoreable"
	default:
		return "unknown"
	}
}

// Collider tags an entity for collision. Bounds is local to the entity's transform.
// Nothing resolves collisions yet; the debug overlay draws the bounds.
type Collider struct {
	Kind   ColliderKind
	Bounds cp.BB
}

var ColliderComponent = NewComponent[Collider]()

// WorldBounds offsets the collider bounds by a transform position.
func (c *Collider) WorldBounds(t *Transform) cp.BB {
	if t == nil {
		return c.Bounds
	}
	return cp.BB{
		L: c.Bounds.L + t.X,
		B: c.Bounds.B + t.Y,
		R: c.Bounds.R + t.X,
		T: c.Bounds.T + t.Y,
	}
}
