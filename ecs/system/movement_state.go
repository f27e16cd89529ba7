package system

import (
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/input"
)

// MovementStateSystem resolves each player's bound keys into its character's MovementState.
type MovementStateSystem struct{}

func NewMovementStateSystem() *MovementStateSystem {
	return &MovementStateSystem{}
}

func (s *MovementStateSystem) Update(w *ecs.World, tick ecs.Tick) {
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.CharacterComponent.Kind(), func(_ ecs.Entity, p *component.Player, c *component.Character) {
		c.State = ResolveMovementState(p.Binds.Sample(tick.Keys))
	})
}

// ResolveMovementState maps held directions to a state. The first matching rule wins, so
// diagonals beat cardinals and up+left beats every other corner when all four are held.
func ResolveMovementState(h input.Held) component.MovementState {
	switch {
	case h.Up && h.Left:
		return component.MovementUpLeft
	case h.Down && h.Left:
		return component.MovementDownLeft
	case h.Up && h.Right:
		return component.MovementUpRight
	case h.Down && h.Right:
		return component.MovementDownRight
	case h.Up:
		return component.MovementUp
	case h.Down:
		return component.MovementDown
	case h.Left:
		return component.MovementLeft
	case h.Right:
		return component.MovementRight
	default:
		return component.MovementNone
	}
}
