package system

import (
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
)

// frameRange is one walk cycle row of the character atlas, both ends inclusive.
type frameRange struct {
	first, last int
}

// Row layout of the 9x4 walk cycle sheet. Changing the sheet means changing these.
var (
	upFrames    = frameRange{0, 8}
	leftFrames  = frameRange{9, 17}
	downFrames  = frameRange{18, 26}
	rightFrames = frameRange{27, 35}

	allFrameRanges = [...]frameRange{upFrames, leftFrames, downFrames, rightFrames}
)

func (r frameRange) contains(i int) bool {
	return i >= r.first && i <= r.last
}

// step advances within the row and wraps to its first frame. An index from another row
// (or out of range) snaps to the first frame.
func (r frameRange) step(i int) int {
	if i >= r.first && i < r.last {
		return i + 1
	}
	return r.first
}

// AnimationSystem advances the sprite frame of every animated character whose clock fired.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, _ ecs.Tick) {
	ecs.ForEach3(w, component.AnimationTimerComponent.Kind(), component.CharacterComponent.Kind(), component.AtlasSpriteComponent.Kind(), func(_ ecs.Entity, t *component.AnimationTimer, c *component.Character, s *component.AtlasSprite) {
		if !t.Finished {
			return
		}
		t.Reset()
		s.Index = NextFrameIndex(c.State, s.Index)
	})
}

// NextFrameIndex is the frame shown after one clock fire. Diagonals share the row of their
// horizontal component. MovementNone returns to the first frame of whichever row index is in.
func NextFrameIndex(state component.MovementState, index int) int {
	switch state {
	case component.MovementRight, component.MovementDownRight, component.MovementUpRight:
		return rightFrames.step(index)
	case component.MovementDown:
		return downFrames.step(index)
	case component.MovementLeft, component.MovementDownLeft, component.MovementUpLeft:
		return leftFrames.step(index)
	case component.MovementUp:
		return upFrames.step(index)
	case component.MovementNone:
		for _, r := range allFrameRanges {
			if r.contains(index) {
				return r.first
			}
		}
		return index
	default:
		return index
	}
}
