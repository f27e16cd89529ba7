package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// DebugOverlay prints per-character state and outlines collider bounds.
type DebugOverlay struct{}

func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{}
}

func (d *DebugOverlay) Draw(w *ecs.World, screen *ebiten.Image, view View) {
	if d == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		bb := c.WorldBounds(t)
		x0, y0 := view.ToScreen(bb.L, bb.T)
		x1, y1 := view.ToScreen(bb.R, bb.B)
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, colliderColor(c.Kind), false)
	})

	ebitenutil.DebugPrint(screen, HUD(w, ebiten.ActualTPS(), ebiten.ActualFPS()))
}

// HUD is the overlay text: rates, then one line per character.
func HUD(w *ecs.World, tps, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %0.1f FPS: %0.1f\n", tps, fps)
	ecs.ForEach2(w, component.CharacterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Character, t *component.Transform) {
		frame := -1
		if s, ok := ecs.Get(w, e, component.AtlasSpriteComponent.Kind()); ok {
			frame = s.Index
		}
		fmt.Fprintf(&b, "%s state=%s frame=%d pos=(%0.1f, %0.1f)\n", e, c.State, frame, t.X, t.Y)
	})
	return b.String()
}

func colliderColor(k component.ColliderKind) color.Color {
	switch k {
	case component.ColliderScoreable:
		return colornames.Gold
	default:
		return colornames.Lime
	}
}
