package render

import (
	"sort"

	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRenderSystem draws every atlas sprite centred on its transform, lowest Z first.
type SpriteRenderSystem struct {
	order []ecs.Entity
}

func NewSpriteRenderSystem() *SpriteRenderSystem {
	return &SpriteRenderSystem{}
}

func (r *SpriteRenderSystem) Draw(w *ecs.World, screen *ebiten.Image, view View) {
	if r == nil || w == nil || screen == nil {
		return
	}

	r.order = append(r.order[:0], w.Query(component.TransformComponent.Kind(), component.AtlasSpriteComponent.Kind())...)
	sortByZ(w, r.order)

	for _, e := range r.order {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.AtlasSpriteComponent.Kind())
		if t == nil || s == nil {
			continue
		}
		img, ok := Cell(s.Atlas, s.Index)
		if !ok {
			continue
		}

		sx, sy := scaleOf(t)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(s.Atlas.CellW)/2, -float64(s.Atlas.CellH)/2)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(-t.Rotation)
		op.GeoM.Scale(view.Zoom, view.Zoom)
		op.GeoM.Translate(view.ToScreen(t.X, t.Y))
		if !s.Transparent {
			op.Blend = ebiten.BlendCopy
		}
		screen.DrawImage(img, op)
	}
}

func sortByZ(w *ecs.World, entities []ecs.Entity) {
	z := func(e ecs.Entity) float64 {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			return t.Z
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		zi, zj := z(entities[i]), z(entities[j])
		if zi != zj {
			return zi < zj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

func scaleOf(t *component.Transform) (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}
