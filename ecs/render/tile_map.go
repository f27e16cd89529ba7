package render

import (
	"fmt"

	"github.com/alprun/alprun/assets"
	"github.com/alprun/alprun/atlas"
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/levels"
	"github.com/hajimehoshi/ebiten/v2"
)

// TileMapRenderSystem draws tile map layers. Call it before the sprite pass so maps sit
// under everything else.
type TileMapRenderSystem struct {
	tilesets map[string]*atlas.Atlas
}

func NewTileMapRenderSystem() *TileMapRenderSystem {
	return &TileMapRenderSystem{tilesets: map[string]*atlas.Atlas{}}
}

func (r *TileMapRenderSystem) Draw(w *ecs.World, screen *ebiten.Image, view View) error {
	if r == nil || w == nil || screen == nil {
		return nil
	}
	var firstErr error
	ecs.ForEach2(w, component.TileMapComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.TileMap, t *component.Transform) {
		if m.Level == nil {
			return
		}
		tiles, err := r.tileset(m.Level)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		r.drawLevel(screen, view, m, t, tiles)
	})
	return firstErr
}

// TopLeft is the world position of the map's top-left corner.
func TopLeft(m *component.TileMap, t *component.Transform) (float64, float64) {
	if !m.Center || m.Level == nil {
		return t.X, t.Y
	}
	pw, ph := m.Level.PixelSize()
	return t.X - pw/2, t.Y + ph/2
}

func (r *TileMapRenderSystem) drawLevel(screen *ebiten.Image, view View, m *component.TileMap, t *component.Transform, tiles *atlas.Atlas) {
	lvl := m.Level
	left, top := TopLeft(m, t)
	tw, th := float64(lvl.TileW), float64(lvl.TileH)
	sw, sh := float64(tiles.CellW), float64(tiles.CellH)

	for layer := range lvl.Layers {
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				idx := lvl.Tile(layer, x, y)
				if idx == levels.Empty {
					continue
				}
				img, ok := Cell(tiles, idx)
				if !ok {
					continue
				}
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(tw/sw*view.Zoom, th/sh*view.Zoom)
				op.GeoM.Translate(view.ToScreen(left+float64(x)*tw, top-float64(y)*th))
				screen.DrawImage(img, op)
			}
		}
	}
}

func (r *TileMapRenderSystem) tileset(lvl *levels.Level) (*atlas.Atlas, error) {
	if a, ok := r.tilesets[lvl.Tileset]; ok {
		return a, nil
	}
	img, err := assets.LoadImage(lvl.Tileset)
	if err != nil {
		return nil, fmt.Errorf("tile map %s: %w", lvl.Name, err)
	}
	b := img.Bounds()
	a, err := atlas.FromGrid(lvl.Tileset, img, b.Dx()/lvl.TileW, b.Dy()/lvl.TileH)
	if err != nil {
		return nil, fmt.Errorf("tile map %s: %w", lvl.Name, err)
	}
	r.tilesets[lvl.Tileset] = a
	return a, nil
}
