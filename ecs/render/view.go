package render

import (
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
)

// View maps world coordinates (Y up) to screen pixels (Y down), centred on a camera.
type View struct {
	CamX, CamY float64
	Zoom       float64
	// HalfW and HalfH are half the screen size in pixels.
	HalfW, HalfH float64
}

// NewView builds a view from the first camera in the world. A world without a camera
// looks at the origin with zoom 1.
func NewView(w *ecs.World, screenW, screenH int) View {
	v := View{Zoom: 1, HalfW: float64(screenW) / 2, HalfH: float64(screenH) / 2}
	cam, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		v.CamX, v.CamY = t.X, t.Y
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		v.Zoom = c.Zoom
	}
	return v
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	return v.HalfW + (x-v.CamX)*v.Zoom, v.HalfH - (y-v.CamY)*v.Zoom
}

// ToWorld is the inverse of ToScreen.
func (v View) ToWorld(sx, sy float64) (float64, float64) {
	return (sx-v.HalfW)/v.Zoom + v.CamX, v.CamY - (sy-v.HalfH)/v.Zoom
}
