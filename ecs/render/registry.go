package render

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	imagesMu sync.Mutex
	images   = map[string]*ebiten.Image{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	imagesMu.Lock()
	images[key] = img
	imagesMu.Unlock()
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	imagesMu.Lock()
	defer imagesMu.Unlock()
	return images[key]
}

// Upload returns the GPU copy of src cached under key, creating it on first use.
func Upload(key string, src image.Image) *ebiten.Image {
	if img := GetImage(key); img != nil {
		return img
	}
	if src == nil {
		return nil
	}
	img, ok := src.(*ebiten.Image)
	if !ok {
		img = ebiten.NewImageFromImage(src)
	}
	RegisterImage(key, img)
	return img
}
