package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.png
var assetsFS embed.FS

// PlayerSheet is the professor walk cycle: 9 columns by 4 rows, rows ordered up, left, down, right.
const PlayerSheet = "professor_walk_cycle_no_hat.png"

// Tiles is the default tileset used by the embedded maps.
const Tiles = "tiles.png"

// LoadFile reads an asset by assets-relative path, preferring a copy on disk under assets/
// so art can be swapped without a rebuild.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadImage decodes an image asset. The result is CPU-side; renderers upload it on demand.
func LoadImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
