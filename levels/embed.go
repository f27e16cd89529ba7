package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Empty marks a cell with no tile.
const Empty = -1

// Level is an orthogonal tile map. Each layer is row-major, Width*Height long, and holds
// tileset cell indices or Empty. Layers draw in order.
type Level struct {
	Name    string  `json:"-"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	TileW   int     `json:"tile_w"`
	TileH   int     `json:"tile_h"`
	Tileset string  `json:"tileset"`
	Layers  [][]int `json:"layers"`
}

// LoadLevel reads a level by name (".json" optional), preferring levels/<name> on disk.
func LoadLevel(name string) (*Level, error) {
	clean := cleanLevelName(name)
	if clean == "" {
		return nil, fmt.Errorf("levels: empty level name")
	}
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", clean, err)
	}
	lvl.Name = strings.TrimSuffix(clean, ".json")
	return lvl, nil
}

// Parse decodes and validates level JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", l.Width, l.Height)
	}
	if l.TileW <= 0 || l.TileH <= 0 {
		return fmt.Errorf("invalid tile size %dx%d", l.TileW, l.TileH)
	}
	if l.Tileset == "" {
		return fmt.Errorf("missing tileset")
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("layer %d has %d cells, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

// Tile returns the tileset index at cell (x, y) of a layer, or Empty when out of range.
func (l *Level) Tile(layer, x, y int) int {
	if l == nil || layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return Empty
	}
	return l.Layers[layer][y*l.Width+x]
}

// PixelSize is the map extent in world units.
func (l *Level) PixelSize() (float64, float64) {
	if l == nil {
		return 0, 0
	}
	return float64(l.Width * l.TileW), float64(l.Height * l.TileH)
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s == "" {
		return ""
	}
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
