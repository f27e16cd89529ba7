package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Prefab file names shipped with the game.
const (
	PlayerPrefab = "player.yaml"
	CameraPrefab = "camera.yaml"
	MapPrefab    = "map.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}
