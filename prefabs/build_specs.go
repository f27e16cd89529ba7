package prefabs

import (
	"github.com/alprun/alprun/input"
	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is a prefab: a named bag of component specs keyed by registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one generic component entry into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	Binds *input.Bindings `yaml:"binds"`
}

type CharacterComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

type AtlasSpriteComponentSpec struct {
	Sheet       string `yaml:"sheet"`
	Columns     int    `yaml:"columns"`
	Rows        int    `yaml:"rows"`
	Index       int    `yaml:"index"`
	Transparent bool   `yaml:"transparent"`
}

type AnimationTimerComponentSpec struct {
	Repeating *bool `yaml:"repeating"`
}

type ColliderComponentSpec struct {
	Kind    string  `yaml:"kind"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type TileMapComponentSpec struct {
	Level  string `yaml:"level"`
	Center bool   `yaml:"center"`
}
