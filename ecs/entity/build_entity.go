package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alprun/alprun/assets"
	"github.com/alprun/alprun/atlas"
	"github.com/alprun/alprun/ecs"
	"github.com/alprun/alprun/ecs/component"
	"github.com/alprun/alprun/input"
	"github.com/alprun/alprun/levels"
	"github.com/alprun/alprun/prefabs"
	"github.com/jakecoffman/cp"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player":          addPlayer,
	"character":       addCharacter,
	"transform":       addTransform,
	"atlas_sprite":    addAtlasSprite,
	"animation_timer": addAnimationTimer,
	"collider":        addCollider,
	"camera":          addCamera,
	"tile_map":        addTileMap,
}

var componentBuildOrder = []string{
	"player",
	"character",
	"transform",
	"atlas_sprite",
	"animation_timer",
	"collider",
	"camera",
	"tile_map",
}

// BuildEntity spawns one entity from a prefab. On any component error nothing is left
// in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(unknown, ", "))
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform moves an entity, adding a unit-scale transform if it has none.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	binds := input.WASD
	if spec.Binds != nil {
		binds = *spec.Binds
	}
	for _, k := range binds.Keys() {
		if k == input.KeyUnknown {
			return fmt.Errorf("player binds: every direction needs a key")
		}
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Binds: binds})
}

type characterSpec = prefabs.CharacterComponentSpec

func addCharacter(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		State: component.MovementNone,
		Speed: spec.Speed,
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = spec.Scale
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = spec.Scale
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Z:        spec.Z,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type atlasSpriteSpec = prefabs.AtlasSpriteComponentSpec

func addAtlasSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[atlasSpriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode atlas sprite spec: %w", err)
	}
	if spec.Sheet == "" {
		return fmt.Errorf("atlas sprite: missing sheet")
	}
	img, err := assets.LoadImage(spec.Sheet)
	if err != nil {
		return err
	}
	a, err := atlas.FromGrid(spec.Sheet, img, spec.Columns, spec.Rows)
	if err != nil {
		return err
	}
	if spec.Index < 0 || spec.Index >= a.Len() {
		return fmt.Errorf("atlas sprite: index %d outside %d cells", spec.Index, a.Len())
	}
	return ecs.Add(w, e, component.AtlasSpriteComponent.Kind(), &component.AtlasSprite{
		Atlas:       a,
		Index:       spec.Index,
		Transparent: spec.Transparent,
	})
}

type animationTimerSpec = prefabs.AnimationTimerComponentSpec

func addAnimationTimer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationTimerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation timer spec: %w", err)
	}
	timer := component.NewAnimationTimer(component.AnimationPeriod)
	if spec.Repeating != nil {
		timer.Repeating = *spec.Repeating
	}
	return ecs.Add(w, e, component.AnimationTimerComponent.Kind(), timer)
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	var kind component.ColliderKind
	switch strings.ToLower(spec.Kind) {
	case "", "solid":
		kind = component.ColliderSolid
	case "scoreable":
		kind = component.ColliderScoreable
	default:
		return fmt.Errorf("collider: unknown kind %q", spec.Kind)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return fmt.Errorf("collider: negative size %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Kind:   kind,
		Bounds: cp.NewBBForExtents(cp.Vector{X: spec.OffsetX, Y: spec.OffsetY}, spec.Width/2, spec.Height/2),
	})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: spec.Zoom})
}

type tileMapSpec = prefabs.TileMapComponentSpec

func addTileMap(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tileMapSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tile map spec: %w", err)
	}
	lvl, err := levels.LoadLevel(spec.Level)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.TileMapComponent.Kind(), &component.TileMap{
		Name:   lvl.Name,
		Level:  lvl,
		Center: spec.Center,
	})
}
