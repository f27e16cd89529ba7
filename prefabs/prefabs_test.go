package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alprun/alprun/input"
)

func TestEmbeddedPrefabsDecode(t *testing.T) {
	tests := []struct {
		file       string
		components []string
	}{
		{PlayerPrefab, []string{"player", "character", "transform", "atlas_sprite", "animation_timer", "collider"}},
		{CameraPrefab, []string{"camera", "transform"}},
		{MapPrefab, []string{"tile_map", "transform"}},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tc.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			for _, name := range tc.components {
				if _, ok := spec.Components[name]; !ok {
					t.Fatalf("%s: missing component %q", tc.file, name)
				}
			}
		})
	}
}

func TestPlayerPrefabValues(t *testing.T) {
	spec, err := LoadEntityBuildSpec(PlayerPrefab)
	if err != nil {
		t.Fatal(err)
	}

	player, err := DecodeComponentSpec[PlayerComponentSpec](spec.Components["player"])
	if err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if player.Binds == nil || *player.Binds != input.WASD {
		t.Fatalf("expected WASD binds, got %+v", player.Binds)
	}

	character, err := DecodeComponentSpec[CharacterComponentSpec](spec.Components["character"])
	if err != nil {
		t.Fatalf("decode character: %v", err)
	}
	if character.Speed != 400 {
		t.Fatalf("expected speed 400, got %v", character.Speed)
	}

	sprite, err := DecodeComponentSpec[AtlasSpriteComponentSpec](spec.Components["atlas_sprite"])
	if err != nil {
		t.Fatalf("decode atlas_sprite: %v", err)
	}
	if sprite.Columns != 9 || sprite.Rows != 4 || !sprite.Transparent {
		t.Fatalf("unexpected sprite spec %+v", sprite)
	}

	transform, err := DecodeComponentSpec[TransformComponentSpec](spec.Components["transform"])
	if err != nil {
		t.Fatalf("decode transform: %v", err)
	}
	if transform.Z != 2.5 || transform.Scale != 2 {
		t.Fatalf("unexpected transform spec %+v", transform)
	}
}

func TestDecodeComponentSpecNil(t *testing.T) {
	got, err := DecodeComponentSpec[CameraComponentSpec](nil)
	if err != nil || got != (CameraComponentSpec{}) {
		t.Fatalf("expected zero spec, got %+v, %v", got, err)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"walk_square", "walk_square.tengo", "scripts/walk_square.tengo", "prefabs/scripts/walk_square.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
	if _, err := LoadScript("missing"); err == nil {
		t.Fatalf("expected error for missing script")
	}
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"prefabs/player.yaml":                "player.yaml",
		"/work/game/prefabs/scripts/a.tengo": "scripts/a.tengo",
		"camera.yaml":                        "camera.yaml",
	}
	for in, want := range tests {
		if got := Name(in); got != want {
			t.Fatalf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prefabs")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("name: player\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != "player.yaml" {
			t.Fatalf("expected player.yaml, got %q", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}
