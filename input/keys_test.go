package input

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"W", KeyW, false},
		{"w", KeyW, false},
		{" a ", KeyA, false},
		{"ArrowLeft", KeyArrowLeft, false},
		{"arrowup", KeyArrowUp, false},
		{"Space", KeySpace, false},
		{"F13", KeyUnknown, true},
		{"", KeyUnknown, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKey(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownKey) {
					t.Fatalf("expected ErrUnknownKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseKey(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for _, k := range Keys() {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Fatalf("key %d: ParseKey(%q) = %v, %v", k, k.String(), got, err)
		}
	}
}

func TestBindingsFromYAML(t *testing.T) {
	var b Bindings
	if err := yaml.Unmarshal([]byte("up: W\ndown: S\nleft: A\nright: D\n"), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b != WASD {
		t.Fatalf("expected WASD bindings, got %+v", b)
	}

	if err := yaml.Unmarshal([]byte("up: Hyper\n"), &b); err == nil {
		t.Fatalf("expected error for unknown key name")
	}
}

func TestBindingsSample(t *testing.T) {
	arrows := Bindings{Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight}
	keys := NewKeySet(KeyW, KeyArrowLeft)

	if got := WASD.Sample(keys); got != (Held{Up: true}) {
		t.Fatalf("WASD sample = %+v", got)
	}
	if got := arrows.Sample(keys); got != (Held{Left: true}) {
		t.Fatalf("arrow sample = %+v", got)
	}
	if got := WASD.Sample(nil); got != (Held{}) {
		t.Fatalf("nil snapshot should hold nothing, got %+v", got)
	}
}

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyW, KeyD, KeyUnknown)
	if !s.Pressed(KeyW) || !s.Pressed(KeyD) || s.Pressed(KeyUnknown) {
		t.Fatalf("unexpected set contents %v", s)
	}
	if s.String() != "D+W" {
		t.Fatalf("expected D+W, got %q", s.String())
	}
	s.Release(KeyW)
	if s.Pressed(KeyW) {
		t.Fatalf("W should be released")
	}
	s.Clear()
	if len(s) != 0 {
		t.Fatalf("expected empty set after Clear")
	}
}
