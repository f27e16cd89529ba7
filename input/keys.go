package input

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKey = errors.New("input: unknown key")

// Key is a physical keyboard key, independent of any windowing backend.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyEscape

	keyCount
)

var keyNames = func() map[Key]string {
	m := map[Key]string{
		KeyArrowUp:    "ArrowUp",
		KeyArrowDown:  "ArrowDown",
		KeyArrowLeft:  "ArrowLeft",
		KeyArrowRight: "ArrowRight",
		KeySpace:      "Space",
		KeyEscape:     "Escape",
	}
	for k := KeyA; k <= KeyZ; k++ {
		m[k] = string(rune('A' + int(k-KeyA)))
	}
	return m
}()

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Keys lists every known key, in declaration order.
func Keys() []Key {
	out := make([]Key, 0, keyCount-1)
	for k := KeyA; k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKey resolves a key name case-insensitively ("w", "W", "arrowleft").
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func (k Key) MarshalText() ([]byte, error) {
	if _, ok := keyNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, k)
	}
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
