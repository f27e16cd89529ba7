package input

import (
	"sort"
	"strings"
)

// Snapshot answers whether a key is held for the current frame.
type Snapshot interface {
	Pressed(k Key) bool
}

// KeySet is a mutable Snapshot. The zero value holds nothing.
type KeySet map[Key]struct{}

// NewKeySet returns a set with keys held.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

func (s KeySet) Pressed(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Press(k Key) {
	if k == KeyUnknown {
		return
	}
	s[k] = struct{}{}
}

func (s KeySet) Release(k Key) {
	delete(s, k)
}

func (s KeySet) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// String lists held keys sorted by name, e.g. "A+W".
func (s KeySet) String() string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return strings.Join(names, "+")
}

// Source produces one snapshot per tick.
type Source interface {
	Sample(tick uint64) (Snapshot, error)
}
