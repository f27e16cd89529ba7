package ecs

import "github.com/alprun/alprun/ecs/component"

// World owns the entity arena and one sparse set per component kind.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
}

// KindID is satisfied by every component.ComponentKind; it lets non-generic
// methods such as First and Query accept kinds of any component type.
type KindID interface {
	ID() component.ComponentID
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e and frees its slot.
// It reports false when e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// First returns the first entity holding the given component kind.
func (w *World) First(kind KindID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || s.len() == 0 {
		return 0, false
	}
	return s.entities()[0], true
}

// Query returns the entities holding every listed kind, in the dense order of the first kind.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	out := make([]Entity, 0, sets[0].len())
	for _, e := range sets[0].entities() {
		if hasAll(e, sets[1:]) {
			out = append(out, e)
		}
	}
	return out
}

func hasAll(e Entity, sets []store) bool {
	for _, s := range sets {
		if !s.has(e) {
			return false
		}
	}
	return true
}
