package ecs

import "github.com/alprun/alprun/ecs/component"

// The ForEach helpers iterate a snapshot of the first kind's entities, so callbacks
// may add or remove components (or destroy entities) without corrupting the walk.

func snapshot[T any](s *sparseSet[T]) []Entity {
	if s == nil || s.len() == 0 {
		return nil
	}
	return append([]Entity(nil), s.dense...)
}

func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, ka, false)
	for _, e := range snapshot(sa) {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range snapshot(sa) {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, e := range snapshot(sa) {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		c, ok := sc.get(e)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	sd := storeFor(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, e := range snapshot(sa) {
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		c, ok := sc.get(e)
		if !ok {
			continue
		}
		d, ok := sd.get(e)
		if !ok {
			continue
		}
		fn(e, a, b, c, d)
	}
}
