package ecs

import "github.com/quartzheim/arenaball/ecs/component"

// World owns entities, component stores, and system order.
type World struct {
	entities entityStore
	stores   map[component.Kind]*SparseSet
	systems  []System
	events   EventQueue

	pendingDestroy []Entity
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.Kind]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity immediately and drops its components.
// Returns false if the entity was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.ID())
	}
	return true
}

// IsAlive reports whether an entity handle is current.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// QueueDestroy defers destruction until FlushDestroyed. Safe to call while
// systems iterate the world.
func (w *World) QueueDestroy(e Entity) {
	if w == nil || !w.IsAlive(e) {
		return
	}
	w.pendingDestroy = append(w.pendingDestroy, e)
}

// FlushDestroyed applies queued destruction and reports how many entities
// died. Entities already dead by flush time are skipped.
func (w *World) FlushDestroyed() int {
	if w == nil || len(w.pendingDestroy) == 0 {
		return 0
	}
	n := 0
	for _, e := range w.pendingDestroy {
		if w.DestroyEntity(e) {
			n++
		}
	}
	w.pendingDestroy = w.pendingDestroy[:0]
	return n
}

// Lookup returns the live entity currently occupying a slot index, if any.
// After a destroy the slot may be vacant, or already reused by a newer
// entity with a different generation.
func (w *World) Lookup(id uint32) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	return w.entities.lookup(id)
}

func (w *World) store(kind component.Kind) *SparseSet {
	if w.stores == nil {
		w.stores = map[component.Kind]*SparseSet{}
	}
	s, ok := w.stores[kind]
	if !ok {
		s = &SparseSet{}
		w.stores[kind] = s
	}
	return s
}

// AddComponent attaches a component value, replacing any existing one.
func (w *World) AddComponent(e Entity, kind component.Kind, value any) error {
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind).Set(e.ID(), value)
	return nil
}

// GetComponent returns the component value for a live entity.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	s, ok := w.stores[kind]
	if !ok || !s.Has(e.ID()) {
		return nil, false
	}
	return s.Get(e.ID()), true
}

// HasComponent reports whether a live entity carries the kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	s, ok := w.stores[kind]
	return ok && s.Has(e.ID())
}

// RemoveComponent detaches the kind from an entity if present.
func (w *World) RemoveComponent(e Entity, kind component.Kind) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	s, ok := w.stores[kind]
	if !ok || !s.Has(e.ID()) {
		return false
	}
	s.Remove(e.ID())
	return true
}

// Query returns the live entities carrying every kind, in the insertion
// order of the first kind's store.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	first, ok := w.stores[kinds[0]]
	if !ok {
		return nil
	}

	var out []Entity
	for _, id := range first.IDs() {
		e, live := w.entities.lookup(id)
		if !live {
			continue
		}
		match := true
		for _, kind := range kinds[1:] {
			s, ok := w.stores[kind]
			if !ok || !s.Has(id) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying the kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Events returns the world event queue. The game drains it each tick.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
