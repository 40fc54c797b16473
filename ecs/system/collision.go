package system

import (
	"log"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
	"github.com/quartzheim/arenaball/physics"
)

type colliderShape int

const (
	shapeNone colliderShape = iota
	shapeBox
	shapeSphere
	shapeCapsule
)

// CollisionSystem runs the per-frame contact pass: collect collidable
// entities, test every unordered pair, track pair state across frames, and
// dispatch enter/stay/exit notifications to contact handlers.
type CollisionSystem struct {
	previous map[physics.PairKey]struct{}
	current  map[physics.PairKey]struct{}

	callbacks   []func(physics.Contact)
	unsupported uint64
	verbose     bool

	scratch []ecs.Entity
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{
		previous: make(map[physics.PairKey]struct{}),
		current:  make(map[physics.PairKey]struct{}),
	}
}

// RegisterContactCallback adds a pair-level callback fired exactly once per
// pair, on the frame the pair starts touching. Callbacks run in registration
// order and never fire on later overlapping frames or on separation. There
// is no unregistration; the registry lives as long as the system.
func (cs *CollisionSystem) RegisterContactCallback(fn func(physics.Contact)) {
	if cs == nil || fn == nil {
		return
	}
	cs.callbacks = append(cs.callbacks, fn)
}

// SetVerbose toggles per-contact logging. Logging has no effect on contact
// results or dispatch order.
func (cs *CollisionSystem) SetVerbose(v bool) {
	if cs == nil {
		return
	}
	cs.verbose = v
}

// UnsupportedPairs returns how many tested pairs had no narrow-phase
// support. Today that is every pair involving a capsule.
func (cs *CollisionSystem) UnsupportedPairs() uint64 {
	if cs == nil {
		return 0
	}
	return cs.unsupported
}

func (cs *CollisionSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	cs.previous, cs.current = cs.current, cs.previous
	clear(cs.current)

	entities := cs.collect(w)
	for i := 0; i < len(entities); i++ {
		for j := i + 1; j < len(entities); j++ {
			cs.testPair(w, entities[i], entities[j])
		}
	}

	cs.dispatchExits(w)

	// Destruction queued by receivers applies only after the whole pass.
	w.FlushDestroyed()
}

// collect gathers every live entity carrying a collider and a transform,
// deduplicated by slot index. Kind order (box, sphere, capsule) plus store
// insertion order keeps pair indexing deterministic within a frame.
func (cs *CollisionSystem) collect(w *ecs.World) []ecs.Entity {
	out := cs.scratch[:0]
	seen := make(map[uint32]struct{})
	for _, kind := range []component.Kind{
		component.BoxColliderComponent.Kind(),
		component.SphereColliderComponent.Kind(),
		component.CapsuleColliderComponent.Kind(),
	} {
		for _, e := range w.Query(kind, component.TransformComponent.Kind()) {
			if _, dup := seen[e.ID()]; dup {
				continue
			}
			seen[e.ID()] = struct{}{}
			out = append(out, e)
		}
	}
	cs.scratch = out
	return out
}

func (cs *CollisionSystem) testPair(w *ecs.World, a, b ecs.Entity) {
	if !w.IsAlive(a) || !w.IsAlive(b) {
		return
	}

	contact, ok := cs.narrowPhase(w, a, b)
	if !ok {
		return
	}

	key := physics.MakePairKey(a.ID(), b.ID())
	_, stayed := cs.previous[key]
	cs.current[key] = struct{}{}

	if stayed {
		cs.dispatchStay(w, contact)
		return
	}
	cs.dispatchEnter(w, contact)
}

type resolvedShape struct {
	kind   colliderShape
	box    physics.Box
	sphere physics.Sphere
}

// resolveShape reads the entity's collider and transform at test time, so
// transform mutation earlier in the frame is already reflected. An entity
// with several colliders resolves to the first in box, sphere, capsule
// order.
func resolveShape(w *ecs.World, e ecs.Entity) (resolvedShape, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return resolvedShape{}, false
	}
	if box, ok := ecs.Get(w, e, component.BoxColliderComponent); ok {
		return resolvedShape{
			kind: shapeBox,
			box:  physics.Box{Center: box.WorldCenter(t), Half: box.ScaledExtent(t).Mul(0.5)},
		}, true
	}
	if sphere, ok := ecs.Get(w, e, component.SphereColliderComponent); ok {
		return resolvedShape{
			kind:   shapeSphere,
			sphere: physics.Sphere{Center: sphere.WorldCenter(t), Radius: sphere.ScaledRadius(t)},
		}, true
	}
	if ecs.Has(w, e, component.CapsuleColliderComponent) {
		return resolvedShape{kind: shapeCapsule}, true
	}
	return resolvedShape{}, false
}

func (cs *CollisionSystem) narrowPhase(w *ecs.World, a, b ecs.Entity) (physics.Contact, bool) {
	sa, ok := resolveShape(w, a)
	if !ok {
		return physics.Contact{}, false
	}
	sb, ok := resolveShape(w, b)
	if !ok {
		return physics.Contact{}, false
	}

	if sa.kind == shapeCapsule || sb.kind == shapeCapsule {
		cs.unsupported++
		return physics.Contact{}, false
	}

	switch {
	case sa.kind == shapeBox && sb.kind == shapeBox:
		return physics.CollideBoxes(sa.box, sb.box, uint64(a), uint64(b))
	case sa.kind == shapeSphere && sb.kind == shapeSphere:
		return physics.CollideSpheres(sa.sphere, sb.sphere, uint64(a), uint64(b))
	case sa.kind == shapeBox && sb.kind == shapeSphere:
		return physics.CollideBoxSphere(sa.box, sb.sphere, uint64(a), uint64(b))
	default:
		return physics.CollideSphereBox(sa.sphere, sb.box, uint64(a), uint64(b))
	}
}

func (cs *CollisionSystem) dispatchEnter(w *ecs.World, c physics.Contact) {
	if cs.verbose {
		log.Printf("collision: enter %s <-> %s depth=%.4f", entityLabel(w, c.EntityA), entityLabel(w, c.EntityB), c.Depth)
	}

	if r, ok := receiverFor(w, c.EntityA); ok {
		r.ContactEnter(eventFor(c, false))
	}
	if r, ok := receiverFor(w, c.EntityB); ok {
		r.ContactEnter(eventFor(c, true))
	}

	for _, fn := range cs.callbacks {
		fn(c)
	}
}

func (cs *CollisionSystem) dispatchStay(w *ecs.World, c physics.Contact) {
	if r, ok := receiverFor(w, c.EntityA); ok {
		r.ContactStay(eventFor(c, false))
	}
	if r, ok := receiverFor(w, c.EntityB); ok {
		r.ContactStay(eventFor(c, true))
	}
}

func (cs *CollisionSystem) dispatchExits(w *ecs.World) {
	for key := range cs.previous {
		if _, held := cs.current[key]; held {
			continue
		}

		idA, idB := key.Split()
		entA, okA := w.Lookup(idA)
		entB, okB := w.Lookup(idB)

		if cs.verbose && (okA || okB) {
			log.Printf("collision: exit %d <-> %d", idA, idB)
		}

		// Pair keys carry no generations, so each side resolves to whatever
		// entity occupies the slot now. A vacant slot reports as 0.
		var otherForA, otherForB uint64
		if okB {
			otherForA = uint64(entB)
		}
		if okA {
			otherForB = uint64(entA)
		}

		if okA {
			if r, ok := receiverFor(w, uint64(entA)); ok {
				r.ContactExit(otherForA)
			}
		}
		if okB {
			if r, ok := receiverFor(w, uint64(entB)); ok {
				r.ContactExit(otherForB)
			}
		}
	}
}

// eventFor builds one side's view of the contact. The B side sees the roles
// swapped and the normal flipped.
func eventFor(c physics.Contact, flipped bool) component.ContactEvent {
	ev := component.ContactEvent{
		Self:   c.EntityA,
		Other:  c.EntityB,
		Point:  c.Point,
		Normal: c.Normal,
		Depth:  c.Depth,
	}
	if flipped {
		ev.Self, ev.Other = c.EntityB, c.EntityA
		ev.Normal = c.Normal.Mul(-1)
	}
	return ev
}

func receiverFor(w *ecs.World, id uint64) (component.ContactReceiver, bool) {
	h, ok := ecs.Get(w, ecs.Entity(id), component.ContactHandlerComponent)
	if !ok || h.Receiver == nil {
		return nil, false
	}
	return h.Receiver, true
}

func entityLabel(w *ecs.World, id uint64) string {
	e := ecs.Entity(id)
	if n, ok := ecs.Get(w, e, component.NameComponent); ok && n.Value != "" {
		return n.Value
	}
	return e.String()
}
