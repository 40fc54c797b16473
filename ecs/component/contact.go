package component

import "github.com/go-gl/mathgl/mgl64"

// ContactEvent is one side's view of a contact. Self and Other are entity
// handles (ecs.Entity is uint64). Normal is unit length and points from Self
// toward Other.
type ContactEvent struct {
	Self  uint64
	Other uint64

	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Depth  float64
}

// ContactReceiver reacts to contact transitions for the entity holding the
// ContactHandler. Enter fires on the first overlapping frame, Stay on every
// following overlapping frame, Exit once the pair separates. Exit carries
// only the other entity's handle; 0 means the other side is already gone.
//
// Receivers run inside the collision pass. They may queue destruction on the
// world but must never apply it directly.
type ContactReceiver interface {
	ContactEnter(ev ContactEvent)
	ContactStay(ev ContactEvent)
	ContactExit(other uint64)
}

// ContactHandler attaches a ContactReceiver to an entity. The collision
// system discovers handlers through this component only; it never inspects
// concrete receiver types.
type ContactHandler struct {
	Receiver ContactReceiver
}

var ContactHandlerComponent = NewComponent[ContactHandler]()
