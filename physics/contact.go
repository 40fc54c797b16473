package physics

import "github.com/go-gl/mathgl/mgl64"

// Contact describes a single overlap between two entities. Normal is unit
// length and points from EntityA toward EntityB; Depth is never negative.
// Contacts are produced fresh each frame and not retained.
type Contact struct {
	EntityA uint64
	EntityB uint64

	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Depth  float64

	Colliding bool
}
