package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in world space. Rotation is carried for scenes
// and scripts; collider bounds stay axis-aligned and do not apply it.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()
