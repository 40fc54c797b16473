package component

import "github.com/go-gl/mathgl/mgl64"

// Velocity is linear velocity in world units per tick.
type Velocity struct {
	Linear mgl64.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
