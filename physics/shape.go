package physics

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned box in world space.
type Box struct {
	Center mgl64.Vec3
	Half   mgl64.Vec3
}

func (b Box) Min() mgl64.Vec3 {
	return b.Center.Sub(b.Half)
}

func (b Box) Max() mgl64.Vec3 {
	return b.Center.Add(b.Half)
}

// Sphere is a sphere in world space.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}
