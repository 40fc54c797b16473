package component

import "github.com/go-gl/mathgl/mgl64"

// BoxCollider is an axis-aligned box shape. Size is the full extent on each
// axis before scaling.
type BoxCollider struct {
	Offset mgl64.Vec3
	Size   mgl64.Vec3
}

// WorldCenter returns the box center under the owning transform.
func (b BoxCollider) WorldCenter(t Transform) mgl64.Vec3 {
	return t.Position.Add(b.Offset)
}

// ScaledExtent returns the full extent with the transform scale applied per
// axis.
func (b BoxCollider) ScaledExtent(t Transform) mgl64.Vec3 {
	return mgl64.Vec3{
		b.Size[0] * t.Scale[0],
		b.Size[1] * t.Scale[1],
		b.Size[2] * t.Scale[2],
	}
}

var BoxColliderComponent = NewComponent[BoxCollider]()
