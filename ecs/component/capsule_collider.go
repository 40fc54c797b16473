package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/common"
)

// CapsuleCollider is a vertical capsule shape. The narrow phase has no
// capsule tests yet; the collision system counts pairs involving one as
// unsupported and reports no contact.
type CapsuleCollider struct {
	Offset mgl64.Vec3
	Radius float64
	Height float64
}

// WorldCenter returns the capsule center under the owning transform.
func (c CapsuleCollider) WorldCenter(t Transform) mgl64.Vec3 {
	return t.Position.Add(c.Offset)
}

// ScaledRadius scales by the largest scale component, as SphereCollider does.
func (c CapsuleCollider) ScaledRadius(t Transform) float64 {
	return c.Radius * common.Max3(t.Scale[0], t.Scale[1], t.Scale[2])
}

// ScaledHeight scales the axis height by the vertical scale component.
func (c CapsuleCollider) ScaledHeight(t Transform) float64 {
	return c.Height * t.Scale[1]
}

var CapsuleColliderComponent = NewComponent[CapsuleCollider]()
