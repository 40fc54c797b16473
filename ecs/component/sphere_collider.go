package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/common"
)

// SphereCollider is a sphere shape.
type SphereCollider struct {
	Offset mgl64.Vec3
	Radius float64
}

// WorldCenter returns the sphere center under the owning transform.
func (s SphereCollider) WorldCenter(t Transform) mgl64.Vec3 {
	return t.Position.Add(s.Offset)
}

// ScaledRadius scales by the largest scale component, so a non-uniformly
// scaled sphere stays a sphere covering its widest axis.
func (s SphereCollider) ScaledRadius(t Transform) float64 {
	return s.Radius * common.Max3(t.Scale[0], t.Scale[1], t.Scale[2])
}

var SphereColliderComponent = NewComponent[SphereCollider]()
