package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/common"
)

// normalEpsilon is the distance floor below which a direction cannot be
// normalized; fallbackNormal is used instead.
const normalEpsilon = 1e-6

var fallbackNormal = mgl64.Vec3{0, 1, 0}

// CollideBoxes tests two axis-aligned boxes. The separating axis is the one
// with the minimum positive overlap; ties resolve in x, y, z test order.
// The contact point sits on a's face along the normal.
func CollideBoxes(a, b Box, ea, eb uint64) (Contact, bool) {
	delta := b.Center.Sub(a.Center)

	var overlap mgl64.Vec3
	for i := 0; i < 3; i++ {
		overlap[i] = a.Half[i] + b.Half[i] - math.Abs(delta[i])
		if overlap[i] <= 0 {
			return Contact{}, false
		}
	}

	axis := 0
	for i := 1; i < 3; i++ {
		if overlap[i] < overlap[axis] {
			axis = i
		}
	}

	sign := 1.0
	if delta[axis] < 0 {
		sign = -1
	}

	var normal mgl64.Vec3
	normal[axis] = sign

	point := a.Center
	point[axis] += sign * a.Half[axis]

	return Contact{
		EntityA:   ea,
		EntityB:   eb,
		Point:     point,
		Normal:    normal,
		Depth:     overlap[axis],
		Colliding: true,
	}, true
}

// CollideSpheres tests two spheres. Concentric centers fall back to an
// up-pointing normal.
func CollideSpheres(a, b Sphere, ea, eb uint64) (Contact, bool) {
	delta := b.Center.Sub(a.Center)
	rsum := a.Radius + b.Radius

	distSq := delta.Dot(delta)
	if distSq >= rsum*rsum {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)
	normal := fallbackNormal
	if dist > normalEpsilon {
		normal = delta.Mul(1 / dist)
	}

	return Contact{
		EntityA:   ea,
		EntityB:   eb,
		Point:     a.Center.Add(normal.Mul(a.Radius)),
		Normal:    normal,
		Depth:     rsum - dist,
		Colliding: true,
	}, true
}

// CollideBoxSphere tests a box against a sphere by clamping the sphere center
// to the box. The normal points from the box toward the sphere and the
// contact point is the clamped closest point on the box.
func CollideBoxSphere(box Box, s Sphere, eBox, eSphere uint64) (Contact, bool) {
	min := box.Min()
	max := box.Max()

	closest := mgl64.Vec3{
		common.Clamp(s.Center[0], min[0], max[0]),
		common.Clamp(s.Center[1], min[1], max[1]),
		common.Clamp(s.Center[2], min[2], max[2]),
	}

	delta := s.Center.Sub(closest)
	distSq := delta.Dot(delta)
	if distSq >= s.Radius*s.Radius {
		return Contact{}, false
	}

	dist := math.Sqrt(distSq)
	normal := fallbackNormal
	if dist > normalEpsilon {
		normal = delta.Mul(1 / dist)
	}

	return Contact{
		EntityA:   eBox,
		EntityB:   eSphere,
		Point:     closest,
		Normal:    normal,
		Depth:     s.Radius - dist,
		Colliding: true,
	}, true
}

// CollideSphereBox is the mirror of CollideBoxSphere: same contact with the
// entities swapped and the normal negated.
func CollideSphereBox(s Sphere, box Box, eSphere, eBox uint64) (Contact, bool) {
	c, ok := CollideBoxSphere(box, s, eBox, eSphere)
	if !ok {
		return Contact{}, false
	}
	c.EntityA, c.EntityB = eSphere, eBox
	c.Normal = c.Normal.Mul(-1)
	return c, true
}
