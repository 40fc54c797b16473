package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoxColliderWorldBinding(t *testing.T) {
	cases := []struct {
		name       string
		transform  Transform
		collider   BoxCollider
		wantCenter mgl64.Vec3
		wantExtent mgl64.Vec3
	}{
		{
			name:       "unit_scale",
			transform:  Transform{Position: mgl64.Vec3{1, 2, 3}, Scale: mgl64.Vec3{1, 1, 1}},
			collider:   BoxCollider{Size: mgl64.Vec3{2, 4, 6}},
			wantCenter: mgl64.Vec3{1, 2, 3},
			wantExtent: mgl64.Vec3{2, 4, 6},
		},
		{
			name:       "offset_shifts_center",
			transform:  Transform{Position: mgl64.Vec3{1, 0, 0}, Scale: mgl64.Vec3{1, 1, 1}},
			collider:   BoxCollider{Offset: mgl64.Vec3{0, 0.5, 0}, Size: mgl64.Vec3{1, 1, 1}},
			wantCenter: mgl64.Vec3{1, 0.5, 0},
			wantExtent: mgl64.Vec3{1, 1, 1},
		},
		{
			name:       "per_axis_scale",
			transform:  Transform{Scale: mgl64.Vec3{2, 3, 0.5}},
			collider:   BoxCollider{Size: mgl64.Vec3{1, 1, 4}},
			wantCenter: mgl64.Vec3{},
			wantExtent: mgl64.Vec3{2, 3, 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.collider.WorldCenter(c.transform); !got.ApproxEqualThreshold(c.wantCenter, 1e-9) {
				t.Fatalf("center=%v, want %v", got, c.wantCenter)
			}
			if got := c.collider.ScaledExtent(c.transform); !got.ApproxEqualThreshold(c.wantExtent, 1e-9) {
				t.Fatalf("extent=%v, want %v", got, c.wantExtent)
			}
		})
	}
}

func TestSphereColliderScaleUsesLargestComponent(t *testing.T) {
	cases := []struct {
		name  string
		scale mgl64.Vec3
		r     float64
		want  float64
	}{
		{"uniform", mgl64.Vec3{2, 2, 2}, 1, 2},
		{"x_dominates", mgl64.Vec3{3, 1, 1}, 0.5, 1.5},
		{"z_dominates", mgl64.Vec3{1, 2, 4}, 1, 4},
		{"shrink", mgl64.Vec3{0.25, 0.5, 0.5}, 2, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sc := SphereCollider{Radius: c.r}
			tr := Transform{Scale: c.scale}
			if got := sc.ScaledRadius(tr); got != c.want {
				t.Fatalf("radius=%v, want %v", got, c.want)
			}
		})
	}
}

func TestCapsuleColliderScaling(t *testing.T) {
	cc := CapsuleCollider{Radius: 0.5, Height: 2}
	tr := Transform{Scale: mgl64.Vec3{3, 2, 1}}

	if got := cc.ScaledRadius(tr); got != 1.5 {
		t.Fatalf("radius=%v, want largest scale component applied", got)
	}
	if got := cc.ScaledHeight(tr); got != 4 {
		t.Fatalf("height=%v, want vertical scale applied", got)
	}
}

func TestNewComponentAssignsDistinctKinds(t *testing.T) {
	a := NewComponent[int]()
	b := NewComponent[int]()
	c := NewComponent[string]()

	if a.Kind() == b.Kind() || b.Kind() == c.Kind() || a.Kind() == c.Kind() {
		t.Fatalf("kinds collide: %d %d %d", a.Kind(), b.Kind(), c.Kind())
	}
	if !a.Valid() {
		t.Fatalf("registered handle reports invalid")
	}
	var zero Handle[int]
	if zero.Valid() {
		t.Fatalf("zero handle reports valid")
	}
}
