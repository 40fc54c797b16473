package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testEpsilon = 1e-9

func unitBox(center mgl64.Vec3) Box {
	return Box{Center: center, Half: mgl64.Vec3{1, 1, 1}}
}

func TestCollideBoxes(t *testing.T) {
	cases := []struct {
		name       string
		a, b       Box
		want       bool
		wantNormal mgl64.Vec3
		wantDepth  float64
		wantPoint  mgl64.Vec3
	}{
		{
			name:       "overlap_on_x",
			a:          unitBox(mgl64.Vec3{0, 0, 0}),
			b:          unitBox(mgl64.Vec3{1.5, 0, 0}),
			want:       true,
			wantNormal: mgl64.Vec3{1, 0, 0},
			wantDepth:  0.5,
			wantPoint:  mgl64.Vec3{1, 0, 0},
		},
		{
			name:       "overlap_on_negative_y",
			a:          unitBox(mgl64.Vec3{0, 0, 0}),
			b:          unitBox(mgl64.Vec3{0, -1.25, 0}),
			want:       true,
			wantNormal: mgl64.Vec3{0, -1, 0},
			wantDepth:  0.75,
			wantPoint:  mgl64.Vec3{0, -1, 0},
		},
		{
			name:       "tie_resolves_to_x",
			a:          unitBox(mgl64.Vec3{0, 0, 0}),
			b:          unitBox(mgl64.Vec3{1, 1, 0}),
			want:       true,
			wantNormal: mgl64.Vec3{1, 0, 0},
			wantDepth:  1,
			wantPoint:  mgl64.Vec3{1, 0, 0},
		},
		{
			name: "touching_faces_do_not_collide",
			a:    unitBox(mgl64.Vec3{0, 0, 0}),
			b:    unitBox(mgl64.Vec3{2, 0, 0}),
			want: false,
		},
		{
			name: "separated",
			a:    unitBox(mgl64.Vec3{0, 0, 0}),
			b:    unitBox(mgl64.Vec3{10, 0, 0}),
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := CollideBoxes(c.a, c.b, 1, 2)
			if ok != c.want {
				t.Fatalf("collide=%v, want %v", ok, c.want)
			}
			if !ok {
				return
			}
			if got.EntityA != 1 || got.EntityB != 2 {
				t.Fatalf("entity order (%d,%d), want (1,2)", got.EntityA, got.EntityB)
			}
			if !got.Normal.ApproxEqualThreshold(c.wantNormal, testEpsilon) {
				t.Fatalf("normal=%v, want %v", got.Normal, c.wantNormal)
			}
			if math.Abs(got.Depth-c.wantDepth) > testEpsilon {
				t.Fatalf("depth=%v, want %v", got.Depth, c.wantDepth)
			}
			if !got.Point.ApproxEqualThreshold(c.wantPoint, testEpsilon) {
				t.Fatalf("point=%v, want %v", got.Point, c.wantPoint)
			}
			if got.Depth < 0 {
				t.Fatalf("depth must be non-negative, got %v", got.Depth)
			}
		})
	}
}

func TestCollideSpheres(t *testing.T) {
	cases := []struct {
		name       string
		a, b       Sphere
		want       bool
		wantNormal mgl64.Vec3
		wantDepth  float64
		wantPoint  mgl64.Vec3
	}{
		{
			name:       "unit_spheres_apart_1_5",
			a:          Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 1},
			b:          Sphere{Center: mgl64.Vec3{1.5, 0, 0}, Radius: 1},
			want:       true,
			wantNormal: mgl64.Vec3{1, 0, 0},
			wantDepth:  0.5,
			wantPoint:  mgl64.Vec3{1, 0, 0},
		},
		{
			name:       "concentric_falls_back_to_up",
			a:          Sphere{Center: mgl64.Vec3{2, 3, 4}, Radius: 1},
			b:          Sphere{Center: mgl64.Vec3{2, 3, 4}, Radius: 1},
			want:       true,
			wantNormal: mgl64.Vec3{0, 1, 0},
			wantDepth:  2,
			wantPoint:  mgl64.Vec3{2, 4, 4},
		},
		{
			name: "touching_do_not_collide",
			a:    Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 1},
			b:    Sphere{Center: mgl64.Vec3{2, 0, 0}, Radius: 1},
			want: false,
		},
		{
			name: "separated",
			a:    Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 1},
			b:    Sphere{Center: mgl64.Vec3{0, 5, 0}, Radius: 1},
			want: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := CollideSpheres(c.a, c.b, 1, 2)
			if ok != c.want {
				t.Fatalf("collide=%v, want %v", ok, c.want)
			}
			if !ok {
				return
			}
			if math.Abs(got.Normal.Len()-1) > 1e-5 {
				t.Fatalf("normal is not unit length: %v (len %v)", got.Normal, got.Normal.Len())
			}
			if !got.Normal.ApproxEqualThreshold(c.wantNormal, 1e-5) {
				t.Fatalf("normal=%v, want %v", got.Normal, c.wantNormal)
			}
			if math.Abs(got.Depth-c.wantDepth) > 1e-5 {
				t.Fatalf("depth=%v, want %v", got.Depth, c.wantDepth)
			}
			if !got.Point.ApproxEqualThreshold(c.wantPoint, 1e-5) {
				t.Fatalf("point=%v, want %v", got.Point, c.wantPoint)
			}
		})
	}
}

func TestCollideBoxSphere(t *testing.T) {
	cases := []struct {
		name       string
		box        Box
		sphere     Sphere
		want       bool
		wantNormal mgl64.Vec3
		wantDepth  float64
		wantPoint  mgl64.Vec3
	}{
		{
			name:       "sphere_right_of_box",
			box:        unitBox(mgl64.Vec3{0, 0, 0}),
			sphere:     Sphere{Center: mgl64.Vec3{1.5, 0, 0}, Radius: 1},
			want:       true,
			wantNormal: mgl64.Vec3{1, 0, 0},
			wantDepth:  0.5,
			wantPoint:  mgl64.Vec3{1, 0, 0},
		},
		{
			name:       "sphere_center_inside_box",
			box:        unitBox(mgl64.Vec3{0, 0, 0}),
			sphere:     Sphere{Center: mgl64.Vec3{0.2, 0, 0}, Radius: 1},
			want:       true,
			wantNormal: mgl64.Vec3{0, 1, 0},
			wantDepth:  1,
			wantPoint:  mgl64.Vec3{0.2, 0, 0},
		},
		{
			name:   "separated",
			box:    unitBox(mgl64.Vec3{0, 0, 0}),
			sphere: Sphere{Center: mgl64.Vec3{5, 0, 0}, Radius: 1},
			want:   false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := CollideBoxSphere(c.box, c.sphere, 1, 2)
			if ok != c.want {
				t.Fatalf("collide=%v, want %v", ok, c.want)
			}
			if !ok {
				return
			}
			if !got.Normal.ApproxEqualThreshold(c.wantNormal, 1e-5) {
				t.Fatalf("normal=%v, want %v", got.Normal, c.wantNormal)
			}
			if math.Abs(got.Depth-c.wantDepth) > 1e-5 {
				t.Fatalf("depth=%v, want %v", got.Depth, c.wantDepth)
			}
			if !got.Point.ApproxEqualThreshold(c.wantPoint, 1e-5) {
				t.Fatalf("point=%v, want %v", got.Point, c.wantPoint)
			}
		})
	}
}

func TestCollideSphereBoxMirrorsBoxSphere(t *testing.T) {
	box := unitBox(mgl64.Vec3{0, 0, 0})
	sphere := Sphere{Center: mgl64.Vec3{1.5, 0.25, -0.1}, Radius: 1}

	fromBox, okBox := CollideBoxSphere(box, sphere, 1, 2)
	fromSphere, okSphere := CollideSphereBox(sphere, box, 2, 1)

	if !okBox || !okSphere {
		t.Fatalf("expected both tests to collide, got box=%v sphere=%v", okBox, okSphere)
	}
	if fromSphere.EntityA != fromBox.EntityB || fromSphere.EntityB != fromBox.EntityA {
		t.Fatalf("mirrored entities (%d,%d), want (%d,%d)",
			fromSphere.EntityA, fromSphere.EntityB, fromBox.EntityB, fromBox.EntityA)
	}
	if !fromSphere.Normal.ApproxEqualThreshold(fromBox.Normal.Mul(-1), testEpsilon) {
		t.Fatalf("mirrored normal=%v, want %v", fromSphere.Normal, fromBox.Normal.Mul(-1))
	}
	if fromSphere.Depth != fromBox.Depth {
		t.Fatalf("mirrored depth=%v, want %v", fromSphere.Depth, fromBox.Depth)
	}
	if !fromSphere.Point.ApproxEqualThreshold(fromBox.Point, testEpsilon) {
		t.Fatalf("mirrored point=%v, want %v", fromSphere.Point, fromBox.Point)
	}
}

func TestCollideDeterminism(t *testing.T) {
	a := unitBox(mgl64.Vec3{0.3, -0.2, 0.9})
	b := Sphere{Center: mgl64.Vec3{1.1, 0.4, 0.7}, Radius: 0.8}

	first, ok1 := CollideBoxSphere(a, b, 4, 9)
	second, ok2 := CollideBoxSphere(a, b, 4, 9)
	if ok1 != ok2 || first != second {
		t.Fatalf("identical inputs produced different contacts: %+v vs %+v", first, second)
	}
}
