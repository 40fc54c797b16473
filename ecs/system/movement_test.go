package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	w := ecs.NewWorld()
	ms := NewMovementSystem()
	ms.Drag = 1 // isolate integration from damping

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, unitScaleTransform(mgl64.Vec3{1, 2, 3})); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, component.Velocity{Linear: mgl64.Vec3{0.5, 0, -0.25}}); err != nil {
		t.Fatalf("add velocity: %v", err)
	}

	ms.Update(w)
	ms.Update(w)

	tr, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("transform gone")
	}
	want := mgl64.Vec3{2, 2, 2.5}
	if !tr.Position.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("position=%v, want %v", tr.Position, want)
	}
}

func TestMovementAppliesDrag(t *testing.T) {
	w := ecs.NewWorld()
	ms := NewMovementSystem()
	ms.Drag = 0.5

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, unitScaleTransform(mgl64.Vec3{})); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, component.Velocity{Linear: mgl64.Vec3{8, 0, 0}}); err != nil {
		t.Fatalf("add velocity: %v", err)
	}

	for i := 0; i < 3; i++ {
		ms.Update(w)
	}

	vel, ok := ecs.Get(w, e, component.VelocityComponent)
	if !ok {
		t.Fatalf("velocity gone")
	}
	if !vel.Linear.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("velocity=%v, want (1,0,0) after three halvings", vel.Linear)
	}

	// Position advanced by 8, then 4, then 2.
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if !tr.Position.ApproxEqualThreshold(mgl64.Vec3{14, 0, 0}, 1e-9) {
		t.Fatalf("position=%v, want (14,0,0)", tr.Position)
	}
}

func TestMovementSkipsEntitiesWithoutTransform(t *testing.T) {
	w := ecs.NewWorld()
	ms := NewMovementSystem()

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.VelocityComponent, component.Velocity{Linear: mgl64.Vec3{1, 0, 0}}); err != nil {
		t.Fatalf("add velocity: %v", err)
	}

	ms.Update(w) // must not panic or fabricate a transform

	if ecs.Has(w, e, component.TransformComponent) {
		t.Fatalf("movement fabricated a transform")
	}
}

func TestMovementThenCollisionSeesNewPositions(t *testing.T) {
	w := ecs.NewWorld()
	ms := NewMovementSystem()
	ms.Drag = 1
	cs := NewCollisionSystem()

	// Ball one step short of the crate; the move this frame closes the gap.
	crate := newBoxEntity(t, w, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2})
	ball := newSphereEntity(t, w, mgl64.Vec3{2.5, 0, 0}, 1)
	if err := ecs.Add(w, ball, component.VelocityComponent, component.Velocity{Linear: mgl64.Vec3{-1, 0, 0}}); err != nil {
		t.Fatalf("add velocity: %v", err)
	}

	rc := &recordingReceiver{}
	attachReceiver(t, w, crate, rc)

	w.AddSystem(ms)
	w.AddSystem(cs)

	w.Update()

	if len(rc.entered) != 1 {
		t.Fatalf("crate enters=%d, want 1 after the ball moved in", len(rc.entered))
	}
}
