package system

import (
	"github.com/quartzheim/arenaball/common"
	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
)

// MovementSystem integrates velocities into transforms with a flat drag.
// It runs before collision so the contact pass sees this tick's positions.
type MovementSystem struct {
	Drag float64
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{Drag: common.Drag}
}

func (ms *MovementSystem) Update(w *ecs.World) {
	if ms == nil || w == nil {
		return
	}
	for _, e := range w.Query(component.VelocityComponent.Kind(), component.TransformComponent.Kind()) {
		vel, ok := ecs.Get(w, e, component.VelocityComponent)
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		t.Position = t.Position.Add(vel.Linear)
		vel.Linear = vel.Linear.Mul(ms.Drag)
		_ = ecs.Add(w, e, component.TransformComponent, t)
		_ = ecs.Add(w, e, component.VelocityComponent, vel)
	}
}
