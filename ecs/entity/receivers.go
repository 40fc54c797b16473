package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
)

// BounceReceiver reflects the holder's velocity off whatever it hit and
// pushes the holder out of the overlap. Restitution scales the reflected
// speed: 1 is a perfect bounce, 0 kills the approach velocity.
type BounceReceiver struct {
	World       *ecs.World
	Restitution float64
}

func (r *BounceReceiver) ContactEnter(ev component.ContactEvent) {
	if r == nil || r.World == nil {
		return
	}
	self := ecs.Entity(ev.Self)
	if vel, ok := ecs.Get(r.World, self, component.VelocityComponent); ok {
		approach := vel.Linear.Dot(ev.Normal)
		if approach > 0 {
			vel.Linear = vel.Linear.Sub(ev.Normal.Mul((1 + r.Restitution) * approach))
			_ = ecs.Add(r.World, self, component.VelocityComponent, vel)
		}
	}
	r.pushOut(ev)
}

func (r *BounceReceiver) ContactStay(ev component.ContactEvent) {
	if r == nil || r.World == nil {
		return
	}
	r.pushOut(ev)
}

func (r *BounceReceiver) ContactExit(uint64) {}

func (r *BounceReceiver) pushOut(ev component.ContactEvent) {
	if ev.Depth <= 0 {
		return
	}
	self := ecs.Entity(ev.Self)
	tr, ok := ecs.Get(r.World, self, component.TransformComponent)
	if !ok {
		return
	}
	tr.Position = tr.Position.Sub(ev.Normal.Mul(ev.Depth))
	_ = ecs.Add(r.World, self, component.TransformComponent, tr)
}

// PickupReceiver awards points when the player touches the holder, then
// queues the holder for destruction. Non-player contacts are ignored.
type PickupReceiver struct {
	World  *ecs.World
	Points int
}

func (r *PickupReceiver) ContactEnter(ev component.ContactEvent) {
	if r == nil || r.World == nil {
		return
	}
	other := ecs.Entity(ev.Other)
	if !ecs.Has(r.World, other, component.PlayerTagComponent) {
		return
	}
	r.World.Events().Push(ecs.Event{
		Type: ecs.EventScore,
		Data: ecs.ScoreEvent{Entity: other, Points: r.Points},
	})
	r.World.QueueDestroy(ecs.Entity(ev.Self))
}

func (r *PickupReceiver) ContactStay(component.ContactEvent) {}

func (r *PickupReceiver) ContactExit(uint64) {}

// HazardReceiver sends the player back to the spawn point and zeroes its
// velocity. Anything else passes through unharmed.
type HazardReceiver struct {
	World *ecs.World
}

func (r *HazardReceiver) ContactEnter(ev component.ContactEvent) {
	if r == nil || r.World == nil {
		return
	}
	other := ecs.Entity(ev.Other)
	if !ecs.Has(r.World, other, component.PlayerTagComponent) {
		return
	}

	spawn, ok := r.World.First(component.SpawnPointComponent.Kind())
	if !ok {
		return
	}
	sp, ok := ecs.Get(r.World, spawn, component.SpawnPointComponent)
	if !ok {
		return
	}

	if tr, ok := ecs.Get(r.World, other, component.TransformComponent); ok {
		tr.Position = sp.Position
		_ = ecs.Add(r.World, other, component.TransformComponent, tr)
	}
	if vel, ok := ecs.Get(r.World, other, component.VelocityComponent); ok {
		vel.Linear = mgl64.Vec3{}
		_ = ecs.Add(r.World, other, component.VelocityComponent, vel)
	}

	r.World.Events().Push(ecs.Event{
		Type: ecs.EventHazard,
		Data: ecs.HazardEvent{Entity: other, Hazard: ecs.Entity(ev.Self)},
	})
}

func (r *HazardReceiver) ContactStay(component.ContactEvent) {}

func (r *HazardReceiver) ContactExit(uint64) {}
