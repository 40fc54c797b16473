package entity

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
	"github.com/quartzheim/arenaball/prefabs"
)

type buildContext struct {
	ScenePath  string
	EntityName string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":        addTransform,
	"velocity":         addVelocity,
	"box_collider":     addBoxCollider,
	"sphere_collider":  addSphereCollider,
	"capsule_collider": addCapsuleCollider,
	"player_tag":       addPlayerTag,
	"crate_tag":        addCrateTag,
	"spawn_point":      addSpawnPoint,
	"bounce":           addBounce,
	"pickup":           addPickup,
	"hazard":           addHazard,
	"contact_script":   addContactScript,
}

var componentBuildOrder = []string{
	"transform",
	"velocity",
	"box_collider",
	"sphere_collider",
	"capsule_collider",
	"player_tag",
	"crate_tag",
	"spawn_point",
	"bounce",
	"pickup",
	"hazard",
	"contact_script",
}

// BuildEntity assembles one entity from its scene spec. Builders run in a
// fixed order so colliders can rely on the transform existing first; on any
// failure the partially built entity is destroyed.
func BuildEntity(w *ecs.World, spec prefabs.EntityBuildSpec, scenePath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: %q does not define components", spec.Name)
	}

	e := w.CreateEntity()
	ctx := &buildContext{ScenePath: scenePath, EntityName: spec.Name}

	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent, component.Name{Value: spec.Name}); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: add name: %w", spec.Name, err)
		}
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		builder, ok := componentRegistry[name]
		if !ok {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, name)
		}
		if err := builder(w, e, raw, ctx); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			builder, ok := componentRegistry[name]
			if !ok {
				w.DestroyEntity(e)
				return 0, fmt.Errorf("build entity: %q: no builder for component %q", spec.Name, name)
			}
			if err := builder(w, e, remaining[name], ctx); err != nil {
				w.DestroyEntity(e)
				return 0, fmt.Errorf("build entity: %q: add %q: %w", spec.Name, name, err)
			}
		}
	}

	return e, nil
}

// BuildScene loads a scene file and builds every entity in it. A broken
// entity tears down everything built so far, leaving the world untouched.
func BuildScene(w *ecs.World, scenePath string) ([]ecs.Entity, error) {
	spec, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	return BuildSceneFromSpec(w, spec, scenePath)
}

func BuildSceneFromSpec(w *ecs.World, spec prefabs.SceneSpec, scenePath string) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}

	built := make([]ecs.Entity, 0, len(spec.Entities))
	for _, es := range spec.Entities {
		e, err := BuildEntity(w, es, scenePath)
		if err != nil {
			for _, b := range built {
				w.DestroyEntity(b)
			}
			return nil, fmt.Errorf("build scene %q: %w", spec.Name, err)
		}
		built = append(built, e)
	}
	return built, nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}

	scale := mgl64.Vec3{1, 1, 1}
	if spec.Scale != nil {
		scale = mgl64.Vec3{spec.Scale.X, spec.Scale.Y, spec.Scale.Z}
	}

	return ecs.Add(w, e, component.TransformComponent, component.Transform{
		Position: mgl64.Vec3{spec.Position.X, spec.Position.Y, spec.Position.Z},
		Rotation: mgl64.Vec3{spec.Rotation.X, spec.Rotation.Y, spec.Rotation.Z},
		Scale:    scale,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VelocityComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent, component.Velocity{
		Linear: mgl64.Vec3{spec.X, spec.Y, spec.Z},
	})
}

func addBoxCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BoxColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode box_collider spec: %w", err)
	}
	if spec.Size.X <= 0 || spec.Size.Y <= 0 || spec.Size.Z <= 0 {
		return fmt.Errorf("box_collider size must be positive on every axis")
	}
	return ecs.Add(w, e, component.BoxColliderComponent, component.BoxCollider{
		Offset: mgl64.Vec3{spec.Offset.X, spec.Offset.Y, spec.Offset.Z},
		Size:   mgl64.Vec3{spec.Size.X, spec.Size.Y, spec.Size.Z},
	})
}

func addSphereCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SphereColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sphere_collider spec: %w", err)
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("sphere_collider radius must be positive")
	}
	return ecs.Add(w, e, component.SphereColliderComponent, component.SphereCollider{
		Offset: mgl64.Vec3{spec.Offset.X, spec.Offset.Y, spec.Offset.Z},
		Radius: spec.Radius,
	})
}

func addCapsuleCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CapsuleColliderComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode capsule_collider spec: %w", err)
	}
	if spec.Radius <= 0 || spec.Height <= 0 {
		return fmt.Errorf("capsule_collider radius and height must be positive")
	}
	return ecs.Add(w, e, component.CapsuleColliderComponent, component.CapsuleCollider{
		Offset: mgl64.Vec3{spec.Offset.X, spec.Offset.Y, spec.Offset.Z},
		Radius: spec.Radius,
		Height: spec.Height,
	})
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{})
}

func addCrateTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CrateTagComponent, component.CrateTag{})
}

func addSpawnPoint(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpawnPointComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spawn_point spec: %w", err)
	}
	return ecs.Add(w, e, component.SpawnPointComponent, component.SpawnPoint{
		Position: mgl64.Vec3{spec.X, spec.Y, spec.Z},
	})
}

func addBounce(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BounceComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bounce spec: %w", err)
	}
	restitution := 1.0
	if spec.Restitution != nil {
		restitution = *spec.Restitution
	}
	return ecs.Add(w, e, component.ContactHandlerComponent, component.ContactHandler{
		Receiver: &BounceReceiver{World: w, Restitution: restitution},
	})
}

func addPickup(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PickupComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pickup spec: %w", err)
	}
	points := 10
	if spec.Points != nil {
		points = *spec.Points
	}
	return ecs.Add(w, e, component.ContactHandlerComponent, component.ContactHandler{
		Receiver: &PickupReceiver{World: w, Points: points},
	})
}

func addHazard(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ContactHandlerComponent, component.ContactHandler{
		Receiver: &HazardReceiver{World: w},
	})
}

func addContactScript(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ContactScriptComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode contact_script spec: %w", err)
	}
	if spec.Script == "" {
		return fmt.Errorf("contact_script requires a script path")
	}
	recv, err := NewScriptReceiver(w, e, spec.Script)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.ContactHandlerComponent, component.ContactHandler{Receiver: recv})
}
