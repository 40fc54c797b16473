package entity

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
	"github.com/quartzheim/arenaball/prefabs"
)

const contactDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __event)
} else if __phase == "stay" {
	onStay(__engine, __state, __event)
} else if __phase == "exit" {
	onExit(__engine, __state, __other)
}
`

// ScriptReceiver runs a tengo contact script for one entity. The script must
// define onEnter, onStay and onExit; a mutable __state map persists between
// calls so scripts can count hits or remember the last contact. Script
// errors are logged, never fatal.
type ScriptReceiver struct {
	world      *ecs.World
	self       ecs.Entity
	scriptPath string
	compiled   *tengo.Compiled
	stateData  *tengo.Map
}

func NewScriptReceiver(w *ecs.World, self ecs.Entity, scriptPath string) (*ScriptReceiver, error) {
	if w == nil {
		return nil, fmt.Errorf("contact script: world is nil")
	}

	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("contact script: load %q: %w", scriptPath, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + contactDispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__event", map[string]any{})
	_ = script.Add("__other", int64(0))

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("contact script: compile %q: %w", scriptPath, err)
	}

	return &ScriptReceiver{
		world:      w,
		self:       self,
		scriptPath: scriptPath,
		compiled:   compiled,
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (r *ScriptReceiver) ContactEnter(ev component.ContactEvent) {
	if err := r.runPhase("enter", r.buildEngine(ev.Other), eventObject(ev), ev.Other); err != nil {
		fmt.Printf("entity: contact script %q enter error: %v\n", r.scriptPath, err)
	}
}

func (r *ScriptReceiver) ContactStay(ev component.ContactEvent) {
	if err := r.runPhase("stay", r.buildEngine(ev.Other), eventObject(ev), ev.Other); err != nil {
		fmt.Printf("entity: contact script %q stay error: %v\n", r.scriptPath, err)
	}
}

func (r *ScriptReceiver) ContactExit(other uint64) {
	if err := r.runPhase("exit", r.buildEngine(other), emptyEvent(), other); err != nil {
		fmt.Printf("entity: contact script %q exit error: %v\n", r.scriptPath, err)
	}
}

func (r *ScriptReceiver) runPhase(phase string, engine *tengo.ImmutableMap, event tengo.Object, other uint64) error {
	if r == nil || r.compiled == nil {
		return fmt.Errorf("nil script receiver")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := r.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := r.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := r.compiled.Set("__state", r.stateData); err != nil {
		return err
	}
	if err := r.compiled.Set("__event", event); err != nil {
		return err
	}
	if err := r.compiled.Set("__other", int64(other)); err != nil {
		return err
	}
	return r.compiled.Run()
}

func (r *ScriptReceiver) buildEngine(other uint64) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["queue_destroy"] = &tengo.UserFunction{Name: "queue_destroy", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil {
			return tengo.FalseValue, nil
		}
		r.world.QueueDestroy(r.self)
		return tengo.TrueValue, nil
	}}

	values["destroy_other"] = &tengo.UserFunction{Name: "destroy_other", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil || other == 0 {
			return tengo.FalseValue, nil
		}
		r.world.QueueDestroy(ecs.Entity(other))
		return tengo.TrueValue, nil
	}}

	values["add_score"] = &tengo.UserFunction{Name: "add_score", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		r.world.Events().Push(ecs.Event{
			Type: ecs.EventScore,
			Data: ecs.ScoreEvent{Entity: ecs.Entity(other), Points: int(objectToInt(args[0]))},
		})
		return tengo.TrueValue, nil
	}}

	values["is_player"] = &tengo.UserFunction{Name: "is_player", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		id := ecs.Entity(uint64(objectToInt(args[0])))
		if ecs.Has(r.world, id, component.PlayerTagComponent) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil {
			return vecObject(mgl64.Vec3{}), nil
		}
		tr, ok := ecs.Get(r.world, r.self, component.TransformComponent)
		if !ok {
			return vecObject(mgl64.Vec3{}), nil
		}
		return vecObject(tr.Position), nil
	}}

	values["set_velocity"] = &tengo.UserFunction{Name: "set_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil || len(args) < 3 {
			return tengo.FalseValue, nil
		}
		linear := mgl64.Vec3{objectToFloat(args[0]), objectToFloat(args[1]), objectToFloat(args[2])}
		if err := ecs.Add(r.world, r.self, component.VelocityComponent, component.Velocity{Linear: linear}); err != nil {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		fmt.Printf("entity: script %q: %s\n", r.scriptPath, objectAsString(args[0]))
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func eventObject(ev component.ContactEvent) tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"other":  &tengo.Int{Value: int64(ev.Other)},
		"point":  vecObject(ev.Point),
		"normal": vecObject(ev.Normal),
		"depth":  &tengo.Float{Value: ev.Depth},
	}}
}

func emptyEvent() tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
}

func vecObject(v mgl64.Vec3) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: v.X()},
		&tengo.Float{Value: v.Y()},
		&tengo.Float{Value: v.Z()},
	}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToInt(obj tengo.Object) int64 {
	switch v := obj.(type) {
	case *tengo.Int:
		return v.Value
	case *tengo.Float:
		return int64(v.Value)
	default:
		return 0
	}
}

func objectToFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	default:
		return 0
	}
}
