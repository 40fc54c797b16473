package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

// DecodeComponentSpec re-marshals the raw mapping parsed from a scene file
// into a typed component spec. A nil raw value decodes to the zero spec so
// bare component keys work ("player_tag:").
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type TransformComponentSpec struct {
	Position VecSpec  `yaml:"position"`
	Scale    *VecSpec `yaml:"scale"`
	Rotation VecSpec  `yaml:"rotation"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type BoxColliderComponentSpec struct {
	Offset VecSpec `yaml:"offset"`
	Size   VecSpec `yaml:"size"`
}

type SphereColliderComponentSpec struct {
	Offset VecSpec `yaml:"offset"`
	Radius float64 `yaml:"radius"`
}

type CapsuleColliderComponentSpec struct {
	Offset VecSpec `yaml:"offset"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

type SpawnPointComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type BounceComponentSpec struct {
	Restitution *float64 `yaml:"restitution"`
}

type PickupComponentSpec struct {
	Points *int `yaml:"points"`
}

type HazardComponentSpec struct{}

type ContactScriptComponentSpec struct {
	Script string `yaml:"script"`
}
