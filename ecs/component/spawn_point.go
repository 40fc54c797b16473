package component

import "github.com/go-gl/mathgl/mgl64"

// SpawnPoint remembers where an entity returns after touching a hazard.
type SpawnPoint struct {
	Position mgl64.Vec3
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
