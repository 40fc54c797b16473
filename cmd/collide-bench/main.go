// Stress harness for the collision pass.
//
// Profiling:
// go build ./cmd/collide-bench
// ./collide-bench -entities 512 -frames 1200 -profile cpu
// go tool pprof -http=":8000" ./collide-bench cpu.pprof

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/profile"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
	"github.com/quartzheim/arenaball/ecs/system"
	"github.com/quartzheim/arenaball/physics"
)

func main() {
	entities := flag.Int("entities", 256, "number of colliders to spawn")
	frames := flag.Int("frames", 600, "number of update passes to run")
	mode := flag.String("profile", "", "write a pprof profile: cpu or mem")
	flag.Parse()

	n := *entities
	if n < 1 {
		n = 1
	}
	passes := *frames
	if passes < 1 {
		passes = 1
	}

	var prof interface{ Stop() }
	switch *mode {
	case "cpu":
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		prof = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	case "":
	default:
		log.Fatalf("collide-bench: unknown profile mode %q", *mode)
	}

	w := ecs.NewWorld()
	collision := system.NewCollisionSystem()
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(collision)
	populate(w, n)

	var enters uint64
	collision.RegisterContactCallback(func(physics.Contact) { enters++ })

	start := time.Now()
	for i := 0; i < passes; i++ {
		w.Update()
	}
	elapsed := time.Since(start)

	if prof != nil {
		prof.Stop()
	}

	fmt.Printf("collide-bench: %d entities, %d frames in %s (%s per frame)\n",
		n, passes, elapsed.Round(time.Millisecond), elapsed/time.Duration(passes))
	fmt.Printf("collide-bench: %d contact enters, %d unsupported pairs\n",
		enters, collision.UnsupportedPairs())
}

// populate lays colliders out on a cube grid tight enough that neighbors
// start in contact, then lets the per-entity velocities churn the pair set.
func populate(w *ecs.World, n int) {
	side := int(math.Ceil(math.Cbrt(float64(n))))
	const spacing = 1.6
	for i := 0; i < n; i++ {
		x := float64(i%side) * spacing
		y := float64((i/side)%side) * spacing
		z := float64(i/(side*side)) * spacing

		e := w.CreateEntity()
		mustAdd(w, e, component.TransformComponent, component.Transform{
			Position: mgl64.Vec3{x, y, z},
			Scale:    mgl64.Vec3{1, 1, 1},
		})
		mustAdd(w, e, component.VelocityComponent, component.Velocity{
			Linear: mgl64.Vec3{0.02 * float64(i%3-1), 0, 0.02 * float64(i%5-2)},
		})

		switch {
		case i%7 == 6:
			mustAdd(w, e, component.CapsuleColliderComponent, component.CapsuleCollider{Radius: 0.6, Height: 2})
		case i%2 == 0:
			mustAdd(w, e, component.SphereColliderComponent, component.SphereCollider{Radius: 1})
		default:
			mustAdd(w, e, component.BoxColliderComponent, component.BoxCollider{Size: mgl64.Vec3{1.4, 1.4, 1.4}})
		}
	}
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, h component.Handle[T], v T) {
	if err := ecs.Add(w, e, h, v); err != nil {
		log.Fatalf("collide-bench: add component: %v", err)
	}
}
