// scenelint checks scene specs for problems the engine would otherwise hide
// at runtime: components with no builder, colliders that fail validation,
// shapes the collision pass silently skips, and handler setups that cannot
// fire. With no arguments it checks every embedded scene.

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/entity"
	"github.com/quartzheim/arenaball/prefabs"
)

var shapeComponents = []string{"box_collider", "sphere_collider", "capsule_collider"}

// handlerComponents all attach a contact handler; an entity gets exactly one
// handler slot, so listing several means all but the last are dead weight.
var handlerComponents = []string{"bounce", "pickup", "hazard", "contact_script"}

func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		var err error
		paths, err = embeddedScenes()
		if err != nil {
			log.Fatalf("scenelint: %v", err)
		}
	}

	problems := 0
	for _, path := range paths {
		problems += lintScene(path)
	}
	if problems > 0 {
		fmt.Printf("scenelint: %d problem(s)\n", problems)
		os.Exit(1)
	}
	fmt.Println("scenelint: all scenes clean")
}

func embeddedScenes() ([]string, error) {
	entries, err := fs.Glob(prefabs.ScenesFS, "scenes/*.yaml")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimPrefix(e, "scenes/"))
	}
	return out, nil
}

func lintScene(path string) int {
	spec, err := prefabs.LoadSceneSpec(path)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return 1
	}

	problems := 0
	report := func(subject, format string, args ...any) {
		problems++
		fmt.Printf("%s: %s: %s\n", path, subject, fmt.Sprintf(format, args...))
	}

	w := ecs.NewWorld()
	seen := make(map[string]bool)
	var hasPlayer, hasSpawn, hasPickup, hasHazard bool

	for i, es := range spec.Entities {
		label := es.Name
		if label == "" {
			label = fmt.Sprintf("entity #%d", i)
			report(label, "missing a name")
		} else if seen[label] {
			report(label, "duplicate name")
		}
		seen[label] = true

		if _, err := entity.BuildEntity(w, es, path); err != nil {
			report(label, "%v", err)
			continue
		}

		_, hasTransform := es.Components["transform"]
		for _, shape := range shapeComponents {
			if _, ok := es.Components[shape]; ok && !hasTransform {
				report(label, "%s is never tested without a transform", shape)
			}
		}
		if _, ok := es.Components["velocity"]; ok && !hasTransform {
			report(label, "velocity has no effect without a transform")
		}

		handlers := 0
		for _, h := range handlerComponents {
			if _, ok := es.Components[h]; ok {
				handlers++
			}
		}
		if handlers > 1 {
			report(label, "%d contact handlers listed; only the last one built receives events", handlers)
		}

		if _, ok := es.Components["player_tag"]; ok {
			hasPlayer = true
		}
		if _, ok := es.Components["spawn_point"]; ok {
			hasSpawn = true
		}
		if _, ok := es.Components["pickup"]; ok {
			hasPickup = true
		}
		if _, ok := es.Components["hazard"]; ok {
			hasHazard = true
		}
	}

	if hasPickup && !hasPlayer {
		problems++
		fmt.Printf("%s: pickups can never be collected: no entity carries player_tag\n", path)
	}
	if hasHazard && !hasSpawn {
		problems++
		fmt.Printf("%s: hazards cannot respawn anything: no spawn_point in the scene\n", path)
	}

	return problems
}
