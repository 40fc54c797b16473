package main

import (
	"flag"
	"log"

	"github.com/quasilyte/gdata/v2"
)

func main() {
	scene := flag.String("scene", "arena.yaml", "scene file in prefabs/scenes (basename)")
	debug := flag.Bool("debug", false, "log collision enters and exits")
	ticks := flag.Int("ticks", 600, "fixed ticks to simulate (0 = run until interrupted)")
	watch := flag.Bool("watch", false, "rebuild the scene when its files change on disk")
	flag.Parse()

	m, err := gdata.Open(gdata.Config{AppName: "arenaball"})
	if err != nil {
		log.Printf("main: persistent storage unavailable: %v", err)
		m = nil
	}

	settings := NewSettingsManager(m)
	if *debug {
		settings.SetDebugCollision(true)
	}

	game, err := NewGame(*scene, settings)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer game.Close()

	if *watch {
		if err := game.Watch("prefabs/scenes", "prefabs/scripts"); err != nil {
			log.Printf("main: watch disabled: %v", err)
		}
	}

	if err := game.Run(*ticks); err != nil {
		log.Fatalf("main: %v", err)
	}
}
