package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/quartzheim/arenaball/common"
	"github.com/quartzheim/arenaball/ecs"
	"github.com/quartzheim/arenaball/ecs/component"
	"github.com/quartzheim/arenaball/ecs/entity"
	"github.com/quartzheim/arenaball/ecs/system"
	"github.com/quartzheim/arenaball/prefabs"
)

// Game owns the world and drives it at a fixed tick rate. Rendering is out
// of scope; the simulation reports through logs and the final summary.
type Game struct {
	world     *ecs.World
	collision *system.CollisionSystem
	scenePath string
	settings  *SettingsManager
	watcher   *prefabs.Watcher

	score int
	ticks int
}

func NewGame(scenePath string, settings *SettingsManager) (*Game, error) {
	g := &Game{scenePath: scenePath, settings: settings}
	world, collision, err := g.buildWorld()
	if err != nil {
		return nil, err
	}
	g.world = world
	g.collision = collision
	return g, nil
}

func (g *Game) buildWorld() (*ecs.World, *system.CollisionSystem, error) {
	w := ecs.NewWorld()
	collision := system.NewCollisionSystem()
	if g.settings != nil && g.settings.Get().DebugCollision {
		collision.SetVerbose(true)
	}
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(collision)

	if _, err := entity.BuildScene(w, g.scenePath); err != nil {
		return nil, nil, fmt.Errorf("game: %w", err)
	}
	return w, collision, nil
}

// Tick advances the simulation one frame and applies any queued events.
func (g *Game) Tick() {
	g.ticks++
	g.world.Update()

	for _, ev := range g.world.Events().Drain() {
		switch ev.Type {
		case ecs.EventScore:
			data, ok := ev.Data.(ecs.ScoreEvent)
			if !ok {
				continue
			}
			g.score += data.Points
			log.Printf("game: %s scored %d points (total %d)", g.label(data.Entity), data.Points, g.score)
		case ecs.EventHazard:
			data, ok := ev.Data.(ecs.HazardEvent)
			if !ok {
				continue
			}
			log.Printf("game: %s hit %s and respawned", g.label(data.Entity), g.label(data.Hazard))
		}
	}
}

func (g *Game) label(e ecs.Entity) string {
	if name, ok := ecs.Get(g.world, e, component.NameComponent); ok && name.Value != "" {
		return name.Value
	}
	return e.String()
}

// Watch rebuilds the scene whenever a watched directory reports a change.
func (g *Game) Watch(dirs ...string) error {
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return fmt.Errorf("game: watch: %w", err)
	}
	g.watcher = w
	return nil
}

// Reload rebuilds the world from the scene file. The running world stays in
// place if the rebuild fails.
func (g *Game) Reload() error {
	world, collision, err := g.buildWorld()
	if err != nil {
		return err
	}
	g.world = world
	g.collision = collision
	return nil
}

func (g *Game) Run(ticks int) error {
	rate := common.TickRate
	if g.settings != nil && g.settings.Get().TickRate > 0 {
		rate = g.settings.Get().TickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for ticks <= 0 || g.ticks < ticks {
		select {
		case <-ticker.C:
			g.Tick()
		case path, ok := <-g.watchEvents():
			if !ok {
				g.watcher = nil
				continue
			}
			log.Printf("game: %s changed, rebuilding scene", path)
			if err := g.Reload(); err != nil {
				log.Printf("game: scene rebuild failed: %v", err)
			}
		case err, ok := <-g.watchErrors():
			if !ok {
				g.watcher = nil
				continue
			}
			log.Printf("game: watch error: %v", err)
		case <-interrupt:
			log.Printf("game: interrupted")
			return g.finish()
		}
	}
	return g.finish()
}

func (g *Game) finish() error {
	log.Printf("game: finished after %d ticks, score %d, unsupported pairs %d",
		g.ticks, g.score, g.collision.UnsupportedPairs())

	if g.settings == nil {
		return nil
	}
	if g.score > g.settings.Get().HighScore {
		log.Printf("game: new high score %d (previous %d)", g.score, g.settings.Get().HighScore)
		g.settings.SetHighScore(g.score)
	}
	if err := g.settings.Save(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) watchEvents() <-chan string {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Events
}

func (g *Game) watchErrors() <-chan error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Errors
}
