package systems

import (
	"math/rand"

	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/systems/factory"
	"github.com/automoto/parafall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner drives the run-scoped spawn and reclaim timers. One
// obstacle appears at the right edge per spawn tick, at a random altitude
// inside the band; the faster reclaim tick destroys anything that has
// scrolled past the reclaim line. There is no cap on active obstacles
// beyond what reclaiming naturally enforces. Wrapped in WhilePlaying:
// spawning stops once the run ends (policy note in DESIGN.md).
func UpdateSpawner(e *ecs.ECS) {
	run := CurrentRun(e)
	if run == nil {
		return
	}

	run.SpawnTimer--
	if run.SpawnTimer <= 0 {
		run.SpawnTimer = cfg.TicksFor(cfg.Obstacle.SpawnIntervalMS)
		spawnObstacle(e)
	}

	run.ReclaimTimer--
	if run.ReclaimTimer <= 0 {
		run.ReclaimTimer = cfg.TicksFor(cfg.Obstacle.ReclaimIntervalMS)
		reclaimOffscreen(e)
	}
}

func spawnObstacle(e *ecs.ECS) {
	minY, maxY := cfg.Obstacle.MinAltitude, cfg.Obstacle.MaxAltitude
	if l := currentLayout(e); l != nil {
		minY, maxY = l.BandMinY, l.BandMaxY
	}
	y := float64(minY + rand.Intn(maxY-minY+1))
	factory.CreateObstacle(e, worldWidth(e), y)
}

func reclaimOffscreen(e *ecs.ECS) {
	// Collect first: removing entities while iterating the tag is unsafe.
	var offscreen []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.X < cfg.Obstacle.ReclaimX {
			offscreen = append(offscreen, entry)
		}
	})

	for _, entry := range offscreen {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		e.World.Remove(entry.Entity())
	}
}
