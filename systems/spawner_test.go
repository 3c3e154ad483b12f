package systems

import (
	"testing"

	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/systems/factory"
	"github.com/automoto/parafall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnTestObstacle(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateObstacle(e, x, y)
}

func countObstacles(e *ecs.ECS) int {
	count := 0
	tags.Obstacle.Each(e.World, func(*donburi.Entry) { count++ })
	return count
}

func TestSpawnCadence(t *testing.T) {
	e, _, _ := newRunECS(t)

	interval := cfg.TicksFor(cfg.Obstacle.SpawnIntervalMS)
	for i := 0; i < interval-1; i++ {
		UpdateSpawner(e)
	}
	if got := countObstacles(e); got != 0 {
		t.Fatalf("%d obstacles one tick before the interval, want 0", got)
	}

	UpdateSpawner(e)
	if got := countObstacles(e); got != 1 {
		t.Fatalf("%d obstacles at the interval, want 1", got)
	}

	for i := 0; i < interval; i++ {
		UpdateSpawner(e)
	}
	if got := countObstacles(e); got != 2 {
		t.Fatalf("%d obstacles after two intervals, want 2", got)
	}
}

func TestSpawnedObstacleProperties(t *testing.T) {
	e, _, _ := newRunECS(t)

	for i := 0; i < cfg.TicksFor(cfg.Obstacle.SpawnIntervalMS); i++ {
		UpdateSpawner(e)
	}

	entry, ok := tags.Obstacle.First(e.World)
	if !ok {
		t.Fatal("no obstacle spawned")
	}
	obj := components.Object.Get(entry)
	body := components.Body.Get(entry)

	if obj.X != float64(cfg.World.Width) {
		t.Fatalf("obstacle X = %v, want the right edge %v", obj.X, cfg.World.Width)
	}
	if obj.Y < float64(cfg.Obstacle.MinAltitude) || obj.Y > float64(cfg.Obstacle.MaxAltitude) {
		t.Fatalf("obstacle Y = %v, want inside [%d, %d]", obj.Y, cfg.Obstacle.MinAltitude, cfg.Obstacle.MaxAltitude)
	}
	if body.SpeedX != cfg.Obstacle.Speed {
		t.Fatalf("obstacle SpeedX = %v, want %v", body.SpeedX, cfg.Obstacle.Speed)
	}
	if body.SpeedY != 0 || body.GravityScale != 0 {
		t.Fatalf("obstacle vertical state = (%v, scale %v), want level flight", body.SpeedY, body.GravityScale)
	}
}

func TestSpawnAltitudeStaysInBand(t *testing.T) {
	e, _, _ := newRunECS(t)

	// Force a spawn every tick and check the whole sample stays in the band
	run := CurrentRun(e)
	for i := 0; i < 200; i++ {
		run.SpawnTimer = 1
		run.ReclaimTimer = 1000
		UpdateSpawner(e)
	}

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Y < float64(cfg.Obstacle.MinAltitude) || obj.Y > float64(cfg.Obstacle.MaxAltitude) {
			t.Fatalf("obstacle Y = %v outside band [%d, %d]", obj.Y, cfg.Obstacle.MinAltitude, cfg.Obstacle.MaxAltitude)
		}
	})
}

func TestReclaimRemovesOffscreenObstacles(t *testing.T) {
	e, run, _ := newRunECS(t)

	spawnTestObstacle(e, cfg.Obstacle.ReclaimX-50, 300)
	kept := spawnTestObstacle(e, cfg.Obstacle.ReclaimX+50, 320)

	// Keep the spawn timer out of the way and run one full reclaim interval
	run.SpawnTimer = 1000
	for i := 0; i < cfg.TicksFor(cfg.Obstacle.ReclaimIntervalMS); i++ {
		UpdateSpawner(e)
	}

	if got := countObstacles(e); got != 1 {
		t.Fatalf("%d obstacles after reclaim, want 1", got)
	}
	entry, _ := tags.Obstacle.First(e.World)
	if entry.Entity() != kept.Entity() {
		t.Fatal("reclaim removed the wrong obstacle")
	}
}

func TestReclaimAlsoRemovesFromSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, cfg.World.Width, cfg.World.Height, 8, 8)
	space := components.Space.Get(spaceEntry)
	factory.CreateRun(e)

	spawnTestObstacle(e, cfg.Obstacle.ReclaimX-10, 300)
	if len(space.Objects()) != 1 {
		t.Fatalf("space holds %d objects after spawn, want 1", len(space.Objects()))
	}

	run := CurrentRun(e)
	run.SpawnTimer = 1000
	run.ReclaimTimer = 1
	UpdateSpawner(e)

	if len(space.Objects()) != 0 {
		t.Fatalf("space holds %d objects after reclaim, want 0", len(space.Objects()))
	}
}
