package factory

import (
	"github.com/automoto/parafall/archetypes"
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun spawns the run singleton in its initial Playing state. The
// spawn/reclaim/score timers are owned by the run, so discarding the scene
// ECS on restart cancels them all at once.
func CreateRun(ecs *ecs.ECS) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, components.RunData{
		SpawnTimer:   cfg.TicksFor(cfg.Obstacle.SpawnIntervalMS),
		ReclaimTimer: cfg.TicksFor(cfg.Obstacle.ReclaimIntervalMS),
		ScoreTimer:   cfg.TicksFor(cfg.Run.ScoreIntervalMS),
	})
	return run
}

func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Layout: layout})
	return level
}
