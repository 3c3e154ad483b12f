package factory

import (
	"github.com/automoto/parafall/archetypes"
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns one obstacle at the given position with the
// constant leftward scroll speed. Obstacles are immovable and ignore
// gravity; they fly straight until reclaimed.
func CreateObstacle(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Obstacle.Width, cfg.Obstacle.Height, tags.ResolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Obstacle.Width, cfg.Obstacle.Height))
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	components.Body.SetValue(obstacle, components.BodyData{
		SpeedX:       cfg.Obstacle.Speed,
		GravityScale: 0,
		Immovable:    true,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obstacle
}
