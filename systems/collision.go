package systems

import (
	"github.com/automoto/parafall/components"
	"github.com/automoto/parafall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the two terminal conditions each tick: obstacle
// impact and ground arrival. They are mutually exclusive in practice and
// both are no-ops once the run has ended.
func UpdateCollisions(e *ecs.ECS) {
	run := CurrentRun(e)
	if run == nil || run.GameOver {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	if check := obj.Check(0, 0, tags.ResolvObstacle); check != nil {
		if len(check.ObjectsByTags(tags.ResolvObstacle)) > 0 {
			EndRun(e, components.OutcomeCrashed, components.CauseObstacle)
			return
		}
	}

	if gy := groundY(e); obj.Y >= gy {
		obj.Y = gy
		if run.ParachuteDeployed {
			EndRun(e, components.OutcomeLanded, components.CauseNone)
		} else {
			EndRun(e, components.OutcomeCrashed, components.CauseGround)
		}
	}
}
