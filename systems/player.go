package systems

import (
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer maps input intent onto the player body once per tick.
// Horizontal intent overrides drag instantaneously; vertical speed is fully
// determined by the parachute state and the slow-fall key, with the
// parachute taking strict priority. Wrapped in WhilePlaying, so intent
// stops applying the moment the run ends.
func UpdatePlayer(e *ecs.ECS) {
	run := CurrentRun(e)
	playerEntry, ok := tags.Player.First(e.World)
	if run == nil || !ok {
		return
	}
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		body.SpeedX = -cfg.Player.MoveSpeed
		player.FacingLeft = true
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		body.SpeedX = cfg.Player.MoveSpeed
		player.FacingLeft = false
	default:
		body.SpeedX = 0
	}

	// The toggle is an edge, not a held state; flipping before the
	// vertical intent below means it takes effect the same tick.
	if GetAction(input, cfg.ActionToggleParachute).JustPressed {
		run.ParachuteDeployed = !run.ParachuteDeployed
	}

	switch {
	case run.ParachuteDeployed:
		body.SpeedY = cfg.Player.ParachuteFallSpeed
	case GetAction(input, cfg.ActionSlowFall).Pressed:
		body.SpeedY = cfg.Player.SlowFallSpeed
	default:
		body.SpeedY = cfg.Player.FallSpeed
	}
}
