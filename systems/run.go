package systems

import (
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/leveldata"
	"github.com/automoto/parafall/systems/factory"
	"github.com/automoto/parafall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CurrentRun returns the run singleton, or nil before the scene is built.
func CurrentRun(e *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(e.World)
	if !ok {
		return nil
	}
	return components.Run.Get(entry)
}

// WhilePlaying wraps a gameplay system so it only runs while the run is
// live. Once the run ends the wrapped systems stop, which freezes physics,
// spawning and collision resolution in one place.
func WhilePlaying(sys ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if run := CurrentRun(e); run != nil && !run.GameOver {
			sys(e)
		}
	}
}

// UpdateRun handles per-tick run bookkeeping: restart and menu sampling
// (every tick, regardless of game over) and the score timer.
func UpdateRun(e *ecs.ECS) {
	run := CurrentRun(e)
	if run == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRestart).Pressed {
		run.RestartRequested = true
	}
	if GetAction(input, cfg.ActionBackToMenu).JustPressed {
		run.BackToMenu = true
	}

	if run.GameOver {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	run.ScoreTimer--
	if run.ScoreTimer <= 0 {
		run.ScoreTimer = cfg.TicksFor(cfg.Run.ScoreIntervalMS)
		// Scoring stops at the ground threshold even before the landing
		// transition fires, so there is no last-frame score bump.
		if obj.Y < groundY(e) {
			run.Score++
		}
	}
}

// EndRun moves the run to its terminal state, freezing every body and
// flashing the player on a crash. Idempotent once the run has ended.
func EndRun(e *ecs.ECS, outcome components.Outcome, cause components.CrashCause) {
	run := CurrentRun(e)
	if run == nil || run.GameOver {
		return
	}
	run.GameOver = true
	run.Outcome = outcome
	run.Cause = cause

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		body.SpeedX = 0
		body.SpeedY = 0
	})

	if outcome == components.OutcomeCrashed {
		if playerEntry, ok := tags.Player.First(e.World); ok {
			components.Flash.SetValue(playerEntry, components.FlashData{
				Duration: cfg.Player.FlashFrames,
				R:        1, G: 0.35, B: 0.35,
			})
		}
	}

	factory.CreateBanner(e)
}

// currentLayout returns the world layout for the scene, or nil when no
// level entity exists (tests fall back to config constants).
func currentLayout(e *ecs.ECS) *leveldata.Layout {
	if entry, ok := components.Level.First(e.World); ok {
		return components.Level.Get(entry).Layout
	}
	return nil
}

func groundY(e *ecs.ECS) float64 {
	if l := currentLayout(e); l != nil {
		return l.GroundY
	}
	return cfg.World.GroundY
}

func worldWidth(e *ecs.ECS) float64 {
	if l := currentLayout(e); l != nil {
		return float64(l.Width)
	}
	return float64(cfg.World.Width)
}
