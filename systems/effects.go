package systems

import (
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the presentation-only state: damage flash decay,
// the banner fade-in tween and cloud drift. Runs every tick, including
// after game over, so the banner still fades in over a frozen scene.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(1) / float32(cfg.World.TPS)

	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})

	components.Banner.Each(e.World, func(entry *donburi.Entry) {
		banner := components.Banner.Get(entry)
		if banner.Alpha >= 1 {
			return
		}
		seq := components.Tween.Get(entry)
		alpha, _, done := seq.Update(dt)
		banner.Alpha = alpha
		if done {
			banner.Alpha = 1
		}
	})

	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		seq := components.Tween.Get(entry)
		offset, _, done := seq.Update(dt)
		if done {
			seq.Reset()
		}
		cloud.Y = cloud.BaseY + float64(offset)
		cloud.X -= cfg.Cloud.DriftSpeed / float64(cfg.World.TPS)
		if cloud.X < -cfg.Cloud.Width {
			cloud.X = worldWidth(e)
		}
	})
}
