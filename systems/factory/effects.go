package factory

import (
	"github.com/automoto/parafall/archetypes"
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner spawns the end-of-run banner overlay with its fade-in tween.
func CreateBanner(ecs *ecs.ECS) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)
	components.Banner.SetValue(banner, components.BannerData{})

	tw := gween.NewSequence()
	tw.Add(gween.New(0, 1, cfg.HUD.FadeDuration, ease.Linear))
	components.Tween.Set(banner, tw)

	return banner
}

// CreateCloud spawns a decorative cloud that bobs on a looping tween while
// drifting leftward.
func CreateCloud(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	cloud := archetypes.Cloud.Spawn(ecs)
	components.Cloud.SetValue(cloud, components.CloudData{X: x, Y: y, BaseY: y})

	amp := float32(cfg.Cloud.BobAmplitude)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, amp, cfg.Cloud.BobDuration, ease.InOutQuad),
		gween.New(amp, 0, cfg.Cloud.BobDuration, ease.InOutQuad),
	)
	components.Tween.Set(cloud, tw)

	return cloud
}
