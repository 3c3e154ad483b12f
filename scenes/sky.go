package scenes

import (
	"image/color"
	"math/rand"
	"sync"

	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/leveldata"
	"github.com/automoto/parafall/systems"
	"github.com/automoto/parafall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SkyScene is the single gameplay scene: one run from jump to crash or
// landing. Restart builds a brand-new scene, which is what gives the run
// singleton and its timers their fresh-per-run lifecycle.
type SkyScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewSkyScene creates a new gameplay scene
func NewSkyScene(sc SceneChanger) *SkyScene {
	return &SkyScene{sceneChanger: sc}
}

func (ss *SkyScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if run := systems.CurrentRun(ss.ecs); run != nil {
		if run.RestartRequested {
			ss.sceneChanger.ChangeScene(NewSkyScene(ss.sceneChanger))
			return
		}
		if run.BackToMenu {
			ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger))
		}
	}
}

func (ss *SkyScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SkyScene) configure() {
	layout, err := leveldata.Load()
	if err != nil {
		panic("failed to load world layout: " + err.Error())
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)

	// Gameplay systems stop the moment the run ends
	e.AddSystem(systems.WhilePlaying(systems.UpdatePlayer))
	e.AddSystem(systems.WhilePlaying(systems.UpdatePhysics))
	e.AddSystem(systems.WhilePlaying(systems.UpdateObjects))
	e.AddSystem(systems.WhilePlaying(systems.UpdateSpawner))
	e.AddSystem(systems.WhilePlaying(systems.UpdateCollisions))

	// Run bookkeeping and presentation run every tick so the restart key
	// and the banner fade still work over a frozen scene
	e.AddSystem(systems.UpdateRun)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateSettings)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawBanner)

	ss.ecs = e

	factory.CreateLevel(e, layout)
	factory.CreateSpace(e, layout.Width, layout.Height, 8, 8)
	factory.CreateRun(e)
	factory.CreatePlayer(e, layout.SpawnX, layout.SpawnY)

	if systems.Settings().ShowClouds {
		for i := 0; i < cfg.Cloud.Count; i++ {
			x := rand.Float64() * float64(layout.Width)
			y := float64(cfg.Cloud.MinAltitude + rand.Intn(cfg.Cloud.MaxAltitude-cfg.Cloud.MinAltitude+1))
			factory.CreateCloud(e, x, y)
		}
	}
}
