package systems

import (
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Procedural textures, built lazily on first draw so the simulation systems
// never touch the GPU (keeps them runnable in tests).
var (
	skydiverTexture  *ebiten.Image
	parachuteTexture *ebiten.Image
	obstacleTexture  *ebiten.Image
	cloudTexture     *ebiten.Image
)

// DrawWorld paints the sky, the cloud layer and the ground strip.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	// Lighter band toward the horizon
	vector.FillRect(screen, 0, h*0.6, w, h*0.4, cfg.SkyHorizon, false)

	components.Cloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cloud.X, cloud.Y)
		screen.DrawImage(getCloudTexture(), op)
	})

	// The ground surface sits one player-height below the threshold the
	// player's top edge lands at.
	groundTop := float32(groundY(e) + cfg.Player.CollisionHeight())
	vector.FillRect(screen, 0, groundTop, w, h-groundTop, cfg.GroundGreen, false)
	vector.FillRect(screen, 0, groundTop, w, 3, cfg.GroundDark, false)
}

// DrawSprites renders obstacles and the player. The player texture follows
// the parachute state; the damage flash tints it after a crash.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	run := CurrentRun(e)

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(obj.X, obj.Y)
		screen.DrawImage(getObstacleTexture(), op)
	})

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	flash := components.Flash.Get(playerEntry)

	op := &ebiten.DrawImageOptions{}
	if player.FacingLeft {
		op.GeoM.Scale(-cfg.Player.Scale, cfg.Player.Scale)
		op.GeoM.Translate(obj.X+obj.W, obj.Y)
	} else {
		op.GeoM.Scale(cfg.Player.Scale, cfg.Player.Scale)
		op.GeoM.Translate(obj.X, obj.Y)
	}
	if flash.Duration > 0 {
		op.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
	}
	screen.DrawImage(getPlayerTexture(run), op)
}

func getPlayerTexture(run *components.RunData) *ebiten.Image {
	if run != nil && run.ParachuteDeployed {
		if parachuteTexture == nil {
			parachuteTexture = buildSkydiverTexture(true)
		}
		return parachuteTexture
	}
	if skydiverTexture == nil {
		skydiverTexture = buildSkydiverTexture(false)
	}
	return skydiverTexture
}

func buildSkydiverTexture(withChute bool) *ebiten.Image {
	img := ebiten.NewImage(cfg.Player.FrameWidth, cfg.Player.FrameHeight)
	if withChute {
		// Canopy over a tucked body
		vector.FillCircle(img, 8, 6, 7, cfg.CanopyRed, true)
		vector.FillRect(img, 1, 6, 14, 2, cfg.CanopyRed, false)
		vector.FillCircle(img, 8, 14, 2, cfg.White, true)
		vector.FillRect(img, 6, 16, 4, 5, cfg.SuitOrange, false)
		vector.FillRect(img, 6, 21, 1, 3, cfg.SuitOrange, false)
		vector.FillRect(img, 9, 21, 1, 3, cfg.SuitOrange, false)
	} else {
		// Head, suit, pack on the back, legs
		vector.FillCircle(img, 8, 4, 3, cfg.White, true)
		vector.FillRect(img, 5, 7, 6, 10, cfg.SuitOrange, false)
		vector.FillRect(img, 3, 9, 3, 6, cfg.PackBrown, false)
		vector.FillRect(img, 5, 17, 2, 6, cfg.SuitOrange, false)
		vector.FillRect(img, 9, 17, 2, 6, cfg.SuitOrange, false)
	}
	return img
}

func getObstacleTexture() *ebiten.Image {
	if obstacleTexture == nil {
		img := ebiten.NewImage(int(cfg.Obstacle.Width), int(cfg.Obstacle.Height))
		vector.FillRect(img, 4, 6, 40, 8, cfg.ObstacleGray, false)
		vector.FillRect(img, 0, 8, 6, 4, cfg.GroundDark, false)
		vector.FillRect(img, 18, 2, 8, 16, cfg.GroundDark, false)
		vector.FillCircle(img, 44, 10, 4, cfg.ObstacleGray, true)
		obstacleTexture = img
	}
	return obstacleTexture
}

func getCloudTexture() *ebiten.Image {
	if cloudTexture == nil {
		img := ebiten.NewImage(int(cfg.Cloud.Width), int(cfg.Cloud.Height))
		vector.FillCircle(img, 24, 22, 14, cfg.CloudWhite, true)
		vector.FillCircle(img, 48, 18, 18, cfg.CloudWhite, true)
		vector.FillCircle(img, 72, 24, 12, cfg.CloudWhite, true)
		cloudTexture = img
	}
	return cloudTexture
}
