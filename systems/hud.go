package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score line in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	run := CurrentRun(e)
	if run == nil {
		return
	}

	face := fonts.HUD.Get()
	msg := fmt.Sprintf(cfg.Run.ScoreFormat, run.Score)
	text.Draw(screen, msg, face, cfg.HUD.Margin, cfg.HUD.Margin+18, cfg.HUD.ScoreColor)
}

// DrawBanner renders the end-of-run banner, faded in by its tween over a
// dimmed scene.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	run := CurrentRun(e)
	if run == nil || !run.GameOver {
		return
	}

	alpha := float32(1)
	if entry, ok := components.Banner.First(e.World); ok {
		alpha = components.Banner.Get(entry).Alpha
	}

	w := float64(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(w), h,
		color.NRGBA{A: uint8(alpha * 110)}, false)

	face := fonts.Banner.Get()
	clr := color.NRGBA{
		R: cfg.HUD.BannerColor.R,
		G: cfg.HUD.BannerColor.G,
		B: cfg.HUD.BannerColor.B,
		A: uint8(alpha * 255),
	}

	for i, line := range strings.Split(run.Banner(), "\n") {
		lineWidth := font.MeasureString(face, line).Ceil()
		x := int((w - float64(lineWidth)) / 2)
		y := int(cfg.HUD.BannerY + float64(i)*cfg.HUD.LineHeight)
		text.Draw(screen, line, face, x, y, clr)
	}
}
