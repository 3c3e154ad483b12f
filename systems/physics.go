package systems

import (
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates body speeds into resolv objects at fixed dt and
// applies world gravity scaled per body. Wrapped in WhilePlaying, which is
// what freezes the scene after a terminal transition.
func UpdatePhysics(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.World.TPS)

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		obj := components.Object.Get(entry)

		body.SpeedY += cfg.World.Gravity * body.GravityScale * dt

		if body.Drag > 0 {
			decel := body.Drag * dt
			switch {
			case body.SpeedX > decel:
				body.SpeedX -= decel
			case body.SpeedX < -decel:
				body.SpeedX += decel
			default:
				body.SpeedX = 0
			}
		}

		obj.X += body.SpeedX * dt
		obj.Y += body.SpeedY * dt

		if body.CollideBounds {
			clampToBounds(e, body, obj.Object)
		}
	})
}

// clampToBounds keeps a body inside the left/right/top world edges. The
// bottom edge is the ground threshold, handled by the collision resolver.
func clampToBounds(e *ecs.ECS, body *components.BodyData, obj *resolv.Object) {
	maxX := worldWidth(e) - obj.W
	if obj.X < 0 {
		obj.X = 0
		body.SpeedX = -body.SpeedX * body.Bounce
	} else if obj.X > maxX {
		obj.X = maxX
		body.SpeedX = -body.SpeedX * body.Bounce
	}
	if obj.Y < 0 {
		obj.Y = 0
		body.SpeedY = -body.SpeedY * body.Bounce
	}
}
