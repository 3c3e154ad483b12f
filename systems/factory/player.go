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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := cfg.Player.CollisionWidth()
	h := cfg.Player.CollisionHeight()
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{})
	// Vertical speed is pinned by the controller every tick, so the body
	// opts out of gravity; it is already falling at terminal velocity.
	components.Body.SetValue(player, components.BodyData{
		SpeedY:        cfg.Player.FallSpeed,
		GravityScale:  0,
		CollideBounds: true,
	})
	components.Flash.SetValue(player, components.FlashData{
		R: 1, G: 1, B: 1,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
