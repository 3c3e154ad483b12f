package components

import "github.com/yohamta/donburi"

// BodyData is the kinematic state of one simulated entity. Position lives on
// the entity's resolv object; the physics system integrates SpeedX/SpeedY
// into it once per tick at fixed dt. Speeds are in px/s.
type BodyData struct {
	SpeedX float64
	SpeedY float64

	// World gravity is multiplied by GravityScale before being applied,
	// so a zero scale opts a body out entirely (obstacles, and the player,
	// whose vertical speed is pinned by the controller every tick).
	GravityScale float64

	// Horizontal deceleration in px/s^2 applied when no intent overrides it
	Drag float64

	// Velocity retained after hitting a world bound, 0..1
	Bounce float64

	CollideBounds bool
	Immovable     bool
}

var Body = donburi.NewComponentType[BodyData]()
