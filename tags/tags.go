package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Cloud    = donburi.NewTag().SetName("Cloud")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvObstacle = "obstacle"
)
