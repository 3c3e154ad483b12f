package components

import "github.com/yohamta/donburi"

// PlayerData holds per-player presentation state. The parachute flag itself
// lives on the run singleton; the renderer reads it to pick the texture.
type PlayerData struct {
	FacingLeft bool
}

var Player = donburi.NewComponentType[PlayerData]()
