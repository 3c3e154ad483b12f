package components

import "github.com/yohamta/donburi"

// FlashData tracks the damage tint applied to a sprite after a crash
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()

// BannerData is the end-of-run banner overlay; Alpha is driven by a tween
type BannerData struct {
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()

// CloudData is a decorative background cloud. Clouds are not physics
// bodies; they drift leftward and bob on a tween, wrapping at the edge.
type CloudData struct {
	X, Y  float64
	BaseY float64
}

var Cloud = donburi.NewComponentType[CloudData]()
