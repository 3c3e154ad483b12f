package components

import (
	"github.com/automoto/parafall/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Layout *leveldata.Layout
}

var Level = donburi.NewComponentType[LevelData]()
