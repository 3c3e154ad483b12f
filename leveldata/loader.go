package leveldata

import (
	"embed"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/parafall/config"
	"github.com/lafriks/go-tiled"
)

//go:embed maps
var mapsFS embed.FS

// Layout is the world layout authored in the TMX map: world bounds, ground
// line, player spawn point and the altitude band obstacles spawn in.
type Layout struct {
	Width  int
	Height int

	GroundY float64

	SpawnX float64
	SpawnY float64

	BandMinY int
	BandMaxY int
}

// Load parses the embedded sky map.
func Load() (*Layout, error) {
	return LoadLayout(mapsFS, "maps/sky.tmx")
}

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS. Objects missing from the map fall back to
// the config constants.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	worldMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Width:    worldMap.Width * worldMap.TileWidth,
		Height:   worldMap.Height * worldMap.TileHeight,
		GroundY:  cfg.World.GroundY,
		SpawnX:   cfg.Player.StartX,
		SpawnY:   cfg.Player.StartY,
		BandMinY: cfg.Obstacle.MinAltitude,
		BandMaxY: cfg.Obstacle.MaxAltitude,
	}

	for _, og := range worldMap.ObjectGroups {
		if og.Name != "World" {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "Ground":
				layout.GroundY = o.Y
			case "PlayerSpawn":
				layout.SpawnX = o.X
				layout.SpawnY = o.Y
			case "ObstacleBand":
				layout.BandMinY = int(o.Y)
				layout.BandMaxY = int(o.Y + o.Height)
			}
		}
	}

	return layout, nil
}
