package leveldata

import "testing"

func TestLoadEmbeddedSkyMap(t *testing.T) {
	layout, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.Width != 800 || layout.Height != 600 {
		t.Fatalf("world bounds = %dx%d, want 800x600", layout.Width, layout.Height)
	}
	if layout.GroundY != 550 {
		t.Fatalf("GroundY = %v, want 550", layout.GroundY)
	}
	if layout.SpawnX != 400 || layout.SpawnY != 100 {
		t.Fatalf("spawn = (%v, %v), want (400, 100)", layout.SpawnX, layout.SpawnY)
	}
	if layout.BandMinY != 200 || layout.BandMaxY != 550 {
		t.Fatalf("obstacle band = [%d, %d], want [200, 550]", layout.BandMinY, layout.BandMaxY)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	if _, err := LoadLayout(mapsFS, "maps/nope.tmx"); err == nil {
		t.Fatal("expected an error for a missing map file")
	}
}
