package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/parafall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk. Scores are
// deliberately not persisted.
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowClouds bool `json:"showClouds"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

var settings = SavedSettings{ShowClouds: true}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "parafall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable save is
// not an error; the defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &saved, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings at startup
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings = *saved
	ebiten.SetFullscreen(saved.Fullscreen)
}

// Settings returns the live settings instance
func Settings() *SavedSettings {
	return &settings
}

// ToggleFullscreen flips fullscreen mode and persists the change
func ToggleFullscreen() {
	settings.Fullscreen = !settings.Fullscreen
	ebiten.SetFullscreen(settings.Fullscreen)
	_ = SaveSettings(&settings)
}

// ToggleClouds flips the decorative cloud layer and persists the change.
// Takes effect on the next scene build.
func ToggleClouds() {
	settings.ShowClouds = !settings.ShowClouds
	_ = SaveSettings(&settings)
}

// UpdateSettings handles the in-game fullscreen shortcut
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ToggleFullscreen()
	}
}
