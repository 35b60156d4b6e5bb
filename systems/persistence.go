package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"

	cfg "github.com/automoto/hypermaze/config"
)

// SavedData represents the settings overrides and records stored on disk.
type SavedData struct {
	DisplayControls *bool              `json:"displayControls,omitempty"`
	DisplayClock    *int               `json:"displayClock,omitempty"`
	FOV             *float64           `json:"fov,omitempty"`
	UIScale         *float64           `json:"uiScale,omitempty"`
	BestTimes       map[string]float64 `json:"bestTimes,omitempty"` // keyed by dimensions string
}

var gdataManager *gdata.Manager
var saved SavedData

// InitPersistence initializes the gdata manager and loads any saved data.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hypermaze",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m

	data, err := m.LoadItem("saved")
	if err != nil {
		log.Printf("Warning: Could not load saved data: %v", err)
		return nil
	}
	if data == nil {
		return nil // first run
	}
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved data: %v", err)
	}
	return nil
}

// ApplySavedSettings merges persisted overrides over the values read from
// config.txt.
func ApplySavedSettings() {
	if saved.DisplayControls != nil {
		cfg.C.DisplayControls = *saved.DisplayControls
	}
	if saved.DisplayClock != nil {
		cfg.C.DisplayClock = cfg.ClockMode(*saved.DisplayClock)
	}
	if saved.FOV != nil && *saved.FOV > 0 && *saved.FOV < 180 {
		cfg.C.FOV = *saved.FOV
	}
	if saved.UIScale != nil && *saved.UIScale > 0 {
		cfg.C.UIScale = *saved.UIScale
	}
}

// SaveCurrentSettings persists the current in-session overrides.
func SaveCurrentSettings() {
	controls := cfg.C.DisplayControls
	clock := int(cfg.C.DisplayClock)
	fov := cfg.C.FOV
	scale := cfg.C.UIScale
	saved.DisplayControls = &controls
	saved.DisplayClock = &clock
	saved.FOV = &fov
	saved.UIScale = &scale
	store()
}

// BestTime returns the persisted best completion time for a dimensions key,
// or 0 when none has been recorded.
func BestTime(key string) float64 {
	return saved.BestTimes[key]
}

// RecordBestTime persists a completion time when it beats the stored one.
func RecordBestTime(key string, seconds float64) {
	if best, ok := saved.BestTimes[key]; ok && best <= seconds {
		return
	}
	if saved.BestTimes == nil {
		saved.BestTimes = make(map[string]float64)
	}
	saved.BestTimes[key] = seconds
	store()
}

func store() {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(&saved)
	if err != nil {
		log.Printf("Warning: Could not serialize saved data: %v", err)
		return
	}
	if err := gdataManager.SaveItem("saved", data); err != nil {
		log.Printf("Warning: Could not save data: %v", err)
	}
}

// cfgDimensionsKey is the best-time key for the active maze dimensions.
func cfgDimensionsKey() string {
	d := cfg.C.Dimensions
	return fmt.Sprintf("%dx%dx%dx%d", d[0], d[1], d[2], d[3])
}

// DimensionsKey exposes the active best-time key for scenes and menus.
func DimensionsKey() string { return cfgDimensionsKey() }
