package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/skirmish/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PlayerName      string `json:"playerName"`
	ServerAddress   string `json:"serverAddress"`
	CollisionShapes bool   `json:"collisionShapes"`
	Verbose         bool   `json:"verbose"`
}

// itemStore is the part of gdata.Manager settings persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skirmish",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing has
// been saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		PlayerName:      cfg.Network.PlayerName,
		ServerAddress:   cfg.Network.ServerAddress,
		CollisionShapes: cfg.Debug.CollisionShapes,
		Verbose:         cfg.Debug.Verbose,
	}
}

// ApplySavedSettings copies saved values over the defaults. Empty strings
// keep the default.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.PlayerName != "" {
		cfg.Network.PlayerName = saved.PlayerName
	}
	if saved.ServerAddress != "" {
		cfg.Network.ServerAddress = saved.ServerAddress
	}
	cfg.Debug.CollisionShapes = saved.CollisionShapes
	cfg.Debug.Verbose = saved.Verbose
}
