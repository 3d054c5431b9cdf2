package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/playerinput/config"
	"github.com/quasilyte/gdata"
)

const settingsItem = "settings"

// itemStore is the slice of *gdata.Manager the settings code needs
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "playerinput",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when
// persistence is unavailable or nothing has been saved yet.
func LoadSettings() (*cfg.Settings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	settings := cfg.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	settings.ResetRuntimeFlags()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *cfg.Settings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ResolveSettings layers persisted settings and an optional YAML override
// file over the defaults. base is the result without the override, which is
// what a reload of the override file starts from. Anything that fails to
// load is logged and skipped.
func ResolveSettings(overridePath string) (base, effective cfg.Settings) {
	base = cfg.DefaultSettings()

	saved, err := LoadSettings()
	switch {
	case err != nil:
		log.Printf("Warning: Could not use saved settings: %v", err)
	case saved != nil:
		base = *saved
	}

	if overridePath == "" {
		return base, base
	}
	overridden, err := cfg.LoadSettingsFile(overridePath, base)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", overridePath, err)
		return base, base
	}
	return base, overridden
}
