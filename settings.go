package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/quartzheim/arenaball/common"
)

// Settings are global, not tied to a particular scene.
type Settings struct {
	DebugCollision bool `yaml:"debugCollision"`
	TickRate       int  `yaml:"tickRate"`
	HighScore      int  `yaml:"highScore"`
}

func DefaultSettings() *Settings {
	return &Settings{
		DebugCollision: false,
		TickRate:       common.TickRate,
		HighScore:      0,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves settings through gdata. A nil gdata
// manager degrades to in-memory defaults so the game still runs where
// persistent storage is unavailable.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

func NewSettingsManager(m *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: m,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("settings: load failed: %v (using defaults)", err)
	}
	return sm
}

func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("settings: load: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("settings: unmarshal: %w", err)
	}

	if loaded.TickRate <= 0 {
		loaded.TickRate = common.TickRate
	}
	sm.settings = &loaded
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

func (sm *SettingsManager) Get() *Settings {
	return sm.settings
}

func (sm *SettingsManager) SetDebugCollision(enabled bool) {
	sm.settings.DebugCollision = enabled
}

func (sm *SettingsManager) SetTickRate(rate int) {
	if rate > 0 {
		sm.settings.TickRate = rate
	}
}

// SetHighScore keeps the stored high score monotonic.
func (sm *SettingsManager) SetHighScore(score int) {
	if score > sm.settings.HighScore {
		sm.settings.HighScore = score
	}
}
