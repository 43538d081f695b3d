package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/config"
)

// settingsRecord is the on-disk shape of the persisted settings.
type settingsRecord struct {
	Speed      int    `json:"speed"`
	Difficulty string `json:"difficulty"`
	GameMode   string `json:"game_mode"`
}

// SettingsFile stores speed, difficulty and mode as a flat JSON object.
// Field geometry and frame rate always come from defaults.
type SettingsFile struct {
	path     string
	defaults config.Settings
	logger   *log.Logger
}

// NewSettingsFile creates a store backed by path. defaults supplies every
// field the file does not carry.
func NewSettingsFile(path string, defaults config.Settings, logger *log.Logger) *SettingsFile {
	return &SettingsFile{
		path:     path,
		defaults: defaults,
		logger:   logger.With("store", "settings"),
	}
}

// Path returns the backing file path.
func (f *SettingsFile) Path() string { return f.path }

// Load reads the settings. A missing file yields the defaults without an
// error; a corrupt file yields the defaults and an error. Out-of-range
// speeds are clamped and unknown modes fall back to Classic.
func (f *SettingsFile) Load() (config.Settings, error) {
	s := f.defaults

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.logger.Debug("no settings file, using defaults", "path", f.path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}

	rec := settingsRecord{
		Speed:      s.Speed,
		Difficulty: s.Difficulty,
		GameMode:   s.Mode.String(),
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return f.defaults, fmt.Errorf("decode settings %s: %w", f.path, err)
	}

	s.Speed = config.ClampSpeed(rec.Speed)
	if rec.Difficulty != "" {
		s.Difficulty = rec.Difficulty
	}
	mode, ok := config.ParseMode(rec.GameMode)
	if !ok {
		f.logger.Warn("unknown game mode in settings", "mode", rec.GameMode)
	}
	s.Mode = mode
	return s, nil
}

// Save writes the persisted subset of s.
func (f *SettingsFile) Save(s config.Settings) error {
	data, err := json.Marshal(settingsRecord{
		Speed:      config.ClampSpeed(s.Speed),
		Difficulty: s.Difficulty,
		GameMode:   s.Mode.String(),
	})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := writeFile(f.path, data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	f.logger.Debug("settings saved", "path", f.path, "speed", s.Speed, "mode", s.Mode)
	return nil
}
