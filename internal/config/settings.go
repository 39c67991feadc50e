// Package config holds the JSON settings file for the cue sheet tools.
//
// Settings are loaded from a JSON file; a missing file yields the
// defaults so the tools work with no configuration at all:
//
//	settings, err := config.Load("~/.config/cuesheet/settings.json")
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Trace enables diagnostic messages from the parser and writer.
	Trace bool `json:"trace"`

	// Batch settings
	MaxConcurrentFiles int    `json:"max_concurrent_files"`
	NormalizeSuffix    string `json:"normalize_suffix"`

	// Generator settings: the media file referenced by the FILE command
	// of generated sheets, and its filetype token.
	GenerateFile     string `json:"generate_file"`
	GenerateFileType string `json:"generate_file_type"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Trace:              false,
		MaxConcurrentFiles: 4,
		NormalizeSuffix:    ".out.cue",
		GenerateFile:       "album.wav",
		GenerateFileType:   "WAVE",
	}
}

// Load reads settings from a JSON file. A missing file is not an
// error; it yields DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
