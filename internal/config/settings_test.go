package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defaults := DefaultSettings()
	if *settings != *defaults {
		t.Errorf("settings = %+v, want defaults %+v", settings, defaults)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	settings := DefaultSettings()
	settings.Trace = true
	settings.MaxConcurrentFiles = 2
	settings.NormalizeSuffix = ".canonical.cue"

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Trace || loaded.MaxConcurrentFiles != 2 || loaded.NormalizeSuffix != ".canonical.cue" {
		t.Errorf("loaded = %+v", loaded)
	}
	// Fields absent from the file keep their defaults.
	if loaded.GenerateFileType != "WAVE" {
		t.Errorf("GenerateFileType = %q, want WAVE", loaded.GenerateFileType)
	}
}
