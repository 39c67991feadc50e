package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cuesheet/internal/config"
)

const sampleSheet = "REM ripper v2\r\n" +
	"TITLE \"Album\"\r\n" +
	"FILE \"audio.bin\" BINARY\r\n" +
	"  TRACK 01 AUDIO\r\n" +
	"    INDEX 01 00:00:00\r\n"

func TestManager_Normalize(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.cue", "b.cue"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(sampleSheet), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}

	var mu sync.Mutex
	var events []ProgressEvent
	settings := config.DefaultSettings()
	manager := NewManager(settings, func(event ProgressEvent) {
		mu.Lock()
		events = append(events, event)
		mu.Unlock()
	})

	if err := manager.Normalize(context.Background(), paths); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	normalized, failed := manager.Progress()
	if normalized != 2 || failed != 0 {
		t.Errorf("Progress() = %d, %d, want 2, 0", normalized, failed)
	}

	for _, path := range paths {
		out := manager.OutputPath(path)
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("missing output %s: %v", out, err)
		}
		if strings.Contains(string(data), "REM") {
			t.Errorf("%s should not carry comments: %q", out, data)
		}
		if !strings.Contains(string(data), "  TRACK 01 AUDIO\r\n") {
			t.Errorf("%s missing track line: %q", out, data)
		}
	}

	if len(events) != 2 {
		t.Errorf("event count = %d, want 2", len(events))
	}
}

func TestManager_NormalizeReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.cue")
	if err := os.WriteFile(good, []byte(sampleSheet), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.cue")

	var mu sync.Mutex
	var errorEvents int
	manager := NewManager(config.DefaultSettings(), func(event ProgressEvent) {
		if event.Level == LevelError {
			mu.Lock()
			errorEvents++
			mu.Unlock()
		}
	})

	if err := manager.Normalize(context.Background(), []string{good, missing}); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	normalized, failed := manager.Progress()
	if normalized != 1 || failed != 1 {
		t.Errorf("Progress() = %d, %d, want 1, 1", normalized, failed)
	}
	if errorEvents != 1 {
		t.Errorf("error events = %d, want 1", errorEvents)
	}
}

func TestManager_NormalizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	manager := NewManager(config.DefaultSettings(), nil)
	err := manager.Normalize(ctx, []string{filepath.Join(t.TempDir(), "a.cue")})
	if err == nil {
		t.Error("expected context error from a cancelled run")
	}
}

func TestManager_OutputPath(t *testing.T) {
	settings := config.DefaultSettings()
	settings.NormalizeSuffix = ".norm.cue"
	manager := NewManager(settings, nil)

	if got := manager.OutputPath("/music/album.cue"); got != "/music/album.norm.cue" {
		t.Errorf("OutputPath = %q", got)
	}
	if got := manager.OutputPath("/music/noext"); got != "/music/noext.norm.cue" {
		t.Errorf("OutputPath = %q", got)
	}
}
