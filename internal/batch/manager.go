package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"cuesheet/internal/config"
	"cuesheet/internal/cue"
	"cuesheet/internal/document"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Manager normalizes batches of cue sheets: each input file is parsed
// and rewritten in canonical form to a sibling file whose name is the
// input name with its extension replaced by the configured suffix.
//
// Files are processed concurrently up to the configured limit. A file
// that fails to read or write is reported through the progress callback
// and counted; it does not stop the remaining files.
type Manager struct {
	settings   *config.Settings
	onProgress func(ProgressEvent)

	normalized int32
	failed     int32
}

// NewManager creates a batch Manager. onProgress may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		onProgress: onProgress,
	}
}

// Normalize processes every path. It returns the context error when
// cancelled, nil otherwise; per-file failures are reported and counted
// rather than returned.
func (m *Manager) Normalize(ctx context.Context, paths []string) error {
	g, ctx := errgroup.WithContext(ctx)

	limit := m.settings.MaxConcurrentFiles
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := m.normalizeFile(path)
			if err != nil {
				atomic.AddInt32(&m.failed, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error normalizing %s: %v", path, err), Level: LevelError})
				return nil
			}

			atomic.AddInt32(&m.normalized, 1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Normalized %s -> %s", path, out), Level: LevelSuccess})
			return nil
		})
	}

	return g.Wait()
}

// Progress returns the normalized and failed file counts so far.
func (m *Manager) Progress() (normalized, failed int) {
	return int(atomic.LoadInt32(&m.normalized)), int(atomic.LoadInt32(&m.failed))
}

// normalizeFile loads one cue sheet and writes its canonical form,
// returning the output path.
func (m *Manager) normalizeFile(path string) (string, error) {
	var trace cue.TraceFunc
	if m.settings.Trace {
		trace = func(msg string) {
			m.progress(ProgressEvent{Message: path + ": " + msg, Level: LevelVerbose})
		}
	}

	doc, err := document.New("", trace)
	if err != nil {
		return "", err
	}
	if err := doc.Load(path); err != nil {
		return "", err
	}

	out := m.OutputPath(path)
	if err := doc.Write(out); err != nil {
		return "", err
	}
	return out, nil
}

// OutputPath computes the destination for one input path: the input
// name with its extension replaced by the configured suffix.
func (m *Manager) OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + m.settings.NormalizeSuffix
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
