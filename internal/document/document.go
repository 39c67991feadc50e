// Package document wraps the cue parser and writer in a stateful
// document object: it remembers the file path it was loaded from or
// written to, so later loads and writes can omit the path argument.
package document

import (
	"errors"

	"cuesheet/internal/cue"
	ioutils "cuesheet/internal/io"
	"cuesheet/internal/model"
)

// ErrPathNotFound is returned when a load or write has no usable path:
// none was passed and none is stored from an earlier operation.
var ErrPathNotFound = errors.New("no file path available")

// ErrEmptyTracks is returned by ListTracks before any successful parse.
// It is distinct from a parse that found zero tracks, which lists as an
// empty string without error.
var ErrEmptyTracks = errors.New("no tracks: document has not been parsed")

// Document is a cue sheet bound to a file path.
//
// Each Document owns its sheet exclusively; operations run to
// completion before returning and there is no sharing between
// instances. Sheet is nil until the first successful Load and is
// replaced wholesale by every subsequent one.
type Document struct {
	// Sheet is the last parsed cue sheet, nil before the first Load.
	Sheet *model.CueSheet

	parser *cue.Parser
	writer *cue.Writer
	path   string
}

// New creates a Document. If path is non-empty it becomes the stored
// path, and when it names an existing file the document loads it
// immediately. trace may be nil; when set, parse and write steps emit
// diagnostic messages through it.
func New(path string, trace cue.TraceFunc) (*Document, error) {
	d := &Document{
		parser: cue.NewParser(trace),
		writer: cue.NewWriter(trace),
		path:   path,
	}
	if path != "" && ioutils.Exists(path) {
		if err := d.Load(""); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Path returns the stored file path, if any.
func (d *Document) Path() string { return d.path }

// Load reads and parses the cue sheet at path, or at the stored path
// when path is empty. The previous sheet is discarded entirely.
//
// Returns ErrPathNotFound when no path is available, or a
// *ioutils.ReadError when the file cannot be read; read failures are
// always propagated, never swallowed into an empty document.
func (d *Document) Load(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return ErrPathNotFound
	}

	text, err := ioutils.ReadFile(path)
	if err != nil {
		return err
	}

	d.Sheet = d.parser.Parse(cue.Strip(text))
	d.path = path
	return nil
}

// Write serializes the document to path, or to the stored path when
// path is empty. A successful write stores the path used, so a later
// Write("") reuses it. A document that was never loaded writes as an
// empty sheet.
//
// Returns ErrPathNotFound when no path is available, or a
// *ioutils.WriteError when the file cannot be written.
func (d *Document) Write(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return ErrPathNotFound
	}

	sheet := d.Sheet
	if sheet == nil {
		sheet = &model.CueSheet{}
	}

	if err := ioutils.WriteFile(path, []byte(d.writer.Write(sheet))); err != nil {
		return err
	}
	d.path = path
	return nil
}

// ListTracks renders the canonical track listing: one block per track,
// set attributes only, in canonical attribute order.
//
// Returns ErrEmptyTracks when called before any successful Load.
func (d *Document) ListTracks() (string, error) {
	if d.Sheet == nil || d.Sheet.Tracks == nil {
		return "", ErrEmptyTracks
	}
	return cue.FormatTracks(d.Sheet), nil
}
