// Package generate builds a cue sheet from a directory of tagged MP3
// files, for the workflow where per-track files are merged into a
// single disc image and a cue sheet describes the track boundaries.
//
// Track metadata comes from ID3v2 frames: TPE1 (artist) and TIT2
// (title) per track, TALB (album) for the sheet title. Track start
// positions are accumulated from TLEN (length in milliseconds); a file
// without a usable TLEN contributes no length, so the next track starts
// at the same position.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"

	"cuesheet/internal/config"
	"cuesheet/internal/model"
)

// Generator builds cue sheets from tagged audio files.
type Generator struct {
	settings *config.Settings
}

// New creates a Generator using the configured FILE command target
// (settings.GenerateFile / GenerateFileType).
func New(settings *config.Settings) *Generator {
	return &Generator{settings: settings}
}

// FromDir scans dir for .mp3 files (in name order, which is how track
// rips are conventionally numbered) and returns a cue sheet with one
// AUDIO track per file.
//
// The first file's artist becomes the sheet PERFORMER and its album the
// sheet TITLE. A track whose artist differs from the sheet performer
// gets its own per-track PERFORMER.
func (g *Generator) FromDir(dir string) (*model.CueSheet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	sheet := &model.CueSheet{
		File:     g.settings.GenerateFile,
		FileType: model.FileType(g.settings.GenerateFileType),
		Tracks:   []*model.Track{},
	}

	var offset int64 // frames from disc start
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp3") {
			continue
		}

		track, length, err := g.readTrack(filepath.Join(dir, entry.Name()), sheet, offset)
		if err != nil {
			return nil, err
		}

		sheet.Tracks = append(sheet.Tracks, track)
		offset += length
	}

	if len(sheet.Tracks) == 0 {
		return nil, fmt.Errorf("no mp3 files in %s", dir)
	}
	return sheet, nil
}

// readTrack reads one file's tags and returns its track entry plus its
// length in frames.
func (g *Generator) readTrack(path string, sheet *model.CueSheet, offset int64) (*model.Track, int64, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, 0, fmt.Errorf("read tags of %s: %w", path, err)
	}
	defer tag.Close()

	if len(sheet.Tracks) == 0 {
		sheet.Performer = tag.Artist()
		sheet.Title = tag.Album()
	}

	track := &model.Track{
		Number:   fmt.Sprintf("%02d", len(sheet.Tracks)+1),
		DataType: model.DataTypeAudio,
		Title:    tag.Title(),
		Index:    model.TimecodeFromFrames(offset),
	}
	if artist := tag.Artist(); artist != sheet.Performer {
		track.Performer = artist
	}

	return track, lengthFrames(tag), nil
}

// lengthFrames converts the TLEN frame (milliseconds) to CD frames.
// Missing or malformed TLEN yields zero.
func lengthFrames(tag *id3v2.Tag) int64 {
	text := tag.GetTextFrame(tag.CommonID("Length")).Text
	ms, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || ms < 0 {
		return 0
	}
	return ms * model.FramesPerSecond / 1000
}
