package cue

import (
	"fmt"
	"strings"

	"cuesheet/internal/model"
)

// crlf is the fixed line terminator for written cue sheets, regardless
// of platform.
const crlf = "\r\n"

// Writer serializes a CueSheet to canonical cue sheet text.
//
// The emission order is fixed: the global commands (CATALOG, PERFORMER,
// TITLE, SONGWRITER, CDTEXTFILE, FILE), then each track in sheet order.
// Within a track: FILE, TRACK, FLAGS, PERFORMER, TITLE, SONGWRITER,
// ISRC, PREGAP, INDEX 01, POSTGAP. Unset fields emit no line. Global
// lines are unindented, TRACK lines indented two spaces and track
// attribute lines four.
//
// The POSTGAP line is emitted under the same presence test as PREGAP: a
// track with a pregap but no postgap still produces a POSTGAP line with
// an empty timecode, and a postgap without a pregap is never written.
// This mirrors the historical serializer; the dangling line has no
// timecode, fails the postgap pattern on re-parse, and so re-serializes
// identically.
//
// Example:
//
//	writer := cue.NewWriter(nil)
//	text := writer.Write(sheet)
//	os.WriteFile("album.cue", []byte(text), 0644)
type Writer struct {
	trace TraceFunc
}

// NewWriter creates a Writer. trace may be nil.
func NewWriter(trace TraceFunc) *Writer {
	return &Writer{trace: trace}
}

// Write renders sheet as canonical cue text with CRLF terminators.
func (w *Writer) Write(sheet *model.CueSheet) string {
	var sb strings.Builder

	w.writeGlobals(&sb, sheet)
	for _, track := range sheet.Tracks {
		w.writeTrack(&sb, track)
	}

	w.tracef("wrote %d tracks, %d bytes", len(sheet.Tracks), sb.Len())
	return sb.String()
}

func (w *Writer) writeGlobals(sb *strings.Builder, sheet *model.CueSheet) {
	if sheet.Catalog != "" {
		fmt.Fprintf(sb, "CATALOG %s%s", sheet.Catalog, crlf)
	}
	if sheet.Performer != "" {
		fmt.Fprintf(sb, "PERFORMER \"%s\"%s", sheet.Performer, crlf)
	}
	if sheet.Title != "" {
		fmt.Fprintf(sb, "TITLE \"%s\"%s", sheet.Title, crlf)
	}
	if sheet.Songwriter != "" {
		fmt.Fprintf(sb, "SONGWRITER \"%s\"%s", sheet.Songwriter, crlf)
	}
	if sheet.CDTextFile != "" {
		fmt.Fprintf(sb, "CDTEXTFILE \"%s\"%s", sheet.CDTextFile, crlf)
	}
	if sheet.File != "" {
		fmt.Fprintf(sb, "FILE \"%s\" %s%s", sheet.File, sheet.FileType, crlf)
	}
}

func (w *Writer) writeTrack(sb *strings.Builder, track *model.Track) {
	if track.File != "" {
		fmt.Fprintf(sb, "FILE \"%s\" %s%s", track.File, track.FileType, crlf)
	}
	if track.Number != "" && track.DataType != "" {
		fmt.Fprintf(sb, "  TRACK %s %s%s", track.Number, track.DataType, crlf)
	}
	if track.Flags != "" {
		fmt.Fprintf(sb, "    FLAGS %s%s", track.Flags, crlf)
	}
	if track.Performer != "" {
		fmt.Fprintf(sb, "    PERFORMER \"%s\"%s", track.Performer, crlf)
	}
	if track.Title != "" {
		fmt.Fprintf(sb, "    TITLE \"%s\"%s", track.Title, crlf)
	}
	if track.Songwriter != "" {
		fmt.Fprintf(sb, "    SONGWRITER \"%s\"%s", track.Songwriter, crlf)
	}
	if track.ISRC != "" {
		fmt.Fprintf(sb, "    ISRC %s%s", track.ISRC, crlf)
	}
	if track.Pregap != "" {
		fmt.Fprintf(sb, "    PREGAP %s%s", track.Pregap, crlf)
	}
	if track.Index != "" {
		fmt.Fprintf(sb, "    INDEX 01 %s%s", track.Index, crlf)
	}
	if track.Pregap != "" {
		fmt.Fprintf(sb, "    POSTGAP %s%s", track.Postgap, crlf)
	}
}

func (w *Writer) tracef(format string, args ...any) {
	if w.trace != nil {
		w.trace(fmt.Sprintf(format, args...))
	}
}
