package cue

import (
	"fmt"
	"regexp"

	"cuesheet/internal/model"
)

// TraceFunc receives diagnostic messages from the Parser and Writer.
// A nil TraceFunc disables tracing.
type TraceFunc func(msg string)

// Extraction patterns. Each pattern is searched over plain text with
// named capture groups; quoted values capture the text between the
// quotes, unquoted values run to the end of the line.
var (
	catalogPattern    = regexp.MustCompile(`CATALOG\s+(?P<catalog>\d{13})`)
	cdTextFilePattern = regexp.MustCompile(`(?m)CDTEXTFILE\s+"?(?P<cdtextfile>[^"\r\n]+?)"?\r?$`)
	performerPattern  = regexp.MustCompile(`(?m)PERFORMER\s+"?(?P<performer>[^"\r\n]*?)"?\r?$`)
	titlePattern      = regexp.MustCompile(`(?m)TITLE\s+"?(?P<title>[^"\r\n]*?)"?\r?$`)
	songwriterPattern = regexp.MustCompile(`(?m)SONGWRITER\s+"?(?P<songwriter>[^"\r\n]*?)"?\r?$`)
	filePattern       = regexp.MustCompile(`FILE\s+"?(?P<file>[^"\r\n]*?)"?\s+(?P<filetype>BINARY|MOTOROLA|AIFF|WAVE|MP3)`)
	flagsPattern      = regexp.MustCompile(`(?m)FLAGS\s+(?P<flags>[^\r\n]+?)\r?$`)
	pregapPattern     = regexp.MustCompile(`PREGAP\s+(?P<pregap>\d{1,3}:\d{2}:\d{2})`)
	isrcPattern       = regexp.MustCompile(`ISRC\s+(?P<isrc>[A-Za-z]{5}\d{7})`)

	// trackBlockPattern matches one whole TRACK block: the TRACK command,
	// an arbitrary span of attribute text, the first INDEX line, and an
	// optional trailing POSTGAP. An unrecognized datatype token fails the
	// whole block, so that TRACK command yields no track.
	trackBlockPattern = regexp.MustCompile(`(?s)TRACK\s+(?P<track>\d{2})\s+(?P<datatype>AUDIO|CDG|MODE1/2048|MODE1/2352|MODE2/2336|MODE2/2352|CDI/2336|CDI/2352)(?P<stuff>.*?)INDEX\s+\d{2}\s+(?P<index>\d{1,3}:\d{2}:\d{2})(?:\s*POSTGAP\s+(?P<postgap>\d{1,3}:\d{2}:\d{2}))?`)

	// trackCommandPattern is the precedence probe: a global match is
	// discarded when any TRACK command appears earlier in the text.
	trackCommandPattern = regexp.MustCompile(`TRACK\s+\d{2}`)
)

// Parser extracts a CueSheet from stripped cue sheet text.
//
// Parse performs two passes. The first pass searches once for each
// global command (CATALOG, CDTEXTFILE, PERFORMER, TITLE, SONGWRITER,
// FILE) and keeps the match only when no TRACK command precedes it; a
// match after the first TRACK command belongs to a track and is left
// for the second pass. The precedence probe is a plain pattern search
// over the preceding text, not a structural check, so text that merely
// looks like a TRACK command (for example inside a TITLE string)
// suppresses globals too. That looseness is part of the format's
// observable behavior and is kept intact.
//
// The second pass scans left to right for non-overlapping TRACK blocks
// and then searches each block's span once per track attribute.
type Parser struct {
	trace TraceFunc
}

// NewParser creates a Parser. trace may be nil.
func NewParser(trace TraceFunc) *Parser {
	return &Parser{trace: trace}
}

// Parse builds a fresh CueSheet from stripped text. It never fails:
// commands that do not match any pattern contribute nothing.
func (p *Parser) Parse(text string) *model.CueSheet {
	sheet := &model.CueSheet{Tracks: []*model.Track{}}

	p.parseGlobals(text, sheet)
	p.parseTracks(text, sheet)

	p.tracef("parsed %d tracks", len(sheet.Tracks))
	return sheet
}

// parseGlobals runs the first-match global searches.
func (p *Parser) parseGlobals(text string, sheet *model.CueSheet) {
	if v, ok := p.globalMatch(text, catalogPattern, "catalog"); ok {
		sheet.Catalog = v
	}
	if v, ok := p.globalMatch(text, cdTextFilePattern, "cdtextfile"); ok {
		sheet.CDTextFile = v
	}
	if v, ok := p.globalMatch(text, performerPattern, "performer"); ok {
		sheet.Performer = v
	}
	if v, ok := p.globalMatch(text, titlePattern, "title"); ok {
		sheet.Title = v
	}
	if v, ok := p.globalMatch(text, songwriterPattern, "songwriter"); ok {
		sheet.Songwriter = v
	}

	// FILE carries two captures and only matches with a recognized
	// filetype token; a FILE line without one sets neither field.
	if m := filePattern.FindStringSubmatchIndex(text); m != nil {
		if trackCommandPattern.MatchString(text[:m[0]]) {
			p.tracef("FILE at offset %d follows a TRACK command, not global", m[0])
		} else {
			sheet.File = group(filePattern, text, m, "file")
			sheet.FileType = model.FileType(group(filePattern, text, m, "filetype"))
			p.tracef("global FILE %q %s", sheet.File, sheet.FileType)
		}
	}
}

// globalMatch performs one first-match search and the TRACK-precedence
// check for a single-capture global command.
func (p *Parser) globalMatch(text string, re *regexp.Regexp, name string) (string, bool) {
	m := re.FindStringSubmatchIndex(text)
	if m == nil {
		return "", false
	}
	if trackCommandPattern.MatchString(text[:m[0]]) {
		p.tracef("%s at offset %d follows a TRACK command, not global", name, m[0])
		return "", false
	}
	v := group(re, text, m, name)
	p.tracef("global %s = %q", name, v)
	return v, true
}

// parseTracks scans for TRACK blocks and fills each track from its span.
func (p *Parser) parseTracks(text string, sheet *model.CueSheet) {
	for _, m := range trackBlockPattern.FindAllStringSubmatchIndex(text, -1) {
		track := &model.Track{
			Number:   group(trackBlockPattern, text, m, "track"),
			DataType: model.DataType(group(trackBlockPattern, text, m, "datatype")),
			Index:    group(trackBlockPattern, text, m, "index"),
			Postgap:  group(trackBlockPattern, text, m, "postgap"),
		}

		p.parseTrackAttributes(group(trackBlockPattern, text, m, "stuff"), track)

		sheet.Tracks = append(sheet.Tracks, track)
		p.tracef("track %s %s index %s", track.Number, track.DataType, track.Index)
	}
}

// parseTrackAttributes searches a block's span once per optional
// attribute. Each search is independent; presence of one attribute
// never affects another.
func (p *Parser) parseTrackAttributes(stuff string, track *model.Track) {
	if m := filePattern.FindStringSubmatchIndex(stuff); m != nil {
		track.File = group(filePattern, stuff, m, "file")
		track.FileType = model.FileType(group(filePattern, stuff, m, "filetype"))
	}
	if m := flagsPattern.FindStringSubmatch(stuff); m != nil {
		track.Flags = m[flagsPattern.SubexpIndex("flags")]
	}
	if m := performerPattern.FindStringSubmatch(stuff); m != nil {
		track.Performer = m[performerPattern.SubexpIndex("performer")]
	}
	if m := titlePattern.FindStringSubmatch(stuff); m != nil {
		track.Title = m[titlePattern.SubexpIndex("title")]
	}
	if m := songwriterPattern.FindStringSubmatch(stuff); m != nil {
		track.Songwriter = m[songwriterPattern.SubexpIndex("songwriter")]
	}
	if m := pregapPattern.FindStringSubmatch(stuff); m != nil {
		track.Pregap = m[pregapPattern.SubexpIndex("pregap")]
	}
	if m := isrcPattern.FindStringSubmatch(stuff); m != nil {
		track.ISRC = m[isrcPattern.SubexpIndex("isrc")]
	}
}

// group extracts a named capture from a SubmatchIndex result. Unmatched
// optional groups yield "".
func group(re *regexp.Regexp, text string, m []int, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || m[2*i] < 0 {
		return ""
	}
	return text[m[2*i]:m[2*i+1]]
}

func (p *Parser) tracef(format string, args ...any) {
	if p.trace != nil {
		p.trace(fmt.Sprintf(format, args...))
	}
}
