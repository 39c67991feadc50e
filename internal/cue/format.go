package cue

import (
	"strings"

	"cuesheet/internal/model"
)

// AttributeOrder is the canonical attribute order used for track
// listings: the order attributes are reported when printing a track.
var AttributeOrder = []string{
	"track",
	"datatype",
	"file",
	"filetype",
	"flags",
	"performer",
	"title",
	"songwriter",
	"pregap",
	"isrc",
	"index",
	"postgap",
}

// attributeValue returns the value of one named track attribute.
func attributeValue(track *model.Track, name string) string {
	switch name {
	case "track":
		return track.Number
	case "datatype":
		return string(track.DataType)
	case "file":
		return track.File
	case "filetype":
		return string(track.FileType)
	case "flags":
		return track.Flags
	case "performer":
		return track.Performer
	case "title":
		return track.Title
	case "songwriter":
		return track.Songwriter
	case "pregap":
		return track.Pregap
	case "isrc":
		return track.ISRC
	case "index":
		return track.Index
	case "postgap":
		return track.Postgap
	}
	return ""
}

// FormatTracks renders a human-readable listing of every track: one
// block per track, set attributes only, in AttributeOrder.
//
// Example output for a two-track sheet:
//
//	Track 01:
//	  datatype: AUDIO
//	  index: 00:00:00
//	Track 02:
//	  datatype: AUDIO
//	  pregap: 00:02:00
//	  index: 03:15:42
func FormatTracks(sheet *model.CueSheet) string {
	var sb strings.Builder

	for _, track := range sheet.Tracks {
		sb.WriteString("Track " + track.Number + ":\n")
		for _, name := range AttributeOrder {
			if name == "track" {
				continue
			}
			if v := attributeValue(track, name); v != "" {
				sb.WriteString("  " + name + ": " + v + "\n")
			}
		}
	}

	return sb.String()
}
