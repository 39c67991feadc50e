// Package model defines the in-memory representation of a cue sheet.
//
// # CueSheet
//
// CueSheet holds the disc-level attributes (CATALOG, PERFORMER, TITLE,
// SONGWRITER, CDTEXTFILE, FILE) and the ordered list of tracks:
//
//	sheet := &model.CueSheet{Performer: "Artist", Title: "Album"}
//	sheet.Tracks = append(sheet.Tracks, &model.Track{
//	    Number:   "01",
//	    DataType: model.DataTypeAudio,
//	    Index:    "00:00:00",
//	})
//
// # Track
//
// Track holds one TRACK block. Number, DataType and Index are always set
// on parsed tracks; the remaining fields are optional.
//
// # Timecodes
//
// INDEX, PREGAP and POSTGAP positions are MM:SS:FF strings at 75 frames
// per second. ValidTimecode, TimecodeFrames and TimecodeFromFrames
// convert between the textual and numeric forms.
package model
