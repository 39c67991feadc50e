// Package cue implements the cue sheet text format: stripping comments,
// parsing the command text into a model.CueSheet, and serializing a
// sheet back to canonical text.
//
// # Parsing
//
// Parsing is pattern extraction, not a grammar. Strip removes REM and
// blank lines, then Parser scans the remaining text in two passes: one
// first-match search per global command, then a repeated scan for TRACK
// blocks with a nested per-attribute scan over each block's span.
//
//	parser := cue.NewParser(nil)
//	sheet := parser.Parse(cue.Strip(text))
//
// Commands the patterns cannot match are skipped silently; parsing never
// fails. A TRACK block only yields a track when its number, datatype and
// INDEX line all match.
//
// # Writing
//
// Writer emits canonical text: CRLF line endings, global commands first,
// then each track indented two spaces with its attributes indented four.
// Unset fields produce no line.
//
//	text := cue.NewWriter(nil).Write(sheet)
//
// Both Parser and Writer accept an optional TraceFunc that receives
// diagnostic messages describing each match and emission step.
package cue
