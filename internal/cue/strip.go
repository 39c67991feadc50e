package cue

import (
	"regexp"
	"strings"
)

// commentPattern matches lines whose first non-whitespace token is REM,
// in any case.
var commentPattern = regexp.MustCompile(`(?i)^[ \t]*rem(?:\s|$)`)

// Strip removes comment and blank lines from raw cue sheet text.
//
// A line is a comment when its first non-whitespace token is REM
// (case-insensitive). A line is blank when it consists solely of its
// line terminator; lines containing only spaces or tabs are kept.
// Every kept line is passed through byte for byte, terminator included,
// in its original order.
func Strip(text string) string {
	var sb strings.Builder

	for start := 0; start < len(text); {
		var line string
		if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
			line = text[start : start+nl+1]
			start += nl + 1
		} else {
			line = text[start:]
			start = len(text)
		}

		if isBlankLine(line) || commentPattern.MatchString(line) {
			continue
		}
		sb.WriteString(line)
	}

	return sb.String()
}

// isBlankLine reports whether line is nothing but a terminator sequence.
func isBlankLine(line string) bool {
	return line == "\n" || line == "\r\n"
}
