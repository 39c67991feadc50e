package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// FramesPerSecond is the CD frame rate used by MM:SS:FF timecodes.
const FramesPerSecond = 75

// timecodePattern accepts 1-3 minute digits and exactly two digits each
// for seconds and frames. No range check is applied (99 seconds is
// accepted), matching how timecodes are matched during parsing.
var timecodePattern = regexp.MustCompile(`^\d{1,3}:\d{2}:\d{2}$`)

// ValidTimecode reports whether s is a well-formed MM:SS:FF triple.
func ValidTimecode(s string) bool {
	return timecodePattern.MatchString(s)
}

// TimecodeFromFrames renders an absolute frame count as an MM:SS:FF
// timecode. Negative counts are clamped to zero.
func TimecodeFromFrames(frames int64) string {
	if frames < 0 {
		frames = 0
	}
	mins := frames / (60 * FramesPerSecond)
	frames -= mins * 60 * FramesPerSecond
	secs := frames / FramesPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", mins, secs, frames-secs*FramesPerSecond)
}

// TimecodeFrames converts a well-formed MM:SS:FF timecode to an absolute
// frame count. It returns an error if s is not a valid timecode.
func TimecodeFrames(s string) (int64, error) {
	if !ValidTimecode(s) {
		return 0, fmt.Errorf("wrong time format: %s", s)
	}
	sep := len(s) - 6 // index of the first colon
	mins, err := strconv.ParseInt(s[:sep], 10, 64)
	if err != nil {
		return 0, err
	}
	secs, err := strconv.ParseInt(s[sep+1:sep+3], 10, 64)
	if err != nil {
		return 0, err
	}
	frames, err := strconv.ParseInt(s[sep+4:], 10, 64)
	if err != nil {
		return 0, err
	}
	return (mins*60+secs)*FramesPerSecond + frames, nil
}
