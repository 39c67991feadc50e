package model

// FileType is the storage format of the media file referenced by a FILE
// command.
type FileType string

const (
	FileTypeBinary   FileType = "BINARY"
	FileTypeMotorola FileType = "MOTOROLA"
	FileTypeAIFF     FileType = "AIFF"
	FileTypeWave     FileType = "WAVE"
	FileTypeMP3      FileType = "MP3"
)

// FileTypes lists every recognized FILETYPE token, in the order used when
// building match patterns.
var FileTypes = []FileType{
	FileTypeBinary,
	FileTypeMotorola,
	FileTypeAIFF,
	FileTypeWave,
	FileTypeMP3,
}

// Valid reports whether f is one of the recognized FILETYPE tokens.
//
// A FILE command carrying an unrecognized filetype is not matched at all,
// so parsed sheets only ever hold valid values; Valid exists for callers
// that construct sheets by hand.
func (f FileType) Valid() bool {
	for _, t := range FileTypes {
		if f == t {
			return true
		}
	}
	return false
}

// CueSheet is the in-memory form of a cue sheet: the global disc
// attributes plus the ordered track list.
//
// All scalar fields are optional; an empty string means the command was
// absent from the source text. Tracks holds one entry per matched TRACK
// block, in the order the blocks appear in the text; that order defines
// the track sequence on disc.
//
// A CueSheet is built fresh on every parse; it is never updated in place.
//
// Example:
//
//	sheet := parser.Parse(text)
//	for _, track := range sheet.Tracks {
//	    fmt.Println(track.Number, track.Index)
//	}
type CueSheet struct {
	// Catalog is the 13-digit media catalog number (UPC/EAN).
	Catalog string

	// Performer is the disc-level performer.
	Performer string

	// Title is the disc title.
	Title string

	// Songwriter is the disc-level songwriter.
	Songwriter string

	// CDTextFile is the path given by a CDTEXTFILE command.
	CDTextFile string

	// File is the media filename from the global FILE command.
	File string

	// FileType is the storage format token that followed File.
	// Set if and only if File is set.
	FileType FileType

	// Tracks are the parsed TRACK blocks in source order.
	Tracks []*Track
}
