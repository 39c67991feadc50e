package model

// DataType is the track data mode from a TRACK command.
type DataType string

const (
	DataTypeAudio    DataType = "AUDIO"
	DataTypeCDG      DataType = "CDG"
	DataTypeMode1Raw DataType = "MODE1/2352"
	DataTypeMode1    DataType = "MODE1/2048"
	DataTypeMode2Raw DataType = "MODE2/2352"
	DataTypeMode2    DataType = "MODE2/2336"
	DataTypeCDI      DataType = "CDI/2336"
	DataTypeCDIRaw   DataType = "CDI/2352"
)

// DataTypes lists every recognized track datatype token.
//
// A TRACK command with any other token fails to match as a track block
// and produces no Track entry.
var DataTypes = []DataType{
	DataTypeAudio,
	DataTypeCDG,
	DataTypeMode1,
	DataTypeMode1Raw,
	DataTypeMode2,
	DataTypeMode2Raw,
	DataTypeCDI,
	DataTypeCDIRaw,
}

// Valid reports whether d is one of the recognized datatype tokens.
func (d DataType) Valid() bool {
	for _, t := range DataTypes {
		if d == t {
			return true
		}
	}
	return false
}

// Track holds the attributes of one TRACK block.
//
// Number, DataType and Index are always populated on a parsed track; the
// block does not match without them. Everything else is optional and left
// empty when the corresponding command is absent from the block.
//
// Per-track File/FileType, Performer, Title and Songwriter override the
// sheet-level values for this track only; they never propagate to sibling
// tracks.
type Track struct {
	// Number is the two-digit track number as it appears in the text.
	// Continuity with neighboring tracks is not validated.
	Number string

	// DataType is the track's data mode.
	DataType DataType

	// File and FileType override the sheet-level FILE command when a
	// FILE command appears inside this track's block.
	File     string
	FileType FileType

	// Flags is the raw text following a FLAGS command.
	Flags string

	Performer  string
	Title      string
	Songwriter string

	// Pregap is the PREGAP timecode, if present.
	Pregap string

	// ISRC is the 12-character recording code (5 letters, 7 digits).
	ISRC string

	// Index is the INDEX 01 timecode: the track start position.
	// Other index numbers are not modeled.
	Index string

	// Postgap is the POSTGAP timecode, if present.
	Postgap string
}
