package cue

import (
	"testing"

	"cuesheet/internal/model"
)

func TestWriter_FullSheet(t *testing.T) {
	sheet := &model.CueSheet{
		Catalog:    "1234567890123",
		Performer:  "Artist",
		Title:      "Album",
		Songwriter: "Writer",
		CDTextFile: "album.cdt",
		File:       "audio.bin",
		FileType:   model.FileTypeBinary,
		Tracks: []*model.Track{
			{
				Number:   "01",
				DataType: model.DataTypeAudio,
				Flags:    "DCP",
				Title:    "Opener",
				ISRC:     "GBAYE0000351",
				Index:    "00:00:00",
			},
			{
				Number:   "02",
				DataType: model.DataTypeAudio,
				File:     "bonus.wav",
				FileType: model.FileTypeWave,
				Pregap:   "00:02:00",
				Index:    "03:15:42",
				Postgap:  "00:01:00",
			},
		},
	}

	want := "CATALOG 1234567890123\r\n" +
		"PERFORMER \"Artist\"\r\n" +
		"TITLE \"Album\"\r\n" +
		"SONGWRITER \"Writer\"\r\n" +
		"CDTEXTFILE \"album.cdt\"\r\n" +
		"FILE \"audio.bin\" BINARY\r\n" +
		"  TRACK 01 AUDIO\r\n" +
		"    FLAGS DCP\r\n" +
		"    TITLE \"Opener\"\r\n" +
		"    ISRC GBAYE0000351\r\n" +
		"    INDEX 01 00:00:00\r\n" +
		"FILE \"bonus.wav\" WAVE\r\n" +
		"  TRACK 02 AUDIO\r\n" +
		"    PREGAP 00:02:00\r\n" +
		"    INDEX 01 03:15:42\r\n" +
		"    POSTGAP 00:01:00\r\n"

	if got := NewWriter(nil).Write(sheet); got != want {
		t.Errorf("Write() =\n%q\nwant\n%q", got, want)
	}
}

func TestWriter_OmitsUnsetFields(t *testing.T) {
	sheet := &model.CueSheet{
		Tracks: []*model.Track{
			{
				Number:    "01",
				DataType:  model.DataTypeAudio,
				Performer: "X",
				Index:     "00:00:00",
			},
		},
	}

	want := "  TRACK 01 AUDIO\r\n" +
		"    PERFORMER \"X\"\r\n" +
		"    INDEX 01 00:00:00\r\n"

	if got := NewWriter(nil).Write(sheet); got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

// The POSTGAP line is gated on the pregap, not the postgap: a track with
// a pregap but no postgap emits a dangling "POSTGAP " line, and a
// postgap without a pregap is never written. This mirrors the historical
// serializer and is covered here so nobody "fixes" it silently.
func TestWriter_PostgapFollowsPregapPresence(t *testing.T) {
	tests := []struct {
		name  string
		track *model.Track
		want  string
	}{
		{
			name: "pregap without postgap still emits POSTGAP line",
			track: &model.Track{
				Number: "01", DataType: model.DataTypeAudio,
				Pregap: "00:02:00", Index: "00:00:00",
			},
			want: "  TRACK 01 AUDIO\r\n" +
				"    PREGAP 00:02:00\r\n" +
				"    INDEX 01 00:00:00\r\n" +
				"    POSTGAP \r\n",
		},
		{
			name: "postgap without pregap is dropped",
			track: &model.Track{
				Number: "01", DataType: model.DataTypeAudio,
				Index: "00:00:00", Postgap: "00:01:00",
			},
			want: "  TRACK 01 AUDIO\r\n" +
				"    INDEX 01 00:00:00\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := &model.CueSheet{Tracks: []*model.Track{tt.track}}
			if got := NewWriter(nil).Write(sheet); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriter_EmptySheet(t *testing.T) {
	if got := NewWriter(nil).Write(&model.CueSheet{}); got != "" {
		t.Errorf("Write(empty) = %q, want empty", got)
	}
}

// Writing a parsed sheet and re-parsing the output must reproduce the
// same text: write∘parse is idempotent on canonical documents,
// including ones carrying the dangling POSTGAP quirk.
func TestWriteParseRoundTrip(t *testing.T) {
	sheets := map[string]*model.CueSheet{
		"plain": {
			Performer: "Artist",
			Title:     "Album",
			File:      "audio.bin",
			FileType:  model.FileTypeBinary,
			Tracks: []*model.Track{
				{Number: "01", DataType: model.DataTypeAudio, Index: "00:00:00"},
				{Number: "02", DataType: model.DataTypeAudio, Pregap: "00:02:00", Index: "03:15:42"},
			},
		},
		"dangling postgap": {
			Tracks: []*model.Track{
				{Number: "01", DataType: model.DataTypeAudio, Pregap: "00:01:00", Index: "00:00:00"},
			},
		},
	}

	writer := NewWriter(nil)
	parser := NewParser(nil)

	for name, sheet := range sheets {
		t.Run(name, func(t *testing.T) {
			first := writer.Write(sheet)
			second := writer.Write(parser.Parse(Strip(first)))
			if first != second {
				t.Errorf("round trip diverged:\nfirst  %q\nsecond %q", first, second)
			}
		})
	}
}
