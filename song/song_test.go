package song

import (
	"bytes"
	"compress/zlib"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/reader"
)

func writeShort(buf *bytes.Buffer, v int) {
	buf.WriteByte(byte(v & 0xFF))
	buf.WriteByte(byte(v >> 8 & 0xFF))
}

func writeNulString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}

// writeStaff emits one version 200 staff holding a treble clef and a
// quarter note.
func writeStaff(buf *bytes.Buffer, instrument string) {
	writeNulString(buf, "Staff")
	writeNulString(buf, "Piano") // label
	writeNulString(buf, instrument)
	writeNulString(buf, "Standard") // group
	buf.Write(make([]byte, 27))     // playback block
	buf.WriteByte(5)                // lines
	writeShort(buf, 0)              // layer with next
	writeShort(buf, -2)             // transposition
	writeShort(buf, 127)            // part volume
	writeShort(buf, 64)             // stereo pan
	buf.WriteByte(0)                // color
	writeShort(buf, 0)              // align syllable
	writeShort(buf, 0)              // lyric count
	writeShort(buf, 0)              // lyric terminator
	writeShort(buf, 4)              // two objects plus sentinels

	// treble clef
	writeShort(buf, 0)
	buf.WriteByte(1)
	writeShort(buf, 0)
	writeShort(buf, 0)

	// quarter note on the middle line
	writeShort(buf, 8)
	buf.WriteByte(1)
	buf.WriteByte(2)
	buf.Write([]byte{0, 0, 0})
	buf.Write([]byte{0, 0})
	buf.WriteByte(0)
	buf.WriteByte(0x05)
}

func songFixture(visibility byte, staffCount int, instruments ...string) []byte {
	var buf bytes.Buffer
	writeNulString(&buf, constants.Signature1)
	buf.Write([]byte{0, 0})
	writeNulString(&buf, constants.Signature2)
	writeShort(&buf, 0x0200) // version code

	buf.Write(make([]byte, 4))
	writeNulString(&buf, "someone") // user
	writeNulString(&buf, "")        // unknown
	buf.Write(make([]byte, 10))
	writeNulString(&buf, "Test Song")
	writeNulString(&buf, "A Composer")
	writeNulString(&buf, "A Lyricist")
	writeNulString(&buf, "") // copyright 1
	writeNulString(&buf, "") // copyright 2
	writeNulString(&buf, "") // comment
	writeNulString(&buf, "Y") // extend last system
	writeNulString(&buf, "N") // increase note spacing
	writeNulString(&buf, "")
	writeNulString(&buf, "") // measure numbers
	writeNulString(&buf, "")
	writeShort(&buf, 1)                     // measure start
	writeNulString(&buf, "0.5 0.5 0.5 0.5") // margins
	writeNulString(&buf, "")                // staff size block
	writeNulString(&buf, "")
	buf.Write([]byte{visibility, 0}) // group visibility
	writeNulString(&buf, "N")        // allow layering
	writeNulString(&buf, "Maestro")
	writeShort(&buf, 16)          // staff height
	buf.Write([]byte{0x21, 0x21}) // skipped pair, nonzero so the pad scan stays put
	for i := 0; i < 12; i++ {
		buf.Write([]byte{0, 0, 0, 0, 0}) // empty font entry
	}
	buf.WriteByte(0) // title page info
	buf.WriteByte(0) // staff labels
	writeShort(&buf, 1) // page number start
	buf.WriteByte(0)
	buf.WriteByte(byte(staffCount))
	buf.WriteByte(0)

	for _, instrument := range instruments {
		writeStaff(&buf, instrument)
	}
	return buf.Bytes()
}

func TestResolvesEveryKnownVersionCode(t *testing.T) {
	assert := assert.New(t)
	for code, version := range constants.VersionFromCode {
		data := make([]byte, 47)
		data[constants.VersionOffset] = byte(code & 0xFF)
		data[constants.VersionOffset+1] = byte(code >> 8)
		r := reader.New(data)
		r.SetPos(10)

		assert.Equal(resolveVersion(r, false), version)
		assert.Equal(r.Pos(), 10)
	}
}

func TestUnknownVersionCodeAssumesLatest(t *testing.T) {
	data := make([]byte, 47)
	data[constants.VersionOffset] = 0x99
	data[constants.VersionOffset+1] = 0x09

	assert := assert.New(t)
	assert.Equal(resolveVersion(reader.New(data), true), 201)
}

func TestParseRejectsBadSignature(t *testing.T) {
	_, err := Parse([]byte("definitely not a score\x00"))

	assert := assert.New(t)
	assert.True(errors.Is(err, ErrInvalidFormat))
}

func TestParsesSingleStaffDocument(t *testing.T) {
	s, err := Parse(songFixture(0xFF, 1, "Flute"))

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(s.Version, 200)
	assert.Equal(s.Title, "Test Song")
	assert.Equal(s.Author, "A Composer")
	assert.Equal(s.Lyricist, "A Lyricist")
	assert.Equal(s.Margins, "0.5 0.5 0.5 0.5")
	assert.Equal(s.NotationTypeface, "Maestro")
	assert.Equal(s.StaffHeight, 16)
	assert.Equal(len(s.Fonts), 12)
	assert.Equal(s.Fonts[0].Name, "Times New Roman")
	assert.Equal(s.Fonts[0].Size, 12)
	assert.Equal(s.StaffCount, 1)
	assert.Equal(len(s.Staves), 1)

	assert.Equal(Dump(s), []string{
		"|SongInfo|Title:Test Song|Author:A Composer",
		"|AddStaff|Name:Piano",
		"|StaffInstrument|Name:Flute|Patch:73|Trans:-2",
		"|Clef|Type:Treble|",
		"|Note|Dur:4th|Pos:0|",
	})
}

func TestParsesCompressedDocument(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(constants.CompressedMarker)
	zw := zlib.NewWriter(&buf)
	zw.Write(songFixture(0xFF, 1, "Flute"))
	zw.Close()

	s, err := Parse(buf.Bytes())

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(s.Title, "Test Song")
	assert.Equal(len(s.Staves), 1)
}

func TestSkipsInvisibleStaves(t *testing.T) {
	// staff 0 visible, staff 1 masked out; only one staff is in the stream
	s, err := Parse(songFixture(0x01, 2, "Flute"))

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(s.StaffCount, 2)
	assert.Equal(len(s.Staves), 1)
}

func TestExcludesPercussionStaves(t *testing.T) {
	s, err := Parse(songFixture(0xFF, 1, constants.PercussionInstrument))

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(s.Staves), 0)
}
