package staff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvuaille/nwcread/model"
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

// staffHeader200 emits a version 200 staff header with the given lyric
// slot count.
func staffHeader200(buf *bytes.Buffer, lyricCount int) {
	writeNulString(buf, "Staff")
	writeNulString(buf, "Piano")     // label
	writeNulString(buf, "Flute")     // instrument
	writeNulString(buf, "Standard")  // group
	buf.Write(make([]byte, 27))      // playback block
	buf.WriteByte(5)                 // lines
	writeShort(buf, 0)               // layer with next
	writeShort(buf, -2)              // transposition
	writeShort(buf, 127)             // part volume
	writeShort(buf, 64)              // stereo pan
	buf.WriteByte(0)                 // color
	writeShort(buf, 0)               // align syllable
	writeShort(buf, lyricCount)
	if lyricCount > 0 {
		writeShort(buf, 0) // lyric alignment
		writeShort(buf, 0) // staff offset
	}
}

func TestParsesVersion200StaffHeader(t *testing.T) {
	var buf bytes.Buffer
	staffHeader200(&buf, 0)
	writeShort(&buf, 0) // lyric terminator
	writeShort(&buf, 2) // object count incl sentinels

	st, err := Parse(reader.New(buf.Bytes()), 200, &model.Song{})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(st.Name, "Staff")
	assert.Equal(st.Label, "Piano")
	assert.Equal(st.InstrumentName, "Flute")
	assert.Equal(st.Group, "Standard")
	assert.Equal(st.Lines, 5)
	assert.Equal(st.Transposition, -2)
	assert.Equal(st.PartVolume, 127)
	assert.Equal(st.StereoPan, 64)
	assert.Equal(len(st.Objects), 0)
}

func TestParsesVersion175StaffHeader(t *testing.T) {
	var buf bytes.Buffer
	writeNulString(&buf, "Staff")
	writeNulString(&buf, "Standard") // group
	buf.Write(make([]byte, 11))
	buf.WriteByte(1) // patch index, one-based
	buf.Write(make([]byte, 10))
	buf.WriteByte(0xFB) // transposition -5
	buf.Write(make([]byte, 6))
	writeShort(&buf, 0) // align syllable
	writeShort(&buf, 0) // lyric count
	writeShort(&buf, 0) // lyric terminator
	writeShort(&buf, 2) // object count incl sentinels

	st, err := Parse(reader.New(buf.Bytes()), 175, &model.Song{})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(st.InstrumentName, "Acoustic Grand Piano")
	assert.Equal(st.Transposition, -5)
}

func TestLyricBlockSizeIsAuthoritative(t *testing.T) {
	var buf bytes.Buffer
	staffHeader200(&buf, 1)

	// block of 10 bytes: junk short, two syllables, empty terminator,
	// then unread padding the declared size jumps over
	writeShort(&buf, 10)
	writeShort(&buf, 8) // inner size
	writeShort(&buf, 0) // junk
	writeNulString(&buf, "la")
	writeNulString(&buf, "")
	buf.Write([]byte{0xAA, 0xBB, 0xCC, 0xDD})

	writeShort(&buf, 0) // trailing short for non-empty slot list
	writeShort(&buf, 0) // lyric terminator
	writeShort(&buf, 2) // object count incl sentinels

	st, err := Parse(reader.New(buf.Bytes()), 200, &model.Song{})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(st.Lyrics), 1)
	assert.Equal(st.Lyrics[0].Syllables, []string{"la"})
	assert.Equal(len(st.Objects), 0)
}

func TestSkipsEmptyLyricBlocks(t *testing.T) {
	var buf bytes.Buffer
	staffHeader200(&buf, 2)
	writeShort(&buf, 0)  // slot 1 declares no block
	writeShort(&buf, -4) // slot 2 is garbage, also skipped
	writeShort(&buf, 0)  // trailing short for non-empty slot list
	writeShort(&buf, 0)  // lyric terminator
	writeShort(&buf, 2)  // object count incl sentinels

	st, err := Parse(reader.New(buf.Bytes()), 200, &model.Song{})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(st.Lyrics), 0)
	assert.Equal(len(st.Objects), 0)
}

func TestParsesObjectStream(t *testing.T) {
	var buf bytes.Buffer
	staffHeader200(&buf, 0)
	writeShort(&buf, 0) // lyric terminator
	writeShort(&buf, 4) // two objects plus sentinels

	// treble clef
	writeShort(&buf, 0)
	buf.WriteByte(1)
	writeShort(&buf, 0)
	writeShort(&buf, 0)

	// quarter note on the middle line
	writeShort(&buf, 8)
	buf.WriteByte(1)
	buf.WriteByte(2)
	buf.Write([]byte{0, 0, 0})
	buf.Write([]byte{0, 0})
	buf.WriteByte(0)
	buf.WriteByte(0x05)

	st, err := Parse(reader.New(buf.Bytes()), 200, &model.Song{})

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(len(st.Objects), 2)

	lines := Dump(st)
	assert.Equal(lines[0], "|AddStaff|Name:Piano")
	assert.Equal(lines[1], "|StaffInstrument|Name:Flute|Patch:73|Trans:-2")
	assert.Equal(lines[2], "|Clef|Type:Treble|")
	assert.Equal(lines[3], "|Note|Dur:4th|Pos:0|")
}
