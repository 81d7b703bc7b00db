package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvuaille/nwcread/cmd"
	"github.com/nvuaille/nwcread/model"
)

func writeShort(buf *bytes.Buffer, v int) {
	buf.WriteByte(byte(v & 0xFF))
	buf.WriteByte(byte(v >> 8 & 0xFF))
}

func writeNulString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}

// minimalScore builds a version 200 document with one staff holding a
// treble clef and a quarter note.
func minimalScore() []byte {
	var buf bytes.Buffer
	writeNulString(&buf, "[NoteWorthy ArtWare]")
	buf.Write([]byte{0, 0})
	writeNulString(&buf, "[NoteWorthy Composer]")
	writeShort(&buf, 0x0200)

	buf.Write(make([]byte, 4))
	writeNulString(&buf, "someone")
	writeNulString(&buf, "")
	buf.Write(make([]byte, 10))
	writeNulString(&buf, "Test Song")
	writeNulString(&buf, "A Composer")
	writeNulString(&buf, "A Lyricist")
	for i := 0; i < 3; i++ {
		writeNulString(&buf, "")
	}
	writeNulString(&buf, "Y")
	writeNulString(&buf, "N")
	writeNulString(&buf, "")
	writeNulString(&buf, "")
	writeNulString(&buf, "")
	writeShort(&buf, 1)
	writeNulString(&buf, "0.5 0.5 0.5 0.5")
	writeNulString(&buf, "")
	writeNulString(&buf, "")
	buf.Write([]byte{0xFF, 0})
	writeNulString(&buf, "N")
	writeNulString(&buf, "Maestro")
	writeShort(&buf, 16)
	buf.Write([]byte{0x21, 0x21})
	for i := 0; i < 12; i++ {
		buf.Write([]byte{0, 0, 0, 0, 0})
	}
	buf.WriteByte(0)
	buf.WriteByte(0)
	writeShort(&buf, 1)
	buf.WriteByte(0)
	buf.WriteByte(1)
	buf.WriteByte(0)

	// staff
	writeNulString(&buf, "Staff")
	writeNulString(&buf, "Piano")
	writeNulString(&buf, "Flute")
	writeNulString(&buf, "Standard")
	buf.Write(make([]byte, 27))
	buf.WriteByte(5)
	writeShort(&buf, 0)
	writeShort(&buf, 0)
	writeShort(&buf, 127)
	writeShort(&buf, 64)
	buf.WriteByte(0)
	writeShort(&buf, 0)
	writeShort(&buf, 0)
	writeShort(&buf, 0)
	writeShort(&buf, 4)
	writeShort(&buf, 0)
	buf.WriteByte(1)
	writeShort(&buf, 0)
	writeShort(&buf, 0)
	writeShort(&buf, 8)
	buf.WriteByte(1)
	buf.WriteByte(2)
	buf.Write([]byte{0, 0, 0, 0, 0, 0})
	buf.WriteByte(0x05)
	return buf.Bytes()
}

func TestConvertEndpointE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", bytes.NewReader(minimalScore()))
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var convertResponse model.ConvertResponse
	err := json.Unmarshal(respBody, &convertResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(convertResponse.Title, "Test Song")
	assert.Equal(convertResponse.Author, "A Composer")
	assert.Equal(convertResponse.Staves, 1)
	assert.Equal(convertResponse.Tokens, []string{
		"|SongInfo|Title:Test Song|Author:A Composer",
		"|AddStaff|Name:Piano",
		"|StaffInstrument|Name:Flute|Patch:73|Trans:0",
		"|Clef|Type:Treble|",
		"|Note|Dur:4th|Pos:0|",
	})
}

func TestConvertEndpointRejectsGarbageE2E(t *testing.T) {
	body := bytes.NewReader([]byte("not a score"))
	req := httptest.NewRequest(http.MethodPost, "/convert", body)
	w := httptest.NewRecorder()
	cmd.HandleConvert(w, req)

	resp := w.Result()

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)
}
