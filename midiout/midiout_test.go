package midiout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvuaille/nwcread/model"
)

func TestNoteKeyOnTrebleClef(t *testing.T) {
	assert := assert.New(t)
	center := clefCenter["Treble"]

	// middle line is B4, six positions down is middle C
	assert.Equal(noteKey(center, model.Note{Pos: 0}, map[int]int{}), uint8(71))
	assert.Equal(noteKey(center, model.Note{Pos: -6}, map[int]int{}), uint8(60))
	assert.Equal(noteKey(center, model.Note{Pos: 1}, map[int]int{}), uint8(72))
}

func TestNoteKeyAppliesAccidentals(t *testing.T) {
	assert := assert.New(t)
	center := clefCenter["Treble"]

	active := map[int]int{}
	assert.Equal(noteKey(center, model.Note{Pos: 0, Alteration: "b"}, active), uint8(70))
	// the flat stays active for the letter until cleared
	assert.Equal(noteKey(center, model.Note{Pos: 0}, active), uint8(70))
	assert.Equal(noteKey(center, model.Note{Pos: 0, Alteration: "n"}, active), uint8(71))
}

func TestNoteKeyUsesKeySignature(t *testing.T) {
	assert := assert.New(t)
	center := clefCenter["Treble"]

	active := parseKeyString("F#,C#")
	// F5 is four positions above the middle line
	assert.Equal(noteKey(center, model.Note{Pos: 4}, active), uint8(78))
}

func TestDurationTicks(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(durationTicks("Whole"), uint32(1920))
	assert.Equal(durationTicks("4th"), uint32(480))
	assert.Equal(durationTicks("4th,Dotted"), uint32(720))
	assert.Equal(durationTicks("4th,DblDotted"), uint32(840))
	assert.Equal(durationTicks("64th"), uint32(30))
	assert.Equal(durationTicks("8th,Grace"), uint32(240))
}

func TestParseKeyString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(parseKeyString("F#,C#"), map[int]int{3: 1, 0: 1})
	assert.Equal(parseKeyString("Bb,Eb"), map[int]int{6: -1, 2: -1})
	assert.Equal(parseKeyString(""), map[int]int{})
}

func TestCreateBuildsOneTrackPerStaff(t *testing.T) {
	s := &model.Song{Staves: []*model.Staff{
		{Label: "Lead", InstrumentName: "Flute", Objects: []model.Record{
			model.Clef{Name: "Treble"},
			model.Note{DurationName: "4th", Pos: 0},
		}},
		{Label: "Bass", InstrumentName: "Fretless Bass"},
	}}

	mf := Create(s)

	assert := assert.New(t)
	assert.Equal(len(mf.Tracks), 2)
}
