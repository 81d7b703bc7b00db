// Package constants carries the fixed reference tables of the nwc binary
// format. All of it is immutable lookup data.
package constants

// CompressedMarker opens a zlib-wrapped file; the payload follows it.
var CompressedMarker = []byte("[NWZ]\x00")

// The two signatures every uncompressed buffer must open with.
const (
	Signature1 = "[NoteWorthy ArtWare]"
	Signature2 = "[NoteWorthy Composer]"
)

// VersionOffset is the absolute position of the version code.
const VersionOffset = 45

// VersionFromCode maps the raw little-endian version code to the
// normalized version number.
var VersionFromCode = map[int]int{
	0x0114: 120,
	0x011E: 130,
	0x0132: 150,
	0x0137: 155,
	0x0146: 170,
	0x014B: 175,
	0x0200: 200,
	0x0201: 201,
}

// DefaultVersion is assumed for unrecognized codes, most likely a file
// newer than the last known release.
const DefaultVersion = 201

const (
	DefaultFontName = "Times New Roman"
	DefaultFontSize = 12
	DefaultTypeface = "Maestro"
	DefaultMargins  = "0.0 0.0 0.0 0.0"
)

// ClefNames is indexed by the clef type field.
var ClefNames = []string{"Treble", "Bass", "Alto", "Tenor"}

// OctaveShiftNames is indexed by the octave shift field; index 0 renders
// nothing.
var OctaveShiftNames = []string{"", "Octave Up", "Octave Down"}

// BarlineStyles is indexed by the barline style byte; Single is the
// default and never rendered.
var BarlineStyles = []string{
	"Single",
	"Double",
	"SectionOpen",
	"SectionClose",
	"MasterRepeatOpen",
	"MasterRepeatClose",
	"LocalRepeatOpen",
	"LocalRepeatClose",
	"BrokenSingle",
	"BrokenDouble",
}

// Key signature masks use one bit per letter (bit = letter - 'A').
// Flats accumulate in the order B E A D G C F, sharps F C G D A E B.
var FlatMask = map[int]string{
	2:   "Bb",
	18:  "Bb,Eb",
	19:  "Bb,Eb,Ab",
	27:  "Bb,Eb,Ab,Db",
	91:  "Bb,Eb,Ab,Db,Gb",
	95:  "Bb,Eb,Ab,Db,Gb,Cb",
	127: "Bb,Eb,Ab,Db,Gb,Cb,Fb",
}

var SharpMask = map[int]string{
	32:  "F#",
	36:  "F#,C#",
	100: "F#,C#,G#",
	108: "F#,C#,G#,D#",
	109: "F#,C#,G#,D#,A#",
	125: "F#,C#,G#,D#,A#,E#",
	127: "F#,C#,G#,D#,A#,E#,B#",
}

// DurationNames is indexed by the duration field 0-6.
var DurationNames = []string{"Whole", "Half", "4th", "8th", "16th", "32nd", "64th"}

// AlterationNames is indexed by the low three bits of the second note
// attribute byte; index 5 means "no alteration".
var AlterationNames = []string{"#", "b", "n", "##", "bb", ""}

// Syllable scanning stops after this many reads even if no empty
// terminator shows up, so corrupt lyric blocks cannot loop forever.
const MaxSyllableReads = 1000
