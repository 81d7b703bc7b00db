package model

// Record is the closed set of object variants a staff stream can carry.
// Variants hold decoded fields only; rendering lives in the object
// package so decode and render stay independently testable.
type Record interface {
	Kind() string
}

// Clef (tag 0).
type Clef struct {
	Type            int
	OctaveShift     int
	Name            string
	OctaveShiftName string
}

// KeySignature (tag 1).
type KeySignature struct {
	Flats     int
	Sharps    int
	KeyString string
}

// Barline (tag 2). Rendering one clears the staff alteration memory.
type Barline struct {
	Style            int
	LocalRepeatCount int
}

// Ending (tag 3).
type Ending struct {
	Style int
}

// Instrument (tag 4).
type Instrument struct {
	Name string
}

// TimeSignature (tag 5). Denominator is 1 << Bits.
type TimeSignature struct {
	Numerator   int
	Bits        int
	Denominator int
	Style       int
}

// Tempo (tag 6).
type Tempo struct {
	Pos       int
	Placement int
	Value     int
	Base      int
	Text      string
}

// Dynamic (tag 7).
type Dynamic struct {
	Pos       int
	Placement int
	Style     int
	Velocity  int
	Volume    int
}

// Note (tag 8). DurationName already carries dot and grace suffixes.
type Note struct {
	Duration     int
	DurationName string
	Pos          int
	Alteration   string
	Tie          string
	StemLength   int
}

// Rest (tag 9).
type Rest struct {
	Duration     int
	DurationName string
	Offset       int
}

// NoteChordMember (tag 10) owns its child notes.
type NoteChordMember struct {
	StemLength int
	Notes      []Note
}

// Pedal (tag 11).
type Pedal struct {
	Pos       int
	Placement int
	Style     int
}

// FlowDirection (tag 12).
type FlowDirection struct {
	Pos       int
	Placement int
	Style     int
}

// MidiInstruction (tag 13) keeps its payload opaque.
type MidiInstruction struct {
	Pos       int
	Placement int
	Data      []byte
}

// TempoVariation (tag 14).
type TempoVariation struct {
	Pos       int
	Placement int
	Style     int
	Delay     int
}

// DynamicVariation (tag 15).
type DynamicVariation struct {
	Pos       int
	Placement int
	Style     int
}

// Performance (tag 16).
type Performance struct {
	Pos       int
	Placement int
	Style     int
}

// Text (tag 17). A text record consumed as the staff label keeps an empty
// Text and renders nothing.
type Text struct {
	Pos  int
	Data int
	Font int
	Text string
}

// RestChordMember (tag 18).
type RestChordMember struct {
	Count int
}

func (Clef) Kind() string             { return "Clef" }
func (KeySignature) Kind() string     { return "KeySig" }
func (Barline) Kind() string          { return "Barline" }
func (Ending) Kind() string           { return "Ending" }
func (Instrument) Kind() string       { return "Instrument" }
func (TimeSignature) Kind() string    { return "TimeSignature" }
func (Tempo) Kind() string            { return "Tempo" }
func (Dynamic) Kind() string          { return "Dynamic" }
func (Note) Kind() string             { return "Note" }
func (Rest) Kind() string             { return "Rest" }
func (NoteChordMember) Kind() string  { return "NoteChordMember" }
func (Pedal) Kind() string            { return "Pedal" }
func (FlowDirection) Kind() string    { return "FlowDir" }
func (MidiInstruction) Kind() string  { return "MPC" }
func (TempoVariation) Kind() string   { return "TempoVariation" }
func (DynamicVariation) Kind() string { return "DynamicVariation" }
func (Performance) Kind() string      { return "Performance" }
func (Text) Kind() string             { return "Text" }
func (RestChordMember) Kind() string  { return "RestChordMember" }
