// Package object decodes and renders the tagged records of a staff
// object stream.
package object

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/logging"
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/reader"
	"github.com/nvuaille/nwcread/util"
)

// ErrUnsupportedObjectType aborts the decode: without knowing the length
// of an unknown record the cursor cannot be resynchronized.
var ErrUnsupportedObjectType = errors.New("unsupported object type")

// maxTag is the highest known object type tag.
const maxTag = 18

// Parse reads one record from the stream. The staff is needed because a
// Text record may double as the staff label.
func Parse(r *reader.Reader, version int, st *model.Staff) (model.Record, error) {
	offset := r.Pos()
	tag := r.ReadLEShort()
	if tag < 0 || tag > maxTag {
		return nil, fmt.Errorf("cannot translate object type %d at offset %d: %w",
			tag, offset, ErrUnsupportedObjectType)
	}
	if version >= 170 {
		r.ReadByte() // visibility
	}

	switch tag {
	case 0:
		return parseClef(r), nil
	case 1:
		return parseKeySig(r), nil
	case 2:
		return parseBarline(r), nil
	case 3:
		return parseEnding(r), nil
	case 4:
		return parseInstrument(r), nil
	case 5:
		return parseTimeSig(r), nil
	case 6:
		return parseTempo(r, version), nil
	case 7:
		return parseDynamic(r, version), nil
	case 8:
		return parseNote(r, version), nil
	case 9:
		return parseRest(r, version), nil
	case 10:
		return parseNoteChordMember(r, version, st)
	case 11:
		return parsePedal(r, version), nil
	case 12:
		return parseFlowDir(r, version), nil
	case 13:
		return parseMPC(r, version), nil
	case 14:
		return parseTempoVariation(r, version), nil
	case 15:
		return parseDynamicVariation(r, version), nil
	case 16:
		return parsePerformance(r, version), nil
	case 17:
		return parseText(r, st), nil
	default:
		return parseRestChordMember(r), nil
	}
}

// clef, 4 bytes
func parseClef(r *reader.Reader) model.Clef {
	o := model.Clef{
		Type:        r.ReadLEShort(),
		OctaveShift: r.ReadLEShort(),
	}
	if o.Type >= 0 && o.Type < len(constants.ClefNames) {
		o.Name = constants.ClefNames[o.Type]
	}
	if o.OctaveShift >= 0 && o.OctaveShift < len(constants.OctaveShiftNames) {
		o.OctaveShiftName = constants.OctaveShiftNames[o.OctaveShift]
	}
	return o
}

// key signature, 10 bytes
func parseKeySig(r *reader.Reader) model.KeySignature {
	o := model.KeySignature{}
	o.Flats = r.ReadByte()
	r.Skip(1)
	o.Sharps = r.ReadByte()
	r.Skip(7)

	if s, ok := constants.FlatMask[o.Flats]; ok && o.Flats > 0 {
		o.KeyString = s
	} else if s, ok := constants.SharpMask[o.Sharps]; ok && o.Sharps > 0 {
		o.KeyString = s
	}
	return o
}

// bar line, 2 bytes
func parseBarline(r *reader.Reader) model.Barline {
	return model.Barline{
		Style:            r.ReadByte(),
		LocalRepeatCount: r.ReadByte(),
	}
}

// ending, 2 bytes
func parseEnding(r *reader.Reader) model.Ending {
	o := model.Ending{Style: r.ReadByte()}
	r.Skip(1)
	return o
}

// instrument, 8 bytes + string
func parseInstrument(r *reader.Reader) model.Instrument {
	r.Skip(8)
	o := model.Instrument{Name: util.DecodeLatin1(r.ReadToNul())}
	r.Skip(1)
	r.Skip(8) // velocity block
	return o
}

// time signature, 6 bytes
func parseTimeSig(r *reader.Reader) model.TimeSignature {
	o := model.TimeSignature{
		Numerator: r.ReadLEShort(),
		Bits:      r.ReadLEShort(),
	}
	if o.Bits >= 0 && o.Bits < 16 {
		o.Denominator = 1 << uint(o.Bits)
	} else {
		logging.L().Warn("time signature denominator bits out of range",
			zap.Int("bits", o.Bits))
		o.Denominator = 1
	}
	o.Style = r.ReadLEShort()
	return o
}

// tempo, 5 bytes + string
func parseTempo(r *reader.Reader, version int) model.Tempo {
	o := model.Tempo{
		Pos:       r.ReadByte(),
		Placement: r.ReadByte(),
		Value:     r.ReadLEShort(),
		Base:      r.ReadByte(),
	}
	if version < 170 {
		r.ReadLEShort()
	}
	o.Text = util.DecodeLatin1(r.ReadToNul())
	return o
}

// dynamic, 7 bytes
func parseDynamic(r *reader.Reader, version int) model.Dynamic {
	o := model.Dynamic{}
	if version < 170 {
		logging.L().Warn("dynamics below version 170 are not supported")
		return o
	}
	o.Pos = r.ReadByte()
	o.Placement = r.ReadByte()
	o.Style = r.ReadByte()
	o.Velocity = r.ReadLEShort()
	o.Volume = r.ReadLEShort()
	return o
}

// note, 8 bytes
func parseNote(r *reader.Reader, version int) model.Note {
	o := model.Note{StemLength: defaultStemLength}
	if version < 170 {
		logging.L().Warn("notes below version 170 are not supported")
		o.DurationName = constants.DurationNames[0]
		o.Alteration = ""
		return o
	}
	o.Duration = r.ReadByte()
	r.ReadBytes(3) // unused data block
	attr1 := r.ReadBytes(2)
	o.Pos = -r.ReadSignedByte()
	attr2 := r.ReadByte()
	if version <= 170 {
		r.Skip(2)
	}
	if version >= 200 && attr2&0x40 != 0 {
		o.StemLength = r.ReadByte()
	}

	o.DurationName = durationName(o.Duration, byteAt(attr1, 0), byteAt(attr1, 1)&0x20 != 0)
	o.Alteration = alterationName(attr2)
	o.Tie = tieInfo(byteAt(attr1, 0))
	return o
}

// rest, 8 bytes
func parseRest(r *reader.Reader, version int) model.Rest {
	o := model.Rest{}
	if version <= 150 {
		logging.L().Warn("rests at version 150 and below are not supported")
		o.DurationName = constants.DurationNames[0]
		return o
	}
	o.Duration = r.ReadByte()
	data2 := r.ReadBytes(5)
	o.Offset = r.ReadLEShort()
	o.DurationName = durationName(o.Duration, byteAt(data2, 3), false)
	return o
}

// chord member, version-gated prefix + nested note records
func parseNoteChordMember(r *reader.Reader, version int, st *model.Staff) (model.Record, error) {
	o := model.NoteChordMember{StemLength: defaultStemLength}
	var data1 []byte
	count := 0
	switch {
	case version <= 170:
		data1 = r.ReadBytes(12)
	case version == 175:
		data1 = r.ReadBytes(10)
		count = int(byteAt(data1, 8))
	default:
		data1 = r.ReadBytes(8)
	}
	if version >= 200 && byteAt(data1, 7)&0x40 != 0 {
		o.StemLength = r.ReadByte()
	}

	for i := 0; i < count; i++ {
		rec, err := Parse(r, version, st)
		if err != nil {
			return nil, err
		}
		n, ok := rec.(model.Note)
		if !ok {
			logging.L().Warn("chord member is not a note, skipping",
				zap.String("kind", rec.Kind()))
			continue
		}
		o.Notes = append(o.Notes, n)
	}
	return o, nil
}

// pedal, 3 bytes
func parsePedal(r *reader.Reader, version int) model.Pedal {
	o := model.Pedal{}
	if version < 170 {
		logging.L().Warn("pedal below version 170 is not supported")
		return o
	}
	o.Pos = r.ReadByte()
	o.Placement = r.ReadByte()
	o.Style = r.ReadByte()
	return o
}

// flow direction, 4 bytes
func parseFlowDir(r *reader.Reader, version int) model.FlowDirection {
	o := model.FlowDirection{}
	if version >= 170 {
		o.Pos = r.ReadByte()
		o.Placement = r.ReadByte()
	} else {
		o.Pos = -8
		o.Placement = 0x01
	}
	o.Style = r.ReadLEShort()
	return o
}

// midi instructions, 34 bytes
func parseMPC(r *reader.Reader, version int) model.MidiInstruction {
	o := model.MidiInstruction{
		Pos:       r.ReadByte(),
		Placement: r.ReadByte(),
	}
	switch {
	case version == 175:
		o.Data = r.ReadBytes(32)
	case version > 155:
		o.Data = r.ReadBytes(31)
	default:
		o.Data = r.ReadBytes(32)
	}
	return o
}

// tempo variation, 4 bytes
func parseTempoVariation(r *reader.Reader, version int) model.TempoVariation {
	o := model.TempoVariation{}
	if version >= 170 {
		o.Pos = r.ReadByte()
		o.Placement = r.ReadByte()
		o.Style = r.ReadByte()
		o.Delay = r.ReadByte()
	} else {
		o.Style = r.ReadByte() & 0x0F
		o.Pos = r.ReadByte()
		o.Placement = r.ReadByte()
		o.Delay = r.ReadByte()
	}
	return o
}

// dynamic variation, 3 bytes
func parseDynamicVariation(r *reader.Reader, version int) model.DynamicVariation {
	o := model.DynamicVariation{Pos: r.ReadByte()}
	if version >= 170 {
		o.Placement = r.ReadByte()
	}
	o.Style = r.ReadByte()
	return o
}

// performance, 3 bytes
func parsePerformance(r *reader.Reader, version int) model.Performance {
	o := model.Performance{Pos: r.ReadByte()}
	if version >= 170 {
		o.Placement = r.ReadByte()
	}
	o.Style = r.ReadByte()
	return o
}

// text, 3 bytes + string; the first text of a label-less staff is the label
func parseText(r *reader.Reader, st *model.Staff) model.Text {
	o := model.Text{
		Pos:  r.ReadByte(),
		Data: r.ReadByte(),
		Font: r.ReadByte(),
	}
	text := util.DecodeLatin1(r.ReadToNul())
	if !st.HasLabel {
		st.Label = text
		st.HasLabel = true
		return o
	}
	o.Text = text
	return o
}

// rest chord member, 10 bytes
func parseRestChordMember(r *reader.Reader) model.RestChordMember {
	o := model.RestChordMember{Count: r.ReadLEShort()}
	r.Skip(8)
	return o
}

func byteAt(b []byte, i int) byte {
	if i < len(b) {
		return b[i]
	}
	return 0
}
