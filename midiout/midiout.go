// Package midiout renders a decoded song to a Standard MIDI File for
// quick playback. It is a preview, not a faithful engraving: ties and
// grace timing are ignored.
package midiout

import (
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/model"
)

const ticksPerQuarter = 480

// clefCenter maps a clef name to the diatonic index (C0 = 0) of the note
// on the middle staff line, where object position 0 sits.
var clefCenter = map[string]int{
	"Treble": 34, // B4
	"Bass":   22, // D3
	"Alto":   28, // C4
	"Tenor":  26, // A3
}

var majorScale = [7]int{0, 2, 4, 5, 7, 9, 11}

var alterationOffset = map[string]int{
	"#": 1, "b": -1, "n": 0, "##": 2, "bb": -2,
}

// Create builds one track per staff.
func Create(s *model.Song) *smf.SMF {
	mf := smf.New()
	mf.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	for _, st := range s.Staves {
		mf.Add(staffTrack(st))
	}
	return mf
}

func staffTrack(st *model.Staff) smf.Track {
	var tr smf.Track
	name := st.Label
	if name == "" {
		name = st.Name
	}
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaInstrument(st.InstrumentName))
	tr.Add(0, midi.ProgramChange(0, uint8(constants.MidiPatch(st.InstrumentName))))

	center := clefCenter["Treble"]
	shift := 0
	keySig := make(map[int]int)         // letter class -> key signature offset
	active := cloneOffsets(keySig)      // letter class -> current accidental
	var delta uint32

	for _, rec := range st.Objects {
		switch o := rec.(type) {
		case model.Clef:
			if c, ok := clefCenter[o.Name]; ok {
				center = c
			}
			switch o.OctaveShiftName {
			case "Octave Up":
				shift = 7
			case "Octave Down":
				shift = -7
			}
			if o.OctaveShiftName == "" {
				shift = 0
			}

		case model.KeySignature:
			keySig = parseKeyString(o.KeyString)
			active = cloneOffsets(keySig)

		case model.Barline:
			active = cloneOffsets(keySig)

		case model.Tempo:
			if o.Value > 0 {
				tr.Add(delta, smf.MetaTempo(float64(o.Value)))
				delta = 0
			}

		case model.Note:
			ticks := durationTicks(o.DurationName)
			key := noteKey(center+shift, o, active)
			tr.Add(delta, midi.NoteOn(0, key, 64))
			tr.Add(ticks, midi.NoteOff(0, key))
			delta = 0

		case model.Rest:
			delta += durationTicks(o.DurationName)

		case model.NoteChordMember:
			if len(o.Notes) == 0 {
				continue
			}
			ticks := durationTicks(o.Notes[0].DurationName)
			keys := make([]uint8, 0, len(o.Notes))
			for _, n := range o.Notes {
				keys = append(keys, noteKey(center+shift, n, active))
			}
			for i, k := range keys {
				d := delta
				if i > 0 {
					d = 0
				}
				tr.Add(d, midi.NoteOn(0, k, 64))
			}
			for i, k := range keys {
				d := ticks
				if i > 0 {
					d = 0
				}
				tr.Add(d, midi.NoteOff(0, k))
			}
			delta = 0
		}
	}

	tr.Close(0)
	return tr
}

// noteKey resolves a staff position to a MIDI key, applying explicit
// accidentals first and the active signature otherwise.
func noteKey(center int, n model.Note, active map[int]int) uint8 {
	d := center + n.Pos
	letter := ((d % 7) + 7) % 7
	octave := (d - letter) / 7

	if off, ok := alterationOffset[n.Alteration]; ok {
		active[letter] = off
	}
	semitone := 12*octave + majorScale[letter] + 12 + active[letter]
	if semitone < 0 {
		semitone = 0
	}
	if semitone > 127 {
		semitone = 127
	}
	return uint8(semitone)
}

// durationTicks converts a rendered duration name back to ticks.
func durationTicks(name string) uint32 {
	base := name
	if i := strings.IndexByte(name, ','); i >= 0 {
		base = name[:i]
	}
	var ticks uint32
	switch base {
	case "Whole":
		ticks = ticksPerQuarter * 4
	case "Half":
		ticks = ticksPerQuarter * 2
	case "4th":
		ticks = ticksPerQuarter
	case "8th":
		ticks = ticksPerQuarter / 2
	case "16th":
		ticks = ticksPerQuarter / 4
	case "32nd":
		ticks = ticksPerQuarter / 8
	case "64th":
		ticks = ticksPerQuarter / 16
	default:
		ticks = ticksPerQuarter
	}
	if strings.Contains(name, ",DblDotted") {
		ticks = ticks * 7 / 4
	} else if strings.Contains(name, ",Dotted") {
		ticks = ticks * 3 / 2
	}
	return ticks
}

// parseKeyString turns a signature like "F#,C#" into letter offsets
// (C=0 .. B=6).
func parseKeyString(ks string) map[int]int {
	out := make(map[int]int)
	if ks == "" {
		return out
	}
	letters := map[byte]int{'C': 0, 'D': 1, 'E': 2, 'F': 3, 'G': 4, 'A': 5, 'B': 6}
	for _, part := range strings.Split(ks, ",") {
		if len(part) < 2 {
			continue
		}
		letter, ok := letters[part[0]]
		if !ok {
			continue
		}
		if part[1] == '#' {
			out[letter] = 1
		} else {
			out[letter] = -1
		}
	}
	return out
}

func cloneOffsets(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
