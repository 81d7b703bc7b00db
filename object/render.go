package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/model"
)

// Render turns one decoded record into its token protocol line. Records
// with no textual form return "". Rendering is pure except for the staff
// alteration memory, which Note updates and Barline clears.
func Render(rec model.Record, st *model.Staff) string {
	switch o := rec.(type) {
	case model.Clef:
		build := "|Clef|"
		if o.Name != "" {
			build += "Type:" + o.Name + "|"
		}
		if o.OctaveShiftName != "" {
			build += "OctaveShift:" + o.OctaveShiftName + "|"
		}
		return build

	case model.KeySignature:
		return "|Key|Signature:" + o.KeyString

	case model.Barline:
		// accidentals do not carry across a bar
		st.PrevAlteration = make(map[int]string)
		build := "|Bar|"
		if o.Style > 0 && o.Style < len(constants.BarlineStyles) {
			build += "|Style:" + constants.BarlineStyles[o.Style]
		}
		return build

	case model.Ending:
		return "|Ending|Endings:" + strconv.Itoa(o.Style)

	case model.TimeSignature:
		return fmt.Sprintf("|TimeSig|Signature:%d/%d", o.Numerator, o.Denominator)

	case model.Tempo:
		return fmt.Sprintf("|Tempo|Tempo:%d", o.Value)

	case model.Note:
		// an unmarked note inherits the last alteration seen at its
		// pitch class since the previous barline
		alteration := o.Alteration
		if alteration == "" {
			alteration = st.PrevAlteration[pitchClass(o.Pos)]
		}
		build := "|Note|Dur:" + o.DurationName + "|" +
			"Pos:" + alteration + strconv.Itoa(o.Pos) + o.Tie + "|"
		st.PrevAlteration[pitchClass(o.Pos)] = o.Alteration
		return build

	case model.Rest:
		return "|Rest|Dur:" + o.DurationName + "|"

	case model.NoteChordMember:
		return renderChord(o)

	case model.Text:
		if o.Text == "" {
			return ""
		}
		return "|Text|Text:" + o.Text

	default:
		return ""
	}
}

// renderChord groups child notes by duration in first-seen order; each
// distinct duration becomes one Dur/Pos segment.
func renderChord(o model.NoteChordMember) string {
	var order []string
	groups := make(map[string][]string)
	for _, n := range o.Notes {
		if _, ok := groups[n.DurationName]; !ok {
			order = append(order, n.DurationName)
		}
		groups[n.DurationName] = append(groups[n.DurationName],
			n.Alteration+strconv.Itoa(n.Pos)+n.Tie)
	}

	build := "|Chord"
	for _, dur := range order {
		build += "|Dur:" + dur + "|Pos:" + strings.Join(groups[dur], ",")
	}
	return build
}
