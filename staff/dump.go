package staff

import (
	"strconv"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/object"
)

// Dump renders the staff header pair followed by one line per record
// that has a textual form.
func Dump(st *model.Staff) []string {
	label := st.Label
	if label == "" {
		if st.InstrumentName != "" {
			label = st.InstrumentName
		} else {
			label = "NoName"
		}
	}

	out := []string{"|AddStaff|Name:" + label}
	out = append(out, "|StaffInstrument"+
		"|Name:"+st.InstrumentName+
		"|Patch:"+strconv.Itoa(constants.MidiPatch(st.InstrumentName))+
		"|Trans:"+strconv.Itoa(st.Transposition))

	for _, rec := range st.Objects {
		if line := object.Render(rec, st); line != "" {
			out = append(out, line)
		}
	}
	return out
}
