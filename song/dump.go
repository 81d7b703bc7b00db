package song

import (
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/staff"
)

// Dump renders the whole document into token protocol lines: one
// SongInfo line, then each staff in order.
func Dump(s *model.Song) []string {
	out := []string{"|SongInfo|Title:" + s.Title + "|Author:" + s.Author}
	for _, st := range s.Staves {
		st.PrevAlteration = make(map[int]string)
		out = append(out, staff.Dump(st)...)
	}
	return out
}
