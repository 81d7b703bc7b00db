// Package staff decodes one staff: header, lyric blocks, then the object
// stream.
package staff

import (
	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/logging"
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/object"
	"github.com/nvuaille/nwcread/reader"
	"github.com/nvuaille/nwcread/util"
)

// Parse reads one complete staff from the stream.
func Parse(r *reader.Reader, version int, song *model.Song) (*model.Staff, error) {
	st := &model.Staff{
		Song:           song,
		PrevAlteration: make(map[int]string),
	}
	parseHeader(r, version, st)
	parseLyrics(r, st)
	if err := parseObjects(r, version, st); err != nil {
		return nil, err
	}
	return st, nil
}

func parseHeader(r *reader.Reader, version int, st *model.Staff) {
	st.Name = util.DecodeLatin1(r.ReadToNul())
	if version >= 200 {
		st.Label = util.DecodeLatin1(r.ReadToNul())
		st.HasLabel = true
		st.InstrumentName = util.DecodeLatin1(r.ReadToNul())
	}
	st.Group = util.DecodeLatin1(r.ReadToNul())

	if version >= 200 {
		r.Skip(27) // playback block: mute, channel, device, patch bank...
		st.Lines = r.ReadByte()
		st.LayerWithNext = r.ReadLEShort()
		st.Transposition = r.ReadLEShort()
		st.PartVolume = r.ReadLEShort()
		st.StereoPan = r.ReadLEShort()
		st.Color = r.ReadByte()
		st.AlignSyllable = r.ReadLEShort()
		st.LyricCount = r.ReadLEShort()
	} else if version == 175 {
		r.Skip(11)
		patch := r.ReadByte()
		if patch >= 1 && patch <= len(constants.MidiInstruments) {
			st.InstrumentName = constants.MidiInstruments[patch-1]
		}
		r.Skip(10)
		st.Transposition = r.ReadSignedByte()
		r.Skip(6)
		st.AlignSyllable = r.ReadLEShort()
		st.LyricCount = r.ReadLEShort()
	}

	if st.LyricCount > 0 {
		st.LyricAlignment = r.ReadLEShort()
		st.StaffOffset = r.ReadLEShort()
	}
}

// parseLyrics scans each declared lyric slot. The declared block size is
// authoritative: after the best-effort syllable scan the cursor always
// lands on blockStart+blockSize, whatever bytes were left unread.
func parseLyrics(r *reader.Reader, st *model.Staff) {
	for i := 0; i < st.LyricCount; i++ {
		if r.Remaining() < 2 {
			logging.L().Warn("could not read lyric block size, trying with zero length",
				zap.Int("slot", i))
			continue
		}
		blockSize := r.ReadLEShort()
		if blockSize <= 0 {
			continue
		}

		r.ReadLEShort() // inner size, not used for control flow
		blockStart := r.Pos()
		r.ReadLEShort()

		var syllables []string
		for n := 0; n < constants.MaxSyllableReads; n++ {
			syllable := r.ReadToNul()
			if len(syllable) == 0 {
				break
			}
			syllables = append(syllables, util.DecodeLatin1(syllable))
		}
		r.SetPos(blockStart + blockSize)
		st.Lyrics = append(st.Lyrics, model.LyricBlock{Syllables: syllables})
	}

	if st.LyricCount > 0 {
		r.ReadLEShort()
	}
	r.ReadLEShort() // block list terminator
}

func parseObjects(r *reader.Reader, version int, st *model.Staff) error {
	count := r.ReadLEShort()
	if version > 150 {
		count -= 2 // sentinel entries
	}
	for i := 0; i < count; i++ {
		rec, err := object.Parse(r, version, st)
		if err != nil {
			return err
		}
		st.Objects = append(st.Objects, rec)
	}
	return nil
}
