package song

import (
	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/reader"
	"github.com/nvuaille/nwcread/util"
)

// parseHeader extracts the document metadata. The field order is fixed;
// which fields exist depends on the resolved version.
func parseHeader(r *reader.Reader, s *model.Song) {
	r.Skip(4) // registered vs. unregistered
	s.User = util.DecodeLatin1(r.ReadToNul())
	r.ReadToNul() // unknown
	r.Skip(10)
	s.Title = util.DecodeLatin1(r.ReadToNul())
	s.Author = util.DecodeLatin1(r.ReadToNul())
	if s.Version >= 200 {
		s.Lyricist = util.DecodeLatin1(r.ReadToNul())
	}
	s.Copyright1 = util.DecodeLatin1(r.ReadToNul())
	s.Copyright2 = util.DecodeLatin1(r.ReadToNul())
	s.Comment = util.DecodeLatin1(r.ReadToNul())
	s.ExtendLastSystem = util.DecodeLatin1(r.ReadToNul())
	s.IncreaseNoteSpacing = util.DecodeLatin1(r.ReadToNul())
	r.ReadToNul() // unused
	s.MeasureNumbers = util.DecodeLatin1(r.ReadToNul())
	r.ReadToNul() // unused
	s.MeasureStart = r.ReadLEShort()

	if s.Version >= 130 {
		s.Margins = util.DecodeLatin1(r.ReadToNul())
	} else {
		s.Margins = constants.DefaultMargins
	}
	r.ReadToNul() // staff size block
	r.ReadToNul() // unused
	if s.Version >= 130 {
		s.GroupVisibility = r.ReadToNul()
		s.AllowLayering = util.DecodeLatin1(r.ReadToNul())
	}
	if s.Version >= 200 {
		s.NotationTypeface = util.DecodeLatin1(r.ReadToNul())
	} else {
		s.NotationTypeface = constants.DefaultTypeface
	}
	s.StaffHeight = r.ReadLEShort()

	fontCount := 0
	switch {
	case s.Version > 170:
		fontCount = 12
	case s.Version > 130:
		fontCount = 10
	}
	r.AdvanceToNotNul() // some files pad here
	r.Skip(2)
	for i := 0; i < fontCount; i++ {
		f := model.Font{
			Name:  util.DecodeLatin1(r.ReadToNul()),
			Style: r.ReadByte(),
			Size:  r.ReadByte(),
		}
		r.Skip(1)
		f.Charset = r.ReadByte()
		if f.Name == "" {
			f.Name = constants.DefaultFontName
		}
		if f.Size == 0 {
			f.Size = constants.DefaultFontSize
		}
		s.Fonts = append(s.Fonts, f)
	}

	s.TitlePageInfo = r.ReadByte()
	s.StaffLabels = r.ReadByte() // none, first systems, top systems, all
	s.PageNumberStart = r.ReadLEShort()
	if s.Version >= 200 {
		r.Skip(1)
	}
	s.StaffCount = r.ReadByte()
	r.Skip(1)
}
