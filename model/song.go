package model

// Song is the decoded document. It is mutated only while decoding and
// read-only afterwards.
type Song struct {
	Version int

	User                string
	Title               string
	Author              string
	Lyricist            string
	Copyright1          string
	Copyright2          string
	Comment             string
	ExtendLastSystem    string
	IncreaseNoteSpacing string
	MeasureNumbers      string
	MeasureStart        int
	Margins             string
	GroupVisibility     []byte
	AllowLayering       string
	NotationTypeface    string
	StaffHeight         int
	Fonts               []Font
	TitlePageInfo       int
	StaffLabels         int
	PageNumberStart     int
	StaffCount          int

	Staves []*Staff
}

// Font is one entry of the document font table.
type Font struct {
	Name    string
	Style   int
	Size    int
	Charset int
}

// StaffVisible reports whether staff i passes the group visibility
// bitmask. Files without a bitmask show every staff.
func (s *Song) StaffVisible(i int) bool {
	if len(s.GroupVisibility) == 0 {
		return true
	}
	return int(s.GroupVisibility[0])&(1<<uint(i)) != 0
}

// Staff is one staff of the document. PrevAlteration is scratch state for
// the renderer: pitch class of the last explicit accidental since the
// last barline.
type Staff struct {
	Song *Song

	Name           string
	Label          string
	HasLabel       bool
	InstrumentName string
	Group          string

	Lines          int
	LayerWithNext  int
	Transposition  int
	PartVolume     int
	StereoPan      int
	Color          int
	AlignSyllable  int
	LyricCount     int
	LyricAlignment int
	StaffOffset    int

	Lyrics  []LyricBlock
	Objects []Record

	PrevAlteration map[int]string
}

// LyricBlock is the syllable list of one lyric slot.
type LyricBlock struct {
	Syllables []string
}
