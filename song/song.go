// Package song decodes a whole NoteWorthy Composer binary document.
package song

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/logging"
	"github.com/nvuaille/nwcread/model"
	"github.com/nvuaille/nwcread/reader"
	"github.com/nvuaille/nwcread/staff"
)

// ErrInvalidFormat means the fixed signatures at the start of the file
// did not match; no partial result is produced.
var ErrInvalidFormat = errors.New("not a NoteWorthy Composer file")

// Parse decodes a raw or zlib-wrapped buffer into a Song. Recoverable
// oddities are logged and decoding continues with defaults; a bad
// signature or an unknown object tag aborts with no partial result.
func Parse(data []byte) (*model.Song, error) {
	data, err := maybeInflate(data)
	if err != nil {
		return nil, err
	}

	r := reader.New(data)
	s := &model.Song{}
	if err := checkSignatures(r); err != nil {
		return nil, err
	}
	s.Version = resolveVersion(r, true)
	parseHeader(r, s)

	for i := 0; i < s.StaffCount; i++ {
		if !s.StaffVisible(i) {
			continue
		}
		st, err := staff.Parse(r, s.Version, s)
		if err != nil {
			return nil, err
		}
		// percussion staves are scanned but never emitted, downstream
		// tooling cannot represent them
		if st.InstrumentName == constants.PercussionInstrument {
			continue
		}
		s.Staves = append(s.Staves, st)
	}

	if n := r.Underruns(); n > 0 {
		logging.L().Warn("decode read past end of buffer, result is suspect",
			zap.Int("reads", n))
	}
	return s, nil
}

// maybeInflate replaces the working buffer with the inflated payload when
// the compressed-stream marker opens the file.
func maybeInflate(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, constants.CompressedMarker) {
		return data, nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(data[len(constants.CompressedMarker):]))
	if err != nil {
		return nil, fmt.Errorf("inflating compressed file: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("inflating compressed file: %w", err)
	}
	return out, nil
}

func checkSignatures(r *reader.Reader) error {
	r.SetPos(0)
	if string(r.ReadToNul()) != constants.Signature1 {
		return fmt.Errorf("%w: missing %q", ErrInvalidFormat, constants.Signature1)
	}
	r.ReadToNul()
	r.ReadToNul()
	if string(r.ReadToNul()) != constants.Signature2 {
		return fmt.Errorf("%w: missing %q", ErrInvalidFormat, constants.Signature2)
	}
	return nil
}

// resolveVersion reads the version code at its fixed offset and maps it
// through the known-code table. With commit false the cursor is restored
// afterwards.
func resolveVersion(r *reader.Reader, commit bool) int {
	stored := r.Pos()
	r.SetPos(constants.VersionOffset)
	code := r.ReadLEShort()
	if !commit {
		r.SetPos(stored)
	}

	v, ok := constants.VersionFromCode[code]
	if !ok {
		logging.L().Warn("no version found, most likely a newer release",
			zap.Int("code", code),
			zap.Int("assuming", constants.DefaultVersion))
		return constants.DefaultVersion
	}
	return v
}
