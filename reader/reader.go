// Package reader implements the byte cursor the nwc decoder scans with.
package reader

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/logging"
)

// Reader is a cursor over one fully materialized file buffer. It is not
// safe for concurrent use; the decode is a single sequential scan.
//
// Reads past the end of the buffer return truncated (possibly empty)
// results instead of failing. Every such read is counted so the caller
// can flag a suspect decode, see Underruns.
type Reader struct {
	data      []byte
	pos       int
	underruns int
}

func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int {
	return r.pos
}

// SetPos moves the cursor to an absolute position. The lyric block decoder
// uses this to seek to a declared block boundary.
func (r *Reader) SetPos(pos int) {
	r.pos = pos
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) {
	r.pos += n
}

// Len returns the total buffer length.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Underruns returns how many reads ran past the end of the buffer.
func (r *Reader) Underruns() int {
	return r.underruns
}

func (r *Reader) underrun(op string) {
	r.underruns++
	logging.L().Warn("read past end of buffer",
		zap.String("op", op),
		zap.Int("pos", r.pos),
		zap.Int("size", len(r.data)))
}

// ReadLEShort reads a little-endian signed 16-bit value and advances the
// cursor by 2. An underrun yields 0.
func (r *Reader) ReadLEShort() int {
	if r.Remaining() < 2 {
		r.underrun("leshort")
		r.pos = len(r.data)
		return 0
	}
	v := int(int16(uint16(r.data[r.pos]) | uint16(r.data[r.pos+1])<<8))
	r.pos += 2
	return v
}

// ReadByte reads one byte as an unsigned value 0-255.
func (r *Reader) ReadByte() int {
	if r.Remaining() < 1 {
		r.underrun("byte")
		r.pos = len(r.data)
		return 0
	}
	v := int(r.data[r.pos])
	r.pos++
	return v
}

// ReadSignedByte reads one byte re-based to -128..127.
func (r *Reader) ReadSignedByte() int {
	v := r.ReadByte()
	if v > 127 {
		v -= 256
	}
	return v
}

// ReadBytes reads the next n bytes, truncated if fewer remain.
func (r *Reader) ReadBytes(n int) []byte {
	if r.Remaining() < n {
		r.underrun("bytes")
		v := append([]byte(nil), r.data[min(r.pos, len(r.data)):]...)
		r.pos = len(r.data)
		return v
	}
	v := append([]byte(nil), r.data[r.pos:r.pos+n]...)
	r.pos += n
	return v
}

// ReadToNul reads up to, but not including, the next zero byte and
// advances past the terminator. Without a terminator it returns the rest
// of the buffer and leaves the cursor at the end.
func (r *Reader) ReadToNul() []byte {
	if r.pos >= len(r.data) {
		r.underrun("nulstring")
		r.pos = len(r.data)
		return nil
	}
	i := bytes.IndexByte(r.data[r.pos:], 0)
	if i < 0 {
		r.underrun("nulstring")
		v := append([]byte(nil), r.data[r.pos:]...)
		r.pos = len(r.data)
		return v
	}
	v := append([]byte(nil), r.data[r.pos:r.pos+i]...)
	r.pos += i + 1
	return v
}

// AdvanceToNotNul skips over any run of zero bytes at the cursor.
func (r *Reader) AdvanceToNotNul() {
	for r.pos < len(r.data) && r.data[r.pos] == 0 {
		r.pos++
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
