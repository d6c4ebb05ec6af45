// Package wire implements the primitive vocabulary of the circuit byte
// format: big-endian fixed-width integers, count-prefixed lists, presence
// flags, length-prefixed strings and fixed-width field elements.
//
// Writer and Reader carry a sticky error and a running byte count so that
// composite encoders read as straight-line code and still satisfy the
// io.WriterTo / io.ReaderFrom contracts of the public types.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/visoftsolutions/acvm/field"
)

// Format error sentinels. The public packages re-export these under their
// documented names; they are defined here so that every layer of the codec
// wraps the same instances.
var (
	ErrTruncated       = errors.New("acir: truncated input")
	ErrUnknownTag      = errors.New("acir: unknown opcode tag")
	ErrUnknownBlackBox = errors.New("acir: unknown black box function")
)

// MaxPrealloc caps slice preallocation during decode. A 4-byte count prefix
// can claim arbitrarily more elements than the stream carries; decoders
// reserve at most this many up front and grow incrementally past it, so a
// malformed count costs a bounded allocation before the reads hit
// ErrTruncated.
const MaxPrealloc = 1024

// A Writer emits wire primitives to an underlying io.Writer.
//
// After the first failed write every subsequent call is a no-op; the first
// error is reported by Err. Encoding has no failure mode of its own, so any
// error is a sink I/O error.
type Writer struct {
	w   io.Writer
	n   int64
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// N returns the number of bytes written so far.
func (w *Writer) N() int64 { return w.n }

// Err returns the first error encountered, if any.
func (w *Writer) Err() error { return w.err }

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(b)
	w.n += int64(n)
	w.err = err
}

func (w *Writer) Uint8(v uint8) {
	w.write([]byte{v})
}

func (w *Writer) Uint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.write(buf[:])
}

// Count prefixes a list with its length.
func (w *Writer) Count(n int) {
	w.Uint32(uint32(n))
}

// Bool emits a presence flag.
func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

// String emits a length-prefixed UTF-8 string.
func (w *Writer) String(s string) {
	w.Count(len(s))
	w.write([]byte(s))
}

// Element emits the canonical fixed-width encoding of e.
func (w *Writer) Element(e field.Element) {
	b := e.Bytes()
	w.write(b[:])
}

// A Reader consumes wire primitives from an underlying io.Reader.
//
// Like Writer it is sticky: after the first failure every call returns the
// zero value and Err reports the first error. A stream that ends mid-value
// yields ErrTruncated.
type Reader struct {
	r   io.Reader
	n   int64
	err error
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// N returns the number of bytes read so far.
func (r *Reader) N() int64 { return r.n }

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Fail records an error produced by a caller mid-decode (e.g. an unknown
// variant tag) so that the remaining straight-line reads become no-ops.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) read(b []byte) bool {
	if r.err != nil {
		return false
	}
	n, err := io.ReadFull(r.r, b)
	r.n += int64(n)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTruncated
		}
		r.err = err
		return false
	}
	return true
}

func (r *Reader) Uint8() uint8 {
	var buf [1]byte
	if !r.read(buf[:]) {
		return 0
	}
	return buf[0]
}

func (r *Reader) Uint32() uint32 {
	var buf [4]byte
	if !r.read(buf[:]) {
		return 0
	}
	return binary.BigEndian.Uint32(buf[:])
}

// Count reads a list length prefix. Counts above MaxInt32 cannot be
// satisfied by any stream (and would overflow int on 32-bit targets), so
// they fail as truncated input.
func (r *Reader) Count() int {
	v := r.Uint32()
	if v > math.MaxInt32 {
		r.Fail(fmt.Errorf("count %d not satisfiable: %w", v, ErrTruncated))
		return 0
	}
	return int(v)
}

// Bool reads a presence flag; any value other than 0 or 1 is rejected.
func (r *Reader) Bool() bool {
	switch b := r.Uint8(); b {
	case 0:
		return false
	case 1:
		return true
	default:
		r.Fail(fmt.Errorf("invalid presence flag 0x%x: %w", b, ErrUnknownTag))
		return false
	}
}

// String reads a length-prefixed UTF-8 string. The allocation grows with
// the bytes actually present, not with the claimed length.
func (r *Reader) String() string {
	n := r.Count()
	if r.err != nil || n == 0 {
		return ""
	}
	var buf bytes.Buffer
	m, err := io.CopyN(&buf, r.r, int64(n))
	r.n += m
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTruncated
		}
		r.err = err
		return ""
	}
	return buf.String()
}

// Element reads a canonical fixed-width field element.
func (r *Reader) Element() field.Element {
	var buf [field.Bytes]byte
	var e field.Element
	if !r.read(buf[:]) {
		return e
	}
	if err := e.SetBytes(buf[:]); err != nil {
		r.Fail(err)
	}
	return e
}
