// Package envelope wraps canonical circuit bytes in a deterministic gzip
// stream.
//
// Byte-identical output for identical input is a format requirement, so the
// variable gzip header fields are pinned: MTIME is zero, no name, comment or
// extra fields, XFL zero (default compression level) and the OS byte fixed
// to 0xff ("unknown"). The resulting 10-byte header is constant:
//
//	1f 8b 08 00 00 00 00 00 00 ff
//
// Decoding accepts any conforming gzip stream, whatever compressor produced
// it.
package envelope

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed is returned when the compressed stream's header, body or
// trailer is invalid.
var ErrMalformed = errors.New("acir: malformed compression envelope")

// osUnknown pins the gzip OS header byte; it must never reflect the host.
const osUnknown = 0xff

// NewWriter returns a gzip writer with all variable header metadata fixed.
// Close must be called to flush the stream trailer.
func NewWriter(w io.Writer) *gzip.Writer {
	zw := gzip.NewWriter(w)
	zw.Header = gzip.Header{OS: osUnknown}
	return zw
}

// Open validates the gzip header of r and returns a reader over the
// decompressed payload. Header, body and trailer corruption all surface as
// ErrMalformed.
func Open(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &reader{zr: zr}, nil
}

type reader struct {
	zr *gzip.Reader
}

func (r *reader) Read(p []byte) (int, error) {
	n, err := r.zr.Read(p)
	if err != nil && err != io.EOF {
		err = fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return n, err
}

func (r *reader) Close() error {
	if err := r.zr.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
