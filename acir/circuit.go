package acir

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	"github.com/visoftsolutions/acvm/internal/envelope"
	"github.com/visoftsolutions/acvm/internal/wire"
	"github.com/visoftsolutions/acvm/logger"
)

// Circuit is the aggregate interchange unit: the opcode sequence together
// with the witness bookkeeping a solver needs to execute it.
//
// A circuit is built once by a compiler and never mutated afterwards; it is
// transported as a value. Every witness referenced anywhere in the opcode
// sequence, PrivateParameters or ReturnValues must be strictly below
// CurrentWitnessIndex (see Validate).
type Circuit struct {
	// CurrentWitnessIndex is the next unused witness slot: the exclusive
	// upper bound of every witness the circuit may reference.
	CurrentWitnessIndex uint32
	Opcodes             []Opcode

	// PrivateParameters marks the circuit's secret inputs.
	PrivateParameters WitnessSet
	// ReturnValues marks the circuit's public interface.
	ReturnValues PublicInputs
}

// WriteRawTo writes the canonical (uncompressed) byte form of the circuit:
// current witness index, count-prefixed opcode sequence, then both witness
// sets in ascending order.
//
// WriteRawTo will not compress the data (as opposed to WriteTo).
func (c *Circuit) WriteRawTo(w io.Writer) (int64, error) {
	ww := wire.NewWriter(w)
	ww.Uint32(c.CurrentWitnessIndex)
	ww.Count(len(c.Opcodes))
	for _, op := range c.Opcodes {
		writeOpcode(ww, op)
	}
	writeWitnessSet(ww, c.PrivateParameters)
	writeWitnessSet(ww, c.ReturnValues)
	return ww.N(), ww.Err()
}

// WriteTo writes the circuit wrapped in the deterministic compression
// envelope. Encoding the same circuit twice, anywhere, yields byte-identical
// output. It implements io.WriterTo.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := envelope.NewWriter(cw)
	raw, err := c.WriteRawTo(zw)
	if err != nil {
		return cw.n, err
	}
	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	log := logger.Logger()
	log.Debug().Int64("rawBytes", raw).Int64("compressedBytes", cw.n).
		Int("nbOpcodes", len(c.Opcodes)).Msg("serialized circuit")
	return cw.n, nil
}

// ReadRawFrom decodes the canonical byte form produced by WriteRawTo,
// replacing the receiver's contents. The decode is terminal on the first
// malformed value; the receiver is unspecified after an error.
func (c *Circuit) ReadRawFrom(r io.Reader) (int64, error) {
	rr := wire.NewReader(r)
	c.CurrentWitnessIndex = rr.Uint32()
	n := rr.Count()
	c.Opcodes = nil
	for i := 0; i < n; i++ {
		op := readOpcode(rr)
		if rr.Err() != nil {
			return rr.N(), rr.Err()
		}
		c.Opcodes = append(c.Opcodes, op)
	}
	c.PrivateParameters = readWitnessSet(rr)
	c.ReturnValues = readWitnessSet(rr)
	return rr.N(), rr.Err()
}

// ReadFrom decodes an envelope produced by WriteTo, or by any other
// conforming gzip compressor. It implements io.ReaderFrom.
func (c *Circuit) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	zr, err := envelope.Open(cr)
	if err != nil {
		return cr.n, err
	}
	raw, err := c.ReadRawFrom(zr)
	if err != nil {
		return cr.n, err
	}
	// drive the decompressor to EOF: the stream trailer (checksum, size) is
	// only verified once the whole payload has been read, not on Close
	extra, err := io.Copy(io.Discard, zr)
	if err != nil {
		return cr.n, err
	}
	if extra != 0 {
		return cr.n, fmt.Errorf("%d trailing bytes after circuit: %w", extra, ErrMalformedEnvelope)
	}
	if err := zr.Close(); err != nil {
		return cr.n, err
	}
	log := logger.Logger()
	log.Debug().Int64("rawBytes", raw).Int64("compressedBytes", cr.n).
		Int("nbOpcodes", len(c.Opcodes)).Msg("deserialized circuit")
	return cr.n, nil
}

// ReadOption configures ReadCircuit.
type ReadOption func(*readConfig)

type readConfig struct {
	strict bool
}

// WithStrictValidation makes decoding run Circuit.Validate and fail on
// cross-component invariant violations (out-of-range witnesses, memory ops
// on uninitialized blocks). The default decode is permissive and leaves
// those checks to the consuming solver.
func WithStrictValidation() ReadOption {
	return func(cfg *readConfig) { cfg.strict = true }
}

// ReadCircuit decodes a compressed circuit from r.
func ReadCircuit(r io.Reader, opts ...ReadOption) (*Circuit, error) {
	var cfg readConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	c := new(Circuit)
	if _, err := c.ReadFrom(r); err != nil {
		return nil, err
	}
	if cfg.strict {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ReadCircuitFromBytes decodes a compressed circuit from b.
func ReadCircuitFromBytes(b []byte, opts ...ReadOption) (*Circuit, error) {
	return ReadCircuit(bytes.NewReader(b), opts...)
}

// Bytes returns the compressed byte form of the circuit.
func (c *Circuit) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeToString returns the compressed circuit as standard base64, the
// interchange form used to embed bytecode in source files and logs. This is
// a transport convenience over the byte form, not a second format.
func (c *Circuit) EncodeToString() (string, error) {
	b, err := c.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeString decodes a base64 interchange string produced by
// EncodeToString (or another conforming implementation).
func DecodeString(s string, opts ...ReadOption) (*Circuit, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return ReadCircuitFromBytes(b, opts...)
}

// Digest returns the SHA3-256 hash of the canonical (uncompressed) bytes.
// Because the encoding is injective and deterministic, equal circuits have
// equal digests on every machine; it is the key to use for caching.
func (c *Circuit) Digest() ([32]byte, error) {
	h := sha3.New256()
	if _, err := c.WriteRawTo(h); err != nil {
		return [32]byte{}, err
	}
	var digest [32]byte
	h.Sum(digest[:0])
	return digest, nil
}

// Equal reports structural equality of two circuits. Canonical encoding is
// injective over canonical values, so equality is compared on the canonical
// byte form.
func (c *Circuit) Equal(other *Circuit) bool {
	var a, b bytes.Buffer
	if _, err := c.WriteRawTo(&a); err != nil {
		return false
	}
	if _, err := other.WriteRawTo(&b); err != nil {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
