package acir

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/visoftsolutions/acvm/field"
	"github.com/visoftsolutions/acvm/internal/envelope"
)

// cmpOpts lets go-cmp compare circuits structurally: field elements through
// their Equal method, and nil versus empty containers as equal (decoding
// does not distinguish them).
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b field.Element) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

func TestRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("decode(encode(C)) == C", prop.ForAll(
		func(seed int64) bool {
			c := randomCircuit(rand.New(rand.NewSource(seed)))

			var buf bytes.Buffer
			if _, err := c.WriteRawTo(&buf); err != nil {
				return false
			}
			var back Circuit
			if _, err := back.ReadRawFrom(&buf); err != nil {
				return false
			}
			return back.Equal(c) && cmp.Equal(&back, c, cmpOpts)
		},
		gen.Int64(),
	))
	properties.Property("decode(compress(encode(C))) == C", prop.ForAll(
		func(seed int64) bool {
			c := randomCircuit(rand.New(rand.NewSource(seed)))

			b, err := c.Bytes()
			if err != nil {
				return false
			}
			back, err := ReadCircuitFromBytes(b, WithStrictValidation())
			if err != nil {
				return false
			}
			return back.Equal(c)
		},
		gen.Int64(),
	))
	properties.Property("encode is deterministic", prop.ForAll(
		func(seed int64) bool {
			c := randomCircuit(rand.New(rand.NewSource(seed)))

			b1, err := c.Bytes()
			if err != nil {
				return false
			}
			b2, err := c.Bytes()
			if err != nil {
				return false
			}
			return bytes.Equal(b1, b2)
		},
		gen.Int64(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRoundTripStructuralDiff(t *testing.T) {
	// one deep circuit checked with a structural diff for readable failures
	c := interopCircuit()

	var buf bytes.Buffer
	_, err := c.WriteRawTo(&buf)
	require.NoError(t, err)

	var back Circuit
	_, err = back.ReadRawFrom(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(c, &back, cmpOpts); diff != "" {
		t.Fatalf("circuit changed across round trip (-want +got):\n%s", diff)
	}
}

func TestDigestStability(t *testing.T) {
	c := interopCircuit()
	d1, err := c.Digest()
	require.NoError(t, err)
	d2, err := interopCircuit().Digest()
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	// digests are over canonical bytes, so they differ when content differs
	other := additionCircuit()
	d3, err := other.Digest()
	require.NoError(t, err)
	require.NotEqual(t, d1, d3)
}

func TestUnknownOpcodeTag(t *testing.T) {
	raw, err := hex.DecodeString(additionFixture)
	require.NoError(t, err)
	raw[8] = 0x63 // opcode discriminant

	var c Circuit
	_, err = c.ReadRawFrom(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrUnknownOpcodeTag)
}

func TestUnknownBlackBoxFunc(t *testing.T) {
	raw, err := hex.DecodeString(fixedBaseScalarMulFixture)
	require.NoError(t, err)
	require.Equal(t, uint8(1), raw[8]) // black box call opcode
	raw[9] = 0x63                      // black box discriminant

	var c Circuit
	_, err = c.ReadRawFrom(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrUnknownBlackBoxFunc)
}

func TestNonCanonicalFieldElement(t *testing.T) {
	raw, err := hex.DecodeString(additionFixture)
	require.NoError(t, err)
	for i := 9; i < 9+field.Bytes; i++ { // the expression's constant term
		raw[i] = 0xff
	}

	var c Circuit
	_, err = c.ReadRawFrom(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrNonCanonicalFieldElement)
}

func TestTruncatedInput(t *testing.T) {
	raw, err := hex.DecodeString(memoryFixture)
	require.NoError(t, err)

	var full Circuit
	_, err = full.ReadRawFrom(bytes.NewReader(raw))
	require.NoError(t, err)

	// no prefix of a valid encoding is a valid encoding
	for cut := 0; cut < len(raw); cut++ {
		var c Circuit
		_, err := c.ReadRawFrom(bytes.NewReader(raw[:cut]))
		require.ErrorIs(t, err, ErrTruncatedInput, "cut at %d", cut)
	}
}

func TestMalformedEnvelope(t *testing.T) {
	_, err := ReadCircuitFromBytes([]byte("definitely not gzip"))
	require.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = ReadCircuitFromBytes(nil)
	require.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestCorruptEnvelopeTrailer(t *testing.T) {
	// the deflate payload still inflates cleanly, so only trailer
	// verification can catch the corruption
	b, err := additionCircuit().Bytes()
	require.NoError(t, err)

	bad := bytes.Clone(b)
	bad[len(bad)-5] ^= 0xff // checksum
	_, err = ReadCircuitFromBytes(bad)
	require.ErrorIs(t, err, ErrMalformedEnvelope)

	bad = bytes.Clone(b)
	bad[len(bad)-1] ^= 0xff // uncompressed size
	_, err = ReadCircuitFromBytes(bad)
	require.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestTrailingBytesInEnvelope(t *testing.T) {
	var raw bytes.Buffer
	_, err := additionCircuit().WriteRawTo(&raw)
	require.NoError(t, err)
	raw.WriteByte(0x00)

	var buf bytes.Buffer
	zw := envelope.NewWriter(&buf)
	_, err = zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ReadCircuitFromBytes(buf.Bytes())
	require.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestOverlongCountPrefix(t *testing.T) {
	// cwi 1, one MemoryInit on block 0 claiming 2^31 witnesses with an
	// empty body
	raw, err := hex.DecodeString("0000000100000001" + "03" + "00000000" + "80000000")
	require.NoError(t, err)

	var c Circuit
	_, err = c.ReadRawFrom(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrTruncatedInput)

	// largest representable count: decoding must fail on the missing
	// payload, not allocate for the claim
	raw, err = hex.DecodeString("0000000100000001" + "03" + "00000000" + "7fffffff")
	require.NoError(t, err)

	_, err = c.ReadRawFrom(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestDecodeStringRejectsBadBase64(t *testing.T) {
	_, err := DecodeString("!!! not base64 !!!")
	require.Error(t, err)
}

func TestEmptyCircuit(t *testing.T) {
	var c Circuit
	b, err := c.Bytes()
	require.NoError(t, err)

	back, err := ReadCircuitFromBytes(b, WithStrictValidation())
	require.NoError(t, err)
	require.True(t, back.Equal(&c))
	require.Empty(t, back.Opcodes)
}
