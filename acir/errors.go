package acir

import (
	"errors"

	"github.com/visoftsolutions/acvm/field"
	"github.com/visoftsolutions/acvm/internal/envelope"
	"github.com/visoftsolutions/acvm/internal/wire"
)

// Decode-time error kinds. All are terminal for the decode call that
// produced them: no partial circuit is ever returned. Encoding has no
// failure mode of its own; only sink I/O errors propagate, unwrapped.
//
// Match with errors.Is; decode errors wrap these sentinels with positional
// context.
var (
	// ErrTruncatedInput reports a stream that ended mid-value.
	ErrTruncatedInput = wire.ErrTruncated

	// ErrUnknownOpcodeTag reports an unrecognized tag in any of the
	// format's closed unions (opcodes, Brillig instructions, memory
	// operations, descriptors, presence flags).
	ErrUnknownOpcodeTag = wire.ErrUnknownTag

	// ErrUnknownBlackBoxFunc reports an unrecognized black-box variant
	// discriminant.
	ErrUnknownBlackBoxFunc = wire.ErrUnknownBlackBox

	// ErrNonCanonicalFieldElement reports field element bytes encoding a
	// value greater than or equal to the modulus.
	ErrNonCanonicalFieldElement = field.ErrNonCanonical

	// ErrMalformedEnvelope reports an invalid compressed-stream header,
	// body or trailer.
	ErrMalformedEnvelope = envelope.ErrMalformed
)

// Strict-validation error kinds, reported by Circuit.Validate (and by
// decoding with WithStrictValidation).
var (
	// ErrInvalidWitnessIndex reports a witness reference at or above
	// CurrentWitnessIndex.
	ErrInvalidWitnessIndex = errors.New("acir: witness index out of range")

	// ErrUninitializedBlock reports a MemoryOp whose block has no earlier
	// MemoryInit in the opcode sequence.
	ErrUninitializedBlock = errors.New("acir: memory op on uninitialized block")
)
