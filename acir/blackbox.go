package acir

// FunctionInput is a typed operand of a black-box call: a witness together
// with the number of bits its value is declared to fit in.
type FunctionInput struct {
	Witness Witness
	NumBits uint32
}

// BlackBoxFuncCall is a call to a cryptographic primitive that is not
// expressed as arithmetic constraints.
//
// The catalogue is closed: every variant has a stable one-byte discriminant
// assigned once and never renumbered, new primitives are appended with new
// discriminants, and decoders reject discriminants they do not know. The
// payload shape differs per variant, so an unknown variant cannot be
// skipped.
type BlackBoxFuncCall interface {
	blackBoxTag() uint8
}

const (
	tagBlackBoxAnd uint8 = iota
	tagBlackBoxXor
	tagBlackBoxRange
	tagBlackBoxSHA256
	tagBlackBoxBlake2s
	tagBlackBoxSchnorrVerify
	tagBlackBoxPedersen
	tagBlackBoxHashToField128
	tagBlackBoxEcdsaSecp256k1
	tagBlackBoxFixedBaseScalarMul
	tagBlackBoxKeccak256
	tagBlackBoxRecursiveAggregation
)

// And constrains Output to the bitwise AND of its operands.
type And struct {
	Lhs    FunctionInput
	Rhs    FunctionInput
	Output Witness
}

// Xor constrains Output to the bitwise XOR of its operands.
type Xor struct {
	Lhs    FunctionInput
	Rhs    FunctionInput
	Output Witness
}

// RangeCheck constrains the input witness to its declared bit width.
type RangeCheck struct {
	Input FunctionInput
}

// SHA256 hashes the input byte witnesses; Outputs holds the 32 digest
// bytes.
type SHA256 struct {
	Inputs  []FunctionInput
	Outputs []Witness
}

// Blake2s hashes the input byte witnesses; Outputs holds the 32 digest
// bytes.
type Blake2s struct {
	Inputs  []FunctionInput
	Outputs []Witness
}

// SchnorrVerify verifies a Schnorr signature over an arbitrary-length
// message; Output is a boolean witness.
type SchnorrVerify struct {
	PublicKeyX FunctionInput
	PublicKeyY FunctionInput
	Signature  []FunctionInput
	Message    []FunctionInput
	Output     Witness
}

// Pedersen commits to the inputs under a domain separator; Outputs is the
// commitment point's coordinate pair.
type Pedersen struct {
	Inputs          []FunctionInput
	DomainSeparator uint32
	Outputs         [2]Witness
}

// HashToField128Security hashes the inputs to a single field element.
type HashToField128Security struct {
	Inputs []FunctionInput
	Output Witness
}

// EcdsaSecp256k1 verifies an ECDSA signature over a hashed message; Output
// is a boolean witness.
type EcdsaSecp256k1 struct {
	PublicKeyX    []FunctionInput
	PublicKeyY    []FunctionInput
	Signature     []FunctionInput
	HashedMessage []FunctionInput
	Output        Witness
}

// FixedBaseScalarMul multiplies the curve's fixed generator by the scalar
// encoded as a low/high limb pair; Outputs is the resulting point's
// coordinate pair.
type FixedBaseScalarMul struct {
	Low     FunctionInput
	High    FunctionInput
	Outputs [2]Witness
}

// Keccak256 hashes the input byte witnesses; Outputs holds the 32 digest
// bytes.
type Keccak256 struct {
	Inputs  []FunctionInput
	Outputs []Witness
}

// RecursiveAggregation verifies a proof inside the circuit and folds it
// into a running aggregation object.
type RecursiveAggregation struct {
	VerificationKey         []FunctionInput
	Proof                   []FunctionInput
	PublicInputs            []FunctionInput
	KeyHash                 FunctionInput
	OutputAggregationObject []Witness
}

func (And) blackBoxTag() uint8                    { return tagBlackBoxAnd }
func (Xor) blackBoxTag() uint8                    { return tagBlackBoxXor }
func (RangeCheck) blackBoxTag() uint8             { return tagBlackBoxRange }
func (SHA256) blackBoxTag() uint8                 { return tagBlackBoxSHA256 }
func (Blake2s) blackBoxTag() uint8                { return tagBlackBoxBlake2s }
func (SchnorrVerify) blackBoxTag() uint8          { return tagBlackBoxSchnorrVerify }
func (Pedersen) blackBoxTag() uint8               { return tagBlackBoxPedersen }
func (HashToField128Security) blackBoxTag() uint8 { return tagBlackBoxHashToField128 }
func (EcdsaSecp256k1) blackBoxTag() uint8         { return tagBlackBoxEcdsaSecp256k1 }
func (FixedBaseScalarMul) blackBoxTag() uint8     { return tagBlackBoxFixedBaseScalarMul }
func (Keccak256) blackBoxTag() uint8              { return tagBlackBoxKeccak256 }
func (RecursiveAggregation) blackBoxTag() uint8   { return tagBlackBoxRecursiveAggregation }
