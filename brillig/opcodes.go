package brillig

import "github.com/visoftsolutions/acvm/field"

// Opcode is one VM instruction. It is a closed union with a stable one-byte
// discriminant per variant; discriminants are append-only and never reused,
// and decoders reject tags they do not know.
type Opcode interface {
	opcodeTag() uint8
}

const (
	tagBinaryFieldOp uint8 = iota
	tagBinaryIntOp
	tagJumpIfNot
	tagJumpIf
	tagJump
	tagCall
	tagConst
	tagReturn
	tagForeignCall
	tagMov
	tagLoad
	tagStore
	tagTrap
	tagStop
)

// FieldOp selects the arithmetic performed by BinaryFieldOp.
type FieldOp uint8

const (
	FieldOpAdd FieldOp = iota
	FieldOpSub
	FieldOpMul
	FieldOpDiv
	FieldOpEquals
)

// IntOp selects the arithmetic performed by BinaryIntOp, operating on
// integers of the instruction's bit size.
type IntOp uint8

const (
	IntOpAdd IntOp = iota
	IntOpSub
	IntOpMul
	IntOpSignedDiv
	IntOpUnsignedDiv
	IntOpEquals
	IntOpLessThan
	IntOpLessThanEquals
	IntOpAnd
	IntOpOr
	IntOpXor
	IntOpShl
	IntOpShr
)

// BinaryFieldOp applies a field operation to two registers.
type BinaryFieldOp struct {
	Destination RegisterIndex
	Op          FieldOp
	Lhs         RegisterIndex
	Rhs         RegisterIndex
}

// BinaryIntOp applies an integer operation, at a given bit size, to two
// registers.
type BinaryIntOp struct {
	Destination RegisterIndex
	Op          IntOp
	BitSize     uint32
	Lhs         RegisterIndex
	Rhs         RegisterIndex
}

// JumpIfNot jumps to Location when Condition holds zero.
type JumpIfNot struct {
	Condition RegisterIndex
	Location  uint32
}

// JumpIf jumps to Location when Condition holds a non-zero value.
type JumpIf struct {
	Condition RegisterIndex
	Location  uint32
}

// Jump is an unconditional jump.
type Jump struct {
	Location uint32
}

// Call pushes the next instruction location and jumps to Location.
type Call struct {
	Location uint32
}

// Const loads an immediate field element into a register.
type Const struct {
	Destination RegisterIndex
	Value       field.Element
}

// Return pops a location pushed by Call and jumps to it.
type Return struct{}

// ForeignCall suspends execution and hands the named call with its inputs
// to the external resolver; the supplied result is written to Destinations
// on resumption.
type ForeignCall struct {
	Function     string
	Destinations []RegisterOrMemory
	Inputs       []RegisterOrMemory
}

// Mov copies Source into Destination.
type Mov struct {
	Destination RegisterIndex
	Source      RegisterIndex
}

// Load reads the heap at the address held in SourcePointer.
type Load struct {
	Destination   RegisterIndex
	SourcePointer RegisterIndex
}

// Store writes Source to the heap at the address held in
// DestinationPointer.
type Store struct {
	DestinationPointer RegisterIndex
	Source             RegisterIndex
}

// Trap aborts execution with a failure.
type Trap struct{}

// Stop halts execution successfully.
type Stop struct{}

func (BinaryFieldOp) opcodeTag() uint8 { return tagBinaryFieldOp }
func (BinaryIntOp) opcodeTag() uint8   { return tagBinaryIntOp }
func (JumpIfNot) opcodeTag() uint8     { return tagJumpIfNot }
func (JumpIf) opcodeTag() uint8        { return tagJumpIf }
func (Jump) opcodeTag() uint8          { return tagJump }
func (Call) opcodeTag() uint8          { return tagCall }
func (Const) opcodeTag() uint8         { return tagConst }
func (Return) opcodeTag() uint8        { return tagReturn }
func (ForeignCall) opcodeTag() uint8   { return tagForeignCall }
func (Mov) opcodeTag() uint8           { return tagMov }
func (Load) opcodeTag() uint8          { return tagLoad }
func (Store) opcodeTag() uint8         { return tagStore }
func (Trap) opcodeTag() uint8          { return tagTrap }
func (Stop) opcodeTag() uint8          { return tagStop }
