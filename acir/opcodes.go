package acir

import "github.com/visoftsolutions/acvm/brillig"

// Opcode is one entry of a circuit's opcode sequence. It is a closed union
// with a stable one-byte discriminant per variant.
//
// Discriminants are append-only across format revisions: an old decoder
// rejects bytes containing a variant it does not know, and old bytes stay
// decodable forever.
type Opcode interface {
	opcodeTag() uint8
}

const (
	tagOpcodeArithmetic uint8 = iota
	tagOpcodeBlackBoxCall
	tagOpcodeBrillig
	tagOpcodeMemoryInit
	tagOpcodeMemoryOp
)

// Arithmetic constrains its expression to evaluate to zero.
type Arithmetic struct {
	Expression
}

// BlackBoxCall invokes one catalogue primitive.
type BlackBoxCall struct {
	Call BlackBoxFuncCall
}

// Brillig embeds a register-machine program whose outputs are resolved
// outside the arithmetic circuit.
//
// Inputs bind expressions to the program's initial registers and heap;
// Outputs bind its final registers and heap back to witnesses.
// ForeignCallResults is empty at compile time and carries previously
// resolved oracle answers, in call order, in a resumed-execution snapshot.
// When Predicate is present and evaluates to zero the whole program's side
// effects are suppressed.
type Brillig struct {
	Inputs             []BrilligInput
	Outputs            []BrilligOutput
	Bytecode           []brillig.Opcode
	ForeignCallResults []brillig.ForeignCallResult
	Predicate          *Expression
}

// BrilligInput binds circuit values to a Brillig register: a single
// expression, or an array of expressions spilled to the heap.
type BrilligInput interface {
	brilligInputTag() uint8
}

// SingleInput binds one expression to one register.
type SingleInput struct {
	Expr Expression
}

// ArrayInput binds an expression array to the heap.
type ArrayInput struct {
	Exprs []Expression
}

func (SingleInput) brilligInputTag() uint8 { return 0 }
func (ArrayInput) brilligInputTag() uint8  { return 1 }

// BrilligOutput binds a Brillig result back to circuit witnesses.
type BrilligOutput interface {
	brilligOutputTag() uint8
}

// SimpleOutput binds one register to one witness.
type SimpleOutput struct {
	Witness Witness
}

// ArrayOutput binds a heap array to a witness array.
type ArrayOutput struct {
	Witnesses []Witness
}

func (SimpleOutput) brilligOutputTag() uint8 { return 0 }
func (ArrayOutput) brilligOutputTag() uint8  { return 1 }

// BlockId identifies a logical memory block within one circuit.
type BlockId uint32

// MemOp is a single access against a memory block: a read or a write. The
// index is a full expression because addressing may depend on other
// constrained witnesses.
type MemOp interface {
	memOpTag() uint8
}

// MemRead reads the block at Index into Destination.
type MemRead struct {
	Index       Expression
	Destination Witness
}

// MemWrite writes Value to the block at Index.
type MemWrite struct {
	Index Expression
	Value Expression
}

func (MemRead) memOpTag() uint8  { return 0 }
func (MemWrite) memOpTag() uint8 { return 1 }

// MemoryInit establishes a block's initial contents. It must precede any
// MemoryOp referencing the same block in the opcode sequence.
type MemoryInit struct {
	Block BlockId
	Init  []Witness
}

// MemoryOp performs one access against an initialized block. When
// Predicate is present and evaluates to zero the access is suppressed.
type MemoryOp struct {
	Block     BlockId
	Op        MemOp
	Predicate *Expression
}

func (Arithmetic) opcodeTag() uint8   { return tagOpcodeArithmetic }
func (BlackBoxCall) opcodeTag() uint8 { return tagOpcodeBlackBoxCall }
func (Brillig) opcodeTag() uint8      { return tagOpcodeBrillig }
func (MemoryInit) opcodeTag() uint8   { return tagOpcodeMemoryInit }
func (MemoryOp) opcodeTag() uint8     { return tagOpcodeMemoryOp }
