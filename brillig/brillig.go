// Package brillig defines the bytecode sub-format for the register-machine
// VM embedded in circuits: register and heap addressing, the closed
// instruction set, and the foreign-call result storage consumed when a
// suspended program is resumed.
//
// The package only models the data and its wire encoding. Executing the
// bytecode, including suspending on a foreign call and resuming once the
// caller has supplied a result, is the consuming solver's job; the types
// here are the serializable state that crosses that boundary.
package brillig

import "github.com/visoftsolutions/acvm/field"

// RegisterIndex addresses a slot in the flat register file of one program.
type RegisterIndex uint32

// RegisterOrMemory describes where a foreign call reads an input from or
// writes a result to: either a single register, or a heap region described
// through a pointer register.
//
// It is a closed union; decoders reject unrecognized tags.
type RegisterOrMemory interface {
	registerOrMemoryTag() uint8
}

// HeapArray is a heap region of a size fixed in the bytecode, based at the
// address held in Pointer.
type HeapArray struct {
	Pointer RegisterIndex
	Size    uint32
}

// HeapVector is a heap region whose size is only known at run time, read
// from the Size register.
type HeapVector struct {
	Pointer RegisterIndex
	Size    RegisterIndex
}

func (RegisterIndex) registerOrMemoryTag() uint8 { return tagRegisterIndex }
func (HeapArray) registerOrMemoryTag() uint8     { return tagHeapArray }
func (HeapVector) registerOrMemoryTag() uint8    { return tagHeapVector }

const (
	tagRegisterIndex uint8 = iota
	tagHeapArray
	tagHeapVector
)

// ForeignCallResult holds one resolved oracle answer. A program re-executed
// after suspension consumes results strictly in the order its ForeignCall
// instructions are encountered; this type is only the storage slot, the
// ordering is the solver's contract.
type ForeignCallResult struct {
	Values []ForeignCallOutput
}

// ForeignCallOutput is a closed union: one returned value per output
// descriptor, either a single field element or a flat array.
type ForeignCallOutput interface {
	foreignCallOutputTag() uint8
}

// SingleValue is a foreign-call output for a register destination.
type SingleValue struct {
	Value field.Element
}

// ArrayValue is a foreign-call output for a heap destination.
type ArrayValue struct {
	Values []field.Element
}

func (SingleValue) foreignCallOutputTag() uint8 { return tagSingleValue }
func (ArrayValue) foreignCallOutputTag() uint8  { return tagArrayValue }

const (
	tagSingleValue uint8 = iota
	tagArrayValue
)
