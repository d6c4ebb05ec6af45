package brillig

import (
	"fmt"

	"github.com/visoftsolutions/acvm/field"
	"github.com/visoftsolutions/acvm/internal/wire"
)

// WriteOpcode emits one instruction: discriminant byte then the variant's
// payload in declaration order.
func WriteOpcode(w *wire.Writer, op Opcode) {
	w.Uint8(op.opcodeTag())
	switch o := op.(type) {
	case BinaryFieldOp:
		w.Uint32(uint32(o.Destination))
		w.Uint8(uint8(o.Op))
		w.Uint32(uint32(o.Lhs))
		w.Uint32(uint32(o.Rhs))
	case BinaryIntOp:
		w.Uint32(uint32(o.Destination))
		w.Uint8(uint8(o.Op))
		w.Uint32(o.BitSize)
		w.Uint32(uint32(o.Lhs))
		w.Uint32(uint32(o.Rhs))
	case JumpIfNot:
		w.Uint32(uint32(o.Condition))
		w.Uint32(o.Location)
	case JumpIf:
		w.Uint32(uint32(o.Condition))
		w.Uint32(o.Location)
	case Jump:
		w.Uint32(o.Location)
	case Call:
		w.Uint32(o.Location)
	case Const:
		w.Uint32(uint32(o.Destination))
		w.Element(o.Value)
	case Return:
	case ForeignCall:
		w.String(o.Function)
		writeRegisterOrMemorySlice(w, o.Destinations)
		writeRegisterOrMemorySlice(w, o.Inputs)
	case Mov:
		w.Uint32(uint32(o.Destination))
		w.Uint32(uint32(o.Source))
	case Load:
		w.Uint32(uint32(o.Destination))
		w.Uint32(uint32(o.SourcePointer))
	case Store:
		w.Uint32(uint32(o.DestinationPointer))
		w.Uint32(uint32(o.Source))
	case Trap:
	case Stop:
	default:
		panic(fmt.Sprintf("brillig: unexpected opcode type %T", op))
	}
}

// ReadOpcode decodes one instruction. Unknown discriminants are terminal:
// payload shapes differ per variant, so nothing can be skipped.
func ReadOpcode(r *wire.Reader) Opcode {
	tag := r.Uint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case tagBinaryFieldOp:
		return BinaryFieldOp{
			Destination: RegisterIndex(r.Uint32()),
			Op:          readFieldOp(r),
			Lhs:         RegisterIndex(r.Uint32()),
			Rhs:         RegisterIndex(r.Uint32()),
		}
	case tagBinaryIntOp:
		return BinaryIntOp{
			Destination: RegisterIndex(r.Uint32()),
			Op:          readIntOp(r),
			BitSize:     r.Uint32(),
			Lhs:         RegisterIndex(r.Uint32()),
			Rhs:         RegisterIndex(r.Uint32()),
		}
	case tagJumpIfNot:
		return JumpIfNot{Condition: RegisterIndex(r.Uint32()), Location: r.Uint32()}
	case tagJumpIf:
		return JumpIf{Condition: RegisterIndex(r.Uint32()), Location: r.Uint32()}
	case tagJump:
		return Jump{Location: r.Uint32()}
	case tagCall:
		return Call{Location: r.Uint32()}
	case tagConst:
		return Const{Destination: RegisterIndex(r.Uint32()), Value: r.Element()}
	case tagReturn:
		return Return{}
	case tagForeignCall:
		return ForeignCall{
			Function:     r.String(),
			Destinations: readRegisterOrMemorySlice(r),
			Inputs:       readRegisterOrMemorySlice(r),
		}
	case tagMov:
		return Mov{Destination: RegisterIndex(r.Uint32()), Source: RegisterIndex(r.Uint32())}
	case tagLoad:
		return Load{Destination: RegisterIndex(r.Uint32()), SourcePointer: RegisterIndex(r.Uint32())}
	case tagStore:
		return Store{DestinationPointer: RegisterIndex(r.Uint32()), Source: RegisterIndex(r.Uint32())}
	case tagTrap:
		return Trap{}
	case tagStop:
		return Stop{}
	default:
		r.Fail(fmt.Errorf("brillig opcode 0x%x: %w", tag, wire.ErrUnknownTag))
		return nil
	}
}

func readFieldOp(r *wire.Reader) FieldOp {
	op := FieldOp(r.Uint8())
	if r.Err() == nil && op > FieldOpEquals {
		r.Fail(fmt.Errorf("brillig field op 0x%x: %w", uint8(op), wire.ErrUnknownTag))
	}
	return op
}

func readIntOp(r *wire.Reader) IntOp {
	op := IntOp(r.Uint8())
	if r.Err() == nil && op > IntOpShr {
		r.Fail(fmt.Errorf("brillig int op 0x%x: %w", uint8(op), wire.ErrUnknownTag))
	}
	return op
}

func writeRegisterOrMemory(w *wire.Writer, rom RegisterOrMemory) {
	w.Uint8(rom.registerOrMemoryTag())
	switch d := rom.(type) {
	case RegisterIndex:
		w.Uint32(uint32(d))
	case HeapArray:
		w.Uint32(uint32(d.Pointer))
		w.Uint32(d.Size)
	case HeapVector:
		w.Uint32(uint32(d.Pointer))
		w.Uint32(uint32(d.Size))
	default:
		panic(fmt.Sprintf("brillig: unexpected descriptor type %T", rom))
	}
}

func readRegisterOrMemory(r *wire.Reader) RegisterOrMemory {
	tag := r.Uint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case tagRegisterIndex:
		return RegisterIndex(r.Uint32())
	case tagHeapArray:
		return HeapArray{Pointer: RegisterIndex(r.Uint32()), Size: r.Uint32()}
	case tagHeapVector:
		return HeapVector{Pointer: RegisterIndex(r.Uint32()), Size: RegisterIndex(r.Uint32())}
	default:
		r.Fail(fmt.Errorf("brillig descriptor 0x%x: %w", tag, wire.ErrUnknownTag))
		return nil
	}
}

func writeRegisterOrMemorySlice(w *wire.Writer, roms []RegisterOrMemory) {
	w.Count(len(roms))
	for _, rom := range roms {
		writeRegisterOrMemory(w, rom)
	}
}

func readRegisterOrMemorySlice(r *wire.Reader) []RegisterOrMemory {
	n := r.Count()
	if r.Err() != nil || n == 0 {
		return nil
	}
	roms := make([]RegisterOrMemory, 0, min(n, wire.MaxPrealloc))
	for i := 0; i < n; i++ {
		rom := readRegisterOrMemory(r)
		if r.Err() != nil {
			return nil
		}
		roms = append(roms, rom)
	}
	return roms
}

// WriteForeignCallResult emits one resolved oracle answer.
func WriteForeignCallResult(w *wire.Writer, res ForeignCallResult) {
	w.Count(len(res.Values))
	for _, v := range res.Values {
		w.Uint8(v.foreignCallOutputTag())
		switch out := v.(type) {
		case SingleValue:
			w.Element(out.Value)
		case ArrayValue:
			w.Count(len(out.Values))
			for _, e := range out.Values {
				w.Element(e)
			}
		default:
			panic(fmt.Sprintf("brillig: unexpected foreign call output type %T", v))
		}
	}
}

// ReadForeignCallResult decodes one resolved oracle answer.
func ReadForeignCallResult(r *wire.Reader) ForeignCallResult {
	n := r.Count()
	var res ForeignCallResult
	if r.Err() != nil {
		return res
	}
	for i := 0; i < n; i++ {
		tag := r.Uint8()
		if r.Err() != nil {
			return ForeignCallResult{}
		}
		switch tag {
		case tagSingleValue:
			res.Values = append(res.Values, SingleValue{Value: r.Element()})
		case tagArrayValue:
			m := r.Count()
			if r.Err() != nil {
				return ForeignCallResult{}
			}
			values := make([]field.Element, 0, min(m, wire.MaxPrealloc))
			for j := 0; j < m; j++ {
				values = append(values, r.Element())
				if r.Err() != nil {
					return ForeignCallResult{}
				}
			}
			res.Values = append(res.Values, ArrayValue{Values: values})
		default:
			r.Fail(fmt.Errorf("brillig foreign call output 0x%x: %w", tag, wire.ErrUnknownTag))
			return ForeignCallResult{}
		}
	}
	return res
}
