package acir

import (
	"fmt"

	"github.com/visoftsolutions/acvm/brillig"
	"github.com/visoftsolutions/acvm/internal/wire"
)

func writeWitnessSlice(w *wire.Writer, ws []Witness) {
	w.Count(len(ws))
	for _, wit := range ws {
		w.Uint32(uint32(wit))
	}
}

func readWitnessSlice(r *wire.Reader) []Witness {
	n := r.Count()
	if r.Err() != nil || n == 0 {
		return nil
	}
	ws := make([]Witness, 0, min(n, wire.MaxPrealloc))
	for i := 0; i < n; i++ {
		ws = append(ws, Witness(r.Uint32()))
		if r.Err() != nil {
			return nil
		}
	}
	return ws
}

// Witness sets serialize as their ascending index sequence; decoding
// re-normalizes so that the in-memory value is canonical even for bytes a
// permissive producer emitted unsorted.
func writeWitnessSet(w *wire.Writer, s WitnessSet) {
	writeWitnessSlice(w, s)
}

func readWitnessSet(r *wire.Reader) WitnessSet {
	return NewWitnessSet(readWitnessSlice(r)...)
}

func writeExpression(w *wire.Writer, e *Expression) {
	w.Element(e.Constant)
	w.Count(len(e.MulTerms))
	for _, t := range e.MulTerms {
		w.Element(t.Coefficient)
		w.Uint32(uint32(t.WitnessA))
		w.Uint32(uint32(t.WitnessB))
	}
	w.Count(len(e.LinearTerms))
	for _, t := range e.LinearTerms {
		w.Element(t.Coefficient)
		w.Uint32(uint32(t.Witness))
	}
}

func readExpression(r *wire.Reader) Expression {
	var e Expression
	e.Constant = r.Element()
	n := r.Count()
	if r.Err() != nil {
		return e
	}
	if n > 0 {
		e.MulTerms = make([]MulTerm, 0, min(n, wire.MaxPrealloc))
		for i := 0; i < n; i++ {
			e.MulTerms = append(e.MulTerms, MulTerm{
				Coefficient: r.Element(),
				WitnessA:    Witness(r.Uint32()),
				WitnessB:    Witness(r.Uint32()),
			})
			if r.Err() != nil {
				return e
			}
		}
	}
	n = r.Count()
	if r.Err() != nil {
		return e
	}
	if n > 0 {
		e.LinearTerms = make([]LinearTerm, 0, min(n, wire.MaxPrealloc))
		for i := 0; i < n; i++ {
			e.LinearTerms = append(e.LinearTerms, LinearTerm{
				Coefficient: r.Element(),
				Witness:     Witness(r.Uint32()),
			})
			if r.Err() != nil {
				return e
			}
		}
	}
	return e
}

func writeOptionalExpression(w *wire.Writer, e *Expression) {
	w.Bool(e != nil)
	if e != nil {
		writeExpression(w, e)
	}
}

func readOptionalExpression(r *wire.Reader) *Expression {
	if !r.Bool() || r.Err() != nil {
		return nil
	}
	e := readExpression(r)
	return &e
}

func writeFunctionInput(w *wire.Writer, in FunctionInput) {
	w.Uint32(uint32(in.Witness))
	w.Uint32(in.NumBits)
}

func readFunctionInput(r *wire.Reader) FunctionInput {
	return FunctionInput{Witness: Witness(r.Uint32()), NumBits: r.Uint32()}
}

func writeFunctionInputSlice(w *wire.Writer, ins []FunctionInput) {
	w.Count(len(ins))
	for _, in := range ins {
		writeFunctionInput(w, in)
	}
}

func readFunctionInputSlice(r *wire.Reader) []FunctionInput {
	n := r.Count()
	if r.Err() != nil || n == 0 {
		return nil
	}
	ins := make([]FunctionInput, 0, min(n, wire.MaxPrealloc))
	for i := 0; i < n; i++ {
		ins = append(ins, readFunctionInput(r))
		if r.Err() != nil {
			return nil
		}
	}
	return ins
}

func writeBlackBoxFuncCall(w *wire.Writer, call BlackBoxFuncCall) {
	w.Uint8(call.blackBoxTag())
	switch c := call.(type) {
	case And:
		writeFunctionInput(w, c.Lhs)
		writeFunctionInput(w, c.Rhs)
		w.Uint32(uint32(c.Output))
	case Xor:
		writeFunctionInput(w, c.Lhs)
		writeFunctionInput(w, c.Rhs)
		w.Uint32(uint32(c.Output))
	case RangeCheck:
		writeFunctionInput(w, c.Input)
	case SHA256:
		writeFunctionInputSlice(w, c.Inputs)
		writeWitnessSlice(w, c.Outputs)
	case Blake2s:
		writeFunctionInputSlice(w, c.Inputs)
		writeWitnessSlice(w, c.Outputs)
	case SchnorrVerify:
		writeFunctionInput(w, c.PublicKeyX)
		writeFunctionInput(w, c.PublicKeyY)
		writeFunctionInputSlice(w, c.Signature)
		writeFunctionInputSlice(w, c.Message)
		w.Uint32(uint32(c.Output))
	case Pedersen:
		writeFunctionInputSlice(w, c.Inputs)
		w.Uint32(c.DomainSeparator)
		w.Uint32(uint32(c.Outputs[0]))
		w.Uint32(uint32(c.Outputs[1]))
	case HashToField128Security:
		writeFunctionInputSlice(w, c.Inputs)
		w.Uint32(uint32(c.Output))
	case EcdsaSecp256k1:
		writeFunctionInputSlice(w, c.PublicKeyX)
		writeFunctionInputSlice(w, c.PublicKeyY)
		writeFunctionInputSlice(w, c.Signature)
		writeFunctionInputSlice(w, c.HashedMessage)
		w.Uint32(uint32(c.Output))
	case FixedBaseScalarMul:
		writeFunctionInput(w, c.Low)
		writeFunctionInput(w, c.High)
		w.Uint32(uint32(c.Outputs[0]))
		w.Uint32(uint32(c.Outputs[1]))
	case Keccak256:
		writeFunctionInputSlice(w, c.Inputs)
		writeWitnessSlice(w, c.Outputs)
	case RecursiveAggregation:
		writeFunctionInputSlice(w, c.VerificationKey)
		writeFunctionInputSlice(w, c.Proof)
		writeFunctionInputSlice(w, c.PublicInputs)
		writeFunctionInput(w, c.KeyHash)
		writeWitnessSlice(w, c.OutputAggregationObject)
	default:
		panic(fmt.Sprintf("acir: unexpected black box call type %T", call))
	}
}

func readBlackBoxFuncCall(r *wire.Reader) BlackBoxFuncCall {
	tag := r.Uint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case tagBlackBoxAnd:
		return And{Lhs: readFunctionInput(r), Rhs: readFunctionInput(r), Output: Witness(r.Uint32())}
	case tagBlackBoxXor:
		return Xor{Lhs: readFunctionInput(r), Rhs: readFunctionInput(r), Output: Witness(r.Uint32())}
	case tagBlackBoxRange:
		return RangeCheck{Input: readFunctionInput(r)}
	case tagBlackBoxSHA256:
		return SHA256{Inputs: readFunctionInputSlice(r), Outputs: readWitnessSlice(r)}
	case tagBlackBoxBlake2s:
		return Blake2s{Inputs: readFunctionInputSlice(r), Outputs: readWitnessSlice(r)}
	case tagBlackBoxSchnorrVerify:
		return SchnorrVerify{
			PublicKeyX: readFunctionInput(r),
			PublicKeyY: readFunctionInput(r),
			Signature:  readFunctionInputSlice(r),
			Message:    readFunctionInputSlice(r),
			Output:     Witness(r.Uint32()),
		}
	case tagBlackBoxPedersen:
		return Pedersen{
			Inputs:          readFunctionInputSlice(r),
			DomainSeparator: r.Uint32(),
			Outputs:         [2]Witness{Witness(r.Uint32()), Witness(r.Uint32())},
		}
	case tagBlackBoxHashToField128:
		return HashToField128Security{Inputs: readFunctionInputSlice(r), Output: Witness(r.Uint32())}
	case tagBlackBoxEcdsaSecp256k1:
		return EcdsaSecp256k1{
			PublicKeyX:    readFunctionInputSlice(r),
			PublicKeyY:    readFunctionInputSlice(r),
			Signature:     readFunctionInputSlice(r),
			HashedMessage: readFunctionInputSlice(r),
			Output:        Witness(r.Uint32()),
		}
	case tagBlackBoxFixedBaseScalarMul:
		return FixedBaseScalarMul{
			Low:     readFunctionInput(r),
			High:    readFunctionInput(r),
			Outputs: [2]Witness{Witness(r.Uint32()), Witness(r.Uint32())},
		}
	case tagBlackBoxKeccak256:
		return Keccak256{Inputs: readFunctionInputSlice(r), Outputs: readWitnessSlice(r)}
	case tagBlackBoxRecursiveAggregation:
		return RecursiveAggregation{
			VerificationKey:         readFunctionInputSlice(r),
			Proof:                   readFunctionInputSlice(r),
			PublicInputs:            readFunctionInputSlice(r),
			KeyHash:                 readFunctionInput(r),
			OutputAggregationObject: readWitnessSlice(r),
		}
	default:
		r.Fail(fmt.Errorf("black box function 0x%x: %w", tag, wire.ErrUnknownBlackBox))
		return nil
	}
}

func writeBrillig(w *wire.Writer, b *Brillig) {
	w.Count(len(b.Inputs))
	for _, in := range b.Inputs {
		w.Uint8(in.brilligInputTag())
		switch i := in.(type) {
		case SingleInput:
			writeExpression(w, &i.Expr)
		case ArrayInput:
			w.Count(len(i.Exprs))
			for j := range i.Exprs {
				writeExpression(w, &i.Exprs[j])
			}
		default:
			panic(fmt.Sprintf("acir: unexpected brillig input type %T", in))
		}
	}
	w.Count(len(b.Bytecode))
	for _, op := range b.Bytecode {
		brillig.WriteOpcode(w, op)
	}
	w.Count(len(b.Outputs))
	for _, out := range b.Outputs {
		w.Uint8(out.brilligOutputTag())
		switch o := out.(type) {
		case SimpleOutput:
			w.Uint32(uint32(o.Witness))
		case ArrayOutput:
			writeWitnessSlice(w, o.Witnesses)
		default:
			panic(fmt.Sprintf("acir: unexpected brillig output type %T", out))
		}
	}
	w.Count(len(b.ForeignCallResults))
	for _, res := range b.ForeignCallResults {
		brillig.WriteForeignCallResult(w, res)
	}
	writeOptionalExpression(w, b.Predicate)
}

func readBrillig(r *wire.Reader) Brillig {
	var b Brillig
	n := r.Count()
	if r.Err() != nil {
		return b
	}
	for i := 0; i < n; i++ {
		switch tag := r.Uint8(); tag {
		case 0:
			b.Inputs = append(b.Inputs, SingleInput{Expr: readExpression(r)})
		case 1:
			m := r.Count()
			if r.Err() != nil {
				return Brillig{}
			}
			exprs := make([]Expression, 0, min(m, wire.MaxPrealloc))
			for j := 0; j < m; j++ {
				exprs = append(exprs, readExpression(r))
				if r.Err() != nil {
					return Brillig{}
				}
			}
			b.Inputs = append(b.Inputs, ArrayInput{Exprs: exprs})
		default:
			r.Fail(fmt.Errorf("brillig input 0x%x: %w", tag, wire.ErrUnknownTag))
			return Brillig{}
		}
		if r.Err() != nil {
			return Brillig{}
		}
	}
	n = r.Count()
	if r.Err() != nil {
		return Brillig{}
	}
	for i := 0; i < n; i++ {
		op := brillig.ReadOpcode(r)
		if r.Err() != nil {
			return Brillig{}
		}
		b.Bytecode = append(b.Bytecode, op)
	}
	n = r.Count()
	if r.Err() != nil {
		return Brillig{}
	}
	for i := 0; i < n; i++ {
		switch tag := r.Uint8(); tag {
		case 0:
			b.Outputs = append(b.Outputs, SimpleOutput{Witness: Witness(r.Uint32())})
		case 1:
			b.Outputs = append(b.Outputs, ArrayOutput{Witnesses: readWitnessSlice(r)})
		default:
			r.Fail(fmt.Errorf("brillig output 0x%x: %w", tag, wire.ErrUnknownTag))
			return Brillig{}
		}
		if r.Err() != nil {
			return Brillig{}
		}
	}
	n = r.Count()
	if r.Err() != nil {
		return Brillig{}
	}
	for i := 0; i < n; i++ {
		res := brillig.ReadForeignCallResult(r)
		if r.Err() != nil {
			return Brillig{}
		}
		b.ForeignCallResults = append(b.ForeignCallResults, res)
	}
	b.Predicate = readOptionalExpression(r)
	return b
}

func writeMemOp(w *wire.Writer, op MemOp) {
	w.Uint8(op.memOpTag())
	switch o := op.(type) {
	case MemRead:
		writeExpression(w, &o.Index)
		w.Uint32(uint32(o.Destination))
	case MemWrite:
		writeExpression(w, &o.Index)
		writeExpression(w, &o.Value)
	default:
		panic(fmt.Sprintf("acir: unexpected mem op type %T", op))
	}
}

func readMemOp(r *wire.Reader) MemOp {
	switch tag := r.Uint8(); tag {
	case 0:
		return MemRead{Index: readExpression(r), Destination: Witness(r.Uint32())}
	case 1:
		return MemWrite{Index: readExpression(r), Value: readExpression(r)}
	default:
		if r.Err() == nil {
			r.Fail(fmt.Errorf("mem op 0x%x: %w", tag, wire.ErrUnknownTag))
		}
		return nil
	}
}

func writeOpcode(w *wire.Writer, op Opcode) {
	w.Uint8(op.opcodeTag())
	switch o := op.(type) {
	case Arithmetic:
		writeExpression(w, &o.Expression)
	case BlackBoxCall:
		writeBlackBoxFuncCall(w, o.Call)
	case Brillig:
		writeBrillig(w, &o)
	case MemoryInit:
		w.Uint32(uint32(o.Block))
		writeWitnessSlice(w, o.Init)
	case MemoryOp:
		w.Uint32(uint32(o.Block))
		writeMemOp(w, o.Op)
		writeOptionalExpression(w, o.Predicate)
	default:
		panic(fmt.Sprintf("acir: unexpected opcode type %T", op))
	}
}

func readOpcode(r *wire.Reader) Opcode {
	tag := r.Uint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case tagOpcodeArithmetic:
		return Arithmetic{Expression: readExpression(r)}
	case tagOpcodeBlackBoxCall:
		call := readBlackBoxFuncCall(r)
		if r.Err() != nil {
			return nil
		}
		return BlackBoxCall{Call: call}
	case tagOpcodeBrillig:
		return readBrillig(r)
	case tagOpcodeMemoryInit:
		return MemoryInit{Block: BlockId(r.Uint32()), Init: readWitnessSlice(r)}
	case tagOpcodeMemoryOp:
		block := BlockId(r.Uint32())
		op := readMemOp(r)
		if r.Err() != nil {
			return nil
		}
		return MemoryOp{Block: block, Op: op, Predicate: readOptionalExpression(r)}
	default:
		r.Fail(fmt.Errorf("opcode 0x%x: %w", tag, wire.ErrUnknownTag))
		return nil
	}
}
