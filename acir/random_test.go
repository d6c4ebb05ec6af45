package acir

import (
	"math/rand"

	"github.com/visoftsolutions/acvm/brillig"
	"github.com/visoftsolutions/acvm/field"
)

// Random circuit generation for round-trip properties. Witnesses stay below
// randomWitnessBound so that generated circuits also pass strict
// validation.
const randomWitnessBound = 64

func randomElement(rnd *rand.Rand) field.Element {
	e := field.FromUint64(rnd.Uint64())
	if rnd.Intn(4) == 0 {
		e = e.Neg()
	}
	return e
}

func randomNonZeroElement(rnd *rand.Rand) field.Element {
	for {
		if e := randomElement(rnd); !e.IsZero() {
			return e
		}
	}
}

func randomWitness(rnd *rand.Rand) Witness {
	return Witness(rnd.Intn(randomWitnessBound))
}

func randomExpression(rnd *rand.Rand) Expression {
	var e Expression
	if rnd.Intn(2) == 0 {
		e.AddConstant(randomElement(rnd))
	}
	for i := rnd.Intn(4); i > 0; i-- {
		e.AddTerm(randomNonZeroElement(rnd), randomWitness(rnd))
	}
	for i := rnd.Intn(3); i > 0; i-- {
		e.AddMulTerm(randomNonZeroElement(rnd), randomWitness(rnd), randomWitness(rnd))
	}
	return e
}

func randomOptionalExpression(rnd *rand.Rand) *Expression {
	if rnd.Intn(2) == 0 {
		return nil
	}
	e := randomExpression(rnd)
	return &e
}

func randomFunctionInput(rnd *rand.Rand) FunctionInput {
	return FunctionInput{Witness: randomWitness(rnd), NumBits: uint32(1 + rnd.Intn(254))}
}

func randomFunctionInputs(rnd *rand.Rand, n int) []FunctionInput {
	ins := make([]FunctionInput, n)
	for i := range ins {
		ins[i] = randomFunctionInput(rnd)
	}
	return ins
}

func randomWitnesses(rnd *rand.Rand, n int) []Witness {
	ws := make([]Witness, n)
	for i := range ws {
		ws[i] = randomWitness(rnd)
	}
	return ws
}

func randomBlackBoxFuncCall(rnd *rand.Rand) BlackBoxFuncCall {
	switch rnd.Intn(12) {
	case 0:
		return And{Lhs: randomFunctionInput(rnd), Rhs: randomFunctionInput(rnd), Output: randomWitness(rnd)}
	case 1:
		return Xor{Lhs: randomFunctionInput(rnd), Rhs: randomFunctionInput(rnd), Output: randomWitness(rnd)}
	case 2:
		return RangeCheck{Input: randomFunctionInput(rnd)}
	case 3:
		return SHA256{Inputs: randomFunctionInputs(rnd, rnd.Intn(8)), Outputs: randomWitnesses(rnd, 32)}
	case 4:
		return Blake2s{Inputs: randomFunctionInputs(rnd, rnd.Intn(8)), Outputs: randomWitnesses(rnd, 32)}
	case 5:
		return SchnorrVerify{
			PublicKeyX: randomFunctionInput(rnd),
			PublicKeyY: randomFunctionInput(rnd),
			Signature:  randomFunctionInputs(rnd, 64),
			Message:    randomFunctionInputs(rnd, rnd.Intn(16)),
			Output:     randomWitness(rnd),
		}
	case 6:
		return Pedersen{
			Inputs:          randomFunctionInputs(rnd, 1+rnd.Intn(4)),
			DomainSeparator: rnd.Uint32(),
			Outputs:         [2]Witness{randomWitness(rnd), randomWitness(rnd)},
		}
	case 7:
		return HashToField128Security{Inputs: randomFunctionInputs(rnd, 1+rnd.Intn(4)), Output: randomWitness(rnd)}
	case 8:
		return EcdsaSecp256k1{
			PublicKeyX:    randomFunctionInputs(rnd, 32),
			PublicKeyY:    randomFunctionInputs(rnd, 32),
			Signature:     randomFunctionInputs(rnd, 64),
			HashedMessage: randomFunctionInputs(rnd, 32),
			Output:        randomWitness(rnd),
		}
	case 9:
		return FixedBaseScalarMul{
			Low:     randomFunctionInput(rnd),
			High:    randomFunctionInput(rnd),
			Outputs: [2]Witness{randomWitness(rnd), randomWitness(rnd)},
		}
	case 10:
		return Keccak256{Inputs: randomFunctionInputs(rnd, rnd.Intn(8)), Outputs: randomWitnesses(rnd, 32)}
	default:
		return RecursiveAggregation{
			VerificationKey:         randomFunctionInputs(rnd, rnd.Intn(8)),
			Proof:                   randomFunctionInputs(rnd, rnd.Intn(8)),
			PublicInputs:            randomFunctionInputs(rnd, rnd.Intn(4)),
			KeyHash:                 randomFunctionInput(rnd),
			OutputAggregationObject: randomWitnesses(rnd, rnd.Intn(4)),
		}
	}
}

func randomRegisterOrMemory(rnd *rand.Rand) brillig.RegisterOrMemory {
	switch rnd.Intn(3) {
	case 0:
		return brillig.RegisterIndex(rnd.Intn(16))
	case 1:
		return brillig.HeapArray{Pointer: brillig.RegisterIndex(rnd.Intn(16)), Size: uint32(1 + rnd.Intn(8))}
	default:
		return brillig.HeapVector{Pointer: brillig.RegisterIndex(rnd.Intn(16)), Size: brillig.RegisterIndex(rnd.Intn(16))}
	}
}

func randomRegisterOrMemorySlice(rnd *rand.Rand, n int) []brillig.RegisterOrMemory {
	roms := make([]brillig.RegisterOrMemory, n)
	for i := range roms {
		roms[i] = randomRegisterOrMemory(rnd)
	}
	return roms
}

func randomBrilligOpcode(rnd *rand.Rand) brillig.Opcode {
	reg := func() brillig.RegisterIndex { return brillig.RegisterIndex(rnd.Intn(16)) }
	switch rnd.Intn(14) {
	case 0:
		return brillig.BinaryFieldOp{Destination: reg(), Op: brillig.FieldOp(rnd.Intn(5)), Lhs: reg(), Rhs: reg()}
	case 1:
		return brillig.BinaryIntOp{
			Destination: reg(),
			Op:          brillig.IntOp(rnd.Intn(13)),
			BitSize:     uint32(1 + rnd.Intn(128)),
			Lhs:         reg(),
			Rhs:         reg(),
		}
	case 2:
		return brillig.JumpIfNot{Condition: reg(), Location: uint32(rnd.Intn(64))}
	case 3:
		return brillig.JumpIf{Condition: reg(), Location: uint32(rnd.Intn(64))}
	case 4:
		return brillig.Jump{Location: uint32(rnd.Intn(64))}
	case 5:
		return brillig.Call{Location: uint32(rnd.Intn(64))}
	case 6:
		return brillig.Const{Destination: reg(), Value: randomElement(rnd)}
	case 7:
		return brillig.Return{}
	case 8:
		return brillig.ForeignCall{
			Function:     []string{"invert", "oracle", "sqrt", "get_state"}[rnd.Intn(4)],
			Destinations: randomRegisterOrMemorySlice(rnd, rnd.Intn(3)),
			Inputs:       randomRegisterOrMemorySlice(rnd, rnd.Intn(3)),
		}
	case 9:
		return brillig.Mov{Destination: reg(), Source: reg()}
	case 10:
		return brillig.Load{Destination: reg(), SourcePointer: reg()}
	case 11:
		return brillig.Store{DestinationPointer: reg(), Source: reg()}
	case 12:
		return brillig.Trap{}
	default:
		return brillig.Stop{}
	}
}

func randomForeignCallResult(rnd *rand.Rand) brillig.ForeignCallResult {
	var res brillig.ForeignCallResult
	for i := rnd.Intn(3); i > 0; i-- {
		if rnd.Intn(2) == 0 {
			res.Values = append(res.Values, brillig.SingleValue{Value: randomElement(rnd)})
		} else {
			values := make([]field.Element, 1+rnd.Intn(3))
			for j := range values {
				values[j] = randomElement(rnd)
			}
			res.Values = append(res.Values, brillig.ArrayValue{Values: values})
		}
	}
	return res
}

func randomBrillig(rnd *rand.Rand) Brillig {
	var b Brillig
	for i := rnd.Intn(3); i > 0; i-- {
		if rnd.Intn(2) == 0 {
			b.Inputs = append(b.Inputs, SingleInput{Expr: randomExpression(rnd)})
		} else {
			exprs := make([]Expression, 1+rnd.Intn(3))
			for j := range exprs {
				exprs[j] = randomExpression(rnd)
			}
			b.Inputs = append(b.Inputs, ArrayInput{Exprs: exprs})
		}
	}
	for i := 1 + rnd.Intn(5); i > 0; i-- {
		b.Bytecode = append(b.Bytecode, randomBrilligOpcode(rnd))
	}
	for i := rnd.Intn(3); i > 0; i-- {
		if rnd.Intn(2) == 0 {
			b.Outputs = append(b.Outputs, SimpleOutput{Witness: randomWitness(rnd)})
		} else {
			b.Outputs = append(b.Outputs, ArrayOutput{Witnesses: randomWitnesses(rnd, 1+rnd.Intn(3))})
		}
	}
	for i := rnd.Intn(2); i > 0; i-- {
		b.ForeignCallResults = append(b.ForeignCallResults, randomForeignCallResult(rnd))
	}
	b.Predicate = randomOptionalExpression(rnd)
	return b
}

func randomCircuit(rnd *rand.Rand) *Circuit {
	c := &Circuit{CurrentWitnessIndex: randomWitnessBound}

	var initialized []BlockId
	nbOpcodes := 1 + rnd.Intn(8)
	for i := 0; i < nbOpcodes; i++ {
		switch rnd.Intn(5) {
		case 0:
			c.Opcodes = append(c.Opcodes, Arithmetic{Expression: randomExpression(rnd)})
		case 1:
			c.Opcodes = append(c.Opcodes, BlackBoxCall{Call: randomBlackBoxFuncCall(rnd)})
		case 2:
			c.Opcodes = append(c.Opcodes, randomBrillig(rnd))
		case 3:
			block := BlockId(rnd.Intn(8))
			initialized = append(initialized, block)
			c.Opcodes = append(c.Opcodes, MemoryInit{Block: block, Init: randomWitnesses(rnd, 1+rnd.Intn(4))})
		default:
			if len(initialized) == 0 {
				c.Opcodes = append(c.Opcodes, Arithmetic{Expression: randomExpression(rnd)})
				continue
			}
			block := initialized[rnd.Intn(len(initialized))]
			var op MemOp
			if rnd.Intn(2) == 0 {
				op = MemRead{Index: randomExpression(rnd), Destination: randomWitness(rnd)}
			} else {
				op = MemWrite{Index: randomExpression(rnd), Value: randomExpression(rnd)}
			}
			c.Opcodes = append(c.Opcodes, MemoryOp{Block: block, Op: op, Predicate: randomOptionalExpression(rnd)})
		}
	}

	for i := rnd.Intn(8); i > 0; i-- {
		c.PrivateParameters.Insert(randomWitness(rnd))
	}
	for i := rnd.Intn(4); i > 0; i-- {
		c.ReturnValues.Insert(randomWitness(rnd))
	}
	return c
}
