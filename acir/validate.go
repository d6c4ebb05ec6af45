package acir

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Validate checks the cross-component invariants the wire format itself
// does not enforce:
//
//   - every witness referenced by an opcode, PrivateParameters or
//     ReturnValues is strictly below CurrentWitnessIndex;
//   - every MemoryOp's block is introduced by a MemoryInit earlier in the
//     opcode sequence.
//
// A decoded circuit can violate these while being perfectly well-formed on
// the wire; solvers must reject such circuits, and decoders may opt in to
// rejecting them early via WithStrictValidation.
func (c *Circuit) Validate() error {
	v := &validator{bound: c.CurrentWitnessIndex, initialized: bitset.New(64)}

	for i, op := range c.Opcodes {
		if err := v.opcode(op); err != nil {
			return fmt.Errorf("opcode %d: %w", i, err)
		}
	}
	for _, w := range c.PrivateParameters {
		if err := v.witness(w); err != nil {
			return fmt.Errorf("private parameters: %w", err)
		}
	}
	for _, w := range c.ReturnValues {
		if err := v.witness(w); err != nil {
			return fmt.Errorf("return values: %w", err)
		}
	}
	return nil
}

type validator struct {
	bound       uint32
	initialized *bitset.BitSet
}

func (v *validator) witness(w Witness) error {
	if uint32(w) >= v.bound {
		return fmt.Errorf("witness %d >= %d: %w", w, v.bound, ErrInvalidWitnessIndex)
	}
	return nil
}

func (v *validator) expression(e *Expression) error {
	for _, t := range e.MulTerms {
		if err := v.witness(t.WitnessA); err != nil {
			return err
		}
		if err := v.witness(t.WitnessB); err != nil {
			return err
		}
	}
	for _, t := range e.LinearTerms {
		if err := v.witness(t.Witness); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) optionalExpression(e *Expression) error {
	if e == nil {
		return nil
	}
	return v.expression(e)
}

func (v *validator) functionInput(in FunctionInput) error {
	return v.witness(in.Witness)
}

func (v *validator) functionInputs(ins []FunctionInput) error {
	for _, in := range ins {
		if err := v.functionInput(in); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) witnesses(ws []Witness) error {
	for _, w := range ws {
		if err := v.witness(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) opcode(op Opcode) error {
	switch o := op.(type) {
	case Arithmetic:
		return v.expression(&o.Expression)
	case BlackBoxCall:
		return v.blackBox(o.Call)
	case Brillig:
		return v.brillig(&o)
	case MemoryInit:
		v.initialized.Set(uint(o.Block))
		return v.witnesses(o.Init)
	case MemoryOp:
		if !v.initialized.Test(uint(o.Block)) {
			return fmt.Errorf("block %d: %w", o.Block, ErrUninitializedBlock)
		}
		if err := v.memOp(o.Op); err != nil {
			return err
		}
		return v.optionalExpression(o.Predicate)
	default:
		return fmt.Errorf("unexpected opcode type %T", op)
	}
}

func (v *validator) memOp(op MemOp) error {
	switch o := op.(type) {
	case MemRead:
		if err := v.expression(&o.Index); err != nil {
			return err
		}
		return v.witness(o.Destination)
	case MemWrite:
		if err := v.expression(&o.Index); err != nil {
			return err
		}
		return v.expression(&o.Value)
	default:
		return fmt.Errorf("unexpected mem op type %T", op)
	}
}

func (v *validator) brillig(b *Brillig) error {
	for _, in := range b.Inputs {
		switch i := in.(type) {
		case SingleInput:
			if err := v.expression(&i.Expr); err != nil {
				return err
			}
		case ArrayInput:
			for j := range i.Exprs {
				if err := v.expression(&i.Exprs[j]); err != nil {
					return err
				}
			}
		}
	}
	for _, out := range b.Outputs {
		switch o := out.(type) {
		case SimpleOutput:
			if err := v.witness(o.Witness); err != nil {
				return err
			}
		case ArrayOutput:
			if err := v.witnesses(o.Witnesses); err != nil {
				return err
			}
		}
	}
	return v.optionalExpression(b.Predicate)
}

func (v *validator) blackBox(call BlackBoxFuncCall) error {
	switch c := call.(type) {
	case And:
		if err := v.functionInput(c.Lhs); err != nil {
			return err
		}
		if err := v.functionInput(c.Rhs); err != nil {
			return err
		}
		return v.witness(c.Output)
	case Xor:
		if err := v.functionInput(c.Lhs); err != nil {
			return err
		}
		if err := v.functionInput(c.Rhs); err != nil {
			return err
		}
		return v.witness(c.Output)
	case RangeCheck:
		return v.functionInput(c.Input)
	case SHA256:
		if err := v.functionInputs(c.Inputs); err != nil {
			return err
		}
		return v.witnesses(c.Outputs)
	case Blake2s:
		if err := v.functionInputs(c.Inputs); err != nil {
			return err
		}
		return v.witnesses(c.Outputs)
	case SchnorrVerify:
		if err := v.functionInput(c.PublicKeyX); err != nil {
			return err
		}
		if err := v.functionInput(c.PublicKeyY); err != nil {
			return err
		}
		if err := v.functionInputs(c.Signature); err != nil {
			return err
		}
		if err := v.functionInputs(c.Message); err != nil {
			return err
		}
		return v.witness(c.Output)
	case Pedersen:
		if err := v.functionInputs(c.Inputs); err != nil {
			return err
		}
		return v.witnesses(c.Outputs[:])
	case HashToField128Security:
		if err := v.functionInputs(c.Inputs); err != nil {
			return err
		}
		return v.witness(c.Output)
	case EcdsaSecp256k1:
		for _, ins := range [][]FunctionInput{c.PublicKeyX, c.PublicKeyY, c.Signature, c.HashedMessage} {
			if err := v.functionInputs(ins); err != nil {
				return err
			}
		}
		return v.witness(c.Output)
	case FixedBaseScalarMul:
		if err := v.functionInput(c.Low); err != nil {
			return err
		}
		if err := v.functionInput(c.High); err != nil {
			return err
		}
		return v.witnesses(c.Outputs[:])
	case Keccak256:
		if err := v.functionInputs(c.Inputs); err != nil {
			return err
		}
		return v.witnesses(c.Outputs)
	case RecursiveAggregation:
		for _, ins := range [][]FunctionInput{c.VerificationKey, c.Proof, c.PublicInputs} {
			if err := v.functionInputs(ins); err != nil {
				return err
			}
		}
		if err := v.functionInput(c.KeyHash); err != nil {
			return err
		}
		return v.witnesses(c.OutputAggregationObject)
	default:
		return fmt.Errorf("unexpected black box call type %T", call)
	}
}
