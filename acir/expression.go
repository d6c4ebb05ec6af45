package acir

import (
	"cmp"
	"slices"

	"github.com/visoftsolutions/acvm/field"
)

// LinearTerm is coefficient * witness.
type LinearTerm struct {
	Coefficient field.Element
	Witness     Witness
}

// MulTerm is coefficient * witnessA * witnessB. The pair is unordered; the
// canonical form stores WitnessA <= WitnessB.
type MulTerm struct {
	Coefficient field.Element
	WitnessA    Witness
	WitnessB    Witness
}

// Expression is one constraint row: a sparse quadratic polynomial over
// witnesses, asserted to equal zero by an Arithmetic opcode.
//
// Canonical form, which the serializer assumes and the Add* methods
// maintain: mul terms sorted by (WitnessA, WitnessB) with WitnessA <=
// WitnessB, linear terms sorted by witness index, no witness (or witness
// pair) appearing twice, no zero coefficients. Duplicate contributions are
// merged by field addition at construction time; decoders do not
// re-validate.
type Expression struct {
	Constant    field.Element
	MulTerms    []MulTerm
	LinearTerms []LinearTerm
}

// ExpressionFromWitness returns the expression 1 * w.
func ExpressionFromWitness(w Witness) Expression {
	return Expression{LinearTerms: []LinearTerm{{Coefficient: field.One(), Witness: w}}}
}

// ExpressionFromConstant returns the constant expression c.
func ExpressionFromConstant(c field.Element) Expression {
	return Expression{Constant: c}
}

// AddConstant folds c into the constant term.
func (e *Expression) AddConstant(c field.Element) {
	e.Constant = e.Constant.Add(c)
}

// AddTerm folds c * w into the expression, merging with an existing term
// for w and dropping the term if the merged coefficient is zero.
func (e *Expression) AddTerm(c field.Element, w Witness) {
	i, found := slices.BinarySearchFunc(e.LinearTerms, w, func(t LinearTerm, w Witness) int {
		return cmp.Compare(t.Witness, w)
	})
	if found {
		merged := e.LinearTerms[i].Coefficient.Add(c)
		if merged.IsZero() {
			e.LinearTerms = slices.Delete(e.LinearTerms, i, i+1)
		} else {
			e.LinearTerms[i].Coefficient = merged
		}
		return
	}
	if c.IsZero() {
		return
	}
	e.LinearTerms = slices.Insert(e.LinearTerms, i, LinearTerm{Coefficient: c, Witness: w})
}

// AddMulTerm folds c * a * b into the expression; the (a, b) pair is
// unordered.
func (e *Expression) AddMulTerm(c field.Element, a, b Witness) {
	if a > b {
		a, b = b, a
	}
	i, found := slices.BinarySearchFunc(e.MulTerms, MulTerm{WitnessA: a, WitnessB: b}, compareMulTerms)
	if found {
		merged := e.MulTerms[i].Coefficient.Add(c)
		if merged.IsZero() {
			e.MulTerms = slices.Delete(e.MulTerms, i, i+1)
		} else {
			e.MulTerms[i].Coefficient = merged
		}
		return
	}
	if c.IsZero() {
		return
	}
	e.MulTerms = slices.Insert(e.MulTerms, i, MulTerm{Coefficient: c, WitnessA: a, WitnessB: b})
}

func compareMulTerms(t, o MulTerm) int {
	if c := cmp.Compare(t.WitnessA, o.WitnessA); c != 0 {
		return c
	}
	return cmp.Compare(t.WitnessB, o.WitnessB)
}

// IsConstant reports whether the expression has no witness terms.
func (e *Expression) IsConstant() bool {
	return len(e.MulTerms) == 0 && len(e.LinearTerms) == 0
}

// Equal reports structural equality of two canonical expressions.
func (e *Expression) Equal(other *Expression) bool {
	return e.Constant.Equal(other.Constant) &&
		slices.Equal(e.MulTerms, other.MulTerms) &&
		slices.Equal(e.LinearTerms, other.LinearTerms)
}
