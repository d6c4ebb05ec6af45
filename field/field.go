// Package field implements the canonical byte codec for elements of the
// bn254 scalar field, the native field of the circuit format.
//
// An element's canonical encoding is its value as a fixed-width big-endian
// integer strictly below the field modulus. Two elements are equal iff their
// canonical encodings are equal; decoding rejects any byte string whose
// integer value is not a residue.
package field

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Bytes is the canonical encoding width: ceil(bits(modulus) / 8).
const Bytes = fr.Bytes

// ErrNonCanonical is returned by SetBytes when the input, read as a
// big-endian integer, is not strictly below the field modulus.
var ErrNonCanonical = errors.New("field: non-canonical element encoding")

// Element is an element of the bn254 scalar field.
//
// The zero value is the field's zero. Element is a value type; methods
// return new elements and never mutate the receiver unless they take a
// pointer receiver.
type Element struct {
	e fr.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var e fr.Element
	e.SetOne()
	return Element{e}
}

// FromUint64 returns the field element congruent to v.
func FromUint64(v uint64) Element {
	var e fr.Element
	e.SetUint64(v)
	return Element{e}
}

// FromBigInt returns the field element congruent to v (mod modulus).
func FromBigInt(v *big.Int) Element {
	var e fr.Element
	e.SetBigInt(v)
	return Element{e}
}

// Modulus returns the field modulus as a new big.Int.
func Modulus() *big.Int {
	return fr.Modulus()
}

// MaxNumBits returns the bit length of the modulus, i.e. the maximum number
// of bits a canonical residue may occupy.
func MaxNumBits() uint32 {
	return uint32(fr.Bits)
}

// Bytes returns the canonical fixed-width big-endian encoding of e.
func (z Element) Bytes() [Bytes]byte {
	return z.e.Bytes()
}

// SetBytes decodes a canonical encoding into z. It fails with
// ErrNonCanonical if b is not exactly Bytes long or encodes an integer
// greater than or equal to the modulus. This is the codec's only failure
// mode.
func (z *Element) SetBytes(b []byte) error {
	if err := z.e.SetBytesCanonical(b); err != nil {
		return ErrNonCanonical
	}
	return nil
}

// Add returns z + other.
func (z Element) Add(other Element) Element {
	var r fr.Element
	r.Add(&z.e, &other.e)
	return Element{r}
}

// Sub returns z - other.
func (z Element) Sub(other Element) Element {
	var r fr.Element
	r.Sub(&z.e, &other.e)
	return Element{r}
}

// Mul returns z * other.
func (z Element) Mul(other Element) Element {
	var r fr.Element
	r.Mul(&z.e, &other.e)
	return Element{r}
}

// Neg returns -z.
func (z Element) Neg() Element {
	var r fr.Element
	r.Neg(&z.e)
	return Element{r}
}

// IsZero reports whether z is the additive identity.
func (z Element) IsZero() bool {
	return z.e.IsZero()
}

// IsOne reports whether z is the multiplicative identity.
func (z Element) IsOne() bool {
	return z.e.IsOne()
}

// Equal reports whether z and other are the same residue.
func (z Element) Equal(other Element) bool {
	return z.e.Equal(&other.e)
}

// BigInt returns the residue as a new big.Int.
func (z Element) BigInt() *big.Int {
	var r big.Int
	z.e.BigInt(&r)
	return &r
}

func (z Element) String() string {
	return z.e.String()
}
