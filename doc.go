// Package acvm hosts the ACIR intermediate representation: an arithmetic
// circuit model over the bn254 scalar field with a versioned, byte-exact
// binary serialization.
//
// The acir package defines the circuit container, its opcode catalogue and
// the wire codec; the brillig package defines the unconstrained-runtime
// sub-format embedded in Brillig opcodes; the field package wraps the
// canonical field-element encoding.
package acvm
