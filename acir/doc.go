// Package acir models arithmetic circuits in the intermediate
// representation exchanged between the circuit compiler and constraint
// solvers, and implements their canonical wire format.
//
// A Circuit aggregates an ordered opcode sequence — arithmetic constraint
// rows, black-box primitive calls, embedded Brillig programs and memory
// block accesses — together with its witness bookkeeping. Serialization is
// byte-exact and deterministic: the same circuit value always encodes to
// the same bytes, on every machine, so the byte form can be hashed, cached
// and decoded by independent implementations in other runtimes.
//
// The canonical byte form (WriteRawTo) is wrapped in a deterministic gzip
// envelope (WriteTo) for transport, and optionally in standard base64
// (EncodeToString) for embedding in text.
package acir
