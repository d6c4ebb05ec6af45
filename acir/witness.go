package acir

import "slices"

// Witness is an index into the flat witness vector maintained by the
// solver. It is opaque to the format: the only structure the format relies
// on is the ordering of the underlying integer.
type Witness uint32

// WitnessSet is a duplicate-free set of witnesses iterated in ascending
// index order, whatever order it was built in. The wire format depends on
// this: two producers inserting the same witnesses in different orders must
// serialize the same bytes.
//
// The representation is a sorted slice; mutate it through Insert only.
type WitnessSet []Witness

// PublicInputs marks the witnesses forming a circuit's public interface.
type PublicInputs = WitnessSet

// NewWitnessSet builds a set from ws, deduplicating and sorting.
func NewWitnessSet(ws ...Witness) WitnessSet {
	s := make(WitnessSet, 0, len(ws))
	for _, w := range ws {
		s.Insert(w)
	}
	return s
}

// Insert adds w, keeping the set sorted; inserting an existing witness is a
// no-op.
func (s *WitnessSet) Insert(w Witness) {
	i, found := slices.BinarySearch(*s, w)
	if found {
		return
	}
	*s = slices.Insert(*s, i, w)
}

// Contains reports whether w is in the set.
func (s WitnessSet) Contains(w Witness) bool {
	_, found := slices.BinarySearch(s, w)
	return found
}

// Equal reports whether both sets hold the same witnesses.
func (s WitnessSet) Equal(other WitnessSet) bool {
	return slices.Equal(s, other)
}
