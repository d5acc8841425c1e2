package utils

// A simple bit masking utility.  Session options carry several small
// masks (proximity, transports, traffic) that only ever get intersected,
// split for display, or checked for a single set bit.
type BitMask uint64

const (
	EmptyBitMask BitMask = 0
)

// Returns true if the two masks share at least one bit.
func (b BitMask) Matches(flag BitMask) bool {
	return b&flag != 0
}

// Returns the bits common to both masks.
func (b BitMask) Intersect(flag BitMask) BitMask {
	return b & flag
}

// Returns true if exactly one bit is set.
func (b BitMask) IsSingle() bool {
	return b != 0 && b&(b-1) == 0
}

// Splits a mask into its component bits, lowest bit first.
func SplitMask(val BitMask) []BitMask {
	ret := []BitMask{}
	for i := uint(0); val != 0; i, val = i+1, val>>1 {
		if val&0x01 == 0 {
			continue
		}

		ret = append(ret, BitMask(1)<<i)
	}

	return ret
}
