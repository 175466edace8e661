package ots

import "encoding/binary"

// PropertyFlags is the 32-bit Object Properties bitset (spec.md §3): one bit
// each for Delete, Execute, Read, Write, Append, Truncate, Patch, Mark, from
// bit 0 up. Any other bit set is a decode error.
type PropertyFlags uint32

const (
	PropertyDelete PropertyFlags = 1 << iota
	PropertyExecute
	PropertyRead
	PropertyWrite
	PropertyAppend
	PropertyTruncate
	PropertyPatch
	PropertyMark

	propertyDefinedBits = PropertyDelete | PropertyExecute | PropertyRead |
		PropertyWrite | PropertyAppend | PropertyTruncate | PropertyPatch | PropertyMark
)

// Has reports whether all bits in want are set.
func (p PropertyFlags) Has(want PropertyFlags) bool { return p&want == want }

const propertiesLen = 4

// decodeProperties decodes a 4-byte little-endian Property Flags word.
// Undefined bits set yields BadProperties.
func decodeProperties(b []byte) (PropertyFlags, error) {
	if len(b) < propertiesLen {
		return 0, NotEnoughData{Actual: len(b), Needed: propertiesLen}
	}
	if len(b) > propertiesLen {
		return 0, TooManyData{Actual: len(b), Max: propertiesLen}
	}
	v := PropertyFlags(binary.LittleEndian.Uint32(b))
	if v&^propertyDefinedBits != 0 {
		return 0, BadProperties{Bits: uint32(v &^ propertyDefinedBits)}
	}
	return v, nil
}

func encodeProperties(p PropertyFlags) []byte {
	b := make([]byte, propertiesLen)
	binary.LittleEndian.PutUint32(b, uint32(p))
	return b
}
