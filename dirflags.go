package ots

// DirFlags is the 8-bit per-entry Directory Flags byte (spec.md §3): one bit
// each for TypeUuid128, HasCurrentSize, HasAllocatedSize, HasFirstCreated,
// HasLastModified, HasProperties, with bit 7 reserved as HasExtendedFlags.
// Unknown bits set is a decode error.
type DirFlags uint8

const (
	DirFlagTypeUUID128 DirFlags = 1 << iota
	DirFlagHasCurrentSize
	DirFlagHasAllocatedSize
	DirFlagHasFirstCreated
	DirFlagHasLastModified
	DirFlagHasProperties
	dirFlagReserved6
	DirFlagHasExtendedFlags

	dirFlagDefinedBits = DirFlagTypeUUID128 | DirFlagHasCurrentSize | DirFlagHasAllocatedSize |
		DirFlagHasFirstCreated | DirFlagHasLastModified | DirFlagHasProperties | DirFlagHasExtendedFlags
)

// Has reports whether all bits in want are set.
func (f DirFlags) Has(want DirFlags) bool { return f&want == want }

func decodeDirFlags(b byte) (DirFlags, error) {
	v := DirFlags(b)
	if v&^dirFlagDefinedBits != 0 {
		return 0, BadDirFlags{Bits: uint8(v &^ dirFlagDefinedBits)}
	}
	return v, nil
}
