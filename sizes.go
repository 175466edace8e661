package ots

import "encoding/binary"

// Sizes is the current/allocated byte-size pair of an object (spec.md §3).
// The invariant Current <= Allocated is not enforced by the decoder — the
// server is authoritative and a violation is a server bug, not a decode
// error.
type Sizes struct {
	Current   uint
	Allocated uint
}

const sizesLen = 8

// decodeSizes decodes the 8-byte {current: u32 LE, allocated: u32 LE} pair.
func decodeSizes(b []byte) (Sizes, error) {
	if len(b) < sizesLen {
		return Sizes{}, NotEnoughData{Actual: len(b), Needed: sizesLen}
	}
	if len(b) > sizesLen {
		return Sizes{}, TooManyData{Actual: len(b), Max: sizesLen}
	}
	return Sizes{
		Current:   uint(binary.LittleEndian.Uint32(b[0:4])),
		Allocated: uint(binary.LittleEndian.Uint32(b[4:8])),
	}, nil
}

func encodeSizes(s Sizes) []byte {
	b := make([]byte, sizesLen)
	binary.LittleEndian.PutUint32(b[0:4], uint32(s.Current))
	binary.LittleEndian.PutUint32(b[4:8], uint32(s.Allocated))
	return b
}
