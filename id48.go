package ots

// ObjectID is a 48-bit OTS object identifier widened to 64 bits at the API
// boundary. Zero is reserved for the directory object (spec.md §3).
type ObjectID uint64

// DirectoryObjectID is the well-known identifier of the object whose payload
// is the concatenated directory listing (spec.md §2 glossary, §4.2).
const DirectoryObjectID ObjectID = 0

const id48Len = 6
const id48Max = 1<<48 - 1

// decodeID48 decodes a little-endian 48-bit identifier. It accepts exactly
// 6 bytes: fewer yields NotEnoughData, more yields TooManyData.
func decodeID48(b []byte) (ObjectID, error) {
	if len(b) < id48Len {
		return 0, NotEnoughData{Actual: len(b), Needed: id48Len}
	}
	if len(b) > id48Len {
		return 0, TooManyData{Actual: len(b), Max: id48Len}
	}
	var v uint64
	for i := id48Len - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return ObjectID(v), nil
}

// encodeID48 encodes the low 48 bits of id as 6 little-endian bytes. The
// caller must ensure id fits in 48 bits; encoding is infallible and silently
// truncates high bits otherwise, per spec.md §4.1.
func encodeID48(id ObjectID) [id48Len]byte {
	v := uint64(id) & id48Max
	var out [id48Len]byte
	for i := 0; i < id48Len; i++ {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

func appendID48(dst []byte, id ObjectID) []byte {
	b := encodeID48(id)
	return append(dst, b[:]...)
}
