package ots

import (
	"github.com/satori/go.uuid"
)

// UUID wraps a 128-bit Bluetooth attribute UUID. The wire forms in OTS are
// 2, 4, or 16 little-endian bytes (spec.md §3); 2- and 4-byte forms are
// promoted to 128 bits by combining with the Bluetooth base UUID.
type UUID struct {
	v uuid.UUID
}

// bluetoothBaseUUID is 00000000-0000-1000-8000-00805F9B34FB (spec.md §3).
var bluetoothBaseUUID = uuid.UUID{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0x80, 0x5F, 0x9B, 0x34, 0xFB,
}

// UUID16 promotes a 16-bit attribute UUID slot to the full Bluetooth UUID.
func UUID16(v uint16) UUID {
	return UUID32(uint32(v))
}

// UUID32 promotes a 32-bit attribute UUID slot to the full Bluetooth UUID.
func UUID32(v uint32) UUID {
	u := bluetoothBaseUUID
	u[0] = byte(v >> 24)
	u[1] = byte(v >> 16)
	u[2] = byte(v >> 8)
	u[3] = byte(v)
	return UUID{v: u}
}

// UUID128 wraps an already-128-bit UUID value with no promotion.
func UUID128(v uuid.UUID) UUID {
	return UUID{v: v}
}

// Equal reports whether two UUIDs are the same 128-bit value.
func (u UUID) Equal(o UUID) bool {
	return u.v == o.v
}

// Bytes returns the canonical big-endian (RFC 4122) 16-byte form of the
// UUID. Use WireBytes128 for the little-endian wire form OTS transmits.
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u.v.Bytes())
	return b
}

// WireBytes128 returns the 16-byte little-endian wire form, the form always
// used to serialize an OACP Create parameter (spec.md §4.3) and the long
// form of the Object Type characteristic.
func (u UUID) WireBytes128() []byte {
	return reverseBytes(u.Bytes())
}

// String returns the canonical hyphenated hex representation.
func (u UUID) String() string { return u.v.String() }

// decodeUUID decodes a 2-, 4-, or 16-byte little-endian UUID wire form,
// promoting 2- and 4-byte forms via the Bluetooth base UUID. Any other
// length yields BadUUIDSize.
func decodeUUID(b []byte) (UUID, error) {
	switch len(b) {
	case 2:
		v := uint16(b[0]) | uint16(b[1])<<8
		return UUID16(v), nil
	case 4:
		v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		return UUID32(v), nil
	case 16:
		rev := reverseBytes(b)
		u, err := uuid.FromBytes(rev)
		if err != nil {
			return UUID{}, BadUUIDSize{Size: len(b)}
		}
		return UUID{v: u}, nil
	default:
		return UUID{}, BadUUIDSize{Size: len(b)}
	}
}

// encodeUUID128 serializes u as the 16-byte little-endian wire form, the
// form OACP Create always uses regardless of whether a shorter form exists
// (spec.md §4.3, §8 invariant "Create always serializes a 16-byte UUID").
func encodeUUID128(u UUID) []byte {
	return u.WireBytes128()
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
