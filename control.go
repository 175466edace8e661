package ots

import "encoding/binary"

// Control-point response markers (spec.md §4.3): every OACP response starts
// with 0x60, every OLCP response with 0x70, followed by the echoed request
// opcode and a one-byte result code.
const (
	oacpResponseMarker byte = 0x60
	olcpResponseMarker byte = 0x70
)

// minResponseLen is the shortest valid control-point response: marker(1) +
// echoed opcode(1) + result code(1) (spec.md §4.3, §8 invariant
// "min_wire_length(response) >= 3").
const minResponseLen = 3

// rawResponse is the generic shape shared by OACP and OLCP responses before
// either protocol's result-code taxonomy is applied (Design Note 9.4).
type rawResponse struct {
	reqOpcode byte
	result    byte
	payload   []byte
}

// decodeRawResponse validates the marker and unpacks the common prefix. Both
// oacp.go and olcp.go build their typed response on top of this.
func decodeRawResponse(b []byte, wantMarker byte) (rawResponse, error) {
	if len(b) < minResponseLen {
		return rawResponse{}, NotEnoughData{Actual: len(b), Needed: minResponseLen}
	}
	if b[0] != wantMarker {
		return rawResponse{}, BadResponse{Reason: "unexpected response marker"}
	}
	return rawResponse{reqOpcode: b[1], result: b[2], payload: b[3:]}, nil
}

func le32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, NotEnoughData{Actual: len(b), Needed: 4}
	}
	return binary.LittleEndian.Uint32(b[:4]), nil
}

func appendLE32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// WriteMode is the one-byte OACP Write parameter (spec.md §4.3): bit 1 is
// Truncate, all other bits reserved and not validated on encode (callers
// construct it through the named constants).
type WriteMode uint8

const (
	WriteModeNone     WriteMode = 0
	WriteModeTruncate WriteMode = 1 << 1
)

// SortOrder is the one-byte OLCP Order parameter (spec.md §4.3).
type SortOrder uint8

const (
	SortOrderNameAsc    SortOrder = 0x01
	SortOrderTypeAsc    SortOrder = 0x02
	SortOrderCurSizeAsc SortOrder = 0x03
	SortOrderCrtTimeAsc SortOrder = 0x04
	SortOrderModTimeAsc SortOrder = 0x05

	SortOrderNameDesc    SortOrder = 0x11
	SortOrderTypeDesc    SortOrder = 0x12
	SortOrderCurSizeDesc SortOrder = 0x13
	SortOrderCrtTimeDesc SortOrder = 0x14
	SortOrderModTimeDesc SortOrder = 0x15
)

func decodeSortOrder(b byte) (SortOrder, error) {
	switch SortOrder(b) {
	case SortOrderNameAsc, SortOrderTypeAsc, SortOrderCurSizeAsc, SortOrderCrtTimeAsc, SortOrderModTimeAsc,
		SortOrderNameDesc, SortOrderTypeDesc, SortOrderCurSizeDesc, SortOrderCrtTimeDesc, SortOrderModTimeDesc:
		return SortOrder(b), nil
	default:
		return 0, BadOpCode{Kind: OpCodeKindSortOrder, Value: b}
	}
}
