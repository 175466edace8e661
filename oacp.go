package ots

import "fmt"

// OACPOpcode identifies an Object Action Control Point command (spec.md
// §4.3).
type OACPOpcode byte

const (
	OACPCreate   OACPOpcode = 0x01
	OACPDelete   OACPOpcode = 0x02
	OACPCheckSum OACPOpcode = 0x03
	OACPExecute  OACPOpcode = 0x04
	OACPRead     OACPOpcode = 0x05
	OACPWrite    OACPOpcode = 0x06
	OACPAbort    OACPOpcode = 0x07
	oacpResponse OACPOpcode = 0x60
)

// OACPResultCode is the one-byte result code echoed in an OACP response
// (spec.md §4.3). Values are contiguous from Success through
// OperationFailed.
type OACPResultCode byte

const (
	OACPSuccess               OACPResultCode = 0x01
	OACPOpCodeNotSupported    OACPResultCode = 0x02
	OACPInvalidParameter      OACPResultCode = 0x03
	OACPInsufficientResources OACPResultCode = 0x04
	OACPInvalidObject         OACPResultCode = 0x05
	OACPChannelUnavailable    OACPResultCode = 0x06
	OACPUnsupportedType       OACPResultCode = 0x07
	OACPProcedureNotPermitted OACPResultCode = 0x08
	OACPObjectLocked          OACPResultCode = 0x09
	OACPOperationFailed       OACPResultCode = 0x0a
)

func (rc OACPResultCode) String() string {
	switch rc {
	case OACPSuccess:
		return "Success"
	case OACPOpCodeNotSupported:
		return "OpCodeNotSupported"
	case OACPInvalidParameter:
		return "InvalidParameter"
	case OACPInsufficientResources:
		return "InsufficientResources"
	case OACPInvalidObject:
		return "InvalidObject"
	case OACPChannelUnavailable:
		return "ChannelUnavailable"
	case OACPUnsupportedType:
		return "UnsupportedType"
	case OACPProcedureNotPermitted:
		return "ProcedureNotPermitted"
	case OACPObjectLocked:
		return "ObjectLocked"
	case OACPOperationFailed:
		return "OperationFailed"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", byte(rc))
	}
}

// oacpCapability maps each OACP opcode to the Action Feature bit that must
// be set before the client will put the command on the wire (spec.md §4.3
// "Capability gating", Design Note 9.1).
var oacpCapability = map[OACPOpcode]ActionFeatures{
	OACPCreate:   ActionFeatureCreate,
	OACPDelete:   ActionFeatureDelete,
	OACPCheckSum: ActionFeatureCheckSum,
	OACPExecute:  ActionFeatureExecute,
	OACPRead:     ActionFeatureRead,
	OACPWrite:    ActionFeatureWrite,
	OACPAbort:    ActionFeatureAbort,
}

func encodeOACPRequest(op OACPOpcode, params []byte) []byte {
	return append([]byte{byte(op)}, params...)
}

// encodeOACPCreate serializes a Create request: 4-byte size + a 16-byte UUID
// (spec.md §4.3 — "always serialized as 16 bytes, never the short form").
func encodeOACPCreate(size uint32, typ UUID) []byte {
	b := appendLE32(nil, size)
	b = append(b, encodeUUID128(typ)...)
	return encodeOACPRequest(OACPCreate, b)
}

func encodeOACPCheckSum(offset, length uint32) []byte {
	b := appendLE32(nil, offset)
	b = appendLE32(b, length)
	return encodeOACPRequest(OACPCheckSum, b)
}

func encodeOACPExecute(param []byte) []byte {
	return encodeOACPRequest(OACPExecute, param)
}

func encodeOACPRead(offset, length uint32) []byte {
	b := appendLE32(nil, offset)
	b = appendLE32(b, length)
	return encodeOACPRequest(OACPRead, b)
}

func encodeOACPWrite(offset, length uint32, mode WriteMode) []byte {
	b := appendLE32(nil, offset)
	b = appendLE32(b, length)
	b = append(b, byte(mode))
	return encodeOACPRequest(OACPWrite, b)
}

func encodeOACPDelete() []byte { return encodeOACPRequest(OACPDelete, nil) }
func encodeOACPAbort() []byte  { return encodeOACPRequest(OACPAbort, nil) }

// oacpResponseDecoded is the decoded, not-yet-error-mapped OACP response.
type oacpResponseDecoded struct {
	reqOpcode OACPOpcode
	result    OACPResultCode
	payload   []byte
}

func decodeOACPResponse(b []byte) (oacpResponseDecoded, error) {
	raw, err := decodeRawResponse(b, oacpResponseMarker)
	if err != nil {
		return oacpResponseDecoded{}, err
	}
	return oacpResponseDecoded{
		reqOpcode: OACPOpcode(raw.reqOpcode),
		result:    OACPResultCode(raw.result),
		payload:   raw.payload,
	}, nil
}

// decodeOACPCheckSum decodes the 4-byte LE checksum value from a successful
// CheckSum response payload (spec.md §4.3).
func decodeOACPCheckSum(payload []byte) (uint32, error) {
	return le32(payload)
}
