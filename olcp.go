package ots

import "fmt"

// OLCPOpcode identifies an Object List Control Point command (spec.md §4.3).
type OLCPOpcode byte

const (
	OLCPFirst     OLCPOpcode = 0x01
	OLCPLast      OLCPOpcode = 0x02
	OLCPPrevious  OLCPOpcode = 0x03
	OLCPNext      OLCPOpcode = 0x04
	OLCPGoTo      OLCPOpcode = 0x05
	OLCPOrder     OLCPOpcode = 0x06
	OLCPNumberOf  OLCPOpcode = 0x07
	OLCPClearMark OLCPOpcode = 0x08
	olcpResponse  OLCPOpcode = 0x70
)

// OLCPResultCode is the one-byte result code echoed in an OLCP response
// (spec.md §4.3).
type OLCPResultCode byte

const (
	OLCPSuccess               OLCPResultCode = 0x01
	OLCPOperationNotSupported OLCPResultCode = 0x02
	OLCPInvalidParameter      OLCPResultCode = 0x03
	OLCPOperationFailed       OLCPResultCode = 0x04
	OLCPOutOfBounds           OLCPResultCode = 0x05
	OLCPTooManyObjects        OLCPResultCode = 0x06
	OLCPNoObject              OLCPResultCode = 0x07
	OLCPObjectIDNotFound      OLCPResultCode = 0x08
)

func (rc OLCPResultCode) String() string {
	switch rc {
	case OLCPSuccess:
		return "Success"
	case OLCPOperationNotSupported:
		return "OperationNotSupported"
	case OLCPInvalidParameter:
		return "InvalidParameter"
	case OLCPOperationFailed:
		return "OperationFailed"
	case OLCPOutOfBounds:
		return "OutOfBounds"
	case OLCPTooManyObjects:
		return "TooManyObjects"
	case OLCPNoObject:
		return "NoObject"
	case OLCPObjectIDNotFound:
		return "ObjectIdNotFound"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", byte(rc))
	}
}

// olcpCapability maps each gated OLCP opcode to the List Feature bit that
// must be set before the client will put the command on the wire (spec.md
// §4.3 "Capability gating", Design Note 9.1). First/Last/Previous/Next are
// unconditional and have no entry here.
var olcpCapability = map[OLCPOpcode]ListFeatures{
	OLCPGoTo:      ListFeatureGoTo,
	OLCPOrder:     ListFeatureOrder,
	OLCPNumberOf:  ListFeatureNumberOf,
	OLCPClearMark: ListFeatureClearMark,
}

// encodeOLCPRequest builds the wire bytes for an OLCP request. params is
// opcode-specific and already validated by the caller in navigation.go.
func encodeOLCPRequest(op OLCPOpcode, params []byte) []byte {
	return append([]byte{byte(op)}, params...)
}

func encodeOLCPGoTo(id ObjectID) []byte {
	return encodeOLCPRequest(OLCPGoTo, appendID48(nil, id))
}

func encodeOLCPOrder(o SortOrder) []byte {
	return encodeOLCPRequest(OLCPOrder, []byte{byte(o)})
}

// olcpResponseDecoded is the decoded, not-yet-error-mapped OLCP response.
type olcpResponseDecoded struct {
	reqOpcode OLCPOpcode
	result    OLCPResultCode
	payload   []byte
}

// decodeOLCPResponse decodes the common OLCP response shape (spec.md §4.3).
// It does not convert a non-success result into an *Error — callers decide
// whether that's a hard error or a recoverable boolean per §4.7/§7.
func decodeOLCPResponse(b []byte) (olcpResponseDecoded, error) {
	raw, err := decodeRawResponse(b, olcpResponseMarker)
	if err != nil {
		return olcpResponseDecoded{}, err
	}
	return olcpResponseDecoded{
		reqOpcode: OLCPOpcode(raw.reqOpcode),
		result:    OLCPResultCode(raw.result),
		payload:   raw.payload,
	}, nil
}

// decodeOLCPNumberOf decodes the 4-byte LE count that follows a successful
// NumberOf response. spec.md §9 resolves the offset ambiguity: the count
// starts at byte index 3 (after marker, echoed opcode, result code), the
// SIG-canonical layout — decodeRawResponse already splits the payload there,
// so this is simply the first 4 bytes of payload.
func decodeOLCPNumberOf(payload []byte) (uint32, error) {
	return le32(payload)
}
