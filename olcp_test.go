package ots

import "testing"

func TestEncodeOLCPGoTo(t *testing.T) {
	req := encodeOLCPGoTo(ObjectID(0x010203040506))
	if OLCPOpcode(req[0]) != OLCPGoTo {
		t.Fatalf("expected opcode %#x, got %#x", OLCPGoTo, req[0])
	}
	id, err := decodeID48(req[1:])
	if err != nil {
		t.Fatal(err)
	}
	if id != ObjectID(0x010203040506) {
		t.Fatalf("id mismatch: %#x", id)
	}
}

func TestDecodeOLCPNumberOfResponse(t *testing.T) {
	// spec.md §9: the count starts at byte index 3 of the response (marker,
	// echoed opcode, result), i.e. the first 4 bytes of the decoded payload.
	raw := []byte{olcpResponseMarker, byte(OLCPNumberOf), byte(OLCPSuccess), 0x07, 0x00, 0x00, 0x00}
	resp, err := decodeOLCPResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	n, err := decodeOLCPNumberOf(resp.payload)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("expected count 7, got %d", n)
	}
}

func TestOLCPResultCodeString(t *testing.T) {
	if OLCPObjectIDNotFound.String() != "ObjectIdNotFound" {
		t.Fatalf("unexpected String(): %s", OLCPObjectIDNotFound.String())
	}
}

func TestOLCPCapabilityTableOmitsUnconditionalOpcodes(t *testing.T) {
	for _, op := range []OLCPOpcode{OLCPFirst, OLCPLast, OLCPPrevious, OLCPNext} {
		if _, gated := olcpCapability[op]; gated {
			t.Fatalf("opcode %#x should be unconditional, found in capability table", op)
		}
	}
	for _, op := range []OLCPOpcode{OLCPGoTo, OLCPOrder, OLCPNumberOf, OLCPClearMark} {
		if _, gated := olcpCapability[op]; !gated {
			t.Fatalf("opcode %#x should be capability-gated", op)
		}
	}
}
