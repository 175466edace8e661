package ots

import "testing"

func TestEncodeDecodeOACPCheckSumRequest(t *testing.T) {
	req := encodeOACPCheckSum(100, 50)
	if OACPOpcode(req[0]) != OACPCheckSum {
		t.Fatalf("expected opcode %#x, got %#x", OACPCheckSum, req[0])
	}
	off, err := le32(req[1:5])
	if err != nil || off != 100 {
		t.Fatalf("offset mismatch: %d, err %v", off, err)
	}
}

func TestDecodeOACPResponseSuccess(t *testing.T) {
	// marker, echoed opcode (CheckSum), result Success, 4-byte checksum payload.
	raw := []byte{oacpResponseMarker, byte(OACPCheckSum), byte(OACPSuccess), 0xef, 0xbe, 0xad, 0xde}
	resp, err := decodeOACPResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if resp.reqOpcode != OACPCheckSum || resp.result != OACPSuccess {
		t.Fatalf("unexpected decode: %+v", resp)
	}
	sum, err := decodeOACPCheckSum(resp.payload)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 0xdeadbeef {
		t.Fatalf("checksum mismatch: %#x", sum)
	}
}

func TestOACPCreateAlways128Bit(t *testing.T) {
	req := encodeOACPCreate(4096, UUID16(0x1234))
	// opcode(1) + size(4) + uuid(16)
	if len(req) != 1+4+16 {
		t.Fatalf("unexpected Create request length %d", len(req))
	}
}

func TestOACPResultCodeString(t *testing.T) {
	if OACPInvalidObject.String() != "InvalidObject" {
		t.Fatalf("unexpected String(): %s", OACPInvalidObject.String())
	}
	if OACPResultCode(0xff).String() == "" {
		t.Fatalf("expected non-empty fallback string for unknown result code")
	}
}
