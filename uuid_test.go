package ots

import "testing"

func TestUUID16Promotion(t *testing.T) {
	got := UUID16(0x1800).String()
	want := "00001800-0000-1000-8000-00805f9b34fb"
	if got != want {
		t.Fatalf("UUID16(0x1800) = %s, want %s", got, want)
	}
}

func TestDecodeUUIDShortForms(t *testing.T) {
	u16, err := decodeUUID([]byte{0x25, 0x18}) // 0x1825 little-endian
	if err != nil {
		t.Fatal(err)
	}
	if !u16.Equal(UUID16(0x1825)) {
		t.Fatalf("decodeUUID 2-byte form mismatch: %s", u16)
	}

	u32, err := decodeUUID([]byte{0x78, 0x56, 0x34, 0x12})
	if err != nil {
		t.Fatal(err)
	}
	if !u32.Equal(UUID32(0x12345678)) {
		t.Fatalf("decodeUUID 4-byte form mismatch: %s", u32)
	}
}

func TestUUID128WireRoundTrip(t *testing.T) {
	orig := UUID16(0x2AC5)
	wire := encodeUUID128(orig)
	if len(wire) != 16 {
		t.Fatalf("expected 16-byte wire form, got %d", len(wire))
	}
	back, err := decodeUUID(wire)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(orig) {
		t.Fatalf("round trip mismatch: %s != %s", back, orig)
	}
}

func TestDecodeUUIDBadSize(t *testing.T) {
	_, err := decodeUUID([]byte{1, 2, 3})
	if _, ok := err.(BadUUIDSize); !ok {
		t.Fatalf("expected BadUUIDSize, got %v (%T)", err, err)
	}
}
