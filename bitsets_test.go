package ots

import "testing"

func TestPropertiesRoundTrip(t *testing.T) {
	p := PropertyRead | PropertyWrite | PropertyMark
	got, err := decodeProperties(encodeProperties(p))
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("round trip mismatch: got %#x want %#x", got, p)
	}
}

func TestPropertiesUndefinedBit(t *testing.T) {
	_, err := decodeProperties([]byte{0, 0, 0, 0x80})
	bp, ok := err.(BadProperties)
	if !ok {
		t.Fatalf("expected BadProperties, got %v (%T)", err, err)
	}
	if bp.Bits == 0 {
		t.Fatalf("expected nonzero undefined bits")
	}
}

func TestFeaturesRoundTrip(t *testing.T) {
	f := Features{
		Action: ActionFeatureRead | ActionFeatureWrite | ActionFeatureCheckSum,
		List:   ListFeatureGoTo | ListFeatureNumberOf,
	}
	b := make([]byte, 0, featuresLen)
	b = appendLE32(b, uint32(f.Action))
	b = appendLE32(b, uint32(f.List))

	got, err := decodeFeatures(b)
	if err != nil {
		t.Fatal(err)
	}
	if got != f {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, f)
	}
}

func TestActionFeaturesUndefinedBit(t *testing.T) {
	_, err := decodeActionFeatures([]byte{0, 0, 0, 0x80})
	if _, ok := err.(BadActionFeatures); !ok {
		t.Fatalf("expected BadActionFeatures, got %v (%T)", err, err)
	}
}

func TestListFeaturesUndefinedBit(t *testing.T) {
	_, err := decodeListFeatures([]byte{0x10, 0, 0, 0})
	if _, ok := err.(BadListFeatures); !ok {
		t.Fatalf("expected BadListFeatures, got %v (%T)", err, err)
	}
}

func TestDirFlagsUndefinedBit(t *testing.T) {
	_, err := decodeDirFlags(1 << 6) // bit 6 reserved
	if _, ok := err.(BadDirFlags); !ok {
		t.Fatalf("expected BadDirFlags, got %v (%T)", err, err)
	}
}

func TestDirFlagsValidCombination(t *testing.T) {
	f, err := decodeDirFlags(byte(DirFlagTypeUUID128 | DirFlagHasProperties))
	if err != nil {
		t.Fatal(err)
	}
	if !f.Has(DirFlagTypeUUID128) || !f.Has(DirFlagHasProperties) {
		t.Fatalf("unexpected flags %#x", f)
	}
	if f.Has(DirFlagHasCurrentSize) {
		t.Fatalf("unexpected HasCurrentSize bit")
	}
}

func TestSizesRoundTrip(t *testing.T) {
	s := Sizes{Current: 10, Allocated: 1024}
	got, err := decodeSizes(encodeSizes(s))
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, s)
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	dt := DateTime{Year: 2024, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 58}
	got, err := decodeDateTime(encodeDateTime(dt))
	if err != nil {
		t.Fatal(err)
	}
	if got != dt {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, dt)
	}
}
