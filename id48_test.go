package ots

import "testing"

func TestID48RoundTrip(t *testing.T) {
	cases := []ObjectID{0, 1, 0xff, 0x0102030405, id48Max}
	for _, id := range cases {
		b := appendID48(nil, id)
		if len(b) != id48Len {
			t.Fatalf("appendID48(%d): got %d bytes, want %d", id, len(b), id48Len)
		}
		got, err := decodeID48(b)
		if err != nil {
			t.Fatalf("decodeID48(%d): unexpected error %v", id, err)
		}
		if got != id {
			t.Fatalf("round trip mismatch: put %d got %d", id, got)
		}
	}
}

func TestID48NotEnoughData(t *testing.T) {
	_, err := decodeID48([]byte{1, 2, 3})
	nd, ok := err.(NotEnoughData)
	if !ok {
		t.Fatalf("expected NotEnoughData, got %v (%T)", err, err)
	}
	if nd.Actual != 3 || nd.Needed != id48Len {
		t.Fatalf("unexpected NotEnoughData %+v", nd)
	}
}

func TestID48TooManyData(t *testing.T) {
	_, err := decodeID48(make([]byte, id48Len+1))
	tm, ok := err.(TooManyData)
	if !ok {
		t.Fatalf("expected TooManyData, got %v (%T)", err, err)
	}
	if tm.Max != id48Len {
		t.Fatalf("unexpected TooManyData %+v", tm)
	}
}

func TestEncodeID48TruncatesHighBits(t *testing.T) {
	b := encodeID48(ObjectID(1<<48 + 42))
	got, err := decodeID48(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Fatalf("expected high bits truncated to 42, got %d", got)
	}
}
