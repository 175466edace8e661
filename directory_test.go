package ots

import "testing"

// buildMinimalEntry builds the smallest legal directory entry: empty name,
// short-form (2-byte) type, no optional tail fields. record_len covers
// itself plus the fixed prefix: 2 + 6 + 1 + 1 + 2 = 12.
func buildMinimalEntry(id ObjectID, typ UUID) []byte {
	var b []byte
	b = append(b, 0, 0) // record_len placeholder
	b = appendID48(b, id)
	b = append(b, 0) // name_len = 0
	b = append(b, 0) // flags = 0 (short-form type, no optional fields)
	b = append(b, typ.decode2ByteForTest()...)

	recordLen := len(b)
	b[0] = byte(recordLen)
	b[1] = byte(recordLen >> 8)
	return b
}

// decode2ByteForTest extracts the 2-byte short form of a base-UUID-promoted
// UUID, for building test fixtures only.
func (u UUID) decode2ByteForTest() []byte {
	b := u.Bytes() // RFC4122 big-endian form; bytes 2-3 hold the promoted 16-bit value
	return []byte{b[3], b[2]}
}

func TestDirectoryIteratorMinimalEntry(t *testing.T) {
	entry := buildMinimalEntry(ObjectID(1), UUID16(0x1234))
	if len(entry) != dirEntryMinLen {
		t.Fatalf("test fixture should be exactly %d bytes, got %d", dirEntryMinLen, len(entry))
	}

	it := NewDirectoryIterator(entry)
	md, ok := it.Next()
	if !ok {
		t.Fatalf("expected one entry, iterator failed: %v", it.Err())
	}
	if md.ID == nil || *md.ID != 1 {
		t.Fatalf("unexpected id: %+v", md.ID)
	}
	if md.Name != "" {
		t.Fatalf("expected empty name, got %q", md.Name)
	}
	if !md.Type.Equal(UUID16(0x1234)) {
		t.Fatalf("unexpected type: %s", md.Type)
	}

	if _, ok := it.Next(); ok {
		t.Fatalf("expected no second entry")
	}
	if it.Err() != nil {
		t.Fatalf("unexpected trailing error: %v", it.Err())
	}
}

func TestDirectoryIteratorTwoEntries(t *testing.T) {
	buf := append(buildMinimalEntry(1, UUID16(0x1111)), buildMinimalEntry(2, UUID16(0x2222))...)
	it := NewDirectoryIterator(buf)

	first, ok := it.Next()
	if !ok || *first.ID != 1 {
		t.Fatalf("unexpected first entry: %+v ok=%v", first, ok)
	}
	second, ok := it.Next()
	if !ok || *second.ID != 2 {
		t.Fatalf("unexpected second entry: %+v ok=%v", second, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected iterator exhausted")
	}
}

func TestDirectoryIteratorOptionalFields(t *testing.T) {
	name := "report.csv"
	flags := DirFlagHasCurrentSize | DirFlagHasAllocatedSize | DirFlagHasLastModified | DirFlagHasProperties

	b := []byte{0, 0} // record_len placeholder
	b = appendID48(b, 42)
	b = append(b, byte(len(name)))
	b = append(b, name...)
	b = append(b, byte(flags))
	b = append(b, UUID16(0x4321).decode2ByteForTest()...)
	b = appendLE32(b, 100)  // current size
	b = appendLE32(b, 200)  // allocated size
	b = append(b, encodeDateTime(DateTime{Year: 2023, Month: 6, Day: 1, Hour: 8})...)
	b = append(b, encodeProperties(PropertyRead|PropertyWrite)...)
	b[0], b[1] = byte(len(b)), byte(len(b)>>8)

	it := NewDirectoryIterator(b)
	md, ok := it.Next()
	if !ok {
		t.Fatalf("decode failed: %v", it.Err())
	}
	if md.Name != name {
		t.Fatalf("name mismatch: %q", md.Name)
	}
	if md.FirstCreated != nil {
		t.Fatalf("expected no FirstCreated (flag not set)")
	}
	if md.LastModified == nil || md.LastModified.Year != 2023 {
		t.Fatalf("unexpected LastModified: %+v", md.LastModified)
	}
	if md.CurrentSize == nil || *md.CurrentSize != 100 {
		t.Fatalf("unexpected CurrentSize: %+v", md.CurrentSize)
	}
	if md.AllocatedSize == nil || *md.AllocatedSize != 200 {
		t.Fatalf("unexpected AllocatedSize: %+v", md.AllocatedSize)
	}
	if !md.Properties.Has(PropertyRead | PropertyWrite) {
		t.Fatalf("unexpected Properties: %#x", md.Properties)
	}
}

func TestDirectoryIteratorTruncatedRecordLen(t *testing.T) {
	entry := buildMinimalEntry(1, UUID16(0x1234))
	entry[0], entry[1] = byte(len(entry)+10), 0 // claim more bytes than present

	it := NewDirectoryIterator(entry)
	if _, ok := it.Next(); ok {
		t.Fatalf("expected failure on truncated record")
	}
	if _, ok := it.Err().(NotEnoughData); !ok {
		t.Fatalf("expected NotEnoughData, got %v (%T)", it.Err(), it.Err())
	}
}
