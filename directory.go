package ots

import (
	"encoding/binary"
	"unicode/utf8"
)

// dirEntryMinLen is the minimum size of a directory entry's fixed prefix:
// record_len(2) + id(6) + name_len(1) + flags(1) + type(2, the shortest
// form) = 12 bytes. The reference implementation this protocol was ported
// from checks against 13 here (and 11 on the post-length-prefix body), one
// byte over the true minimum in both places; that extra byte would reject a
// legitimately minimal entry (empty name, short-form type), so — in the
// spirit of spec.md §9's instruction not to replicate a known source bug —
// this decoder uses the arithmetically correct minimum instead. See
// DESIGN.md.
const dirEntryMinLen = 12

// DirectoryIterator walks the concatenated byte stream produced by reading
// object 0 in full, yielding one Metadata per directory entry. It is fused:
// once it yields an error or runs out of entries, every subsequent call to
// Next returns ok == false with no further error (spec.md §4.2).
type DirectoryIterator struct {
	buf  []byte
	done bool
	err  error
}

// NewDirectoryIterator wraps the full directory-object payload.
func NewDirectoryIterator(payload []byte) *DirectoryIterator {
	return &DirectoryIterator{buf: payload}
}

// Err returns the error that terminated iteration, if any.
func (it *DirectoryIterator) Err() error { return it.err }

// Next decodes and returns the next directory entry. ok is false once the
// buffer is exhausted or a parse error occurred; in the latter case Err
// reports the error.
func (it *DirectoryIterator) Next() (Metadata, bool) {
	if it.done {
		return Metadata{}, false
	}
	if len(it.buf) == 0 {
		it.done = true
		return Metadata{}, false
	}
	if len(it.buf) < dirEntryMinLen {
		it.done = true
		it.err = NotEnoughData{Actual: len(it.buf), Needed: dirEntryMinLen}
		return Metadata{}, false
	}

	recordLen := int(binary.LittleEndian.Uint16(it.buf[0:2]))
	if recordLen > len(it.buf) {
		it.done = true
		it.err = NotEnoughData{Actual: len(it.buf), Needed: recordLen}
		return Metadata{}, false
	}

	body := it.buf[2:recordLen]
	md, err := decodeDirEntryBody(body)
	if err != nil {
		it.done = true
		it.err = err
		return Metadata{}, false
	}

	it.buf = it.buf[recordLen:]
	return md, true
}

// decodeDirEntryBody decodes everything after the record_len prefix: id(6),
// name_len(1), name(name_len), flags(1), type(2 or 16), and the optional
// tail fields gated by flags, in that order (spec.md §3).
func decodeDirEntryBody(b []byte) (Metadata, error) {
	const fixedLen = id48Len + 1 /*name_len*/ + 1 /*flags*/
	if len(b) < fixedLen {
		return Metadata{}, NotEnoughData{Actual: len(b), Needed: fixedLen}
	}

	id, err := decodeID48(b[0:id48Len])
	if err != nil {
		return Metadata{}, err
	}
	off := id48Len

	nameLen := int(b[off])
	off++

	if len(b) < off+nameLen+1 {
		return Metadata{}, NotEnoughData{Actual: len(b), Needed: off + nameLen + 1}
	}
	nameBytes := b[off : off+nameLen]
	if !utf8.Valid(nameBytes) {
		return Metadata{}, BadUTF8{}
	}
	name := string(nameBytes)
	off += nameLen

	flags, err := decodeDirFlags(b[off])
	if err != nil {
		return Metadata{}, err
	}
	off++

	typeLen := 2
	if flags.Has(DirFlagTypeUUID128) {
		typeLen = 16
	}
	if len(b) < off+typeLen {
		return Metadata{}, NotEnoughData{Actual: len(b), Needed: off + typeLen}
	}
	typ, err := decodeUUID(b[off : off+typeLen])
	if err != nil {
		return Metadata{}, err
	}
	off += typeLen

	md := Metadata{ID: &id, Name: name, Type: typ}

	if flags.Has(DirFlagHasCurrentSize) {
		if len(b) < off+4 {
			return Metadata{}, NotEnoughData{Actual: len(b), Needed: off + 4}
		}
		v := uint(binary.LittleEndian.Uint32(b[off : off+4]))
		md.CurrentSize = &v
		off += 4
	}
	if flags.Has(DirFlagHasAllocatedSize) {
		if len(b) < off+4 {
			return Metadata{}, NotEnoughData{Actual: len(b), Needed: off + 4}
		}
		v := uint(binary.LittleEndian.Uint32(b[off : off+4]))
		md.AllocatedSize = &v
		off += 4
	}
	if flags.Has(DirFlagHasFirstCreated) {
		if len(b) < off+dateTimeLen {
			return Metadata{}, NotEnoughData{Actual: len(b), Needed: off + dateTimeLen}
		}
		dt, err := decodeDateTime(b[off : off+dateTimeLen])
		if err != nil {
			return Metadata{}, err
		}
		md.FirstCreated = &dt
		off += dateTimeLen
	}
	// The second timestamp is gated on HasLastModified, not HasFirstCreated
	// — an earlier revision of the reference implementation conflated the
	// two gates; spec.md §9 prescribes the correct gating used here.
	if flags.Has(DirFlagHasLastModified) {
		if len(b) < off+dateTimeLen {
			return Metadata{}, NotEnoughData{Actual: len(b), Needed: off + dateTimeLen}
		}
		dt, err := decodeDateTime(b[off : off+dateTimeLen])
		if err != nil {
			return Metadata{}, err
		}
		md.LastModified = &dt
		off += dateTimeLen
	}
	if flags.Has(DirFlagHasProperties) {
		props, err := decodeProperties(b[off:])
		if err != nil {
			return Metadata{}, err
		}
		md.Properties = props
		off += propertiesLen
	}

	return md, nil
}
