package ots

// Well-known Object Transfer Service UUIDs (spec.md §6), all promoted from
// their 16-bit attribute slot via the Bluetooth base UUID.
var (
	ServiceObjectTransfer = UUID16(0x1825)

	CharOTSFeature         = UUID16(0x2ABD)
	CharObjectName         = UUID16(0x2ABE)
	CharObjectType         = UUID16(0x2ABF)
	CharObjectSize         = UUID16(0x2AC0)
	CharObjectFirstCreated = UUID16(0x2AC1)
	CharObjectLastModified = UUID16(0x2AC2)
	CharObjectID           = UUID16(0x2AC3)
	CharObjectProperties   = UUID16(0x2AC4)
	CharOACP               = UUID16(0x2AC5)
	CharOLCP               = UUID16(0x2AC6)
)
