package ots

import "encoding/binary"

// ActionFeatures is the 32-bit bitset the server advertises (OTS Feature
// characteristic, first word) to declare which OACP commands it supports
// (spec.md §3, §4.5).
type ActionFeatures uint32

const (
	ActionFeatureCreate ActionFeatures = 1 << iota
	ActionFeatureDelete
	ActionFeatureCheckSum
	ActionFeatureExecute
	ActionFeatureRead
	ActionFeatureWrite
	ActionFeatureAppend
	ActionFeatureTruncate
	ActionFeaturePatch
	ActionFeatureAbort

	actionFeatureDefinedBits = ActionFeatureCreate | ActionFeatureDelete | ActionFeatureCheckSum |
		ActionFeatureExecute | ActionFeatureRead | ActionFeatureWrite | ActionFeatureAppend |
		ActionFeatureTruncate | ActionFeaturePatch | ActionFeatureAbort
)

// Has reports whether all bits in want are set.
func (f ActionFeatures) Has(want ActionFeatures) bool { return f&want == want }

// ListFeatures is the 32-bit bitset the server advertises (OTS Feature
// characteristic, second word) to declare which OLCP commands it supports
// beyond the unconditional First/Last/Previous/Next (spec.md §4.3, §4.5).
type ListFeatures uint32

const (
	ListFeatureGoTo ListFeatures = 1 << iota
	ListFeatureOrder
	ListFeatureNumberOf
	ListFeatureClearMark

	listFeatureDefinedBits = ListFeatureGoTo | ListFeatureOrder | ListFeatureNumberOf | ListFeatureClearMark
)

// Has reports whether all bits in want are set.
func (f ListFeatures) Has(want ListFeatures) bool { return f&want == want }

const featureWordLen = 4

func decodeActionFeatures(b []byte) (ActionFeatures, error) {
	if len(b) < featureWordLen {
		return 0, NotEnoughData{Actual: len(b), Needed: featureWordLen}
	}
	if len(b) > featureWordLen {
		return 0, TooManyData{Actual: len(b), Max: featureWordLen}
	}
	v := ActionFeatures(binary.LittleEndian.Uint32(b))
	if v&^actionFeatureDefinedBits != 0 {
		return 0, BadActionFeatures{Bits: uint32(v &^ actionFeatureDefinedBits)}
	}
	return v, nil
}

func decodeListFeatures(b []byte) (ListFeatures, error) {
	if len(b) < featureWordLen {
		return 0, NotEnoughData{Actual: len(b), Needed: featureWordLen}
	}
	if len(b) > featureWordLen {
		return 0, TooManyData{Actual: len(b), Max: featureWordLen}
	}
	v := ListFeatures(binary.LittleEndian.Uint32(b))
	if v&^listFeatureDefinedBits != 0 {
		return 0, BadListFeatures{Bits: uint32(v &^ listFeatureDefinedBits)}
	}
	return v, nil
}

// Features is the pair advertised by the 8-byte OTS Feature characteristic:
// action features in the first 4 bytes, list features in the next 4
// (spec.md §4.5).
type Features struct {
	Action ActionFeatures
	List   ListFeatures
}

const featuresLen = 8

func decodeFeatures(b []byte) (Features, error) {
	if len(b) < featuresLen {
		return Features{}, NotEnoughData{Actual: len(b), Needed: featuresLen}
	}
	if len(b) > featuresLen {
		return Features{}, TooManyData{Actual: len(b), Max: featuresLen}
	}
	action, err := decodeActionFeatures(b[0:4])
	if err != nil {
		return Features{}, err
	}
	list, err := decodeListFeatures(b[4:8])
	if err != nil {
		return Features{}, err
	}
	return Features{Action: action, List: list}, nil
}
