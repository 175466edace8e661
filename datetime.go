package ots

import "encoding/binary"

// DateTime is the OTS 7-byte timestamp: year/month/day/hour/minute/second,
// no timezone (spec.md §3). An absent optional DateTime is represented by a
// nil *DateTime at the API boundary, distinct from a zero-valued one.
type DateTime struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

const dateTimeLen = 7

// decodeDateTime decodes the 7-byte record. Field ranges (month 1-12, day
// 1-31, hour 0-23, minute/second 0-59) are not validated here: spec.md §3
// states the valid ranges but does not list an out-of-range value as a
// decode error distinct from the ones in §4.1, so a server that sends an
// out-of-range field is passed through rather than rejected.
func decodeDateTime(b []byte) (DateTime, error) {
	if len(b) < dateTimeLen {
		return DateTime{}, NotEnoughData{Actual: len(b), Needed: dateTimeLen}
	}
	if len(b) > dateTimeLen {
		return DateTime{}, TooManyData{Actual: len(b), Max: dateTimeLen}
	}
	return DateTime{
		Year:   binary.LittleEndian.Uint16(b[0:2]),
		Month:  b[2],
		Day:    b[3],
		Hour:   b[4],
		Minute: b[5],
		Second: b[6],
	}, nil
}

func encodeDateTime(dt DateTime) []byte {
	b := make([]byte, dateTimeLen)
	binary.LittleEndian.PutUint16(b[0:2], dt.Year)
	b[2] = dt.Month
	b[3] = dt.Day
	b[4] = dt.Hour
	b[5] = dt.Minute
	b[6] = dt.Second
	return b
}
