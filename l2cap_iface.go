package ots

import (
	"context"
	"io"
)

// L2CAPStream is a bulk-transfer data channel: the live end of the OTS
// L2CAP Connection-Oriented Channel opened after an OACP Read/Write has
// been authorized (spec.md §4.8). Flush has no SEQPACKET equivalent
// (spec.md §4.8); callers needing a half-close use CloseWrite.
type L2CAPStream interface {
	io.Reader
	io.Writer
	io.Closer
	// CloseWrite half-closes the write direction (spec.md §4.8
	// "Shutdown half-closes the write direction").
	CloseWrite() error
}

// DialOptions carries everything the platform L2CAP dialer needs to bind
// and connect the bulk-transfer socket (spec.md §4.9, §6).
type DialOptions struct {
	LocalAdapter MACAddress
	Peer         MACAddress
	// Privileged selects the all-zero-MAC/Random/PSM-0x25 local binding
	// instead of the adapter's real address and PSM 0x80.
	Privileged bool
	Security   *SecurityConfig
}

// L2CAPDialer is the platform collaborator that opens the OTS L2CAP channel
// (C4, spec.md §4.9). The `linux` subpackage is the one concrete
// implementation in this repository, built on a raw AF_BLUETOOTH
// SOCK_SEQPACKET socket; this interface is what keeps the platform-specific
// syscall layer out of the portable client façade (Design Note 9.3).
type L2CAPDialer interface {
	Dial(ctx context.Context, opts DialOptions) (L2CAPStream, error)
}
