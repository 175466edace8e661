package ots

import "context"

// EventKind distinguishes the items delivered over a GattSession's event
// stream (spec.md §6). Kinds other than CharacteristicValueChanged are
// ignored by this package but still need to flow through so a shared event
// stream can serve other consumers.
type EventKind int

const (
	EventOther EventKind = iota
	EventCharacteristicValueChanged
)

// Event is one item from a device's GATT event stream.
type Event struct {
	Kind  EventKind
	CharID CharacteristicID
	Value []byte
}

// CharacteristicID identifies a resolved GATT characteristic handle within a
// GattSession. Its concrete representation (an ATT handle, a platform
// object reference, ...) is owned by the collaborator implementation; this
// package only ever compares it for equality and passes it back.
type CharacteristicID interface{}

// DeviceID identifies a GATT-connected peer device to the collaborator.
type DeviceID interface{}

// MACAddress is a 6-byte Bluetooth device address plus its address type,
// used by the L2CAP channel (spec.md §4.9) rather than by GATT itself.
type MACAddress struct {
	Addr [6]byte
	Type AddressType
}

// AddressType distinguishes a public from a random Bluetooth device
// address (spec.md §4.9).
type AddressType uint8

const (
	AddressPublic AddressType = 1
	AddressRandom AddressType = 2
)

// GattSession is the external collaborator this package needs in order to
// talk to a GATT-connected peer device: service/characteristic lookup,
// characteristic read/write, notification subscription, and a per-device
// event stream (spec.md §6, Design Note 9.3). Implementations are expected
// to already own the underlying GATT connection; this package never
// initiates or tears one down.
type GattSession interface {
	// LookupService resolves a 128-bit service UUID on device to an opaque
	// service handle, or returns a not-found error mapped by callers per
	// spec.md §4.5.
	LookupService(ctx context.Context, device DeviceID, serviceUUID UUID) (ServiceID, error)

	// LookupCharacteristic resolves a 128-bit characteristic UUID within
	// service to a CharacteristicID. A not-found error is mapped to
	// "absent" for optional characteristics (spec.md §4.5).
	LookupCharacteristic(ctx context.Context, service ServiceID, charUUID UUID) (CharacteristicID, error)

	// ReadCharacteristic reads the characteristic's current value.
	ReadCharacteristic(ctx context.Context, char CharacteristicID) ([]byte, error)

	// WriteCharacteristic writes value to the characteristic.
	WriteCharacteristic(ctx context.Context, char CharacteristicID, value []byte) error

	// Subscribe enables notifications/indications on char.
	Subscribe(ctx context.Context, char CharacteristicID) error

	// Unsubscribe disables notifications/indications on char.
	Unsubscribe(ctx context.Context, char CharacteristicID) error

	// EventStream returns the channel of Events for device. The channel is
	// shared across every consumer of that device's session; this package
	// never closes it.
	EventStream(device DeviceID) <-chan Event

	// LocalAdapterAddress returns the Bluetooth address of the adapter
	// serving device, used to bind the local end of the L2CAP channel
	// (spec.md §4.9).
	LocalAdapterAddress(ctx context.Context, device DeviceID) (MACAddress, error)

	// PeerAddress returns device's own Bluetooth address, used as the
	// L2CAP connect target (spec.md §4.9).
	PeerAddress(ctx context.Context, device DeviceID) (MACAddress, error)
}

// ServiceID identifies a resolved GATT service within a GattSession.
type ServiceID interface{}

// IsNotFound reports whether err represents a GATT collaborator's
// not-found response, the only GattSession error this package interprets
// specially (spec.md §4.5: "A not-found error from the GATT collaborator
// for an optional UUID is mapped to 'absent'; any other error propagates.").
// Collaborator implementations signal this by returning an error that
// satisfies this interface.
type IsNotFound interface {
	NotFound() bool
}

func isNotFoundErr(err error) bool {
	if err == nil {
		return false
	}
	nf, ok := err.(IsNotFound)
	return ok && nf.NotFound()
}
