// Package rawsock implements the minimal set of AF_BLUETOOTH SOCK_SEQPACKET
// socket operations needed to open an L2CAP Connection-Oriented Channel,
// none of which golang.org/x/sys/unix exposes a typed Sockaddr for. It
// follows the pattern paypal-gatt/linux/internal/socket used for the HCI
// address family — a package-local Sockaddr interface plus a raw syscall
// underneath — generalized to the L2CAP sockaddr layout (spec.md §4.9)
// instead of HCI's.
package rawsock

import "unsafe"

// AFBluetooth is Linux's AF_BLUETOOTH address family number. It isn't
// exported by golang.org/x/sys/unix, which only carries the families the
// standard library's net package already understands.
const AFBluetooth = 31

// BTProtoL2CAP selects the L2CAP protocol when creating an AF_BLUETOOTH
// socket.
const BTProtoL2CAP = 0

// SOLBluetooth is the generic Bluetooth socket option level; BT_SECURITY
// (spec.md §6) is set at this level.
const SOLBluetooth = 274

// L2CAP-specific constants (spec.md §4.9, §6).
const (
	SOLL2CAP = 6

	BTSecurity = 4
	BTSndMTU   = 12
	BTRcvMTU   = 13

	// OTSLECID is the fixed PSM used for the privileged binding;
	// L2CAPPSMDynamicStart is the first PSM in the normal LE dynamic range.
	OTSLECID             = 0x25
	L2CAPPSMDynamicStart = 0x80
)

// rawSockaddrL2 mirrors the kernel's struct sockaddr_l2 from
// <bluetooth/bluetooth.h>: family(2) + psm(2) + bdaddr(6) + cid(2) +
// bdaddr_type(1), padded to 14 bytes total (spec.md §4.9's "14-byte
// sockaddr layout").
type rawSockaddrL2 struct {
	Family     uint16
	PSM        uint16
	Bdaddr     [6]byte
	CID        uint16
	BdaddrType uint8
	pad        uint8
}

// Sockaddr is the package-local stand-in for golang.org/x/sys/unix.Sockaddr,
// whose sockaddr() method is unexported and so can't be implemented outside
// that package.
type Sockaddr interface {
	sockaddr() (ptr unsafe.Pointer, length uint32, err error)
}

// SockaddrL2 is an L2CAP socket address: a 6-byte device address, address
// type, and either a PSM (when binding/connecting without an explicit CID)
// or a fixed CID (spec.md §4.9).
type SockaddrL2 struct {
	Addr     [6]byte
	AddrType uint8
	PSM      uint16
	CID      uint16

	raw rawSockaddrL2
}

func (sa *SockaddrL2) sockaddr() (unsafe.Pointer, uint32, error) {
	sa.raw = rawSockaddrL2{
		Family:     AFBluetooth,
		PSM:        sa.PSM,
		Bdaddr:     sa.Addr,
		CID:        sa.CID,
		BdaddrType: sa.AddrType,
	}
	return unsafe.Pointer(&sa.raw), uint32(unsafe.Sizeof(sa.raw)), nil
}
