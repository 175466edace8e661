package rawsock

import (
	"testing"
	"unsafe"
)

func TestRawSockaddrL2Size(t *testing.T) {
	// struct sockaddr_l2 from <bluetooth/bluetooth.h>: 14 bytes, the layout
	// spec.md §4.9 names explicitly.
	if got := unsafe.Sizeof(rawSockaddrL2{}); got != 14 {
		t.Fatalf("rawSockaddrL2 size = %d, want 14", got)
	}
}

func TestSockaddrL2FillsFamilyAndFields(t *testing.T) {
	sa := &SockaddrL2{
		Addr:     [6]byte{1, 2, 3, 4, 5, 6},
		AddrType: 2,
		PSM:      0x25,
	}
	ptr, n, err := sa.sockaddr()
	if err != nil {
		t.Fatalf("sockaddr(): %v", err)
	}
	if n != 14 {
		t.Fatalf("length = %d, want 14", n)
	}
	raw := (*rawSockaddrL2)(ptr)
	if raw.Family != AFBluetooth {
		t.Fatalf("family = %d, want %d", raw.Family, AFBluetooth)
	}
	if raw.PSM != 0x25 {
		t.Fatalf("psm = %#x, want 0x25", raw.PSM)
	}
	if raw.Bdaddr != sa.Addr {
		t.Fatalf("bdaddr mismatch: %v", raw.Bdaddr)
	}
	if raw.BdaddrType != 2 {
		t.Fatalf("bdaddr_type = %d, want 2", raw.BdaddrType)
	}
}
