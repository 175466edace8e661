package linux

import (
	"testing"

	"golang.org/x/sys/unix"
)

// socketpair stands in for a real L2CAP socket so Conn's Close/CloseWrite/
// Read/Write bookkeeping can be exercised without an actual Bluetooth
// adapter: the kernel-level fd semantics Conn relies on (poll, shutdown,
// close idempotency) are the same over AF_UNIX.
func socketpair(t *testing.T) (int, int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
		unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestConnReadWriteRoundTrip(t *testing.T) {
	a, b := socketpair(t)
	conn := &Conn{fd: a}

	want := []byte("directory object payload")
	if _, err := unix.Write(b, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := make([]byte, len(want))
	n, err := conn.Read(got)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(want) || string(got[:n]) != string(want) {
		t.Fatalf("Read returned %q, want %q", got[:n], want)
	}

	if _, err := conn.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	echoed := make([]byte, len(want))
	if _, err := unix.Read(b, echoed); err != nil {
		t.Fatalf("peer read: %v", err)
	}
	if string(echoed) != string(want) {
		t.Fatalf("peer received %q, want %q", echoed, want)
	}
}

func TestConnCloseIsIdempotent(t *testing.T) {
	a, _ := socketpair(t)
	conn := &Conn{fd: a}

	if err := conn.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if conn.state != connStateClosed {
		t.Fatalf("state = %v, want connStateClosed", conn.state)
	}
}

func TestConnCloseWriteThenClose(t *testing.T) {
	a, _ := socketpair(t)
	conn := &Conn{fd: a}

	if err := conn.CloseWrite(); err != nil {
		t.Fatalf("CloseWrite: %v", err)
	}
	if conn.state != connStateHalfClosed {
		t.Fatalf("state = %v, want connStateHalfClosed", conn.state)
	}
	// a second CloseWrite is a no-op once half-closed.
	if err := conn.CloseWrite(); err != nil {
		t.Fatalf("second CloseWrite: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if conn.state != connStateClosed {
		t.Fatalf("state = %v, want connStateClosed", conn.state)
	}
}
