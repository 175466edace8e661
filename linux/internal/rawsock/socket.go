package rawsock

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Socket opens a socket of the given type/proto in the AF_BLUETOOTH family,
// retrying on EBUSY the way paypal-gatt/linux/internal/socket.Socket does
// for the HCI family — the kernel's Bluetooth subsystem can return EBUSY
// transiently while an adapter is being reset.
func Socket(typ, proto int) (int, error) {
	var lastErr error
	for i := 0; i < 5; i++ {
		fd, err := unix.Socket(AFBluetooth, typ, proto)
		if err == nil {
			return fd, nil
		}
		if err != unix.EBUSY {
			return -1, err
		}
		lastErr = err
		time.Sleep(time.Second)
	}
	return -1, lastErr
}

// Bind binds fd to sa, retrying on EBUSY.
func Bind(fd int, sa Sockaddr) error {
	ptr, n, err := sa.sockaddr()
	if err != nil {
		return err
	}
	var lastErr error
	for i := 0; i < 5; i++ {
		_, _, errno := unix.Syscall(unix.SYS_BIND, uintptr(fd), uintptr(ptr), uintptr(n))
		if errno == 0 {
			return nil
		}
		if errno != unix.EBUSY {
			return errno
		}
		lastErr = errno
		time.Sleep(time.Second)
	}
	return lastErr
}

// ConnectNonblocking issues a non-blocking connect(2) to sa and returns
// immediately: either nil (connected synchronously, rare for a socket just
// set non-blocking), unix.EINPROGRESS (the expected case — the caller polls
// fd for writability next), or a hard error.
func ConnectNonblocking(fd int, sa Sockaddr) error {
	ptr, n, err := sa.sockaddr()
	if err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_CONNECT, uintptr(fd), uintptr(ptr), uintptr(n))
	if errno == 0 {
		return nil
	}
	return errno
}

// SetNonblocking toggles O_NONBLOCK on fd.
func SetNonblocking(fd int, nonblocking bool) error {
	return unix.SetNonblock(fd, nonblocking)
}

// SocketError reads and clears SO_ERROR, the standard way to learn whether a
// non-blocking connect that became writable actually succeeded.
func SocketError(fd int) error {
	errno, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return err
	}
	if errno != 0 {
		return unix.Errno(errno)
	}
	return nil
}

// SetSecurity applies the BT_SECURITY sockopt (spec.md §4.9, §6): a 16-bit
// payload of a one-byte level followed by a one-byte minimum encryption key
// size. Both arguments are truncated to their low byte.
func SetSecurity(fd int, level uint16, keySize uint16) error {
	type btSecurity struct {
		Level   uint8
		KeySize uint8
	}
	bs := btSecurity{Level: uint8(level), KeySize: uint8(keySize)}
	_, _, errno := unix.Syscall6(unix.SYS_SETSOCKOPT, uintptr(fd), uintptr(SOLBluetooth), uintptr(BTSecurity),
		uintptr(unsafe.Pointer(&bs)), unsafe.Sizeof(bs), 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// SetMTU applies BT_SNDMTU and BT_RCVMTU (spec.md §4.9).
func SetMTU(fd int, sndMTU, rcvMTU uint16) error {
	if err := setsockoptUint16(fd, BTSndMTU, sndMTU); err != nil {
		return err
	}
	return setsockoptUint16(fd, BTRcvMTU, rcvMTU)
}

func setsockoptUint16(fd int, opt int, v uint16) error {
	_, _, errno := unix.Syscall6(unix.SYS_SETSOCKOPT, uintptr(fd), uintptr(SOLBluetooth), uintptr(opt),
		uintptr(unsafe.Pointer(&v)), unsafe.Sizeof(v), 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// PollWritable waits up to timeout for fd to become writable (connect
// completion) and reports whether it did.
func PollWritable(fd int, timeout time.Duration) (bool, error) {
	return poll(fd, unix.POLLOUT, timeout)
}

// PollReadable waits up to timeout for fd to become readable.
func PollReadable(fd int, timeout time.Duration) (bool, error) {
	return poll(fd, unix.POLLIN, timeout)
}

func poll(fd int, events int16, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: events}}
	ms := int(timeout / time.Millisecond)
	if timeout < 0 {
		ms = -1
	}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return fds[0].Revents&events != 0, nil
}

// Close closes fd.
func Close(fd int) error { return unix.Close(fd) }

// Read reads from fd into p.
func Read(fd int, p []byte) (int, error) { return unix.Read(fd, p) }

// Write writes p to fd.
func Write(fd int, p []byte) (int, error) { return unix.Write(fd, p) }

// Shutdown half-closes fd in direction how (unix.SHUT_WR for a write-side
// half-close, spec.md §4.8).
func Shutdown(fd int, how int) error { return unix.Shutdown(fd, how) }
