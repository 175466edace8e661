// Package linux is the one platform implementation of ots.L2CAPDialer in
// this repository: a raw AF_BLUETOOTH SOCK_SEQPACKET socket opened,
// configured, and connected directly against the kernel's Bluetooth
// subsystem (spec.md §4.9), the same layer paypal-gatt's linux package
// talks to for HCI, generalized here to L2CAP.
package linux

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/otsclient/ots"
	"github.com/otsclient/ots/internal/otslog"
	"github.com/otsclient/ots/linux/internal/rawsock"
)

// defaultMTU is the BT_SNDMTU/BT_RCVMTU value applied to every
// bulk-transfer socket (spec.md §4.9). OTS doesn't mandate a specific
// figure; this matches the LE Credit Based Flow Control default most
// Bluetooth stacks negotiate down to if unset.
const defaultMTU = 672

// pollSlice bounds how long a single poll(2) call blocks while a Dial or a
// Read/Write waits. In Dial this means a cancelled context is noticed
// promptly instead of only at the next full poll timeout; Read and Write
// take no context and simply re-poll until the socket is ready.
const pollSlice = 200 * time.Millisecond

// Dialer is the concrete ots.L2CAPDialer backing a Client on Linux.
type Dialer struct {
	log *otslog.Logger
}

// NewDialer returns a ready-to-use Dialer. log may be nil.
func NewDialer(log *otslog.Logger) *Dialer {
	return &Dialer{log: log}
}

// Dial opens, binds, configures, and connects an L2CAP SOCK_SEQPACKET
// socket per opts (spec.md §4.9): the privileged binding uses an all-zero
// local address, AddressRandom, and PSM 0x25; the normal binding uses the
// real adapter address and PSM 0x80. The peer is always connected on PSM
// 0x25. Connect is driven non-blocking so ctx cancellation and the caller's
// 5-second timeout (bulk.go's l2capConnectTimeout) are both honored rather
// than blocking in the kernel indefinitely.
func (d *Dialer) Dial(ctx context.Context, opts ots.DialOptions) (ots.L2CAPStream, error) {
	fd, err := rawsock.Socket(unix.SOCK_SEQPACKET, rawsock.BTProtoL2CAP)
	if err != nil {
		return nil, err
	}

	psm := uint16(rawsock.L2CAPPSMDynamicStart)
	local := &rawsock.SockaddrL2{AddrType: uint8(ots.AddressRandom)}
	if opts.Privileged {
		psm = uint16(rawsock.OTSLECID)
	} else {
		local.Addr = opts.LocalAdapter.Addr
		local.AddrType = uint8(opts.LocalAdapter.Type)
	}
	local.PSM = psm

	if err := rawsock.Bind(fd, local); err != nil {
		rawsock.Close(fd)
		return nil, err
	}

	if opts.Security != nil {
		if err := rawsock.SetSecurity(fd, uint16(opts.Security.Level), opts.Security.KeySize); err != nil {
			rawsock.Close(fd)
			return nil, err
		}
	}
	if err := rawsock.SetMTU(fd, defaultMTU, defaultMTU); err != nil {
		rawsock.Close(fd)
		return nil, err
	}
	if err := rawsock.SetNonblocking(fd, true); err != nil {
		rawsock.Close(fd)
		return nil, err
	}

	peer := &rawsock.SockaddrL2{Addr: opts.Peer.Addr, AddrType: uint8(opts.Peer.Type), PSM: rawsock.OTSLECID}
	err = rawsock.ConnectNonblocking(fd, peer)
	if err != nil && err != unix.EINPROGRESS {
		rawsock.Close(fd)
		return nil, err
	}
	if err == unix.EINPROGRESS {
		if err := waitWritable(ctx, fd); err != nil {
			rawsock.Close(fd)
			return nil, err
		}
		if serr := rawsock.SocketError(fd); serr != nil {
			rawsock.Close(fd)
			return nil, serr
		}
	}

	d.log.Debugf("l2cap: connected fd=%d psm=%#x privileged=%v", fd, psm, opts.Privileged)
	return &Conn{fd: fd}, nil
}

// waitWritable polls fd for writability in pollSlice increments until
// either it becomes writable, ctx is done, or ctx's deadline passes.
func waitWritable(ctx context.Context, fd int) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		slice := pollSlice
		if deadline, ok := ctx.Deadline(); ok {
			if left := time.Until(deadline); left <= 0 {
				return context.DeadlineExceeded
			} else if left < slice {
				slice = left
			}
		}

		ready, err := rawsock.PollWritable(fd, slice)
		if err != nil {
			return err
		}
		if ready {
			return nil
		}
	}
}

// connState tracks the channel's half-close/close bookkeeping (spec.md
// §4.9): Connected, then optionally HalfClosed after CloseWrite, then
// Closed.
type connState int

const (
	connStateConnected connState = iota
	connStateHalfClosed
	connStateClosed
)

// Conn is the live end of an OTS L2CAP channel, implementing
// ots.L2CAPStream.
type Conn struct {
	fd int

	mu    sync.Mutex
	state connState
}

// Read blocks, via poll(2), until data is available or the socket is
// closed.
func (c *Conn) Read(p []byte) (int, error) {
	for {
		n, err := rawsock.Read(c.fd, p)
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			if _, perr := rawsock.PollReadable(c.fd, pollSlice); perr != nil {
				return 0, perr
			}
			continue
		}
		return n, err
	}
}

// Write blocks, via poll(2), until p has been accepted by the kernel send
// buffer in full.
func (c *Conn) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := rawsock.Write(c.fd, p[total:])
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			if _, perr := rawsock.PollWritable(c.fd, pollSlice); perr != nil {
				return total, perr
			}
			continue
		}
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// CloseWrite half-closes the write direction (spec.md §4.8).
func (c *Conn) CloseWrite() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != connStateConnected {
		return nil
	}
	c.state = connStateHalfClosed
	return rawsock.Shutdown(c.fd, unix.SHUT_WR)
}

// Close releases the socket. Safe to call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == connStateClosed {
		return nil
	}
	c.state = connStateClosed
	return rawsock.Close(c.fd)
}
