package ots

import (
	"context"
	"io"
	"io/ioutil"
	"time"
)

// FullLength, passed as Read's length argument, requests everything from
// offset through the object's current size (spec.md §4.8).
const FullLength = -1

// l2capConnectTimeout bounds how long opening the bulk-transfer channel may
// take before this package reports Timeout (spec.md §4.9).
const l2capConnectTimeout = 5 * time.Second

func (c *Client) dialChannel(ctx context.Context) (L2CAPStream, error) {
	dctx, cancel := context.WithTimeout(ctx, l2capConnectTimeout)
	defer cancel()

	stream, err := c.dialer.Dial(dctx, DialOptions{
		LocalAdapter: c.local,
		Peer:         c.peer,
		Privileged:   c.config.Privileged,
		Security:     c.config.Security,
	})
	if err != nil {
		if dctx.Err() == context.DeadlineExceeded {
			return nil, timeoutErr("l2cap.dial")
		}
		return nil, wrapErr("l2cap.dial", KindIO, err)
	}
	return stream, nil
}

// boundedReadCloser limits reads to a fixed remaining byte count and closes
// the underlying stream once that count is exhausted or the caller closes
// it explicitly — spec.md §4.8's "each bulk transfer ... is released on
// transfer completion or error."
type boundedReadCloser struct {
	stream    L2CAPStream
	remaining int
}

func (r *boundedReadCloser) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		r.stream.Close()
		return 0, io.EOF
	}
	if len(p) > r.remaining {
		p = p[:r.remaining]
	}
	n, err := r.stream.Read(p)
	r.remaining -= n
	if err != nil || r.remaining <= 0 {
		r.stream.Close()
		if err == nil {
			err = io.EOF
		}
	}
	return n, err
}

func (r *boundedReadCloser) Close() error { return r.stream.Close() }

// Read opens a fresh L2CAP channel, authorizes an OACP Read over
// [offset, offset+length) — or through the object's current end when
// length is FullLength — and returns a stream bounded to exactly that many
// bytes (spec.md §4.8). A length that runs past the object's current size
// is capped at current size minus offset. Requires ActionFeatureRead.
func (c *Client) Read(ctx context.Context, offset int, length int) (io.ReadCloser, error) {
	sizes, err := c.Sizes(ctx)
	if err != nil {
		return nil, err
	}
	avail := int(sizes.Current) - offset
	if avail < 0 {
		avail = 0
	}
	eff := avail
	if length >= 0 && length < avail {
		eff = length
	}

	stream, err := c.dialChannel(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := c.oacpTransactStrict(ctx, OACPRead, encodeOACPRead(uint32(offset), uint32(eff))); err != nil {
		stream.Close()
		return nil, err
	}
	return &boundedReadCloser{stream: stream, remaining: eff}, nil
}

// Write opens a fresh L2CAP channel, authorizes an OACP Write starting at
// offset, and pushes the authorized part of data (spec.md §4.8).
// Requires ActionFeatureWrite. The effective length is capped to the
// object's allocated size minus offset, per §4.8's "effective length =
// min(requested, size - offset)"; a caller that wants to detect truncation
// should compare the returned n against len(data).
func (c *Client) Write(ctx context.Context, offset int, data []byte, mode WriteMode) (int, error) {
	sizes, err := c.Sizes(ctx)
	if err != nil {
		return 0, err
	}
	avail := int(sizes.Allocated) - offset
	if avail < 0 {
		avail = 0
	}
	eff := len(data)
	if eff > avail {
		eff = avail
	}

	stream, err := c.dialChannel(ctx)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	if _, err := c.oacpTransactStrict(ctx, OACPWrite, encodeOACPWrite(uint32(offset), uint32(eff), mode)); err != nil {
		return 0, err
	}

	n, err := stream.Write(data[:eff])
	if err != nil {
		return n, wrapErr("client.write", KindIO, err)
	}
	if err := stream.CloseWrite(); err != nil {
		return n, wrapErr("client.write", KindIO, err)
	}
	return n, nil
}

// CheckSum requests a CRC-equivalent checksum over [offset, offset+length)
// of the currently selected object, without opening a bulk-transfer channel
// (spec.md §4.3). Requires ActionFeatureCheckSum.
func (c *Client) CheckSum(ctx context.Context, offset, length uint32) (uint32, error) {
	resp, err := c.oacpTransactStrict(ctx, OACPCheckSum, encodeOACPCheckSum(offset, length))
	if err != nil {
		return 0, err
	}
	sum, err := decodeOACPCheckSum(resp.payload)
	if err != nil {
		return 0, wrapErr("oacp.checksum", KindDecode, err)
	}
	return sum, nil
}

// Create allocates a new object of the given size and type and selects it
// (spec.md §4.3). Requires ActionFeatureCreate.
func (c *Client) Create(ctx context.Context, size uint32, typ UUID) error {
	_, err := c.oacpTransactStrict(ctx, OACPCreate, encodeOACPCreate(size, typ))
	return err
}

// Delete deletes the currently selected object. Requires ActionFeatureDelete.
func (c *Client) Delete(ctx context.Context) error {
	_, err := c.oacpTransactStrict(ctx, OACPDelete, encodeOACPDelete())
	return err
}

// Execute runs the currently selected object as an executable, passing an
// opcode-specific parameter blob. Requires ActionFeatureExecute.
func (c *Client) Execute(ctx context.Context, param []byte) error {
	_, err := c.oacpTransactStrict(ctx, OACPExecute, encodeOACPExecute(param))
	return err
}

// Abort cancels an in-progress Read or Write on the currently selected
// object. Requires ActionFeatureAbort.
func (c *Client) Abort(ctx context.Context) error {
	_, err := c.oacpTransactStrict(ctx, OACPAbort, encodeOACPAbort())
	return err
}

// ReadDirectory selects the well-known directory object, reads it in full,
// and returns an iterator over its entries (spec.md §4.2). It is a thin
// convenience built on GoTo + Read + DirectoryIterator, not a new wire
// operation.
func (c *Client) ReadDirectory(ctx context.Context) (*DirectoryIterator, error) {
	ok, err := c.GoTo(ctx, DirectoryObjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundErr("client.readDirectory")
	}
	r, err := c.Read(ctx, 0, FullLength)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	buf, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, wrapErr("client.readDirectory", KindIO, err)
	}
	return NewDirectoryIterator(buf), nil
}
