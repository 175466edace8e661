package ots

import (
	"context"
	"time"
)

// transactionTimeout bounds how long the engine waits for a control-point
// notification after writing a request (spec.md §4.4): "approximately one
// second; a server that never notifies back is a NoResponse, not a hang."
const transactionTimeout = time.Second

// runTransaction drives one half-duplex notify-then-write exchange on ctrl
// (spec.md §4.4): subscribe, begin observing the device's event stream,
// write the request, wait up to transactionTimeout for a notification whose
// value echoes req's opcode (req[0]), then unsubscribe regardless of
// outcome. Values that arrive on ctrl but don't echo the opcode we just sent
// are discarded and the wait continues — spec.md §4.4's tolerance for a
// notification left over from a prior, already-abandoned transaction.
func (c *Client) runTransaction(ctx context.Context, ctrl CharacteristicID, req []byte) ([]byte, error) {
	if err := c.gatt.Subscribe(ctx, ctrl); err != nil {
		return nil, wrapErr("transaction.subscribe", KindGATT, err)
	}
	defer c.gatt.Unsubscribe(ctx, ctrl)

	events := c.gatt.EventStream(c.device)

	if err := c.gatt.WriteCharacteristic(ctx, ctrl, req); err != nil {
		return nil, wrapErr("transaction.write", KindGATT, err)
	}

	expectEcho := req[0]
	deadline := time.NewTimer(transactionTimeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, wrapErr("transaction.wait", KindIO, ctx.Err())
		case <-deadline.C:
			c.log.Warnf("transaction timed out waiting for echo 0x%02x", expectEcho)
			return nil, noResponseErr("transaction.wait")
		case ev, ok := <-events:
			if !ok {
				return nil, wrapErr("transaction.wait", KindGATT, errEventStreamClosed)
			}
			if ev.Kind != EventCharacteristicValueChanged || ev.CharID != ctrl {
				continue
			}
			if len(ev.Value) < 2 || ev.Value[1] != expectEcho {
				c.log.Debugf("discarding unmatched control-point notification")
				continue
			}
			return ev.Value, nil
		}
	}
}

var errEventStreamClosed = errStreamClosed{}

type errStreamClosed struct{}

func (errStreamClosed) Error() string { return "gatt event stream closed" }

// olcpTransact runs a capability-gated OLCP request/response round trip and
// returns the decoded response without converting a non-success result into
// an error — spec.md §4.7 callers (Previous/Next/GoTo) need the raw result
// code to distinguish OutOfBounds/ObjectIdNotFound from a hard failure.
// req is the fully wire-encoded request (opcode byte already prepended by
// one of the encodeOLCPXxx helpers in olcp.go).
func (c *Client) olcpTransact(ctx context.Context, op OLCPOpcode, req []byte) (olcpResponseDecoded, error) {
	if c.olcpChar == nil {
		return olcpResponseDecoded{}, notSupportedErr("olcp")
	}
	if want, gated := olcpCapability[op]; gated && !c.features.List.Has(want) {
		return olcpResponseDecoded{}, notSupportedErr("olcp")
	}
	raw, err := c.runTransaction(ctx, c.olcpChar, req)
	if err != nil {
		return olcpResponseDecoded{}, err
	}
	resp, err := decodeOLCPResponse(raw)
	if err != nil {
		return olcpResponseDecoded{}, wrapErr("olcp.decode", KindDecode, err)
	}
	if resp.reqOpcode != op {
		return olcpResponseDecoded{}, wrapErr("olcp.decode", KindProtocol, BadResponse{Reason: "echoed opcode mismatch"})
	}
	return resp, nil
}

// olcpTransactStrict wraps olcpTransact for the callers that always treat a
// non-success result as a hard error (First, Last, Order, NumberOf,
// ClearMark).
func (c *Client) olcpTransactStrict(ctx context.Context, op OLCPOpcode, req []byte) (olcpResponseDecoded, error) {
	resp, err := c.olcpTransact(ctx, op, req)
	if err != nil {
		return olcpResponseDecoded{}, err
	}
	if resp.result != OLCPSuccess {
		return olcpResponseDecoded{}, listResultErr("olcp", resp.result)
	}
	return resp, nil
}

// oacpTransact runs a capability-gated OACP request/response round trip. All
// seven OACP commands are capability-gated (spec.md §4.3), unlike OLCP's
// four unconditional navigation opcodes, so there's no unchecked path here.
// req is the fully wire-encoded request.
func (c *Client) oacpTransact(ctx context.Context, op OACPOpcode, req []byte) (oacpResponseDecoded, error) {
	if want, gated := oacpCapability[op]; gated && !c.features.Action.Has(want) {
		return oacpResponseDecoded{}, notSupportedErr("oacp")
	}
	raw, err := c.runTransaction(ctx, c.oacpChar, req)
	if err != nil {
		return oacpResponseDecoded{}, err
	}
	resp, err := decodeOACPResponse(raw)
	if err != nil {
		return oacpResponseDecoded{}, wrapErr("oacp.decode", KindDecode, err)
	}
	if resp.reqOpcode != op {
		return oacpResponseDecoded{}, wrapErr("oacp.decode", KindProtocol, BadResponse{Reason: "echoed opcode mismatch"})
	}
	return resp, nil
}

func (c *Client) oacpTransactStrict(ctx context.Context, op OACPOpcode, req []byte) (oacpResponseDecoded, error) {
	resp, err := c.oacpTransact(ctx, op, req)
	if err != nil {
		return oacpResponseDecoded{}, err
	}
	if resp.result != OACPSuccess {
		return oacpResponseDecoded{}, actionResultErr("oacp", resp.result)
	}
	return resp, nil
}
