package ots

import "context"

// First selects the first object in the current list order (spec.md §4.7).
// Unconditional: it requires only that the server expose OLCP.
func (c *Client) First(ctx context.Context) error {
	_, err := c.olcpTransactStrict(ctx, OLCPFirst, encodeOLCPRequest(OLCPFirst, nil))
	return err
}

// Last selects the last object in the current list order.
func (c *Client) Last(ctx context.Context) error {
	_, err := c.olcpTransactStrict(ctx, OLCPLast, encodeOLCPRequest(OLCPLast, nil))
	return err
}

// Previous selects the object preceding the currently selected one. It
// returns ok == false, with no error, if the selection was already at the
// head of the list (OLCPOutOfBounds) — spec.md §4.7 treats that as a
// recoverable boundary condition, not a failure.
func (c *Client) Previous(ctx context.Context) (bool, error) {
	resp, err := c.olcpTransact(ctx, OLCPPrevious, encodeOLCPRequest(OLCPPrevious, nil))
	if err != nil {
		return false, err
	}
	switch resp.result {
	case OLCPSuccess:
		return true, nil
	case OLCPOutOfBounds:
		return false, nil
	default:
		return false, listResultErr("olcp.previous", resp.result)
	}
}

// Next selects the object following the currently selected one. It returns
// ok == false, with no error, at the tail of the list.
func (c *Client) Next(ctx context.Context) (bool, error) {
	resp, err := c.olcpTransact(ctx, OLCPNext, encodeOLCPRequest(OLCPNext, nil))
	if err != nil {
		return false, err
	}
	switch resp.result {
	case OLCPSuccess:
		return true, nil
	case OLCPOutOfBounds:
		return false, nil
	default:
		return false, listResultErr("olcp.next", resp.result)
	}
}

// GoTo selects the object with the given ID directly. It returns ok ==
// false, with no error, when no such object exists (OLCPObjectIDNotFound).
// Requires ListFeatureGoTo.
func (c *Client) GoTo(ctx context.Context, id ObjectID) (bool, error) {
	resp, err := c.olcpTransact(ctx, OLCPGoTo, encodeOLCPGoTo(id))
	if err != nil {
		return false, err
	}
	switch resp.result {
	case OLCPSuccess:
		return true, nil
	case OLCPObjectIDNotFound:
		return false, nil
	default:
		return false, listResultErr("olcp.goto", resp.result)
	}
}

// Order changes the server's list sort order. Requires ListFeatureOrder.
func (c *Client) Order(ctx context.Context, o SortOrder) error {
	_, err := c.olcpTransactStrict(ctx, OLCPOrder, encodeOLCPOrder(o))
	return err
}

// NumberOf returns the count of objects in the current list. Requires
// ListFeatureNumberOf.
func (c *Client) NumberOf(ctx context.Context) (uint32, error) {
	resp, err := c.olcpTransactStrict(ctx, OLCPNumberOf, encodeOLCPRequest(OLCPNumberOf, nil))
	if err != nil {
		return 0, err
	}
	n, err := decodeOLCPNumberOf(resp.payload)
	if err != nil {
		return 0, wrapErr("olcp.numberOf", KindDecode, err)
	}
	return n, nil
}

// ClearMark clears the Mark property on every object in the list. Requires
// ListFeatureClearMark.
func (c *Client) ClearMark(ctx context.Context) error {
	_, err := c.olcpTransactStrict(ctx, OLCPClearMark, encodeOLCPRequest(OLCPClearMark, nil))
	return err
}
