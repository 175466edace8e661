package ots

import (
	"context"
	"unicode/utf8"
)

// Name reads the Object Name characteristic of the currently selected
// object (spec.md §4.6).
func (c *Client) Name(ctx context.Context) (string, error) {
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectNameChar)
	if err != nil {
		return "", wrapErr("client.name", KindGATT, err)
	}
	if !utf8.Valid(b) {
		return "", wrapErr("client.name", KindDecode, BadUTF8{})
	}
	return string(b), nil
}

// Type reads the Object Type characteristic.
func (c *Client) Type(ctx context.Context) (UUID, error) {
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectTypeChar)
	if err != nil {
		return UUID{}, wrapErr("client.type", KindGATT, err)
	}
	u, err := decodeUUID(b)
	if err != nil {
		return UUID{}, wrapErr("client.type", KindDecode, err)
	}
	return u, nil
}

// Sizes reads the Object Size characteristic.
func (c *Client) Sizes(ctx context.Context) (Sizes, error) {
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectSizeChar)
	if err != nil {
		return Sizes{}, wrapErr("client.sizes", KindGATT, err)
	}
	s, err := decodeSizes(b)
	if err != nil {
		return Sizes{}, wrapErr("client.sizes", KindDecode, err)
	}
	return s, nil
}

// Properties reads the Object Properties characteristic.
func (c *Client) Properties(ctx context.Context) (PropertyFlags, error) {
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectPropertiesChar)
	if err != nil {
		return 0, wrapErr("client.properties", KindGATT, err)
	}
	p, err := decodeProperties(b)
	if err != nil {
		return 0, wrapErr("client.properties", KindDecode, err)
	}
	return p, nil
}

// ID reads the Object ID characteristic. It returns nil, nil if the server
// never exposed that characteristic (spec.md §4.5, §4.6).
func (c *Client) ID(ctx context.Context) (*ObjectID, error) {
	if c.objectIDChar == nil {
		return nil, nil
	}
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectIDChar)
	if err != nil {
		return nil, wrapErr("client.id", KindGATT, err)
	}
	id, err := decodeID48(b)
	if err != nil {
		return nil, wrapErr("client.id", KindDecode, err)
	}
	return &id, nil
}

// FirstCreated reads the Object First-Created characteristic. It returns
// nil, nil if the server never exposed that characteristic.
func (c *Client) FirstCreated(ctx context.Context) (*DateTime, error) {
	if c.objectFirstCreatedChar == nil {
		return nil, nil
	}
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectFirstCreatedChar)
	if err != nil {
		return nil, wrapErr("client.firstCreated", KindGATT, err)
	}
	dt, err := decodeDateTime(b)
	if err != nil {
		return nil, wrapErr("client.firstCreated", KindDecode, err)
	}
	return &dt, nil
}

// LastModified reads the Object Last-Modified characteristic. It returns
// nil, nil if the server never exposed that characteristic.
func (c *Client) LastModified(ctx context.Context) (*DateTime, error) {
	if c.objectLastModifiedChar == nil {
		return nil, nil
	}
	b, err := c.gatt.ReadCharacteristic(ctx, c.objectLastModifiedChar)
	if err != nil {
		return nil, wrapErr("client.lastModified", KindGATT, err)
	}
	dt, err := decodeDateTime(b)
	if err != nil {
		return nil, wrapErr("client.lastModified", KindDecode, err)
	}
	return &dt, nil
}

// Metadata assembles a full Metadata snapshot of the currently selected
// object from the individual characteristic getters (spec.md §4.6). A Name
// or Type failure propagates; a Size or Properties failure is swallowed —
// Size leaves both size fields nil, Properties defaults to the zero value —
// since those two are considered best-effort summary fields rather than
// identity fields.
func (c *Client) Metadata(ctx context.Context) (Metadata, error) {
	name, err := c.Name(ctx)
	if err != nil {
		return Metadata{}, err
	}
	typ, err := c.Type(ctx)
	if err != nil {
		return Metadata{}, err
	}

	md := Metadata{Name: name, Type: typ}

	if sizes, err := c.Sizes(ctx); err == nil {
		cur, alloc := sizes.Current, sizes.Allocated
		md.CurrentSize, md.AllocatedSize = &cur, &alloc
	}
	if props, err := c.Properties(ctx); err == nil {
		md.Properties = props
	}

	if id, err := c.ID(ctx); err != nil {
		return Metadata{}, err
	} else {
		md.ID = id
	}
	if fc, err := c.FirstCreated(ctx); err != nil {
		return Metadata{}, err
	} else {
		md.FirstCreated = fc
	}
	if lm, err := c.LastModified(ctx); err != nil {
		return Metadata{}, err
	} else {
		md.LastModified = lm
	}

	return md, nil
}
