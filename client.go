package ots

import (
	"context"

	"github.com/otsclient/ots/internal/otslog"
)

// Client is the OTS façade: one instance is bound to a single
// GATT-connected peer, the way the teacher's Peripheral bound to one
// connected central (spec.md §4.5, Design Note 9.3). The selected object is
// server-side state changed through the navigation methods; Client does not
// track it.
type Client struct {
	gatt   GattSession
	dialer L2CAPDialer
	device DeviceID
	config Config
	log    *otslog.Logger

	local MACAddress
	peer  MACAddress

	features Features

	oacpChar             CharacteristicID
	objectNameChar       CharacteristicID
	objectTypeChar       CharacteristicID
	objectSizeChar       CharacteristicID
	objectPropertiesChar CharacteristicID

	// Optional characteristics. Nil means "server did not expose it";
	// commands routed through an absent characteristic fail locally with
	// NotSupported (spec.md §4.5).
	olcpChar               CharacteristicID
	objectIDChar           CharacteristicID
	objectFirstCreatedChar CharacteristicID
	objectLastModifiedChar CharacteristicID
}

// NewClient resolves the OTS service and its characteristics on device and
// returns a ready-to-use Client (spec.md §4.5). The mandatory
// characteristics (OTS Feature, Object Name, Object Type, Object Size,
// Object Properties, OACP) must all resolve; a lookup failure on any of
// them propagates. The optional ones (OLCP, Object ID, First-Created,
// Last-Modified) are simply left unresolved when the collaborator reports
// them not found.
func NewClient(ctx context.Context, gatt GattSession, dialer L2CAPDialer, device DeviceID, log *otslog.Logger, opts ...Option) (*Client, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, wrapErr("client.new", KindIO, err)
	}

	svc, err := gatt.LookupService(ctx, device, ServiceObjectTransfer)
	if err != nil {
		return nil, wrapErr("client.new", KindGATT, err)
	}

	c := &Client{gatt: gatt, dialer: dialer, device: device, config: cfg, log: log}

	featureChar, err := gatt.LookupCharacteristic(ctx, svc, CharOTSFeature)
	if err != nil {
		return nil, wrapErr("client.new", KindGATT, err)
	}
	raw, err := gatt.ReadCharacteristic(ctx, featureChar)
	if err != nil {
		return nil, wrapErr("client.new", KindGATT, err)
	}
	c.features, err = decodeFeatures(raw)
	if err != nil {
		return nil, wrapErr("client.new", KindDecode, err)
	}

	for _, m := range []struct {
		uuid   UUID
		target *CharacteristicID
	}{
		{CharObjectName, &c.objectNameChar},
		{CharObjectType, &c.objectTypeChar},
		{CharObjectSize, &c.objectSizeChar},
		{CharObjectProperties, &c.objectPropertiesChar},
		{CharOACP, &c.oacpChar},
	} {
		id, err := gatt.LookupCharacteristic(ctx, svc, m.uuid)
		if err != nil {
			return nil, wrapErr("client.new", KindGATT, err)
		}
		*m.target = id
	}

	for _, m := range []struct {
		uuid   UUID
		target *CharacteristicID
	}{
		{CharOLCP, &c.olcpChar},
		{CharObjectID, &c.objectIDChar},
		{CharObjectFirstCreated, &c.objectFirstCreatedChar},
		{CharObjectLastModified, &c.objectLastModifiedChar},
	} {
		id, err := gatt.LookupCharacteristic(ctx, svc, m.uuid)
		switch {
		case err == nil:
			*m.target = id
		case isNotFoundErr(err):
			// left nil: optional characteristic absent.
		default:
			return nil, wrapErr("client.new", KindGATT, err)
		}
	}

	c.local, err = gatt.LocalAdapterAddress(ctx, device)
	if err != nil {
		return nil, wrapErr("client.new", KindGATT, err)
	}
	c.peer, err = gatt.PeerAddress(ctx, device)
	if err != nil {
		return nil, wrapErr("client.new", KindGATT, err)
	}

	c.log.Debugf("ots client ready: action=%#x list=%#x", c.features.Action, c.features.List)
	return c, nil
}

// Features returns the Action/List feature bits the server advertised at
// construction time (spec.md §4.5). This package never refreshes it.
func (c *Client) Features() Features { return c.features }
