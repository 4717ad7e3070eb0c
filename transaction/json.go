// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"
)

// field order is part of the output format
type transactionJSON struct {
	Type            Type                   `json:"type"`
	Amount          uint64                 `json:"amount"`
	Fee             uint64                 `json:"fee"`
	RecipientID     string                 `json:"recipientId,omitempty"`
	Timestamp       *uint32                `json:"timestamp,omitempty"`
	TypeGroup       *TypeGroup             `json:"typeGroup,omitempty"`
	Nonce           *uint64                `json:"nonce,omitempty"`
	Asset           map[string]interface{} `json:"asset"`
	SenderPublicKey string                 `json:"senderPublicKey"`
	Signature       string                 `json:"signature,omitempty"`
	ID              string                 `json:"id"`
	SecondSignature string                 `json:"secondSignature,omitempty"`
	Signatures      []string               `json:"signatures,omitempty"`
	VendorField     string                 `json:"vendorField,omitempty"`
	Expiration      uint32                 `json:"expiration,omitempty"`
	Version         uint8                  `json:"version,omitempty"`
	Network         uint8                  `json:"network,omitempty"`
}

// MarshalJSON - JSON form with a fixed field order
//
// version 1 shows the timestamp; version 2 shows type group, nonce,
// version and network instead
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(dataJSON(t.data))
}

func dataJSON(d *Data) *transactionJSON {
	j := &transactionJSON{
		Type:            d.Type,
		Amount:          d.Amount,
		Fee:             d.Fee,
		RecipientID:     d.RecipientID,
		Asset:           map[string]interface{}{},
		SenderPublicKey: d.SenderPublicKey,
		Signature:       d.Signature,
		ID:              d.ID,
		SecondSignature: d.secondSignature(),
		Signatures:      d.Signatures,
		VendorField:     d.VendorField,
		Expiration:      d.Expiration,
	}
	if nil != d.Asset {
		j.Asset[d.Asset.AssetKey()] = d.Asset.AssetValue()
	}
	if 1 == d.Version {
		timestamp := d.Timestamp
		j.Timestamp = &timestamp
	} else {
		group := d.TypeGroup
		nonce := d.Nonce
		j.TypeGroup = &group
		j.Nonce = &nonce
		j.Version = d.Version
		j.Network = d.Network
	}
	return j
}

// ToJSON - indented JSON
func (t *Transaction) ToJSON() ([]byte, error) {
	return json.MarshalIndent(dataJSON(t.data), "", "  ")
}
