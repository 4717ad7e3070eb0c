// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
)

// Transaction - decoded, identified and verified transaction
//
// immutable once built by the factory; accessors return copies
type Transaction struct {
	data       *Data
	serialized []byte
	verified   bool
	handler    Handler
}

// ID - hex identifier
func (t *Transaction) ID() string {
	return t.data.ID
}

// Data - a copy of the field level view
func (t *Transaction) Data() *Data {
	return t.data.Clone()
}

// Serialized - a copy of the wire bytes
func (t *Transaction) Serialized() []byte {
	b := make([]byte, len(t.serialized))
	copy(b, t.serialized)
	return b
}

// Hex - the wire bytes as hex
func (t *Transaction) Hex() string {
	return hex.EncodeToString(t.serialized)
}

// IsVerified - signature checked when the transaction was built
func (t *Transaction) IsVerified() bool {
	return t.verified
}

// Version - 1 or 2
func (t *Transaction) Version() uint8 {
	return t.data.Version
}

// Type - the interned type
func (t *Transaction) Type() *InternalType {
	return t.data.InternalType()
}

// Key - static fee key of the type
func (t *Transaction) Key() string {
	return t.handler.Key()
}

// HasVendorField - the type carries a vendor field
func (t *Transaction) HasVendorField() bool {
	return t.handler.HasVendorField()
}
