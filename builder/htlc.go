// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/arkecosystem/arkcrypto/transaction"
)

// HTLCLockBuilder - lock an amount behind a secret hash
type HTLCLockBuilder struct {
	common[*HTLCLockBuilder]
}

// NewHTLCLock - hash time lock, version 2 only
func NewHTLCLock(manager *transaction.Manager) *HTLCLockBuilder {
	b := &HTLCLockBuilder{}
	b.init(b, manager, transaction.HTLCLockType)
	b.data.Version = 2
	b.data.Asset = &transaction.HTLCLockAsset{}
	return b
}

// Amount - arktoshi to lock
func (b *HTLCLockBuilder) Amount(amount uint64) *HTLCLockBuilder {
	b.data.Amount = amount
	return b
}

// RecipientID - who may claim
func (b *HTLCLockBuilder) RecipientID(address string) *HTLCLockBuilder {
	b.data.RecipientID = address
	return b
}

// SecretHash - hex sha256 of the secret
func (b *HTLCLockBuilder) SecretHash(hash string) *HTLCLockBuilder {
	b.data.Asset.(*transaction.HTLCLockAsset).SecretHash = hash
	return b
}

// Expiration - epoch timestamp or block height after which a refund is allowed
func (b *HTLCLockBuilder) Expiration(kind uint8, value uint32) *HTLCLockBuilder {
	b.data.Asset.(*transaction.HTLCLockAsset).Expiration = transaction.HTLCExpiration{
		Type:  kind,
		Value: value,
	}
	return b
}

// VendorField - free text, dropped when over the milestone limit
func (b *HTLCLockBuilder) VendorField(vendorField string) *HTLCLockBuilder {
	b.vendorField(vendorField)
	return b
}

// HTLCClaimBuilder - claim a lock with its secret
type HTLCClaimBuilder struct {
	common[*HTLCClaimBuilder]
}

// NewHTLCClaim - hash time lock claim, version 2 only
func NewHTLCClaim(manager *transaction.Manager) *HTLCClaimBuilder {
	b := &HTLCClaimBuilder{}
	b.init(b, manager, transaction.HTLCClaimType)
	b.data.Version = 2
	return b
}

// Claim - the lock transaction id and the hex secret
func (b *HTLCClaimBuilder) Claim(lockTransactionID string, unlockSecret string) *HTLCClaimBuilder {
	b.data.Asset = &transaction.HTLCClaimAsset{
		LockTransactionID: lockTransactionID,
		UnlockSecret:      unlockSecret,
	}
	return b
}

// HTLCRefundBuilder - return an expired lock to its sender
type HTLCRefundBuilder struct {
	common[*HTLCRefundBuilder]
}

// NewHTLCRefund - hash time lock refund, version 2 only
func NewHTLCRefund(manager *transaction.Manager) *HTLCRefundBuilder {
	b := &HTLCRefundBuilder{}
	b.init(b, manager, transaction.HTLCRefundType)
	b.data.Version = 2
	return b
}

// Refund - the lock transaction id
func (b *HTLCRefundBuilder) Refund(lockTransactionID string) *HTLCRefundBuilder {
	b.data.Asset = &transaction.HTLCRefundAsset{LockTransactionID: lockTransactionID}
	return b
}
