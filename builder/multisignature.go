// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/transaction"
)

// MultiSignatureBuilder - register a multi signature group
//
// the fee is the static fee times the participant count plus one and
// is recomputed whenever a participant is added
type MultiSignatureBuilder struct {
	common[*MultiSignatureBuilder]
}

// NewMultiSignature - multi signature registration
func NewMultiSignature(manager *transaction.Manager) *MultiSignatureBuilder {
	b := &MultiSignatureBuilder{}
	b.init(b, manager, transaction.MultiSignatureType)
	if 1 == b.data.Version {
		b.data.Asset = &transaction.LegacyMultiSignatureAsset{}
	} else {
		b.data.Asset = &transaction.MultiSignatureAsset{}
	}
	return b
}

// Participant - append a participant public key
func (b *MultiSignatureBuilder) Participant(publicKey string) *MultiSignatureBuilder {
	if !account.ValidatePublicKey(publicKey) {
		b.fail(fault.ErrInvalidPublicKey)
		return b
	}

	switch asset := b.data.Asset.(type) {
	case *transaction.MultiSignatureAsset:
		asset.PublicKeys = append(asset.PublicKeys, publicKey)
	case *transaction.LegacyMultiSignatureAsset:
		asset.Keysgroup = append(asset.Keysgroup, "+"+publicKey)
	}

	fee, err := b.manager.Fees.ForTransaction(b.data)
	b.fail(err)
	if nil == err {
		b.data.Fee = fee
	}
	return b
}

// Min - signatures required
func (b *MultiSignatureBuilder) Min(min uint8) *MultiSignatureBuilder {
	switch asset := b.data.Asset.(type) {
	case *transaction.MultiSignatureAsset:
		asset.Min = min
	case *transaction.LegacyMultiSignatureAsset:
		asset.Min = min
	}
	return b
}

// Lifetime - hours a version 1 group waits for signatures
func (b *MultiSignatureBuilder) Lifetime(hours uint8) *MultiSignatureBuilder {
	if asset, ok := b.data.Asset.(*transaction.LegacyMultiSignatureAsset); ok {
		asset.Lifetime = hours
	}
	return b
}
