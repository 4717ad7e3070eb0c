// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/transaction"
)

// MultiPaymentBuilder - several transfers in one transaction
type MultiPaymentBuilder struct {
	common[*MultiPaymentBuilder]
}

// NewMultiPayment - multi payment, version 2 only
func NewMultiPayment(manager *transaction.Manager) *MultiPaymentBuilder {
	b := &MultiPaymentBuilder{}
	b.init(b, manager, transaction.MultiPaymentType)
	b.data.Version = 2
	b.data.Asset = &transaction.MultiPaymentAsset{}
	return b
}

// AddPayment - append a payment, up to the milestone limit
func (b *MultiPaymentBuilder) AddPayment(address string, amount uint64) *MultiPaymentBuilder {
	asset := b.data.Asset.(*transaction.MultiPaymentAsset)
	if len(asset.Payments) >= b.manager.Context.Milestone().MultiPaymentLimit {
		b.fail(fault.ErrMaximumPaymentCountExceeded)
		return b
	}
	asset.Payments = append(asset.Payments, transaction.Payment{
		Amount:      amount,
		RecipientID: address,
	})
	return b
}

// VendorField - free text, dropped when over the milestone limit
func (b *MultiPaymentBuilder) VendorField(vendorField string) *MultiPaymentBuilder {
	b.vendorField(vendorField)
	return b
}
