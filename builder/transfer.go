// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/arkecosystem/arkcrypto/transaction"
)

// TransferBuilder - value transfer
type TransferBuilder struct {
	common[*TransferBuilder]
}

// NewTransfer - transfer with the static fee of the current milestone
func NewTransfer(manager *transaction.Manager) *TransferBuilder {
	b := &TransferBuilder{}
	b.init(b, manager, transaction.TransferType)
	return b
}

// Amount - arktoshi to send
func (b *TransferBuilder) Amount(amount uint64) *TransferBuilder {
	b.data.Amount = amount
	return b
}

// RecipientID - destination address
func (b *TransferBuilder) RecipientID(address string) *TransferBuilder {
	b.data.RecipientID = address
	return b
}

// Expiration - height after which the transfer is void, 0 for none
func (b *TransferBuilder) Expiration(expiration uint32) *TransferBuilder {
	b.data.Expiration = expiration
	return b
}

// VendorField - free text, dropped when over the milestone limit
func (b *TransferBuilder) VendorField(vendorField string) *TransferBuilder {
	b.vendorField(vendorField)
	return b
}
