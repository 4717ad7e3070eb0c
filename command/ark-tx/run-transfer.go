// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arkecosystem/arkcrypto/builder"
	"github.com/arkecosystem/arkcrypto/transaction"
)

type transferResult struct {
	ID          string                   `json:"id"`
	Hex         string                   `json:"hex"`
	Transaction *transaction.Transaction `json:"transaction"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	passphrase := c.String("passphrase")
	if "" == passphrase {
		return ErrMissingPassphrase
	}
	recipient := c.String("recipient")
	if "" == recipient {
		return ErrMissingRecipient
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrZeroAmount
	}

	b := builder.NewTransfer(m.manager).
		Amount(amount).
		RecipientID(recipient).
		Nonce(c.Uint64("nonce")).
		VendorField(c.String("vendor-field"))
	if fee := c.Uint64("fee"); 0 != fee {
		b.Fee(fee)
	}
	b.Sign(passphrase)
	if second := c.String("second-passphrase"); "" != second {
		b.SecondSign(second)
	}

	tx, err := b.Build()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transfer: %d to: %s  fee: %d\n", amount, recipient, tx.Data().Fee)
	}

	return printJson(m.w, transferResult{
		ID:          tx.ID(),
		Hex:         tx.Hex(),
		Transaction: tx,
	})
}
