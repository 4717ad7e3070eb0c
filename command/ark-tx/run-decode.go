// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/arkecosystem/arkcrypto/transaction"
)

type decodeResult struct {
	ID          string                   `json:"id"`
	Key         string                   `json:"key"`
	Verified    bool                     `json:"verified"`
	Transaction *transaction.Transaction `json:"transaction"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buffer, err := hexArgument(c)
	if nil != err {
		return err
	}

	var tx *transaction.Transaction
	if c.Bool("unsafe") {
		tx, err = m.manager.Factory.FromBytesUnsafe(buffer, "")
	} else {
		tx, err = m.manager.Factory.FromBytes(buffer, false)
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "decoded: %d bytes  type: %s  version: %d\n", len(buffer), tx.Type(), tx.Version())
	}

	return printJson(m.w, decodeResult{
		ID:          tx.ID(),
		Key:         tx.Key(),
		Verified:    tx.IsVerified(),
		Transaction: tx,
	})
}

func hexArgument(c *cli.Context) ([]byte, error) {
	s := c.Args().First()
	if "" == s {
		return nil, ErrMissingHex
	}
	return hex.DecodeString(s)
}
