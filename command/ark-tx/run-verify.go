// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type verifyResult struct {
	ID       string `json:"id"`
	Verified bool   `json:"verified"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	buffer, err := hexArgument(c)
	if nil != err {
		return err
	}

	tx, err := m.manager.Factory.FromBytes(buffer, true)
	if nil != err {
		return err
	}

	err = printJson(m.w, verifyResult{
		ID:       tx.ID(),
		Verified: tx.IsVerified(),
	})
	if nil != err {
		return err
	}
	if !tx.IsVerified() {
		return ErrNotVerified
	}
	return nil
}
