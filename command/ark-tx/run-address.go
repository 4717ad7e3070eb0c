// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/arkecosystem/arkcrypto/account"
)

type addressResult struct {
	Network   string `json:"network"`
	PublicKey string `json:"publicKey"`
	Address   string `json:"address"`
	WIF       string `json:"wif,omitempty"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	network := m.manager.Context.Network()

	result := addressResult{
		Network: network.Name,
	}

	if passphrase := c.String("passphrase"); "" != passphrase {
		keys := account.KeyPairFromPassphrase(passphrase)
		result.PublicKey = keys.PublicKeyHex()
		result.WIF = keys.WIF(network.WIF)
	} else {
		result.PublicKey = c.String("public-key")
	}
	if "" == result.PublicKey {
		return ErrMissingPublicKey
	}

	address, err := account.AddressFromPublicKey(result.PublicKey, network.PubKeyHash)
	if nil != err {
		return err
	}
	result.Address = address

	return printJson(m.w, result)
}
