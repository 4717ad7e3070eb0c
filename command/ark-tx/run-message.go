// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/crypto"
)

type messageResult struct {
	*crypto.SignedMessage
	Verified bool `json:"verified"`
}

func runMessageSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	passphrase := c.String("passphrase")
	if "" == passphrase {
		return ErrMissingPassphrase
	}
	message := c.String("message")
	if "" == message {
		return ErrMissingMessage
	}

	signed, err := crypto.SignMessage(message, account.KeyPairFromPassphrase(passphrase).PrivateKey)
	if nil != err {
		return err
	}
	return printJson(m.w, signed)
}

func runMessageVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signed := &crypto.SignedMessage{
		PublicKey: c.String("public-key"),
		Signature: c.String("signature"),
		Message:   c.String("message"),
	}
	switch {
	case "" == signed.PublicKey:
		return ErrMissingPublicKey
	case "" == signed.Signature:
		return ErrMissingSignature
	case "" == signed.Message:
		return ErrMissingMessage
	}

	return printJson(m.w, messageResult{
		SignedMessage: signed,
		Verified:      signed.Verify(),
	})
}
