// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/arkecosystem/arkcrypto/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidNetwork    = fault.InvalidError("network can only be mainnet/devnet/testnet/unitnet")
	ErrMissingHex        = fault.InvalidError("transaction hex is required")
	ErrMissingMessage    = fault.InvalidError("message is required")
	ErrMissingPassphrase = fault.InvalidError("passphrase is required")
	ErrMissingPublicKey  = fault.InvalidError("public key is required")
	ErrMissingRecipient  = fault.InvalidError("recipient is required")
	ErrMissingSignature  = fault.InvalidError("signature is required")
	ErrNotVerified       = fault.SignatureError("transaction signature did not verify")
	ErrZeroAmount        = fault.InvalidError("amount must be positive")
)
