// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

const checksumLength = 4

// Base58CheckEncode - payload followed by the first four bytes of its double SHA-256
func Base58CheckEncode(payload []byte) string {
	checksum := crypto.Hash256(payload)
	buffer := make([]byte, 0, len(payload)+checksumLength)
	buffer = append(buffer, payload...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// Base58CheckDecode - strip and verify the checksum
func Base58CheckDecode(s string) ([]byte, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrAddressChecksum
	}
	if len(decoded) <= checksumLength {
		return nil, fault.ErrAddressLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := crypto.Hash256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrAddressChecksum
	}
	return decoded[:checksumStart], nil
}
