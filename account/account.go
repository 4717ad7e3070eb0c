// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// AddressSize - network byte followed by RIPEMD-160 of the public key
const AddressSize = 21

// AddressFromPublicKey - base58check address of a hex public key
func AddressFromPublicKey(publicKey string, networkByte uint8) (string, error) {
	key, err := hex.DecodeString(publicKey)
	if nil != err || crypto.PublicKeySize != len(key) {
		return "", fault.ErrInvalidPublicKey
	}
	payload := make([]byte, 0, AddressSize)
	payload = append(payload, networkByte)
	payload = append(payload, crypto.Ripemd160(key)...)
	return Base58CheckEncode(payload), nil
}

// AddressFromPassphrase - address of the key pair derived from a passphrase
func AddressFromPassphrase(passphrase string, networkByte uint8) (string, error) {
	return AddressFromPublicKey(PublicKeyFromPassphrase(passphrase), networkByte)
}

// AddressToBuffer - the 21 raw bytes of an address
func AddressToBuffer(address string) ([]byte, error) {
	buffer, err := Base58CheckDecode(address)
	if nil != err {
		return nil, err
	}
	if AddressSize != len(buffer) {
		return nil, fault.ErrAddressLength
	}
	return buffer, nil
}

// AddressFromBuffer - encode 21 raw bytes as an address
func AddressFromBuffer(buffer []byte) (string, error) {
	if AddressSize != len(buffer) {
		return "", fault.ErrAddressLength
	}
	return Base58CheckEncode(buffer), nil
}

// ValidateAddress - well formed and belongs to the network
func ValidateAddress(address string, networkByte uint8) bool {
	buffer, err := AddressToBuffer(address)
	if nil != err {
		return false
	}
	return networkByte == buffer[0]
}
