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

// KeyPair - secp256k1 key pair
//
// the private key is the SHA-256 of a passphrase or taken
// directly from a WIF string
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
	Compressed bool
}

// KeyPairFromPassphrase - derive a key pair from a passphrase
func KeyPairFromPassphrase(passphrase string) *KeyPair {
	k, _ := KeyPairFromPrivateKey(crypto.Sha256([]byte(passphrase)), true)
	return k
}

// KeyPairFromPrivateKey - compute the public key of a raw private key
func KeyPairFromPrivateKey(privateKey []byte, compressed bool) (*KeyPair, error) {
	publicKey, err := crypto.PublicKey(privateKey)
	if nil != err {
		return nil, err
	}
	k := &KeyPair{
		PrivateKey: make([]byte, len(privateKey)),
		PublicKey:  publicKey,
		Compressed: compressed,
	}
	copy(k.PrivateKey, privateKey)
	return k, nil
}

// KeyPairFromWIF - decode a WIF string, checking the network version byte
func KeyPairFromWIF(wif string, version uint8) (*KeyPair, error) {
	decoded, err := Base58CheckDecode(wif)
	if nil != err {
		return nil, fault.ErrInvalidWIF
	}

	compressed := false
	switch len(decoded) {
	case 1 + crypto.PrivateKeySize:
	case 1 + crypto.PrivateKeySize + 1:
		if 0x01 != decoded[len(decoded)-1] {
			return nil, fault.ErrInvalidWIF
		}
		compressed = true
	default:
		return nil, fault.ErrInvalidWIF
	}
	if version != decoded[0] {
		return nil, fault.ErrNetworkWIFMismatch
	}
	return KeyPairFromPrivateKey(decoded[1:1+crypto.PrivateKeySize], compressed)
}

// WIF - encode the private key for a network
func (k *KeyPair) WIF(version uint8) string {
	payload := make([]byte, 0, 1+crypto.PrivateKeySize+1)
	payload = append(payload, version)
	payload = append(payload, k.PrivateKey...)
	if k.Compressed {
		payload = append(payload, 0x01)
	}
	return Base58CheckEncode(payload)
}

// PublicKeyHex - lower case hex of the compressed public key
func (k *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.PublicKey)
}

// Address - address of the key pair on a network
func (k *KeyPair) Address(networkByte uint8) string {
	address, _ := AddressFromPublicKey(k.PublicKeyHex(), networkByte)
	return address
}

// PublicKeyFromPassphrase - hex public key derived from a passphrase
func PublicKeyFromPassphrase(passphrase string) string {
	return KeyPairFromPassphrase(passphrase).PublicKeyHex()
}

// ValidatePublicKey - hex string decodes to a point on the curve
func ValidatePublicKey(publicKey string) bool {
	key, err := hex.DecodeString(publicKey)
	if nil != err || crypto.PublicKeySize != len(key) {
		return false
	}
	_, err = crypto.AddPublicKeys(key)
	return nil == err
}
