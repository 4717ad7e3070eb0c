// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/arkecosystem/arkcrypto/fault"
)

// sizes of the fixed length encodings
const (
	PrivateKeySize       = 32
	PublicKeySize        = 33
	SchnorrSignatureSize = 64
	HashSize             = 32
)

func privateKey(key []byte) (*btcec.PrivateKey, error) {
	if PrivateKeySize != len(key) {
		return nil, fault.ErrInvalidPrivateKey
	}
	priv, _ := btcec.PrivKeyFromBytes(key)
	return priv, nil
}

// SignECDSA - deterministic low-S ECDSA signature in DER encoding
func SignECDSA(hash []byte, key []byte) ([]byte, error) {
	priv, err := privateKey(key)
	if nil != err {
		return nil, err
	}
	return ecdsa.Sign(priv, hash).Serialize(), nil
}

// VerifyECDSA - check a DER signature; any parse failure is a mismatch
func VerifyECDSA(hash []byte, signature []byte, publicKey []byte) bool {
	pub, err := btcec.ParsePubKey(publicKey)
	if nil != err {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return false
	}
	return sig.Verify(hash, pub)
}

// SignSchnorr - 64 byte BIP-340 signature over a 32 byte hash
func SignSchnorr(hash []byte, key []byte) ([]byte, error) {
	priv, err := privateKey(key)
	if nil != err {
		return nil, err
	}
	sig, err := schnorr.Sign(priv, hash)
	if nil != err {
		return nil, err
	}
	return sig.Serialize(), nil
}

// VerifySchnorr - check a 64 byte signature against a compressed public key
func VerifySchnorr(hash []byte, signature []byte, publicKey []byte) bool {
	if SchnorrSignatureSize != len(signature) {
		return false
	}
	pub, err := btcec.ParsePubKey(publicKey)
	if nil != err {
		return false
	}
	sig, err := schnorr.ParseSignature(signature)
	if nil != err {
		return false
	}
	return sig.Verify(hash, pub)
}

// PublicKey - compressed public key of a private key
func PublicKey(key []byte) ([]byte, error) {
	priv, err := privateKey(key)
	if nil != err {
		return nil, err
	}
	return priv.PubKey().SerializeCompressed(), nil
}

// AddPublicKeys - elliptic curve sum of compressed public keys
func AddPublicKeys(publicKeys ...[]byte) ([]byte, error) {
	if 0 == len(publicKeys) {
		return nil, fault.ErrInvalidPublicKey
	}

	var sum btcec.JacobianPoint
	for i, k := range publicKeys {
		pub, err := btcec.ParsePubKey(k)
		if nil != err {
			return nil, fault.ErrInvalidPublicKey
		}
		var point, next btcec.JacobianPoint
		pub.AsJacobian(&point)
		if 0 == i {
			sum = point
			continue
		}
		btcec.AddNonConst(&sum, &point, &next)
		sum = next
	}

	if sum.Z.Normalize().IsZero() {
		return nil, fault.ErrPublicKeyAggregation
	}
	sum.ToAffine()
	return btcec.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(), nil
}
