// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"fmt"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// NextIndex - let MultiSign pick the next free participant index
const NextIndex = -1

// Signer - produces the signatures of transaction data
//
// version 1 is signed with ECDSA and version 2 with schnorr
type Signer struct {
	codec *Codec
}

// NewSigner - signer hashing through a codec
func NewSigner(codec *Codec) *Signer {
	return &Signer{codec: codec}
}

func sign(version uint8, hash []byte, keys *account.KeyPair) (string, error) {
	var signature []byte
	var err error
	if 1 == version {
		signature, err = crypto.SignECDSA(hash, keys.PrivateKey)
	} else {
		signature, err = crypto.SignSchnorr(hash, keys.PrivateKey)
	}
	if nil != err {
		return "", err
	}
	return hex.EncodeToString(signature), nil
}

// Sign - the primary signature, stored in data and returned
func (s *Signer) Sign(data *Data, keys *account.KeyPair) (string, error) {
	hash, err := s.codec.Hash(data, SerializeOptions{
		ExcludeSignature:       true,
		ExcludeSecondSignature: true,
	})
	if nil != err {
		return "", err
	}
	signature, err := sign(data.Version, hash, keys)
	if nil != err {
		return "", err
	}
	data.Signature = signature
	return signature, nil
}

// SecondSign - the second signature covers the primary one
func (s *Signer) SecondSign(data *Data, keys *account.KeyPair) (string, error) {
	hash, err := s.codec.Hash(data, SerializeOptions{
		ExcludeSecondSignature: true,
	})
	if nil != err {
		return "", err
	}
	signature, err := sign(data.Version, hash, keys)
	if nil != err {
		return "", err
	}
	data.SecondSignature = signature
	data.SignSignature = ""
	return signature, nil
}

// MultiSign - append an index prefixed schnorr signature
//
// a negative index takes the next position in the signature list
func (s *Signer) MultiSign(data *Data, keys *account.KeyPair, index int) (string, error) {
	if index < 0 {
		index = len(data.Signatures)
	}
	if index > 0xff {
		return "", fault.ErrMultiSignatureIndex
	}

	hash, err := s.codec.Hash(data, SerializeOptions{
		ExcludeSignature:       true,
		ExcludeSecondSignature: true,
		ExcludeMultiSignature:  true,
	})
	if nil != err {
		return "", err
	}
	signature, err := crypto.SignSchnorr(hash, keys.PrivateKey)
	if nil != err {
		return "", err
	}

	indexed := fmt.Sprintf("%02x", index) + hex.EncodeToString(signature)
	data.Signatures = append(data.Signatures, indexed)
	return indexed, nil
}
