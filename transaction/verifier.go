// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"strconv"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// Verifier - checks signatures of transaction data
//
// a signature that does not match gives false; errors are only
// returned for input that cannot be decoded
type Verifier struct {
	context  *chain.Context
	registry *Registry
	codec    *Codec
}

// NewVerifier - verifier for a network
func NewVerifier(context *chain.Context, registry *Registry, codec *Codec) *Verifier {
	return &Verifier{
		context:  context,
		registry: registry,
		codec:    codec,
	}
}

// Verify - the primary signature, plus the participants of a
// version 2 multi signature registration
func (v *Verifier) Verify(data *Data) (bool, error) {
	if "" != data.ID && v.context.IsException(data.ID) {
		return true, nil
	}
	if !v.context.IsSupportedVersion(data.Version) {
		return false, nil
	}

	handler, err := v.registry.Handler(data.InternalType(), data.Version)
	if nil != err {
		return false, err
	}
	if !handler.Enabled(v.context.Milestone()) {
		return false, nil
	}

	options := SerializeOptions{
		ExcludeSignature:       true,
		ExcludeSecondSignature: true,
	}

	asset, ok := data.Asset.(*MultiSignatureAsset)
	if !ok || !data.IsCore() || MultiSignatureType != data.Type {
		return v.verifyHash(data, data.Signature, data.SenderPublicKey, options)
	}

	aggregate, err := account.PublicKeyFromMultiSignature(asset.Min, asset.PublicKeys)
	if nil != err {
		return false, nil
	}
	valid, err := v.verifyHash(data, data.Signature, aggregate, options)
	if nil != err || !valid {
		return false, err
	}
	return v.VerifySignatures(data, asset)
}

// VerifySecondSignature - against the registered second public key
func (v *Verifier) VerifySecondSignature(data *Data, publicKey string) (bool, error) {
	return v.verifyHash(data, data.secondSignature(), publicKey, SerializeOptions{
		ExcludeSecondSignature: true,
	})
}

// VerifySignatures - at least Min participants signed
//
// each entry is a hex index into the participant keys followed by a
// schnorr signature; an index used twice is an error
func (v *Verifier) VerifySignatures(data *Data, asset *MultiSignatureAsset) (bool, error) {
	if 0 == len(data.Signatures) {
		return false, nil
	}

	hash, err := v.codec.Hash(data, SerializeOptions{
		ExcludeSignature:       true,
		ExcludeSecondSignature: true,
		ExcludeMultiSignature:  true,
	})
	if nil != err {
		return false, err
	}

	seen := make(map[uint64]struct{})
	verified := 0
	for i, entry := range data.Signatures {
		if 2*schnorrPartSize != len(entry) {
			return false, fault.ErrSignatureMalformed
		}
		index, err := strconv.ParseUint(entry[:2], 16, 8)
		if nil != err {
			return false, fault.ErrSignatureMalformed
		}
		if _, ok := seen[index]; ok {
			return false, fault.ErrDuplicateParticipant
		}
		seen[index] = struct{}{}

		signature, err := hex.DecodeString(entry[2:])
		if nil != err {
			return false, fault.ErrSignatureMalformed
		}
		if int(index) < len(asset.PublicKeys) {
			publicKey, err := hex.DecodeString(asset.PublicKeys[index])
			if nil == err && crypto.VerifySchnorr(hash, signature, publicKey) {
				verified += 1
			}
		}

		if verified == int(asset.Min) {
			return true, nil
		}
		// not enough entries left to reach the minimum
		if len(data.Signatures)-(i+1-verified) < int(asset.Min) {
			break
		}
	}
	return false, nil
}

func (v *Verifier) verifyHash(data *Data, signature string, publicKey string, options SerializeOptions) (bool, error) {
	if "" == signature || "" == publicKey {
		return false, nil
	}
	s, err := hex.DecodeString(signature)
	if nil != err {
		return false, fault.ErrInvalidSignature
	}
	key, err := hex.DecodeString(publicKey)
	if nil != err {
		return false, fault.ErrInvalidPublicKey
	}

	hash, err := v.codec.Hash(data, options)
	if nil != err {
		return false, err
	}
	if 1 == data.Version {
		return crypto.VerifyECDSA(hash, s, key), nil
	}
	return crypto.VerifySchnorr(hash, s, key), nil
}
