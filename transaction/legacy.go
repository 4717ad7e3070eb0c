// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"

	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// the vendor field is zero padded to this size in the legacy layout
const legacyVendorFieldSize = 64

// legacyBytes - version 1 hashing layout
//
//   type u8 ‖ timestamp u32 ‖ sender key ‖ recipient 21 ‖ vendor field 64 ‖
//   amount u64 ‖ fee u64 ‖ asset ‖ signature ‖ second signature
//
// multi signatures never take part
func (c *Codec) legacyBytes(data *Data, options SerializeOptions) ([]byte, error) {
	if data.Type > 0xff {
		return nil, fault.ErrUnknownTransactionType
	}

	m := marshalutil.New()
	m.WriteByte(uint8(data.Type))
	m.WriteUint32(data.Timestamp)
	if err := writeHex(m, data.SenderPublicKey, crypto.PublicKeySize, fault.ErrInvalidPublicKey); nil != err {
		return nil, err
	}

	if "" != data.RecipientID && SecondSignatureType != data.Type && MultiSignatureType != data.Type {
		if err := writeAddress(m, data.RecipientID); nil != err {
			return nil, err
		}
	} else {
		m.WriteBytes(make([]byte, account.AddressSize))
	}

	vendorField := []byte(data.VendorField)
	m.WriteBytes(vendorField)
	if len(vendorField) < legacyVendorFieldSize {
		m.WriteBytes(make([]byte, legacyVendorFieldSize-len(vendorField)))
	}

	m.WriteUint64(data.Amount)
	m.WriteUint64(data.Fee)

	switch asset := data.Asset.(type) {
	case *SecondSignatureAsset:
		if err := writeHex(m, asset.PublicKey, crypto.PublicKeySize, fault.ErrInvalidPublicKey); nil != err {
			return nil, err
		}
	case *DelegateAsset:
		m.WriteBytes([]byte(asset.Username))
	case *VoteAsset:
		m.WriteBytes([]byte(strings.Join(asset.Votes, "")))
	case *LegacyMultiSignatureAsset:
		m.WriteByte(asset.Min)
		m.WriteByte(asset.Lifetime)
		m.WriteBytes([]byte(strings.Join(asset.Keysgroup, "")))
	}

	if !options.ExcludeSignature && "" != data.Signature {
		if err := writeHex(m, data.Signature, 0, fault.ErrInvalidSignature); nil != err {
			return nil, err
		}
	}
	second := data.secondSignature()
	if !options.ExcludeSecondSignature && "" != second {
		if err := writeHex(m, second, 0, fault.ErrInvalidSignature); nil != err {
			return nil, err
		}
	}

	return m.Bytes(), nil
}
