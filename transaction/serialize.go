// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// wire constants
const (
	headerMarker         = 0xff
	legacyMultiSigMarker = 0xff
	maxVendorFieldBytes  = 255
)

// Serialize - canonical little endian wire format
//
//   0xff ‖ version ‖ network ‖ common ‖ sender key ‖ fee ‖ vendor field ‖ asset ‖ signatures
//
// where common is type u8 ‖ timestamp u32 for version 1 and
// typeGroup u32 ‖ type u16 ‖ nonce u64 for version 2
func (c *Codec) Serialize(data *Data, options SerializeOptions) ([]byte, error) {
	handler, err := c.handler(data)
	if nil != err {
		return nil, err
	}

	m := marshalutil.New()
	m.WriteByte(headerMarker)
	m.WriteByte(data.Version)
	m.WriteByte(data.Network)

	if 1 == data.Version {
		if data.Type > 0xff {
			return nil, fault.ErrUnknownTransactionType
		}
		m.WriteByte(uint8(data.Type))
		m.WriteUint32(data.Timestamp)
	} else {
		m.WriteUint32(uint32(data.TypeGroup))
		m.WriteUint16(uint16(data.Type))
		m.WriteUint64(data.Nonce)
	}

	if err := writeHex(m, data.SenderPublicKey, crypto.PublicKeySize, fault.ErrInvalidPublicKey); nil != err {
		return nil, err
	}
	m.WriteUint64(data.Fee)

	if handler.HasVendorField() && "" != data.VendorField {
		if len(data.VendorField) > maxVendorFieldBytes {
			return nil, fault.ErrVendorFieldTooLong
		}
		m.WriteByte(uint8(len(data.VendorField)))
		m.WriteBytes([]byte(data.VendorField))
	} else {
		m.WriteByte(0x00)
	}

	if err := handler.SerializeAsset(m, data); nil != err {
		return nil, err
	}

	if err := serializeSignatures(m, data, options); nil != err {
		return nil, err
	}

	return m.Bytes(), nil
}

func serializeSignatures(m *marshalutil.MarshalUtil, data *Data, options SerializeOptions) error {
	if !options.ExcludeSignature && "" != data.Signature {
		if err := writeHex(m, data.Signature, 0, fault.ErrInvalidSignature); nil != err {
			return err
		}
	}

	second := data.secondSignature()
	if !options.ExcludeSecondSignature && "" != second {
		if err := writeHex(m, second, 0, fault.ErrInvalidSignature); nil != err {
			return err
		}
	}

	if !options.ExcludeMultiSignature && 0 != len(data.Signatures) {
		if 1 == data.Version {
			m.WriteByte(legacyMultiSigMarker)
		}
		for _, signature := range data.Signatures {
			if err := writeHex(m, signature, 0, fault.ErrInvalidSignature); nil != err {
				return err
			}
		}
	}
	return nil
}
