// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"strings"

	"github.com/iotaledger/hive.go/marshalutil"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/crypto"
	"github.com/arkecosystem/arkcrypto/fault"
)

// signature section sizes
const (
	schnorrPartSize = 1 + crypto.SchnorrSignatureSize
)

// Deserialize - turn wire bytes into transaction data
//
// the signature section is parsed as ECDSA for version 1; for
// version 2 its length decides between schnorr and ECDSA
//
// every failure is returned as a fault class; anything raised by the
// byte reader becomes a format error
func (c *Codec) Deserialize(buffer []byte, options DeserializeOptions) (*Data, error) {
	data, err := c.deserialize(buffer, options)
	if nil != err {
		if !fault.IsFault(err) {
			err = fault.InvalidTransactionBytes(err.Error())
		}
		return nil, err
	}
	return data, nil
}

func (c *Codec) deserialize(buffer []byte, options DeserializeOptions) (data *Data, err error) {

	defer func() {
		if r := recover(); nil != r {
			data = nil
			err = fault.ErrNotTransactionPack
		}
	}()

	m := marshalutil.New(buffer)
	data = &Data{}

	marker, err := m.ReadByte()
	if nil != err {
		return nil, err
	}
	if headerMarker != marker {
		return nil, fault.ErrNotTransactionPack
	}
	if data.Version, err = m.ReadByte(); nil != err {
		return nil, err
	}
	if 1 != data.Version && 2 != data.Version {
		return nil, fault.UnsupportedVersion(data.Version)
	}
	if data.Network, err = m.ReadByte(); nil != err {
		return nil, err
	}

	if 1 == data.Version {
		typ, err := m.ReadByte()
		if nil != err {
			return nil, err
		}
		data.Type = Type(typ)
		data.TypeGroup = CoreGroup
		if data.Timestamp, err = m.ReadUint32(); nil != err {
			return nil, err
		}
	} else {
		group, err := m.ReadUint32()
		if nil != err {
			return nil, err
		}
		typ, err := m.ReadUint16()
		if nil != err {
			return nil, err
		}
		data.TypeGroup = TypeGroup(group)
		data.Type = Type(typ)
		if data.Nonce, err = m.ReadUint64(); nil != err {
			return nil, err
		}
	}

	if data.SenderPublicKey, err = readHex(m, crypto.PublicKeySize); nil != err {
		return nil, err
	}
	if data.Fee, err = m.ReadUint64(); nil != err {
		return nil, err
	}

	handler, err := c.registry.Handler(data.InternalType(), data.Version)
	if nil != err {
		return nil, err
	}

	// the length byte is always present; the bytes are only kept
	// when the type carries a vendor field
	vendorFieldLength, err := m.ReadByte()
	if nil != err {
		return nil, err
	}
	if vendorFieldLength > 0 {
		vendorField, err := m.ReadBytes(int(vendorFieldLength))
		if nil != err {
			return nil, err
		}
		if handler.HasVendorField() {
			data.VendorField = string(vendorField)
		}
	}

	if err := handler.DeserializeAsset(m, data); nil != err {
		return nil, err
	}

	if 2 == data.Version && detectSchnorr(m) {
		err = deserializeSchnorr(m, data)
	} else {
		err = deserializeECDSA(m, data)
	}
	if nil != err {
		return nil, err
	}

	// malformed bytes are reported before an unsupported version
	if !options.AcceptLegacyVersion && !c.context.IsSupportedVersion(data.Version) {
		return nil, fault.UnsupportedVersion(data.Version)
	}

	if 1 == data.Version {
		applyV1Compatibility(data)
	}
	return data, nil
}

// a remaining length that can only be made of schnorr parts
func detectSchnorr(m *marshalutil.MarshalUtil) bool {
	r := remaining(m)
	if crypto.SchnorrSignatureSize == r || 2*crypto.SchnorrSignatureSize == r {
		return true
	}
	if 0 == r%schnorrPartSize {
		return true
	}
	if r >= crypto.SchnorrSignatureSize && 0 == (r-crypto.SchnorrSignatureSize)%schnorrPartSize {
		return true
	}
	return r >= 2*crypto.SchnorrSignatureSize && 0 == (r-2*crypto.SchnorrSignatureSize)%schnorrPartSize
}

func deserializeSchnorr(m *marshalutil.MarshalUtil, data *Data) (err error) {
	canReadNonMultiSignature := func() bool {
		r := remaining(m)
		return r > 0 && (0 == r%crypto.SchnorrSignatureSize || 0 != r%schnorrPartSize)
	}

	if canReadNonMultiSignature() {
		if data.Signature, err = readHex(m, crypto.SchnorrSignatureSize); nil != err {
			return err
		}
	}
	if canReadNonMultiSignature() {
		if data.SecondSignature, err = readHex(m, crypto.SchnorrSignatureSize); nil != err {
			return err
		}
	}

	if 0 == remaining(m) {
		return nil
	}
	if 0 != remaining(m)%schnorrPartSize {
		return fault.ErrSignatureMalformed
	}

	seen := make(map[byte]struct{})
	for remaining(m) > 0 {
		part, err := m.ReadBytes(schnorrPartSize)
		if nil != err {
			return err
		}
		if _, ok := seen[part[0]]; ok {
			return fault.ErrDuplicateParticipant
		}
		seen[part[0]] = struct{}{}
		data.Signatures = append(data.Signatures, hex.EncodeToString(part))
	}
	return nil
}

// DER signatures carry their own length in the second byte
func readDER(m *marshalutil.MarshalUtil) (string, error) {
	length, ok := peek(m, 1)
	if !ok {
		return "", fault.ErrSignatureMalformed
	}
	return readHex(m, int(length)+2)
}

func deserializeECDSA(m *marshalutil.MarshalUtil, data *Data) (err error) {
	if 0 == remaining(m) {
		return nil
	}
	if data.Signature, err = readDER(m); nil != err {
		return err
	}

	if next, ok := peek(m, 0); ok && legacyMultiSigMarker != next {
		if data.SecondSignature, err = readDER(m); nil != err {
			return err
		}
	}

	if next, ok := peek(m, 0); ok && legacyMultiSigMarker == next {
		_, _ = m.ReadByte()
		for remaining(m) > 0 {
			signature, err := readDER(m)
			if nil != err {
				return err
			}
			data.Signatures = append(data.Signatures, signature)
		}
	}

	if remaining(m) > 0 {
		return fault.ErrSignatureBufferNotExhausted
	}
	return nil
}

// bring version 1 data to the shape of version 2
func applyV1Compatibility(data *Data) {
	if "" == data.SecondSignature {
		data.SecondSignature = data.SignSignature
	}
	data.SignSignature = ""
	data.TypeGroup = CoreGroup

	switch data.Type {
	case VoteType:
		address, err := account.AddressFromPublicKey(data.SenderPublicKey, data.Network)
		if nil == err {
			data.RecipientID = address
		}
	case MultiSignatureType:
		if asset, ok := data.Asset.(*LegacyMultiSignatureAsset); ok {
			for i, key := range asset.Keysgroup {
				if !strings.HasPrefix(key, legacyMultiSignaturePlus) {
					asset.Keysgroup[i] = legacyMultiSignaturePlus + key
				}
			}
		}
	}
}
