// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// Data - the field level view of a transaction
//
// byte valued fields are kept as lower case hex, exactly as they
// appear in JSON
type Data struct {
	Version         uint8     // 1 or 2
	Network         uint8     // address version byte
	TypeGroup       TypeGroup // version 2 only, core for version 1
	Type            Type      // within the group
	Timestamp       uint32    // version 1 only: seconds since the network epoch
	Nonce           uint64    // version 2 only
	SenderPublicKey string    // hex: 33 byte compressed key
	Fee             uint64    // arktoshi
	Amount          uint64    // transfer and htlc lock
	Expiration      uint32    // transfer only, 0 = none
	RecipientID     string    // base58check address
	VendorField     string    // utf-8 on input, raw bytes after decoding
	Asset           Asset     // nil for transfer and delegate resignation
	Signature       string    // hex: DER (version 1) or 64 byte schnorr (version 2)
	SecondSignature string    // hex
	SignSignature   string    // hex: historical name of SecondSignature
	Signatures      []string  // hex: index byte + schnorr, or DER for version 1
	ID              string    // hex: 32 bytes
}

// Clone - deep copy
func (d *Data) Clone() *Data {
	c := *d
	if nil != d.Asset {
		c.Asset = d.Asset.Clone()
	}
	if nil != d.Signatures {
		c.Signatures = append([]string(nil), d.Signatures...)
	}
	return &c
}

// InternalType - the interned (type, group) of the data
func (d *Data) InternalType() *InternalType {
	return InternalTypeFrom(d.Type, d.TypeGroup)
}

// IsCore - belongs to the core type group
func (d *Data) IsCore() bool {
	return CoreGroup == d.TypeGroup
}

// the second signature under either of its names
func (d *Data) secondSignature() string {
	if "" != d.SecondSignature {
		return d.SecondSignature
	}
	return d.SignSignature
}
