// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// Asset - type specific payload of a transaction
//
// exactly one concrete asset type belongs to each transaction kind;
// transfers and delegate resignations carry none
type Asset interface {
	// name of the entry in the JSON asset object
	AssetKey() string
	// value rendered under AssetKey
	AssetValue() interface{}
	// deep copy
	Clone() Asset
}

// SecondSignatureAsset - registers a second public key
type SecondSignatureAsset struct {
	PublicKey string `json:"publicKey"` // hex
}

// DelegateAsset - registers a delegate name
type DelegateAsset struct {
	Username string `json:"username"` // utf-8
}

// VoteAsset - "+" or "-" followed by a hex delegate public key
type VoteAsset struct {
	Votes []string
}

// MultiSignatureAsset - version 2 multi signature group
type MultiSignatureAsset struct {
	Min        uint8    `json:"min"`
	PublicKeys []string `json:"publicKeys"` // hex, index is the participant number
}

// LegacyMultiSignatureAsset - version 1 multi signature group
type LegacyMultiSignatureAsset struct {
	Min       uint8    `json:"min"`
	Lifetime  uint8    `json:"lifetime"`  // hours
	Keysgroup []string `json:"keysgroup"` // "+" followed by hex
}

// IPFSAsset - base58 multihash
type IPFSAsset struct {
	Hash string
}

// Payment - one entry of a multi payment
type Payment struct {
	Amount      uint64 `json:"amount"`
	RecipientID string `json:"recipientId"` // base58check address
}

// MultiPaymentAsset - list of payments
type MultiPaymentAsset struct {
	Payments []Payment
}

// HTLC expiration kinds
const (
	EpochTimestampExpiration = uint8(1)
	BlockHeightExpiration    = uint8(2)
)

// HTLCExpiration - when a lock may be refunded
type HTLCExpiration struct {
	Type  uint8  `json:"type"`
	Value uint32 `json:"value"`
}

// HTLCLockAsset - hash time lock
type HTLCLockAsset struct {
	SecretHash string         `json:"secretHash"` // hex, 32 bytes
	Expiration HTLCExpiration `json:"expiration"`
}

// HTLCClaimAsset - unlock with the preimage
type HTLCClaimAsset struct {
	LockTransactionID string `json:"lockTransactionId"` // hex, 32 bytes
	UnlockSecret      string `json:"unlockSecret"`      // hex, 32 bytes
}

// HTLCRefundAsset - return an expired lock
type HTLCRefundAsset struct {
	LockTransactionID string `json:"lockTransactionId"` // hex, 32 bytes
}

// ExtensionAsset - payload of a type registered outside the core group
type ExtensionAsset struct {
	Key    string
	Fields map[string]interface{}
}

func (a *SecondSignatureAsset) AssetKey() string      { return "signature" }
func (a *DelegateAsset) AssetKey() string             { return "delegate" }
func (a *VoteAsset) AssetKey() string                 { return "votes" }
func (a *MultiSignatureAsset) AssetKey() string       { return "multiSignature" }
func (a *LegacyMultiSignatureAsset) AssetKey() string { return "multiSignatureLegacy" }
func (a *IPFSAsset) AssetKey() string                 { return "ipfs" }
func (a *MultiPaymentAsset) AssetKey() string         { return "payments" }
func (a *HTLCLockAsset) AssetKey() string             { return "lock" }
func (a *HTLCClaimAsset) AssetKey() string            { return "claim" }
func (a *HTLCRefundAsset) AssetKey() string           { return "refund" }
func (a *ExtensionAsset) AssetKey() string            { return a.Key }

func (a *SecondSignatureAsset) AssetValue() interface{}      { return a }
func (a *DelegateAsset) AssetValue() interface{}             { return a }
func (a *VoteAsset) AssetValue() interface{}                 { return a.Votes }
func (a *MultiSignatureAsset) AssetValue() interface{}       { return a }
func (a *LegacyMultiSignatureAsset) AssetValue() interface{} { return a }
func (a *IPFSAsset) AssetValue() interface{}                 { return a.Hash }
func (a *MultiPaymentAsset) AssetValue() interface{}         { return a.Payments }
func (a *HTLCLockAsset) AssetValue() interface{}             { return a }
func (a *HTLCClaimAsset) AssetValue() interface{}            { return a }
func (a *HTLCRefundAsset) AssetValue() interface{}           { return a }
func (a *ExtensionAsset) AssetValue() interface{}            { return a.Fields }

func (a *SecondSignatureAsset) Clone() Asset { c := *a; return &c }
func (a *DelegateAsset) Clone() Asset        { c := *a; return &c }
func (a *IPFSAsset) Clone() Asset            { c := *a; return &c }
func (a *HTLCLockAsset) Clone() Asset        { c := *a; return &c }
func (a *HTLCClaimAsset) Clone() Asset       { c := *a; return &c }
func (a *HTLCRefundAsset) Clone() Asset      { c := *a; return &c }

func (a *VoteAsset) Clone() Asset {
	return &VoteAsset{Votes: append([]string(nil), a.Votes...)}
}

func (a *MultiSignatureAsset) Clone() Asset {
	return &MultiSignatureAsset{
		Min:        a.Min,
		PublicKeys: append([]string(nil), a.PublicKeys...),
	}
}

func (a *LegacyMultiSignatureAsset) Clone() Asset {
	return &LegacyMultiSignatureAsset{
		Min:       a.Min,
		Lifetime:  a.Lifetime,
		Keysgroup: append([]string(nil), a.Keysgroup...),
	}
}

func (a *MultiPaymentAsset) Clone() Asset {
	return &MultiPaymentAsset{Payments: append([]Payment(nil), a.Payments...)}
}

func (a *ExtensionAsset) Clone() Asset {
	fields := make(map[string]interface{}, len(a.Fields))
	for k, v := range a.Fields {
		fields[k] = v
	}
	return &ExtensionAsset{Key: a.Key, Fields: fields}
}
