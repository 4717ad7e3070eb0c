// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package milestone

// Block - block level parameters; replaced wholesale when a definition sets it
type Block struct {
	Version         uint32 `gluamapper:"version" json:"version"`
	MaxTransactions uint32 `gluamapper:"maxTransactions" json:"maxTransactions"`
	MaxPayload      uint32 `gluamapper:"maxPayload" json:"maxPayload"`
	IDFullSha256    bool   `gluamapper:"idFullSha256" json:"idFullSha256"`
}

// Fees - static fee per transaction key; replaced wholesale when a definition sets it
type Fees struct {
	StaticFees map[string]uint64 `gluamapper:"staticFees" json:"staticFees"`
}

// Definition - one milestone as written in a network configuration
//
// only the fields that are set override the values carried forward
// from the previous milestone
type Definition struct {
	Height            uint64  `gluamapper:"height" json:"height"`
	Reward            *uint64 `gluamapper:"reward" json:"reward,omitempty"`
	ActiveDelegates   *uint32 `gluamapper:"activeDelegates" json:"activeDelegates,omitempty"`
	BlockTime         *uint32 `gluamapper:"blocktime" json:"blocktime,omitempty"`
	Epoch             *string `gluamapper:"epoch" json:"epoch,omitempty"`
	VendorFieldLength *int    `gluamapper:"vendorFieldLength" json:"vendorFieldLength,omitempty"`
	MultiPaymentLimit *int    `gluamapper:"multiPaymentLimit" json:"multiPaymentLimit,omitempty"`
	AIP11             *bool   `gluamapper:"aip11" json:"aip11,omitempty"`
	HTLCEnabled       *bool   `gluamapper:"htlcEnabled" json:"htlcEnabled,omitempty"`
	Block             *Block  `gluamapper:"block" json:"block,omitempty"`
	Fees              *Fees   `gluamapper:"fees" json:"fees,omitempty"`
}

// Milestone - the fully merged parameter set in force from Height onwards
type Milestone struct {
	Height            uint64 `json:"height"`
	Reward            uint64 `json:"reward"`
	ActiveDelegates   uint32 `json:"activeDelegates"`
	BlockTime         uint32 `json:"blocktime"`
	Epoch             string `json:"epoch"`
	VendorFieldLength int    `json:"vendorFieldLength"`
	MultiPaymentLimit int    `json:"multiPaymentLimit"`
	AIP11             bool   `json:"aip11"`
	HTLCEnabled       bool   `json:"htlcEnabled"`
	Block             Block  `json:"block"`
	Fees              Fees   `json:"fees"`
}

// defaults applied beneath the first definition
const (
	DefaultVendorFieldLength = 64
	DefaultMultiPaymentLimit = 500
)

// StaticFee - the configured fee for a transaction key
func (m Milestone) StaticFee(key string) (uint64, bool) {
	fee, ok := m.Fees.StaticFees[key]
	return fee, ok
}

// apply the set fields of a definition on top of the previous milestone
func merge(previous Milestone, d Definition) Milestone {
	m := previous
	m.Height = d.Height

	if nil != d.Reward {
		m.Reward = *d.Reward
	}
	if nil != d.ActiveDelegates {
		m.ActiveDelegates = *d.ActiveDelegates
	}
	if nil != d.BlockTime {
		m.BlockTime = *d.BlockTime
	}
	if nil != d.Epoch {
		m.Epoch = *d.Epoch
	}
	if nil != d.VendorFieldLength {
		m.VendorFieldLength = *d.VendorFieldLength
	}
	if nil != d.MultiPaymentLimit {
		m.MultiPaymentLimit = *d.MultiPaymentLimit
	}
	if nil != d.AIP11 {
		m.AIP11 = *d.AIP11
	}
	if nil != d.HTLCEnabled {
		m.HTLCEnabled = *d.HTLCEnabled
	}
	if nil != d.Block {
		m.Block = *d.Block
	}
	if nil != d.Fees {
		fees := make(map[string]uint64, len(d.Fees.StaticFees))
		for k, v := range d.Fees.StaticFees {
			fees[k] = v
		}
		m.Fees = Fees{StaticFees: fees}
	}
	return m
}
