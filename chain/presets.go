// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/milestone"
)

const genesisEpoch = "2017-03-21T13:00:00.000Z"

// staticFees - default fee schedule keyed by transaction key
func staticFees() *milestone.Fees {
	return &milestone.Fees{
		StaticFees: map[string]uint64{
			"transfer":             10000000,
			"secondSignature":      500000000,
			"delegateRegistration": 2500000000,
			"vote":                 100000000,
			"multiSignature":       500000000,
			"ipfs":                 500000000,
			"multiPayment":         10000000,
			"delegateResignation":  2500000000,
			"htlcLock":             10000000,
			"htlcClaim":            0,
			"htlcRefund":           0,
		},
	}
}

func u32(v uint32) *uint32 { return &v }
func u64(v uint64) *uint64 { return &v }
func integer(v int) *int   { return &v }
func boolean(v bool) *bool { return &v }
func text(v string) *string {
	return &v
}

// the first milestone shared by every preset
func genesisMilestone(aip11 bool) milestone.Definition {
	return milestone.Definition{
		Height:            1,
		Reward:            u64(0),
		ActiveDelegates:   u32(51),
		BlockTime:         u32(8),
		Epoch:             text(genesisEpoch),
		VendorFieldLength: integer(64),
		MultiPaymentLimit: integer(500),
		AIP11:             boolean(aip11),
		HTLCEnabled:       boolean(aip11),
		Block: &milestone.Block{
			Version:         0,
			MaxTransactions: 50,
			MaxPayload:      2097152,
		},
		Fees: staticFees(),
	}
}

// Preset - the configuration of a well known network
func Preset(name string) (*Config, error) {
	switch name {
	case Mainnet:
		return &Config{
			Network: Network{
				Name:          Mainnet,
				MessagePrefix: "ARK message:\n",
				Bip32:         Bip32{Public: 46090600, Private: 46089520},
				PubKeyHash:    0x17,
				NetHash:       "6e84d08bd299ed97c212c886c98a57e36545c8f5d645ca7eeae63a8bd62d8988",
				WIF:           170,
				Slip44:        111,
				Client:        Client{Token: "ARK", Symbol: "Ѧ", Explorer: "https://explorer.ark.io"},
			},
			Milestones: []milestone.Definition{
				genesisMilestone(false),
				{Height: 75600, Reward: u64(200000000)},
				{
					Height: 6600000,
					Block:  &milestone.Block{Version: 0, MaxTransactions: 150, MaxPayload: 6300000, IDFullSha256: true},
				},
				{Height: 11273000, AIP11: boolean(true), VendorFieldLength: integer(255)},
			},
		}, nil

	case Devnet:
		return &Config{
			Network: Network{
				Name:          Devnet,
				MessagePrefix: "DARK message:\n",
				Bip32:         Bip32{Public: 46090600, Private: 46089520},
				PubKeyHash:    0x1e,
				NetHash:       "2a44f340d76ffc3df204c5f38cd355b7496c9065a1ade2ef92071436bd72e867",
				WIF:           170,
				Slip44:        1,
				AIP20:         1,
				Client:        Client{Token: "DARK", Symbol: "DѦ", Explorer: "https://dexplorer.ark.io"},
			},
			Milestones: []milestone.Definition{
				genesisMilestone(false),
				{Height: 2, Reward: u64(200000000)},
				{
					Height: 1750000,
					Block:  &milestone.Block{Version: 0, MaxTransactions: 150, MaxPayload: 6300000, IDFullSha256: true},
				},
				{Height: 2850000, AIP11: boolean(true), HTLCEnabled: boolean(true), VendorFieldLength: integer(255)},
			},
		}, nil

	case Testnet:
		return &Config{
			Network: Network{
				Name:          Testnet,
				MessagePrefix: "TEST message:\n",
				Bip32:         Bip32{Public: 70617039, Private: 70615956},
				PubKeyHash:    0x17,
				NetHash:       "d9acd04bde4234a81addb8482333b4ac906bed7be5a9970ce8ada428bd083192",
				WIF:           186,
				Slip44:        1,
				Client:        Client{Token: "TARK", Symbol: "TѦ", Explorer: "http://texplorer.ark.io"},
			},
			Milestones: []milestone.Definition{
				genesisMilestone(true),
				{Height: 2, Reward: u64(200000000), VendorFieldLength: integer(255)},
			},
		}, nil

	case Unitnet:
		return &Config{
			Network: Network{
				Name:          Unitnet,
				MessagePrefix: "UNIT message:\n",
				Bip32:         Bip32{Public: 70617039, Private: 70615956},
				PubKeyHash:    0x17,
				NetHash:       "a63b5a3858afbca23edefac885be74d59f1a26985548a4082f4f479e74fcc348",
				WIF:           186,
				Slip44:        1,
				Client:        Client{Token: "UARK", Symbol: "UѦ", Explorer: "http://uexplorer.ark.io"},
			},
			Milestones: []milestone.Definition{
				genesisMilestone(true),
				{Height: 2, Reward: u64(200000000), VendorFieldLength: integer(255)},
			},
		}, nil

	default:
		return nil, fault.ErrInvalidNetworkPreset
	}
}
