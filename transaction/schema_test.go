// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/transaction"
)

func TestValidate(t *testing.T) {
	m := newManager(t, "unitnet", 1)

	items := []struct {
		name   string
		strict bool
		valid  bool
		modify func(d *transaction.Data)
	}{
		{"transfer", true, true, func(d *transaction.Data) {}},
		{"version 3", false, false, func(d *transaction.Data) { d.Version = 3 }},
		{"unknown type", false, false, func(d *transaction.Data) { d.Type = 77 }},
		{"wrong network strict", true, false, func(d *transaction.Data) { d.Network = 0x1e }},
		{"bad sender", false, false, func(d *transaction.Data) { d.SenderPublicKey = "02" }},
		{"zero fee", false, false, func(d *transaction.Data) { d.Fee = 0 }},
		{"zero amount", false, false, func(d *transaction.Data) { d.Amount = 0 }},
		{"bad recipient", false, false, func(d *transaction.Data) { d.RecipientID = "AGeYmgbg2LgGxRW2vNNJvQ88PknEJsYizD" }},
		{"foreign recipient", false, false, func(d *transaction.Data) { d.RecipientID = devnetRecipient }},
		{"vendor field", true, true, func(d *transaction.Data) { d.VendorField = strings.Repeat("v", 64) }},
		{"vendor field over milestone strict", true, false, func(d *transaction.Data) { d.VendorField = strings.Repeat("v", 65) }},
		{"vendor field over milestone", false, true, func(d *transaction.Data) { d.VendorField = strings.Repeat("v", 65) }},
		{"vendor field over wire limit", false, false, func(d *transaction.Data) { d.VendorField = strings.Repeat("v", 256) }},
		{"signature not hex", false, false, func(d *transaction.Data) { d.Signature = "xyz" }},
		{"short multi signature", false, false, func(d *transaction.Data) { d.Signatures = []string{"0011"} }},
		{"duplicate multi signature", false, false, func(d *transaction.Data) {
			s := "00" + strings.Repeat("11", 64)
			d.Signatures = []string{s, s}
		}},
	}

	for _, item := range items {
		data := v2Transfer()
		item.modify(data)
		err := m.Codec.Validate(data, item.strict)
		if item.valid {
			assert.NoError(t, err, item.name)
		} else {
			assert.True(t, fault.IsErrSchema(err), "%s: %v", item.name, err)
		}
	}
}

func TestValidateAssets(t *testing.T) {
	m := newManager(t, "unitnet", 1)

	votes := func(v ...string) func(d *transaction.Data) {
		return func(d *transaction.Data) {
			d.Type = transaction.VoteType
			d.Amount = 0
			d.RecipientID = ""
			d.Asset = &transaction.VoteAsset{Votes: v}
		}
	}
	delegate := func(name string) func(d *transaction.Data) {
		return func(d *transaction.Data) {
			d.Type = transaction.DelegateRegistrationType
			d.Amount = 0
			d.RecipientID = ""
			d.Asset = &transaction.DelegateAsset{Username: name}
		}
	}
	payments := func(p ...transaction.Payment) func(d *transaction.Data) {
		return func(d *transaction.Data) {
			d.Type = transaction.MultiPaymentType
			d.Amount = 0
			d.RecipientID = ""
			d.Asset = &transaction.MultiPaymentAsset{Payments: p}
		}
	}

	items := []struct {
		name   string
		valid  bool
		modify func(d *transaction.Data)
	}{
		{"vote", true, votes("+" + secretKey)},
		{"unvote and vote", true, votes("-"+secretKey, "+"+senderKey)},
		{"no votes", false, votes()},
		{"three votes", false, votes("+"+secretKey, "-"+secretKey, "+"+senderKey)},
		{"vote without sign", false, votes(secretKey)},
		{"vote with amount", false, func(d *transaction.Data) {
			votes("+" + secretKey)(d)
			d.Amount = 1
		}},
		{"delegate", true, delegate("genesis_1")},
		{"upper case delegate", false, delegate("Genesis")},
		{"long delegate", false, delegate(strings.Repeat("a", 21))},
		{"empty delegate", false, delegate("")},
		{"missing asset", false, func(d *transaction.Data) {
			delegate("x")(d)
			d.Asset = nil
		}},
		{"payments", true, payments(
			transaction.Payment{Amount: 1, RecipientID: recipient},
			transaction.Payment{Amount: 1, RecipientID: otherRecipient},
		)},
		{"single payment", false, payments(transaction.Payment{Amount: 1, RecipientID: recipient})},
		{"zero payment", false, payments(
			transaction.Payment{Amount: 1, RecipientID: recipient},
			transaction.Payment{Amount: 0, RecipientID: otherRecipient},
		)},
		{"ipfs", true, func(d *transaction.Data) {
			d.Type = transaction.IPFSType
			d.Amount = 0
			d.RecipientID = ""
			d.Asset = &transaction.IPFSAsset{Hash: ipfsHash}
		}},
		{"bad ipfs", false, func(d *transaction.Data) {
			d.Type = transaction.IPFSType
			d.Amount = 0
			d.RecipientID = ""
			d.Asset = &transaction.IPFSAsset{Hash: "QmR45"}
		}},
		{"claim without fee", true, func(d *transaction.Data) {
			d.Type = transaction.HTLCClaimType
			d.Amount = 0
			d.Fee = 0
			d.RecipientID = ""
			d.Asset = &transaction.HTLCClaimAsset{LockTransactionID: lockID, UnlockSecret: lockSecret}
		}},
		{"lock without expiration", false, func(d *transaction.Data) {
			d.Type = transaction.HTLCLockType
			d.Asset = &transaction.HTLCLockAsset{SecretHash: lockSecret}
		}},
		{"multi signature", true, func(d *transaction.Data) {
			registrationData := registration(participants())
			*d = *registrationData
		}},
		{"multi signature minimum", false, func(d *transaction.Data) {
			registrationData := registration(participants())
			registrationData.Asset.(*transaction.MultiSignatureAsset).Min = 4
			*d = *registrationData
		}},
		{"multi signature duplicate key", false, func(d *transaction.Data) {
			registrationData := registration(participants())
			registrationData.Asset.(*transaction.MultiSignatureAsset).PublicKeys[1] = senderKey
			registrationData.Asset.(*transaction.MultiSignatureAsset).PublicKeys[2] = senderKey
			*d = *registrationData
		}},
	}

	for _, item := range items {
		data := v2Transfer()
		item.modify(data)
		err := m.Codec.Validate(data, true)
		if item.valid {
			assert.NoError(t, err, item.name)
		} else {
			require.Error(t, err, item.name)
			assert.True(t, fault.IsErrSchema(err), "%s: %v", item.name, err)
		}
	}
}
