// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/chain"
	"github.com/arkecosystem/arkcrypto/transaction"
)

const (
	passphrase      = "this is a top secret passphrase"
	senderKey       = "034151a3ec46b5670a682b0a63394f863587d1bc97483b1b6c70eb58e7f0aed192"
	secretKey       = "03a02b9d5fdd1307c2ee4652ba54d492d1fd11a7d1bb3f3a44c4a05e79f19de933"
	devnetRecipient = "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib"
	recipient       = "AGeYmgbg2LgGxRW2vNNJvQ88PknEJsYizC"
	otherRecipient  = "AJWRd23HNEhPLkK1ymMnwnDBX2a7QBZqff"
	ipfsHash        = "QmR45FmbVVrixReBwJkhEKde2qwHYaQzGxu4ZoDeswuF9w"
	lockID          = "943c220691e711c39c79d437ce185748a0018940e1a4144293af9d05627d2eb4"
	lockSecret      = "c5d9ef2d1dd1bc1e6b5dd4a0c8e0e2ac9a89f12b8dcd4a7a1c6bae2d38b5d3e8"

	// version 1 devnet transfer signed with passphrase
	v1Signature = "3044022002994b30e08b58825c8c16ebf2cc693cfe706fb26571674784ead098accc89d702205b79dedc752a84504ecfe4b9e1292997f22260ee4daa102d2d9a61432d93b286"
	v1ID        = "da61c6cba363cc39baa0ca3f9ba2c5db81b9805045bd0b9fc58af07ad4206856"
	v1Hex       = "ff011e0066b47502034151a3ec46b5670a682b0a63394f863587d1bc97483b1b6c70eb58e7f0aed19280969800000000000000c2eb0b00000000000000001e0995750207ecaf0ccf251c1265b92ad84f553662" + v1Signature
)

func newManager(t *testing.T, network string, height uint64) *transaction.Manager {
	t.Helper()

	context, err := chain.FromPreset(network)
	require.NoError(t, err, "preset")
	require.NoError(t, context.SetHeight(height), "height")
	return transaction.NewManager(context)
}

func managerFromConfig(t *testing.T, config *chain.Config) *transaction.Manager {
	t.Helper()

	context, err := chain.NewContext(config)
	require.NoError(t, err, "context")
	return transaction.NewManager(context)
}

func sender() *account.KeyPair {
	return account.KeyPairFromPassphrase(passphrase)
}

func v1Transfer() *transaction.Data {
	return &transaction.Data{
		Version:         1,
		Network:         0x1e,
		TypeGroup:       transaction.CoreGroup,
		Type:            transaction.TransferType,
		Timestamp:       41268326,
		SenderPublicKey: senderKey,
		Fee:             10000000,
		Amount:          200000000,
		RecipientID:     devnetRecipient,
	}
}

// unsigned version 2 data for unitnet
func v2Data(typ transaction.Type) *transaction.Data {
	return &transaction.Data{
		Version:         2,
		Network:         0x17,
		TypeGroup:       transaction.CoreGroup,
		Type:            typ,
		Nonce:           5,
		SenderPublicKey: senderKey,
		Fee:             10000000,
	}
}

func v2Transfer() *transaction.Data {
	d := v2Data(transaction.TransferType)
	d.Amount = 100000000
	d.RecipientID = recipient
	return d
}

func signed(t *testing.T, m *transaction.Manager, data *transaction.Data) *transaction.Data {
	t.Helper()

	_, err := m.Signer.Sign(data, sender())
	require.NoError(t, err, "sign")
	return data
}
