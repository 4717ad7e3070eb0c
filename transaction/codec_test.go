// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/transaction"
)

func TestVersionOneTransfer(t *testing.T) {
	m := newManager(t, "devnet", 1)
	data := v1Transfer()

	hash, err := m.Codec.Hash(data, transaction.SerializeOptions{ExcludeSignature: true, ExcludeSecondSignature: true})
	require.NoError(t, err, "hash")
	assert.Equal(t, "7b5ab4ae4ccc1b6b7dddeba3841173cb3affe7e5df331ad166ac11ace98d7018", hex.EncodeToString(hash), "unsigned hash")

	signature, err := m.Signer.Sign(data, sender())
	require.NoError(t, err, "sign")
	assert.Equal(t, v1Signature, signature, "signature")
	assert.Equal(t, v1Signature, data.Signature, "stored signature")

	id, err := m.Codec.ID(data)
	require.NoError(t, err, "id")
	assert.Equal(t, v1ID, id, "id")

	serialized, err := m.Codec.Serialize(data, transaction.SerializeOptions{})
	require.NoError(t, err, "serialize")
	assert.Equal(t, v1Hex, hex.EncodeToString(serialized), "wire bytes")
}

func TestVersionOneDeserialize(t *testing.T) {
	m := newManager(t, "devnet", 1)

	buffer, err := hex.DecodeString(v1Hex)
	require.NoError(t, err, "hex")

	data, err := m.Codec.Deserialize(buffer, transaction.DeserializeOptions{})
	require.NoError(t, err, "deserialize")

	expected := v1Transfer()
	expected.Signature = v1Signature
	assert.Equal(t, expected, data, "data")
}

func TestECDSASignatureSection(t *testing.T) {
	// DER signatures with a 0x45 length byte; not a schnorr size
	other := "3045022100" + strings.Repeat("ab", 32) + "0220" + strings.Repeat("cd", 32)

	devnet := newManager(t, "devnet", 1)
	unitnet := newManager(t, "unitnet", 1)

	withAll := v1Transfer()
	withAll.Signature = v1Signature
	withAll.SecondSignature = other
	withAll.Signatures = []string{v1Signature, other}

	withoutSecond := v1Transfer()
	withoutSecond.Signature = v1Signature
	withoutSecond.Signatures = []string{other, v1Signature}

	secondOnly := v1Transfer()
	secondOnly.Signature = other
	secondOnly.SecondSignature = v1Signature

	versionTwo := v2Transfer()
	versionTwo.Signature = other

	versionTwoSecond := v2Transfer()
	versionTwoSecond.Signature = v1Signature
	versionTwoSecond.SecondSignature = other

	items := []struct {
		name    string
		manager *transaction.Manager
		data    *transaction.Data
		tail    string
	}{
		{"signature, second signature and block", devnet, withAll, v1Signature + other + "ff" + v1Signature + other},
		{"signature and block", devnet, withoutSecond, v1Signature + "ff" + other + v1Signature},
		{"signature and second signature", devnet, secondOnly, other + v1Signature},
		{"version 2 DER signature", unitnet, versionTwo, other},
		{"version 2 DER second signature", unitnet, versionTwoSecond, v1Signature + other},
	}

	for _, item := range items {
		serialized, err := item.manager.Codec.Serialize(item.data, transaction.SerializeOptions{})
		require.NoError(t, err, "%s: serialize", item.name)
		assert.True(t, strings.HasSuffix(hex.EncodeToString(serialized), item.tail), "%s: signature section", item.name)

		data, err := item.manager.Codec.Deserialize(serialized, transaction.DeserializeOptions{})
		require.NoError(t, err, "%s: deserialize", item.name)
		assert.Equal(t, item.data, data, "%s: data", item.name)

		again, err := item.manager.Codec.Serialize(data, transaction.SerializeOptions{})
		require.NoError(t, err, "%s: serialize again", item.name)
		assert.Equal(t, serialized, again, "%s: bytes", item.name)
	}

	// a block part whose length byte runs past the end
	truncated, err := hex.DecodeString(v1Hex + "ff" + other[:20])
	require.NoError(t, err, "hex")
	_, err = devnet.Codec.Deserialize(truncated, transaction.DeserializeOptions{})
	assert.True(t, fault.IsErrFormat(err), "truncated block: %v", err)
}

func TestVersionTwoRoundTrip(t *testing.T) {
	m := newManager(t, "unitnet", 1)

	transfer := v2Transfer()
	transfer.VendorField = "hello"

	secondSignature := v2Data(transaction.SecondSignatureType)
	secondSignature.Asset = &transaction.SecondSignatureAsset{PublicKey: secretKey}

	delegate := v2Data(transaction.DelegateRegistrationType)
	delegate.Asset = &transaction.DelegateAsset{Username: "genesis_1"}

	vote := v2Data(transaction.VoteType)
	vote.Asset = &transaction.VoteAsset{Votes: []string{"+" + secretKey}}

	ipfs := v2Data(transaction.IPFSType)
	ipfs.Asset = &transaction.IPFSAsset{Hash: ipfsHash}

	payments := v2Data(transaction.MultiPaymentType)
	payments.VendorField = "batch"
	payments.Asset = &transaction.MultiPaymentAsset{
		Payments: []transaction.Payment{
			{Amount: 1, RecipientID: recipient},
			{Amount: 2, RecipientID: otherRecipient},
		},
	}

	resignation := v2Data(transaction.DelegateResignationType)

	lock := v2Data(transaction.HTLCLockType)
	lock.Amount = 500
	lock.RecipientID = recipient
	lock.VendorField = "locked"
	lock.Asset = &transaction.HTLCLockAsset{
		SecretHash: lockSecret,
		Expiration: transaction.HTLCExpiration{Type: transaction.BlockHeightExpiration, Value: 1000},
	}

	claim := v2Data(transaction.HTLCClaimType)
	claim.Fee = 0
	claim.Asset = &transaction.HTLCClaimAsset{LockTransactionID: lockID, UnlockSecret: lockSecret}

	refund := v2Data(transaction.HTLCRefundType)
	refund.Fee = 0
	refund.Asset = &transaction.HTLCRefundAsset{LockTransactionID: lockID}

	items := []*transaction.Data{
		transfer, secondSignature, delegate, vote, ipfs,
		payments, resignation, lock, claim, refund,
	}

	for _, data := range items {
		signed(t, m, data)

		tx, err := m.Factory.FromData(data, true)
		require.NoError(t, err, "from data: %s", data.InternalType())
		assert.True(t, tx.IsVerified(), "verified: %s", data.InternalType())
		assert.Equal(t, uint8(2), tx.Version(), "version: %s", data.InternalType())
		assert.Equal(t, data.InternalType(), tx.Type(), "type: %s", data.InternalType())

		again, err := m.Factory.FromBytes(tx.Serialized(), true)
		require.NoError(t, err, "from bytes: %s", data.InternalType())

		expected := data.Clone()
		expected.ID = tx.ID()
		assert.Equal(t, expected, again.Data(), "data: %s", data.InternalType())
		assert.Equal(t, tx.Hex(), again.Hex(), "hex: %s", data.InternalType())
		assert.Equal(t, tx.ID(), again.ID(), "id: %s", data.InternalType())
	}
}

func TestVendorFieldOnlyForCarryingTypes(t *testing.T) {
	m := newManager(t, "unitnet", 1)

	vote := signed(t, m, func() *transaction.Data {
		d := v2Data(transaction.VoteType)
		d.VendorField = "ignored"
		d.Asset = &transaction.VoteAsset{Votes: []string{"-" + secretKey}}
		return d
	}())

	tx, err := m.Factory.FromData(vote, false)
	require.NoError(t, err, "non strict accepts")
	assert.Equal(t, "", tx.Data().VendorField, "vendor field dropped")
	assert.False(t, tx.HasVendorField(), "vote has no vendor field")

	_, err = m.Factory.FromData(vote, true)
	assert.True(t, fault.IsErrSchema(err), "strict rejects: %v", err)
}

func TestSecondSignature(t *testing.T) {
	m := newManager(t, "unitnet", 1)
	second := account.KeyPairFromPassphrase("secret")

	data := signed(t, m, v2Transfer())
	_, err := m.Signer.SecondSign(data, second)
	require.NoError(t, err, "second sign")

	tx, err := m.Factory.FromData(data, true)
	require.NoError(t, err, "from data")
	assert.True(t, tx.IsVerified(), "verified")

	decoded := tx.Data()
	assert.Equal(t, data.Signature, decoded.Signature, "signature")
	assert.Equal(t, data.SecondSignature, decoded.SecondSignature, "second signature")

	ok, err := m.Verifier.VerifySecondSignature(decoded, secretKey)
	require.NoError(t, err, "verify second")
	assert.True(t, ok, "second signature valid")

	ok, err = m.Verifier.VerifySecondSignature(decoded, senderKey)
	require.NoError(t, err, "verify second wrong key")
	assert.False(t, ok, "wrong key")
}

func TestLegacySecondSignatureName(t *testing.T) {
	m := newManager(t, "devnet", 1)

	data := v1Transfer()
	data.Signature = v1Signature
	data.SignSignature = v1Signature

	tx, err := m.Factory.FromData(data, true)
	require.NoError(t, err, "from data")

	decoded := tx.Data()
	assert.Equal(t, v1Signature, decoded.SecondSignature, "promoted")
	assert.Equal(t, "", decoded.SignSignature, "cleared")
}

func TestVersionOneVoteRecipient(t *testing.T) {
	m := newManager(t, "devnet", 1)

	data := &transaction.Data{
		Version:         1,
		Network:         0x1e,
		TypeGroup:       transaction.CoreGroup,
		Type:            transaction.VoteType,
		Timestamp:       1000,
		SenderPublicKey: senderKey,
		Fee:             100000000,
		RecipientID:     devnetRecipient,
		Asset:           &transaction.VoteAsset{Votes: []string{"+" + secretKey}},
	}
	signed(t, m, data)

	tx, err := m.Factory.FromData(data, true)
	require.NoError(t, err, "from data")
	assert.True(t, tx.IsVerified(), "verified")
	assert.Equal(t, devnetRecipient, tx.Data().RecipientID, "recipient is the sender")
}

func TestVersionOneMultiSignatureKeysgroup(t *testing.T) {
	m := newManager(t, "devnet", 1)

	data := &transaction.Data{
		Version:         1,
		Network:         0x1e,
		TypeGroup:       transaction.CoreGroup,
		Type:            transaction.MultiSignatureType,
		Timestamp:       1000,
		SenderPublicKey: senderKey,
		Fee:             1500000000,
		Asset: &transaction.LegacyMultiSignatureAsset{
			Min:       2,
			Lifetime:  24,
			Keysgroup: []string{"+" + secretKey, "+" + account.PublicKeyFromPassphrase("secret 1")},
		},
	}
	signed(t, m, data)

	tx, err := m.Factory.FromData(data, true)
	require.NoError(t, err, "from data")
	assert.True(t, tx.IsVerified(), "verified")
	assert.Equal(t, data.Asset, tx.Data().Asset, "keysgroup keeps the + prefix")
}

func TestVersionGating(t *testing.T) {
	unitnet := newManager(t, "unitnet", 1)
	devnet := newManager(t, "devnet", 1)

	tx, err := unitnet.Factory.FromData(signed(t, unitnet, v2Transfer()), true)
	require.NoError(t, err, "version 2")

	_, err = devnet.Factory.FromBytes(tx.Serialized(), false)
	assert.True(t, fault.IsErrVersion(err), "version 2 before aip11: %v", err)

	unsafe, err := devnet.Factory.FromBytesUnsafe(tx.Serialized(), "")
	require.NoError(t, err, "unsafe accepts any version")
	assert.True(t, unsafe.IsVerified(), "unsafe is verified")
	assert.Equal(t, tx.ID(), unsafe.ID(), "computed id")

	unsafe, err = devnet.Factory.FromBytesUnsafe(tx.Serialized(), "given")
	require.NoError(t, err, "unsafe with id")
	assert.Equal(t, "given", unsafe.ID(), "trusted id")

	_, err = unitnet.Factory.FromHex(v1Hex)
	assert.True(t, fault.IsErrVersion(err), "version 1 after aip11: %v", err)

	// malformed bytes win over an unsupported version
	buffer, err := hex.DecodeString(v1Hex[:100])
	require.NoError(t, err, "hex")
	_, err = unitnet.Codec.Deserialize(buffer, transaction.DeserializeOptions{})
	assert.True(t, fault.IsErrFormat(err), "truncated version 1 after aip11: %v", err)
	assert.False(t, fault.IsErrVersion(err), "truncated version 1 after aip11: %v", err)
	_, err = unitnet.Factory.FromHex(v1Hex[:100])
	assert.True(t, fault.IsErrFormat(err), "factory: %v", err)

	// devnet switches at aip11
	require.NoError(t, devnet.Context.SetHeight(2850000), "height")
	_, err = devnet.Factory.FromHex(v1Hex)
	assert.True(t, fault.IsErrVersion(err), "version 1 after aip11: %v", err)
}

func TestMalformedBytes(t *testing.T) {
	m := newManager(t, "devnet", 1)

	items := []string{
		"",
		"00",
		"fe011e00",
		"ff011e",
		v1Hex[:100],
		v1Hex + "0102",
	}

	for i, item := range items {
		_, err := m.Factory.FromHex(item)
		require.Error(t, err, "%d: expected error", i)
		assert.True(t, fault.IsErrFormat(err), "%d: normalised: %v", i, err)
		assert.True(t, strings.HasPrefix(err.Error(), "invalid transaction bytes"), "%d: message: %s", i, err)
	}

	_, err := m.Factory.FromHex("not hex")
	assert.True(t, fault.IsErrFormat(err), "not hex: %v", err)
}

func TestUnsupportedVersionByte(t *testing.T) {
	m := newManager(t, "devnet", 1)

	_, err := m.Factory.FromHex("ff031e00")
	assert.True(t, fault.IsErrVersion(err), "version 3: %v", err)

	_, err = m.Codec.Serialize(&transaction.Data{Version: 3}, transaction.SerializeOptions{})
	assert.True(t, fault.IsErrVersion(err), "serialize version 3: %v", err)
}

func TestSchnorrDuplicateParticipant(t *testing.T) {
	m := newManager(t, "unitnet", 1)

	data := v2Data(transaction.MultiSignatureType)
	data.Asset = &transaction.MultiSignatureAsset{Min: 2, PublicKeys: []string{senderKey, secretKey}}
	data.Signature = strings.Repeat("11", 64)
	data.Signatures = []string{
		"00" + strings.Repeat("22", 64),
		"00" + strings.Repeat("33", 64),
	}

	buffer, err := m.Codec.Serialize(data, transaction.SerializeOptions{})
	require.NoError(t, err, "serialize")

	_, err = m.Codec.Deserialize(buffer, transaction.DeserializeOptions{})
	assert.Equal(t, fault.ErrDuplicateParticipant, err, "codec")

	_, err = m.Factory.FromBytes(buffer, true)
	assert.Equal(t, fault.ErrDuplicateParticipant, err, "factory keeps the error")
}

func TestSchnorrSignatureLayouts(t *testing.T) {
	m := newManager(t, "unitnet", 1)

	data := v2Data(transaction.MultiSignatureType)
	data.Asset = &transaction.MultiSignatureAsset{Min: 2, PublicKeys: []string{senderKey, secretKey}}

	signature := strings.Repeat("11", 64)
	second := strings.Repeat("44", 64)
	participants := []string{
		"00" + strings.Repeat("22", 64),
		"01" + strings.Repeat("33", 64),
	}

	layouts := []struct {
		signature  string
		second     string
		signatures []string
	}{
		{signature, "", nil},
		{signature, second, nil},
		{"", "", participants},
		{signature, "", participants},
		{signature, second, participants},
	}

	for i, layout := range layouts {
		d := data.Clone()
		d.Signature = layout.signature
		d.SecondSignature = layout.second
		d.Signatures = layout.signatures

		buffer, err := m.Codec.Serialize(d, transaction.SerializeOptions{})
		require.NoError(t, err, "%d: serialize", i)

		decoded, err := m.Codec.Deserialize(buffer, transaction.DeserializeOptions{})
		require.NoError(t, err, "%d: deserialize", i)
		assert.Equal(t, layout.signature, decoded.Signature, "%d: signature", i)
		assert.Equal(t, layout.second, decoded.SecondSignature, "%d: second", i)
		assert.Equal(t, layout.signatures, decoded.Signatures, "%d: participants", i)
	}
}

func TestDeserializeDoesNotPanic(t *testing.T) {
	m := newManager(t, "devnet", 1)

	buffer, err := hex.DecodeString(v1Hex)
	require.NoError(t, err, "hex")

	for n := 0; n < len(buffer); n += 1 {
		var err error
		assert.NotPanics(t, func() {
			_, err = m.Codec.Deserialize(buffer[:n], transaction.DeserializeOptions{})
		}, "truncated at: %d", n)
		if nil != err {
			assert.True(t, fault.IsErrFormat(err), "truncated at: %d  error: %v", n, err)
		}
	}

	_, err = m.Codec.Deserialize(buffer[:40], transaction.DeserializeOptions{})
	require.Error(t, err, "inside the sender key")
	assert.True(t, fault.IsErrFormat(err), "reader error is classified: %v", err)
}
