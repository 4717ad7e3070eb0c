// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/fault"
)

const (
	passphrase    = "this is a top secret passphrase"
	privateKeyHex = "d8839c2432bfd0a67ef10a804ba991eabba19f154a3d707917681d45822a5712"
	publicKeyHex  = "034151a3ec46b5670a682b0a63394f863587d1bc97483b1b6c70eb58e7f0aed192"
	wif           = "SGq4xLgZKCGxs7bjmwnBrWcT4C1ADFEermj846KC97FSv1WFD1dA"
	devnetAddress = "D61mfSggzbvQgTUe6JhYKH2doHaqJ3Dyib"
	mainAddress   = "AGeYmgbg2LgGxRW2vNNJvQ88PknEJsYizC"
)

func TestKeyPairFromPassphrase(t *testing.T) {
	k := account.KeyPairFromPassphrase(passphrase)
	assert.Equal(t, privateKeyHex, hex.EncodeToString(k.PrivateKey))
	assert.Equal(t, publicKeyHex, k.PublicKeyHex())
	assert.True(t, k.Compressed)
	assert.Equal(t, publicKeyHex, account.PublicKeyFromPassphrase(passphrase))

	assert.Equal(t, "02e012f0a7cac12a74bdc17d844cbc9f637177b470019c32a53cef94c7a56e2ea9", account.PublicKeyFromPassphrase("passphrase"))
	assert.Equal(t, "03a02b9d5fdd1307c2ee4652ba54d492d1fd11a7d1bb3f3a44c4a05e79f19de933", account.PublicKeyFromPassphrase("secret"))
}

func TestWIF(t *testing.T) {
	k := account.KeyPairFromPassphrase(passphrase)
	assert.Equal(t, wif, k.WIF(170))

	decoded, err := account.KeyPairFromWIF(wif, 170)
	require.NoError(t, err)
	assert.Equal(t, k.PrivateKey, decoded.PrivateKey)
	assert.Equal(t, k.PublicKey, decoded.PublicKey)
	assert.True(t, decoded.Compressed)

	_, err = account.KeyPairFromWIF(wif, 186)
	assert.Equal(t, fault.ErrNetworkWIFMismatch, err)

	_, err = account.KeyPairFromWIF("not a wif", 170)
	assert.Equal(t, fault.ErrInvalidWIF, err)

	uncompressed := &account.KeyPair{PrivateKey: k.PrivateKey, PublicKey: k.PublicKey}
	again, err := account.KeyPairFromWIF(uncompressed.WIF(170), 170)
	require.NoError(t, err)
	assert.False(t, again.Compressed)
}

func TestAddress(t *testing.T) {
	address, err := account.AddressFromPublicKey(publicKeyHex, 0x1e)
	require.NoError(t, err)
	assert.Equal(t, devnetAddress, address)

	address, err = account.AddressFromPassphrase(passphrase, 0x17)
	require.NoError(t, err)
	assert.Equal(t, mainAddress, address)

	assert.Equal(t, devnetAddress, account.KeyPairFromPassphrase(passphrase).Address(0x1e))

	_, err = account.AddressFromPublicKey("00", 0x1e)
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func TestAddressBuffer(t *testing.T) {
	buffer, err := account.AddressToBuffer(devnetAddress)
	require.NoError(t, err)
	assert.Equal(t, "1e0995750207ecaf0ccf251c1265b92ad84f553662", hex.EncodeToString(buffer))

	address, err := account.AddressFromBuffer(buffer)
	require.NoError(t, err)
	assert.Equal(t, devnetAddress, address)

	_, err = account.AddressFromBuffer(buffer[:20])
	assert.Equal(t, fault.ErrAddressLength, err)

	// last character altered breaks the checksum
	_, err = account.AddressToBuffer(devnetAddress[:len(devnetAddress)-1] + "c")
	assert.Equal(t, fault.ErrAddressChecksum, err)
}

func TestValidateAddress(t *testing.T) {
	assert.True(t, account.ValidateAddress(devnetAddress, 0x1e))
	assert.False(t, account.ValidateAddress(devnetAddress, 0x17))
	assert.True(t, account.ValidateAddress(mainAddress, 0x17))
	assert.False(t, account.ValidateAddress("", 0x17))
	assert.False(t, account.ValidateAddress("0OIl", 0x17))
}

func TestValidatePublicKey(t *testing.T) {
	assert.True(t, account.ValidatePublicKey(publicKeyHex))
	assert.False(t, account.ValidatePublicKey(publicKeyHex[:64]))
	assert.False(t, account.ValidatePublicKey("zz"))
	assert.False(t, account.ValidatePublicKey("05"+publicKeyHex[2:]))
}

func TestPublicKeyFromMultiSignature(t *testing.T) {
	keys := []string{
		"039180ea4a8a803ee11ecb462bb8f9613fcdb5fe917e292dbcc73409f0e98f8f22",
		"028d3611c4f32feca3e6713992ae9387e18a0e01954046511878fe078703324dc0",
		"021d3932ab673230486d0f956d05b9e88791ee298d9af2d6df7d9ed5bb861c92dd",
	}
	for i, p := range []string{"secret 1", "secret 2", "secret 3"} {
		assert.Equal(t, keys[i], account.PublicKeyFromPassphrase(p))
	}

	aggregate, err := account.PublicKeyFromMultiSignature(2, keys)
	require.NoError(t, err)
	assert.Equal(t, "031985656f29bac5a1f45cb7596c58d24a312178252f536acb5a7aa786c29133d4", aggregate)

	_, err = account.PublicKeyFromMultiSignature(0, keys)
	assert.Equal(t, fault.ErrMultiSignatureMinimum, err)
	_, err = account.PublicKeyFromMultiSignature(4, keys)
	assert.Equal(t, fault.ErrMultiSignatureMinimum, err)
	_, err = account.PublicKeyFromMultiSignature(1, []string{"xx"})
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func TestBase58Check(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02}
	encoded := account.Base58CheckEncode(payload)
	decoded, err := account.Base58CheckDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	_, err = account.Base58CheckDecode("1")
	assert.Equal(t, fault.ErrAddressLength, err)
}
