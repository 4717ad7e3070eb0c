// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"time"

	"github.com/arkecosystem/arkcrypto/account"
	"github.com/arkecosystem/arkcrypto/fault"
	"github.com/arkecosystem/arkcrypto/transaction"
)

// common - the fields and steps shared by every builder
//
// B is the concrete builder so that setters chain without
// conversions; the first error is kept and reported by Build
type common[B any] struct {
	self    B
	manager *transaction.Manager
	data    *transaction.Data
	err     error
}

// defaults from the current milestone
func (c *common[B]) init(self B, manager *transaction.Manager, typ transaction.Type) {
	c.self = self
	c.manager = manager
	c.data = &transaction.Data{
		Version:   1,
		Network:   manager.Context.Network().PubKeyHash,
		TypeGroup: transaction.CoreGroup,
		Type:      typ,
	}
	if manager.Context.Milestone().AIP11 {
		c.data.Version = 2
	} else {
		c.data.Timestamp = manager.Context.Time(time.Now())
	}

	fee, err := manager.Fees.Get(c.data.InternalType())
	c.fail(err)
	c.data.Fee = fee
}

// keep the first error only
func (c *common[B]) fail(err error) {
	if nil == c.err && nil != err {
		c.err = err
	}
}

// Err - the first error seen by the builder
func (c *common[B]) Err() error {
	return c.err
}

// Version - force the transaction version
func (c *common[B]) Version(version uint8) B {
	c.data.Version = version
	if 1 == version && 0 == c.data.Timestamp {
		c.data.Timestamp = c.manager.Context.Time(time.Now())
	}
	return c.self
}

// Network - address version byte
func (c *common[B]) Network(network uint8) B {
	c.data.Network = network
	return c.self
}

// Nonce - sender nonce, version 2
func (c *common[B]) Nonce(nonce uint64) B {
	c.data.Nonce = nonce
	return c.self
}

// Timestamp - seconds since the epoch, version 1
func (c *common[B]) Timestamp(timestamp uint32) B {
	c.data.Timestamp = timestamp
	return c.self
}

// Fee - replace the static fee
func (c *common[B]) Fee(fee uint64) B {
	c.data.Fee = fee
	return c.self
}

// SenderPublicKey - set the sender without signing
func (c *common[B]) SenderPublicKey(publicKey string) B {
	if !account.ValidatePublicKey(publicKey) {
		c.fail(fault.ErrInvalidPublicKey)
		return c.self
	}
	c.data.SenderPublicKey = publicKey
	return c.self
}

// vendor fields longer than the milestone allows are dropped
func (c *common[B]) vendorField(vendorField string) {
	if len(vendorField) > c.manager.Context.MaxVendorFieldLength() {
		return
	}
	c.data.VendorField = vendorField
}

// Sign - primary signature from a passphrase
//
// the sender key follows the passphrase unless one was already set
func (c *common[B]) Sign(passphrase string) B {
	c.sign(account.KeyPairFromPassphrase(passphrase))
	return c.self
}

// SignWithWIF - primary signature from a WIF of this network
func (c *common[B]) SignWithWIF(wif string) B {
	keys, err := account.KeyPairFromWIF(wif, c.manager.Context.Network().WIF)
	if nil != err {
		c.fail(err)
		return c.self
	}
	c.sign(keys)
	return c.self
}

func (c *common[B]) sign(keys *account.KeyPair) {
	if "" == c.data.SenderPublicKey || !c.isMultiSignatureRegistration() {
		c.data.SenderPublicKey = keys.PublicKeyHex()
	}
	if c.data.IsCore() && transaction.VoteType == c.data.Type {
		c.data.RecipientID = keys.Address(c.data.Network)
	}
	_, err := c.manager.Signer.Sign(c.data, keys)
	c.fail(err)
}

// SecondSign - second signature from a passphrase
func (c *common[B]) SecondSign(passphrase string) B {
	_, err := c.manager.Signer.SecondSign(c.data, account.KeyPairFromPassphrase(passphrase))
	c.fail(err)
	return c.self
}

// SecondSignWithWIF - second signature from a WIF of this network
func (c *common[B]) SecondSignWithWIF(wif string) B {
	keys, err := account.KeyPairFromWIF(wif, c.manager.Context.Network().WIF)
	if nil != err {
		c.fail(err)
		return c.self
	}
	_, err = c.manager.Signer.SecondSign(c.data, keys)
	c.fail(err)
	return c.self
}

// MultiSign - participant signature at an index, or at the next
// free index for transaction.NextIndex
func (c *common[B]) MultiSign(passphrase string, index int) B {
	c.data.Version = 2
	_, err := c.manager.Signer.MultiSign(c.data, account.KeyPairFromPassphrase(passphrase), index)
	c.fail(err)
	return c.self
}

// Verify - check the primary signature
func (c *common[B]) Verify() (bool, error) {
	return c.manager.Verifier.Verify(c.data)
}

// SecondVerify - check the second signature against a public key
func (c *common[B]) SecondVerify(publicKey string) (bool, error) {
	return c.manager.Verifier.VerifySecondSignature(c.data, publicKey)
}

// MultiVerify - check the participant signatures of a registration
func (c *common[B]) MultiVerify() (bool, error) {
	asset, ok := c.data.Asset.(*transaction.MultiSignatureAsset)
	if !ok {
		return false, fault.ErrMissingAsset
	}
	return c.manager.Verifier.VerifySignatures(c.data, asset)
}

// GetStruct - a copy of the signed data with its id
func (c *common[B]) GetStruct() (*transaction.Data, error) {
	if nil != c.err {
		return nil, c.err
	}
	if "" == c.data.Signature && 0 == len(c.data.Signatures) {
		return nil, fault.ErrMissingTransactionSignature
	}

	data := c.data.Clone()
	id, err := c.manager.Codec.ID(data)
	if nil != err {
		return nil, err
	}
	data.ID = id
	return data, nil
}

// Build - the transaction through the factory, non strict
func (c *common[B]) Build() (*transaction.Transaction, error) {
	if nil != c.err {
		return nil, c.err
	}
	return c.manager.Factory.FromData(c.data, false)
}

func (c *common[B]) isMultiSignatureRegistration() bool {
	return c.data.IsCore() && transaction.MultiSignatureType == c.data.Type
}
